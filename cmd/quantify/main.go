// Package main provides the quantify binary entry point.
// Quantify resolves unit spellings, converts and combines physical
// quantities, extracts them from free text, and looks up real-world
// measurements.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/c360studio/quantify/commands"
	"github.com/c360studio/quantify/config"
	"github.com/c360studio/quantify/measure"
)

const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "quantify"
)

func main() {
	// Add panic recovery
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		configPath string
		logLevel   string
	)
	opts := &commands.Options{}

	cmd := &cobra.Command{
		Use:   "quantify",
		Short: "Dimensional analysis for physical quantities",
		Long: `Quantify is a dimensional-analysis tool for physical quantities.

It provides:
- Unit resolution: canonical names, aliases, SI prefixes, compounds (km/h, kg*m/s^2)
- Conversion between compatible units, including affine temperatures
- Quantity extraction from free text ("the supply delivers 230 V")
- A measurement table of real-world objects ("a cup" is 250 ml)`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			configureLogging(logLevel)

			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}

			store, err := buildStore(cfg)
			if err != nil {
				return err
			}

			opts.Config = cfg
			opts.Store = store
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (YAML)")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	cmd.AddCommand(commands.NewConvertCommand(opts))
	cmd.AddCommand(commands.NewExtractCommand(opts))
	cmd.AddCommand(commands.NewLookupCommand(opts))
	cmd.AddCommand(commands.NewUnitsCommand(opts))
	cmd.AddCommand(watchCmd(opts))

	// Version command
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s version %s (build: %s)\n", appName, Version, BuildTime)
		},
	})

	return cmd
}

// watchCmd keeps the measurement store in sync with the configured files
// and serves Prometheus metrics until interrupted.
func watchCmd(opts *commands.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Watch measurement files and serve metrics",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !opts.Config.Measurements.Watch {
				return fmt.Errorf("measurement watching is disabled; set measurements.watch: true in the config")
			}
			paths, err := opts.Config.ExpandMeasurementPaths(".")
			if err != nil {
				return err
			}
			if len(paths) == 0 {
				return fmt.Errorf("no measurement paths configured")
			}

			ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			if listen := opts.Config.Metrics.Listen; listen != "" {
				go serveMetrics(ctx, listen)
			}

			watcher, err := measure.NewWatcher(opts.Store, measure.WatcherConfig{
				Paths:         paths,
				DebounceDelay: opts.Config.Measurements.DebounceDelay,
			})
			if err != nil {
				return err
			}

			slog.Info("watching measurement files", "paths", paths)
			if err := watcher.Start(ctx); err != nil && ctx.Err() == nil {
				return err
			}
			slog.Info("shutdown complete")
			return nil
		},
	}
}

func configureLogging(logLevel string) {
	level := slog.LevelInfo
	switch strings.ToLower(logLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
}

func loadConfig(configPath string) (*config.Config, error) {
	if configPath != "" {
		cfg, err := config.LoadFromFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		return cfg, nil
	}
	return config.DefaultConfig(), nil
}

// buildStore seeds the measurement store with builtins and layers the
// configured measurement files on top. Files that fail to load are
// logged and skipped so one bad file does not take the CLI down.
func buildStore(cfg *config.Config) (*measure.Store, error) {
	store := measure.NewStore()

	paths, err := cfg.ExpandMeasurementPaths(".")
	if err != nil {
		return nil, err
	}
	for _, path := range paths {
		if _, statErr := os.Stat(path); statErr != nil {
			continue
		}
		if err := store.LoadFile(path); err != nil {
			slog.Warn("skipping measurement file", "path", path, "error", err)
		}
	}
	return store, nil
}

func serveMetrics(ctx context.Context, listen string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Addr: listen, Handler: mux}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	slog.Info("serving metrics", "addr", listen)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		slog.Error("metrics server failed", "error", err)
	}
}
