// Package commands implements the quantify CLI subcommands.
package commands

import (
	"github.com/c360studio/quantify/config"
	"github.com/c360studio/quantify/measure"
)

// Options carries the shared state commands operate on.
type Options struct {
	// Config is the loaded CLI configuration.
	Config *config.Config

	// Store is the measurement store, seeded with builtins and any
	// configured measurement files.
	Store *measure.Store
}

// jsonOutput reports whether commands should emit JSON.
func (o *Options) jsonOutput(flagFormat string) bool {
	format := flagFormat
	if format == "" && o.Config != nil {
		format = o.Config.Output.Format
	}
	return format == "json"
}
