package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// ExpandMeasurementPaths resolves the configured measurement path
// patterns to concrete files. Relative patterns are resolved against
// baseDir; glob patterns (including **) are expanded with doublestar.
// Non-glob paths that do not exist are kept so a watcher can pick them
// up on creation.
func (c *Config) ExpandMeasurementPaths(baseDir string) ([]string, error) {
	var out []string
	seen := make(map[string]bool)

	for _, pattern := range c.Measurements.Paths {
		if !filepath.IsAbs(pattern) {
			pattern = filepath.Join(baseDir, pattern)
		}

		if !containsGlob(pattern) {
			if !seen[pattern] {
				seen[pattern] = true
				out = append(out, pattern)
			}
			continue
		}

		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("glob error for %q: %w", pattern, err)
		}
		for _, match := range matches {
			info, err := os.Stat(match)
			if err != nil || info.IsDir() {
				continue
			}
			if !seen[match] {
				seen[match] = true
				out = append(out, match)
			}
		}
	}

	return out, nil
}

// containsGlob checks if a pattern contains glob characters.
func containsGlob(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[{")
}
