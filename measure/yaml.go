package measure

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/c360studio/quantify/metric"
	"github.com/c360studio/quantify/quantity"
)

// fileEntry is the YAML form of one measurement:
//
//	my cup:
//	  value: 300
//	  unit: milliliter
type fileEntry struct {
	Value float64 `yaml:"value"`
	Unit  string  `yaml:"unit"`
}

// LoadFile merges measurements from a YAML file into the store. Every
// entry is validated before any insert, so an unresolvable unit fails the
// load and leaves the store untouched.
func (s *Store) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read measurements file: %w", err)
	}

	var raw map[string]fileEntry
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("parse measurements file %s: %w", path, err)
	}

	// Validate every entry before touching the store.
	parsed := make(map[string]quantity.Quantity, len(raw))
	for name, entry := range raw {
		q, err := quantity.New(entry.Value, entry.Unit)
		if err != nil {
			return fmt.Errorf("measurement %q in %s: %w", name, path, err)
		}
		parsed[normalizeName(name)] = q
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for name, q := range parsed {
		s.entries[name] = q
	}
	metric.MeasurementEntries.Set(float64(len(s.entries)))
	return nil
}

// SaveFile writes the store's entries to a YAML file, creating parent
// directories as needed.
func (s *Store) SaveFile(path string) error {
	s.mu.RLock()
	raw := make(map[string]fileEntry, len(s.entries))
	for name, q := range s.entries {
		raw[name] = fileEntry{Value: q.Value(), Unit: q.Unit()}
	}
	s.mu.RUnlock()

	data, err := yaml.Marshal(raw)
	if err != nil {
		return fmt.Errorf("marshal measurements: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create measurements directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write measurements file: %w", err)
	}
	return nil
}
