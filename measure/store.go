// Package measure provides a curated lookup table of real-world
// measurements ("a cup is 250 milliliter") keyed by object name, layered
// on top of the quantity core. Entries can be extended at runtime and
// loaded from YAML files.
package measure

import (
	"sort"
	"strings"
	"sync"

	"github.com/c360studio/quantify/metric"
	"github.com/c360studio/quantify/quantity"
)

// Entry pairs an object name with its measurement.
type Entry struct {
	Name     string
	Quantity quantity.Quantity
}

// Store is a name → Quantity table. It is safe for concurrent use.
type Store struct {
	mu      sync.RWMutex
	entries map[string]quantity.Quantity
}

// NewStore returns a store seeded with the builtin measurement table.
func NewStore() *Store {
	s := &Store{entries: make(map[string]quantity.Quantity, len(builtinMeasurements))}
	for name, q := range builtinMeasurements {
		s.entries[name] = q
	}
	metric.MeasurementEntries.Set(float64(len(s.entries)))
	return s
}

// Get returns the measurement for an object name.
func (s *Store) Get(name string) (quantity.Quantity, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	q, ok := s.entries[normalizeName(name)]
	return q, ok
}

// Add inserts or replaces a measurement.
func (s *Store) Add(name string, q quantity.Quantity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[normalizeName(name)] = q
	metric.MeasurementEntries.Set(float64(len(s.entries)))
}

// Find returns all entries whose name contains the search term, sorted by
// name.
func (s *Store) Find(term string) []Entry {
	term = normalizeName(term)

	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []Entry
	for name, q := range s.entries {
		if strings.Contains(name, term) {
			out = append(out, Entry{Name: name, Quantity: q})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Len returns the number of entries.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
