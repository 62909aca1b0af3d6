package measure

import (
	"strings"

	"github.com/c360studio/quantify/extract"
	"github.com/c360studio/quantify/quantity"
)

// ParseText resolves a natural-language phrase to a quantity. A literal
// "<number> <unit>" form wins ("5 meters", "100 km/h"); otherwise the
// phrase is matched against store entry names, so "a normal bath of
// water" yields 150 liter.
func (s *Store) ParseText(text string) (quantity.Quantity, bool) {
	if q, ok := extract.New().ParseOne(text); ok {
		return q, true
	}

	lower := normalizeName(text)

	s.mu.RLock()
	defer s.mu.RUnlock()

	// Prefer the longest entry name contained in the phrase: "car engine"
	// over "car".
	bestLen := 0
	var best quantity.Quantity
	for name, q := range s.entries {
		if len(name) > bestLen && strings.Contains(lower, name) {
			bestLen = len(name)
			best = q
		}
	}
	if bestLen > 0 {
		return best, true
	}
	return quantity.Quantity{}, false
}
