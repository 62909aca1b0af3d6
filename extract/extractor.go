// Package extract scans free text for quantities: number + unit-token
// pairs such as "230 V" or "100 km/h". Matched tokens are normalized to
// registry spellings and validated by constructing a quantity.Quantity;
// tokens that do not resolve are skipped rather than failing the scan.
package extract

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/c360studio/quantify/metric"
	"github.com/c360studio/quantify/quantity"
)

// quantityPattern matches a number (decimal or scientific notation)
// followed by a unit token, allowing the symbols that show up in real
// measurements: µ, Ω, °, ², ³ and compound slashes.
var quantityPattern = regexp.MustCompile(`(\d+\.?\d*(?:[eE][-+]?\d+)?)\s*([a-zA-ZµμωΩ°²³/_]+)`)

// Extraction is one quantity found in a text.
type Extraction struct {
	// ID is a unique identifier for correlating extractions downstream.
	ID string `json:"id"`

	// Label names what kind of quantity this is (voltage, mass, …),
	// inferred from nearby keywords or the unit itself.
	Label string `json:"label"`

	// Item is the thing being measured, when a trailing phrase names one.
	Item string `json:"item,omitempty"`

	Value float64 `json:"value"`

	// Unit is the normalized registry spelling, e.g. "volt" for "V".
	Unit string `json:"unit"`

	// OriginalText is the matched span as it appeared in the input.
	OriginalText string `json:"original_text"`

	// Start and End are byte offsets of the match in the input.
	Start int `json:"start"`
	End   int `json:"end"`

	// Quantity is the validated value; excluded from JSON, which carries
	// Value and Unit already.
	Quantity quantity.Quantity `json:"-"`
}

// Extractor scans text for quantities. The zero value is ready to use.
type Extractor struct{}

// New returns an Extractor.
func New() *Extractor {
	return &Extractor{}
}

// Extract returns every resolvable quantity in the text, in order of
// appearance. Unresolvable unit tokens are skipped.
func (e *Extractor) Extract(text string) []Extraction {
	var out []Extraction

	for _, m := range quantityPattern.FindAllStringSubmatchIndex(text, -1) {
		full := text[m[0]:m[1]]
		valueStr := text[m[2]:m[3]]
		unitToken := text[m[4]:m[5]]

		value, err := strconv.ParseFloat(valueStr, 64)
		if err != nil {
			metric.ExtractionsTotal.WithLabelValues("skipped").Inc()
			continue
		}

		normalized := NormalizeUnit(unitToken)
		q, err := quantity.New(value, normalized)
		if err != nil {
			metric.ExtractionsTotal.WithLabelValues("skipped").Inc()
			continue
		}

		metric.ExtractionsTotal.WithLabelValues("ok").Inc()
		out = append(out, Extraction{
			ID:           uuid.New().String(),
			Label:        labelFor(text, m[0], m[1], unitToken),
			Item:         itemName(text, m[1]),
			Value:        value,
			Unit:         normalized,
			OriginalText: full,
			Start:        m[0],
			End:          m[1],
			Quantity:     q,
		})
	}

	return out
}

// ExtractJSON returns the extractions encoded as indented JSON.
func (e *Extractor) ExtractJSON(text string) (string, error) {
	data, err := json.MarshalIndent(e.Extract(text), "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// ParseOne parses a single "<number> <unit>" phrase, returning the first
// resolvable quantity in the text.
func (e *Extractor) ParseOne(text string) (quantity.Quantity, bool) {
	found := e.Extract(text)
	if len(found) == 0 {
		return quantity.Quantity{}, false
	}
	return found[0].Quantity, true
}

// itemName pulls the measured item out of a trailing prepositional
// phrase: "500 ml of olive oil" yields "olive oil".
func itemName(text string, end int) string {
	after := strings.TrimSpace(text[end:])

	for _, prep := range []string{"of ", "for ", "with ", "in ", "on ", "at ", "by "} {
		idx := strings.Index(strings.ToLower(after), prep)
		if idx < 0 {
			continue
		}
		return trimItemPhrase(after[idx+len(prep):])
	}
	return ""
}

// trimItemPhrase cuts a phrase at the first punctuation or conjunction.
func trimItemPhrase(s string) string {
	var words []string
	for _, word := range strings.Fields(s) {
		lower := strings.ToLower(word)
		if lower == "and" || lower == "or" {
			break
		}
		trimmed := strings.TrimRight(word, ",.;:")
		if trimmed != "" {
			words = append(words, trimmed)
		}
		if trimmed != word {
			break
		}
	}
	return strings.Join(words, " ")
}
