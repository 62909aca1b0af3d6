package extract

import "strings"

// quantityKeywords maps words that name a kind of measurement to the
// label reported for a nearby quantity.
var quantityKeywords = map[string]string{
	// Electrical
	"voltage": "voltage", "voltages": "voltage",
	"current": "current", "currents": "current",
	"power":      "power",
	"resistance": "resistance", "resistances": "resistance",
	"capacitance": "capacitance",
	"inductance":  "inductance",
	"frequency":   "frequency", "frequencies": "frequency",
	"charge":      "charge",
	"impedance":   "impedance",
	"conductance": "conductance",

	// Physical
	"length": "length", "distance": "distance", "height": "height", "width": "width",
	"weight": "weight", "mass": "mass",
	"time": "time", "duration": "duration",
	"temperature": "temperature",
	"volume":      "volume",
	"area":        "area",
	"speed":       "speed", "velocity": "velocity",
	"acceleration": "acceleration",
	"force":        "force",
	"pressure":     "pressure",
	"energy":       "energy",

	// General
	"value": "value", "measurement": "measurement", "reading": "reading",
	"amount": "amount", "quantity": "quantity",
}

// unitLabels is the fallback when no keyword appears near the match:
// the unit itself implies what was measured.
var unitLabels = map[string]string{
	"volt": "voltage", "v": "voltage",
	"ampere": "current", "a": "current",
	"watt": "power", "w": "power",
	"ohm": "resistance", "ω": "resistance",
	"farad": "capacitance", "f": "capacitance",
	"henry": "inductance",
	"hertz": "frequency", "hz": "frequency",
	"coulomb": "charge",
	"siemens": "conductance",
	"weber":   "magnetic_flux", "wb": "magnetic_flux",
	"tesla": "magnetic_field",
	"meter": "length", "m": "length",
	"kilogram": "mass", "kg": "mass", "gram": "mass", "g": "mass",
	"second": "time", "s": "time",
	"kelvin": "temperature", "k": "temperature",
	"celsius": "temperature", "fahrenheit": "temperature",
	"mole": "amount", "mol": "amount",
	"candela": "luminosity", "cd": "luminosity",
	"liter": "volume", "l": "volume",
}

// labelFor infers what kind of quantity a match represents: the closest
// keyword before or after the match wins; otherwise the unit token's
// default label; otherwise the generic "measurement".
func labelFor(text string, start, end int, unitToken string) string {
	before := strings.ToLower(text[:start])
	after := strings.ToLower(text[end:])

	best := ""
	bestDistance := -1

	for keyword, label := range quantityKeywords {
		if pos := strings.LastIndex(before, keyword); pos >= 0 {
			distance := len(before) - (pos + len(keyword))
			if bestDistance < 0 || distance < bestDistance {
				bestDistance = distance
				best = label
			}
		}
		if pos := strings.Index(after, keyword); pos >= 0 {
			if bestDistance < 0 || pos < bestDistance {
				bestDistance = pos
				best = label
			}
		}
	}
	if best != "" {
		return best
	}

	token := strings.ToLower(unitToken)
	if label, ok := unitLabels[token]; ok {
		return label
	}

	// Strip a prefix symbol and try again: "mA" labels as current.
	for _, p := range symbolPrefixes {
		if rest, ok := strings.CutPrefix(unitToken, p.symbol); ok {
			if label, found := unitLabels[strings.ToLower(rest)]; found {
				return label
			}
		}
	}

	return "measurement"
}
