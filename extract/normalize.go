package extract

import "strings"

// abbreviations maps the unit tokens people actually write to registry
// spellings. Keys are lowercase; symbol-prefixed tokens like "mA" are
// handled separately so letter case can select the prefix.
var abbreviations = map[string]string{
	// Electrical
	"v": "volt", "volts": "volt",
	"a": "ampere", "amps": "ampere", "amperes": "ampere",
	"w": "watt", "watts": "watt",
	"ω": "ohm", "ohms": "ohm",
	"f": "farad", "farads": "farad",
	"h": "henry", "henrys": "henry", "henries": "henry",
	"coulombs": "coulomb",
	"wb": "weber", "webers": "weber",
	"t": "tesla", "teslas": "tesla",
	"hz": "hertz",
	"°c": "celsius", "°f": "fahrenheit",

	// SI base
	"m": "meter", "meters": "meter", "metre": "meter", "metres": "meter",
	"kg": "kilogram", "kilograms": "kilogram",
	"g": "gram", "grams": "gram",
	"s": "second", "sec": "second", "secs": "second", "seconds": "second",
	"k": "kelvin",
	"mol": "mole", "moles": "mole",
	"cd": "candela", "candelas": "candela",

	// Common
	"l": "liter", "liters": "liter", "litre": "liter", "litres": "liter",
	"ml": "milliliter", "milliliters": "milliliter",
	"km": "kilometer", "kilometers": "kilometer",
	"cm": "centimeter", "centimeters": "centimeter",
	"mm": "millimeter", "millimeters": "millimeter",
	"km/h": "kilometer/hour", "kmh": "kilometer/hour",
	"m/s": "meter/second", "m/s²": "meter/second^2",
	"mph": "mile/hour",
	"hr": "hour", "hrs": "hour", "hours": "hour",
	"minutes": "minute", "days": "day", "weeks": "week",
	"joules": "joule", "newtons": "newton", "pascals": "pascal",
	"kwh": "kilowatt_hour",

	// Grocery and cooking
	"lb": "pound", "lbs": "pound", "pounds": "pound",
	"oz": "ounce", "ounces": "ounce",
	"pt": "pint", "pints": "pint",
	"qt": "quart", "quarts": "quart",
	"gal": "gallon", "gallons": "gallon",
	"tsp": "teaspoon", "teaspoons": "teaspoon",
	"tbsp": "tablespoon", "tablespoons": "tablespoon",
	"cups": "cup",
}

// symbolPrefixes maps SI prefix symbols to long-form prefixes. Matched
// case-sensitively: "mV" is millivolt, "MV" megavolt.
var symbolPrefixes = []struct {
	symbol string
	name   string
}{
	{"da", "deca"},
	{"Y", "yotta"}, {"Z", "zetta"}, {"E", "exa"}, {"P", "peta"},
	{"T", "tera"}, {"G", "giga"}, {"M", "mega"}, {"k", "kilo"},
	{"h", "hecto"}, {"d", "deci"}, {"c", "centi"}, {"m", "milli"},
	{"µ", "micro"}, {"μ", "micro"}, {"n", "nano"}, {"p", "pico"},
	{"f", "femto"}, {"a", "atto"}, {"z", "zepto"}, {"y", "yocto"},
}

// NormalizeUnit rewrites a free-text unit token to a registry spelling:
// abbreviation lookup, plural stripping, then prefix-symbol expansion
// ("mA" → milliampere, "kΩ" → kiloohm). Tokens it cannot improve are
// returned as-is for the registry to judge.
func NormalizeUnit(token string) string {
	token = strings.TrimSpace(token)
	lower := strings.ToLower(token)

	if full, ok := abbreviations[lower]; ok {
		return full
	}

	if singular, ok := strings.CutSuffix(lower, "s"); ok && len(singular) > 0 {
		if full, found := abbreviations[singular]; found {
			return full
		}
	}

	if lower == "ω" || token == "Ω" {
		return "ohm"
	}

	// Prefix symbol + known abbreviation, longest symbol first.
	for _, p := range symbolPrefixes {
		rest, ok := strings.CutPrefix(token, p.symbol)
		if !ok || rest == "" {
			continue
		}
		restLower := strings.ToLower(rest)
		if restLower == "ω" || rest == "Ω" {
			return p.name + "ohm"
		}
		if base, found := abbreviations[restLower]; found {
			return p.name + base
		}
		if singular, cut := strings.CutSuffix(restLower, "s"); cut {
			if base, found := abbreviations[singular]; found {
				return p.name + base
			}
		}
	}

	return token
}
