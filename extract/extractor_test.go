package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractElectrical(t *testing.T) {
	found := New().Extract("The power supply delivers 230 V at 10 A")
	require.Len(t, found, 2)

	assert.Equal(t, 230.0, found[0].Value)
	assert.Equal(t, "volt", found[0].Unit)
	assert.Equal(t, "230 V", found[0].OriginalText)
	assert.Equal(t, "power", found[0].Label)
	assert.NotEmpty(t, found[0].ID)

	assert.Equal(t, 10.0, found[1].Value)
	assert.Equal(t, "ampere", found[1].Unit)
}

func TestExtractCompoundUnit(t *testing.T) {
	found := New().Extract("cruising at 100 km/h on the highway")
	require.Len(t, found, 1)

	assert.Equal(t, "kilometer/hour", found[0].Unit)
	assert.Equal(t, 100.0, found[0].Value)
}

func TestExtractPrefixSymbols(t *testing.T) {
	found := New().Extract("a 47 kΩ resistor and a 100 mA draw")
	require.Len(t, found, 2)

	assert.Equal(t, "kiloohm", found[0].Unit)
	assert.Equal(t, "milliampere", found[1].Unit)
	assert.Equal(t, "current", found[1].Label)
}

func TestExtractItem(t *testing.T) {
	found := New().Extract("add 500 ml of olive oil, then stir")
	require.Len(t, found, 1)

	assert.Equal(t, "milliliter", found[0].Unit)
	assert.Equal(t, "olive oil", found[0].Item)
}

func TestExtractScientificNotation(t *testing.T) {
	found := New().Extract("electron charge is about 1.6e-19 coulombs")
	require.Len(t, found, 1)

	assert.Equal(t, 1.6e-19, found[0].Value)
	assert.Equal(t, "coulomb", found[0].Unit)
}

func TestExtractKeywordLabelWinsOverUnit(t *testing.T) {
	found := New().Extract("the voltage was 5 mV")
	require.Len(t, found, 1)
	assert.Equal(t, "voltage", found[0].Label)
}

func TestExtractSkipsUnresolvableTokens(t *testing.T) {
	found := New().Extract("scored 30 goals and ran 5 km")
	require.Len(t, found, 1)
	assert.Equal(t, "kilometer", found[0].Unit)
}

func TestExtractOffsets(t *testing.T) {
	text := "exactly 2 m wide"
	found := New().Extract(text)
	require.Len(t, found, 1)

	assert.Equal(t, text[found[0].Start:found[0].End], found[0].OriginalText)
	assert.Equal(t, "2 m", found[0].OriginalText)
}

func TestExtractQuantityIsUsable(t *testing.T) {
	found := New().Extract("a 2 km walk")
	require.Len(t, found, 1)

	m, err := found[0].Quantity.Convert("meter")
	require.NoError(t, err)
	assert.Equal(t, 2000.0, m.Value())
}

func TestParseOne(t *testing.T) {
	q, ok := New().ParseOne("5 meters")
	require.True(t, ok)
	assert.Equal(t, 5.0, q.Value())
	assert.Equal(t, "meter", q.Unit())

	_, ok = New().ParseOne("no quantities here")
	assert.False(t, ok)
}

func TestExtractJSON(t *testing.T) {
	out, err := New().ExtractJSON("measured 3 kg")
	require.NoError(t, err)
	assert.Contains(t, out, `"unit": "kilogram"`)
	assert.Contains(t, out, `"value": 3`)
}

func TestNormalizeUnit(t *testing.T) {
	cases := map[string]string{
		"V":       "volt",
		"volts":   "volt",
		"A":       "ampere",
		"kg":      "kilogram",
		"ml":      "milliliter",
		"km/h":    "kilometer/hour",
		"mph":     "mile/hour",
		"mV":      "millivolt",
		"MV":      "megavolt",
		"µF":      "microfarad",
		"kΩ":      "kiloohm",
		"Ω":       "ohm",
		"tbsp":    "tablespoon",
		"seconds": "second",
		"kWh":     "kilowatt_hour",
	}
	for token, want := range cases {
		assert.Equal(t, want, NormalizeUnit(token), token)
	}

	// Unknown tokens pass through for the registry to reject.
	assert.Equal(t, "goals", NormalizeUnit("goals"))
}
