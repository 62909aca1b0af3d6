package commands

import (
	"bytes"
	"errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/quantify/config"
	"github.com/c360studio/quantify/measure"
	"github.com/c360studio/quantify/unit"
)

func testOptions() *Options {
	return &Options{
		Config: config.DefaultConfig(),
		Store:  measure.NewStore(),
	}
}

func runCommand(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestConvertCommand(t *testing.T) {
	out, err := runCommand(t, NewConvertCommand(testOptions()), "5", "kilometer", "meter")
	require.NoError(t, err)
	assert.Equal(t, "5000 meter\n", out)

	out, err = runCommand(t, NewConvertCommand(testOptions()), "2", "hour", "minute")
	require.NoError(t, err)
	assert.Equal(t, "120 minute\n", out)
}

func TestConvertCommandJSON(t *testing.T) {
	out, err := runCommand(t, NewConvertCommand(testOptions()), "-f", "json", "5", "kilometer", "meter")
	require.NoError(t, err)
	assert.JSONEq(t, `{"value": 5000, "unit": "meter"}`, out)
}

func TestConvertCommandBadValue(t *testing.T) {
	_, err := runCommand(t, NewConvertCommand(testOptions()), "five", "meter", "centimeter")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid value")
}

func TestConvertCommandUnknownUnit(t *testing.T) {
	_, err := runCommand(t, NewConvertCommand(testOptions()), "5", "flibbertigibbet", "meter")
	require.Error(t, err)

	var unknown *unit.UnknownUnitError
	assert.True(t, errors.As(err, &unknown))
}

func TestConvertCommandIncompatible(t *testing.T) {
	_, err := runCommand(t, NewConvertCommand(testOptions()), "5", "meter", "second")
	require.Error(t, err)

	var incompatible *unit.IncompatibleDimensionsError
	assert.True(t, errors.As(err, &incompatible))
}

func TestExtractCommand(t *testing.T) {
	out, err := runCommand(t, NewExtractCommand(testOptions()),
		"The", "power", "supply", "delivers", "230", "V")
	require.NoError(t, err)
	assert.Equal(t, "power: 230 volt\n", out)
}

func TestExtractCommandWithItem(t *testing.T) {
	out, err := runCommand(t, NewExtractCommand(testOptions()),
		"add 500 ml of olive oil")
	require.NoError(t, err)
	assert.Contains(t, out, "500 milliliter")
	assert.Contains(t, out, "(olive oil)")
}

func TestExtractCommandJSON(t *testing.T) {
	out, err := runCommand(t, NewExtractCommand(testOptions()), "-f", "json", "measured 3 kg")
	require.NoError(t, err)
	assert.Contains(t, out, `"unit": "kilogram"`)
	assert.Contains(t, out, `"value": 3`)
}

func TestExtractCommandNothingFound(t *testing.T) {
	out, err := runCommand(t, NewExtractCommand(testOptions()), "nothing", "here")
	require.NoError(t, err)
	assert.Equal(t, "no quantities found\n", out)
}

func TestLookupCommand(t *testing.T) {
	out, err := runCommand(t, NewLookupCommand(testOptions()), "cup")
	require.NoError(t, err)
	assert.Equal(t, "250 milliliter\n", out)
}

func TestLookupCommandJSON(t *testing.T) {
	out, err := runCommand(t, NewLookupCommand(testOptions()), "-f", "json", "cup")
	require.NoError(t, err)
	assert.JSONEq(t, `{"value": 250, "unit": "milliliter"}`, out)
}

func TestLookupCommandFind(t *testing.T) {
	out, err := runCommand(t, NewLookupCommand(testOptions()), "--find", "engine")
	require.NoError(t, err)
	assert.Contains(t, out, "car engine")
	assert.Contains(t, out, "jet engine")
}

func TestLookupCommandFindMiss(t *testing.T) {
	_, err := runCommand(t, NewLookupCommand(testOptions()), "--find", "flibbertigibbet")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no measurements matching")
}

func TestLookupCommandParsesLiteralQuantity(t *testing.T) {
	out, err := runCommand(t, NewLookupCommand(testOptions()), "5", "meters")
	require.NoError(t, err)
	assert.Equal(t, "5 meter\n", out)
}

func TestLookupCommandParsesPhrase(t *testing.T) {
	out, err := runCommand(t, NewLookupCommand(testOptions()), "a", "normal", "bath", "of", "water")
	require.NoError(t, err)
	assert.Equal(t, "150 liter\n", out)
}

func TestLookupCommandMiss(t *testing.T) {
	_, err := runCommand(t, NewLookupCommand(testOptions()), "flibbertigibbet")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no measurement for")
}

func TestUnitsCommandList(t *testing.T) {
	out, err := runCommand(t, NewUnitsCommand(testOptions()))
	require.NoError(t, err)
	assert.Contains(t, out, "meter\n")
	assert.Contains(t, out, "pascal\n")
	assert.Contains(t, out, "celsius\n")
}

func TestUnitsCommandInspect(t *testing.T) {
	out, err := runCommand(t, NewUnitsCommand(testOptions()), "pascal")
	require.NoError(t, err)
	assert.Contains(t, out, "name:      pascal")
	assert.Contains(t, out, "length^-1*mass^1*time^-2")
}

func TestUnitsCommandInspectAffine(t *testing.T) {
	out, err := runCommand(t, NewUnitsCommand(testOptions()), "celsius")
	require.NoError(t, err)
	assert.Contains(t, out, "offset:    273.15")
}

func TestUnitsCommandInspectCompound(t *testing.T) {
	out, err := runCommand(t, NewUnitsCommand(testOptions()), "km/h")
	require.NoError(t, err)
	assert.Contains(t, out, "length^1*time^-1")
	assert.NotContains(t, out, "name:")
}

func TestUnitsCommandJSON(t *testing.T) {
	out, err := runCommand(t, NewUnitsCommand(testOptions()), "-f", "json", "meter")
	require.NoError(t, err)
	assert.Contains(t, out, `"dimension": "length^1"`)
	assert.Contains(t, out, `"name": "meter"`)
}

func TestUnitsCommandUnknown(t *testing.T) {
	_, err := runCommand(t, NewUnitsCommand(testOptions()), "flibbertigibbet")
	require.Error(t, err)

	var unknown *unit.UnknownUnitError
	assert.True(t, errors.As(err, &unknown))
}

func TestJSONOutputFallsBackToConfig(t *testing.T) {
	opts := testOptions()
	assert.False(t, opts.jsonOutput(""))
	assert.True(t, opts.jsonOutput("json"))

	opts.Config.Output.Format = "json"
	assert.True(t, opts.jsonOutput(""))
	assert.False(t, opts.jsonOutput("text"))
}
