package unit

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/quantify/dimension"
)

func resolve(t *testing.T, s string) Resolution {
	t.Helper()
	res, err := Default.Resolve(s)
	require.NoError(t, err, "resolve %q", s)
	return res
}

func TestResolveCanonicalName(t *testing.T) {
	res := resolve(t, "meter")
	assert.Equal(t, dimension.Vector{Length: 1}, res.Dim)
	assert.Equal(t, 1.0, res.Scale)
	assert.Equal(t, KindLinear, res.Kind)
}

func TestResolveAliasesAndCase(t *testing.T) {
	for _, spelling := range []string{"m", "metre", "Meter", "METER"} {
		res := resolve(t, spelling)
		assert.Equal(t, dimension.Vector{Length: 1}, res.Dim, spelling)
		assert.Equal(t, 1.0, res.Scale, spelling)
	}

	// Exact spellings win over prefix decomposition: "min" is minute,
	// not milli-inch, and "a" is ampere, not atto-anything.
	assert.Equal(t, 60.0, resolve(t, "min").Scale)
	assert.Equal(t, dimension.Vector{Current: 1}, resolve(t, "a").Dim)
}

func TestResolvePrefixedNames(t *testing.T) {
	km := resolve(t, "kilometer")
	assert.Equal(t, dimension.Vector{Length: 1}, km.Dim)
	assert.Equal(t, 1000.0, km.Scale)

	uf := resolve(t, "microfarad")
	assert.Equal(t, dimension.Vector{Length: -2, Mass: -1, Time: 4, Current: 2}, uf.Dim)
	assert.InEpsilon(t, 1e-6, uf.Scale, 1e-12)

	// Longest prefix name wins: "mmol" is milli+mole.
	mmol := resolve(t, "mmol")
	assert.Equal(t, dimension.Vector{Amount: 1}, mmol.Dim)
	assert.InEpsilon(t, 1e-3, mmol.Scale, 1e-12)
}

func TestResolvePrefixSymbolsAreCaseSensitive(t *testing.T) {
	milli := resolve(t, "mV")
	mega := resolve(t, "MV")

	assert.Equal(t, milli.Dim, mega.Dim)
	assert.InEpsilon(t, 1e-3, milli.Scale, 1e-12)
	assert.InEpsilon(t, 1e6, mega.Scale, 1e-12)

	us := resolve(t, "µs")
	assert.Equal(t, dimension.Vector{Time: 1}, us.Dim)
	assert.InEpsilon(t, 1e-6, us.Scale, 1e-12)
}

func TestResolveCompoundExpression(t *testing.T) {
	newton := resolve(t, "kg*m/s^2")
	assert.Equal(t, dimension.Vector{Length: 1, Mass: 1, Time: -2}, newton.Dim)
	assert.Equal(t, 1.0, newton.Scale)

	kmh := resolve(t, "kilometer/hour")
	assert.Equal(t, dimension.Vector{Length: 1, Time: -1}, kmh.Dim)
	assert.InEpsilon(t, 1000.0/3600.0, kmh.Scale, 1e-12)

	// Each '/' negates only the factor that follows it.
	accel := resolve(t, "meter/second/second")
	assert.Equal(t, dimension.Vector{Length: 1, Time: -2}, accel.Dim)
}

func TestResolvePerSpelling(t *testing.T) {
	assert.Equal(t, resolve(t, "meter/second"), resolve(t, "meter_per_second"))
}

func TestResolveReciprocal(t *testing.T) {
	res := resolve(t, "1/second")
	assert.Equal(t, dimension.Vector{Time: -1}, res.Dim)
	assert.Equal(t, 1.0, res.Scale)
}

func TestResolveExponentSpellings(t *testing.T) {
	want := resolve(t, "meter^2")
	for _, spelling := range []string{"m²", "meter_squared", "square_meter"} {
		assert.Equal(t, want, resolve(t, spelling), spelling)
	}

	vol := resolve(t, "cubic_meter")
	assert.Equal(t, dimension.Vector{Length: 3}, vol.Dim)
	assert.Equal(t, resolve(t, "m³"), vol)
}

func TestResolveParenthesizedGroups(t *testing.T) {
	accel := resolve(t, "meter/(second*second)")
	assert.Equal(t, dimension.Vector{Length: 1, Time: -2}, accel.Dim)
	assert.Equal(t, resolve(t, "meter/second^2"), accel)

	// Without grouping the same spelling reads as meter·second/second.
	flat := resolve(t, "meter/second*second")
	assert.Equal(t, dimension.Vector{Length: 1}, flat.Dim)

	perSpeed := resolve(t, "watt/(meter/second)")
	assert.Equal(t, resolve(t, "watt*second/meter"), perSpeed)
}

func TestResolveExponentOnGroup(t *testing.T) {
	squared := resolve(t, "(meter/second)^2")
	assert.Equal(t, dimension.Vector{Length: 2, Time: -2}, squared.Dim)
	assert.Equal(t, resolve(t, "meter^2/second^2"), squared)

	kmh := resolve(t, "(kilometer/hour)²")
	assert.InEpsilon(t, (1000.0/3600.0)*(1000.0/3600.0), kmh.Scale, 1e-12)

	inverse := resolve(t, "(meter/second)^-1")
	assert.Equal(t, dimension.Vector{Length: -1, Time: 1}, inverse.Dim)
}

func TestResolveMalformedGroups(t *testing.T) {
	for _, expr := range []string{"(meter", "()", "(meter/second)watt"} {
		_, err := Default.Resolve(expr)
		assert.Error(t, err, expr)
	}

	_, err := Default.Resolve("(celsius)*meter")
	var affineErr *InvalidAffineUsageError
	require.True(t, errors.As(err, &affineErr))
}

func TestResolveNegativeExponent(t *testing.T) {
	res := resolve(t, "second^-1")
	assert.Equal(t, dimension.Vector{Time: -1}, res.Dim)
}

func TestResolveFractionalExponent(t *testing.T) {
	side := resolve(t, "square_meter^0.5")
	assert.Equal(t, dimension.Vector{Length: 1}, side.Dim)
	assert.Equal(t, 1.0, side.Scale)

	root := resolve(t, "hectare^0.5")
	assert.Equal(t, dimension.Vector{Length: 1}, root.Dim)
	assert.InEpsilon(t, 100.0, root.Scale, 1e-12)

	// Fractional exponents that would leave a fractional dimension
	// exponent are rejected.
	_, err := Default.Resolve("meter^0.5")
	require.Error(t, err)

	var unsupported *dimension.UnsupportedExponentError
	assert.True(t, errors.As(err, &unsupported))
}

func TestResolveAffine(t *testing.T) {
	c := resolve(t, "celsius")
	assert.Equal(t, KindAffine, c.Kind)
	assert.Equal(t, 273.15, c.Offset)

	f := resolve(t, "fahrenheit")
	assert.Equal(t, KindAffine, f.Kind)
	assert.Equal(t, dimension.Vector{Temperature: 1}, f.Dim)
}

func TestAffineOnlyStandsAlone(t *testing.T) {
	for _, expr := range []string{"celsius*meter", "celsius^2", "1/celsius", "meter/fahrenheit"} {
		_, err := Default.Resolve(expr)
		require.Error(t, err, expr)

		var affineErr *InvalidAffineUsageError
		assert.True(t, errors.As(err, &affineErr), expr)
	}
}

func TestAffineUnitsTakeNoPrefix(t *testing.T) {
	_, err := Default.Resolve("millicelsius")
	require.Error(t, err)

	var unknown *UnknownUnitError
	assert.True(t, errors.As(err, &unknown))
}

func TestResolveUnknownUnit(t *testing.T) {
	_, err := Default.Resolve("flibbertigibbet")
	require.Error(t, err)

	var unknown *UnknownUnitError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "flibbertigibbet", unknown.Token)
}

func TestConvertFactor(t *testing.T) {
	factor, err := Default.ConvertFactor("meter", "centimeter")
	require.NoError(t, err)
	assert.InEpsilon(t, 100.0, factor, 1e-12)

	_, err = Default.ConvertFactor("meter", "second")
	var incompatible *IncompatibleDimensionsError
	require.True(t, errors.As(err, &incompatible))

	_, err = Default.ConvertFactor("meter", "flibbertigibbet")
	var unknown *UnknownUnitError
	require.True(t, errors.As(err, &unknown))
}

func TestConvertFactorNamesAffineUnit(t *testing.T) {
	_, err := Default.ConvertFactor("celsius", "kelvin")
	var affineErr *InvalidAffineUsageError
	require.True(t, errors.As(err, &affineErr))
	assert.Equal(t, "celsius", affineErr.Token)

	_, err = Default.ConvertFactor("kelvin", "fahrenheit")
	require.True(t, errors.As(err, &affineErr))
	assert.Equal(t, "fahrenheit", affineErr.Token)
}

func TestConvertAffine(t *testing.T) {
	c := resolve(t, "celsius")
	f := resolve(t, "fahrenheit")
	k := resolve(t, "kelvin")

	got, err := Default.Convert(0, c, f)
	require.NoError(t, err)
	assert.InDelta(t, 32.0, got, 1e-9)

	got, err = Default.Convert(100, c, f)
	require.NoError(t, err)
	assert.InDelta(t, 212.0, got, 1e-9)

	got, err = Default.Convert(300, k, c)
	require.NoError(t, err)
	assert.InDelta(t, 26.85, got, 1e-9)
}

func TestResolveIsConcurrencySafe(t *testing.T) {
	reg := NewRegistry()
	want, err := reg.Resolve("kilogram*meter/second^2")
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := reg.Resolve("kilogram*meter/second^2")
			assert.NoError(t, err)
			assert.Equal(t, want, got)
		}()
	}
	wg.Wait()
}

func TestNamesAndLookup(t *testing.T) {
	names := Default.Names()
	assert.Contains(t, names, "meter")
	assert.Contains(t, names, "celsius")
	assert.NotContains(t, names, "m")

	def, ok := Default.Lookup("KG")
	require.True(t, ok)
	assert.Equal(t, "kilogram", def.Name)

	_, ok = Default.Lookup("kilometer")
	assert.False(t, ok, "derived spellings have no table entry")
}
