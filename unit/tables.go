package unit

import (
	"math"

	"github.com/c360studio/quantify/dimension"
)

// Dimension vectors for the named units below. Derived vectors are spelled
// out rather than computed so each table row is self-contained.
var (
	dimLength      = dimension.Vector{Length: 1}
	dimMass        = dimension.Vector{Mass: 1}
	dimTime        = dimension.Vector{Time: 1}
	dimCurrent     = dimension.Vector{Current: 1}
	dimTemperature = dimension.Vector{Temperature: 1}
	dimAmount      = dimension.Vector{Amount: 1}
	dimLuminosity  = dimension.Vector{Luminosity: 1}
	dimAngle       = dimension.Vector{Angle: 1}
	dimSolidAngle  = dimension.Vector{SolidAngle: 1}

	dimArea         = dimension.Vector{Length: 2}
	dimVolume       = dimension.Vector{Length: 3}
	dimVelocity     = dimension.Vector{Length: 1, Time: -1}
	dimAcceleration = dimension.Vector{Length: 1, Time: -2}
	dimFrequency    = dimension.Vector{Time: -1}
	dimForce        = dimension.Vector{Length: 1, Mass: 1, Time: -2}
	dimPressure     = dimension.Vector{Length: -1, Mass: 1, Time: -2}
	dimEnergy       = dimension.Vector{Length: 2, Mass: 1, Time: -2}
	dimPower        = dimension.Vector{Length: 2, Mass: 1, Time: -3}
	dimCharge       = dimension.Vector{Time: 1, Current: 1}
	dimVoltage      = dimension.Vector{Length: 2, Mass: 1, Time: -3, Current: -1}
	dimCapacitance  = dimension.Vector{Length: -2, Mass: -1, Time: 4, Current: 2}
	dimResistance   = dimension.Vector{Length: 2, Mass: 1, Time: -3, Current: -2}
	dimConductance  = dimension.Vector{Length: -2, Mass: -1, Time: 3, Current: 2}
	dimMagneticFlux = dimension.Vector{Length: 2, Mass: 1, Time: -2, Current: -1}
	dimFluxDensity  = dimension.Vector{Mass: 1, Time: -2, Current: -1}
	dimInductance   = dimension.Vector{Length: 2, Mass: 1, Time: -2, Current: -2}
	dimLuminousFlux = dimension.Vector{Luminosity: 1, SolidAngle: 1}
	dimIlluminance  = dimension.Vector{Length: -2, Luminosity: 1, SolidAngle: 1}
	dimAbsorbedDose = dimension.Vector{Length: 2, Time: -2}
	dimCatalytic    = dimension.Vector{Amount: 1, Time: -1}
	dimDynViscosity = dimension.Vector{Length: -1, Mass: 1, Time: -1}
	dimKinViscosity = dimension.Vector{Length: 2, Time: -1}
)

// definitions lists every named unit the registry knows. Prefixed forms
// (kilometer, microfarad) and compound expressions (meter/second^2) are
// derived at resolve time rather than enumerated here.
var definitions = []Definition{
	// SI base units.
	{Name: "meter", Aliases: []string{"metre", "m"}, Dim: dimLength, Scale: 1},
	{Name: "kilogram", Aliases: []string{"kg"}, Dim: dimMass, Scale: 1},
	{Name: "second", Aliases: []string{"sec", "s"}, Dim: dimTime, Scale: 1},
	{Name: "ampere", Aliases: []string{"amp", "a"}, Dim: dimCurrent, Scale: 1},
	{Name: "kelvin", Aliases: []string{"k"}, Dim: dimTemperature, Scale: 1},
	{Name: "mole", Aliases: []string{"mol"}, Dim: dimAmount, Scale: 1},
	{Name: "candela", Aliases: []string{"cd"}, Dim: dimLuminosity, Scale: 1},
	{Name: "radian", Aliases: []string{"rad"}, Dim: dimAngle, Scale: 1},
	{Name: "steradian", Aliases: []string{"sr"}, Dim: dimSolidAngle, Scale: 1},

	// Affine temperature scales. kelvin = celsius + 273.15;
	// kelvin = fahrenheit*5/9 + 255.3722…
	{Name: "celsius", Aliases: []string{"°c"}, Dim: dimTemperature, Scale: 1, Offset: 273.15, Affine: true},
	{Name: "fahrenheit", Aliases: []string{"°f"}, Dim: dimTemperature, Scale: 5.0 / 9.0, Offset: 459.67 * 5.0 / 9.0, Affine: true},

	// SI derived units.
	{Name: "hertz", Aliases: []string{"hz"}, Dim: dimFrequency, Scale: 1},
	{Name: "newton", Aliases: []string{"n"}, Dim: dimForce, Scale: 1},
	{Name: "pascal", Aliases: []string{"pa"}, Dim: dimPressure, Scale: 1},
	{Name: "joule", Aliases: []string{"j"}, Dim: dimEnergy, Scale: 1},
	{Name: "watt", Aliases: []string{"w"}, Dim: dimPower, Scale: 1},
	{Name: "coulomb", Dim: dimCharge, Scale: 1},
	{Name: "volt", Aliases: []string{"v"}, Dim: dimVoltage, Scale: 1},
	{Name: "farad", Dim: dimCapacitance, Scale: 1},
	{Name: "ohm", Aliases: []string{"ω"}, Dim: dimResistance, Scale: 1},
	{Name: "siemens", Dim: dimConductance, Scale: 1},
	{Name: "weber", Aliases: []string{"wb"}, Dim: dimMagneticFlux, Scale: 1},
	{Name: "tesla", Dim: dimFluxDensity, Scale: 1},
	{Name: "henry", Dim: dimInductance, Scale: 1},
	{Name: "lumen", Aliases: []string{"lm"}, Dim: dimLuminousFlux, Scale: 1},
	{Name: "lux", Aliases: []string{"lx"}, Dim: dimIlluminance, Scale: 1},
	{Name: "becquerel", Aliases: []string{"bq"}, Dim: dimFrequency, Scale: 1},
	{Name: "gray", Aliases: []string{"gy"}, Dim: dimAbsorbedDose, Scale: 1},
	{Name: "sievert", Aliases: []string{"sv"}, Dim: dimAbsorbedDose, Scale: 1},
	{Name: "katal", Aliases: []string{"kat"}, Dim: dimCatalytic, Scale: 1},

	// Mass.
	{Name: "gram", Aliases: []string{"g"}, Dim: dimMass, Scale: 1e-3},
	{Name: "tonne", Aliases: []string{"metric_ton"}, Dim: dimMass, Scale: 1000},
	{Name: "pound", Aliases: []string{"lb", "lbs"}, Dim: dimMass, Scale: 0.45359237},
	{Name: "ounce", Aliases: []string{"oz"}, Dim: dimMass, Scale: 0.028349523125},

	// Time.
	{Name: "minute", Aliases: []string{"min"}, Dim: dimTime, Scale: 60},
	{Name: "hour", Aliases: []string{"hr", "h"}, Dim: dimTime, Scale: 3600},
	{Name: "day", Dim: dimTime, Scale: 86400},
	{Name: "week", Dim: dimTime, Scale: 604800},

	// Length.
	{Name: "mile", Aliases: []string{"mi"}, Dim: dimLength, Scale: 1609.34},
	{Name: "nautical_mile", Aliases: []string{"nmi"}, Dim: dimLength, Scale: 1852},
	{Name: "foot", Aliases: []string{"feet", "ft"}, Dim: dimLength, Scale: 0.3048},
	{Name: "inch", Aliases: []string{"in"}, Dim: dimLength, Scale: 0.0254},
	{Name: "yard", Aliases: []string{"yd"}, Dim: dimLength, Scale: 0.9144},

	// Area.
	{Name: "hectare", Aliases: []string{"ha"}, Dim: dimArea, Scale: 1e4},
	{Name: "acre", Dim: dimArea, Scale: 4046.8564224},

	// Volume. The liter is scaled to the cubic meter.
	{Name: "liter", Aliases: []string{"litre", "l"}, Dim: dimVolume, Scale: 1e-3},
	{Name: "gallon", Aliases: []string{"gallon_us", "gal"}, Dim: dimVolume, Scale: 3.78541e-3},
	{Name: "gallon_uk", Dim: dimVolume, Scale: 4.54609e-3},
	{Name: "quart", Aliases: []string{"qt"}, Dim: dimVolume, Scale: 0.946353e-3},
	{Name: "pint", Aliases: []string{"pt"}, Dim: dimVolume, Scale: 0.473176e-3},
	{Name: "cup", Dim: dimVolume, Scale: 250e-6},
	{Name: "tablespoon", Aliases: []string{"tbsp"}, Dim: dimVolume, Scale: 15e-6},
	{Name: "teaspoon", Aliases: []string{"tsp"}, Dim: dimVolume, Scale: 5e-6},

	// Velocity and acceleration.
	{Name: "knot", Aliases: []string{"kn"}, Dim: dimVelocity, Scale: 1852.0 / 3600.0},
	{Name: "standard_gravity", Dim: dimAcceleration, Scale: 9.80665},

	// Pressure.
	{Name: "bar", Dim: dimPressure, Scale: 1e5},
	{Name: "atmosphere", Aliases: []string{"atm"}, Dim: dimPressure, Scale: 101325},
	{Name: "torr", Dim: dimPressure, Scale: 133.322},
	{Name: "psi", Dim: dimPressure, Scale: 6894.757293168},

	// Energy.
	{Name: "calorie", Aliases: []string{"cal"}, Dim: dimEnergy, Scale: 4.184},
	{Name: "electronvolt", Aliases: []string{"ev"}, Dim: dimEnergy, Scale: 1.60218e-19},
	{Name: "british_thermal_unit", Aliases: []string{"btu"}, Dim: dimEnergy, Scale: 1055.06},
	{Name: "watt_hour", Aliases: []string{"wh"}, Dim: dimEnergy, Scale: 3600},

	// Power.
	{Name: "horsepower", Aliases: []string{"hp"}, Dim: dimPower, Scale: 745.7},

	// Charge.
	{Name: "ampere_hour", Aliases: []string{"ah"}, Dim: dimCharge, Scale: 3600},

	// Angle.
	{Name: "degree", Aliases: []string{"deg"}, Dim: dimAngle, Scale: math.Pi / 180},
	{Name: "arcminute", Dim: dimAngle, Scale: math.Pi / 10800},
	{Name: "arcsecond", Dim: dimAngle, Scale: math.Pi / 648000},
	{Name: "revolution", Aliases: []string{"rev"}, Dim: dimAngle, Scale: 2 * math.Pi},

	// Viscosity.
	{Name: "poise", Dim: dimDynViscosity, Scale: 0.1},
	{Name: "stokes", Dim: dimKinViscosity, Scale: 1e-4},
}

// siPrefix is a named decimal prefix with its multiplier.
type siPrefix struct {
	name   string // long form, e.g. "milli"
	symbol string // short form, e.g. "m"; matched case-sensitively
	factor float64
}

// siPrefixes is ordered largest-magnitude first; matching iterates
// longest-name-first so "micro" wins over any shorter overlap.
var siPrefixes = []siPrefix{
	{"yotta", "Y", 1e24},
	{"zetta", "Z", 1e21},
	{"exa", "E", 1e18},
	{"peta", "P", 1e15},
	{"tera", "T", 1e12},
	{"giga", "G", 1e9},
	{"mega", "M", 1e6},
	{"kilo", "k", 1e3},
	{"hecto", "h", 1e2},
	{"deca", "da", 1e1},
	{"deci", "d", 1e-1},
	{"centi", "c", 1e-2},
	{"milli", "m", 1e-3},
	{"micro", "µ", 1e-6},
	{"nano", "n", 1e-9},
	{"pico", "p", 1e-12},
	{"femto", "f", 1e-15},
	{"atto", "a", 1e-18},
	{"zepto", "z", 1e-21},
	{"yocto", "y", 1e-24},
}
