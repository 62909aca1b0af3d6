// Package dimension implements exponent-vector algebra over the physical
// base dimensions used for dimensional analysis.
//
// A Vector records the integer exponent of each base dimension: the seven
// SI base dimensions plus plane angle and solid angle. Units map to
// Vectors (meter → length^1, watt → length^2·mass^1·time^-3) and quantity
// arithmetic combines Vectors: multiplication adds exponents, division
// subtracts them, exponentiation scales them. Two quantities are addable
// or comparable exactly when their Vectors are equal.
package dimension

import (
	"fmt"
	"math"
	"strings"
)

// integerTolerance bounds how far a scaled exponent may drift from an
// integer before Pow rejects it. Exponents are small, so drift only comes
// from the float multiply itself.
const integerTolerance = 1e-9

// Vector holds the exponent of each base dimension. The zero value is
// dimensionless. Vectors are value types: all operations return a new
// Vector and equality is the ordinary == on structs.
type Vector struct {
	Length      int
	Mass        int
	Time        int
	Current     int
	Temperature int
	Amount      int
	Luminosity  int
	Angle       int
	SolidAngle  int
}

// Mul returns the dimension of a product: element-wise sum of exponents.
func Mul(a, b Vector) Vector {
	return Vector{
		Length:      a.Length + b.Length,
		Mass:        a.Mass + b.Mass,
		Time:        a.Time + b.Time,
		Current:     a.Current + b.Current,
		Temperature: a.Temperature + b.Temperature,
		Amount:      a.Amount + b.Amount,
		Luminosity:  a.Luminosity + b.Luminosity,
		Angle:       a.Angle + b.Angle,
		SolidAngle:  a.SolidAngle + b.SolidAngle,
	}
}

// Div returns the dimension of a quotient: element-wise difference of
// exponents.
func Div(a, b Vector) Vector {
	return Vector{
		Length:      a.Length - b.Length,
		Mass:        a.Mass - b.Mass,
		Time:        a.Time - b.Time,
		Current:     a.Current - b.Current,
		Temperature: a.Temperature - b.Temperature,
		Amount:      a.Amount - b.Amount,
		Luminosity:  a.Luminosity - b.Luminosity,
		Angle:       a.Angle - b.Angle,
		SolidAngle:  a.SolidAngle - b.SolidAngle,
	}
}

// PowInt returns v with every exponent multiplied by n.
func PowInt(v Vector, n int) Vector {
	return Vector{
		Length:      v.Length * n,
		Mass:        v.Mass * n,
		Time:        v.Time * n,
		Current:     v.Current * n,
		Temperature: v.Temperature * n,
		Amount:      v.Amount * n,
		Luminosity:  v.Luminosity * n,
		Angle:       v.Angle * n,
		SolidAngle:  v.SolidAngle * n,
	}
}

// Pow returns v with every exponent scaled by n. Non-integer n is legal
// only when every scaled exponent lands on an integer (e.g. raising an
// area to 0.5); otherwise an UnsupportedExponentError is returned.
func Pow(v Vector, n float64) (Vector, error) {
	var out Vector
	fields := []struct {
		exp int
		dst *int
	}{
		{v.Length, &out.Length},
		{v.Mass, &out.Mass},
		{v.Time, &out.Time},
		{v.Current, &out.Current},
		{v.Temperature, &out.Temperature},
		{v.Amount, &out.Amount},
		{v.Luminosity, &out.Luminosity},
		{v.Angle, &out.Angle},
		{v.SolidAngle, &out.SolidAngle},
	}
	for _, f := range fields {
		scaled := float64(f.exp) * n
		rounded := math.Round(scaled)
		if math.Abs(scaled-rounded) > integerTolerance {
			return Vector{}, &UnsupportedExponentError{Exponent: n}
		}
		*f.dst = int(rounded)
	}
	return out, nil
}

// IsZero reports whether v is dimensionless.
func (v Vector) IsZero() bool {
	return v == Vector{}
}

// String renders the vector as a product of base-dimension factors, e.g.
// "length^1*time^-2". Dimensionless vectors render as "1".
func (v Vector) String() string {
	parts := make([]string, 0, 4)
	for _, f := range []struct {
		name string
		exp  int
	}{
		{"length", v.Length},
		{"mass", v.Mass},
		{"time", v.Time},
		{"current", v.Current},
		{"temperature", v.Temperature},
		{"amount", v.Amount},
		{"luminosity", v.Luminosity},
		{"angle", v.Angle},
		{"solid_angle", v.SolidAngle},
	} {
		if f.exp != 0 {
			parts = append(parts, fmt.Sprintf("%s^%d", f.name, f.exp))
		}
	}
	if len(parts) == 0 {
		return "1"
	}
	return strings.Join(parts, "*")
}

// UnsupportedExponentError reports an exponentiation that would require a
// fractional dimension exponent.
type UnsupportedExponentError struct {
	Exponent float64
}

func (e *UnsupportedExponentError) Error() string {
	return fmt.Sprintf("unsupported exponent %g: would produce a fractional dimension exponent", e.Exponent)
}
