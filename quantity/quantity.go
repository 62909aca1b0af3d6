// Package quantity provides the Quantity value type: a float value tagged
// with a unit, with arithmetic and conversion that track the physical
// dimension of every result.
//
// Quantities are immutable; every operation returns a new Quantity. All
// failure modes are typed errors from the unit package (UnknownUnitError,
// IncompatibleDimensionsError, InvalidAffineUsageError) or the dimension
// package (UnsupportedExponentError) — operations never panic.
package quantity

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/c360studio/quantify/dimension"
	"github.com/c360studio/quantify/metric"
	"github.com/c360studio/quantify/unit"
)

// relTolerance is the relative epsilon used by Equal. Conversions round,
// so equality across units cannot be bit-exact.
const relTolerance = 1e-9

// Quantity is an immutable (value, unit) pair. The unit string is kept
// for display; arithmetic works on the cached unit.Resolution, so the
// base-unit value is always available in O(1).
type Quantity struct {
	value float64
	unit  string
	res   unit.Resolution
}

// New constructs a Quantity, resolving the unit string against the
// default registry. An unresolvable unit is a construction-time error.
func New(value float64, unitStr string) (Quantity, error) {
	label := strings.TrimSpace(unitStr)
	res, err := unit.Default.Resolve(label)
	if err != nil {
		return Quantity{}, err
	}
	return Quantity{value: value, unit: label, res: res}, nil
}

// MustNew constructs a Quantity, panicking on an unresolvable unit.
// Use for known-good literals.
func MustNew(value float64, unitStr string) Quantity {
	q, err := New(value, unitStr)
	if err != nil {
		panic(err)
	}
	return q
}

// Value returns the numeric value in the quantity's own unit.
func (q Quantity) Value() float64 { return q.value }

// Unit returns the display unit label.
func (q Quantity) Unit() string { return q.unit }

// Dimension returns the quantity's dimension vector.
func (q Quantity) Dimension() dimension.Vector { return q.res.Dim }

// Resolution returns the cached unit resolution.
func (q Quantity) Resolution() unit.Resolution { return q.res }

// BaseValue returns the value expressed in base units.
func (q Quantity) BaseValue() float64 {
	return q.value*q.res.Scale + q.res.Offset
}

// Convert returns the quantity expressed in the target unit. Fails with
// UnknownUnitError when the target does not resolve and
// IncompatibleDimensionsError when the dimensions differ. Affine targets
// and sources (celsius, fahrenheit) use the explicit affine transform.
func (q Quantity) Convert(target string) (Quantity, error) {
	label := strings.TrimSpace(target)
	res, err := unit.Default.Resolve(label)
	if err != nil {
		metric.ConversionsTotal.WithLabelValues("unknown_unit").Inc()
		return Quantity{}, err
	}
	value, err := unit.Default.Convert(q.value, q.res, res)
	if err != nil {
		metric.ConversionsTotal.WithLabelValues("incompatible").Inc()
		return Quantity{}, err
	}
	metric.ConversionsTotal.WithLabelValues("ok").Inc()
	return Quantity{value: value, unit: label, res: res}, nil
}

// Add returns q + other expressed in q's unit. The operands must share a
// dimension; other is converted into q's unit first, so
// "1 meter" + "100 centimeter" is 2 meter.
func (q Quantity) Add(other Quantity) (Quantity, error) {
	converted, err := q.coerce(other)
	if err != nil {
		return Quantity{}, err
	}
	return Quantity{value: q.value + converted, unit: q.unit, res: q.res}, nil
}

// Sub returns q - other expressed in q's unit.
func (q Quantity) Sub(other Quantity) (Quantity, error) {
	converted, err := q.coerce(other)
	if err != nil {
		return Quantity{}, err
	}
	return Quantity{value: q.value - converted, unit: q.unit, res: q.res}, nil
}

// coerce converts other's value into q's unit, failing when dimensions
// differ.
func (q Quantity) coerce(other Quantity) (float64, error) {
	if q.res.Dim != other.res.Dim {
		return 0, &unit.IncompatibleDimensionsError{From: q.res.Dim, To: other.res.Dim}
	}
	return unit.Default.Convert(other.value, other.res, q.res)
}

// Mul returns the product of two quantities. Dimension vectors add, the
// raw values multiply, and the result is labeled "<a>*<b>". Simplification
// into a named unit is deferred to an explicit Convert: volt*ampere and
// watt share a dimension vector, so the product converts to watt.
// Affine operands are rejected.
func (q Quantity) Mul(other Quantity) (Quantity, error) {
	if err := rejectAffine(q, other); err != nil {
		return Quantity{}, err
	}
	return Quantity{
		value: q.value * other.value,
		unit:  q.unit + "*" + other.unit,
		res: unit.Resolution{
			Dim:   dimension.Mul(q.res.Dim, other.res.Dim),
			Scale: q.res.Scale * other.res.Scale,
		},
	}, nil
}

// Div returns the quotient of two quantities: dimension vectors subtract,
// the raw values divide, and the result is labeled "<a>/<b>", with a
// compound divisor parenthesized so the label re-resolves to the same
// resolution ("meter/(second*second)", never "meter/second*second"). This
// holds for same-dimension operands too — 4 meter / 2 centimeter is
// 2 meter/centimeter, a dimensionless resolution with scale 100.
func (q Quantity) Div(other Quantity) (Quantity, error) {
	if err := rejectAffine(q, other); err != nil {
		return Quantity{}, err
	}
	return Quantity{
		value: q.value / other.value,
		unit:  q.unit + "/" + divisorLabel(other.unit),
		res: unit.Resolution{
			Dim:   dimension.Div(q.res.Dim, other.res.Dim),
			Scale: q.res.Scale / other.res.Scale,
		},
	}, nil
}

// divisorLabel wraps a compound divisor in parentheses. Without grouping,
// "a/b*c" reads as a·c/b under the '/'-negates-next-factor rule, so a
// divisor with its own operators must keep them bound together. Multiplier
// labels need no grouping: "x*a/b" already means x·a/b.
func divisorLabel(label string) string {
	if strings.ContainsAny(label, "*/") {
		return "(" + label + ")"
	}
	return label
}

func rejectAffine(a, b Quantity) error {
	if a.res.Kind == unit.KindAffine {
		return &unit.InvalidAffineUsageError{Token: a.unit}
	}
	if b.res.Kind == unit.KindAffine {
		return &unit.InvalidAffineUsageError{Token: b.unit}
	}
	return nil
}

// MulScalar scales the value, keeping the unit.
func (q Quantity) MulScalar(f float64) Quantity {
	return Quantity{value: q.value * f, unit: q.unit, res: q.res}
}

// DivScalar divides the value, keeping the unit.
func (q Quantity) DivScalar(f float64) Quantity {
	return Quantity{value: q.value / f, unit: q.unit, res: q.res}
}

// Pow raises the quantity to the power n. The dimension vector scales by
// n and must stay integral: (4 square_meter)^0.5 is 2 meter-dimensioned,
// while meter^0.5 fails with UnsupportedExponentError. Affine quantities
// only admit n == 1.
func (q Quantity) Pow(n float64) (Quantity, error) {
	if n == 1 {
		return q, nil
	}
	if q.res.Kind == unit.KindAffine {
		return Quantity{}, &unit.InvalidAffineUsageError{Token: q.unit}
	}
	dim, err := dimension.Pow(q.res.Dim, n)
	if err != nil {
		return Quantity{}, err
	}
	return Quantity{
		value: math.Pow(q.value, n),
		unit:  powLabel(q.unit, n),
		res: unit.Resolution{
			Dim:   dim,
			Scale: math.Pow(q.res.Scale, n),
		},
	}, nil
}

func powLabel(label string, n float64) string {
	if strings.ContainsAny(label, "*/^") {
		return fmt.Sprintf("(%s)^%s", label, strconv.FormatFloat(n, 'g', -1, 64))
	}
	return fmt.Sprintf("%s^%s", label, strconv.FormatFloat(n, 'g', -1, 64))
}

// Neg returns the quantity with its value negated.
func (q Quantity) Neg() Quantity {
	return Quantity{value: -q.value, unit: q.unit, res: q.res}
}

// Abs returns the quantity with the absolute value of its value.
func (q Quantity) Abs() Quantity {
	return Quantity{value: math.Abs(q.value), unit: q.unit, res: q.res}
}

// Equal reports whether two quantities represent the same measurement:
// equal dimension vectors and base-unit values that match within a
// relative tolerance, so 1 meter equals 100 centimeter. Quantities of
// different dimensions are unequal rather than an error; this is the
// usual value-equality contract and deliberately asymmetric with the
// ordering comparisons, which do fail across dimensions.
func (q Quantity) Equal(other Quantity) bool {
	if q.res.Dim != other.res.Dim {
		return false
	}
	return approxEqual(q.BaseValue(), other.BaseValue())
}

// Compare orders two quantities of the same dimension by base-unit value,
// returning -1, 0, or +1. Fails with IncompatibleDimensionsError across
// dimensions.
func (q Quantity) Compare(other Quantity) (int, error) {
	if q.res.Dim != other.res.Dim {
		return 0, &unit.IncompatibleDimensionsError{From: q.res.Dim, To: other.res.Dim}
	}
	a, b := q.BaseValue(), other.BaseValue()
	switch {
	case approxEqual(a, b):
		return 0, nil
	case a < b:
		return -1, nil
	default:
		return 1, nil
	}
}

// Less reports whether q is strictly smaller than other.
func (q Quantity) Less(other Quantity) (bool, error) {
	c, err := q.Compare(other)
	return c < 0, err
}

// LessEqual reports whether q is at most other.
func (q Quantity) LessEqual(other Quantity) (bool, error) {
	c, err := q.Compare(other)
	return c <= 0, err
}

// Greater reports whether q is strictly larger than other.
func (q Quantity) Greater(other Quantity) (bool, error) {
	c, err := q.Compare(other)
	return c > 0, err
}

// GreaterEqual reports whether q is at least other.
func (q Quantity) GreaterEqual(other Quantity) (bool, error) {
	c, err := q.Compare(other)
	return c >= 0, err
}

func approxEqual(a, b float64) bool {
	diff := math.Abs(a - b)
	if diff <= 1e-12 {
		return true
	}
	return diff <= relTolerance*math.Max(math.Abs(a), math.Abs(b))
}

// String renders the quantity as "<value> <unit>" without rounding.
func (q Quantity) String() string {
	return strconv.FormatFloat(q.value, 'g', -1, 64) + " " + q.unit
}

// GoString renders the constructor-echo form used for debugging, e.g.
// Quantity(5, 'meter').
func (q Quantity) GoString() string {
	return fmt.Sprintf("Quantity(%s, '%s')", strconv.FormatFloat(q.value, 'g', -1, 64), q.unit)
}

// quantityJSON is the wire form for JSON round-trips.
type quantityJSON struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

// MarshalJSON encodes the quantity as {"value": …, "unit": …}.
func (q Quantity) MarshalJSON() ([]byte, error) {
	return json.Marshal(quantityJSON{Value: q.value, Unit: q.unit})
}

// UnmarshalJSON decodes and re-resolves the unit; an unknown unit fails
// here, not later.
func (q *Quantity) UnmarshalJSON(data []byte) error {
	var w quantityJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	parsed, err := New(w.Value, w.Unit)
	if err != nil {
		return err
	}
	*q = parsed
	return nil
}
