package unit

import "github.com/c360studio/quantify/dimension"

// Kind distinguishes plain multiplicative units from affine ones.
// Downstream logic dispatches on Kind, never on the unit's spelling.
type Kind int

const (
	// KindLinear marks a unit whose conversion to base is a pure scale.
	KindLinear Kind = iota

	// KindAffine marks a unit whose conversion to base needs a scale and
	// an additive offset (celsius, fahrenheit).
	KindAffine
)

// Resolution is the outcome of resolving a unit string: the dimension
// vector plus the transform to the dimension's base unit. For a value v
// in the resolved unit, the base-unit value is v*Scale + Offset.
type Resolution struct {
	Dim    dimension.Vector
	Scale  float64
	Offset float64
	Kind   Kind
}

// Definition describes a single named unit. Many spellings map to one
// Definition; one Definition maps to one dimension vector. Within a
// dimension exactly one definition is the base unit (Scale 1, Offset 0).
type Definition struct {
	// Name is the canonical long-form name, e.g. "meter".
	Name string

	// Aliases are accepted alternative spellings and abbreviations.
	Aliases []string

	Dim    dimension.Vector
	Scale  float64
	Offset float64
	Affine bool
}

func (d *Definition) resolution() Resolution {
	kind := KindLinear
	if d.Affine {
		kind = KindAffine
	}
	return Resolution{Dim: d.Dim, Scale: d.Scale, Offset: d.Offset, Kind: kind}
}
