package unit

import (
	"fmt"

	"github.com/c360studio/quantify/dimension"
)

// UnknownUnitError is returned when a unit string (or a token inside a
// compound expression) does not resolve via canonical name, alias, or
// prefix decomposition.
type UnknownUnitError struct {
	Token string
}

func (e *UnknownUnitError) Error() string {
	return fmt.Sprintf("unknown unit: %s", e.Token)
}

// IncompatibleDimensionsError is returned when an operation requiring
// equal dimension vectors was given operands whose vectors differ.
type IncompatibleDimensionsError struct {
	From dimension.Vector
	To   dimension.Vector
}

func (e *IncompatibleDimensionsError) Error() string {
	return fmt.Sprintf("incompatible dimensions: %s vs %s", e.From, e.To)
}

// InvalidAffineUsageError is returned when an offset-based unit (celsius,
// fahrenheit) appears inside a compound or multiplicative expression.
// Offsets do not distribute over multiplication, so the transform is
// undefined there.
type InvalidAffineUsageError struct {
	Token string
}

func (e *InvalidAffineUsageError) Error() string {
	return fmt.Sprintf("affine unit %q may only be used on its own, not in a compound expression", e.Token)
}
