package radix

import (
	"fmt"

	"github.com/zeebo/errs"
)

// Error is the error class for this package.
var Error = errs.Class("radix")

// Decoding errors.
var (
	ErrUnsignedNegative = Error.New("Negative numbers not allowed in unsigned mode")
	ErrNegativeBase     = Error.New("- operator is only allowed with decimal numbers")
	ErrWidthOverflow    = Error.New("Number unrepresentable in fixed width")
)

// CharacterError reports a character outside the alphabet of a base.
type CharacterError struct {
	Char rune
	Base Base
}

func (e *CharacterError) Error() string {
	return fmt.Sprintf("Character %c not allowed in %s numbers", e.Char, e.Base.Name())
}

// Message returns the text of err without the class name or any other
// wrapping.
func Message(err error) string {
	if err == nil {
		return ""
	}

	return errs.Unwrap(err).Error()
}
