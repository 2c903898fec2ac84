package types

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidInput is wrapped by every validation failure in the module.
var ErrInvalidInput = errors.New("invalid input")

// InputError reports a design parameter outside of its domain.
type InputError struct {
	Field  string
	Value  interface{}
	Reason string
}

func NewInputError(field string, value interface{}, reason string) *InputError {
	return &InputError{
		Field:  field,
		Value:  value,
		Reason: reason,
	}
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s: %s = %v, %s", ErrInvalidInput, e.Field, e.Value, e.Reason)
}

func (e *InputError) Unwrap() error {
	return ErrInvalidInput
}

// IsFinite is false for NaN and +/-Inf
func IsFinite(vals ...float64) bool {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
