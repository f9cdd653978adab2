package surface

import (
	"errors"
	"fmt"
)

// ErrInvalidParameter is matched by every parameter validation failure.
var ErrInvalidParameter = errors.New("surface: invalid parameter")

// InvalidParameterError describes which parameter was rejected and why.
type InvalidParameterError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("surface: invalid parameter %s=%v: %s", e.Field, e.Value, e.Reason)
}

// Unwrap lets errors.Is(err, ErrInvalidParameter) match.
func (e *InvalidParameterError) Unwrap() error {
	return ErrInvalidParameter
}
