package pong

import (
	"errors"
	"fmt"
)

// ErrInvalidParams indicates a Params value the engine cannot run with.
var ErrInvalidParams = errors.New("pong: invalid parameters")

// ParamError names the offending field.
type ParamError struct {
	Field string
	Value float64
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("pong: invalid %s: %g", e.Field, e.Value)
}

func (e *ParamError) Unwrap() error {
	return ErrInvalidParams
}
