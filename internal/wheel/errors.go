package wheel

import "errors"

var (
	// ErrInvalidInput is returned when a label source is empty or cannot be read.
	ErrInvalidInput = errors.New("invalid label source")
	// ErrInvalidOperation is returned when an action is not allowed in the current spin state.
	ErrInvalidOperation = errors.New("operation not allowed while spinning")
)
