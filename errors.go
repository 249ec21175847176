package ink

import "errors"

// Sentinel errors for the ink package.
var (
	// ErrInvalidConfig is returned when a Config field is out of range.
	ErrInvalidConfig = errors.New("ink: invalid config")

	// ErrInvalidInput is returned when a draw request is malformed.
	ErrInvalidInput = errors.New("ink: invalid input")
)
