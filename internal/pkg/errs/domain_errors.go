package errs

import "errors"

// Local (client-side) validation failures. These never reach the backend.
var (
	ErrRequiredField   = errors.New("Please fill in all required fields.")
	ErrInvalidID       = errors.New("invalid id")
	ErrInvalidDateTime = errors.New("invalid date-time")
)
