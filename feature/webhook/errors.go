package webhook

import "errors"

var (
	// ErrInvalidInput marks a malformed or missing caller-supplied value.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound marks an identifier that resolves to no adapter.
	ErrNotFound = errors.New("webhook not found")
	// ErrDisabled marks a trigger against a disabled adapter.
	ErrDisabled = errors.New("webhook disabled")
)
