package domain

import "errors"

// Error kinds surfaced to callers. Operations wrap these with the specific
// reason, so callers match with errors.Is and display the full message.
var (
	ErrValidation     = errors.New("invalid input")
	ErrAuthentication = errors.New("invalid credentials")
	ErrNotFound       = errors.New("not found")
)
