package services

import "errors"

// Login failure taxonomy. Anything else coming out of Authenticate is
// an unexpected lookup/transport error and is wrapped, not classified.
var (
	ErrAdminNotFound      = errors.New("username not found")
	ErrInvalidCredentials = errors.New("incorrect password")
)

// ValidationError is missing or malformed operator input, detected
// before any network call is made.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }
