package errs

import (
	"errors"
)

var (
	// ErrNotFound is returned when a requested entity id does not resolve.
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned when a transition violates the booking state
	// machine or a unique constraint (duplicate user email).
	ErrConflict = errors.New("conflict")
	// ErrBadCredentials is returned on a failed login.
	ErrBadCredentials = errors.New("invalid credentials")
)
