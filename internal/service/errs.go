package service

import "errors"

// Failure classes handlers translate into HTTP statuses. Anything else
// bubbling out of the service layer is an internal error.
var (
	ErrNotFound        = errors.New("not found")
	ErrForbidden       = errors.New("forbidden")
	ErrConflict        = errors.New("conflict")
	ErrInvalidArgument = errors.New("invalid argument")
)
