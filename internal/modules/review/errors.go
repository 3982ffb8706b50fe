package review

import "errors"

var (
	ErrValidation    = errors.New("validation error")
	ErrNotFound      = errors.New("review not found")
	ErrForbidden     = errors.New("not the reservation's guest")
	ErrConflict      = errors.New("review already exists for this reservation")
	ErrNotCheckedOut = errors.New("not yet checked out")
)
