package reservation

import "errors"

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("reservation not found")
	ErrForbidden  = errors.New("not the reservation's guest")
	ErrNoCapacity = errors.New("room capacity exceeded")
	ErrTooLate    = errors.New("cancellation window closed")
)
