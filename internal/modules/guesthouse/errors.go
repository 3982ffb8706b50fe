package guesthouse

import "errors"

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("guesthouse not found")
	ErrForbidden  = errors.New("not the owning host")
)
