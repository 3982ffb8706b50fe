package user

import "errors"

var (
	ErrValidation         = errors.New("validation error")
	ErrNotFound           = errors.New("user not found")
	ErrLoginIDTaken       = errors.New("login id already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
