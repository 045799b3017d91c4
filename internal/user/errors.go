package user

import "errors"

var (
	ErrInvalidPayload     = errors.New("invalid payload")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
)
