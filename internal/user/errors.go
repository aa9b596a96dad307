package user

import "errors"

var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmptyEmail   = errors.New("email is required")
)
