package user

import "errors"

var (
	ErrPhoneExists        = errors.New("phone number already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid phone number or password")
)
