package user

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidUserData    = errors.New("username, password, full name and role are required")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
)
