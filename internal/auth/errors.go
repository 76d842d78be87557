package auth

import "errors"

var (
	ErrMissingData       = errors.New("missing data")
	ErrInvalidRole       = errors.New("invalid role")
	ErrUnauthenticated   = errors.New("unauthenticated")
	ErrAccessDenied      = errors.New("access denied")
	ErrInvalidToken      = errors.New("invalid token")
	ErrUserNotFound      = errors.New("user not found")
	ErrIncorrectPassword = errors.New("incorrect password")
	ErrTooManyAttempts   = errors.New("too many login attempts")
)
