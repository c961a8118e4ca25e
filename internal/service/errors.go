package service

import "errors"

// Sentinel errors the handler layer maps to HTTP statuses.
var (
	ErrConnectorNotFound  = errors.New("EDC not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrFileNotFound       = errors.New("file not found")
	ErrFileTooLarge       = errors.New("file exceeds size limit")
	ErrForbidden          = errors.New("operation not allowed")
)
