package domain

import "errors"

// Domain errors
var (
	ErrNotFound           = errors.New("resource not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInternalError      = errors.New("internal error")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrProfileNotFound    = errors.New("profile not found")
	ErrMissingToken       = errors.New("token is missing")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrUploadFailed       = errors.New("upload failed")
	ErrNoPlantIdentified  = errors.New("no plant identified")
)
