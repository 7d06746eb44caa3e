package domain

import "errors"

var (
	// ErrInvalidInput covers missing or malformed request fields.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUserExists is returned when registration hits the unique email index.
	ErrUserExists = errors.New("user already exists")

	// ErrInvalidCredentials deliberately collapses unknown-email and
	// wrong-password so login responses cannot be used to enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrUserNotFound is for keyed lookups on management routes, never
	// for the login path.
	ErrUserNotFound = errors.New("user not found")

	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
	ErrForbidden    = errors.New("access forbidden")
)
