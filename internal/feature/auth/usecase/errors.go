// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found by email or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrUserAlreadyExists is returned when registering with an email that is already on file.
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrPasswordMismatch is returned when the supplied password does not match the stored hash.
	ErrPasswordMismatch = errors.New("passwords do not match")

	// ErrInvalidRefreshToken is returned when a refresh token is invalid, malformed or expired.
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
)
