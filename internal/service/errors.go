package service

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput marks malformed emails, short passwords and bad note
	// payloads. No write happens when it is returned.
	ErrInvalidInput = errors.New("invalid input")

	// ErrConflict is returned by signup for an email that is already taken.
	ErrConflict = errors.New("email is already registered")

	// ErrUnauthorized covers bad credentials and every token failure.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound is returned for notes that do not exist or belong to
	// another user.
	ErrNotFound = errors.New("note not found")

	ErrTokenMissing = fmt.Errorf("%w: token is missing", ErrUnauthorized)
	ErrTokenInvalid = fmt.Errorf("%w: token is invalid", ErrUnauthorized)
	ErrTokenExpired = fmt.Errorf("%w: token is expired", ErrUnauthorized)

	ErrTokenCreationFailed   = errors.New("token creation failed")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
