// Package usecase implements the business logic for the logins feature.
package usecase

import "errors"

var (
	// ErrLoginNotFound is returned when no external login matches the lookup.
	ErrLoginNotFound = errors.New("login not found")

	// ErrUserNotFound is returned when no user is linked to the given external login.
	ErrUserNotFound = errors.New("user not found")
)
