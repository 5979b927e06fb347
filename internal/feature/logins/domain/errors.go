// Package domain defines domain-level errors for the logins feature.
package domain

import "errors"

var (
	// ErrInvalidArgument is returned when a required dependency is missing,
	// such as a nil database handle passed to a repository constructor.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrIntegrityViolation indicates the store broke an invariant the lookups rely on:
	// more than one login for a (LoginProvider, ProviderKey) pair, or a login whose
	// UserId references a user row that does not exist.
	ErrIntegrityViolation = errors.New("data integrity violation")
)
