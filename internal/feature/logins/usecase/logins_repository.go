package usecase

import (
	"context"

	"identity_backend/internal/feature/logins/domain/entity"
)

// LoginsRepository abstracts read access to users' external logins.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
//
// Lookups that find nothing return a nil record and a nil error.
type LoginsRepository interface {
	// ListLoginsForUser returns every login linked to userID. Order is unspecified.
	ListLoginsForUser(ctx context.Context, userID uint) ([]entity.UserLogin, error)

	// FindUserByLogin resolves the user owning the provider/key pair.
	FindUserByLogin(ctx context.Context, loginProvider, providerKey string) (*entity.User, error)

	// FindLoginByProviderKey returns the login for the provider/key pair.
	FindLoginByProviderKey(ctx context.Context, loginProvider, providerKey string) (*entity.UserLogin, error)

	// FindLoginByUserAndProviderKey returns the login only if it also belongs to userID.
	FindLoginByUserAndProviderKey(ctx context.Context, userID uint, loginProvider, providerKey string) (*entity.UserLogin, error)
}
