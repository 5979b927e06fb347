package usecase

import (
	"context"

	"identity_backend/internal/feature/logins/domain/entity"
)

// ExternalLoginUsecase serves external-login lookups to the transport layer.
type ExternalLoginUsecase struct {
	repo LoginsRepository
}

// NewExternalLoginUsecase creates a new ExternalLoginUsecase with the given repository.
func NewExternalLoginUsecase(r LoginsRepository) *ExternalLoginUsecase {
	return &ExternalLoginUsecase{repo: r}
}

// ListLogins returns the logins linked to a user. A user without logins yields an empty slice.
func (u *ExternalLoginUsecase) ListLogins(ctx context.Context, userID uint) ([]entity.UserLogin, error) {
	logins, err := u.repo.ListLoginsForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if logins == nil {
		logins = []entity.UserLogin{}
	}
	return logins, nil
}

// ResolveUser returns the user that owns the external identity.
// It returns ErrUserNotFound if no login matches.
func (u *ExternalLoginUsecase) ResolveUser(ctx context.Context, loginProvider, providerKey string) (*entity.User, error) {
	user, err := u.repo.FindUserByLogin(ctx, loginProvider, providerKey)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// GetLogin returns the login for the provider/key pair, or ErrLoginNotFound.
func (u *ExternalLoginUsecase) GetLogin(ctx context.Context, loginProvider, providerKey string) (*entity.UserLogin, error) {
	login, err := u.repo.FindLoginByProviderKey(ctx, loginProvider, providerKey)
	if err != nil {
		return nil, err
	}
	if login == nil {
		return nil, ErrLoginNotFound
	}
	return login, nil
}

// GetUserLogin returns the login for the provider/key pair when it belongs to userID, or ErrLoginNotFound.
func (u *ExternalLoginUsecase) GetUserLogin(ctx context.Context, userID uint, loginProvider, providerKey string) (*entity.UserLogin, error) {
	login, err := u.repo.FindLoginByUserAndProviderKey(ctx, userID, loginProvider, providerKey)
	if err != nil {
		return nil, err
	}
	if login == nil {
		return nil, ErrLoginNotFound
	}
	return login, nil
}
