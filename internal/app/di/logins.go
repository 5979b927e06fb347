// Package di provides dependency injection factories for creating application components.
package di

import (
	"fmt"

	"gorm.io/gorm"

	"identity_backend/internal/app/config"
	"identity_backend/internal/feature/logins/adapters"
	"identity_backend/internal/feature/logins/domain/entity"
	"identity_backend/internal/feature/logins/transport/handler"
	"identity_backend/internal/feature/logins/usecase"
)

// NewLoginsHandler wires the logins repository, usecase and handler over db.
func NewLoginsHandler(db *gorm.DB, cfg config.LoginsConfig) (*handler.LoginsHandler, error) {
	repo, err := adapters.NewLoginsTable[entity.User, uint, entity.UserLogin](db, adapters.TableNames{
		Users:      cfg.UsersTable,
		UserLogins: cfg.UserLoginsTable,
	})
	if err != nil {
		return nil, fmt.Errorf("logins repository: %w", err)
	}
	return handler.NewLoginsHandler(usecase.NewExternalLoginUsecase(repo)), nil
}
