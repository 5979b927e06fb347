// Package adapters provides repository implementations for the logins feature.
package adapters

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"identity_backend/internal/feature/logins/domain"
	"identity_backend/internal/feature/logins/domain/entity"
	"identity_backend/internal/feature/logins/usecase"
)

const (
	// DefaultUsersTable is the users table name used when none is configured.
	DefaultUsersTable = "Users"
	// DefaultUserLoginsTable is the external logins table name used when none is configured.
	DefaultUserLoginsTable = "UserLogins"
)

// TableNames selects the tables the statements run against.
// Empty fields fall back to DefaultUsersTable and DefaultUserLoginsTable.
type TableNames struct {
	Users      string
	UserLogins string
}

func (n TableNames) withDefaults() TableNames {
	if n.Users == "" {
		n.Users = DefaultUsersTable
	}
	if n.UserLogins == "" {
		n.UserLogins = DefaultUserLoginsTable
	}
	return n
}

// loginStatements holds the fixed SQL, rendered once with the dialect's identifier quoting.
type loginStatements struct {
	listLogins                string
	userIDByLogin             string
	userByID                  string
	loginByProviderKey        string
	loginByUserAndProviderKey string
}

func newLoginStatements(dialector gorm.Dialector, names TableNames) loginStatements {
	q := func(identifier string) string {
		var b strings.Builder
		dialector.QuoteTo(&b, identifier)
		return b.String()
	}

	users, logins := q(names.Users), q(names.UserLogins)
	byProviderKey := q("LoginProvider") + " = @LoginProvider AND " + q("ProviderKey") + " = @ProviderKey"

	return loginStatements{
		listLogins:                "SELECT * FROM " + logins + " WHERE " + q("UserId") + " = @UserId",
		userIDByLogin:             "SELECT " + q("UserId") + " FROM " + logins + " WHERE " + byProviderKey,
		userByID:                  "SELECT * FROM " + users + " WHERE " + q("Id") + " = @Id",
		loginByProviderKey:        "SELECT * FROM " + logins + " WHERE " + byProviderKey,
		loginByUserAndProviderKey: "SELECT * FROM " + logins + " WHERE " + q("UserId") + " = @UserId AND " + byProviderKey,
	}
}

// LoginsTable is a read-only query surface over the users and external logins tables.
//
// TUser and TLogin are the record shapes rows are mapped into (through their GORM column tags),
// TKey is the type of the user primary key.
//
// The *gorm.DB handle is borrowed: LoginsTable never opens, closes or pools it.
type LoginsTable[TUser any, TKey comparable, TLogin any] struct {
	db  *gorm.DB
	sql loginStatements
}

// LoginsTable over the application's own records satisfies the usecase repository.
var _ usecase.LoginsRepository = (*LoginsTable[entity.User, uint, entity.UserLogin])(nil)

// NewLoginsTable creates a LoginsTable bound to db.
// It returns an error wrapping domain.ErrInvalidArgument if db is nil.
func NewLoginsTable[TUser any, TKey comparable, TLogin any](db *gorm.DB, names TableNames) (*LoginsTable[TUser, TKey, TLogin], error) {
	if db == nil || db.Config == nil || db.Dialector == nil {
		return nil, fmt.Errorf("%w: db connection is required", domain.ErrInvalidArgument)
	}
	return &LoginsTable[TUser, TKey, TLogin]{
		db:  db,
		sql: newLoginStatements(db.Dialector, names.withDefaults()),
	}, nil
}

// ListLoginsForUser returns every login linked to userID.
// A user with no logins, or an unknown user, yields an empty slice.
func (t *LoginsTable[TUser, TKey, TLogin]) ListLoginsForUser(ctx context.Context, userID TKey) ([]TLogin, error) {
	logins, err := queryRows[TLogin](ctx, t.db, t.sql.listLogins, map[string]any{"UserId": userID})
	if err != nil {
		return nil, err
	}
	if logins == nil {
		logins = []TLogin{}
	}
	return logins, nil
}

// FindUserByLogin resolves the UserId owning the provider/key pair and then loads that user.
// It returns (nil, nil) when no login matches. A login pointing at a missing user is an
// integrity violation, not a miss.
func (t *LoginsTable[TUser, TKey, TLogin]) FindUserByLogin(ctx context.Context, loginProvider, providerKey string) (*TUser, error) {
	userID, err := querySingleOrNone[TKey](ctx, t.db, t.sql.userIDByLogin, map[string]any{
		"LoginProvider": loginProvider,
		"ProviderKey":   providerKey,
	})
	if err != nil || userID == nil {
		return nil, err
	}

	user, err := querySingle[TUser](ctx, t.db, t.sql.userByID, map[string]any{"Id": *userID})
	if errors.Is(err, domain.ErrIntegrityViolation) {
		return nil, fmt.Errorf("login %q references user %v: %w", loginProvider, *userID, err)
	}
	return user, err
}

// FindLoginByProviderKey returns the login for the provider/key pair, or (nil, nil) if none exists.
func (t *LoginsTable[TUser, TKey, TLogin]) FindLoginByProviderKey(ctx context.Context, loginProvider, providerKey string) (*TLogin, error) {
	return querySingleOrNone[TLogin](ctx, t.db, t.sql.loginByProviderKey, map[string]any{
		"LoginProvider": loginProvider,
		"ProviderKey":   providerKey,
	})
}

// FindLoginByUserAndProviderKey returns the login for the provider/key pair when it belongs to userID,
// or (nil, nil) otherwise.
func (t *LoginsTable[TUser, TKey, TLogin]) FindLoginByUserAndProviderKey(ctx context.Context, userID TKey, loginProvider, providerKey string) (*TLogin, error) {
	return querySingleOrNone[TLogin](ctx, t.db, t.sql.loginByUserAndProviderKey, map[string]any{
		"UserId":        userID,
		"LoginProvider": loginProvider,
		"ProviderKey":   providerKey,
	})
}
