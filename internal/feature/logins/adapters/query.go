package adapters

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"identity_backend/internal/feature/logins/domain"
)

// queryRows runs a raw statement with named arguments and maps every row into T.
// T may be a GORM-mappable struct or a scalar when the statement selects a single column.
func queryRows[T any](ctx context.Context, db *gorm.DB, query string, args map[string]any) ([]T, error) {
	var out []T
	if err := db.WithContext(ctx).Raw(query, args).Scan(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// querySingleOrNone expects zero or one row. Zero rows yield (nil, nil).
func querySingleOrNone[T any](ctx context.Context, db *gorm.DB, query string, args map[string]any) (*T, error) {
	rows, err := queryRows[T](ctx, db, query, args)
	if err != nil {
		return nil, err
	}
	switch len(rows) {
	case 0:
		return nil, nil
	case 1:
		return &rows[0], nil
	default:
		return nil, fmt.Errorf("%w: expected at most one row, got %d", domain.ErrIntegrityViolation, len(rows))
	}
}

// querySingle expects exactly one row.
func querySingle[T any](ctx context.Context, db *gorm.DB, query string, args map[string]any) (*T, error) {
	rows, err := queryRows[T](ctx, db, query, args)
	if err != nil {
		return nil, err
	}
	if len(rows) != 1 {
		return nil, fmt.Errorf("%w: expected exactly one row, got %d", domain.ErrIntegrityViolation, len(rows))
	}
	return &rows[0], nil
}
