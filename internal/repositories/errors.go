package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ErrDuplicateKey is returned when an insert or update hits a unique
// constraint. gorm surfaces it through TranslateError; the pgx repositories
// map SQLSTATE 23505 onto the same value.
var ErrDuplicateKey = gorm.ErrDuplicatedKey

const uniqueViolation = "23505"

func translatePgError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return ErrDuplicateKey
	}
	return err
}

// first runs q.First and maps a missing row to (nil, nil).
func first[T any](q *gorm.DB) (*T, error) {
	var row T
	if err := q.First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

func exists[T any](ctx context.Context, db *gorm.DB, id int64) (bool, error) {
	var n int64
	err := db.WithContext(ctx).Model(new(T)).Where("id = ?", id).Count(&n).Error
	return n > 0, err
}
