// Package postgres implements the store contracts on PostgreSQL through a
// pgx connection pool.
package postgres

import (
	"context"
	"dressify/store"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/pkg/errors"
)

// SQLSTATE codes the stores translate.
const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

// Querier is the subset of *pgxpool.Pool the stores use.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

var _ Querier = (*pgxpool.Pool)(nil)

// New returns stores sharing the pool.
func New(db Querier) store.Stores {
	return store.Stores{
		Users:     &UserStore{db: db},
		Products:  &ProductStore{db: db},
		Favorites: &FavoriteStore{db: db},
		Posts:     &PostStore{db: db},
	}
}

type scanner interface {
	Scan(dest ...interface{}) error
}

// translate maps driver errors onto the store sentinels and adds context.
func translate(err error, op string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return errors.Wrap(store.ErrNotFound, op)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolation:
			return errors.Wrapf(store.ErrDuplicate, "%s: %s", op, pgErr.ConstraintName)
		case foreignKeyViolation:
			return errors.Wrapf(store.ErrNotFound, "%s: %s", op, pgErr.ConstraintName)
		}
	}
	return errors.Wrap(err, op)
}

// mustAffect turns a zero-row write into ErrNotFound.
func mustAffect(tag pgconn.CommandTag, err error, op string) error {
	if err != nil {
		return translate(err, op)
	}
	if tag.RowsAffected() == 0 {
		return errors.Wrap(store.ErrNotFound, op)
	}
	return nil
}

func count(ctx context.Context, db Querier, sql string, args []interface{}, op string) (int64, error) {
	var total int64
	if err := db.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return 0, translate(err, op)
	}
	return total, nil
}
