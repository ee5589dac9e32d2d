package postgres

import (
	"dressify/store"
	"testing"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestTranslate(t *testing.T) {
	assert.NoError(t, translate(nil, "op"))

	err := translate(pgx.ErrNoRows, "select product")
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.Contains(t, err.Error(), "select product")

	err = translate(&pgconn.PgError{Code: uniqueViolation, ConstraintName: "favorites_user_id_product_id_key"}, "insert favorite")
	assert.ErrorIs(t, err, store.ErrDuplicate)
	assert.Contains(t, err.Error(), "favorites_user_id_product_id_key")

	err = translate(errors.Wrap(&pgconn.PgError{Code: foreignKeyViolation}, "exec"), "insert favorite")
	assert.ErrorIs(t, err, store.ErrNotFound)

	boom := errors.New("connection refused")
	err = translate(boom, "query products")
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, store.ErrNotFound)
}

func TestMustAffect(t *testing.T) {
	assert.NoError(t, mustAffect(pgconn.CommandTag("DELETE 1"), nil, "delete"))
	assert.ErrorIs(t, mustAffect(pgconn.CommandTag("DELETE 0"), nil, "delete"), store.ErrNotFound)

	boom := errors.New("boom")
	assert.ErrorIs(t, mustAffect(nil, boom, "delete"), boom)
}

func TestNonNil(t *testing.T) {
	assert.Equal(t, []string{}, nonNil(nil))
	assert.Equal(t, []string{"a"}, nonNil([]string{"a"}))
}
