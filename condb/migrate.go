package condb

import (
	"context"
	"fmt"

	"github.com/jackc/pgconn"
)

// Execer runs a statement; *pgxpool.Pool satisfies it.
type Execer interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
}

// schema is applied in order. Every statement is idempotent.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id         TEXT PRIMARY KEY,
		name       VARCHAR(50) NOT NULL,
		email      TEXT NOT NULL UNIQUE,
		password   TEXT NOT NULL,
		avatar     TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS products (
		id          TEXT PRIMARY KEY,
		name        VARCHAR(100) NOT NULL,
		description VARCHAR(1000) NOT NULL,
		price       DOUBLE PRECISION NOT NULL CHECK (price >= 0),
		category    TEXT NOT NULL,
		stock       INTEGER NOT NULL DEFAULT 0 CHECK (stock >= 0),
		image       TEXT NOT NULL DEFAULT '',
		images      TEXT[] NOT NULL DEFAULT '{}',
		status      TEXT NOT NULL DEFAULT 'active' CHECK (status IN ('active', 'inactive', 'draft')),
		featured    BOOLEAN NOT NULL DEFAULT FALSE,
		tags        TEXT[] NOT NULL DEFAULT '{}',
		likes       INTEGER NOT NULL DEFAULT 0 CHECK (likes >= 0),
		liked_by    TEXT[] NOT NULL DEFAULT '{}',
		views       INTEGER NOT NULL DEFAULT 0 CHECK (views >= 0),
		sales       INTEGER NOT NULL DEFAULT 0 CHECK (sales >= 0),
		author_id   TEXT NOT NULL REFERENCES users (id),
		is_active   BOOLEAN NOT NULL DEFAULT TRUE,
		created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS products_category_idx ON products (category)`,
	`CREATE INDEX IF NOT EXISTS products_status_idx ON products (status)`,
	`CREATE INDEX IF NOT EXISTS products_price_idx ON products (price)`,
	`CREATE INDEX IF NOT EXISTS products_created_at_idx ON products (created_at DESC)`,
	`CREATE INDEX IF NOT EXISTS products_author_idx ON products (author_id)`,
	`CREATE INDEX IF NOT EXISTS products_featured_idx ON products (featured)`,
	`CREATE TABLE IF NOT EXISTS favorites (
		id         TEXT PRIMARY KEY,
		user_id    TEXT NOT NULL REFERENCES users (id) ON DELETE CASCADE,
		product_id TEXT NOT NULL REFERENCES products (id) ON DELETE CASCADE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		UNIQUE (user_id, product_id)
	)`,
	`CREATE INDEX IF NOT EXISTS favorites_product_idx ON favorites (product_id)`,
	`CREATE TABLE IF NOT EXISTS posts (
		id         TEXT PRIMARY KEY,
		title      VARCHAR(200) NOT NULL,
		content    TEXT NOT NULL CHECK (char_length(content) >= 10),
		excerpt    VARCHAR(300) NOT NULL DEFAULT '',
		category   TEXT NOT NULL DEFAULT 'Fashion Trends',
		image      TEXT NOT NULL DEFAULT '',
		author_id  TEXT NOT NULL REFERENCES users (id),
		status     TEXT NOT NULL DEFAULT 'draft' CHECK (status IN ('draft', 'published', 'archived')),
		featured   BOOLEAN NOT NULL DEFAULT FALSE,
		views      INTEGER NOT NULL DEFAULT 0,
		likes      INTEGER NOT NULL DEFAULT 0,
		tags       TEXT[] NOT NULL DEFAULT '{}',
		read_time  INTEGER NOT NULL DEFAULT 5,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS posts_author_created_idx ON posts (author_id, created_at DESC)`,
	`CREATE INDEX IF NOT EXISTS posts_category_status_idx ON posts (category, status)`,
}

// Migrate creates the tables and indexes that do not exist yet.
func Migrate(ctx context.Context, db Execer) error {
	for i, stmt := range schema {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migration step %d: %w", i+1, err)
		}
	}
	return nil
}
