package postgres

import (
	"context"
	"dressify/models"

	"github.com/google/uuid"
)

type UserStore struct {
	db Querier
}

const userColumns = `id, name, email, password, avatar, created_at, updated_at`

func (s *UserStore) Create(ctx context.Context, u *models.User) error {
	u.ID = uuid.NewString()
	err := s.db.QueryRow(ctx, `
		INSERT INTO users (id, name, email, password, avatar)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at`,
		u.ID, u.Name, u.Email, u.Password, u.Avatar,
	).Scan(&u.CreatedAt, &u.UpdatedAt)
	return translate(err, "insert user")
}

func (s *UserStore) GetByID(ctx context.Context, id string) (*models.User, error) {
	return s.get(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

func (s *UserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.get(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
}

func (s *UserStore) get(ctx context.Context, sql string, arg string) (*models.User, error) {
	var u models.User
	err := s.db.QueryRow(ctx, sql, arg).Scan(
		&u.ID, &u.Name, &u.Email, &u.Password, &u.Avatar, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, translate(err, "select user")
	}
	return &u, nil
}
