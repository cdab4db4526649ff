package store

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
)

var ErrUserNotFound = errors.New("user not found")

type AdminUser struct {
	ID           int64
	Email        string
	Name         string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
}

func (s *Store) AdminUserByEmail(ctx context.Context, email string) (*AdminUser, error) {
	var u AdminUser
	err := s.db.QueryRow(ctx, `
		select id, email, name, password_hash, role, created_at
		from admin_users
		where lower(email) = lower($1)
	`, email).Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash, &u.Role, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, dataSourceError("admin user query", err)
	}
	return &u, nil
}
