// api/dao/user_dao.go
package dao

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	pulse_errors "github.com/pulsecollective/pulse/api/errors"
	"github.com/pulsecollective/pulse/api/model"
)

const pgUniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

type UserDAO struct {
	pool *pgxpool.Pool
}

func NewUserDAO(pool *pgxpool.Pool) *UserDAO {
	return &UserDAO{pool: pool}
}

func (d *UserDAO) Create(ctx context.Context, user *model.User) error {
	_, err := d.pool.Exec(ctx,
		`INSERT INTO users (id, name, email, password_hash, role, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		user.ID, user.Name, user.Email, user.PasswordHash, user.Role, user.CreatedAt, user.UpdatedAt)
	if isUniqueViolation(err) {
		return pulse_errors.ErrEmailTaken
	}
	if err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

func (d *UserDAO) scanUser(row pgx.Row) (*model.User, error) {
	var user model.User
	err := row.Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash,
		&user.Role, &user.CreatedAt, &user.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, pulse_errors.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan user: %w", err)
	}
	return &user, nil
}

func (d *UserDAO) GetByID(ctx context.Context, id string) (*model.User, error) {
	row := d.pool.QueryRow(ctx,
		`SELECT id, name, email, password_hash, role, created_at, updated_at
		 FROM users WHERE id = $1`, id)
	return d.scanUser(row)
}

func (d *UserDAO) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	row := d.pool.QueryRow(ctx,
		`SELECT id, name, email, password_hash, role, created_at, updated_at
		 FROM users WHERE email = $1`, email)
	return d.scanUser(row)
}

func (d *UserDAO) Update(ctx context.Context, user *model.User) error {
	tag, err := d.pool.Exec(ctx,
		`UPDATE users SET name = $2, email = $3, updated_at = now() WHERE id = $1`,
		user.ID, user.Name, user.Email)
	if isUniqueViolation(err) {
		return pulse_errors.ErrEmailTaken
	}
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pulse_errors.ErrUserNotFound
	}
	return nil
}
