package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/griotme/griot/internal/common"
	"github.com/griotme/griot/internal/dbx"
	"github.com/griotme/griot/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	query :=
		`INSERT INTO users (username, email, password_hash, is_active)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		user.Username, user.Email, user.PasswordHash, user.IsActive).Scan(&user.ID, &user.CreatedAt)

	if err != nil {
		if constraint, ok := dbx.UniqueViolation(err); ok {
			switch constraint {
			case "users_username_key":
				return nil, common.ErrUsernameTaken
			case "users_email_key":
				return nil, common.ErrEmailTaken
			}
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	if !dbx.ValidID(id) {
		return nil, common.ErrorNotFound
	}
	return r.getOne(ctx,
		`SELECT id, username, email, password_hash, is_active, created_at FROM users
		 WHERE id = $1
		 `, id)
}

func (r *PostgresRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.getOne(ctx,
		`SELECT id, username, email, password_hash, is_active, created_at FROM users
		 WHERE username = $1
		 `, username)
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.getOne(ctx,
		`SELECT id, username, email, password_hash, is_active, created_at FROM users
		 WHERE email = $1
		 `, email)
}

func (r *PostgresRepository) UpdatePassword(ctx context.Context, id string, passwordHash string) error {
	if !dbx.ValidID(id) {
		return common.ErrorNotFound
	}

	query :=
		`UPDATE users SET password_hash = $2
		 WHERE id = $1
		 `

	res, err := r.db.ExecContext(ctx, query, id, passwordHash)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func (r *PostgresRepository) getOne(ctx context.Context, query string, arg string) (*models.User, error) {
	user := &models.User{}
	err := r.db.QueryRowContext(ctx, query, arg).
		Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.IsActive, &user.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}
