package tokens

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/griotme/griot/internal/common"
	"github.com/griotme/griot/internal/dbx"
	"github.com/griotme/griot/internal/server/models"
)

// PostgresRepository implements Repository over dbx.DBTX
// (satisfied by *sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// GetOrCreate relies on the unique user_id constraint: the no-op update on
// conflict makes RETURNING yield the row that already exists.
func (r *PostgresRepository) GetOrCreate(ctx context.Context, userID string, key string) (*models.Token, error) {
	query := `
		INSERT INTO session_tokens (key, user_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE SET user_id = EXCLUDED.user_id
		RETURNING key, user_id, created_at
	`
	token := &models.Token{}
	if err := r.db.QueryRowContext(ctx, query, key, userID).Scan(&token.Key, &token.UserID, &token.CreatedAt); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return token, nil
}

func (r *PostgresRepository) Find(ctx context.Context, key string) (*models.Token, error) {
	query := `
		SELECT key, user_id, created_at
		FROM session_tokens
		WHERE key = $1
	`
	token := &models.Token{}
	if err := r.db.QueryRowContext(ctx, query, key).Scan(&token.Key, &token.UserID, &token.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return token, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, key string) error {
	query := `
		DELETE FROM session_tokens
		WHERE key = $1
	`
	res, err := r.db.ExecContext(ctx, query, key)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func (r *PostgresRepository) DeleteForUser(ctx context.Context, userID string) error {
	query := `
		DELETE FROM session_tokens
		WHERE user_id = $1
	`
	if _, err := r.db.ExecContext(ctx, query, userID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
