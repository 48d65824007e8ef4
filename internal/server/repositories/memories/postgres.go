package memories

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

func (r *PostgresRepository) Create(ctx context.Context, m *models.Memory) (*models.Memory, error) {
	query := `
		INSERT INTO memories (account_id, title)
		VALUES ($1, $2)
		RETURNING id, is_active, created_at
	`
	if err := r.db.QueryRowContext(ctx, query, m.AccountID, m.Title).Scan(&m.ID, &m.IsActive, &m.CreatedAt); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	m.CharacterIDs = []string{}
	return m, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Memory, error) {
	if !dbx.ValidID(id) {
		return nil, common.ErrorNotFound
	}

	query := `
		SELECT id, account_id, title, is_active, created_at
		FROM memories
		WHERE id = $1
	`
	m := &models.Memory{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&m.ID, &m.AccountID, &m.Title, &m.IsActive, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	ids, err := r.characterIDs(ctx, id)
	if err != nil {
		return nil, err
	}
	m.CharacterIDs = ids
	return m, nil
}

func (r *PostgresRepository) characterIDs(ctx context.Context, memoryID string) ([]string, error) {
	query := `
		SELECT character_id
		FROM memory_characters
		WHERE memory_id = $1
		ORDER BY character_id
	`
	rows, err := r.db.QueryContext(ctx, query, memoryID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return ids, nil
}

func (r *PostgresRepository) UpdateTitle(ctx context.Context, id string, title string) error {
	query := `
		UPDATE memories SET title = $2
		WHERE id = $1 AND is_active
	`
	return r.execOne(ctx, query, id, title)
}

func (r *PostgresRepository) Deactivate(ctx context.Context, id string) error {
	if !dbx.ValidID(id) {
		return common.ErrorNotFound
	}

	query := `
		UPDATE memories SET is_active = FALSE
		WHERE id = $1 AND is_active
	`
	return r.execOne(ctx, query, id)
}

func (r *PostgresRepository) ListForUser(ctx context.Context, userID string) ([]*models.Memory, error) {
	query := `
		SELECT DISTINCT m.id, m.account_id, m.title, m.is_active, m.created_at
		FROM memories m
		JOIN accounts a ON a.id = m.account_id
		LEFT JOIN account_beloved_ones b ON b.account_id = a.id AND b.user_id = $1
		WHERE m.is_active AND a.is_active AND (a.owner_id = $1 OR b.user_id IS NOT NULL)
		ORDER BY m.created_at, m.id
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	out := []*models.Memory{}
	for rows.Next() {
		m := &models.Memory{}
		if err := rows.Scan(&m.ID, &m.AccountID, &m.Title, &m.IsActive, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	rows.Close()

	for _, m := range out {
		if m.CharacterIDs, err = r.characterIDs(ctx, m.ID); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (r *PostgresRepository) AddCharacter(ctx context.Context, memoryID, characterID string) error {
	query := `
		INSERT INTO memory_characters (memory_id, character_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`
	if _, err := r.db.ExecContext(ctx, query, memoryID, characterID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) RemoveCharacter(ctx context.Context, memoryID, characterID string) error {
	if !dbx.ValidID(characterID) {
		return common.ErrorNotFound
	}

	query := `
		DELETE FROM memory_characters
		WHERE memory_id = $1 AND character_id = $2
	`
	return r.execOne(ctx, query, memoryID, characterID)
}

func (r *PostgresRepository) execOne(ctx context.Context, query string, args ...any) error {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
