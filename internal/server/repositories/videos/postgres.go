package videos

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

func (r *PostgresRepository) Create(ctx context.Context, v *models.Video) (*models.Video, error) {
	query := `
		INSERT INTO videos (memory_id, file_key, filename, content_type)
		VALUES ($1, $2, $3, $4)
		RETURNING id, is_active, created_at
	`
	err := r.db.QueryRowContext(ctx, query, v.MemoryID, v.FileKey, v.Filename, v.ContentType).
		Scan(&v.ID, &v.IsActive, &v.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return v, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Video, error) {
	if !dbx.ValidID(id) {
		return nil, common.ErrorNotFound
	}

	query := `
		SELECT id, memory_id, file_key, filename, content_type, is_active, created_at
		FROM videos
		WHERE id = $1
	`
	v := &models.Video{}
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&v.ID, &v.MemoryID, &v.FileKey, &v.Filename, &v.ContentType, &v.IsActive, &v.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return v, nil
}

func (r *PostgresRepository) Deactivate(ctx context.Context, id string) error {
	if !dbx.ValidID(id) {
		return common.ErrorNotFound
	}

	query := `
		UPDATE videos SET is_active = FALSE
		WHERE id = $1 AND is_active
	`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func (r *PostgresRepository) ListByMemory(ctx context.Context, memoryID string) ([]*models.Video, error) {
	query := `
		SELECT id, memory_id, file_key, filename, content_type, is_active, created_at
		FROM videos
		WHERE memory_id = $1 AND is_active
		ORDER BY created_at, id
	`
	rows, err := r.db.QueryContext(ctx, query, memoryID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	out := []*models.Video{}
	for rows.Next() {
		v := &models.Video{}
		if err := rows.Scan(&v.ID, &v.MemoryID, &v.FileKey, &v.Filename, &v.ContentType, &v.IsActive, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return out, nil
}
