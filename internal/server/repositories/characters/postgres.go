package characters

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/griotme/griot/internal/common"
	"github.com/griotme/griot/internal/dbx"
	"github.com/griotme/griot/internal/server/models"
)

const characterColumns = `c.id, c.account_id, c.name, c.relationship, c.phone_number, c.email, c.picture, c.is_active, c.created_at`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanCharacter(s scanner) (*models.Character, error) {
	c := &models.Character{}
	var rel string
	if err := s.Scan(&c.ID, &c.AccountID, &c.Name, &rel, &c.PhoneNumber, &c.Email, &c.Picture, &c.IsActive, &c.CreatedAt); err != nil {
		return nil, err
	}
	c.Relationship = models.Relationship(rel)
	return c, nil
}

func (r *PostgresRepository) Create(ctx context.Context, c *models.Character) (*models.Character, error) {
	query := `
		INSERT INTO characters (account_id, name, relationship, phone_number, email, picture)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, is_active, created_at
	`
	err := r.db.QueryRowContext(ctx, query,
		c.AccountID, c.Name, string(c.Relationship), c.PhoneNumber, c.Email, c.Picture,
	).Scan(&c.ID, &c.IsActive, &c.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return c, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Character, error) {
	if !dbx.ValidID(id) {
		return nil, common.ErrorNotFound
	}

	query := `SELECT ` + characterColumns + `
		FROM characters c
		WHERE c.id = $1
	`
	c, err := scanCharacter(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return c, nil
}

func (r *PostgresRepository) Update(ctx context.Context, c *models.Character) error {
	query := `
		UPDATE characters
		SET name = $2, relationship = $3, phone_number = $4, email = $5, picture = $6
		WHERE id = $1 AND is_active
	`
	res, err := r.db.ExecContext(ctx, query,
		c.ID, c.Name, string(c.Relationship), c.PhoneNumber, c.Email, c.Picture,
	)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func (r *PostgresRepository) Deactivate(ctx context.Context, id string) error {
	if !dbx.ValidID(id) {
		return common.ErrorNotFound
	}

	query := `
		UPDATE characters SET is_active = FALSE
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

func (r *PostgresRepository) ListByMemory(ctx context.Context, memoryID string) ([]*models.Character, error) {
	query := `SELECT ` + characterColumns + `
		FROM characters c
		JOIN memory_characters mc ON mc.character_id = c.id
		WHERE mc.memory_id = $1 AND c.is_active
		ORDER BY c.created_at, c.id
	`
	rows, err := r.db.QueryContext(ctx, query, memoryID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	out := []*models.Character{}
	for rows.Next() {
		c, err := scanCharacter(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return out, nil
}
