package accounts

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

func (r *PostgresRepository) Create(ctx context.Context, a *models.Account) (*models.Account, error) {
	query :=
		`INSERT INTO accounts (owner_id, name)
		 VALUES ($1, $2)
		 RETURNING id, is_active, created_at
		 `

	if err := r.db.QueryRowContext(ctx, query, a.OwnerID, a.Name).Scan(&a.ID, &a.IsActive, &a.CreatedAt); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return a, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Account, error) {
	if !dbx.ValidID(id) {
		return nil, common.ErrorNotFound
	}

	query :=
		`SELECT id, owner_id, name, is_active, created_at FROM accounts
		 WHERE id = $1
		 `

	a := &models.Account{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&a.ID, &a.OwnerID, &a.Name, &a.IsActive, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return a, nil
}

func (r *PostgresRepository) UpdateName(ctx context.Context, id string, name string) error {
	query :=
		`UPDATE accounts SET name = $2
		 WHERE id = $1 AND is_active
		 `
	return r.execOne(ctx, query, id, name)
}

func (r *PostgresRepository) Deactivate(ctx context.Context, id string) error {
	if !dbx.ValidID(id) {
		return common.ErrorNotFound
	}

	query :=
		`UPDATE accounts SET is_active = FALSE
		 WHERE id = $1 AND is_active
		 `
	return r.execOne(ctx, query, id)
}

func (r *PostgresRepository) ListOwned(ctx context.Context, userID string) ([]*models.Account, error) {
	query :=
		`SELECT id, owner_id, name, is_active, created_at FROM accounts
		 WHERE owner_id = $1 AND is_active
		 ORDER BY created_at, id
		 `
	return r.list(ctx, query, userID)
}

func (r *PostgresRepository) ListBeloved(ctx context.Context, userID string) ([]*models.Account, error) {
	query :=
		`SELECT a.id, a.owner_id, a.name, a.is_active, a.created_at FROM accounts a
		 JOIN account_beloved_ones b ON b.account_id = a.id
		 WHERE b.user_id = $1 AND a.is_active
		 ORDER BY a.created_at, a.id
		 `
	return r.list(ctx, query, userID)
}

func (r *PostgresRepository) BelovedOnes(ctx context.Context, accountID string) ([]string, error) {
	query :=
		`SELECT user_id FROM account_beloved_ones
		 WHERE account_id = $1
		 ORDER BY user_id
		 `

	rows, err := r.db.QueryContext(ctx, query, accountID)
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

func (r *PostgresRepository) IsBelovedOne(ctx context.Context, accountID, userID string) (bool, error) {
	query :=
		`SELECT EXISTS (
		     SELECT 1 FROM account_beloved_ones WHERE account_id = $1 AND user_id = $2
		 )
		 `
	return r.exists(ctx, query, accountID, userID)
}

func (r *PostgresRepository) AddBelovedOne(ctx context.Context, accountID, userID string) error {
	query :=
		`INSERT INTO account_beloved_ones (account_id, user_id)
		 VALUES ($1, $2)
		 ON CONFLICT DO NOTHING
		 `
	if _, err := r.db.ExecContext(ctx, query, accountID, userID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) RemoveBelovedOne(ctx context.Context, accountID, userID string) error {
	if !dbx.ValidID(userID) {
		return common.ErrorNotFound
	}

	query :=
		`DELETE FROM account_beloved_ones
		 WHERE account_id = $1 AND user_id = $2
		 `
	return r.execOne(ctx, query, accountID, userID)
}

func (r *PostgresRepository) HasBelovedReader(ctx context.Context, ownerID, userID string) (bool, error) {
	query :=
		`SELECT EXISTS (
		     SELECT 1 FROM accounts a
		     JOIN account_beloved_ones b ON b.account_id = a.id
		     WHERE a.owner_id = $1 AND b.user_id = $2 AND a.is_active
		 )
		 `
	return r.exists(ctx, query, ownerID, userID)
}

func (r *PostgresRepository) list(ctx context.Context, query string, args ...any) ([]*models.Account, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	out := []*models.Account{}
	for rows.Next() {
		a := &models.Account{}
		if err := rows.Scan(&a.ID, &a.OwnerID, &a.Name, &a.IsActive, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return out, nil
}

func (r *PostgresRepository) exists(ctx context.Context, query string, args ...any) (bool, error) {
	var ok bool
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&ok); err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return ok, nil
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
