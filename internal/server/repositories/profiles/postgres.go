package profiles

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/griotme/griot/internal/common"
	"github.com/griotme/griot/internal/dbx"
	"github.com/griotme/griot/internal/server/models"
)

const profileColumns = `p.user_id, p.name, p.middle_name, p.last_name, p.birth_date, p.gender,
		 p.language, p.timezone, p.picture, p.created_at, p.updated_at`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, p *models.Profile) error {
	query :=
		`INSERT INTO profiles (user_id, name, language, timezone)
		 VALUES ($1, $2, $3, $4)
		 RETURNING created_at, updated_at
		 `

	err := r.db.QueryRowContext(ctx, query, p.UserID, p.Name, string(p.Language), p.Timezone).
		Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) GetByUserID(ctx context.Context, userID string) (*models.Profile, error) {
	if !dbx.ValidID(userID) {
		return nil, common.ErrorNotFound
	}

	query := `SELECT ` + profileColumns + `
		 FROM profiles p
		 WHERE p.user_id = $1
		 `

	p, err := scanProfile(r.db.QueryRowContext(ctx, query, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return p, nil
}

func (r *PostgresRepository) Update(ctx context.Context, p *models.Profile) error {
	query :=
		`UPDATE profiles
		 SET name = $2, middle_name = $3, last_name = $4, birth_date = $5, gender = $6,
		     language = $7, timezone = $8, picture = $9, updated_at = now()
		 WHERE user_id = $1
		 RETURNING updated_at
		 `

	var birth sql.NullTime
	if p.BirthDate != nil {
		birth = sql.NullTime{Time: *p.BirthDate, Valid: true}
	}

	err := r.db.QueryRowContext(ctx, query, p.UserID, p.Name, p.MiddleName, p.LastName, birth,
		string(p.Gender), string(p.Language), p.Timezone, p.Picture).Scan(&p.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return common.ErrorNotFound
		}
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) ListBelovedOf(ctx context.Context, accountID string) ([]*models.Profile, error) {
	if !dbx.ValidID(accountID) {
		return nil, nil
	}

	query := `SELECT ` + profileColumns + `
		 FROM profiles p
		 JOIN account_beloved_ones b ON b.user_id = p.user_id
		 WHERE b.account_id = $1
		 ORDER BY p.name, p.user_id
		 `

	rows, err := r.db.QueryContext(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var out []*models.Profile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return out, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanProfile(s scanner) (*models.Profile, error) {
	var (
		p        models.Profile
		birth    sql.NullTime
		gender   string
		language string
	)
	err := s.Scan(&p.UserID, &p.Name, &p.MiddleName, &p.LastName, &birth, &gender,
		&language, &p.Timezone, &p.Picture, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if birth.Valid {
		d := birth.Time
		p.BirthDate = &d
	}
	p.Gender = models.Gender(gender)
	p.Language = models.Language(language)
	return &p, nil
}
