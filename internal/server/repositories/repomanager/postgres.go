// Package repomanager provides the RepositoryManager abstraction and its
// PostgreSQL implementation, wiring together repository constructors and
// database migrations (via goose).
package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/griotme/griot/internal/dbx"
	"github.com/griotme/griot/internal/server/migrations"
	"github.com/griotme/griot/internal/server/repositories/accounts"
	"github.com/griotme/griot/internal/server/repositories/characters"
	"github.com/griotme/griot/internal/server/repositories/memories"
	"github.com/griotme/griot/internal/server/repositories/profiles"
	"github.com/griotme/griot/internal/server/repositories/tokens"
	"github.com/griotme/griot/internal/server/repositories/users"
	"github.com/griotme/griot/internal/server/repositories/videos"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// PostgresRepositoryManager vends PostgreSQL-backed repository implementations
// and exposes a schema migration hook.
type PostgresRepositoryManager struct {
	*dbx.SQLRunner
}

func (m *PostgresRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Profiles(db dbx.DBTX) profiles.Repository {
	return profiles.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Tokens(db dbx.DBTX) tokens.Repository {
	return tokens.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Accounts(db dbx.DBTX) accounts.Repository {
	return accounts.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Characters(db dbx.DBTX) characters.Repository {
	return characters.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Memories(db dbx.DBTX) memories.Repository {
	return memories.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Videos(db dbx.DBTX) videos.Repository {
	return videos.NewPostgresRepository(db)
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations sets up goose with the embedded migrations and runs them
// against the manager's database.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	if err := gooseUpContext(ctx, m.DB(), "."); err != nil {
		return err
	}
	return nil
}

// sqlOpen is a seam for tests.
var sqlOpen = sql.Open

// OpenPostgres opens a pgx-backed pool for dsn and verifies it with a ping.
func OpenPostgres(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sqlOpen("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return db, nil
}

// NewPostgresRepositoryManager constructs a PostgreSQL-backed RepositoryManager.
// Transactions run at READ COMMITTED.
func NewPostgresRepositoryManager(db *sql.DB) *PostgresRepositoryManager {
	return &PostgresRepositoryManager{
		SQLRunner: dbx.NewSQLRunner(db, &sql.TxOptions{Isolation: sql.LevelReadCommitted}),
	}
}
