// Package dbx provides tiny DB abstractions shared by repositories:
// a minimal interface (DBTX) implemented by both *sql.DB and *sql.Tx,
// and a TxRunner that services use to group writes atomically.
package dbx

import (
	"context"
	"database/sql"
)

// DBTX is the subset of database/sql used by our repos.
// Both *sql.DB and *sql.Tx satisfy this interface.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// TxFunc receives the transactional handle repositories must be bound to.
type TxFunc func(ctx context.Context, tx DBTX) error

// TxRunner hands out database handles to services.
//
// Handle returns the non-transactional handle for single-statement work.
// WithTx runs fn atomically: either every write made through tx is applied
// or none is.
type TxRunner interface {
	Handle() DBTX
	WithTx(ctx context.Context, fn TxFunc) error
}

// WithTx begins a transaction, runs fn with a transactional handle, and then
// commits on success or rolls back on error/panic. Panics are rethrown.
func WithTx(ctx context.Context, db *sql.DB, opts *sql.TxOptions, fn TxFunc) (err error) {
	tx, err := db.BeginTx(ctx, opts)
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
			return
		}
		err = tx.Commit()
	}()

	err = fn(ctx, tx)
	return err
}

// SQLRunner is the database/sql backed TxRunner.
type SQLRunner struct {
	db   *sql.DB
	opts *sql.TxOptions
}

// NewSQLRunner wraps db. Transactions run at READ COMMITTED unless opts says otherwise.
func NewSQLRunner(db *sql.DB, opts *sql.TxOptions) *SQLRunner {
	return &SQLRunner{db: db, opts: opts}
}

func (r *SQLRunner) Handle() DBTX { return r.db }

func (r *SQLRunner) WithTx(ctx context.Context, fn TxFunc) error {
	return WithTx(ctx, r.db, r.opts, fn)
}

// DB exposes the underlying pool, e.g. for migrations and Close.
func (r *SQLRunner) DB() *sql.DB { return r.db }
