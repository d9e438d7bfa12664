package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/yoga-studio/internal/config"
	"github.com/MKhiriev/yoga-studio/internal/logger"
	"github.com/MKhiriev/yoga-studio/migrations"
)

// maxTxAttempts bounds how many times runInTx replays a transaction that
// failed with a [Retryable] error.
const maxTxAttempts = 3

// DB wraps *sql.DB with the driver-specific pieces the repositories need:
// the error classifier and a squirrel builder using the driver's placeholder
// format ("$1" for pgx, "?" for sqlite3).
type DB struct {
	*sql.DB
	driver             string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// queryer is the subset of *sql.DB and *sql.Tx used by the repositories, so
// one query helper serves both plain and transactional reads.
type queryer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// NewConnect opens a connection for cfg.Driver.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return NewConnectPostgres(ctx, cfg, log)
	case config.DriverSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
}

// Migrate applies the embedded migrations of the connection's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver, db.logger)
}

// classify returns the classification of err, NonRetryable when no
// classifier is configured.
func (db *DB) classify(err error) ErrorClassification {
	if db.errorClassificator == nil {
		return NonRetryable
	}
	return db.errorClassificator.Classify(err)
}

// runInTx runs fn inside a transaction and commits it. The transaction is
// rolled back if fn fails. A transaction that fails with a [Retryable] error
// is replayed up to maxTxAttempts times.
func (db *DB) runInTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	log := logger.FromContext(ctx)

	var err error
	for attempt := 1; attempt <= maxTxAttempts; attempt++ {
		err = db.runInTxOnce(ctx, fn)
		if err == nil || db.classify(err) != Retryable {
			return err
		}

		log.Warn().Err(err).
			Str("func", "*DB.runInTx").
			Int("attempt", attempt).
			Msg("retrying transaction after retryable error")
	}

	return err
}

func (db *DB) runInTxOnce(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}
