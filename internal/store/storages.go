package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/yoga-studio/internal/config"
	"github.com/MKhiriev/yoga-studio/internal/logger"
)

// Storages groups the repositories that share one database connection.
type Storages struct {
	UserRepository    UserRepository
	TeacherRepository TeacherRepository
	SessionRepository SessionRepository

	db *DB
}

// NewStorages connects to the configured database, applies the embedded
// migrations and builds the repositories on top of the connection.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		db.Close()
		return nil, err
	}
	log.Info().Str("func", "NewStorages").Str("driver", db.driver).Msg("migrations applied")

	return newStorages(db, log), nil
}

func newStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:    NewUserRepository(db, log),
		TeacherRepository: NewTeacherRepository(db, log),
		SessionRepository: NewSessionRepository(db, log),
		db:                db,
	}
}

// Close releases the underlying database connection.
func (s *Storages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("error closing database: %w", err)
	}
	return nil
}
