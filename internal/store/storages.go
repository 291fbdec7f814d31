package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-cadence-keys/internal/config"
	"github.com/MKhiriev/go-cadence-keys/internal/logger"
)

// Storages groups the backend repositories.
type Storages struct {
	ActivityRepository  ActivityRepository
	NoteRepository      NoteRepository
	LegacyKeyRepository LegacyKeyRepository

	db *DB
}

// NewStorages connects to PostgreSQL, applies migrations and wires every
// backend repository to the shared connection.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	log.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err = db.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return newStoragesFromDB(db, log), nil
}

func newStoragesFromDB(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		ActivityRepository:  NewActivityRepository(db, log),
		NoteRepository:      NewNoteRepository(db, log),
		LegacyKeyRepository: NewLegacyKeyRepository(db, log),
		db:                  db,
	}
}

// Close releases the underlying connection pool.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
