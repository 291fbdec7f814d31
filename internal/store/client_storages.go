package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-cadence-keys/internal/config"
	"github.com/MKhiriev/go-cadence-keys/internal/logger"
)

// ClientStorages groups the repositories that live on the device.
type ClientStorages struct {
	// CacheRepository mirrors server-side activities and notes.
	CacheRepository LocalCacheRepository
	// KVRepository holds device settings and the single-device era key.
	KVRepository LocalKVRepository

	db *DB
}

// NewClientStorages opens the local SQLite database at cfg.DB.DSN, applies
// pending migrations and wires the client repositories to it.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Debug().Msg("creating new client storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		CacheRepository: NewLocalCacheRepository(db, logger),
		KVRepository:    NewLocalKVRepository(db, logger),
		db:              db,
	}, nil
}

// Close releases the database handle.
func (c *ClientStorages) Close() error {
	if c.db == nil {
		return nil
	}
	return c.db.Close()
}
