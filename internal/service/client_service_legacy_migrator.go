package service

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/MKhiriev/go-cadence-keys/internal/adapter"
	"github.com/MKhiriev/go-cadence-keys/internal/crypto"
	"github.com/MKhiriev/go-cadence-keys/internal/logger"
	"github.com/MKhiriev/go-cadence-keys/internal/store"
	"github.com/MKhiriev/go-cadence-keys/models"
)

const opMigrate = "legacy.migrate"

// LegacyKeyRegistry is the backend side of the migration.
type LegacyKeyRegistry interface {
	ListLegacyKeys(ctx context.Context) ([]models.LegacyKey, error)
	CreateLegacyKey(ctx context.Context, legacyKey models.LegacyKey) error
}

type legacyKeyMigrator struct {
	legacy   store.LocalKVRepository
	registry LegacyKeyRegistry

	mu sync.Mutex

	logger *logger.Logger
}

// NewLegacyKeyMigrator returns a [LegacyKeyMigrator] reading the old key slot
// from legacy and registering it through registry.
func NewLegacyKeyMigrator(legacy store.LocalKVRepository, registry LegacyKeyRegistry, logger *logger.Logger) LegacyKeyMigrator {
	return &legacyKeyMigrator{
		legacy:   legacy,
		registry: registry,
		logger:   logger,
	}
}

// Migrate registers the legacy key once. An existing server record makes
// the call a no-op. The active device key is never replaced.
func (m *legacyKeyMigrator) Migrate(ctx context.Context, legacyEmail string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	value, ok, err := m.legacy.Get(ctx, store.KVLegacyEncryptionKey)
	if err != nil {
		return crypto.NewError(opMigrate, crypto.ErrStorage, err)
	}
	legacyKey := strings.TrimSpace(value)
	if !ok || legacyKey == "" {
		return crypto.NewError(opMigrate, crypto.ErrMigration, crypto.ErrNoLegacyKey)
	}

	legacyEmail = strings.TrimSpace(legacyEmail)
	if legacyEmail == "" {
		return crypto.NewError(opMigrate, crypto.ErrValidation, crypto.ErrLegacyEmailRequired)
	}

	existing, err := m.registry.ListLegacyKeys(ctx)
	if err != nil {
		return crypto.NewError(opMigrate, crypto.ErrMigration, err)
	}
	if len(existing) > 0 {
		m.logger.Info().Str("op", opMigrate).Msg("legacy key already registered")
		return nil
	}

	err = m.registry.CreateLegacyKey(ctx, models.LegacyKey{
		EncryptionKey: legacyKey,
		LegacyEmail:   legacyEmail,
	})
	if errors.Is(err, adapter.ErrConflict) {
		m.logger.Info().Str("op", opMigrate).Msg("legacy key registered concurrently")
		return nil
	}
	if err != nil {
		return crypto.NewError(opMigrate, crypto.ErrMigration, err)
	}

	m.logger.Info().Str("op", opMigrate).Msg("legacy key registered")
	return nil
}
