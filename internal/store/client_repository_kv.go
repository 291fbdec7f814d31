package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-cadence-keys/internal/logger"
)

type localKVRepository struct {
	*DB
	logger *logger.Logger
}

// NewLocalKVRepository constructs the SQLite-backed [LocalKVRepository].
func NewLocalKVRepository(db *DB, logger *logger.Logger) LocalKVRepository {
	return &localKVRepository{
		DB:     db,
		logger: logger,
	}
}

func (l *localKVRepository) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := l.DB.QueryRowContext(ctx, getLocalValue, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "localKVRepository.Get").
			Str("key", key).
			Msg("failed to read local value")
		return "", false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return value, true, nil
}

func (l *localKVRepository) Set(ctx context.Context, key, value string) error {
	if _, err := l.DB.ExecContext(ctx, setLocalValue, key, value); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "localKVRepository.Set").
			Str("key", key).
			Msg("failed to write local value")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (l *localKVRepository) Delete(ctx context.Context, key string) error {
	if _, err := l.DB.ExecContext(ctx, deleteLocalValue, key); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}
