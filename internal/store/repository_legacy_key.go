package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-cadence-keys/internal/logger"
	"github.com/MKhiriev/go-cadence-keys/models"
)

type legacyKeyRepository struct {
	*DB
	logger *logger.Logger
}

// NewLegacyKeyRepository constructs a PostgreSQL-backed [LegacyKeyRepository].
func NewLegacyKeyRepository(db *DB, logger *logger.Logger) LegacyKeyRepository {
	return &legacyKeyRepository{
		DB:     db,
		logger: logger,
	}
}

func (l *legacyKeyRepository) ListLegacyKeys(ctx context.Context, userID int64) ([]models.LegacyKey, error) {
	query, args, err := buildListLegacyKeysQuery(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := l.DB.QueryContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "legacyKeyRepository.ListLegacyKeys").
			Int64("user_id", userID).
			Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var results []models.LegacyKey
	for rows.Next() {
		var item models.LegacyKey
		if err = rows.Scan(&item.UserID, &item.EncryptionKey, &item.LegacyEmail, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		results = append(results, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return results, nil
}

func (l *legacyKeyRepository) CreateLegacyKey(ctx context.Context, key models.LegacyKey) (models.LegacyKey, error) {
	query, args, err := buildCreateLegacyKeyQuery(key)
	if err != nil {
		return models.LegacyKey{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = l.DB.QueryRowContext(ctx, query, args...).Scan(&key.CreatedAt); err != nil {
		if isUniqueViolation(err) {
			return models.LegacyKey{}, ErrLegacyKeyExists
		}
		// the key itself never goes to the log
		logger.FromContext(ctx).Err(err).
			Str("func", "legacyKeyRepository.CreateLegacyKey").
			Int64("user_id", key.UserID).
			Msg("failed to insert legacy key")
		return models.LegacyKey{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return key, nil
}
