package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-cadence-keys/internal/logger"
	"github.com/MKhiriev/go-cadence-keys/models"
)

type localCacheRepository struct {
	*DB
	logger *logger.Logger
}

// NewLocalCacheRepository constructs the SQLite-backed [LocalCacheRepository].
func NewLocalCacheRepository(db *DB, logger *logger.Logger) LocalCacheRepository {
	return &localCacheRepository{
		DB:     db,
		logger: logger,
	}
}

func (l *localCacheRepository) ReplaceActivities(ctx context.Context, userID int64, activities []models.Activity) error {
	return l.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, deleteCachedActivities, userID); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		return upsertActivities(ctx, tx, userID, activities)
	})
}

func (l *localCacheRepository) UpsertActivities(ctx context.Context, userID int64, activities ...models.Activity) error {
	return l.withTx(ctx, func(tx *sql.Tx) error {
		return upsertActivities(ctx, tx, userID, activities)
	})
}

func upsertActivities(ctx context.Context, tx *sql.Tx, userID int64, activities []models.Activity) error {
	for _, a := range activities {
		_, err := tx.ExecContext(ctx, upsertCachedActivity,
			a.ID,
			userID,
			a.Name,
			a.Color,
			a.ParentActivityID,
			a.ActivityCategoryID,
			a.Status,
			a.Weight,
			a.CreatedAt.UTC(),
			a.UpdatedAt.UTC(),
		)
		if err != nil {
			logger.FromContext(ctx).Err(err).
				Str("func", "localCacheRepository.upsertActivities").
				Int64("user_id", userID).
				Str("activity_id", a.ID).
				Msg("failed to cache activity")
			return fmt.Errorf("failed to cache activity (id=%s): %w", a.ID, err)
		}
	}
	return nil
}

func (l *localCacheRepository) ListActivities(ctx context.Context, userID int64) ([]models.Activity, error) {
	rows, err := l.DB.QueryContext(ctx, listCachedActivities, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var results []models.Activity
	for rows.Next() {
		var item models.Activity
		if err = scanActivity(rows, &item); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		results = append(results, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return results, nil
}

func (l *localCacheRepository) ReplaceNotes(ctx context.Context, userID int64, notes []models.Note) error {
	return l.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, deleteCachedNotes, userID); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		return upsertNotes(ctx, tx, userID, notes)
	})
}

func (l *localCacheRepository) UpsertNotes(ctx context.Context, userID int64, notes ...models.Note) error {
	return l.withTx(ctx, func(tx *sql.Tx) error {
		return upsertNotes(ctx, tx, userID, notes)
	})
}

func upsertNotes(ctx context.Context, tx *sql.Tx, userID int64, notes []models.Note) error {
	for _, n := range notes {
		_, err := tx.ExecContext(ctx, upsertCachedNote,
			n.ID,
			userID,
			n.TimesliceID,
			n.Message,
			n.CreatedAt.UTC(),
			n.UpdatedAt.UTC(),
		)
		if err != nil {
			logger.FromContext(ctx).Err(err).
				Str("func", "localCacheRepository.upsertNotes").
				Int64("user_id", userID).
				Str("note_id", n.ID).
				Msg("failed to cache note")
			return fmt.Errorf("failed to cache note (id=%s): %w", n.ID, err)
		}
	}
	return nil
}

func (l *localCacheRepository) ListNotes(ctx context.Context, userID int64) ([]models.Note, error) {
	rows, err := l.DB.QueryContext(ctx, listCachedNotes, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var results []models.Note
	for rows.Next() {
		var item models.Note
		if err = scanNote(rows, &item); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		results = append(results, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return results, nil
}

func (l *localCacheRepository) HasRecords(ctx context.Context, userID int64) (bool, error) {
	var has bool
	if err := l.DB.QueryRowContext(ctx, hasCachedRecords, userID, userID).Scan(&has); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "localCacheRepository.HasRecords").
			Int64("user_id", userID).
			Msg("failed to check local records")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return has, nil
}
