package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-cadence-keys/internal/logger"
	"github.com/MKhiriev/go-cadence-keys/models"
)

// activityRepository is the PostgreSQL-backed [ActivityRepository].
type activityRepository struct {
	*DB
	logger *logger.Logger
}

// NewActivityRepository constructs an [ActivityRepository] over db.
func NewActivityRepository(db *DB, logger *logger.Logger) ActivityRepository {
	return &activityRepository{
		DB:     db,
		logger: logger,
	}
}

func (a *activityRepository) ListActivities(ctx context.Context, userID int64) ([]models.Activity, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListActivitiesQuery(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := a.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "activityRepository.ListActivities").
			Int64("user_id", userID).
			Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.Activity, 0, 32)
	for rows.Next() {
		var item models.Activity
		if err = scanActivity(rows, &item); err != nil {
			log.Err(err).
				Str("func", "activityRepository.ListActivities").
				Int64("user_id", userID).
				Msg("failed to scan activity row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		results = append(results, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return results, nil
}

func (a *activityRepository) CreateActivity(ctx context.Context, activity models.Activity) (models.Activity, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateActivityQuery(activity)
	if err != nil {
		return models.Activity{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = a.DB.QueryRowContext(ctx, query, args...).Scan(&activity.CreatedAt, &activity.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return models.Activity{}, ErrAlreadyExists
		}
		log.Err(err).
			Str("func", "activityRepository.CreateActivity").
			Int64("user_id", activity.UserID).
			Str("activity_id", activity.ID).
			Msg("failed to insert activity")
		return models.Activity{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return activity, nil
}

func (a *activityRepository) UpdateActivities(ctx context.Context, userID int64, activities []models.Activity) error {
	log := logger.FromContext(ctx)

	return a.withTx(ctx, func(tx *sql.Tx) error {
		for i, activity := range activities {
			query, args, err := buildUpdateActivityQuery(userID, activity)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
			}

			res, err := tx.ExecContext(ctx, query, args...)
			if err != nil {
				log.Err(err).
					Str("func", "activityRepository.UpdateActivities").
					Int64("user_id", userID).
					Int("iteration", i).
					Msg("failed to update activity")
				return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
			}

			affected, err := res.RowsAffected()
			if err != nil {
				return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
			}
			if affected == 0 {
				return fmt.Errorf("%w: %s", ErrActivityNotFound, activity.ID)
			}
		}
		return nil
	})
}

func (a *activityRepository) HasEncryptedActivities(ctx context.Context, userID int64) (bool, error) {
	return a.hasEncrypted(ctx, models.Activity{}.TableName(), "name", userID)
}

// hasEncrypted reports whether any row of table owned by userID has column
// starting with the envelope marker.
func (db *DB) hasEncrypted(ctx context.Context, table, column string, userID int64) (bool, error) {
	query, args, err := buildHasEncryptedQuery(table, column, userID)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var one int
	err = db.QueryRowContext(ctx, query, args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "DB.hasEncrypted").
			Str("table", table).
			Int64("user_id", userID).
			Msg("failed to probe for encrypted rows")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return true, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanActivity(row rowScanner, item *models.Activity) error {
	return row.Scan(
		&item.ID,
		&item.UserID,
		&item.Name,
		&item.Color,
		&item.ParentActivityID,
		&item.ActivityCategoryID,
		&item.Status,
		&item.Weight,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
}
