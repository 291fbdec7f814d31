package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-cadence-keys/internal/logger"
	"github.com/MKhiriev/go-cadence-keys/internal/store"
	"github.com/MKhiriev/go-cadence-keys/internal/validators"
	"github.com/MKhiriev/go-cadence-keys/models"
)

type activityService struct {
	repository store.ActivityRepository
	validator  validators.Validator

	logger *logger.Logger
}

// NewActivityService returns the backend [ActivityService].
func NewActivityService(repository store.ActivityRepository, validator validators.Validator, logger *logger.Logger) ActivityService {
	return &activityService{
		repository: repository,
		validator:  validator,
		logger:     logger,
	}
}

func (s *activityService) List(ctx context.Context, userID int64) ([]models.Activity, error) {
	if userID <= 0 {
		return nil, ErrNoUserID
	}
	return s.repository.ListActivities(ctx, userID)
}

func (s *activityService) Create(ctx context.Context, activity models.Activity) (models.Activity, error) {
	if activity.Status == "" {
		activity.Status = models.ActivityEnabled
	}
	if err := s.validator.Validate(ctx, activity); err != nil {
		return models.Activity{}, mapValidationError(err)
	}

	return s.repository.CreateActivity(ctx, activity)
}

func (s *activityService) Update(ctx context.Context, userID int64, activities []models.Activity) error {
	if userID <= 0 {
		return ErrNoUserID
	}

	scoped := make([]models.Activity, len(activities))
	for i, a := range activities {
		a.UserID = userID
		scoped[i] = a
	}

	if err := s.validator.Validate(ctx, scoped); err != nil {
		return mapValidationError(err)
	}

	if err := s.repository.UpdateActivities(ctx, userID, scoped); err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Int("count", len(scoped)).Msg("activity batch update failed")
		return err
	}
	return nil
}

// mapValidationError folds validator errors into the service errors the
// handler knows how to report, keeping the detail in the chain.
func mapValidationError(err error) error {
	switch {
	case errors.Is(err, validators.ErrEmptyBatch):
		return ErrNothingToUpdate
	case errors.Is(err, validators.ErrEmptyID):
		return fmt.Errorf("%w: %w", ErrMissingRecordID, err)
	case errors.Is(err, validators.ErrInvalidUserID):
		return ErrNoUserID
	case errors.Is(err, validators.ErrEmptyLegacyKey), errors.Is(err, validators.ErrEmptyLegacyEmail):
		return fmt.Errorf("%w: %w", ErrInvalidLegacyKey, err)
	default:
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
}
