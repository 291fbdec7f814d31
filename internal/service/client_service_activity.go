package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-cadence-keys/internal/adapter"
	"github.com/MKhiriev/go-cadence-keys/internal/logger"
	"github.com/MKhiriev/go-cadence-keys/internal/store"
	"github.com/MKhiriev/go-cadence-keys/internal/utils"
	"github.com/MKhiriev/go-cadence-keys/models"
)

type clientActivityService struct {
	backend adapter.BackendAdapter
	cache   store.LocalCacheRepository
	codec   *ActivityCodec

	logger *logger.Logger
}

// NewClientActivityService returns a [ClientActivityService]. The cache
// receives rows in their stored (encrypted) form.
func NewClientActivityService(backend adapter.BackendAdapter, cache store.LocalCacheRepository, codec *ActivityCodec, logger *logger.Logger) ClientActivityService {
	return &clientActivityService{
		backend: backend,
		cache:   cache,
		codec:   codec,
		logger:  logger,
	}
}

func (s *clientActivityService) List(ctx context.Context, userID int64) ([]models.Activity, error) {
	stored, err := s.backend.ListActivities(ctx)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", mapAdapterError(err))
	}

	if err = s.cache.ReplaceActivities(ctx, userID, stored); err != nil {
		s.logger.Warn().Err(err).Int64("user_id", userID).Msg("failed to cache activities")
	}

	return s.codec.DecryptFields(ctx, stored)
}

func (s *clientActivityService) ListCached(ctx context.Context, userID int64) ([]models.Activity, error) {
	stored, err := s.cache.ListActivities(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list cached activities: %w", err)
	}
	return s.codec.DecryptFields(ctx, stored)
}

func (s *clientActivityService) Create(ctx context.Context, userID int64, activity models.Activity) (models.Activity, error) {
	if activity.ID == "" {
		activity.ID = utils.NewID()
	}
	activity.UserID = userID
	if activity.Status == "" {
		activity.Status = models.ActivityEnabled
	}

	encoded, err := s.codec.EncryptField(ctx, activity)
	if err != nil {
		return models.Activity{}, err
	}

	created, err := s.backend.CreateActivity(ctx, encoded)
	if err != nil {
		return models.Activity{}, fmt.Errorf("create activity: %w", mapAdapterError(err))
	}

	if err = s.cache.UpsertActivities(ctx, userID, created); err != nil {
		s.logger.Warn().Err(err).Int64("user_id", userID).Str("activity_id", created.ID).Msg("failed to cache created activity")
	}

	return s.codec.DecryptField(ctx, created)
}

func (s *clientActivityService) Update(ctx context.Context, userID int64, activities []models.Activity) error {
	encoded, err := s.codec.EncryptFields(ctx, activities)
	if err != nil {
		return err
	}

	if err = s.backend.UpdateActivities(ctx, encoded); err != nil {
		return fmt.Errorf("update activities: %w", mapAdapterError(err))
	}

	if err = s.cache.UpsertActivities(ctx, userID, encoded...); err != nil {
		s.logger.Warn().Err(err).Int64("user_id", userID).Msg("failed to cache updated activities")
	}
	return nil
}
