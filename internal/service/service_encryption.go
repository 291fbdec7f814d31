package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-cadence-keys/internal/logger"
	"github.com/MKhiriev/go-cadence-keys/internal/store"
	"github.com/MKhiriev/go-cadence-keys/internal/validators"
	"github.com/MKhiriev/go-cadence-keys/models"
)

type encryptionService struct {
	activities store.ActivityRepository
	notes      store.NoteRepository
	legacyKeys store.LegacyKeyRepository
	validator  validators.Validator

	logger *logger.Logger
}

// NewEncryptionService returns the backend [EncryptionService].
func NewEncryptionService(storages *store.Storages, validator validators.Validator, logger *logger.Logger) EncryptionService {
	return &encryptionService{
		activities: storages.ActivityRepository,
		notes:      storages.NoteRepository,
		legacyKeys: storages.LegacyKeyRepository,
		validator:  validator,
		logger:     logger,
	}
}

// Probe checks activities first and skips the note query when an encrypted
// activity already answers the question.
func (s *encryptionService) Probe(ctx context.Context, userID int64) (models.EncryptedDataProbe, error) {
	if userID <= 0 {
		return models.EncryptedDataProbe{}, ErrNoUserID
	}

	var probe models.EncryptedDataProbe
	var err error

	if probe.Activities, err = s.activities.HasEncryptedActivities(ctx, userID); err != nil {
		return models.EncryptedDataProbe{}, err
	}
	if probe.Activities {
		return probe, nil
	}

	if probe.Notes, err = s.notes.HasEncryptedNotes(ctx, userID); err != nil {
		return models.EncryptedDataProbe{}, err
	}
	return probe, nil
}

func (s *encryptionService) ListLegacyKeys(ctx context.Context, userID int64) ([]models.LegacyKey, error) {
	if userID <= 0 {
		return nil, ErrNoUserID
	}
	return s.legacyKeys.ListLegacyKeys(ctx, userID)
}

func (s *encryptionService) RegisterLegacyKey(ctx context.Context, legacyKey models.LegacyKey) (models.LegacyKey, error) {
	if err := s.validator.Validate(ctx, legacyKey); err != nil {
		return models.LegacyKey{}, mapValidationError(err)
	}

	created, err := s.legacyKeys.CreateLegacyKey(ctx, legacyKey)
	if errors.Is(err, store.ErrLegacyKeyExists) {
		logger.FromContext(ctx).Info().Int64("user_id", legacyKey.UserID).Msg("legacy key already registered")
		return models.LegacyKey{}, err
	}
	if err != nil {
		return models.LegacyKey{}, err
	}

	logger.FromContext(ctx).Info().Int64("user_id", legacyKey.UserID).Msg("legacy key registered")
	return created, nil
}
