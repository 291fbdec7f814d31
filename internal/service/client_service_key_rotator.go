package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-cadence-keys/internal/adapter"
	"github.com/MKhiriev/go-cadence-keys/internal/crypto"
	"github.com/MKhiriev/go-cadence-keys/internal/keystore"
	"github.com/MKhiriev/go-cadence-keys/internal/logger"
	"github.com/MKhiriev/go-cadence-keys/internal/store"
	"github.com/MKhiriev/go-cadence-keys/models"
)

const opRotate = "key.rotate"

type keyRotator struct {
	keyStore      keystore.KeyStore
	backend       adapter.BackendAdapter
	cache         store.LocalCacheRepository
	activityCodec *ActivityCodec
	noteCodec     *NoteCodec
	generate      func() (crypto.Key, error)

	logger *logger.Logger
}

// NewKeyRotator returns a [KeyRotator]. cache may be nil.
func NewKeyRotator(
	keyStore keystore.KeyStore,
	backend adapter.BackendAdapter,
	cache store.LocalCacheRepository,
	activityCodec *ActivityCodec,
	noteCodec *NoteCodec,
	logger *logger.Logger,
) KeyRotator {
	return &keyRotator{
		keyStore:      keyStore,
		backend:       backend,
		cache:         cache,
		activityCodec: activityCodec,
		noteCodec:     noteCodec,
		generate:      crypto.GenerateKey,
		logger:        logger,
	}
}

// Rotate re-encrypts every activity and note under a fresh key. Each
// resource is pushed as one batch; the new key is stored only after both
// batches are accepted. Any later failure pushes the original ciphertexts
// back so the stored key keeps matching the backend.
func (r *keyRotator) Rotate(ctx context.Context, userID int64) (models.RotationResult, error) {
	log := r.logger.ForUser(userID)

	oldKey, _, err := r.keyStore.Get(ctx)
	if err != nil {
		return models.RotationResult{}, err
	}
	defer oldKey.Wipe()

	activities, err := r.backend.ListActivities(ctx)
	if err != nil {
		return models.RotationResult{}, fmt.Errorf("list activities: %w", err)
	}
	notes, err := r.backend.ListNotes(ctx)
	if err != nil {
		return models.RotationResult{}, fmt.Errorf("list notes: %w", err)
	}

	plainActivities, err := r.activityCodec.DecryptFieldsWithKey(activities, oldKey)
	if err != nil {
		return models.RotationResult{}, err
	}
	plainNotes, err := r.noteCodec.DecryptFieldsWithKey(notes, oldKey)
	if err != nil {
		return models.RotationResult{}, err
	}

	newKey, err := r.generate()
	if err != nil {
		return models.RotationResult{}, crypto.NewError(opRotate, crypto.ErrStorage, err)
	}
	defer newKey.Wipe()

	rotatedActivities, err := r.activityCodec.EncryptFieldsWithKey(plainActivities, newKey)
	if err != nil {
		return models.RotationResult{}, err
	}
	rotatedNotes, err := r.noteCodec.EncryptFieldsWithKey(plainNotes, newKey)
	if err != nil {
		return models.RotationResult{}, err
	}

	if err = r.pushActivities(ctx, rotatedActivities); err != nil {
		return models.RotationResult{}, fmt.Errorf("%w: push activities: %w", ErrRotationAborted, err)
	}

	if err = r.pushNotes(ctx, rotatedNotes); err != nil {
		r.restore(ctx, log, activities, nil)
		return models.RotationResult{}, fmt.Errorf("%w: push notes: %w", ErrRotationAborted, err)
	}

	if err = r.keyStore.Set(ctx, newKey, crypto.KeySourceGenerated); err != nil {
		r.restore(ctx, log, activities, notes)
		return models.RotationResult{}, fmt.Errorf("%w: %w", ErrRotationAborted, err)
	}

	if r.cache != nil {
		if err = r.cache.ReplaceActivities(ctx, userID, rotatedActivities); err != nil {
			log.Warn().Err(err).Str("op", opRotate).Msg("failed to refresh cached activities")
		}
		if err = r.cache.ReplaceNotes(ctx, userID, rotatedNotes); err != nil {
			log.Warn().Err(err).Str("op", opRotate).Msg("failed to refresh cached notes")
		}
	}

	result := models.RotationResult{
		OldFingerprint: crypto.Fingerprint(oldKey),
		NewFingerprint: crypto.Fingerprint(newKey),
		Activities:     len(rotatedActivities),
		Notes:          len(rotatedNotes),
	}
	log.Info().
		Str("op", opRotate).
		Str("old_fingerprint", result.OldFingerprint).
		Str("new_fingerprint", result.NewFingerprint).
		Int("activities", result.Activities).
		Int("notes", result.Notes).
		Msg("device key rotated")

	return result, nil
}

func (r *keyRotator) pushActivities(ctx context.Context, activities []models.Activity) error {
	if len(activities) == 0 {
		return nil
	}
	return r.backend.UpdateActivities(ctx, activities)
}

func (r *keyRotator) pushNotes(ctx context.Context, notes []models.Note) error {
	if len(notes) == 0 {
		return nil
	}
	return r.backend.UpdateNotes(ctx, notes)
}

// restore pushes the original ciphertexts back. Failures are logged: at
// that point the backend holds data only the discarded key can read.
func (r *keyRotator) restore(ctx context.Context, log *logger.Logger, activities []models.Activity, notes []models.Note) {
	if err := r.pushActivities(ctx, activities); err != nil {
		log.Err(err).Str("op", opRotate).Msg("failed to restore activities after aborted rotation")
	}
	if err := r.pushNotes(ctx, notes); err != nil {
		log.Err(err).Str("op", opRotate).Msg("failed to restore notes after aborted rotation")
	}
}
