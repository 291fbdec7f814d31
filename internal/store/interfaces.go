package store

import (
	"context"

	"github.com/MKhiriev/go-cadence-keys/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ActivityRepository persists activities on the backend. Names arrive
// already encrypted (or as legacy plaintext) and are stored verbatim.
type ActivityRepository interface {
	ListActivities(ctx context.Context, userID int64) ([]models.Activity, error)
	CreateActivity(ctx context.Context, activity models.Activity) (models.Activity, error)
	// UpdateActivities rewrites every listed activity in one transaction.
	UpdateActivities(ctx context.Context, userID int64, activities []models.Activity) error
	// HasEncryptedActivities reports whether at least one activity name
	// carries the envelope marker.
	HasEncryptedActivities(ctx context.Context, userID int64) (bool, error)
}

// NoteRepository persists notes on the backend.
type NoteRepository interface {
	ListNotes(ctx context.Context, userID int64) ([]models.Note, error)
	CreateNote(ctx context.Context, note models.Note) (models.Note, error)
	UpdateNotes(ctx context.Context, userID int64, notes []models.Note) error
	HasEncryptedNotes(ctx context.Context, userID int64) (bool, error)
}

// LegacyKeyRepository stores the one-per-user legacy key record.
type LegacyKeyRepository interface {
	ListLegacyKeys(ctx context.Context, userID int64) ([]models.LegacyKey, error)
	// CreateLegacyKey returns [ErrLegacyKeyExists] when the user already has
	// a record.
	CreateLegacyKey(ctx context.Context, key models.LegacyKey) (models.LegacyKey, error)
}
