package service

import (
	"context"

	"github.com/MKhiriev/go-cadence-keys/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// ActivityService stores activities on the backend. Names are opaque: they
// arrive encrypted by the client or as legacy plaintext.
type ActivityService interface {
	List(ctx context.Context, userID int64) ([]models.Activity, error)
	Create(ctx context.Context, activity models.Activity) (models.Activity, error)
	// Update applies the whole batch or nothing.
	Update(ctx context.Context, userID int64, activities []models.Activity) error
}

// NoteService stores notes on the backend.
type NoteService interface {
	List(ctx context.Context, userID int64) ([]models.Note, error)
	Create(ctx context.Context, note models.Note) (models.Note, error)
	Update(ctx context.Context, userID int64, notes []models.Note) error
}

// EncryptionService serves the encrypted-data probe and legacy-key
// registration.
type EncryptionService interface {
	Probe(ctx context.Context, userID int64) (models.EncryptedDataProbe, error)
	ListLegacyKeys(ctx context.Context, userID int64) ([]models.LegacyKey, error)
	// RegisterLegacyKey returns store.ErrLegacyKeyExists when the user
	// already has a record; existing records are never overwritten.
	RegisterLegacyKey(ctx context.Context, legacyKey models.LegacyKey) (models.LegacyKey, error)
}

// AuthService issues and verifies the bearer tokens of the backend.
type AuthService interface {
	CreateToken(ctx context.Context, userID int64) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}
