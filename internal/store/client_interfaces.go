package store

import (
	"context"

	"github.com/MKhiriev/go-cadence-keys/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// Well-known keys of the local key-value table.
const (
	// KVLegacyEncryptionKey holds the hex key written by the single-device
	// build before keys moved to the OS keyring.
	KVLegacyEncryptionKey = "@cadence_encryption_key"
	KVDeviceID            = "device_id"
	KVHasSeenLinkDialog   = "has_seen_link_dialog"
)

// LocalCacheRepository mirrors the user's activities and notes on the
// device. Rows hold the same ciphertext the backend stores.
type LocalCacheRepository interface {
	ReplaceActivities(ctx context.Context, userID int64, activities []models.Activity) error
	UpsertActivities(ctx context.Context, userID int64, activities ...models.Activity) error
	ListActivities(ctx context.Context, userID int64) ([]models.Activity, error)

	ReplaceNotes(ctx context.Context, userID int64, notes []models.Note) error
	UpsertNotes(ctx context.Context, userID int64, notes ...models.Note) error
	ListNotes(ctx context.Context, userID int64) ([]models.Note, error)

	// HasRecords reports whether anything is cached for the user.
	HasRecords(ctx context.Context, userID int64) (bool, error)
}

// LocalKVRepository is a small string key-value table for device-level
// settings.
type LocalKVRepository interface {
	// Get returns the value and whether it was present.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
