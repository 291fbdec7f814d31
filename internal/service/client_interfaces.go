package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-cadence-keys/internal/crypto"
	"github.com/MKhiriev/go-cadence-keys/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// KeyProvisioner is the only component that creates encryption keys.
type KeyProvisioner interface {
	// GetOrCreateKey returns the stored key, generating and storing a new
	// one first when the device has none. Concurrent first calls observe the
	// same key. The caller owns the returned key and should wipe it.
	GetOrCreateKey(ctx context.Context) (crypto.Key, crypto.KeySource, error)
}

// DeviceLinkManager moves the key between devices and decides when the user
// should be asked to link this device.
type DeviceLinkManager interface {
	ExportKey(ctx context.Context) (models.LinkExport, error)
	ImportKey(ctx context.Context, candidate string) (fingerprint string, err error)
	ClearKey(ctx context.Context) error
	Status(ctx context.Context) (models.KeyStatus, error)

	DetectNewDevice(ctx context.Context, userID int64) (models.Detection, error)
	// CheckAndPrompt shows the link prompt at most once per cycle and never
	// after the user dismissed it. It reports whether the prompt was shown.
	CheckAndPrompt(ctx context.Context, userID int64, prompter models.LinkPrompter) (bool, error)
	// BeginCycle re-arms the once-per-cycle prompt latch (launch or return
	// to foreground).
	BeginCycle()
	// Dismiss persists the user's choice to not be asked again.
	Dismiss(ctx context.Context) error
}

// LegacyKeyMigrator registers the single-device key with the backend.
type LegacyKeyMigrator interface {
	Migrate(ctx context.Context, legacyEmail string) error
}

// KeyRotator replaces the device key and re-encrypts every stored value.
type KeyRotator interface {
	Rotate(ctx context.Context, userID int64) (models.RotationResult, error)
}

// ClientActivityService reads and writes activities with Name encrypted on
// the way out and decrypted on the way in.
type ClientActivityService interface {
	List(ctx context.Context, userID int64) ([]models.Activity, error)
	ListCached(ctx context.Context, userID int64) ([]models.Activity, error)
	Create(ctx context.Context, userID int64, activity models.Activity) (models.Activity, error)
	Update(ctx context.Context, userID int64, activities []models.Activity) error
}

// ClientNoteService is the note counterpart of [ClientActivityService].
type ClientNoteService interface {
	List(ctx context.Context, userID int64) ([]models.Note, error)
	ListCached(ctx context.Context, userID int64) ([]models.Note, error)
	Create(ctx context.Context, userID int64, note models.Note) (models.Note, error)
	Update(ctx context.Context, userID int64, notes []models.Note) error
}

// CacheRefresher pulls the user's records from the backend into the local
// cache without decrypting them.
type CacheRefresher interface {
	Refresh(ctx context.Context, userID int64) error
}

// CacheRefreshJob calls a [CacheRefresher] on a ticker.
type CacheRefreshJob interface {
	// Start launches the background goroutine, stopping any previous one.
	// A non-positive interval defaults to 5 minutes.
	Start(ctx context.Context, userID int64, interval time.Duration)
	// Stop cancels the goroutine and waits for it to exit.
	Stop()
}

// LocalRecordChecker reports whether the device already caches user data.
type LocalRecordChecker interface {
	HasCachedRecords(ctx context.Context, userID int64) (bool, error)
}

// EncryptedRecordProber asks the backend whether any stored value of the
// user carries the envelope marker.
type EncryptedRecordProber interface {
	HasEncryptedRecords(ctx context.Context) (bool, error)
}

// DevicePrefs keeps per-device settings outside the keyring.
type DevicePrefs interface {
	// DeviceID returns the device identifier, creating it on first use.
	DeviceID(ctx context.Context) (string, error)
	HasSeenLinkPrompt(ctx context.Context) (bool, error)
	MarkLinkPromptSeen(ctx context.Context) error
}
