package service

import (
	"context"
	"errors"
	"sync"

	"github.com/MKhiriev/go-cadence-keys/internal/crypto"
	"github.com/MKhiriev/go-cadence-keys/internal/keystore"
	"github.com/MKhiriev/go-cadence-keys/internal/logger"
	"github.com/MKhiriev/go-cadence-keys/models"
)

const (
	opExport  = "link.export"
	opImport  = "link.import"
	opDetect  = "link.detect"
	opPrompt  = "link.prompt"
	opStatus  = "link.status"
	opDismiss = "link.dismiss"
)

type deviceLinkManager struct {
	keyStore keystore.KeyStore
	local    LocalRecordChecker
	remote   EncryptedRecordProber
	prefs    DevicePrefs

	// prompted is the once-per-cycle latch.
	mu       sync.Mutex
	prompted bool

	logger *logger.Logger
}

// NewDeviceLinkManager wires the link flows. local and remote may be nil
// when the corresponding heuristic is unavailable.
func NewDeviceLinkManager(
	keyStore keystore.KeyStore,
	local LocalRecordChecker,
	remote EncryptedRecordProber,
	prefs DevicePrefs,
	logger *logger.Logger,
) DeviceLinkManager {
	return &deviceLinkManager{
		keyStore: keyStore,
		local:    local,
		remote:   remote,
		prefs:    prefs,
		logger:   logger,
	}
}

func (m *deviceLinkManager) ExportKey(ctx context.Context) (models.LinkExport, error) {
	key, source, err := m.keyStore.Get(ctx)
	if err != nil {
		return models.LinkExport{}, err
	}
	defer key.Wipe()

	m.logger.Info().Str("op", opExport).Msg("device key exported for linking")

	return models.LinkExport{
		Key:         key.Hex(),
		Fingerprint: crypto.Fingerprint(key),
		Source:      source,
	}, nil
}

// ImportKey validates candidate before anything is written; the key store
// is untouched when validation fails.
func (m *deviceLinkManager) ImportKey(ctx context.Context, candidate string) (string, error) {
	key, err := crypto.ParseKey(candidate)
	if err != nil {
		return "", crypto.NewError(opImport, crypto.ErrValidation, err)
	}
	defer key.Wipe()

	if err = m.keyStore.Set(ctx, key, crypto.KeySourceImported); err != nil {
		return "", err
	}

	fingerprint := crypto.Fingerprint(key)
	m.logger.Info().Str("op", opImport).Str("fingerprint", fingerprint).Msg("device key imported")

	if m.prefs != nil {
		if err = m.prefs.MarkLinkPromptSeen(ctx); err != nil {
			m.logger.Warn().Err(err).Str("op", opImport).Msg("failed to persist link prompt flag")
		}
	}

	return fingerprint, nil
}

func (m *deviceLinkManager) ClearKey(ctx context.Context) error {
	return m.keyStore.Clear(ctx)
}

func (m *deviceLinkManager) Status(ctx context.Context) (models.KeyStatus, error) {
	var status models.KeyStatus

	key, source, err := m.keyStore.Get(ctx)
	switch {
	case errors.Is(err, keystore.ErrKeyNotFound):
	case err != nil:
		return models.KeyStatus{}, err
	default:
		status.HasKey = true
		status.Fingerprint = crypto.Fingerprint(key)
		status.Source = source
		key.Wipe()
	}

	if m.prefs != nil {
		if status.DeviceID, err = m.prefs.DeviceID(ctx); err != nil {
			m.logger.Warn().Err(err).Str("op", opStatus).Msg("device id unavailable")
		}
	}

	return status, nil
}

func (m *deviceLinkManager) DetectNewDevice(ctx context.Context, userID int64) (models.Detection, error) {
	hasKey, err := m.keyStore.Has(ctx)
	if err != nil {
		return models.Detection{}, err
	}
	if hasKey {
		return models.Detection{Reason: models.ReasonHasKey}, nil
	}

	if m.local != nil {
		cached, err := m.local.HasCachedRecords(ctx, userID)
		switch {
		case err != nil:
			m.logger.Warn().Err(err).Str("op", opDetect).Int64("user_id", userID).
				Msg("local cache check failed, falling back to backend probe")
		case cached:
			return models.Detection{NewDevice: true, Reason: models.ReasonLocalRecords}, nil
		}
	}

	if m.remote != nil {
		encrypted, err := m.remote.HasEncryptedRecords(ctx)
		if err != nil {
			return models.Detection{}, err
		}
		if encrypted {
			return models.Detection{NewDevice: true, Reason: models.ReasonRemoteEnvelope}, nil
		}
	}

	return models.Detection{Reason: models.ReasonNoData}, nil
}

func (m *deviceLinkManager) CheckAndPrompt(ctx context.Context, userID int64, prompter models.LinkPrompter) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.prompted {
		return false, nil
	}

	if m.prefs != nil {
		dismissed, err := m.prefs.HasSeenLinkPrompt(ctx)
		if err != nil {
			m.logger.Warn().Err(err).Str("op", opPrompt).Msg("link prompt flag unavailable")
		}
		if dismissed {
			return false, nil
		}
	}

	detection, err := m.DetectNewDevice(ctx, userID)
	if err != nil {
		return false, err
	}
	if !detection.NewDevice {
		return false, nil
	}

	m.prompted = true
	m.logger.Info().Str("op", opPrompt).Str("reason", string(detection.Reason)).Msg("prompting to link device")

	if err = prompter.PromptLink(ctx, detection); err != nil {
		return true, err
	}
	return true, nil
}

func (m *deviceLinkManager) BeginCycle() {
	m.mu.Lock()
	m.prompted = false
	m.mu.Unlock()
}

func (m *deviceLinkManager) Dismiss(ctx context.Context) error {
	if m.prefs == nil {
		return nil
	}
	if err := m.prefs.MarkLinkPromptSeen(ctx); err != nil {
		m.logger.Err(err).Str("op", opDismiss).Msg("failed to persist link prompt dismissal")
		return err
	}
	return nil
}
