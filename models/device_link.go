package models

import (
	"context"

	"github.com/MKhiriev/go-cadence-keys/internal/crypto"
)

// LinkExport is what the export screen shows: the hex key for transfer and
// the fingerprint the user compares on both devices.
type LinkExport struct {
	Key         string           `json:"key"`
	Fingerprint string           `json:"fingerprint"`
	Source      crypto.KeySource `json:"source"`
}

// KeyStatus describes the device key without exposing it.
type KeyStatus struct {
	HasKey      bool             `json:"has_key"`
	Fingerprint string           `json:"fingerprint,omitempty"`
	Source      crypto.KeySource `json:"source,omitempty"`
	DeviceID    string           `json:"device_id,omitempty"`
}

// DetectionReason names the heuristic that decided whether a device is new.
type DetectionReason string

const (
	ReasonHasKey         DetectionReason = "has-key"
	ReasonLocalRecords   DetectionReason = "local-records"
	ReasonRemoteEnvelope DetectionReason = "remote-encrypted-records"
	ReasonNoData         DetectionReason = "no-data"
)

// Detection is the outcome of new-device detection.
type Detection struct {
	NewDevice bool            `json:"new_device"`
	Reason    DetectionReason `json:"reason"`
}

// RotationResult summarizes a completed key rotation.
type RotationResult struct {
	OldFingerprint string `json:"old_fingerprint"`
	NewFingerprint string `json:"new_fingerprint"`
	Activities     int    `json:"activities"`
	Notes          int    `json:"notes"`
}

// LinkPrompter shows the link dialog. It is implemented by the UI layer.
type LinkPrompter interface {
	PromptLink(ctx context.Context, detection Detection) error
}
