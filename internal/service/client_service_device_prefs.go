package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-cadence-keys/internal/store"
	"github.com/MKhiriev/go-cadence-keys/internal/utils"
)

type devicePrefs struct {
	kv store.LocalKVRepository

	mu sync.Mutex
}

// NewDevicePrefs returns [DevicePrefs] stored in the local key-value table.
func NewDevicePrefs(kv store.LocalKVRepository) DevicePrefs {
	return &devicePrefs{kv: kv}
}

func (d *devicePrefs) DeviceID(ctx context.Context) (string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	id, ok, err := d.kv.Get(ctx, store.KVDeviceID)
	if err != nil {
		return "", fmt.Errorf("read device id: %w", err)
	}
	if ok && id != "" {
		return id, nil
	}

	id = utils.NewID()
	if err = d.kv.Set(ctx, store.KVDeviceID, id); err != nil {
		return "", fmt.Errorf("store device id: %w", err)
	}
	return id, nil
}

func (d *devicePrefs) HasSeenLinkPrompt(ctx context.Context) (bool, error) {
	v, ok, err := d.kv.Get(ctx, store.KVHasSeenLinkDialog)
	if err != nil {
		return false, fmt.Errorf("read link prompt flag: %w", err)
	}
	return ok && v == "true", nil
}

func (d *devicePrefs) MarkLinkPromptSeen(ctx context.Context) error {
	if err := d.kv.Set(ctx, store.KVHasSeenLinkDialog, "true"); err != nil {
		return fmt.Errorf("store link prompt flag: %w", err)
	}
	return nil
}
