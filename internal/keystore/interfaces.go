package keystore

import (
	"context"

	"github.com/MKhiriev/go-cadence-keys/internal/crypto"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/key_store_mock.go -package=mock

// KeyStore holds at most one key per device together with its source tag.
type KeyStore interface {
	// Has reports whether a key is stored.
	Has(ctx context.Context) (bool, error)
	// Get returns the stored key and its source, or ErrKeyNotFound.
	// The caller owns the returned key and should wipe it when done.
	Get(ctx context.Context) (crypto.Key, crypto.KeySource, error)
	// Set replaces any stored key.
	Set(ctx context.Context, key crypto.Key, source crypto.KeySource) error
	// Clear removes the stored key. Clearing an empty store is not an error.
	Clear(ctx context.Context) error
}
