package service

import (
	"context"
	"errors"
	"sync"

	"github.com/MKhiriev/go-cadence-keys/internal/crypto"
	"github.com/MKhiriev/go-cadence-keys/internal/keystore"
	"github.com/MKhiriev/go-cadence-keys/internal/logger"
)

const opProvision = "key.provision"

type keyProvisioner struct {
	keyStore keystore.KeyStore
	generate func() (crypto.Key, error)

	// mu serializes read-check-generate-write so concurrent first calls
	// cannot store two different keys.
	mu sync.Mutex

	logger *logger.Logger
}

// NewKeyProvisioner returns a [KeyProvisioner] over keyStore.
func NewKeyProvisioner(keyStore keystore.KeyStore, logger *logger.Logger) KeyProvisioner {
	return &keyProvisioner{
		keyStore: keyStore,
		generate: crypto.GenerateKey,
		logger:   logger,
	}
}

func (p *keyProvisioner) GetOrCreateKey(ctx context.Context) (crypto.Key, crypto.KeySource, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	key, source, err := p.keyStore.Get(ctx)
	if err == nil {
		return key, source, nil
	}
	if !errors.Is(err, keystore.ErrKeyNotFound) {
		return nil, "", err
	}

	key, err = p.generate()
	if err != nil {
		return nil, "", crypto.NewError(opProvision, crypto.ErrStorage, err)
	}

	if err = p.keyStore.Set(ctx, key, crypto.KeySourceGenerated); err != nil {
		key.Wipe()
		return nil, "", err
	}

	p.logger.Info().
		Str("op", opProvision).
		Str("fingerprint", crypto.Fingerprint(key)).
		Msg("generated new device key")

	return key, crypto.KeySourceGenerated, nil
}
