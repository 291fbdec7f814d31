package keystore

import (
	"fmt"

	"github.com/99designs/keyring"

	"github.com/MKhiriev/go-cadence-keys/internal/config"
)

// BackendMemory selects a process-local keyring. Keys stored there do not
// survive a restart.
const BackendMemory = "memory"

// OpenKeyring opens the keyring described by cfg. An empty backend lets the
// keyring library pick the best one available on the platform.
func OpenKeyring(cfg config.Keyring) (keyring.Keyring, error) {
	if cfg.Backend == BackendMemory {
		return keyring.NewArrayKeyring(nil), nil
	}

	krCfg := keyring.Config{
		ServiceName:              cfg.ServiceName,
		KeychainTrustApplication: true,
		FileDir:                  cfg.FileDir,
		FilePasswordFunc:         keyring.FixedStringPrompt(cfg.FilePassword),
		LibSecretCollectionName:  cfg.ServiceName,
		KWalletAppID:             cfg.ServiceName,
		KWalletFolder:            cfg.ServiceName,
		PassPrefix:               cfg.ServiceName,
	}
	if cfg.Backend != "" {
		krCfg.AllowedBackends = []keyring.BackendType{keyring.BackendType(cfg.Backend)}
	}

	ring, err := keyring.Open(krCfg)
	if err != nil {
		return nil, fmt.Errorf("error opening keyring: %w", err)
	}

	return ring, nil
}
