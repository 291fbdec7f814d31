package config

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"
)

// DefaultKeyringServiceName is used when no keyring service is configured.
const DefaultKeyringServiceName = "cadence"

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	HTTPAddress    string
	RequestTimeout time.Duration
	Token          string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds the SQLite DSN of the local cache.
	DB DB
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// SyncInterval defines how often the local cache refresh job runs.
	// Zero disables the job.
	SyncInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     App
	Adapter ClientAdapter
	Storage ClientStorage
	Keyring Keyring
	Workers ClientWorkers
}

// GetClientConfig builds and validates the client view of the merged
// configuration. flagCfg carries values bound to the caller's flag set via
// [BindFlags] and may be nil.
func GetClientConfig(flagCfg *StructuredConfig) (*ClientConfig, error) {
	if flagCfg == nil {
		flagCfg = BindFlags(pflag.NewFlagSet("client", pflag.ContinueOnError))
	}

	cfg, err := newConfigBuilder().
		withEnv().
		withConfig(flagCfg).
		withJSON().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	clientCfg := &ClientConfig{
		App: cfg.App,
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			Token:          cfg.Adapter.Token,
		},
		Storage: ClientStorage{DB: cfg.Storage.DB},
		Keyring: cfg.Keyring,
		Workers: ClientWorkers{SyncInterval: cfg.Workers.SyncInterval},
	}

	if clientCfg.Keyring.ServiceName == "" {
		clientCfg.Keyring.ServiceName = DefaultKeyringServiceName
	}

	return clientCfg, clientCfg.validate()
}
