package config

import (
	"fmt"
)

// ServerConfig is the subset of [StructuredConfig] the backend needs.
type ServerConfig struct {
	App     App
	Server  Server
	Storage Storage
}

// GetServerConfig parses args together with the environment and an optional
// JSON file and returns the validated server view.
func GetServerConfig(args []string) (*ServerConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newServerConfig(cfg)
}

// GetServerConfigFromFlags is [GetServerConfig] for callers that bind flags
// themselves via [BindFlags], such as the cobra commands of cmd/server.
func GetServerConfigFromFlags(flagCfg *StructuredConfig) (*ServerConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withConfig(flagCfg).
		withJSON().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newServerConfig(cfg)
}

func newServerConfig(cfg *StructuredConfig) (*ServerConfig, error) {
	serverCfg := &ServerConfig{
		App:     cfg.App,
		Server:  cfg.Server,
		Storage: cfg.Storage,
	}

	return serverCfg, serverCfg.validate()
}
