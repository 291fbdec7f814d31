// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "slices"

// KeyringBackends lists the accepted values of Keyring.Backend.
var KeyringBackends = []string{"", "keychain", "secret-service", "wincred", "kwallet", "pass", "file", "memory"}

// validate checks source-independent rules of the merged config.
// Role-specific requirements live in the client and server validators.
func (cfg *StructuredConfig) validate() error {
	if !slices.Contains(KeyringBackends, cfg.Keyring.Backend) {
		return ErrInvalidKeyringConfigs
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Keyring.ServiceName == "" || (cfg.Keyring.Backend == "file" && cfg.Keyring.FileDir == "") {
		return ErrInvalidKeyringConfigs
	}

	if cfg.Workers.SyncInterval < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}
