// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the variables named by the `env` and `envPrefix`
// tags of [StructuredConfig]. Secrets are trimmed because they are often
// mounted from files that end with a newline.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	cfg.App.TokenSignKey = strings.TrimSpace(cfg.App.TokenSignKey)
	cfg.Adapter.Token = strings.TrimSpace(cfg.Adapter.Token)
	cfg.Keyring.FilePassword = strings.TrimSpace(cfg.Keyring.FilePassword)

	return nil
}
