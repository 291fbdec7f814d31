// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// cadence server and the key management client. It is populated by merging
// values from environment variables, command-line flags and an optional JSON
// file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token parameters used by the server to authenticate requests.
	App App `envPrefix:"APP_"`

	// Storage holds the database connection settings. The server expects a
	// PostgreSQL DSN, the client a SQLite DSN for its local cache.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds listen address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the client's view of the backend.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Keyring selects and configures the secure storage holding the
	// device encryption key.
	Keyring Keyring `envPrefix:"KEYRING_"`

	// Workers holds configuration for background jobs.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / --config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage groups the configuration for storage backends.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// App holds token settings.
type App struct {
	// TokenSignKey is the secret key used to sign and verify JWT tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim validated on every authenticated request.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is the lifetime of tokens minted by the server's token
	// command.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address the HTTP server listens on.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN is the data source name used to open the database connection.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Adapter holds the settings the client uses to reach the backend.
type Adapter struct {
	// HTTPAddress is the backend base URL or host:port.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// Token is the bearer token attached to every backend request.
	// Env: ADAPTER_TOKEN
	Token string `env:"TOKEN"`
}

// Keyring configures the secure key storage backend.
type Keyring struct {
	// ServiceName namespaces the item inside the OS credential store.
	// Env: KEYRING_SERVICE_NAME
	ServiceName string `env:"SERVICE_NAME"`

	// Backend restricts the keyring to one backend type
	// ("keychain", "secret-service", "wincred", "kwallet", "pass", "file"
	// or "memory"). Empty lets the keyring library pick.
	// Env: KEYRING_BACKEND
	Backend string `env:"BACKEND"`

	// FileDir is the directory used by the encrypted file backend.
	// Env: KEYRING_FILE_DIR
	FileDir string `env:"FILE_DIR"`

	// FilePassword unlocks the encrypted file backend.
	// Env: KEYRING_FILE_PASSWORD
	FilePassword string `env:"FILE_PASSWORD"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// SyncInterval is how often the client refreshes its local cache.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the configuration from all
// available sources in the following priority order (last source wins for
// non-zero fields):
//  1. Environment variables
//  2. Command-line flags parsed from args
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
