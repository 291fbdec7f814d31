// Package config provides configuration loading, merging, and validation
// for the cadence server and the key management client.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The entry points are [GetServerConfig] and [GetServerConfigFromFlags] for
// the backend and [GetClientConfig] for the client.
package config
