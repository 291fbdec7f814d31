// Package keystore persists the device's single encryption key in the
// operating system's secure credential storage.
//
// The key lives in exactly one keyring item. Absence of the item is reported
// as [ErrKeyNotFound]; every other failure is a storage error
// (crypto.ErrStorage) so callers never mistake an unreadable keyring for a
// device without a key.
package keystore
