// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"errors"
	"fmt"
)

// Error kinds. Every error produced by the encryption subsystem matches
// exactly one of them through errors.Is.
var (
	// ErrStorage reports that secure key storage could not be read or written.
	ErrStorage = errors.New("key storage failure")
	// ErrValidation reports rejected user input.
	ErrValidation = errors.New("validation failed")
	// ErrCipher reports that a value could not be encrypted or decrypted.
	ErrCipher = errors.New("cipher failure")
	// ErrMigration reports that the legacy key migration could not run.
	ErrMigration = errors.New("legacy key migration failed")
)

// Validation details for imported keys and legacy migration input.
var (
	ErrKeyRequired         = errors.New("encryption key is required")
	ErrKeyCharset          = errors.New("encryption key must contain only hexadecimal characters")
	ErrKeyLength           = errors.New("encryption key must be exactly 64 hex characters")
	ErrLegacyEmailRequired = errors.New("legacy email is required")
)

// ErrKeyUnavailable is a cipher failure detail: an encrypted value was read
// on a device that holds no key.
var ErrKeyUnavailable = errors.New("no encryption key on this device")

// ErrNoLegacyKey is a migration failure detail: the device has no legacy key
// to register.
var ErrNoLegacyKey = errors.New("no legacy key found")

// EncryptionError tags a failure with the operation that produced it.
// Err never carries key material or plaintext.
type EncryptionError struct {
	Op  string
	Err error
}

func (e *EncryptionError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *EncryptionError) Unwrap() error {
	return e.Err
}

// NewError builds an *EncryptionError of the given kind. When detail is
// non-nil it is wrapped too, so both errors.Is(err, kind) and
// errors.Is(err, detail) hold.
func NewError(op string, kind, detail error) error {
	err := kind
	if detail != nil {
		err = fmt.Errorf("%w: %w", kind, detail)
	}
	return &EncryptionError{Op: op, Err: err}
}

// Op returns the operation tag of err, or "" when err is not an
// *EncryptionError.
func Op(err error) string {
	var encErr *EncryptionError
	if errors.As(err, &encErr) {
		return encErr.Op
	}
	return ""
}
