// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"encoding/hex"
	"io"
	"regexp"
	"strings"

	"github.com/awnumar/memguard"
)

// KeySize is the length of a key in bytes (AES-256).
const KeySize = 32

// KeyHexLength is the length of the external hex form of a key.
const KeyHexLength = KeySize * 2

// KeySource records how a key arrived on the device. It is informational
// and never changes cipher behaviour.
type KeySource string

const (
	KeySourceGenerated KeySource = "generated-locally"
	KeySourceImported  KeySource = "imported"
)

var hexCharset = regexp.MustCompile(`^[0-9a-f]+$`)

// Key is the per-user symmetric key. Its String method is redacted so a key
// formatted by accident never reaches a log line; use Hex for the external
// form.
type Key []byte

// GenerateKey reads KeySize bytes from the OS CSPRNG.
func GenerateKey() (Key, error) {
	key := make(Key, KeySize)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return nil, err
	}
	return key, nil
}

// ParseKey validates and decodes the external hex form of a key.
//
// The candidate is trimmed and lowercased first. Checks run in order and the
// first failure wins: empty input fails with [ErrKeyRequired], characters
// outside [0-9a-f] with [ErrKeyCharset], a length other than [KeyHexLength]
// with [ErrKeyLength]. Returned errors never echo the candidate.
func ParseKey(candidate string) (Key, error) {
	normalized := strings.ToLower(strings.TrimSpace(candidate))

	switch {
	case normalized == "":
		return nil, ErrKeyRequired
	case !hexCharset.MatchString(normalized):
		return nil, ErrKeyCharset
	case len(normalized) != KeyHexLength:
		return nil, ErrKeyLength
	}

	key, err := hex.DecodeString(normalized)
	if err != nil {
		// unreachable after the charset and length checks
		return nil, ErrKeyCharset
	}
	return key, nil
}

// Hex returns the 64-char lowercase hex form of the key.
func (k Key) Hex() string {
	return hex.EncodeToString(k)
}

// Valid reports whether the key has the expected size.
func (k Key) Valid() bool {
	return len(k) == KeySize
}

// Clone returns an independent copy of the key.
func (k Key) Clone() Key {
	if k == nil {
		return nil
	}
	c := make(Key, len(k))
	copy(c, k)
	return c
}

// Wipe zeroes the key bytes in place.
func (k Key) Wipe() {
	memguard.WipeBytes(k)
}

func (k Key) String() string {
	return "[REDACTED]"
}

// GoString keeps %#v redacted as well.
func (k Key) GoString() string {
	return k.String()
}
