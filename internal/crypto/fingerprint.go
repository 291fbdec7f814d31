package crypto

import (
	"crypto/sha256"
	"encoding/hex"
	"io"

	"golang.org/x/crypto/hkdf"
)

// FingerprintSize is the number of derived bytes shown to users (16 hex chars).
const FingerprintSize = 8

var fingerprintInfo = []byte("cadence key fingerprint v1")

// Fingerprint derives a short, non-reversible identifier of key that users
// compare across devices. Equal keys always give equal fingerprints.
func Fingerprint(key Key) string {
	reader := hkdf.New(sha256.New, key, nil, fingerprintInfo)

	out := make([]byte, FingerprintSize)
	if _, err := io.ReadFull(reader, out); err != nil {
		// hkdf only fails past 255*HashLen bytes of output
		panic("fingerprint: " + err.Error())
	}
	return hex.EncodeToString(out)
}
