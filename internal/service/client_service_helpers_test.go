package service

import (
	"testing"

	"github.com/99designs/keyring"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-cadence-keys/internal/crypto"
	"github.com/MKhiriev/go-cadence-keys/internal/keystore"
	"github.com/MKhiriev/go-cadence-keys/internal/logger"
)

const testKeyHex = "00112233445566778899aabbccddeeff00112233445566778899aabbccddeeff"

func strPtr(s string) *string { return &s }

func newMemoryKeyStore() keystore.KeyStore {
	return keystore.NewKeyringStore(keyring.NewArrayKeyring(nil), logger.Nop())
}

func mustParseKey(t *testing.T, hexKey string) crypto.Key {
	t.Helper()
	key, err := crypto.ParseKey(hexKey)
	require.NoError(t, err)
	return key
}

// newTestCodecs returns codecs over a real cipher and an in-memory key store.
func newTestCodecs(keyStore keystore.KeyStore) (*ActivityCodec, *NoteCodec) {
	cipher := crypto.NewCipherEngine()
	provisioner := NewKeyProvisioner(keyStore, logger.Nop())
	return NewActivityCodec(cipher, provisioner, keyStore), NewNoteCodec(cipher, provisioner, keyStore)
}
