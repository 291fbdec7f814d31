package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/cipher_engine_mock.go -package=mock

// CipherEngine encrypts and decrypts a single text field value.
//
// Encrypted values are self-describing: they start with [EnvelopePrefix]
// followed by base64(nonce || ciphertext || tag). Values without the prefix
// are legacy plaintext and pass through Decrypt untouched, which lets
// records written before encryption existed be read by the same code path.
type CipherEngine interface {
	// Encrypt seals plaintext with key. The empty string is returned as is
	// without touching the key. Every call uses a fresh random nonce, so
	// equal plaintexts produce different envelopes.
	Encrypt(plaintext string, key Key) (string, error)

	// Decrypt opens an enveloped value with key. Input without the envelope
	// prefix is returned unchanged. A malformed or unauthenticated envelope
	// (including one sealed under another key) yields an error matching
	// [ErrCipher].
	Decrypt(input string, key Key) (string, error)
}
