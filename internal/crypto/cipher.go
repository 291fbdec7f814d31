// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"
)

// EnvelopePrefix marks an encrypted field value.
const EnvelopePrefix = "enc:"

const (
	opEncrypt = "cipher.encrypt"
	opDecrypt = "cipher.decrypt"
)

var (
	errCiphertextTooShort = errors.New("ciphertext too short")
	errInvalidKeySize     = fmt.Errorf("key must be %d bytes", KeySize)
	errMalformedEnvelope  = errors.New("malformed envelope")
	errAuthentication     = errors.New("message authentication failed")
)

// IsEnvelope reports whether value carries the encryption marker.
func IsEnvelope(value string) bool {
	return strings.HasPrefix(value, EnvelopePrefix)
}

// aesGCMEngine is the AES-256-GCM implementation of [CipherEngine].
type aesGCMEngine struct {
	random io.Reader
}

// NewCipherEngine returns the AES-256-GCM [CipherEngine].
func NewCipherEngine() CipherEngine {
	return &aesGCMEngine{random: rand.Reader}
}

func (e *aesGCMEngine) Encrypt(plaintext string, key Key) (string, error) {
	if plaintext == "" {
		return "", nil
	}

	gcm, err := newGCM(key)
	if err != nil {
		return "", NewError(opEncrypt, ErrCipher, err)
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(e.random, nonce); err != nil {
		return "", NewError(opEncrypt, ErrCipher, fmt.Errorf("read nonce: %w", err))
	}

	// nonce || ciphertext || tag
	sealed := gcm.Seal(nonce, nonce, []byte(plaintext), nil)

	return EnvelopePrefix + base64.StdEncoding.EncodeToString(sealed), nil
}

func (e *aesGCMEngine) Decrypt(input string, key Key) (string, error) {
	if !IsEnvelope(input) {
		return input, nil
	}

	gcm, err := newGCM(key)
	if err != nil {
		return "", NewError(opDecrypt, ErrCipher, err)
	}

	data, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(input, EnvelopePrefix))
	if err != nil {
		return "", NewError(opDecrypt, ErrCipher, errMalformedEnvelope)
	}

	nonceSize := gcm.NonceSize()
	if len(data) < nonceSize+gcm.Overhead() {
		return "", NewError(opDecrypt, ErrCipher, errCiphertextTooShort)
	}

	nonce, ciphertext := data[:nonceSize], data[nonceSize:]
	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", NewError(opDecrypt, ErrCipher, errAuthentication)
	}

	return string(plaintext), nil
}

func newGCM(key Key) (cipher.AEAD, error) {
	if !key.Valid() {
		return nil, errInvalidKeySize
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	return cipher.NewGCM(block)
}
