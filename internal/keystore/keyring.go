// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package keystore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/99designs/keyring"

	"github.com/MKhiriev/go-cadence-keys/internal/crypto"
	"github.com/MKhiriev/go-cadence-keys/internal/logger"
)

// ItemKey is the name of the keyring item holding the encryption key.
const ItemKey = "cadence_app_encryption_key"

const (
	opHas   = "keystore.has"
	opGet   = "keystore.get"
	opSet   = "keystore.set"
	opClear = "keystore.clear"
)

// storedKey is the JSON document kept in the keyring item.
type storedKey struct {
	Key      string           `json:"key"`
	Source   crypto.KeySource `json:"source"`
	StoredAt time.Time        `json:"stored_at"`
}

type keyringStore struct {
	ring   keyring.Keyring
	logger *logger.Logger
	now    func() time.Time
}

// NewKeyringStore returns a [KeyStore] backed by ring.
func NewKeyringStore(ring keyring.Keyring, logger *logger.Logger) KeyStore {
	return &keyringStore{
		ring:   ring,
		logger: logger,
		now:    time.Now,
	}
}

func (s *keyringStore) Has(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, crypto.NewError(opHas, crypto.ErrStorage, err)
	}

	_, err := s.ring.Get(ItemKey)
	switch {
	case errors.Is(err, keyring.ErrKeyNotFound):
		return false, nil
	case err != nil:
		s.logger.Err(err).Str("op", opHas).Msg("error reading keyring item")
		return false, crypto.NewError(opHas, crypto.ErrStorage, err)
	}

	return true, nil
}

func (s *keyringStore) Get(ctx context.Context) (crypto.Key, crypto.KeySource, error) {
	if err := ctx.Err(); err != nil {
		return nil, "", crypto.NewError(opGet, crypto.ErrStorage, err)
	}

	item, err := s.ring.Get(ItemKey)
	if errors.Is(err, keyring.ErrKeyNotFound) {
		return nil, "", ErrKeyNotFound
	}
	if err != nil {
		s.logger.Err(err).Str("op", opGet).Msg("error reading keyring item")
		return nil, "", crypto.NewError(opGet, crypto.ErrStorage, err)
	}

	key, source, err := decodeItem(item.Data)
	if err != nil {
		s.logger.Error().Str("op", opGet).Msg("keyring item holds an unreadable key")
		return nil, "", crypto.NewError(opGet, crypto.ErrStorage, err)
	}

	return key, source, nil
}

func (s *keyringStore) Set(ctx context.Context, key crypto.Key, source crypto.KeySource) error {
	if err := ctx.Err(); err != nil {
		return crypto.NewError(opSet, crypto.ErrStorage, err)
	}
	if !key.Valid() {
		return crypto.NewError(opSet, crypto.ErrValidation, crypto.ErrKeyLength)
	}

	data, err := json.Marshal(storedKey{
		Key:      key.Hex(),
		Source:   source,
		StoredAt: s.now().UTC(),
	})
	if err != nil {
		return crypto.NewError(opSet, crypto.ErrStorage, err)
	}

	err = s.ring.Set(keyring.Item{
		Key:         ItemKey,
		Data:        data,
		Label:       "Cadence encryption key",
		Description: "Encrypts activity names and notes on this device",
	})
	if err != nil {
		s.logger.Err(err).Str("op", opSet).Msg("error writing keyring item")
		return crypto.NewError(opSet, crypto.ErrStorage, err)
	}

	s.logger.Info().Str("op", opSet).Str("source", string(source)).Msg("encryption key stored")
	return nil
}

func (s *keyringStore) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return crypto.NewError(opClear, crypto.ErrStorage, err)
	}

	err := s.ring.Remove(ItemKey)
	if err != nil && !errors.Is(err, keyring.ErrKeyNotFound) {
		s.logger.Err(err).Str("op", opClear).Msg("error removing keyring item")
		return crypto.NewError(opClear, crypto.ErrStorage, err)
	}

	s.logger.Info().Str("op", opClear).Msg("encryption key cleared")
	return nil
}

// decodeItem accepts both the JSON document and the bare hex payload written
// by older builds, which carried no source tag.
func decodeItem(data []byte) (crypto.Key, crypto.KeySource, error) {
	if key, err := crypto.ParseKey(string(data)); err == nil {
		return key, crypto.KeySourceGenerated, nil
	}

	var stored storedKey
	if err := json.Unmarshal(data, &stored); err != nil {
		return nil, "", errCorruptedItem
	}

	key, err := crypto.ParseKey(stored.Key)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", errCorruptedItem, err)
	}

	source := stored.Source
	if source != crypto.KeySourceImported {
		source = crypto.KeySourceGenerated
	}
	return key, source, nil
}
