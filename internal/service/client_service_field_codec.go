package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-cadence-keys/internal/crypto"
	"github.com/MKhiriev/go-cadence-keys/internal/keystore"
	"github.com/MKhiriev/go-cadence-keys/models"
)

const opDecryptField = "codec.decrypt"

// FieldAccessor reads and replaces the one encryptable field of T. A nil
// pointer means the field has no value.
type FieldAccessor[T any] struct {
	Get func(T) *string
	Set func(T, *string) T
}

// FieldCodec encrypts and decrypts the designated field of records of type T.
// Records are values: the input is never modified and every other field is
// copied as is.
type FieldCodec[T any] struct {
	field       FieldAccessor[T]
	cipher      crypto.CipherEngine
	provisioner KeyProvisioner
	keyStore    keystore.KeyStore
}

// ActivityCodec encrypts Activity.Name.
type ActivityCodec = FieldCodec[models.Activity]

// NoteCodec encrypts Note.Message.
type NoteCodec = FieldCodec[models.Note]

// NewFieldCodec binds a codec to a field accessor.
func NewFieldCodec[T any](field FieldAccessor[T], cipher crypto.CipherEngine, provisioner KeyProvisioner, keyStore keystore.KeyStore) *FieldCodec[T] {
	return &FieldCodec[T]{
		field:       field,
		cipher:      cipher,
		provisioner: provisioner,
		keyStore:    keyStore,
	}
}

// NewActivityCodec returns the codec for activity names.
func NewActivityCodec(cipher crypto.CipherEngine, provisioner KeyProvisioner, keyStore keystore.KeyStore) *ActivityCodec {
	return NewFieldCodec(FieldAccessor[models.Activity]{
		Get: func(a models.Activity) *string { return a.Name },
		Set: func(a models.Activity, v *string) models.Activity { a.Name = v; return a },
	}, cipher, provisioner, keyStore)
}

// NewNoteCodec returns the codec for note messages.
func NewNoteCodec(cipher crypto.CipherEngine, provisioner KeyProvisioner, keyStore keystore.KeyStore) *NoteCodec {
	return NewFieldCodec(FieldAccessor[models.Note]{
		Get: func(n models.Note) *string { return n.Message },
		Set: func(n models.Note, v *string) models.Note { n.Message = v; return n },
	}, cipher, provisioner, keyStore)
}

// EncryptField encrypts the designated field of rec with the device key,
// creating the key if the device has none. Nil and empty values are returned
// without touching the key.
func (c *FieldCodec[T]) EncryptField(ctx context.Context, rec T) (T, error) {
	if value := c.field.Get(rec); value == nil || *value == "" {
		return rec, nil
	}

	key, _, err := c.provisioner.GetOrCreateKey(ctx)
	if err != nil {
		var zero T
		return zero, err
	}
	defer key.Wipe()

	return c.encryptWithKey(rec, key)
}

// DecryptField is the inverse of EncryptField. Plaintext values pass through
// and the key is only loaded when the value carries the envelope.
func (c *FieldCodec[T]) DecryptField(ctx context.Context, rec T) (T, error) {
	value := c.field.Get(rec)
	if value == nil || !crypto.IsEnvelope(*value) {
		return rec, nil
	}

	key, err := c.loadKey(ctx)
	if err != nil {
		var zero T
		return zero, err
	}
	defer key.Wipe()

	return c.decryptWithKey(rec, key)
}

// EncryptFields encrypts every record, failing the whole batch on the first
// error. The key is loaded once for the batch.
func (c *FieldCodec[T]) EncryptFields(ctx context.Context, recs []T) ([]T, error) {
	if !c.anyValue(recs, func(v *string) bool { return *v != "" }) {
		return cloneSlice(recs), nil
	}

	key, _, err := c.provisioner.GetOrCreateKey(ctx)
	if err != nil {
		return nil, err
	}
	defer key.Wipe()

	return c.EncryptFieldsWithKey(recs, key)
}

// DecryptFields decrypts every record, failing the whole batch on the first
// error.
func (c *FieldCodec[T]) DecryptFields(ctx context.Context, recs []T) ([]T, error) {
	if !c.anyValue(recs, func(v *string) bool { return crypto.IsEnvelope(*v) }) {
		return cloneSlice(recs), nil
	}

	key, err := c.loadKey(ctx)
	if err != nil {
		return nil, err
	}
	defer key.Wipe()

	return c.DecryptFieldsWithKey(recs, key)
}

// EncryptFieldsWithKey encrypts with an explicit key. The key is not wiped.
func (c *FieldCodec[T]) EncryptFieldsWithKey(recs []T, key crypto.Key) ([]T, error) {
	out := make([]T, len(recs))
	for i, rec := range recs {
		encoded, err := c.encryptWithKey(rec, key)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		out[i] = encoded
	}
	return out, nil
}

// DecryptFieldsWithKey decrypts with an explicit key. The key is not wiped.
func (c *FieldCodec[T]) DecryptFieldsWithKey(recs []T, key crypto.Key) ([]T, error) {
	out := make([]T, len(recs))
	for i, rec := range recs {
		decoded, err := c.decryptWithKey(rec, key)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		out[i] = decoded
	}
	return out, nil
}

func (c *FieldCodec[T]) encryptWithKey(rec T, key crypto.Key) (T, error) {
	value := c.field.Get(rec)
	if value == nil {
		return rec, nil
	}

	encrypted, err := c.cipher.Encrypt(*value, key)
	if err != nil {
		var zero T
		return zero, err
	}
	return c.field.Set(rec, &encrypted), nil
}

func (c *FieldCodec[T]) decryptWithKey(rec T, key crypto.Key) (T, error) {
	value := c.field.Get(rec)
	if value == nil {
		return rec, nil
	}

	decrypted, err := c.cipher.Decrypt(*value, key)
	if err != nil {
		var zero T
		return zero, err
	}
	return c.field.Set(rec, &decrypted), nil
}

// loadKey reads the key for decryption. Reads never create a key.
func (c *FieldCodec[T]) loadKey(ctx context.Context) (crypto.Key, error) {
	key, _, err := c.keyStore.Get(ctx)
	if errors.Is(err, keystore.ErrKeyNotFound) {
		return nil, crypto.NewError(opDecryptField, crypto.ErrCipher, crypto.ErrKeyUnavailable)
	}
	if err != nil {
		return nil, err
	}
	return key, nil
}

func (c *FieldCodec[T]) anyValue(recs []T, match func(*string) bool) bool {
	for _, rec := range recs {
		if v := c.field.Get(rec); v != nil && match(v) {
			return true
		}
	}
	return false
}

func cloneSlice[T any](recs []T) []T {
	if recs == nil {
		return nil
	}
	out := make([]T, len(recs))
	copy(out, recs)
	return out
}
