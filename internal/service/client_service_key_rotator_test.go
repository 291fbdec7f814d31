package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-cadence-keys/internal/crypto"
	"github.com/MKhiriev/go-cadence-keys/internal/keystore"
	"github.com/MKhiriev/go-cadence-keys/internal/logger"
	"github.com/MKhiriev/go-cadence-keys/internal/mock"
	"github.com/MKhiriev/go-cadence-keys/models"
)

type rotationFixture struct {
	keyStore      keystore.KeyStore
	backend       *mock.MockBackendAdapter
	cache         *mock.MockLocalCacheRepository
	rotator       KeyRotator
	activityCodec *ActivityCodec
	noteCodec     *NoteCodec
	activities    []models.Activity
	notes         []models.Note
}

func newRotationFixture(t *testing.T) rotationFixture {
	t.Helper()
	ctx := context.Background()
	ctrl := gomock.NewController(t)

	keyStore := newMemoryKeyStore()
	require.NoError(t, keyStore.Set(ctx, mustParseKey(t, testKeyHex), crypto.KeySourceImported))
	activityCodec, noteCodec := newTestCodecs(keyStore)

	activities, err := activityCodec.EncryptFields(ctx, []models.Activity{
		{ID: "a1", Name: strPtr("Running")},
		{ID: "a2", Name: strPtr("legacy plain")},
	})
	require.NoError(t, err)
	// a legacy plaintext row stays readable and gets encrypted by rotation
	activities[1].Name = strPtr("legacy plain")

	notes, err := noteCodec.EncryptFields(ctx, []models.Note{{ID: "n1", Message: strPtr("felt great")}, {ID: "n2"}})
	require.NoError(t, err)

	backend := mock.NewMockBackendAdapter(ctrl)
	cache := mock.NewMockLocalCacheRepository(ctrl)

	return rotationFixture{
		keyStore:      keyStore,
		backend:       backend,
		cache:         cache,
		rotator:       NewKeyRotator(keyStore, backend, cache, activityCodec, noteCodec, logger.Nop()),
		activityCodec: activityCodec,
		noteCodec:     noteCodec,
		activities:    activities,
		notes:         notes,
	}
}

func TestKeyRotator_Rotate(t *testing.T) {
	ctx := context.Background()
	f := newRotationFixture(t)

	var pushedActivities []models.Activity
	var pushedNotes []models.Note

	f.backend.EXPECT().ListActivities(gomock.Any()).Return(f.activities, nil)
	f.backend.EXPECT().ListNotes(gomock.Any()).Return(f.notes, nil)
	f.backend.EXPECT().UpdateActivities(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, a []models.Activity) error {
			pushedActivities = a
			return nil
		})
	f.backend.EXPECT().UpdateNotes(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, n []models.Note) error {
			pushedNotes = n
			return nil
		})
	f.cache.EXPECT().ReplaceActivities(gomock.Any(), int64(5), gomock.Any()).Return(nil)
	f.cache.EXPECT().ReplaceNotes(gomock.Any(), int64(5), gomock.Any()).Return(assert.AnError)

	result, err := f.rotator.Rotate(ctx, 5)
	require.NoError(t, err)

	assert.Equal(t, crypto.Fingerprint(mustParseKey(t, testKeyHex)), result.OldFingerprint)
	assert.NotEqual(t, result.OldFingerprint, result.NewFingerprint)
	assert.Equal(t, 2, result.Activities)
	assert.Equal(t, 2, result.Notes)

	newKey, source, err := f.keyStore.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, crypto.KeySourceGenerated, source)
	assert.Equal(t, result.NewFingerprint, crypto.Fingerprint(newKey))

	require.Len(t, pushedActivities, 2)
	for _, a := range pushedActivities {
		assert.True(t, crypto.IsEnvelope(*a.Name))
	}
	assert.Nil(t, pushedNotes[1].Message)

	plainActivities, err := f.activityCodec.DecryptFields(ctx, pushedActivities)
	require.NoError(t, err)
	assert.Equal(t, "Running", *plainActivities[0].Name)
	assert.Equal(t, "legacy plain", *plainActivities[1].Name)

	plainNotes, err := f.noteCodec.DecryptFields(ctx, pushedNotes)
	require.NoError(t, err)
	assert.Equal(t, "felt great", *plainNotes[0].Message)
}

func TestKeyRotator_NotesPushFailureRestoresActivities(t *testing.T) {
	ctx := context.Background()
	f := newRotationFixture(t)

	f.backend.EXPECT().ListActivities(gomock.Any()).Return(f.activities, nil)
	f.backend.EXPECT().ListNotes(gomock.Any()).Return(f.notes, nil)
	gomock.InOrder(
		f.backend.EXPECT().UpdateActivities(gomock.Any(), gomock.Any()).Return(nil),
		f.backend.EXPECT().UpdateActivities(gomock.Any(), f.activities).Return(nil),
	)
	f.backend.EXPECT().UpdateNotes(gomock.Any(), gomock.Any()).Return(assert.AnError)

	_, err := f.rotator.Rotate(ctx, 5)
	assert.ErrorIs(t, err, ErrRotationAborted)
	assert.ErrorIs(t, err, assert.AnError)

	key, _, err := f.keyStore.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, testKeyHex, key.Hex(), "stored key must not change")
}

func TestKeyRotator_ActivitiesPushFailure(t *testing.T) {
	ctx := context.Background()
	f := newRotationFixture(t)

	f.backend.EXPECT().ListActivities(gomock.Any()).Return(f.activities, nil)
	f.backend.EXPECT().ListNotes(gomock.Any()).Return(f.notes, nil)
	f.backend.EXPECT().UpdateActivities(gomock.Any(), gomock.Any()).Return(assert.AnError)

	_, err := f.rotator.Rotate(ctx, 5)
	assert.ErrorIs(t, err, ErrRotationAborted)

	key, _, err := f.keyStore.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, testKeyHex, key.Hex())
}

func TestKeyRotator_UndecryptableDataAbortsBeforePush(t *testing.T) {
	f := newRotationFixture(t)
	broken := append([]models.Activity{}, f.activities...)
	broken[0].Name = strPtr(crypto.EnvelopePrefix + "AAAA")

	f.backend.EXPECT().ListActivities(gomock.Any()).Return(broken, nil)
	f.backend.EXPECT().ListNotes(gomock.Any()).Return(f.notes, nil)

	_, err := f.rotator.Rotate(context.Background(), 5)
	assert.ErrorIs(t, err, crypto.ErrCipher)
}

func TestKeyRotator_NoKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	keyStore := newMemoryKeyStore()
	activityCodec, noteCodec := newTestCodecs(keyStore)

	rotator := NewKeyRotator(keyStore, mock.NewMockBackendAdapter(ctrl), nil, activityCodec, noteCodec, logger.Nop())

	_, err := rotator.Rotate(context.Background(), 5)
	assert.ErrorIs(t, err, keystore.ErrKeyNotFound)
}

func TestKeyRotator_EmptyAccountSkipsPush(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	keyStore := newMemoryKeyStore()
	require.NoError(t, keyStore.Set(ctx, mustParseKey(t, testKeyHex), crypto.KeySourceImported))
	activityCodec, noteCodec := newTestCodecs(keyStore)

	backend := mock.NewMockBackendAdapter(ctrl)
	backend.EXPECT().ListActivities(gomock.Any()).Return(nil, nil)
	backend.EXPECT().ListNotes(gomock.Any()).Return(nil, nil)

	result, err := NewKeyRotator(keyStore, backend, nil, activityCodec, noteCodec, logger.Nop()).Rotate(ctx, 5)
	require.NoError(t, err)
	assert.Zero(t, result.Activities)
	assert.Zero(t, result.Notes)
}
