package service

import (
	"context"
	"errors"
	"strings"
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

type linkMocks struct {
	keyStore *mock.MockKeyStore
	local    *mock.MockLocalRecordChecker
	remote   *mock.MockEncryptedRecordProber
	prefs    *mock.MockDevicePrefs
}

func newLinkManager(t *testing.T) (DeviceLinkManager, linkMocks) {
	ctrl := gomock.NewController(t)
	m := linkMocks{
		keyStore: mock.NewMockKeyStore(ctrl),
		local:    mock.NewMockLocalRecordChecker(ctrl),
		remote:   mock.NewMockEncryptedRecordProber(ctrl),
		prefs:    mock.NewMockDevicePrefs(ctrl),
	}
	return NewDeviceLinkManager(m.keyStore, m.local, m.remote, m.prefs, logger.Nop()), m
}

// countingPrompter records every prompt it is asked to show.
type countingPrompter struct {
	shown []models.Detection
	err   error
}

func (p *countingPrompter) PromptLink(_ context.Context, d models.Detection) error {
	p.shown = append(p.shown, d)
	return p.err
}

func TestDeviceLink_ExportImportAcrossDevices(t *testing.T) {
	ctx := context.Background()

	deviceA := newMemoryKeyStore()
	activityCodecA, _ := newTestCodecs(deviceA)
	encoded, err := activityCodecA.EncryptField(ctx, models.Activity{ID: "a1", Name: strPtr("Piano")})
	require.NoError(t, err)

	exported, err := NewDeviceLinkManager(deviceA, nil, nil, nil, logger.Nop()).ExportKey(ctx)
	require.NoError(t, err)
	assert.Len(t, exported.Key, crypto.KeyHexLength)
	assert.Equal(t, crypto.KeySourceGenerated, exported.Source)

	deviceB := newMemoryKeyStore()
	fingerprint, err := NewDeviceLinkManager(deviceB, nil, nil, nil, logger.Nop()).ImportKey(ctx, exported.Key)
	require.NoError(t, err)
	assert.Equal(t, exported.Fingerprint, fingerprint)

	activityCodecB, _ := newTestCodecs(deviceB)
	decoded, err := activityCodecB.DecryptField(ctx, encoded)
	require.NoError(t, err)
	assert.Equal(t, "Piano", *decoded.Name)

	_, source, err := deviceB.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, crypto.KeySourceImported, source)
}

func TestDeviceLink_ExportKey_NoKey(t *testing.T) {
	_, err := NewDeviceLinkManager(newMemoryKeyStore(), nil, nil, nil, logger.Nop()).ExportKey(context.Background())
	assert.ErrorIs(t, err, keystore.ErrKeyNotFound)
}

func TestDeviceLink_ImportKey_Validation(t *testing.T) {
	tests := []struct {
		name      string
		candidate string
		wantErr   error
	}{
		{name: "empty", candidate: "", wantErr: crypto.ErrKeyRequired},
		{name: "whitespace only", candidate: "  \t\n", wantErr: crypto.ErrKeyRequired},
		{name: "non hex", candidate: strings.Repeat("z", 64), wantErr: crypto.ErrKeyCharset},
		{name: "inner space", candidate: testKeyHex[:32] + " " + testKeyHex[32:], wantErr: crypto.ErrKeyCharset},
		{name: "too short", candidate: testKeyHex[:62], wantErr: crypto.ErrKeyLength},
		{name: "too long", candidate: testKeyHex + "00", wantErr: crypto.ErrKeyLength},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newLinkManager(t)

			fingerprint, err := m.ImportKey(context.Background(), tt.candidate)
			assert.Empty(t, fingerprint)
			assert.ErrorIs(t, err, crypto.ErrValidation)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, opImport, crypto.Op(err))

			_, parseErr := crypto.ParseKey(tt.candidate)
			assert.ErrorIs(t, err, parseErr, "import must reject exactly what ParseKey rejects")
		})
	}
}

func TestDeviceLink_ImportKey_NormalizesInput(t *testing.T) {
	ctx := context.Background()
	keyStore := newMemoryKeyStore()
	m := NewDeviceLinkManager(keyStore, nil, nil, nil, logger.Nop())

	fingerprint, err := m.ImportKey(ctx, "  "+strings.ToUpper(testKeyHex)+"\n")
	require.NoError(t, err)
	assert.Equal(t, crypto.Fingerprint(mustParseKey(t, testKeyHex)), fingerprint)

	key, _, err := keyStore.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, testKeyHex, key.Hex())
}

func TestDeviceLink_ImportKey_ReplacesKeyAndMarksPromptSeen(t *testing.T) {
	m, mocks := newLinkManager(t)

	mocks.keyStore.EXPECT().Set(gomock.Any(), gomock.Any(), crypto.KeySourceImported).
		DoAndReturn(func(_ context.Context, key crypto.Key, _ crypto.KeySource) error {
			assert.Equal(t, testKeyHex, key.Hex())
			return nil
		})
	mocks.prefs.EXPECT().MarkLinkPromptSeen(gomock.Any()).Return(errors.New("disk full"))

	_, err := m.ImportKey(context.Background(), testKeyHex)
	assert.NoError(t, err, "a failed prompt flag write must not fail the import")
}

func TestDeviceLink_ImportKey_StoreFailure(t *testing.T) {
	m, mocks := newLinkManager(t)
	mocks.keyStore.EXPECT().Set(gomock.Any(), gomock.Any(), crypto.KeySourceImported).
		Return(crypto.NewError("keystore.set", crypto.ErrStorage, nil))

	_, err := m.ImportKey(context.Background(), testKeyHex)
	assert.ErrorIs(t, err, crypto.ErrStorage)
}

func TestDeviceLink_ClearKey(t *testing.T) {
	ctx := context.Background()
	keyStore := newMemoryKeyStore()
	require.NoError(t, keyStore.Set(ctx, mustParseKey(t, testKeyHex), crypto.KeySourceImported))
	m := NewDeviceLinkManager(keyStore, nil, nil, nil, logger.Nop())

	require.NoError(t, m.ClearKey(ctx))
	require.NoError(t, m.ClearKey(ctx), "clearing twice is not an error")

	has, err := keyStore.Has(ctx)
	require.NoError(t, err)
	assert.False(t, has)
}

func TestDeviceLink_Status(t *testing.T) {
	t.Run("with key", func(t *testing.T) {
		m, mocks := newLinkManager(t)
		mocks.keyStore.EXPECT().Get(gomock.Any()).Return(mustParseKey(t, testKeyHex), crypto.KeySourceImported, nil)
		mocks.prefs.EXPECT().DeviceID(gomock.Any()).Return("device-1", nil)

		status, err := m.Status(context.Background())
		require.NoError(t, err)
		assert.Equal(t, models.KeyStatus{
			HasKey:      true,
			Fingerprint: crypto.Fingerprint(mustParseKey(t, testKeyHex)),
			Source:      crypto.KeySourceImported,
			DeviceID:    "device-1",
		}, status)
	})

	t.Run("without key", func(t *testing.T) {
		m, mocks := newLinkManager(t)
		mocks.keyStore.EXPECT().Get(gomock.Any()).Return(nil, crypto.KeySource(""), keystore.ErrKeyNotFound)
		mocks.prefs.EXPECT().DeviceID(gomock.Any()).Return("", errors.New("kv closed"))

		status, err := m.Status(context.Background())
		require.NoError(t, err)
		assert.Equal(t, models.KeyStatus{}, status)
	})

	t.Run("storage failure", func(t *testing.T) {
		m, mocks := newLinkManager(t)
		mocks.keyStore.EXPECT().Get(gomock.Any()).Return(nil, crypto.KeySource(""), crypto.NewError("keystore.get", crypto.ErrStorage, nil))

		_, err := m.Status(context.Background())
		assert.ErrorIs(t, err, crypto.ErrStorage)
	})
}

func TestDeviceLink_DetectNewDevice(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(m linkMocks)
		want    models.Detection
		wantErr bool
	}{
		{
			name: "key present",
			setup: func(m linkMocks) {
				m.keyStore.EXPECT().Has(gomock.Any()).Return(true, nil)
			},
			want: models.Detection{Reason: models.ReasonHasKey},
		},
		{
			name: "cached records without key",
			setup: func(m linkMocks) {
				m.keyStore.EXPECT().Has(gomock.Any()).Return(false, nil)
				m.local.EXPECT().HasCachedRecords(gomock.Any(), int64(7)).Return(true, nil)
			},
			want: models.Detection{NewDevice: true, Reason: models.ReasonLocalRecords},
		},
		{
			name: "encrypted records on backend",
			setup: func(m linkMocks) {
				m.keyStore.EXPECT().Has(gomock.Any()).Return(false, nil)
				m.local.EXPECT().HasCachedRecords(gomock.Any(), int64(7)).Return(false, nil)
				m.remote.EXPECT().HasEncryptedRecords(gomock.Any()).Return(true, nil)
			},
			want: models.Detection{NewDevice: true, Reason: models.ReasonRemoteEnvelope},
		},
		{
			name: "local check failure falls back to backend",
			setup: func(m linkMocks) {
				m.keyStore.EXPECT().Has(gomock.Any()).Return(false, nil)
				m.local.EXPECT().HasCachedRecords(gomock.Any(), int64(7)).Return(false, errors.New("sqlite busy"))
				m.remote.EXPECT().HasEncryptedRecords(gomock.Any()).Return(true, nil)
			},
			want: models.Detection{NewDevice: true, Reason: models.ReasonRemoteEnvelope},
		},
		{
			name: "fresh account",
			setup: func(m linkMocks) {
				m.keyStore.EXPECT().Has(gomock.Any()).Return(false, nil)
				m.local.EXPECT().HasCachedRecords(gomock.Any(), int64(7)).Return(false, nil)
				m.remote.EXPECT().HasEncryptedRecords(gomock.Any()).Return(false, nil)
			},
			want: models.Detection{Reason: models.ReasonNoData},
		},
		{
			name: "backend probe failure",
			setup: func(m linkMocks) {
				m.keyStore.EXPECT().Has(gomock.Any()).Return(false, nil)
				m.local.EXPECT().HasCachedRecords(gomock.Any(), int64(7)).Return(false, nil)
				m.remote.EXPECT().HasEncryptedRecords(gomock.Any()).Return(false, errors.New("offline"))
			},
			wantErr: true,
		},
		{
			name: "key store failure",
			setup: func(m linkMocks) {
				m.keyStore.EXPECT().Has(gomock.Any()).Return(false, crypto.NewError("keystore.has", crypto.ErrStorage, nil))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, mocks := newLinkManager(t)
			tt.setup(mocks)

			got, err := m.DetectNewDevice(context.Background(), 7)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDeviceLink_DetectNewDevice_WithoutHeuristics(t *testing.T) {
	got, err := NewDeviceLinkManager(newMemoryKeyStore(), nil, nil, nil, logger.Nop()).
		DetectNewDevice(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, models.Detection{Reason: models.ReasonNoData}, got)
}

func TestDeviceLink_CheckAndPrompt_OncePerCycle(t *testing.T) {
	ctx := context.Background()
	m, mocks := newLinkManager(t)
	prompter := &countingPrompter{}

	mocks.prefs.EXPECT().HasSeenLinkPrompt(gomock.Any()).Return(false, nil).Times(2)
	mocks.keyStore.EXPECT().Has(gomock.Any()).Return(false, nil).Times(2)
	mocks.local.EXPECT().HasCachedRecords(gomock.Any(), int64(1)).Return(true, nil).Times(2)

	shown, err := m.CheckAndPrompt(ctx, 1, prompter)
	require.NoError(t, err)
	assert.True(t, shown)

	shown, err = m.CheckAndPrompt(ctx, 1, prompter)
	require.NoError(t, err)
	assert.False(t, shown, "second check in the same cycle must not prompt")

	m.BeginCycle()
	shown, err = m.CheckAndPrompt(ctx, 1, prompter)
	require.NoError(t, err)
	assert.True(t, shown)

	assert.Len(t, prompter.shown, 2)
	assert.Equal(t, models.ReasonLocalRecords, prompter.shown[0].Reason)
}

func TestDeviceLink_CheckAndPrompt_Dismissed(t *testing.T) {
	m, mocks := newLinkManager(t)
	prompter := &countingPrompter{}

	mocks.prefs.EXPECT().HasSeenLinkPrompt(gomock.Any()).Return(true, nil)

	shown, err := m.CheckAndPrompt(context.Background(), 1, prompter)
	require.NoError(t, err)
	assert.False(t, shown)
	assert.Empty(t, prompter.shown)
}

func TestDeviceLink_CheckAndPrompt_NotNewDevice(t *testing.T) {
	m, mocks := newLinkManager(t)
	prompter := &countingPrompter{}

	mocks.prefs.EXPECT().HasSeenLinkPrompt(gomock.Any()).Return(false, nil)
	mocks.keyStore.EXPECT().Has(gomock.Any()).Return(true, nil)

	shown, err := m.CheckAndPrompt(context.Background(), 1, prompter)
	require.NoError(t, err)
	assert.False(t, shown)
	assert.Empty(t, prompter.shown)
}

func TestDeviceLink_CheckAndPrompt_PrompterError(t *testing.T) {
	m, mocks := newLinkManager(t)
	prompter := &countingPrompter{err: errors.New("window closed")}

	mocks.prefs.EXPECT().HasSeenLinkPrompt(gomock.Any()).Return(false, nil)
	mocks.keyStore.EXPECT().Has(gomock.Any()).Return(false, nil)
	mocks.local.EXPECT().HasCachedRecords(gomock.Any(), int64(1)).Return(false, nil)
	mocks.remote.EXPECT().HasEncryptedRecords(gomock.Any()).Return(true, nil)

	shown, err := m.CheckAndPrompt(context.Background(), 1, prompter)
	assert.True(t, shown)
	assert.EqualError(t, err, "window closed")
}

func TestDeviceLink_Dismiss(t *testing.T) {
	m, mocks := newLinkManager(t)
	mocks.prefs.EXPECT().MarkLinkPromptSeen(gomock.Any()).Return(nil)
	require.NoError(t, m.Dismiss(context.Background()))

	m, mocks = newLinkManager(t)
	mocks.prefs.EXPECT().MarkLinkPromptSeen(gomock.Any()).Return(assert.AnError)
	assert.ErrorIs(t, m.Dismiss(context.Background()), assert.AnError)
}
