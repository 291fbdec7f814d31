package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-cadence-keys/internal/mock"
	"github.com/MKhiriev/go-cadence-keys/internal/store"
)

func TestDevicePrefs_DeviceID(t *testing.T) {
	t.Run("existing id", func(t *testing.T) {
		kv := mock.NewMockLocalKVRepository(gomock.NewController(t))
		kv.EXPECT().Get(gomock.Any(), store.KVDeviceID).Return("device-1", true, nil)

		id, err := NewDevicePrefs(kv).DeviceID(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "device-1", id)
	})

	t.Run("created on first use", func(t *testing.T) {
		kv := mock.NewMockLocalKVRepository(gomock.NewController(t))
		var stored string
		kv.EXPECT().Get(gomock.Any(), store.KVDeviceID).Return("", false, nil)
		kv.EXPECT().Set(gomock.Any(), store.KVDeviceID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _, value string) error {
				stored = value
				return nil
			})

		id, err := NewDevicePrefs(kv).DeviceID(context.Background())
		require.NoError(t, err)
		assert.NotEmpty(t, id)
		assert.Equal(t, stored, id)
	})

	t.Run("read failure", func(t *testing.T) {
		kv := mock.NewMockLocalKVRepository(gomock.NewController(t))
		kv.EXPECT().Get(gomock.Any(), store.KVDeviceID).Return("", false, assert.AnError)

		_, err := NewDevicePrefs(kv).DeviceID(context.Background())
		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestDevicePrefs_LinkPromptFlag(t *testing.T) {
	tests := []struct {
		name  string
		value string
		ok    bool
		want  bool
	}{
		{name: "never set", value: "", ok: false, want: false},
		{name: "set", value: "true", ok: true, want: true},
		{name: "other value", value: "false", ok: true, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv := mock.NewMockLocalKVRepository(gomock.NewController(t))
			kv.EXPECT().Get(gomock.Any(), store.KVHasSeenLinkDialog).Return(tt.value, tt.ok, nil)

			got, err := NewDevicePrefs(kv).HasSeenLinkPrompt(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	kv := mock.NewMockLocalKVRepository(gomock.NewController(t))
	kv.EXPECT().Set(gomock.Any(), store.KVHasSeenLinkDialog, "true").Return(nil)
	assert.NoError(t, NewDevicePrefs(kv).MarkLinkPromptSeen(context.Background()))
}
