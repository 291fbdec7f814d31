package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-cadence-keys/internal/adapter"
	"github.com/MKhiriev/go-cadence-keys/internal/app"
	"github.com/MKhiriev/go-cadence-keys/internal/mock"
	"github.com/MKhiriev/go-cadence-keys/internal/store"
	"github.com/MKhiriev/go-cadence-keys/models"
)

func TestCacheRefresher_Refresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mock.NewMockBackendAdapter(ctrl)
	cache := mock.NewMockLocalCacheRepository(ctrl)

	activities := []models.Activity{{ID: "a1", Name: strPtr("enc:AAAA")}}
	notes := []models.Note{{ID: "n1"}}

	gomock.InOrder(
		backend.EXPECT().ListActivities(gomock.Any()).Return(activities, nil),
		cache.EXPECT().ReplaceActivities(gomock.Any(), int64(9), activities).Return(nil),
		backend.EXPECT().ListNotes(gomock.Any()).Return(notes, nil),
		cache.EXPECT().ReplaceNotes(gomock.Any(), int64(9), notes).Return(nil),
	)

	require.NoError(t, NewCacheRefresher(backend, cache).Refresh(context.Background(), 9))
}

func TestCacheRefresher_Refresh_Errors(t *testing.T) {
	t.Run("backend", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		backend := mock.NewMockBackendAdapter(ctrl)
		backend.EXPECT().ListActivities(gomock.Any()).Return(nil, adapter.ErrBadGateway)

		err := NewCacheRefresher(backend, mock.NewMockLocalCacheRepository(ctrl)).Refresh(context.Background(), 9)
		assert.ErrorIs(t, err, adapter.ErrBadGateway)
	})

	t.Run("cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		backend := mock.NewMockBackendAdapter(ctrl)
		cache := mock.NewMockLocalCacheRepository(ctrl)
		backend.EXPECT().ListActivities(gomock.Any()).Return(nil, nil)
		cache.EXPECT().ReplaceActivities(gomock.Any(), int64(9), gomock.Nil()).Return(assert.AnError)

		err := NewCacheRefresher(backend, cache).Refresh(context.Background(), 9)
		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestBackendProber(t *testing.T) {
	tests := []struct {
		name  string
		probe models.EncryptedDataProbe
		want  bool
	}{
		{name: "nothing", want: false},
		{name: "activities", probe: models.EncryptedDataProbe{Activities: true}, want: true},
		{name: "notes", probe: models.EncryptedDataProbe{Notes: true}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := mock.NewMockBackendAdapter(gomock.NewController(t))
			backend.EXPECT().ProbeEncryptedData(gomock.Any()).Return(tt.probe, nil)

			got, err := NewBackendProber(backend).HasEncryptedRecords(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCacheRecordChecker(t *testing.T) {
	cache := mock.NewMockLocalCacheRepository(gomock.NewController(t))
	cache.EXPECT().HasRecords(gomock.Any(), int64(2)).Return(true, nil)

	got, err := NewCacheRecordChecker(cache).HasCachedRecords(context.Background(), 2)
	require.NoError(t, err)
	assert.True(t, got)
}

func TestMapAdapterError(t *testing.T) {
	tests := []struct {
		name string
		in   error
		want error
	}{
		{name: "nil", in: nil, want: nil},
		{name: "nothing to update", in: fmt.Errorf("%w: %s", adapter.ErrBadRequest, app.MsgNothingToUpdate), want: ErrNothingToUpdate},
		{name: "missing id", in: fmt.Errorf("%w: %s", adapter.ErrBadRequest, app.MsgMissingRecordID), want: ErrMissingRecordID},
		{name: "invalid legacy key", in: fmt.Errorf("%w: %s", adapter.ErrBadRequest, app.MsgInvalidLegacyKey), want: ErrInvalidLegacyKey},
		{name: "invalid data", in: fmt.Errorf("%w: %s", adapter.ErrBadRequest, app.MsgInvalidDataProvided), want: ErrInvalidDataProvided},
		{name: "unauthorized", in: fmt.Errorf("%w: whatever", adapter.ErrUnauthorized), want: ErrTokenIsExpiredOrInvalid},
		{name: "activity not found", in: fmt.Errorf("%w: %s", adapter.ErrNotFound, app.MsgActivityNotFound), want: store.ErrActivityNotFound},
		{name: "note not found", in: fmt.Errorf("%w: %s", adapter.ErrNotFound, app.MsgNoteNotFound), want: store.ErrNoteNotFound},
		{name: "record exists", in: fmt.Errorf("%w: %s", adapter.ErrConflict, app.MsgRecordAlreadyExists), want: store.ErrAlreadyExists},
		{name: "legacy exists", in: fmt.Errorf("%w: %s", adapter.ErrConflict, app.MsgLegacyKeyExists), want: store.ErrLegacyKeyExists},
		{name: "unknown bad request body", in: fmt.Errorf("%w: odd", adapter.ErrBadRequest), want: adapter.ErrBadRequest},
		{name: "unmapped status", in: adapter.ErrBadGateway, want: adapter.ErrBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapAdapterError(tt.in)
			if tt.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.want)
		})
	}
}
