package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-cadence-keys/internal/config"
	"github.com/MKhiriev/go-cadence-keys/internal/logger"
	"github.com/MKhiriev/go-cadence-keys/internal/mock"
	"github.com/MKhiriev/go-cadence-keys/internal/store"
	"github.com/MKhiriev/go-cadence-keys/internal/validators"
	"github.com/MKhiriev/go-cadence-keys/models"
)

func TestAuthService_CreateAndParseToken(t *testing.T) {
	ctx := context.Background()
	auth := NewAuthService(config.App{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "cadence-keys",
		TokenDuration: time.Hour,
	}, logger.Nop())

	token, err := auth.CreateToken(ctx, 77)
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := auth.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(77), parsed.UserID)

	_, err = auth.CreateToken(ctx, 0)
	assert.ErrorIs(t, err, ErrNoUserID)
}

func TestAuthService_ParseToken_Rejects(t *testing.T) {
	ctx := context.Background()
	issuer := NewAuthService(config.App{TokenSignKey: "key-a", TokenIssuer: "cadence-keys", TokenDuration: time.Hour}, logger.Nop())
	verifier := NewAuthService(config.App{TokenSignKey: "key-b", TokenIssuer: "cadence-keys", TokenDuration: time.Hour}, logger.Nop())
	expired := NewAuthService(config.App{TokenSignKey: "key-a", TokenIssuer: "cadence-keys", TokenDuration: -time.Minute}, logger.Nop())

	token, err := issuer.CreateToken(ctx, 1)
	require.NoError(t, err)
	_, err = verifier.ParseToken(ctx, token.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)

	old, err := expired.CreateToken(ctx, 1)
	require.NoError(t, err)
	_, err = issuer.ParseToken(ctx, old.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)

	_, err = issuer.ParseToken(ctx, "not-a-token")
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestActivityService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockActivityRepository(ctrl)
	svc := NewActivityService(repo, validators.NewRecordValidator(), logger.Nop())

	in := models.Activity{ID: "a1", UserID: 1, Name: strPtr("enc:AAAA")}
	want := in
	want.Status = models.ActivityEnabled
	repo.EXPECT().CreateActivity(gomock.Any(), want).Return(want, nil)

	got, err := svc.Create(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestActivityService_Create_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		in      models.Activity
		wantErr error
	}{
		{name: "missing id", in: models.Activity{UserID: 1}, wantErr: ErrMissingRecordID},
		{name: "missing user", in: models.Activity{ID: "a1"}, wantErr: ErrNoUserID},
		{name: "bad status", in: models.Activity{ID: "a1", UserID: 1, Status: "ARCHIVED"}, wantErr: ErrInvalidDataProvided},
		{name: "negative weight", in: models.Activity{ID: "a1", UserID: 1, Weight: -1}, wantErr: ErrInvalidDataProvided},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mock.NewMockActivityRepository(gomock.NewController(t))
			svc := NewActivityService(repo, validators.NewRecordValidator(), logger.Nop())

			_, err := svc.Create(context.Background(), tt.in)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestActivityService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockActivityRepository(ctrl)
	svc := NewActivityService(repo, validators.NewRecordValidator(), logger.Nop())

	in := []models.Activity{
		{ID: "a1", UserID: 999, Status: models.ActivityEnabled},
		{ID: "a2", Status: models.ActivityDisabled},
	}
	repo.EXPECT().UpdateActivities(gomock.Any(), int64(5), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, scoped []models.Activity) error {
			for _, a := range scoped {
				assert.Equal(t, int64(5), a.UserID, "records are scoped to the caller")
			}
			return nil
		})

	require.NoError(t, svc.Update(context.Background(), 5, in))
	assert.Equal(t, int64(999), in[0].UserID, "input must not be modified")
}

func TestActivityService_Update_Errors(t *testing.T) {
	ctx := context.Background()
	repo := mock.NewMockActivityRepository(gomock.NewController(t))
	svc := NewActivityService(repo, validators.NewRecordValidator(), logger.Nop())

	assert.ErrorIs(t, svc.Update(ctx, 0, nil), ErrNoUserID)
	assert.ErrorIs(t, svc.Update(ctx, 5, nil), ErrNothingToUpdate)
	assert.ErrorIs(t, svc.Update(ctx, 5, []models.Activity{{Status: models.ActivityEnabled}}), ErrMissingRecordID)

	repo.EXPECT().UpdateActivities(gomock.Any(), int64(5), gomock.Any()).Return(store.ErrActivityNotFound)
	err := svc.Update(ctx, 5, []models.Activity{{ID: "a1", Status: models.ActivityEnabled}})
	assert.ErrorIs(t, err, store.ErrActivityNotFound)
}

func TestActivityService_List(t *testing.T) {
	repo := mock.NewMockActivityRepository(gomock.NewController(t))
	svc := NewActivityService(repo, validators.NewRecordValidator(), logger.Nop())

	_, err := svc.List(context.Background(), 0)
	assert.ErrorIs(t, err, ErrNoUserID)

	repo.EXPECT().ListActivities(gomock.Any(), int64(5)).Return([]models.Activity{{ID: "a1"}}, nil)
	got, err := svc.List(context.Background(), 5)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestNoteService(t *testing.T) {
	ctx := context.Background()
	repo := mock.NewMockNoteRepository(gomock.NewController(t))
	svc := NewNoteService(repo, validators.NewRecordValidator(), logger.Nop())

	repo.EXPECT().CreateNote(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, n models.Note) (models.Note, error) {
		return n, nil
	})
	created, err := svc.Create(ctx, models.Note{ID: "n1", UserID: 2, Message: strPtr("enc:AAAA")})
	require.NoError(t, err)
	assert.Equal(t, "n1", created.ID)

	_, err = svc.Create(ctx, models.Note{UserID: 2})
	assert.ErrorIs(t, err, ErrMissingRecordID)

	repo.EXPECT().UpdateNotes(gomock.Any(), int64(2), gomock.Len(1)).Return(nil)
	require.NoError(t, svc.Update(ctx, 2, []models.Note{{ID: "n1"}}))

	assert.ErrorIs(t, svc.Update(ctx, 2, []models.Note{{ID: "n1"}, {ID: "n1"}}), ErrInvalidDataProvided)
}

func newEncryptionServiceUnderTest(t *testing.T) (EncryptionService, *mock.MockActivityRepository, *mock.MockNoteRepository, *mock.MockLegacyKeyRepository) {
	ctrl := gomock.NewController(t)
	activities := mock.NewMockActivityRepository(ctrl)
	notes := mock.NewMockNoteRepository(ctrl)
	legacyKeys := mock.NewMockLegacyKeyRepository(ctrl)

	storages := &store.Storages{
		ActivityRepository:  activities,
		NoteRepository:      notes,
		LegacyKeyRepository: legacyKeys,
	}
	return NewEncryptionService(storages, validators.NewRecordValidator(), logger.Nop()), activities, notes, legacyKeys
}

func TestEncryptionService_Probe(t *testing.T) {
	ctx := context.Background()

	t.Run("encrypted activity short-circuits", func(t *testing.T) {
		svc, activities, _, _ := newEncryptionServiceUnderTest(t)
		activities.EXPECT().HasEncryptedActivities(gomock.Any(), int64(3)).Return(true, nil)

		probe, err := svc.Probe(ctx, 3)
		require.NoError(t, err)
		assert.Equal(t, models.EncryptedDataProbe{Activities: true}, probe)
	})

	t.Run("falls through to notes", func(t *testing.T) {
		svc, activities, notes, _ := newEncryptionServiceUnderTest(t)
		activities.EXPECT().HasEncryptedActivities(gomock.Any(), int64(3)).Return(false, nil)
		notes.EXPECT().HasEncryptedNotes(gomock.Any(), int64(3)).Return(true, nil)

		probe, err := svc.Probe(ctx, 3)
		require.NoError(t, err)
		assert.True(t, probe.Any())
		assert.False(t, probe.Activities)
	})

	t.Run("repository error", func(t *testing.T) {
		svc, activities, _, _ := newEncryptionServiceUnderTest(t)
		activities.EXPECT().HasEncryptedActivities(gomock.Any(), int64(3)).Return(false, store.ErrExecutingQuery)

		_, err := svc.Probe(ctx, 3)
		assert.ErrorIs(t, err, store.ErrExecutingQuery)
	})

	t.Run("no user", func(t *testing.T) {
		svc, _, _, _ := newEncryptionServiceUnderTest(t)
		_, err := svc.Probe(ctx, 0)
		assert.ErrorIs(t, err, ErrNoUserID)
	})
}

func TestEncryptionService_RegisterLegacyKey(t *testing.T) {
	ctx := context.Background()
	lk := models.LegacyKey{UserID: 3, EncryptionKey: "legacy-secret", LegacyEmail: "old@example.com"}

	t.Run("created", func(t *testing.T) {
		svc, _, _, legacyKeys := newEncryptionServiceUnderTest(t)
		legacyKeys.EXPECT().CreateLegacyKey(gomock.Any(), lk).Return(lk, nil)

		got, err := svc.RegisterLegacyKey(ctx, lk)
		require.NoError(t, err)
		assert.Equal(t, lk, got)
	})

	t.Run("already registered", func(t *testing.T) {
		svc, _, _, legacyKeys := newEncryptionServiceUnderTest(t)
		legacyKeys.EXPECT().CreateLegacyKey(gomock.Any(), lk).Return(models.LegacyKey{}, store.ErrLegacyKeyExists)

		_, err := svc.RegisterLegacyKey(ctx, lk)
		assert.ErrorIs(t, err, store.ErrLegacyKeyExists)
	})

	t.Run("missing email", func(t *testing.T) {
		svc, _, _, _ := newEncryptionServiceUnderTest(t)
		_, err := svc.RegisterLegacyKey(ctx, models.LegacyKey{UserID: 3, EncryptionKey: "legacy-secret"})
		assert.ErrorIs(t, err, ErrInvalidLegacyKey)
		assert.ErrorIs(t, err, validators.ErrEmptyLegacyEmail)
	})

	t.Run("list", func(t *testing.T) {
		svc, _, _, legacyKeys := newEncryptionServiceUnderTest(t)
		legacyKeys.EXPECT().ListLegacyKeys(gomock.Any(), int64(3)).Return([]models.LegacyKey{lk}, nil)

		got, err := svc.ListLegacyKeys(ctx, 3)
		require.NoError(t, err)
		assert.Equal(t, []models.LegacyKey{lk}, got)
	})
}
