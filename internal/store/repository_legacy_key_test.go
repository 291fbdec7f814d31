package store

import (
	"errors"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-cadence-keys/internal/logger"
	"github.com/MKhiriev/go-cadence-keys/models"
)

func TestLegacyKeyRepository_ListLegacyKeys(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewLegacyKeyRepository(newDBFromSQL(db), logger.Nop())
	now := time.Now().UTC()

	mock.ExpectQuery(`SELECT user_id, encryption_key, legacy_email, created_at FROM encryption_legacy WHERE user_id = \$1`).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows(legacyKeyColumns).AddRow(int64(3), "ab12", "me@example.com", now))

	got, err := repo.ListLegacyKeys(testContext(), 3)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "me@example.com", got[0].LegacyEmail)
}

func TestLegacyKeyRepository_ListLegacyKeys_Empty(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewLegacyKeyRepository(newDBFromSQL(db), logger.Nop())

	mock.ExpectQuery(`FROM encryption_legacy`).WillReturnRows(sqlmock.NewRows(legacyKeyColumns))

	got, err := repo.ListLegacyKeys(testContext(), 3)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLegacyKeyRepository_CreateLegacyKey(t *testing.T) {
	tests := []struct {
		name    string
		dbErr   error
		wantErr error
	}{
		{name: "inserted"},
		{name: "already registered", dbErr: &pgconn.PgError{Code: pgerrcode.UniqueViolation}, wantErr: ErrLegacyKeyExists},
		{name: "other failure", dbErr: errors.New("conn reset"), wantErr: ErrExecutingQuery},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newTestDB(t)
			repo := NewLegacyKeyRepository(newDBFromSQL(db), logger.Nop())

			exp := mock.ExpectQuery(`INSERT INTO encryption_legacy (.+) RETURNING created_at`).
				WithArgs(int64(3), "ab12", "me@example.com")
			if tt.dbErr != nil {
				exp.WillReturnError(tt.dbErr)
			} else {
				exp.WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(time.Now()))
			}

			got, err := repo.CreateLegacyKey(testContext(), models.LegacyKey{
				UserID: 3, EncryptionKey: "ab12", LegacyEmail: "me@example.com",
			})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.NotContains(t, err.Error(), "ab12")
				return
			}
			require.NoError(t, err)
			assert.False(t, got.CreatedAt.IsZero())
		})
	}
}
