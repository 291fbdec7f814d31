package http

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-cadence-keys/internal/app"
	"github.com/MKhiriev/go-cadence-keys/internal/store"
	"github.com/MKhiriev/go-cadence-keys/models"
)

func TestNotesRoutes(t *testing.T) {
	h, m := newTestHandler(t)
	m.expectAuth()
	router := h.Init()

	note := models.Note{ID: "n1", Message: strPtr("enc:BBBB")}

	m.notes.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, n models.Note) (models.Note, error) { return n, nil })
	rec := doRequest(t, router, http.MethodPost, "/api/notes", note)
	require.Equal(t, http.StatusCreated, rec.Code)

	m.notes.EXPECT().List(gomock.Any(), testUserID).Return([]models.Note{note}, nil)
	rec = doRequest(t, router, http.MethodGet, "/api/notes", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var got []models.Note
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "enc:BBBB", *got[0].Message)

	m.notes.EXPECT().Update(gomock.Any(), testUserID, gomock.Len(1)).Return(store.ErrNoteNotFound)
	rec = doRequest(t, router, http.MethodPut, "/api/notes", []models.Note{note})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, app.MsgNoteNotFound, strings.TrimSpace(rec.Body.String()))
}
