package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-cadence-keys/internal/app"
	"github.com/MKhiriev/go-cadence-keys/internal/service"
	"github.com/MKhiriev/go-cadence-keys/internal/utils"
	"github.com/MKhiriev/go-cadence-keys/models"
)

func TestAuth(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		setup      func(m handlerMocks)
		wantStatus int
		wantBody   string
		wantUserID int64
	}{
		{
			name:       "missing header",
			wantStatus: http.StatusUnauthorized,
			wantBody:   ErrEmptyAuthorizationHeader.Error(),
		},
		{
			name:       "no token part",
			header:     "Bearer",
			wantStatus: http.StatusUnauthorized,
			wantBody:   ErrInvalidAuthorizationHeader.Error(),
		},
		{
			name:       "empty token part",
			header:     "Bearer ",
			wantStatus: http.StatusUnauthorized,
			wantBody:   ErrEmptyToken.Error(),
		},
		{
			name:   "invalid token",
			header: "Bearer forged",
			setup: func(m handlerMocks) {
				m.auth.EXPECT().ParseToken(gomock.Any(), "forged").Return(models.Token{}, service.ErrTokenIsExpiredOrInvalid)
			},
			wantStatus: http.StatusUnauthorized,
			wantBody:   app.MsgTokenIsExpiredOrInvalid,
		},
		{
			name:   "valid token",
			header: "Bearer " + testToken,
			setup: func(m handlerMocks) {
				m.expectAuth()
			},
			wantStatus: http.StatusOK,
			wantUserID: testUserID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			if tt.setup != nil {
				tt.setup(m)
			}

			var gotUserID int64
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotUserID, _ = utils.GetUserIDFromContext(r.Context())
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			h.auth(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, strings.TrimSpace(rec.Body.String()))
			}
			assert.Equal(t, tt.wantUserID, gotUserID)
		})
	}
}

func TestRoutes_RequireAuth(t *testing.T) {
	h, _ := newTestHandler(t)
	router := h.Init()

	paths := []struct{ method, path string }{
		{http.MethodGet, "/api/activities"},
		{http.MethodPost, "/api/activities"},
		{http.MethodPut, "/api/activities"},
		{http.MethodGet, "/api/notes"},
		{http.MethodPut, "/api/notes"},
		{http.MethodGet, "/api/encryption/probe"},
		{http.MethodGet, "/api/encryption/legacy"},
		{http.MethodPost, "/api/encryption/legacy"},
	}

	for _, p := range paths {
		req := httptest.NewRequest(p.method, p.path, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "%s %s", p.method, p.path)
	}
}
