package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-cadence-keys/internal/config"
	"github.com/MKhiriev/go-cadence-keys/internal/handler"
	"github.com/MKhiriev/go-cadence-keys/internal/logger"
	"github.com/MKhiriev/go-cadence-keys/internal/service"
	"github.com/MKhiriev/go-cadence-keys/models"
)

func TestNewServer(t *testing.T) {
	cfg := config.Server{HTTPAddress: "127.0.0.1:0"}
	handlers, err := handler.NewHandlers(&service.Services{}, cfg, models.NewAppBuildInfo("v1", "", ""), logger.Nop())
	require.NoError(t, err)

	t.Run("http", func(t *testing.T) {
		srv, err := NewServer(handlers, cfg, logger.Nop())
		require.NoError(t, err)
		assert.NotNil(t, srv)
	})

	t.Run("no address", func(t *testing.T) {
		_, err := NewServer(handlers, config.Server{}, logger.Nop())
		assert.ErrorIs(t, err, errNoServersAreCreated)
	})

	t.Run("no handlers", func(t *testing.T) {
		_, err := NewServer(&handler.Handlers{}, cfg, logger.Nop())
		assert.ErrorIs(t, err, errNoServersAreCreated)
	})
}

func TestServer_RunStopsOnContextCancel(t *testing.T) {
	s := &server{
		httpServer: newHTTPServer(http.NotFoundHandler(), config.Server{}, logger.Nop()),
		address:    "127.0.0.1:0",
		logger:     logger.Nop(),
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.run(ctx) }()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestServer_RunReportsListenError(t *testing.T) {
	s := &server{
		httpServer: newHTTPServer(http.NotFoundHandler(), config.Server{}, logger.Nop()),
		address:    "not-an-address",
		logger:     logger.Nop(),
	}

	assert.Error(t, s.run(context.Background()))
}

func TestNewHTTPServer_RequestTimeout(t *testing.T) {
	slow := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})
	h := newHTTPServer(slow, config.Server{HTTPAddress: ":0", RequestTimeout: 10 * time.Millisecond}, logger.Nop())

	rec := httptest.NewRecorder()
	h.server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusGatewayTimeout, rec.Code)
}
