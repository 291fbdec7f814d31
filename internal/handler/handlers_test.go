package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-cadence-keys/internal/config"
	"github.com/MKhiriev/go-cadence-keys/internal/logger"
	"github.com/MKhiriev/go-cadence-keys/internal/service"
	"github.com/MKhiriev/go-cadence-keys/models"
)

func TestNewHandlers(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.Server
		wantErr error
	}{
		{name: "http address set", cfg: config.Server{HTTPAddress: ":8080"}},
		{name: "no address", cfg: config.Server{}, wantErr: errNoHandlersAreCreated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handlers, err := NewHandlers(&service.Services{}, tt.cfg, models.NewAppBuildInfo("", "", ""), logger.Nop())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, handlers)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, handlers.HTTP)
			assert.NotNil(t, handlers.HTTP.Init())
		})
	}
}
