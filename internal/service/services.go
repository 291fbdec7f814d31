package service

import (
	"github.com/MKhiriev/go-cadence-keys/internal/config"
	"github.com/MKhiriev/go-cadence-keys/internal/logger"
	"github.com/MKhiriev/go-cadence-keys/internal/store"
	"github.com/MKhiriev/go-cadence-keys/internal/validators"
)

// Services is the backend service graph used by the HTTP handler.
type Services struct {
	AuthService       AuthService
	ActivityService   ActivityService
	NoteService       NoteService
	EncryptionService EncryptionService
}

func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) *Services {
	validator := validators.NewRecordValidator()

	return &Services{
		AuthService:       NewAuthService(cfg, logger),
		ActivityService:   NewActivityService(storages.ActivityRepository, validator, logger),
		NoteService:       NewNoteService(storages.NoteRepository, validator, logger),
		EncryptionService: NewEncryptionService(storages, validator, logger),
	}
}
