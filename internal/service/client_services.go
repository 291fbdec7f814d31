package service

import (
	"github.com/MKhiriev/go-cadence-keys/internal/adapter"
	"github.com/MKhiriev/go-cadence-keys/internal/crypto"
	"github.com/MKhiriev/go-cadence-keys/internal/keystore"
	"github.com/MKhiriev/go-cadence-keys/internal/logger"
	"github.com/MKhiriev/go-cadence-keys/internal/store"
)

// ClientServices is the client-side service graph.
type ClientServices struct {
	KeyProvisioner  KeyProvisioner
	ActivityCodec   *ActivityCodec
	NoteCodec       *NoteCodec
	DeviceLink      DeviceLinkManager
	LegacyMigrator  LegacyKeyMigrator
	KeyRotator      KeyRotator
	ActivityService ClientActivityService
	NoteService     ClientNoteService
	CacheRefresher  CacheRefresher
	CacheRefreshJob CacheRefreshJob
}

// NewClientServices wires every client service over one key store, one
// backend adapter and the local storages.
func NewClientServices(
	keyStore keystore.KeyStore,
	backend adapter.BackendAdapter,
	storages *store.ClientStorages,
	logger *logger.Logger,
) *ClientServices {
	cipher := crypto.NewCipherEngine()
	provisioner := NewKeyProvisioner(keyStore, logger)
	activityCodec := NewActivityCodec(cipher, provisioner, keyStore)
	noteCodec := NewNoteCodec(cipher, provisioner, keyStore)
	refresher := NewCacheRefresher(backend, storages.CacheRepository)

	deviceLink := NewDeviceLinkManager(
		keyStore,
		NewCacheRecordChecker(storages.CacheRepository),
		NewBackendProber(backend),
		NewDevicePrefs(storages.KVRepository),
		logger,
	)

	return &ClientServices{
		KeyProvisioner:  provisioner,
		ActivityCodec:   activityCodec,
		NoteCodec:       noteCodec,
		DeviceLink:      deviceLink,
		LegacyMigrator:  NewLegacyKeyMigrator(storages.KVRepository, backend, logger),
		KeyRotator:      NewKeyRotator(keyStore, backend, storages.CacheRepository, activityCodec, noteCodec, logger),
		ActivityService: NewClientActivityService(backend, storages.CacheRepository, activityCodec, logger),
		NoteService:     NewClientNoteService(backend, storages.CacheRepository, noteCodec, logger),
		CacheRefresher:  refresher,
		CacheRefreshJob: NewCacheRefreshJob(refresher, logger),
	}
}
