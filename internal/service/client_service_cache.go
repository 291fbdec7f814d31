package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-cadence-keys/internal/adapter"
	"github.com/MKhiriev/go-cadence-keys/internal/store"
)

type cacheRefresher struct {
	backend adapter.BackendAdapter
	cache   store.LocalCacheRepository
}

// NewCacheRefresher returns a [CacheRefresher] copying backend rows into
// cache as they are stored, without decrypting.
func NewCacheRefresher(backend adapter.BackendAdapter, cache store.LocalCacheRepository) CacheRefresher {
	return &cacheRefresher{backend: backend, cache: cache}
}

func (c *cacheRefresher) Refresh(ctx context.Context, userID int64) error {
	activities, err := c.backend.ListActivities(ctx)
	if err != nil {
		return fmt.Errorf("list activities: %w", mapAdapterError(err))
	}
	if err = c.cache.ReplaceActivities(ctx, userID, activities); err != nil {
		return fmt.Errorf("cache activities: %w", err)
	}

	notes, err := c.backend.ListNotes(ctx)
	if err != nil {
		return fmt.Errorf("list notes: %w", mapAdapterError(err))
	}
	if err = c.cache.ReplaceNotes(ctx, userID, notes); err != nil {
		return fmt.Errorf("cache notes: %w", err)
	}

	return nil
}

// cacheRecordChecker backs new-device detection with the local cache.
type cacheRecordChecker struct {
	cache store.LocalCacheRepository
}

// NewCacheRecordChecker adapts the local cache to [LocalRecordChecker].
func NewCacheRecordChecker(cache store.LocalCacheRepository) LocalRecordChecker {
	return &cacheRecordChecker{cache: cache}
}

func (c *cacheRecordChecker) HasCachedRecords(ctx context.Context, userID int64) (bool, error) {
	return c.cache.HasRecords(ctx, userID)
}

// backendProber backs new-device detection with the backend probe endpoint.
type backendProber struct {
	backend adapter.BackendAdapter
}

// NewBackendProber adapts the backend to [EncryptedRecordProber].
func NewBackendProber(backend adapter.BackendAdapter) EncryptedRecordProber {
	return &backendProber{backend: backend}
}

func (b *backendProber) HasEncryptedRecords(ctx context.Context) (bool, error) {
	probe, err := b.backend.ProbeEncryptedData(ctx)
	if err != nil {
		return false, fmt.Errorf("probe encrypted data: %w", mapAdapterError(err))
	}
	return probe.Any(), nil
}
