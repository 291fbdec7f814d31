package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-cadence-keys/internal/logger"
)

const defaultRefreshInterval = 5 * time.Minute

type cacheRefreshJob struct {
	refresher CacheRefresher

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

// NewCacheRefreshJob returns an idle [CacheRefreshJob].
func NewCacheRefreshJob(refresher CacheRefresher, logger *logger.Logger) CacheRefreshJob {
	return &cacheRefreshJob{refresher: refresher, logger: logger}
}

func (j *cacheRefreshJob) Start(ctx context.Context, userID int64, interval time.Duration) {
	if interval <= 0 {
		interval = defaultRefreshInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				if err := j.refresher.Refresh(jobCtx, userID); err != nil && jobCtx.Err() == nil {
					j.logger.Warn().Err(err).Int64("user_id", userID).Msg("cache refresh failed")
				}
			}
		}
	}()
}

func (j *cacheRefreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
