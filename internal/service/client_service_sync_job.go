package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/mkhailov/go-storage-sync/internal/logger"
)

type syncJob struct {
	engine    SyncEngine
	scheduler Scheduler
	logger    *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSyncJob creates a syncJob that runs engine.Sync on a ticker. The job
// is idle until Start is called.
func NewSyncJob(engine SyncEngine, scheduler Scheduler, logger *logger.Logger) SyncJob {
	return &syncJob{engine: engine, scheduler: scheduler, logger: logger}
}

// Start implements SyncJob. It stops any previously running job, then
// launches a background goroutine that runs one sync cycle immediately and
// again every interval. If interval is zero or negative it defaults to
// 5 minutes. The goroutine exits when ctx is cancelled or Stop is called.
func (j *syncJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 5 * time.Minute
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

		j.runOnce(jobCtx)
		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.runOnce(jobCtx)
			}
		}
	}()
}

// runOnce runs a single sync cycle and routes the outcome. Not-ready and
// retry-later results are expected states, not failures: the former means
// the device has nothing to sync yet, the latter that the next tick will
// pick the cycle up again.
func (j *syncJob) runOnce(ctx context.Context) {
	needsMultiDeviceSync, err := j.engine.Sync(ctx)
	switch {
	case errors.Is(err, ErrSyncNotReady):
		j.logger.Debug().Err(err).Str("func", "syncJob.runOnce").Msg("sync skipped")
	case errors.Is(err, ErrRetryLater):
		j.logger.Info().Err(err).Str("func", "syncJob.runOnce").Msg("sync deferred until next tick")
	case err != nil:
		j.logger.Error().Err(err).Str("func", "syncJob.runOnce").Msg("sync cycle failed")
	case needsMultiDeviceSync:
		j.scheduler.ScheduleMultiDeviceSync(ctx)
	}
}

// Stop implements SyncJob. It cancels the background goroutine's context
// and blocks until the goroutine has fully exited. Safe to call when the
// job is not running (no-op in that case).
func (j *syncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
