// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mikhail Khailov

package workers

import (
	"context"
	"time"

	"github.com/mkhailov/go-storage-sync/internal/logger"
	"github.com/mkhailov/go-storage-sync/internal/service"
)

// SyncWorker runs the client's periodic storage sync as a managed
// background worker. It is a thin lifecycle adapter: the actual cycle
// cadence and error handling live in the service-level sync job.
type SyncWorker struct {
	job      service.SyncJob
	interval time.Duration
	logger   *logger.Logger
}

func NewSyncWorker(job service.SyncJob, interval time.Duration, logger *logger.Logger) *SyncWorker {
	return &SyncWorker{job: job, interval: interval, logger: logger}
}

// Run starts the periodic sync goroutine and returns immediately.
func (w *SyncWorker) Run() {
	w.logger.Info().
		Dur("interval", w.interval).
		Str("func", "SyncWorker.Run").
		Msg("starting background sync")
	w.job.Start(context.Background(), w.interval)
}

// Stop terminates the sync goroutine and waits for the in-flight cycle,
// if any, to finish.
func (w *SyncWorker) Stop() {
	w.job.Stop()
	w.logger.Info().Str("func", "SyncWorker.Stop").Msg("background sync stopped")
}
