// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mikhail Khailov

package workers

import (
	"context"
	"testing"
	"time"

	"github.com/mkhailov/go-storage-sync/internal/logger"
	"github.com/stretchr/testify/assert"
)

// stubSyncJob implements service.SyncJob and records lifecycle calls.
type stubSyncJob struct {
	startCount int
	interval   time.Duration
	stopCount  int
}

func (s *stubSyncJob) Start(_ context.Context, interval time.Duration) {
	s.startCount++
	s.interval = interval
}

func (s *stubSyncJob) Stop() { s.stopCount++ }

func TestSyncWorker_RunStartsJob(t *testing.T) {
	job := &stubSyncJob{}
	w := NewSyncWorker(job, 2*time.Minute, logger.Nop())

	w.Run()

	assert.Equal(t, 1, job.startCount)
	assert.Equal(t, 2*time.Minute, job.interval)
}

func TestSyncWorker_StopStopsJob(t *testing.T) {
	job := &stubSyncJob{}
	w := NewSyncWorker(job, time.Minute, logger.Nop())

	w.Run()
	w.Stop()

	assert.Equal(t, 1, job.stopCount)
}
