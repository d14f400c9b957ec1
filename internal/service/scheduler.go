package service

import (
	"context"
	"sync/atomic"

	"github.com/mkhailov/go-storage-sync/internal/logger"
)

// logScheduler is the reference Scheduler: it records each request in a
// counter and logs it. A production deployment would replace it with a
// durable job queue; the sync engine only ever sees the interface.
type logScheduler struct {
	logger *logger.Logger

	forcePushes  atomic.Int64
	keyRotations atomic.Int64
	deviceSyncs  atomic.Int64
}

// NewLogScheduler returns a Scheduler that logs every request. Suitable
// for the reference daemon and for tests.
func NewLogScheduler(logger *logger.Logger) Scheduler {
	return &logScheduler{logger: logger}
}

func (s *logScheduler) ScheduleForcePush(ctx context.Context) {
	n := s.forcePushes.Add(1)
	s.logger.Warn().Int64("requested", n).Str("func", "logScheduler.ScheduleForcePush").Msg("force push requested")
}

func (s *logScheduler) ScheduleKeyRotation(ctx context.Context) {
	n := s.keyRotations.Add(1)
	s.logger.Warn().Int64("requested", n).Str("func", "logScheduler.ScheduleKeyRotation").Msg("storage key rotation requested")
}

func (s *logScheduler) ScheduleMultiDeviceSync(ctx context.Context) {
	n := s.deviceSyncs.Add(1)
	s.logger.Info().Int64("requested", n).Str("func", "logScheduler.ScheduleMultiDeviceSync").Msg("multi-device sync requested")
}
