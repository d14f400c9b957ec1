package store

import (
	"context"
	"fmt"

	"github.com/mkhailov/go-storage-sync/internal/config"
	"github.com/mkhailov/go-storage-sync/internal/logger"
)

// ClientStorages groups the client-side stores into a single value that
// can be passed around the sync layer.
type ClientStorages struct {
	// Records is the SQLite-backed local record store the sync engine
	// reconciles against the remote manifest.
	Records LocalRecordStore

	// State holds the durable sync bookkeeping: the last accepted
	// manifest version, storage key material and the registration flag.
	State StateStore
}

// NewClientStorages initialises the client storage layer using the
// supplied configuration and logger. It opens the SQLite record database
// (running pending schema migrations) and the bbolt state database.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating client storages...")

	records, err := NewRecordStore(ctx, cfg.DBPath, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	state, err := NewStateStore(cfg.StatePath, logger)
	if err != nil {
		_ = records.Close()
		return nil, fmt.Errorf("state db error: %w", err)
	}

	return &ClientStorages{
		Records: records,
		State:   state,
	}, nil
}

// Close releases both underlying databases.
func (s *ClientStorages) Close() error {
	var firstErr error

	if err := s.Records.Close(); err != nil {
		firstErr = err
	}
	if err := s.State.Close(); err != nil && firstErr == nil {
		firstErr = err
	}

	return firstErr
}
