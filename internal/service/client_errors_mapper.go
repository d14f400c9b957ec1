package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/mkhailov/go-storage-sync/internal/adapter"
)

// mapRemoteError folds transport-level failures into the engine's retry
// disposition. A manifest version conflict is an ordinary race with
// another device, and network trouble heals on its own; both become
// ErrRetryLater. Cancellation counts as transient too: the next cycle
// picks up from the same durable state. Everything else passes through
// untouched.
func mapRemoteError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, adapter.ErrConflict):
		return fmt.Errorf("%w: %w", ErrRetryLater, err)
	case errors.Is(err, adapter.ErrNetwork), errors.Is(err, adapter.ErrBadGateway):
		return fmt.Errorf("%w: %w", ErrRetryLater, err)
	case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w: %w", ErrRetryLater, err)
	default:
		return err
	}
}
