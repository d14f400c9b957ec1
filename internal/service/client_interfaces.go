package service

import (
	"context"
	"time"
)

// SyncEngine is the client-side reconciliation engine. One Sync call is
// one full cycle: pull the remote manifest, merge remote changes into
// the local database, push the merge result, then push locally
// originated changes.
type SyncEngine interface {
	// Sync runs one reconciliation cycle. The returned flag reports
	// whether this cycle pushed a write that other devices on the same
	// account should be told about.
	//
	// Error contract:
	//   - ErrSyncNotReady: preconditions not met, nothing was done.
	//   - ErrRetryLater: transient failure or manifest conflict; local
	//     state is consistent and a later cycle will converge.
	//   - anything else: a logic bug; the cycle was aborted with the
	//     local database rolled back.
	//
	// Concurrent calls serialise: a second caller blocks until the
	// running cycle finishes, then runs its own.
	Sync(ctx context.Context) (needsMultiDeviceSync bool, err error)
}

// Scheduler enqueues follow-up work a sync cycle decides it needs but
// must not perform inline. Implementations are expected to be durable
// queues or job runners; enqueueing must be cheap and non-blocking.
type Scheduler interface {
	// ScheduleForcePush requests that local state be rewritten to the
	// server wholesale under fresh IDs, discarding remote state. Used
	// when the remote index is structurally damaged.
	ScheduleForcePush(ctx context.Context)

	// ScheduleKeyRotation requests new storage key material. Used when
	// remote records cannot be decrypted with the current key.
	ScheduleKeyRotation(ctx context.Context)

	// ScheduleMultiDeviceSync notifies the account's other devices that
	// the remote state changed and they should sync.
	ScheduleMultiDeviceSync(ctx context.Context)
}

// ClientAuthService bootstraps a device: it registers or logs in against
// the server, establishes the storage key material, and seeds the local
// account row so the sync engine's preconditions hold.
type ClientAuthService interface {
	// Register creates the account on the server and initialises local
	// state: storage key derived from masterSecret under a fresh salt,
	// account row seeded with the server-assigned service address, and
	// the registered flag set.
	Register(ctx context.Context, login, password, masterSecret string) error

	// Login authenticates an existing account and re-establishes local
	// state on this device. The storage key is re-derived from
	// masterSecret using the persisted salt, or under a fresh salt on a
	// device that has none yet.
	Login(ctx context.Context, login, password, masterSecret string) error
}

// SyncJob runs the engine periodically in the background.
type SyncJob interface {
	// Start launches the background sync goroutine. It syncs every
	// interval, defaulting to 5 minutes if interval is zero or negative.
	// Any previously running job is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it
	// has fully terminated.
	Stop()
}
