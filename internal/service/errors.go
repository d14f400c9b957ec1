package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrRegisterOnServer = errors.New("registration on server failed")
	ErrLoginOnServer    = errors.New("login on server failed")

	// ErrLocalStateMismatch is returned when the local database was
	// seeded for a different account than the one that just logged in.
	ErrLocalStateMismatch = errors.New("local data belongs to a different account")

	// Sync dispositions. ErrSyncNotReady means the cycle was skipped
	// because preconditions (registration, storage key) are not met.
	// ErrRetryLater means the cycle observed transient contention — a
	// network failure or a manifest version conflict — and a later run
	// is expected to converge.
	ErrSyncNotReady = errors.New("sync preconditions not met")
	ErrRetryLater   = errors.New("retry sync later")

	// Fatal sync errors. Each one means local bookkeeping promised a
	// record that cannot be produced, which is a logic bug rather than
	// a recoverable condition.
	ErrMissingRecipientModel = errors.New("no recipient model for storage ID")
	ErrMissingUnknownRecord  = errors.New("no stored payload for unknown storage ID")
	ErrMissingGroupMasterKey = errors.New("group record has no master key")
	ErrSelfIDMismatch        = errors.New("account storage ID does not match self")

	// ErrInvalidWriteOperation wraps every write-operation validation
	// failure. A write that fails validation is never sent.
	ErrInvalidWriteOperation = errors.New("invalid write operation")
)
