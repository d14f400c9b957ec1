package store

import "errors"

// Sentinel errors returned by store methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrManifestNotFound is returned when an account has no stored
	// manifest yet (a fresh account that has never completed a write).
	ErrManifestNotFound = errors.New("storage manifest not found")

	// ErrVersionConflict is returned when a compare-and-set write is
	// rejected because the account's current manifest version does not
	// equal the incoming version minus one. The caller receives the
	// current server manifest alongside this error.
	ErrVersionConflict = errors.New("storage manifest version conflict")

	// ErrDuplicateRecord is returned when a write tries to insert a
	// record under raw ID bytes the server already holds. IDs are fresh
	// per update, so this indicates a misbehaving client or a replay.
	ErrDuplicateRecord = errors.New("duplicate storage record id")

	// ErrRecipientNotFound is returned when a lookup by semantic key or
	// storage ID matches no local recipient row.
	ErrRecipientNotFound = errors.New("recipient not found")

	// ErrAccountNotFound is returned when the singleton account row is
	// missing, i.e. the client is not registered.
	ErrAccountNotFound = errors.New("account settings not found")

	// ErrNoStorageKey is returned when the state store holds no storage
	// key material for this client.
	ErrNoStorageKey = errors.New("no storage key")

	// ErrLoginAlreadyExists is returned on registration when the login is
	// already taken by another account.
	ErrLoginAlreadyExists = errors.New("login already exists")

	// ErrNoAccountWasFound is returned when a server-side account lookup
	// by login matches nothing.
	ErrNoAccountWasFound = errors.New("no account was found")

	// ErrTransient is returned for database failures that are worth
	// retrying (connection loss, deadlock rollback, serialization
	// failure) as classified by the error classifier.
	ErrTransient = errors.New("transient database error")
)

// Low-level database operation errors. These are wrapped by store methods
// when a SQL-level operation fails before any domain logic applies.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised
	// SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommittingTransaction is returned when committing an open
	// transaction fails. The transaction is rolled back at this point.
	ErrCommittingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when scanning column values from a
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")
)
