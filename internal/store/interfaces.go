package store

import (
	"context"

	"github.com/mkhailov/go-storage-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// AccountRepository persists server-side accounts used for
// authentication and per-account storage isolation.
type AccountRepository interface {
	// CreateAccount persists a new account and returns it with the
	// server-assigned AccountID. Returns ErrLoginAlreadyExists when the
	// login is taken.
	CreateAccount(ctx context.Context, account models.Account) (models.Account, error)

	// FindAccountByLogin looks an account up by its unique login.
	// Returns ErrNoAccountWasFound when no such account exists.
	FindAccountByLogin(ctx context.Context, login string) (models.Account, error)
}

// ManifestStore is the server half of the storage service: one versioned
// manifest plus an opaque encrypted blob per record ID, scoped per
// account. The server never inspects record payloads.
type ManifestStore interface {
	// GetManifest returns the account's current manifest, or
	// ErrManifestNotFound when the account has never completed a write.
	GetManifest(ctx context.Context, accountID int64) (models.Manifest, error)

	// GetManifestIfDifferent returns the current manifest when its version
	// is strictly greater than knownVersion, or nil when the caller is up
	// to date (including a fresh account with no manifest at all).
	GetManifestIfDifferent(ctx context.Context, accountID int64, knownVersion uint64) (*models.Manifest, error)

	// ReadRecords returns stored payloads for the requested raw ID bytes,
	// keyed by string(raw). IDs the server does not hold are omitted.
	ReadRecords(ctx context.Context, accountID int64, raws [][]byte) (map[string][]byte, error)

	// WriteRecords applies the write transactionally iff manifest.Version
	// is exactly one above the account's current version. On a version
	// mismatch the account's current manifest is returned alongside
	// ErrVersionConflict and nothing is modified.
	WriteRecords(ctx context.Context, accountID int64, manifest models.Manifest, inserts []models.WireItem, deletes [][]byte) (*models.Manifest, error)
}
