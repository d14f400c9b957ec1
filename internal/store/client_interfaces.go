// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mikhail Khailov

package store

import (
	"context"

	"github.com/mkhailov/go-storage-sync/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalQueries is every row operation of the client record store. The
// same surface is available on the pool and inside an open transaction,
// so the sync engine runs the merge phase against a [LocalTx] and
// everything else against the store directly.
type LocalQueries interface {
	// AllStorageIDs enumerates the IDs this client currently associates
	// with local state: every recipient row with an assigned ID, the
	// account row's ID, and all unknown-record IDs.
	AllStorageIDs(ctx context.Context) ([]models.StorageID, error)

	// Matchers by semantic key. Each returns ErrRecipientNotFound when
	// no row matches.
	FindContactByServiceID(ctx context.Context, serviceID string) (models.Recipient, error)
	FindContactByE164(ctx context.Context, e164 string) (models.Recipient, error)
	FindGroupV1ByID(ctx context.Context, groupID []byte) (models.Recipient, error)
	FindGroupV2ByMasterKey(ctx context.Context, masterKey []byte) (models.Recipient, error)
	FindRecipientByStorageID(ctx context.Context, id models.StorageID) (models.Recipient, error)

	// RecipientsByStorageIDs returns the rows behind the given IDs,
	// keyed by ID. IDs with no backing row are absent from the map.
	RecipientsByStorageIDs(ctx context.Context, ids []models.StorageID) (map[models.StorageID]models.Recipient, error)

	InsertRecipient(ctx context.Context, rec models.Recipient) (int64, error)
	UpdateRecipient(ctx context.Context, rec models.Recipient) error
	DeleteRecipients(ctx context.Context, rowIDs []int64) error

	// Dirty-flag bookkeeping. Clears happen only after the push that
	// included the rows succeeds.
	RecipientsPendingInsertion(ctx context.Context) ([]models.Recipient, error)
	RecipientsPendingUpdate(ctx context.Context) ([]models.Recipient, error)
	RecipientsPendingDeletion(ctx context.Context) ([]models.Recipient, error)
	ClearDirty(ctx context.Context, rowIDs []int64) error
	ClearDirtyByStorageIDs(ctx context.Context, ids []models.StorageID) error

	// UpdateStorageIDs applies ID rotations after a successful push.
	UpdateStorageIDs(ctx context.Context, rotations map[int64]models.StorageID) error

	// Account row (singleton, created at registration).
	GetAccount(ctx context.Context) (models.AccountSettings, error)
	SaveAccount(ctx context.Context, acc models.AccountSettings) error

	// Unknown records are carried verbatim.
	InsertUnknownRecords(ctx context.Context, recs []models.UnknownRecord) error
	DeleteUnknownRecords(ctx context.Context, ids []models.StorageID) error
	UnknownRecordsByIDs(ctx context.Context, ids []models.StorageID) ([]models.UnknownRecord, error)
}

// LocalTx is an open client-database transaction. It exposes the full
// query surface plus the commit/rollback pair; the merge phase of a sync
// cycle must stay inside one LocalTx and must not touch the network.
type LocalTx interface {
	LocalQueries

	Commit() error
	Rollback() error
}

// LocalRecordStore is the client record database.
type LocalRecordStore interface {
	LocalQueries

	// Begin opens a write transaction.
	Begin(ctx context.Context) (LocalTx, error)

	Close() error
}

// StateStore is the small durable key-value state owned by the sync
// subsystem: the last accepted manifest version, the storage key
// material, and the registration flag.
type StateStore interface {
	// ManifestVersion returns the version of the last manifest this
	// client accepted, 0 when it has never synced.
	ManifestVersion() (uint64, error)
	SetManifestVersion(version uint64) error

	// StorageKey returns the storage key, or ErrNoStorageKey.
	StorageKey() ([]byte, error)
	SetStorageKey(key []byte) error

	// StorageKeySalt returns the Argon2id salt used to derive the
	// storage key from a master secret, or nil when none is stored.
	StorageKeySalt() ([]byte, error)
	SetStorageKeySalt(salt []byte) error

	// Registered reports whether this client finished registration and
	// may sync.
	Registered() (bool, error)
	SetRegistered(v bool) error

	Close() error
}
