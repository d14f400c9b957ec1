package service

import (
	"context"

	"github.com/mkhailov/go-storage-sync/models"
)

// StorageService is the server-side business layer over the manifest
// store. Payloads are opaque ciphertext at this level; the service only
// enforces the manifest contract (versioned index, compare-and-set
// writes, per-account isolation).
type StorageService interface {
	// GetManifest returns the account's current manifest, or
	// store.ErrManifestNotFound when the account has never written one.
	GetManifest(ctx context.Context, accountID int64) (models.Manifest, error)

	// GetManifestIfDifferent returns the current manifest when its
	// version differs from knownVersion, or nil when the caller is
	// already up to date.
	GetManifestIfDifferent(ctx context.Context, accountID int64, knownVersion uint64) (*models.Manifest, error)

	// ReadRecords returns the stored items behind the requested IDs.
	// IDs the server does not hold are omitted from the result.
	ReadRecords(ctx context.Context, accountID int64, ids []models.StorageID) ([]models.WireItem, error)

	// WriteRecords applies one compare-and-set push. On a version
	// conflict it returns the server's current manifest together with
	// store.ErrVersionConflict so the client can reconcile and retry.
	WriteRecords(ctx context.Context, accountID int64, write models.WriteRecordsRequest) (*models.Manifest, error)
}

// AuthService handles account registration, credential verification, and
// JWT token lifecycle.
type AuthService interface {
	RegisterAccount(ctx context.Context, login, password string) (models.Account, error)
	Login(ctx context.Context, login, password string) (models.Account, error)
	CreateToken(ctx context.Context, account models.Account) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}
