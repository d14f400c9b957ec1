// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mikhail Khailov

// Package adapter provides transport-layer abstractions for communicating
// with the storage server.
//
// The primary abstraction is [ServerAdapter], which decouples the sync
// engine from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) that also owns the
// encryption boundary: records are sealed on write and opened on read, so
// everything above this package works with plaintext records and
// everything below it carries opaque blobs.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/mkhailov/go-storage-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the storage
// server. Implementations are responsible for serialisation, record
// encryption, authentication header management, and mapping
// transport-level errors to the sentinel values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests. It should be called immediately
	// after a successful Register or Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or
	// an empty string if no token has been set yet.
	Token() string

	// Register creates a new account on the server and returns the
	// service address the server assigned to it. On success it stores
	// the returned bearer token via SetToken. Returns ErrConflict
	// (wrapped) when the login is already taken.
	Register(ctx context.Context, login, password string) (serviceID string, err error)

	// Login authenticates against the server and returns the account's
	// service address. On success it stores the returned bearer token
	// via SetToken. Returns ErrUnauthorized (wrapped) on bad
	// credentials.
	Login(ctx context.Context, login, password string) (serviceID string, err error)

	// GetManifestIfDifferent fetches the account's current manifest when
	// its version differs from knownVersion, or nil when the server
	// reports the caller is already up to date.
	GetManifestIfDifferent(ctx context.Context, knownVersion uint64) (*models.Manifest, error)

	// ReadRecords fetches and decrypts the records behind ids. IDs the
	// server no longer holds are silently omitted, so the result may be
	// shorter than the request. A record that cannot be opened with
	// storageKey fails the whole read with crypto.ErrDecryptFailed
	// (wrapped).
	ReadRecords(ctx context.Context, storageKey []byte, ids []models.StorageID) ([]models.StorageRecord, error)

	// WriteRecords encrypts op's inserts and pushes the write. The server
	// accepts it only if its current manifest version equals
	// op.Manifest.Version - 1; on rejection the server's current manifest
	// is returned alongside ErrConflict (wrapped) and nothing is applied.
	WriteRecords(ctx context.Context, storageKey []byte, op models.WriteOperation) (*models.Manifest, error)
}
