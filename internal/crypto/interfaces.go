// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mikhail Khailov

package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

import "github.com/mkhailov/go-storage-sync/models"

// RecordCipher owns every cryptographic operation around storage
// records. It knows nothing about the network, the manifest protocol or
// the local database; it only protects record payloads and produces the
// key material they are protected with.
//
// Key scheme:
//
//	storageKey    = 32 random bytes, or DeriveStorageKey(secret, salt)
//	recordKey(id) = HMAC-SHA256(storageKey, id.Raw)
//	blob          = nonce ‖ AES-256-GCM(recordKey, payload)
//
// The storage key never leaves the client. The server only ever sees
// sealed blobs; an authentication failure while opening one means the
// key this client holds cannot read what the server holds, which the
// sync layer escalates as a decrypt failure.
type RecordCipher interface {
	// GenerateStorageKey returns a fresh random 32-byte storage key.
	GenerateStorageKey() ([]byte, error)

	// GenerateSalt returns a fresh random 16-byte salt for
	// DeriveStorageKey. The salt is not secret and is persisted locally.
	GenerateSalt() ([]byte, error)

	// DeriveStorageKey derives the 32-byte storage key from a master
	// secret and salt via Argon2id, so the same secret yields the same
	// key on every device that knows the salt.
	DeriveStorageKey(masterSecret string, salt []byte) []byte

	// EncryptRecord serialises the record payload (content only, never
	// the StorageID) and seals it under the key for the record's ID.
	EncryptRecord(storageKey []byte, rec models.StorageRecord) ([]byte, error)

	// DecryptRecord opens a sealed blob fetched for id and parses it
	// into a record of the ID's type. Types this client does not
	// understand come back as UnknownRecord with the plaintext carried
	// verbatim. A wrong key or a corrupted blob returns an error
	// wrapping ErrDecryptFailed.
	DecryptRecord(storageKey []byte, id models.StorageID, blob []byte) (models.StorageRecord, error)
}

// IDGenerator mints fresh StorageIDs. Every logical record update gets
// a new ID; raw bytes are never reused.
type IDGenerator interface {
	// NewID returns a StorageID of the given type with fresh random bytes.
	NewID(t models.RecordType) (models.StorageID, error)
}
