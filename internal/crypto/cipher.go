// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mikhail Khailov

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"

	"github.com/mkhailov/go-storage-sync/models"
)

// ErrDecryptFailed marks a blob that could not be authenticated with the
// current storage key. It almost always means the key on this device is
// out of date relative to what wrote the server's records.
var ErrDecryptFailed = errors.New("record decrypt failed")

const (
	// StorageKeySize is the width of the storage key in bytes.
	StorageKeySize = 32
	// SaltSize is the width of the Argon2id salt in bytes.
	SaltSize = 16
)

// recordCipher is the private implementation of [RecordCipher].
type recordCipher struct {
	// Argon2id tuning parameters. Stored in the struct so they can be
	// adjusted per deployment target.
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
}

// NewRecordCipher constructs a [RecordCipher] with the Argon2id
// parameters recommended by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
func NewRecordCipher() RecordCipher {
	return &recordCipher{
		argonTime:    1,
		argonMemory:  64 * 1024, // 64 MiB
		argonThreads: 4,
	}
}

// GenerateStorageKey implements [RecordCipher]. It reads 32 random bytes
// from the OS CSPRNG. Returns an error if the random read fails.
func (c *recordCipher) GenerateStorageKey() ([]byte, error) {
	key := make([]byte, StorageKeySize)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return nil, err
	}
	return key, nil
}

// GenerateSalt implements [RecordCipher]. It reads 16 random bytes from
// the OS CSPRNG. Returns an error if the random read fails.
func (c *recordCipher) GenerateSalt() ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, err
	}
	return salt, nil
}

// DeriveStorageKey implements [RecordCipher]. It derives a 256-bit
// storage key from masterSecret and salt using Argon2id with the
// parameters stored in the receiver.
func (c *recordCipher) DeriveStorageKey(masterSecret string, salt []byte) []byte {
	return argon2.IDKey(
		[]byte(masterSecret),
		salt,
		c.argonTime,
		c.argonMemory,
		c.argonThreads,
		StorageKeySize,
	)
}

// recordKey derives the per-record AES key. Binding the raw ID into the
// key means a blob moved under a different ID fails authentication.
func recordKey(storageKey []byte, id models.StorageID) []byte {
	mac := hmac.New(sha256.New, storageKey)
	mac.Write(id.Raw[:])
	return mac.Sum(nil)
}

// EncryptRecord implements [RecordCipher]. The payload is the JSON
// serialisation of the record content for known types, or the carried
// plaintext verbatim for unknown ones. The output blob is
// nonce (12 bytes) ‖ ciphertext.
func (c *recordCipher) EncryptRecord(storageKey []byte, rec models.StorageRecord) ([]byte, error) {
	plaintext, err := marshalPayload(rec)
	if err != nil {
		return nil, err
	}

	block, err := aes.NewCipher(recordKey(storageKey, rec.ID()))
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}

	// Prepend the nonce so DecryptRecord can split it out.
	sealed := gcm.Seal(nil, nonce, plaintext, nil)
	return append(nonce, sealed...), nil
}

// DecryptRecord implements [RecordCipher]. It unwraps a blob produced by
// [recordCipher.EncryptRecord] for the same ID. The blob must be at
// least as long as the GCM nonce (12 bytes). Authentication failure,
// a short blob, or unparseable plaintext for a known type all wrap
// ErrDecryptFailed.
func (c *recordCipher) DecryptRecord(storageKey []byte, id models.StorageID, blob []byte) (models.StorageRecord, error) {
	block, err := aes.NewCipher(recordKey(storageKey, id))
	if err != nil {
		return models.StorageRecord{}, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return models.StorageRecord{}, fmt.Errorf("create gcm: %w", err)
	}

	nonceSize := gcm.NonceSize()
	if len(blob) < nonceSize {
		return models.StorageRecord{}, fmt.Errorf("%w: blob shorter than nonce", ErrDecryptFailed)
	}

	nonce, ciphertext := blob[:nonceSize], blob[nonceSize:]

	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return models.StorageRecord{}, fmt.Errorf("%w: %w", ErrDecryptFailed, err)
	}

	return unmarshalPayload(id, plaintext)
}

// marshalPayload serialises the content of whichever variant is set.
// The StorageID stays outside the payload: it travels in the manifest
// and in the read/write envelopes.
func marshalPayload(rec models.StorageRecord) ([]byte, error) {
	switch {
	case rec.Contact != nil:
		return json.Marshal(rec.Contact)
	case rec.GroupV1 != nil:
		return json.Marshal(rec.GroupV1)
	case rec.GroupV2 != nil:
		return json.Marshal(rec.GroupV2)
	case rec.Account != nil:
		return json.Marshal(rec.Account)
	case rec.Unknown != nil:
		return rec.Unknown.Payload, nil
	default:
		return nil, errors.New("empty record union")
	}
}

// unmarshalPayload parses plaintext into the record type named by the
// ID's tag and attaches the ID. Unknown tags keep the plaintext as-is.
func unmarshalPayload(id models.StorageID, plaintext []byte) (models.StorageRecord, error) {
	switch id.Type {
	case models.RecordTypeContact:
		var c models.ContactRecord
		if err := json.Unmarshal(plaintext, &c); err != nil {
			return models.StorageRecord{}, fmt.Errorf("%w: parse contact: %w", ErrDecryptFailed, err)
		}
		c.ID = id
		return models.RecordForContact(c), nil
	case models.RecordTypeGroupV1:
		var g models.GroupV1Record
		if err := json.Unmarshal(plaintext, &g); err != nil {
			return models.StorageRecord{}, fmt.Errorf("%w: parse groupv1: %w", ErrDecryptFailed, err)
		}
		g.ID = id
		return models.RecordForGroupV1(g), nil
	case models.RecordTypeGroupV2:
		var g models.GroupV2Record
		if err := json.Unmarshal(plaintext, &g); err != nil {
			return models.StorageRecord{}, fmt.Errorf("%w: parse groupv2: %w", ErrDecryptFailed, err)
		}
		g.ID = id
		return models.RecordForGroupV2(g), nil
	case models.RecordTypeAccount:
		var a models.AccountRecord
		if err := json.Unmarshal(plaintext, &a); err != nil {
			return models.StorageRecord{}, fmt.Errorf("%w: parse account: %w", ErrDecryptFailed, err)
		}
		a.ID = id
		return models.RecordForAccount(a), nil
	default:
		return models.RecordForUnknown(models.UnknownRecord{ID: id, Payload: plaintext}), nil
	}
}
