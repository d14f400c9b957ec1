package store

import (
	"encoding/binary"
	"fmt"

	"github.com/mkhailov/go-storage-sync/internal/logger"
	bolt "go.etcd.io/bbolt"
)

// Bucket and key layout of the client state database.
var (
	bucketSyncState = []byte("sync_state")

	keyManifestVersion = []byte("manifest_version")
	keyStorageKey      = []byte("storage_key")
	keyStorageKeySalt  = []byte("storage_key_salt")
	keyRegistered      = []byte("registered")
)

// stateStore is the bbolt-backed implementation of [StateStore].
//
// It holds the handful of durable values the sync engine needs between
// runs: the last accepted manifest version, the storage key material and
// the registration flag. bbolt gives us fsync-backed single-file storage
// without dragging the record database into sync bookkeeping.
type stateStore struct {
	db     *bolt.DB
	logger *logger.Logger
}

// NewStateStore opens the client state database at path, creating the
// file and its buckets when missing.
func NewStateStore(path string, log *logger.Logger) (StateStore, error) {
	db, err := bolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, fmt.Errorf("opening state db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketSyncState)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initializing state db: %w", err)
	}

	log.Debug().Str("path", path).Msg("client state store opened")

	return &stateStore{db: db, logger: log}, nil
}

// ManifestVersion returns the last accepted manifest version, 0 when the
// client has never completed a sync.
func (s *stateStore) ManifestVersion() (uint64, error) {
	var version uint64

	err := s.db.View(func(tx *bolt.Tx) error {
		raw := tx.Bucket(bucketSyncState).Get(keyManifestVersion)
		if raw == nil {
			return nil
		}
		if len(raw) != 8 {
			return fmt.Errorf("malformed manifest version of %d bytes", len(raw))
		}
		version = binary.BigEndian.Uint64(raw)
		return nil
	})
	if err != nil {
		return 0, err
	}

	return version, nil
}

// SetManifestVersion durably records version as the last accepted
// manifest version.
func (s *stateStore) SetManifestVersion(version uint64) error {
	raw := make([]byte, 8)
	binary.BigEndian.PutUint64(raw, version)

	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketSyncState).Put(keyManifestVersion, raw)
	})
}

// StorageKey returns a copy of the storage key, or ErrNoStorageKey when
// none has been stored yet.
func (s *stateStore) StorageKey() ([]byte, error) {
	var key []byte

	err := s.db.View(func(tx *bolt.Tx) error {
		raw := tx.Bucket(bucketSyncState).Get(keyStorageKey)
		if len(raw) == 0 {
			return ErrNoStorageKey
		}
		key = append([]byte(nil), raw...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return key, nil
}

func (s *stateStore) SetStorageKey(key []byte) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketSyncState).Put(keyStorageKey, key)
	})
}

// StorageKeySalt returns a copy of the stored key-derivation salt, nil
// when the storage key was generated randomly rather than derived.
func (s *stateStore) StorageKeySalt() ([]byte, error) {
	var salt []byte

	err := s.db.View(func(tx *bolt.Tx) error {
		raw := tx.Bucket(bucketSyncState).Get(keyStorageKeySalt)
		if len(raw) == 0 {
			return nil
		}
		salt = append([]byte(nil), raw...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return salt, nil
}

func (s *stateStore) SetStorageKeySalt(salt []byte) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketSyncState).Put(keyStorageKeySalt, salt)
	})
}

// Registered reports whether the client finished registering with the
// remote storage service.
func (s *stateStore) Registered() (bool, error) {
	var registered bool

	err := s.db.View(func(tx *bolt.Tx) error {
		raw := tx.Bucket(bucketSyncState).Get(keyRegistered)
		registered = len(raw) == 1 && raw[0] == 1
		return nil
	})
	if err != nil {
		return false, err
	}

	return registered, nil
}

func (s *stateStore) SetRegistered(v bool) error {
	raw := []byte{0}
	if v {
		raw[0] = 1
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketSyncState).Put(keyRegistered, raw)
	})
}

// Close closes the underlying bbolt database.
func (s *stateStore) Close() error {
	return s.db.Close()
}
