package store

import (
	"github.com/mkhailov/go-storage-sync/internal/logger"
)

// Repositories groups the server-side data-access layer into a single
// value that can be passed to the service layer.
type Repositories struct {
	AccountRepository AccountRepository
	ManifestStore     ManifestStore
}

// NewRepositories wires all server repositories to the given database
// connection.
func NewRepositories(db *DB, logger *logger.Logger) *Repositories {
	return &Repositories{
		AccountRepository: NewAccountRepository(db, logger),
		ManifestStore:     NewStorageRepository(db, logger),
	}
}
