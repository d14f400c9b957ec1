package crypto

import (
	"crypto/rand"
	"io"

	"github.com/mkhailov/go-storage-sync/models"
)

// randomIDGenerator is the production [IDGenerator]: fresh CSPRNG bytes
// for every ID.
type randomIDGenerator struct{}

// NewIDGenerator constructs the production [IDGenerator].
func NewIDGenerator() IDGenerator {
	return randomIDGenerator{}
}

// NewID implements [IDGenerator].
func (randomIDGenerator) NewID(t models.RecordType) (models.StorageID, error) {
	raw := make([]byte, models.StorageIDSize)
	if _, err := io.ReadFull(rand.Reader, raw); err != nil {
		return models.StorageID{}, err
	}
	return models.NewStorageID(t, raw)
}
