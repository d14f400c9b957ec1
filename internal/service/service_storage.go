package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/mkhailov/go-storage-sync/internal/logger"
	"github.com/mkhailov/go-storage-sync/internal/store"
	"github.com/mkhailov/go-storage-sync/models"
)

// storageService implements StorageService over a ManifestStore. Record
// payloads are opaque ciphertext here: the service enforces request
// shape and per-account scoping, the store enforces the compare-and-set
// contract.
type storageService struct {
	manifests store.ManifestStore
	logger    *logger.Logger
}

func NewStorageService(manifests store.ManifestStore, logger *logger.Logger) StorageService {
	return &storageService{manifests: manifests, logger: logger}
}

func (s *storageService) GetManifest(ctx context.Context, accountID int64) (models.Manifest, error) {
	return s.manifests.GetManifest(ctx, accountID)
}

func (s *storageService) GetManifestIfDifferent(ctx context.Context, accountID int64, knownVersion uint64) (*models.Manifest, error) {
	return s.manifests.GetManifestIfDifferent(ctx, accountID, knownVersion)
}

// ReadRecords returns the stored items behind ids in request order. IDs
// the account does not hold are omitted, never errored: a client may
// legitimately ask for records another device has already replaced.
func (s *storageService) ReadRecords(ctx context.Context, accountID int64, ids []models.StorageID) ([]models.WireItem, error) {
	log := logger.FromContext(ctx)

	if len(ids) == 0 {
		return nil, ErrInvalidDataProvided
	}

	raws := make([][]byte, 0, len(ids))
	for _, id := range ids {
		raws = append(raws, id.RawBytes())
	}

	payloads, err := s.manifests.ReadRecords(ctx, accountID, raws)
	if err != nil {
		log.Err(err).Int64("accountID", accountID).Msg("record read failed")
		return nil, fmt.Errorf("record read failed: %w", err)
	}

	items := make([]models.WireItem, 0, len(payloads))
	for _, id := range ids {
		payload, ok := payloads[string(id.RawBytes())]
		if !ok {
			continue
		}
		items = append(items, models.WireItem{ID: models.WireIDFromStorageID(id), Payload: payload})
	}

	return items, nil
}

// WriteRecords applies one compare-and-set push. Structural problems are
// rejected as ErrInvalidDataProvided before touching the store; a stale
// base version comes back as the current manifest plus
// store.ErrVersionConflict, which handlers translate to 409.
func (s *storageService) WriteRecords(ctx context.Context, accountID int64, write models.WriteRecordsRequest) (*models.Manifest, error) {
	log := logger.FromContext(ctx)

	manifest, err := write.Manifest.Manifest()
	if err != nil {
		log.Err(err).Int64("accountID", accountID).Msg("write carries a malformed manifest")
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	if manifest.Version == 0 {
		return nil, fmt.Errorf("%w: manifest version must be positive", ErrInvalidDataProvided)
	}
	if len(write.Inserts) == 0 && len(write.Deletes) == 0 {
		return nil, fmt.Errorf("%w: empty write operation", ErrInvalidDataProvided)
	}
	for _, item := range write.Inserts {
		if _, err := item.ID.StorageID(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
		}
		if len(item.Payload) == 0 {
			return nil, fmt.Errorf("%w: insert with empty payload", ErrInvalidDataProvided)
		}
	}
	for _, raw := range write.Deletes {
		if len(raw) != models.StorageIDSize {
			return nil, fmt.Errorf("%w: delete id has %d bytes", ErrInvalidDataProvided, len(raw))
		}
	}

	current, err := s.manifests.WriteRecords(ctx, accountID, manifest, write.Inserts, write.Deletes)
	if err != nil {
		if errors.Is(err, store.ErrVersionConflict) {
			return current, err
		}
		log.Err(err).Int64("accountID", accountID).Uint64("version", manifest.Version).Msg("storage write failed")
		return nil, fmt.Errorf("storage write failed: %w", err)
	}

	return nil, nil
}
