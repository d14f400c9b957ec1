package service

import (
	"context"
	"errors"

	"github.com/mkhailov/go-storage-sync/internal/crypto"
	"github.com/mkhailov/go-storage-sync/internal/store"
	"github.com/mkhailov/go-storage-sync/models"
)

// groupV2Processor merges remote group records keyed by master key.
type groupV2Processor struct {
	q   store.LocalQueries
	ids crypto.IDGenerator
}

func newGroupV2Processor(q store.LocalQueries, ids crypto.IDGenerator) *groupV2Processor {
	return &groupV2Processor{q: q, ids: ids}
}

func (p *groupV2Processor) isInvalid(_ context.Context, remote models.GroupV2Record) (bool, error) {
	return len(remote.MasterKey) != models.GroupMasterKeySize, nil
}

func (p *groupV2Processor) getMatching(ctx context.Context, remote models.GroupV2Record) (*models.GroupV2Record, error) {
	rec, err := p.q.FindGroupV2ByMasterKey(ctx, remote.MasterKey)
	if errors.Is(err, store.ErrRecipientNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	rec, err = ensureStorageID(ctx, p.q, p.ids, rec)
	if err != nil {
		return nil, err
	}

	record := groupV2FromRecipient(rec)
	return &record, nil
}

func (p *groupV2Processor) merge(remote, local models.GroupV2Record) (models.GroupV2Record, error) {
	merged := models.GroupV2Record{
		MasterKey: remote.MasterKey,

		Blocked:        remote.Blocked || local.Blocked,
		ProfileSharing: remote.ProfileSharing || local.ProfileSharing,
		Archived:       remote.Archived || local.Archived,
		ForcedUnread:   remote.ForcedUnread || local.ForcedUnread,
		MuteUntil:      maxMute(remote.MuteUntil, local.MuteUntil),

		UnknownFields: remote.UnknownFields,
	}

	switch {
	case merged.Equal(remote):
		return remote, nil
	case merged.Equal(local):
		return local, nil
	}

	id, err := p.ids.NewID(models.RecordTypeGroupV2)
	if err != nil {
		return models.GroupV2Record{}, err
	}
	merged.ID = id
	return merged, nil
}

func (p *groupV2Processor) insertLocal(ctx context.Context, remote models.GroupV2Record) error {
	_, err := p.q.InsertRecipient(ctx, recipientFromGroupV2(remote))
	return err
}

func (p *groupV2Processor) updateLocal(ctx context.Context, local, merged models.GroupV2Record) error {
	rec, err := p.q.FindRecipientByStorageID(ctx, local.ID)
	if err != nil {
		return err
	}
	applyGroupV2(&rec, merged)
	return p.q.UpdateRecipient(ctx, rec)
}

func (p *groupV2Processor) semanticKey(r models.GroupV2Record) string {
	return string(r.MasterKey)
}

func (p *groupV2Processor) wrap(r models.GroupV2Record) models.StorageRecord {
	return models.RecordForGroupV2(r)
}
