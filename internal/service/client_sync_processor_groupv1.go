package service

import (
	"context"
	"errors"

	"github.com/mkhailov/go-storage-sync/internal/crypto"
	"github.com/mkhailov/go-storage-sync/internal/store"
	"github.com/mkhailov/go-storage-sync/models"
)

// groupV1Processor merges remote legacy-group records. A legacy group
// that already migrated to a V2 group locally is finished: remote
// records for it are stale and get deleted from the server.
type groupV1Processor struct {
	q   store.LocalQueries
	ids crypto.IDGenerator
}

func newGroupV1Processor(q store.LocalQueries, ids crypto.IDGenerator) *groupV1Processor {
	return &groupV1Processor{q: q, ids: ids}
}

func (p *groupV1Processor) isInvalid(ctx context.Context, remote models.GroupV1Record) (bool, error) {
	if len(remote.GroupID) != models.GroupV1IDSize {
		return true, nil
	}

	rec, err := p.q.FindGroupV1ByID(ctx, remote.GroupID)
	if errors.Is(err, store.ErrRecipientNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return rec.GV1Migrated, nil
}

func (p *groupV1Processor) getMatching(ctx context.Context, remote models.GroupV1Record) (*models.GroupV1Record, error) {
	rec, err := p.q.FindGroupV1ByID(ctx, remote.GroupID)
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

	record := groupV1FromRecipient(rec)
	return &record, nil
}

func (p *groupV1Processor) merge(remote, local models.GroupV1Record) (models.GroupV1Record, error) {
	merged := models.GroupV1Record{
		GroupID: remote.GroupID,

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

	id, err := p.ids.NewID(models.RecordTypeGroupV1)
	if err != nil {
		return models.GroupV1Record{}, err
	}
	merged.ID = id
	return merged, nil
}

func (p *groupV1Processor) insertLocal(ctx context.Context, remote models.GroupV1Record) error {
	_, err := p.q.InsertRecipient(ctx, recipientFromGroupV1(remote))
	return err
}

func (p *groupV1Processor) updateLocal(ctx context.Context, local, merged models.GroupV1Record) error {
	rec, err := p.q.FindRecipientByStorageID(ctx, local.ID)
	if err != nil {
		return err
	}
	applyGroupV1(&rec, merged)
	return p.q.UpdateRecipient(ctx, rec)
}

func (p *groupV1Processor) semanticKey(r models.GroupV1Record) string {
	return string(r.GroupID)
}

func (p *groupV1Processor) wrap(r models.GroupV1Record) models.StorageRecord {
	return models.RecordForGroupV1(r)
}
