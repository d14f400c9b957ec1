package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/mkhailov/go-storage-sync/internal/crypto"
	"github.com/mkhailov/go-storage-sync/internal/store"
	"github.com/mkhailov/go-storage-sync/models"
)

// contactProcessor merges remote contact records into the recipient
// table. Semantic identity is the service address, with the phone number
// as legacy fallback. The account's own address never appears as a
// contact; remote records claiming it are server garbage.
type contactProcessor struct {
	q    store.LocalQueries
	ids  crypto.IDGenerator
	self string
}

func newContactProcessor(q store.LocalQueries, ids crypto.IDGenerator, selfServiceID string) *contactProcessor {
	return &contactProcessor{q: q, ids: ids, self: selfServiceID}
}

func (p *contactProcessor) isInvalid(_ context.Context, remote models.ContactRecord) (bool, error) {
	if remote.ServiceID == "" && remote.E164 == "" {
		return true, nil
	}
	if remote.ServiceID != "" {
		if _, err := uuid.Parse(remote.ServiceID); err != nil {
			return true, nil
		}
		if remote.ServiceID == p.self {
			return true, nil
		}
	}
	return false, nil
}

func (p *contactProcessor) getMatching(ctx context.Context, remote models.ContactRecord) (*models.ContactRecord, error) {
	rec, err := p.findRecipient(ctx, remote)
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

	record := contactFromRecipient(rec)
	return &record, nil
}

func (p *contactProcessor) findRecipient(ctx context.Context, remote models.ContactRecord) (models.Recipient, error) {
	if remote.ServiceID != "" {
		rec, err := p.q.FindContactByServiceID(ctx, remote.ServiceID)
		if err == nil || !errors.Is(err, store.ErrRecipientNotFound) {
			return rec, err
		}
	}
	if remote.E164 != "" {
		return p.q.FindContactByE164(ctx, remote.E164)
	}
	return models.Recipient{}, store.ErrRecipientNotFound
}

func (p *contactProcessor) merge(remote, local models.ContactRecord) (models.ContactRecord, error) {
	givenName, familyName := remote.GivenName, remote.FamilyName
	if givenName == "" && familyName == "" {
		givenName, familyName = local.GivenName, local.FamilyName
	}

	merged := models.ContactRecord{
		ServiceID: firstNonEmpty(remote.ServiceID, local.ServiceID),
		E164:      firstNonEmpty(remote.E164, local.E164),

		GivenName:   givenName,
		FamilyName:  familyName,
		ProfileKey:  firstNonNil(remote.ProfileKey, local.ProfileKey),
		IdentityKey: firstNonNil(remote.IdentityKey, local.IdentityKey),

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

	id, err := p.ids.NewID(models.RecordTypeContact)
	if err != nil {
		return models.ContactRecord{}, err
	}
	merged.ID = id
	return merged, nil
}

func (p *contactProcessor) insertLocal(ctx context.Context, remote models.ContactRecord) error {
	_, err := p.q.InsertRecipient(ctx, recipientFromContact(remote))
	return err
}

func (p *contactProcessor) updateLocal(ctx context.Context, local, merged models.ContactRecord) error {
	rec, err := p.q.FindRecipientByStorageID(ctx, local.ID)
	if err != nil {
		return err
	}
	applyContact(&rec, merged)
	return p.q.UpdateRecipient(ctx, rec)
}

func (p *contactProcessor) semanticKey(r models.ContactRecord) string {
	return contactSemanticKey(r)
}

// contactSemanticKey is the identity contacts deduplicate by: the
// service address when known, the phone number otherwise.
func contactSemanticKey(r models.ContactRecord) string {
	if r.ServiceID != "" {
		return "aci:" + r.ServiceID
	}
	return "e164:" + r.E164
}

func (p *contactProcessor) wrap(r models.ContactRecord) models.StorageRecord {
	return models.RecordForContact(r)
}
