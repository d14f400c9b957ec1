package service

import (
	"context"
	"fmt"

	"github.com/mkhailov/go-storage-sync/internal/crypto"
	"github.com/mkhailov/go-storage-sync/internal/store"
	"github.com/mkhailov/go-storage-sync/models"
)

// Projections between local rows and the record form they sync as.
// Rows are authoritative locally; records are what the wire carries.

func contactFromRecipient(rec models.Recipient) models.ContactRecord {
	return models.ContactRecord{
		ID:             rec.StorageID,
		ServiceID:      rec.ServiceID,
		E164:           rec.E164,
		GivenName:      rec.GivenName,
		FamilyName:     rec.FamilyName,
		ProfileKey:     rec.ProfileKey,
		IdentityKey:    rec.IdentityKey,
		Blocked:        rec.Blocked,
		ProfileSharing: rec.ProfileSharing,
		Archived:       rec.Archived,
		ForcedUnread:   rec.ForcedUnread,
		MuteUntil:      rec.MuteUntil,
		UnknownFields:  rec.UnknownFields,
	}
}

func groupV1FromRecipient(rec models.Recipient) models.GroupV1Record {
	return models.GroupV1Record{
		ID:             rec.StorageID,
		GroupID:        rec.GroupID,
		Blocked:        rec.Blocked,
		ProfileSharing: rec.ProfileSharing,
		Archived:       rec.Archived,
		ForcedUnread:   rec.ForcedUnread,
		MuteUntil:      rec.MuteUntil,
		UnknownFields:  rec.UnknownFields,
	}
}

func groupV2FromRecipient(rec models.Recipient) models.GroupV2Record {
	return models.GroupV2Record{
		ID:             rec.StorageID,
		MasterKey:      rec.MasterKey,
		Blocked:        rec.Blocked,
		ProfileSharing: rec.ProfileSharing,
		Archived:       rec.Archived,
		ForcedUnread:   rec.ForcedUnread,
		MuteUntil:      rec.MuteUntil,
		UnknownFields:  rec.UnknownFields,
	}
}

func accountFromSettings(acc models.AccountSettings) models.AccountRecord {
	return models.AccountRecord{
		ID:                     acc.StorageID,
		GivenName:              acc.GivenName,
		FamilyName:             acc.FamilyName,
		AvatarURLPath:          acc.AvatarURLPath,
		NoteToSelfArchived:     acc.NoteToSelfArchived,
		ReadReceipts:           acc.ReadReceipts,
		TypingIndicators:       acc.TypingIndicators,
		SealedSenderIndicators: acc.SealedSenderIndicators,
		LinkPreviews:           acc.LinkPreviews,
		UnknownFields:          acc.UnknownFields,
	}
}

// applyContact overwrites the row with the record's content and adopts
// the record's ID. Remote-won merges leave the row clean.
func applyContact(rec *models.Recipient, c models.ContactRecord) {
	rec.ServiceID = c.ServiceID
	rec.E164 = c.E164
	rec.GivenName = c.GivenName
	rec.FamilyName = c.FamilyName
	rec.ProfileKey = c.ProfileKey
	rec.IdentityKey = c.IdentityKey
	rec.Blocked = c.Blocked
	rec.ProfileSharing = c.ProfileSharing
	rec.Archived = c.Archived
	rec.ForcedUnread = c.ForcedUnread
	rec.MuteUntil = c.MuteUntil
	rec.UnknownFields = c.UnknownFields
	rec.StorageID = c.ID
	rec.Dirty = models.DirtyClean
}

func applyGroupV1(rec *models.Recipient, g models.GroupV1Record) {
	rec.GroupID = g.GroupID
	rec.Blocked = g.Blocked
	rec.ProfileSharing = g.ProfileSharing
	rec.Archived = g.Archived
	rec.ForcedUnread = g.ForcedUnread
	rec.MuteUntil = g.MuteUntil
	rec.UnknownFields = g.UnknownFields
	rec.StorageID = g.ID
	rec.Dirty = models.DirtyClean
}

func applyGroupV2(rec *models.Recipient, g models.GroupV2Record) {
	rec.MasterKey = g.MasterKey
	rec.Blocked = g.Blocked
	rec.ProfileSharing = g.ProfileSharing
	rec.Archived = g.Archived
	rec.ForcedUnread = g.ForcedUnread
	rec.MuteUntil = g.MuteUntil
	rec.UnknownFields = g.UnknownFields
	rec.StorageID = g.ID
	rec.Dirty = models.DirtyClean
}

func applyAccount(acc *models.AccountSettings, a models.AccountRecord) {
	acc.GivenName = a.GivenName
	acc.FamilyName = a.FamilyName
	acc.AvatarURLPath = a.AvatarURLPath
	acc.NoteToSelfArchived = a.NoteToSelfArchived
	acc.ReadReceipts = a.ReadReceipts
	acc.TypingIndicators = a.TypingIndicators
	acc.SealedSenderIndicators = a.SealedSenderIndicators
	acc.LinkPreviews = a.LinkPreviews
	acc.UnknownFields = a.UnknownFields
	acc.StorageID = a.ID
	acc.Dirty = models.DirtyClean
}

func recipientFromContact(c models.ContactRecord) models.Recipient {
	rec := models.Recipient{Kind: models.RecordTypeContact}
	applyContact(&rec, c)
	return rec
}

func recipientFromGroupV1(g models.GroupV1Record) models.Recipient {
	rec := models.Recipient{Kind: models.RecordTypeGroupV1}
	applyGroupV1(&rec, g)
	return rec
}

func recipientFromGroupV2(g models.GroupV2Record) models.Recipient {
	rec := models.Recipient{Kind: models.RecordTypeGroupV2}
	applyGroupV2(&rec, g)
	return rec
}

// recipientToRecord projects a local row into the record form it is
// pushed as. A group row without its master key cannot be represented
// remotely and fails with ErrMissingGroupMasterKey.
func recipientToRecord(rec models.Recipient) (models.StorageRecord, error) {
	switch rec.Kind {
	case models.RecordTypeContact:
		return models.RecordForContact(contactFromRecipient(rec)), nil
	case models.RecordTypeGroupV1:
		return models.RecordForGroupV1(groupV1FromRecipient(rec)), nil
	case models.RecordTypeGroupV2:
		if len(rec.MasterKey) != models.GroupMasterKeySize {
			return models.StorageRecord{}, fmt.Errorf("%w: recipient %d", ErrMissingGroupMasterKey, rec.RowID)
		}
		return models.RecordForGroupV2(groupV2FromRecipient(rec)), nil
	default:
		return models.StorageRecord{}, fmt.Errorf("recipient %d has unsyncable kind %s", rec.RowID, rec.Kind)
	}
}

// partitionedRecords groups a fetched batch by record kind so each
// processor receives only its own type.
type partitionedRecords struct {
	contacts []models.ContactRecord
	groupV1s []models.GroupV1Record
	groupV2s []models.GroupV2Record
	accounts []models.AccountRecord
	unknowns []models.UnknownRecord
}

func partitionRecords(recs []models.StorageRecord) partitionedRecords {
	var p partitionedRecords
	for _, rec := range recs {
		switch {
		case rec.Contact != nil:
			p.contacts = append(p.contacts, *rec.Contact)
		case rec.GroupV1 != nil:
			p.groupV1s = append(p.groupV1s, *rec.GroupV1)
		case rec.GroupV2 != nil:
			p.groupV2s = append(p.groupV2s, *rec.GroupV2)
		case rec.Account != nil:
			p.accounts = append(p.accounts, *rec.Account)
		case rec.Unknown != nil:
			p.unknowns = append(p.unknowns, *rec.Unknown)
		}
	}
	return p
}

// ensureStorageID assigns a fresh ID to a row discovered without one, so
// the row can participate in a merge.
func ensureStorageID(ctx context.Context, q store.LocalQueries, ids crypto.IDGenerator, rec models.Recipient) (models.Recipient, error) {
	if !rec.StorageID.IsZero() {
		return rec, nil
	}

	id, err := ids.NewID(rec.Kind)
	if err != nil {
		return models.Recipient{}, err
	}
	if err := q.UpdateStorageIDs(ctx, map[int64]models.StorageID{rec.RowID: id}); err != nil {
		return models.Recipient{}, err
	}

	rec.StorageID = id
	return rec, nil
}
