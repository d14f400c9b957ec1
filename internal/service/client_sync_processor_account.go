package service

import (
	"context"
	"errors"

	"github.com/mkhailov/go-storage-sync/internal/crypto"
	"github.com/mkhailov/go-storage-sync/internal/store"
	"github.com/mkhailov/go-storage-sync/models"
)

// accountProcessor merges remote account records into the singleton
// account-settings row. Every account record describes the same entity
// (self), so any record after the first in a batch is a duplicate the
// server should drop.
type accountProcessor struct {
	q    store.LocalQueries
	ids  crypto.IDGenerator
	self models.AccountSettings
}

func newAccountProcessor(q store.LocalQueries, ids crypto.IDGenerator, self models.AccountSettings) *accountProcessor {
	return &accountProcessor{q: q, ids: ids, self: self}
}

func (p *accountProcessor) isInvalid(_ context.Context, _ models.AccountRecord) (bool, error) {
	return false, nil
}

// getMatching always finds self. A self row that has never been assigned
// a storage ID gets one here so the merge has something to compare.
func (p *accountProcessor) getMatching(ctx context.Context, _ models.AccountRecord) (*models.AccountRecord, error) {
	if p.self.StorageID.IsZero() {
		id, err := p.ids.NewID(models.RecordTypeAccount)
		if err != nil {
			return nil, err
		}
		p.self.StorageID = id
		if err := p.q.SaveAccount(ctx, p.self); err != nil {
			return nil, err
		}
	}

	record := accountFromSettings(p.self)
	return &record, nil
}

func (p *accountProcessor) merge(remote, local models.AccountRecord) (models.AccountRecord, error) {
	givenName, familyName := remote.GivenName, remote.FamilyName
	if givenName == "" && familyName == "" {
		givenName, familyName = local.GivenName, local.FamilyName
	}

	merged := models.AccountRecord{
		GivenName:     givenName,
		FamilyName:    familyName,
		AvatarURLPath: firstNonEmpty(remote.AvatarURLPath, local.AvatarURLPath),

		NoteToSelfArchived:     remote.NoteToSelfArchived || local.NoteToSelfArchived,
		ReadReceipts:           remote.ReadReceipts,
		TypingIndicators:       remote.TypingIndicators,
		SealedSenderIndicators: remote.SealedSenderIndicators,
		LinkPreviews:           remote.LinkPreviews,

		UnknownFields: remote.UnknownFields,
	}

	switch {
	case merged.Equal(remote):
		return remote, nil
	case merged.Equal(local):
		return local, nil
	}

	id, err := p.ids.NewID(models.RecordTypeAccount)
	if err != nil {
		return models.AccountRecord{}, err
	}
	merged.ID = id
	return merged, nil
}

func (p *accountProcessor) insertLocal(_ context.Context, _ models.AccountRecord) error {
	return errors.New("account record always has a local match, insert is unreachable")
}

func (p *accountProcessor) updateLocal(ctx context.Context, _, merged models.AccountRecord) error {
	applyAccount(&p.self, merged)
	return p.q.SaveAccount(ctx, p.self)
}

func (p *accountProcessor) semanticKey(_ models.AccountRecord) string {
	return "account:self"
}

func (p *accountProcessor) wrap(r models.AccountRecord) models.StorageRecord {
	return models.RecordForAccount(r)
}
