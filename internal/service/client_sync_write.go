package service

import (
	"context"
	"fmt"

	"github.com/mkhailov/go-storage-sync/internal/crypto"
	"github.com/mkhailov/go-storage-sync/internal/store"
	"github.com/mkhailov/go-storage-sync/models"
)

// createWriteOperation assembles the push that follows a merge: the next
// manifest (base version + 1 over the post-merge local IDs) plus every
// record the processors staged for upload and every ID they staged for
// deletion.
func createWriteOperation(baseVersion uint64, postMergeIDs []models.StorageID, results ...processResult) models.WriteOperation {
	op := models.WriteOperation{
		Manifest: models.Manifest{Version: baseVersion + 1, IDs: postMergeIDs},
	}

	for _, res := range results {
		if res.isLocalOnly() {
			continue
		}
		for _, upd := range res.remoteUpdates {
			op.Inserts = append(op.Inserts, upd.New)
			op.Deletes = append(op.Deletes, upd.Old.ID())
		}
		op.Deletes = append(op.Deletes, res.remoteDeletes...)
	}

	return op
}

// localWriteResult pairs the push built from dirty local rows with the
// bookkeeping to apply once that push succeeds. Nothing here touches the
// database until the server accepts the write.
type localWriteResult struct {
	write models.WriteOperation

	// rotations maps recipient rows to the IDs this push assigned them.
	rotations map[int64]models.StorageID

	// account is the account row as it must be saved after the push, or
	// nil when the account contributed nothing.
	account *models.AccountSettings

	// clearRowIDs are rows whose dirty flags clear after the push.
	clearRowIDs []int64

	// deleteRowIDs are locally deleted rows to drop after the push.
	deleteRowIDs []int64
}

// buildLocalWrite turns pending local changes into one write operation
// against the current local manifest version. Updated rows rotate to
// fresh IDs (old deleted, new inserted); inserted rows keep an already
// assigned ID or get a fresh one; deleted rows drop their ID from the
// manifest. Returns nil when nothing is pending.
func buildLocalWrite(
	localVersion uint64,
	currentIDs []models.StorageID,
	pendingUpdates, pendingInserts, pendingDeletes []models.Recipient,
	account models.AccountSettings,
	ids crypto.IDGenerator,
) (*localWriteResult, error) {
	res := &localWriteResult{rotations: make(map[int64]models.StorageID)}

	removed := make(map[models.StorageID]struct{})
	var added []models.StorageID

	for _, row := range pendingInserts {
		if row.StorageID.IsZero() {
			id, err := ids.NewID(row.Kind)
			if err != nil {
				return nil, err
			}
			row.StorageID = id
			res.rotations[row.RowID] = id
			added = append(added, id)
		}

		record, err := recipientToRecord(row)
		if err != nil {
			return nil, err
		}
		res.write.Inserts = append(res.write.Inserts, record)
		res.clearRowIDs = append(res.clearRowIDs, row.RowID)
	}

	for _, row := range pendingUpdates {
		oldID := row.StorageID
		newID, err := ids.NewID(row.Kind)
		if err != nil {
			return nil, err
		}
		row.StorageID = newID

		record, err := recipientToRecord(row)
		if err != nil {
			return nil, err
		}
		res.write.Inserts = append(res.write.Inserts, record)
		res.rotations[row.RowID] = newID
		res.clearRowIDs = append(res.clearRowIDs, row.RowID)
		added = append(added, newID)

		if !oldID.IsZero() {
			res.write.Deletes = append(res.write.Deletes, oldID)
			removed[oldID] = struct{}{}
		}
	}

	for _, row := range pendingDeletes {
		res.deleteRowIDs = append(res.deleteRowIDs, row.RowID)
		if !row.StorageID.IsZero() {
			res.write.Deletes = append(res.write.Deletes, row.StorageID)
			removed[row.StorageID] = struct{}{}
		}
	}

	if account.Dirty == models.DirtyPendingInsert || account.Dirty == models.DirtyPendingUpdate {
		oldID := account.StorageID
		newID, err := ids.NewID(models.RecordTypeAccount)
		if err != nil {
			return nil, err
		}

		if !oldID.IsZero() {
			res.write.Deletes = append(res.write.Deletes, oldID)
			removed[oldID] = struct{}{}
		}

		account.StorageID = newID
		account.Dirty = models.DirtyClean
		res.write.Inserts = append(res.write.Inserts, models.RecordForAccount(accountFromSettings(account)))
		added = append(added, newID)
		res.account = &account
	}

	if res.write.IsEmpty() {
		return nil, nil
	}

	manifestIDs := make([]models.StorageID, 0, len(currentIDs)+len(added))
	for _, id := range currentIDs {
		if _, gone := removed[id]; !gone {
			manifestIDs = append(manifestIDs, id)
		}
	}
	manifestIDs = append(manifestIDs, added...)

	res.write.Manifest = models.Manifest{Version: localVersion + 1, IDs: manifestIDs}
	return res, nil
}

// buildLocalRecords materialises the records behind ids from the local
// database. Every ID must be backed by something local: the manifest
// listing an ID nobody holds means local bookkeeping is corrupt, which
// is fatal rather than recoverable.
func buildLocalRecords(ctx context.Context, q store.LocalQueries, ids []models.StorageID, self models.AccountSettings) ([]models.StorageRecord, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var recipientIDs, unknownIDs []models.StorageID
	var records []models.StorageRecord

	for _, id := range ids {
		switch id.Type {
		case models.RecordTypeContact, models.RecordTypeGroupV1, models.RecordTypeGroupV2:
			recipientIDs = append(recipientIDs, id)
		case models.RecordTypeAccount:
			if id != self.StorageID {
				return nil, fmt.Errorf("%w: building %s, self holds %s", ErrSelfIDMismatch, id, self.StorageID)
			}
			records = append(records, models.RecordForAccount(accountFromSettings(self)))
		default:
			unknownIDs = append(unknownIDs, id)
		}
	}

	if len(recipientIDs) > 0 {
		rows, err := q.RecipientsByStorageIDs(ctx, recipientIDs)
		if err != nil {
			return nil, err
		}
		for _, id := range recipientIDs {
			row, ok := rows[id]
			if !ok {
				return nil, fmt.Errorf("%w: %s", ErrMissingRecipientModel, id)
			}
			record, err := recipientToRecord(row)
			if err != nil {
				return nil, err
			}
			records = append(records, record)
		}
	}

	if len(unknownIDs) > 0 {
		recs, err := q.UnknownRecordsByIDs(ctx, unknownIDs)
		if err != nil {
			return nil, err
		}
		if len(recs) != len(unknownIDs) {
			return nil, fmt.Errorf("%w: found %d of %d", ErrMissingUnknownRecord, len(recs), len(unknownIDs))
		}
		for _, u := range recs {
			records = append(records, models.RecordForUnknown(u))
		}
	}

	return records, nil
}
