package service

import (
	"fmt"

	"github.com/mkhailov/go-storage-sync/models"
)

// validateWriteOperation runs the invariant checks every push must pass
// before it reaches the wire. A violation is a logic bug in the caller,
// never remote input to tolerate, so each one wraps
// ErrInvalidWriteOperation and aborts the cycle.
//
// previous is the manifest the write was built against, when the caller
// holds one. With a force-push already pending the sequence checks are
// relaxed: the cycle is only producing a best-effort write ahead of the
// full rewrite.
func validateWriteOperation(op models.WriteOperation, previous *models.Manifest, selfServiceID string, forcePushPending bool) error {
	manifestSet := make(map[models.StorageID]struct{}, len(op.Manifest.IDs))
	rawSet := make(map[[models.StorageIDSize]byte]struct{}, len(op.Manifest.IDs))
	for _, id := range op.Manifest.IDs {
		if _, dup := manifestSet[id]; dup {
			return fmt.Errorf("%w: manifest lists %s twice", ErrInvalidWriteOperation, id)
		}
		manifestSet[id] = struct{}{}

		if _, dup := rawSet[id.Raw]; dup {
			return fmt.Errorf("%w: manifest IDs share raw bytes", ErrInvalidWriteOperation)
		}
		rawSet[id.Raw] = struct{}{}
	}

	insertIDs := make(map[models.StorageID]struct{}, len(op.Inserts))
	contactKeys := make(map[string]struct{})
	groupV1Keys := make(map[string]struct{})
	groupV2Keys := make(map[string]struct{})
	accountInserts := 0

	for _, rec := range op.Inserts {
		if !rec.IsValidUnion() {
			return fmt.Errorf("%w: insert is not a valid record union", ErrInvalidWriteOperation)
		}

		id := rec.ID()
		if id.IsZero() {
			return fmt.Errorf("%w: insert carries no storage ID", ErrInvalidWriteOperation)
		}
		if _, dup := insertIDs[id]; dup {
			return fmt.Errorf("%w: %s inserted twice", ErrInvalidWriteOperation, id)
		}
		insertIDs[id] = struct{}{}

		if _, listed := manifestSet[id]; !listed {
			return fmt.Errorf("%w: insert %s missing from manifest", ErrInvalidWriteOperation, id)
		}

		switch {
		case rec.Contact != nil:
			if rec.Contact.ServiceID != "" && rec.Contact.ServiceID == selfServiceID {
				return fmt.Errorf("%w: self uploaded as a contact", ErrInvalidWriteOperation)
			}
			key := contactSemanticKey(*rec.Contact)
			if _, dup := contactKeys[key]; dup {
				return fmt.Errorf("%w: two contact inserts share identity %q", ErrInvalidWriteOperation, key)
			}
			contactKeys[key] = struct{}{}

		case rec.GroupV1 != nil:
			key := string(rec.GroupV1.GroupID)
			if _, dup := groupV1Keys[key]; dup {
				return fmt.Errorf("%w: two legacy group inserts share a group ID", ErrInvalidWriteOperation)
			}
			groupV1Keys[key] = struct{}{}

		case rec.GroupV2 != nil:
			key := string(rec.GroupV2.MasterKey)
			if _, dup := groupV2Keys[key]; dup {
				return fmt.Errorf("%w: two group inserts share a master key", ErrInvalidWriteOperation)
			}
			groupV2Keys[key] = struct{}{}

		case rec.Account != nil:
			accountInserts++
			if accountInserts > 1 {
				return fmt.Errorf("%w: more than one account record inserted", ErrInvalidWriteOperation)
			}
		}
	}

	for _, id := range op.Deletes {
		if _, inserted := insertIDs[id]; inserted {
			return fmt.Errorf("%w: %s both inserted and deleted", ErrInvalidWriteOperation, id)
		}
		if _, listed := manifestSet[id]; listed {
			return fmt.Errorf("%w: deleted %s still listed in manifest", ErrInvalidWriteOperation, id)
		}
	}

	if previous != nil && !forcePushPending {
		if op.Manifest.Version != previous.Version+1 {
			return fmt.Errorf("%w: manifest version %d does not follow %d", ErrInvalidWriteOperation, op.Manifest.Version, previous.Version)
		}

		prevSet := previous.IDSet()
		for _, id := range op.Manifest.IDs {
			if _, held := prevSet[id]; held {
				continue
			}
			if _, inserted := insertIDs[id]; !inserted {
				return fmt.Errorf("%w: manifest lists %s which is neither held nor inserted", ErrInvalidWriteOperation, id)
			}
		}
	}

	return nil
}
