package service

import "github.com/mkhailov/go-storage-sync/models"

// findKeyDifference diffs the remote manifest's ID set against the IDs
// the local database holds. Membership is decided by raw bytes so that
// an ID carried on both sides under different type tags is caught: such
// an ID is excluded from both result lists and flags the difference as
// type-mismatched. Raw bytes colliding inside a single side mean the
// same thing — a structurally damaged index.
//
// Result order follows input order, which keeps merge output stable.
func findKeyDifference(remoteIDs, localIDs []models.StorageID) models.KeyDifference {
	remoteByRaw := make(map[[models.StorageIDSize]byte]models.StorageID, len(remoteIDs))
	for _, id := range remoteIDs {
		if _, dup := remoteByRaw[id.Raw]; !dup {
			remoteByRaw[id.Raw] = id
		}
	}

	localByRaw := make(map[[models.StorageIDSize]byte]models.StorageID, len(localIDs))
	for _, id := range localIDs {
		if _, dup := localByRaw[id.Raw]; !dup {
			localByRaw[id.Raw] = id
		}
	}

	diff := models.KeyDifference{
		HasTypeMismatches: len(remoteByRaw) != len(remoteIDs) || len(localByRaw) != len(localIDs),
	}

	seen := make(map[[models.StorageIDSize]byte]struct{}, len(remoteIDs))
	for _, id := range remoteIDs {
		if _, done := seen[id.Raw]; done {
			continue
		}
		seen[id.Raw] = struct{}{}

		local, shared := localByRaw[id.Raw]
		switch {
		case !shared:
			diff.RemoteOnly = append(diff.RemoteOnly, id)
		case local.Type != id.Type:
			diff.HasTypeMismatches = true
		}
	}

	clear(seen)
	for _, id := range localIDs {
		if _, done := seen[id.Raw]; done {
			continue
		}
		seen[id.Raw] = struct{}{}

		remote, shared := remoteByRaw[id.Raw]
		switch {
		case !shared:
			diff.LocalOnly = append(diff.LocalOnly, id)
		case remote.Type != id.Type:
			diff.HasTypeMismatches = true
		}
	}

	return diff
}

// splitKnownIDs separates ids this client can interpret from those it
// must carry verbatim, preserving order.
func splitKnownIDs(ids []models.StorageID) (known, unknown []models.StorageID) {
	for _, id := range ids {
		if id.Type.Known() {
			known = append(known, id)
		} else {
			unknown = append(unknown, id)
		}
	}
	return known, unknown
}
