package service

import (
	"context"

	"github.com/mkhailov/go-storage-sync/internal/logger"
	"github.com/mkhailov/go-storage-sync/models"
)

// recordProcessor is the per-type merge contract. One instance serves
// one sync cycle and runs entirely inside that cycle's local
// transaction; it never touches the network.
type recordProcessor[R any] interface {
	// isInvalid reports whether the remote record is garbage this
	// client should delete from the server rather than merge.
	isInvalid(ctx context.Context, remote R) (bool, error)

	// getMatching finds the local view of the same entity by semantic
	// key, re-projected into record form so the two are comparable.
	// Returns nil when the entity is new to this client.
	getMatching(ctx context.Context, remote R) (*R, error)

	// merge resolves a remote and a local view of one entity. The
	// result is remote itself when nothing local survives, local itself
	// when the remote adds nothing, or a new record under a fresh
	// storage ID combining both.
	merge(remote, local R) (R, error)

	// insertLocal stores a remote record for an entity this client has
	// never seen.
	insertLocal(ctx context.Context, remote R) error

	// updateLocal replaces the local view with the merge result,
	// rotating the row's storage ID to merged's.
	updateLocal(ctx context.Context, local, merged R) error

	// semanticKey returns the identity string the entity is
	// deduplicated by.
	semanticKey(r R) string

	// wrap boxes the concrete record into the transport union.
	wrap(r R) models.StorageRecord
}

// processResult accumulates what one processor run decided must change
// on the server: merged records to upload and stale or invalid remote
// records to drop.
type processResult struct {
	remoteUpdates []models.StorageRecordUpdate
	remoteDeletes []models.StorageID
}

// isLocalOnly reports that the run produced no remote work: everything
// the batch carried either matched local state or only changed this side.
func (r processResult) isLocalOnly() bool {
	return len(r.remoteUpdates) == 0 && len(r.remoteDeletes) == 0
}

// processRecords folds a batch of remote records of one type into the
// local database.
//
// Per remote record: invalid records are staged for remote deletion;
// records with no local match are inserted locally; the rest are merged.
// When two remote records map to the same local entity the first one
// wins and the second is staged for deletion. A merge that produced new
// information for the server side becomes a remote update (insert new
// ID, delete old); one that produced new information for the local side
// is applied through updateLocal.
func processRecords[R any](ctx context.Context, p recordProcessor[R], remotes []R) (processResult, error) {
	log := logger.FromContext(ctx)

	var res processResult
	matched := make(map[string]struct{}, len(remotes))

	for _, remote := range remotes {
		invalid, err := p.isInvalid(ctx, remote)
		if err != nil {
			return processResult{}, err
		}
		if invalid {
			log.Warn().Stringer("id", p.wrap(remote).ID()).Msg("invalid remote record, staging delete")
			res.remoteDeletes = append(res.remoteDeletes, p.wrap(remote).ID())
			continue
		}

		local, err := p.getMatching(ctx, remote)
		if err != nil {
			return processResult{}, err
		}
		if local == nil {
			if err := p.insertLocal(ctx, remote); err != nil {
				return processResult{}, err
			}
			continue
		}

		if _, dupe := matched[p.semanticKey(*local)]; dupe {
			log.Warn().Stringer("id", p.wrap(remote).ID()).Msg("second remote record for one local entity, staging delete")
			res.remoteDeletes = append(res.remoteDeletes, p.wrap(remote).ID())
			continue
		}
		matched[p.semanticKey(*local)] = struct{}{}

		merged, err := p.merge(remote, *local)
		if err != nil {
			return processResult{}, err
		}

		wrappedMerged := p.wrap(merged)
		if !wrappedMerged.Equal(p.wrap(remote)) {
			res.remoteUpdates = append(res.remoteUpdates, models.StorageRecordUpdate{
				Old: p.wrap(remote),
				New: wrappedMerged,
			})
		}
		if !wrappedMerged.Equal(p.wrap(*local)) {
			if err := p.updateLocal(ctx, *local, merged); err != nil {
				return processResult{}, err
			}
		}
	}

	return res, nil
}

// maxMute is the shared merge rule for mute deadlines: the later one wins.
func maxMute(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}

// firstNonEmpty prefers the remote value and falls back to the local one.
func firstNonEmpty(remote, local string) string {
	if remote != "" {
		return remote
	}
	return local
}

// firstNonNil prefers the remote value and falls back to the local one.
func firstNonNil(remote, local []byte) []byte {
	if len(remote) > 0 {
		return remote
	}
	return local
}
