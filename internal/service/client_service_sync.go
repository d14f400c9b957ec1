package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/mkhailov/go-storage-sync/internal/adapter"
	"github.com/mkhailov/go-storage-sync/internal/crypto"
	"github.com/mkhailov/go-storage-sync/internal/logger"
	"github.com/mkhailov/go-storage-sync/internal/store"
	"github.com/mkhailov/go-storage-sync/models"
)

// syncEngine is the concrete SyncEngine. One Sync call is one
// reconciliation cycle: adopt what other devices wrote, then push what
// changed here. All remote I/O happens strictly outside the local
// database transaction; the local manifest version only advances after
// the server accepted the corresponding write, so an interrupted cycle
// repeats itself instead of losing work.
type syncEngine struct {
	records   store.LocalRecordStore
	state     store.StateStore
	remote    adapter.ServerAdapter
	ids       crypto.IDGenerator
	scheduler Scheduler
	logger    *logger.Logger

	// mu serialises cycles: a second caller waits, never interleaves.
	mu sync.Mutex
}

// NewSyncEngine wires the reconciliation engine to the client storages,
// the server adapter, and the follow-up job scheduler.
func NewSyncEngine(storages *store.ClientStorages, remote adapter.ServerAdapter, ids crypto.IDGenerator, scheduler Scheduler, logger *logger.Logger) SyncEngine {
	return &syncEngine{
		records:   storages.Records,
		state:     storages.State,
		remote:    remote,
		ids:       ids,
		scheduler: scheduler,
		logger:    logger,
	}
}

// Sync implements SyncEngine. Undecryptable remote state never fails the
// cycle: it means the key this client holds is stale or the remote blobs
// are damaged, and either way the fix is new key material plus a full
// rewrite, which is scheduled here and performed out of band.
func (e *syncEngine) Sync(ctx context.Context) (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	ctx = e.logger.WithContext(ctx)

	needsMultiDevice, err := e.performSync(ctx)
	switch {
	case err == nil:
		return needsMultiDevice, nil
	case errors.Is(err, crypto.ErrDecryptFailed):
		e.logger.Warn().Err(err).Str("func", "syncEngine.Sync").Msg("remote records unreadable, escalating to key rotation and force push")
		e.scheduler.ScheduleKeyRotation(ctx)
		e.scheduler.ScheduleForcePush(ctx)
		e.scheduler.ScheduleMultiDeviceSync(ctx)
		return false, nil
	default:
		return false, err
	}
}

func (e *syncEngine) performSync(ctx context.Context) (bool, error) {
	log := logger.FromContext(ctx)

	registered, err := e.state.Registered()
	if err != nil {
		return false, err
	}
	if !registered {
		log.Debug().Msg("not registered, skipping sync")
		return false, fmt.Errorf("%w: not registered", ErrSyncNotReady)
	}

	storageKey, err := e.state.StorageKey()
	if errors.Is(err, store.ErrNoStorageKey) {
		log.Debug().Msg("no storage key, skipping sync")
		return false, fmt.Errorf("%w: no storage key", ErrSyncNotReady)
	}
	if err != nil {
		return false, err
	}

	self, err := e.records.GetAccount(ctx)
	if errors.Is(err, store.ErrAccountNotFound) {
		log.Debug().Msg("account row not seeded yet, skipping sync")
		return false, fmt.Errorf("%w: no account settings", ErrSyncNotReady)
	}
	if err != nil {
		return false, err
	}

	localVersion, err := e.state.ManifestVersion()
	if err != nil {
		return false, err
	}

	remoteManifest, err := e.remote.GetManifestIfDifferent(ctx, localVersion)
	if err != nil {
		return false, mapRemoteError(err)
	}

	var (
		needsMultiDevice bool
		needsForcePush   bool
	)

	if remoteManifest != nil && remoteManifest.Version > localVersion {
		log.Info().
			Uint64("localVersion", localVersion).
			Uint64("remoteVersion", remoteManifest.Version).
			Msg("remote manifest is newer, merging")

		pushed, forcePush, err := e.mergeRemoteRecords(ctx, storageKey, self.ServiceID, *remoteManifest)
		if err != nil {
			return false, err
		}
		needsMultiDevice = needsMultiDevice || pushed
		needsForcePush = needsForcePush || forcePush
	}

	pushed, err := e.pushLocalChanges(ctx, storageKey, self.ServiceID)
	if err != nil {
		return false, err
	}
	needsMultiDevice = needsMultiDevice || pushed

	if needsForcePush {
		log.Warn().Msg("scheduling force push")
		e.scheduler.ScheduleForcePush(ctx)
	}

	return needsMultiDevice, nil
}

// mergeRemoteRecords adopts a newer remote manifest: it fetches the
// records this client has never seen, folds them into the local database
// inside one transaction, and pushes the merge result back. The network
// never appears between Begin and Commit.
func (e *syncEngine) mergeRemoteRecords(ctx context.Context, storageKey []byte, selfServiceID string, remote models.Manifest) (pushed, forcePush bool, err error) {
	log := logger.FromContext(ctx)

	localIDs, err := e.records.AllStorageIDs(ctx)
	if err != nil {
		return false, false, err
	}

	diff := findKeyDifference(remote.IDs, localIDs)
	if diff.HasTypeMismatches {
		log.Warn().Msg("manifest diff found colliding raw IDs, force push needed")
		forcePush = true
	}

	if diff.IsEmpty() {
		log.Info().Uint64("version", remote.Version).Msg("ID sets already match, adopting remote version")
		return false, forcePush, e.state.SetManifestVersion(remote.Version)
	}

	log.Info().
		Int("remoteOnly", len(diff.RemoteOnly)).
		Int("localOnly", len(diff.LocalOnly)).
		Msg("manifests diverge")

	remoteRecords, err := e.remote.ReadRecords(ctx, storageKey, diff.RemoteOnly)
	if err != nil {
		return false, forcePush, mapRemoteError(err)
	}
	if len(remoteRecords) != len(diff.RemoteOnly) {
		log.Warn().
			Int("requested", len(diff.RemoteOnly)).
			Int("received", len(remoteRecords)).
			Msg("server omitted records it lists, force push needed")
		forcePush = true
	}

	tx, err := e.records.Begin(ctx)
	if err != nil {
		return false, forcePush, err
	}

	mergeWrite, err := e.runMergeTx(ctx, tx, remote, partitionRecords(remoteRecords), diff)
	if err != nil {
		_ = tx.Rollback()
		return false, forcePush, err
	}
	if err := tx.Commit(); err != nil {
		return false, forcePush, fmt.Errorf("%w: %w", store.ErrCommittingTransaction, err)
	}

	if mergeWrite.IsEmpty() {
		log.Info().Msg("merge produced no remote changes")
		return false, forcePush, e.state.SetManifestVersion(remote.Version)
	}

	if err := validateWriteOperation(mergeWrite, &remote, selfServiceID, forcePush); err != nil {
		return false, forcePush, err
	}

	log.Info().
		Uint64("version", mergeWrite.Manifest.Version).
		Int("inserts", len(mergeWrite.Inserts)).
		Int("deletes", len(mergeWrite.Deletes)).
		Msg("pushing merge result")

	if _, err := e.remote.WriteRecords(ctx, storageKey, mergeWrite); err != nil {
		return false, forcePush, mapRemoteError(err)
	}

	if err := e.state.SetManifestVersion(mergeWrite.Manifest.Version); err != nil {
		return false, forcePush, err
	}

	return true, forcePush, nil
}

// runMergeTx is the merge phase proper. q must be an open transaction;
// everything in here is local database work.
func (e *syncEngine) runMergeTx(ctx context.Context, q store.LocalQueries, remote models.Manifest, recs partitionedRecords, diff models.KeyDifference) (models.WriteOperation, error) {
	self, err := q.GetAccount(ctx)
	if err != nil {
		return models.WriteOperation{}, err
	}

	contactRes, err := processRecords(ctx, newContactProcessor(q, e.ids, self.ServiceID), recs.contacts)
	if err != nil {
		return models.WriteOperation{}, err
	}
	groupV1Res, err := processRecords(ctx, newGroupV1Processor(q, e.ids), recs.groupV1s)
	if err != nil {
		return models.WriteOperation{}, err
	}
	groupV2Res, err := processRecords(ctx, newGroupV2Processor(q, e.ids), recs.groupV2s)
	if err != nil {
		return models.WriteOperation{}, err
	}
	accountRes, err := processRecords(ctx, newAccountProcessor(q, e.ids, self), recs.accounts)
	if err != nil {
		return models.WriteOperation{}, err
	}

	if len(recs.unknowns) > 0 {
		if err := q.InsertUnknownRecords(ctx, recs.unknowns); err != nil {
			return models.WriteOperation{}, err
		}
	}
	if _, unknownGone := splitKnownIDs(diff.LocalOnly); len(unknownGone) > 0 {
		if err := q.DeleteUnknownRecords(ctx, unknownGone); err != nil {
			return models.WriteOperation{}, err
		}
	}

	idsAfter, err := q.AllStorageIDs(ctx)
	if err != nil {
		return models.WriteOperation{}, err
	}

	mergeWrite := createWriteOperation(remote.Version, idsAfter, contactRes, groupV1Res, groupV2Res, accountRes)

	// Whatever the processors did not account for is reconciled here:
	// local IDs the server lacks ride along as inserts, remote IDs
	// nothing claimed become deletes.
	postDiff := findKeyDifference(remote.IDs, idsAfter)

	insertIDs := make(map[models.StorageID]struct{}, len(mergeWrite.Inserts))
	for _, rec := range mergeWrite.Inserts {
		insertIDs[rec.ID()] = struct{}{}
	}
	deleteIDs := make(map[models.StorageID]struct{}, len(mergeWrite.Deletes))
	for _, id := range mergeWrite.Deletes {
		deleteIDs[id] = struct{}{}
	}

	var leftoverLocal []models.StorageID
	for _, id := range postDiff.LocalOnly {
		if _, handled := insertIDs[id]; !handled {
			leftoverLocal = append(leftoverLocal, id)
		}
	}
	if len(leftoverLocal) > 0 {
		log := logger.FromContext(ctx)
		log.Info().Int("count", len(leftoverLocal)).Msg("including unhandled local IDs as inserts")

		self, err = q.GetAccount(ctx)
		if err != nil {
			return models.WriteOperation{}, err
		}
		records, err := buildLocalRecords(ctx, q, leftoverLocal, self)
		if err != nil {
			return models.WriteOperation{}, err
		}
		mergeWrite.Inserts = append(mergeWrite.Inserts, records...)

		if err := q.ClearDirtyByStorageIDs(ctx, leftoverLocal); err != nil {
			return models.WriteOperation{}, err
		}
	}

	for _, id := range postDiff.RemoteOnly {
		if _, handled := deleteIDs[id]; !handled {
			mergeWrite.Deletes = append(mergeWrite.Deletes, id)
		}
	}

	return mergeWrite, nil
}

// pushLocalChanges is the second half of a cycle: everything the dirty
// flags accumulated since the last push goes to the server in one write.
// Local bookkeeping (dirty clears, ID rotations, row removals) is
// applied only after the server accepted it.
func (e *syncEngine) pushLocalChanges(ctx context.Context, storageKey []byte, selfServiceID string) (bool, error) {
	log := logger.FromContext(ctx)

	localVersion, err := e.state.ManifestVersion()
	if err != nil {
		return false, err
	}

	currentIDs, err := e.records.AllStorageIDs(ctx)
	if err != nil {
		return false, err
	}
	pendingUpdates, err := e.records.RecipientsPendingUpdate(ctx)
	if err != nil {
		return false, err
	}
	pendingInserts, err := e.records.RecipientsPendingInsertion(ctx)
	if err != nil {
		return false, err
	}
	pendingDeletes, err := e.records.RecipientsPendingDeletion(ctx)
	if err != nil {
		return false, err
	}
	account, err := e.records.GetAccount(ctx)
	if err != nil {
		return false, err
	}

	localWrite, err := buildLocalWrite(localVersion, currentIDs, pendingUpdates, pendingInserts, pendingDeletes, account, e.ids)
	if err != nil {
		return false, err
	}
	if localWrite == nil {
		log.Debug().Msg("no local changes to push")
		return false, nil
	}

	if err := validateWriteOperation(localWrite.write, nil, selfServiceID, false); err != nil {
		return false, err
	}

	log.Info().
		Uint64("version", localWrite.write.Manifest.Version).
		Int("inserts", len(localWrite.write.Inserts)).
		Int("deletes", len(localWrite.write.Deletes)).
		Msg("pushing local changes")

	if _, err := e.remote.WriteRecords(ctx, storageKey, localWrite.write); err != nil {
		return false, mapRemoteError(err)
	}

	if err := e.applyLocalWrite(ctx, localWrite); err != nil {
		return false, err
	}
	if err := e.state.SetManifestVersion(localWrite.write.Manifest.Version); err != nil {
		return false, err
	}

	return true, nil
}

// applyLocalWrite commits the local consequences of an accepted push.
func (e *syncEngine) applyLocalWrite(ctx context.Context, res *localWriteResult) error {
	tx, err := e.records.Begin(ctx)
	if err != nil {
		return err
	}

	if err := e.applyLocalWriteTx(ctx, tx, res); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrCommittingTransaction, err)
	}
	return nil
}

func (e *syncEngine) applyLocalWriteTx(ctx context.Context, q store.LocalQueries, res *localWriteResult) error {
	if len(res.rotations) > 0 {
		if err := q.UpdateStorageIDs(ctx, res.rotations); err != nil {
			return err
		}
	}
	if len(res.clearRowIDs) > 0 {
		if err := q.ClearDirty(ctx, res.clearRowIDs); err != nil {
			return err
		}
	}
	if len(res.deleteRowIDs) > 0 {
		if err := q.DeleteRecipients(ctx, res.deleteRowIDs); err != nil {
			return err
		}
	}
	if res.account != nil {
		if err := q.SaveAccount(ctx, *res.account); err != nil {
			return err
		}
	}
	return nil
}
