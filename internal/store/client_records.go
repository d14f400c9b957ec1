// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mikhail Khailov

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3" // sqlite3 database/sql driver

	"github.com/mkhailov/go-storage-sync/internal/logger"
	"github.com/mkhailov/go-storage-sync/migrations"
	"github.com/mkhailov/go-storage-sync/models"
)

// dbtx is the subset of database/sql shared by *sql.DB and *sql.Tx, so
// every row operation below works both on the pool and inside a
// transaction.
type dbtx interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// RecordStore is the SQLite-backed client record database: recipient
// rows (contacts and groups), the singleton account row, and the
// unknown-record table. It implements [LocalRecordStore].
type RecordStore struct {
	recordQueries
	db     *sql.DB
	logger *logger.Logger
}

// NewRecordStore opens (and migrates) the client database at dsn. The
// connection pool is capped at one connection: the sync engine is a
// single writer and SQLite rewards the honesty.
func NewRecordStore(ctx context.Context, dsn string, log *logger.Logger) (*RecordStore, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open client database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err = db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("ping client database: %w", err)
	}

	if err = migrations.UpSQLite(db); err != nil {
		return nil, fmt.Errorf("migrate client database: %w", err)
	}

	log.Debug().Str("func", "NewRecordStore").Msg("client record database ready")

	return &RecordStore{
		recordQueries: recordQueries{q: db},
		db:            db,
		logger:        log,
	}, nil
}

// Begin opens a write transaction. The returned [LocalTx] exposes the
// same query surface as the store itself.
func (s *RecordStore) Begin(ctx context.Context) (LocalTx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	return &RecordTx{recordQueries: recordQueries{q: tx}, tx: tx}, nil
}

// Close closes the underlying database.
func (s *RecordStore) Close() error {
	return s.db.Close()
}

// RecordTx is one open transaction over the client record database.
type RecordTx struct {
	recordQueries
	tx *sql.Tx
}

// Commit commits the transaction.
func (t *RecordTx) Commit() error {
	if err := t.tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommittingTransaction, err)
	}
	return nil
}

// Rollback aborts the transaction. After a successful Commit it is a
// no-op error that callers may ignore.
func (t *RecordTx) Rollback() error {
	return t.tx.Rollback()
}

// recordQueries carries every row operation over a dbtx handle.
type recordQueries struct {
	q dbtx
}

// sqlite builds its placeholders with question marks.
var sqlite = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func (r recordQueries) AllStorageIDs(ctx context.Context) ([]models.StorageID, error) {
	var ids []models.StorageID

	rows, err := r.q.QueryContext(ctx, queryRecipientIDs)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()
	for rows.Next() {
		var kind uint32
		var raw []byte
		if err := rows.Scan(&kind, &raw); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		id, err := models.NewStorageID(models.RecordType(kind), raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	var accountRaw []byte
	err = r.q.QueryRowContext(ctx, queryAccountID).Scan(&accountRaw)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if len(accountRaw) == models.StorageIDSize {
		id, err := models.NewStorageID(models.RecordTypeAccount, accountRaw)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		ids = append(ids, id)
	}

	unknownRows, err := r.q.QueryContext(ctx, queryUnknownIDs)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer unknownRows.Close()
	for unknownRows.Next() {
		var raw []byte
		var rtype uint32
		if err := unknownRows.Scan(&raw, &rtype); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		id, err := models.NewStorageID(models.RecordType(rtype), raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		ids = append(ids, id)
	}
	if err := unknownRows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return ids, nil
}

func (r recordQueries) FindContactByServiceID(ctx context.Context, serviceID string) (models.Recipient, error) {
	return r.findRecipient(ctx, queryContactByServiceID, uint32(models.RecordTypeContact), serviceID)
}

func (r recordQueries) FindContactByE164(ctx context.Context, e164 string) (models.Recipient, error) {
	return r.findRecipient(ctx, queryContactByE164, uint32(models.RecordTypeContact), e164)
}

func (r recordQueries) FindGroupV1ByID(ctx context.Context, groupID []byte) (models.Recipient, error) {
	return r.findRecipient(ctx, queryGroupV1ByID, uint32(models.RecordTypeGroupV1), groupID)
}

func (r recordQueries) FindGroupV2ByMasterKey(ctx context.Context, masterKey []byte) (models.Recipient, error) {
	return r.findRecipient(ctx, queryGroupV2ByMasterKey, uint32(models.RecordTypeGroupV2), masterKey)
}

func (r recordQueries) FindRecipientByStorageID(ctx context.Context, id models.StorageID) (models.Recipient, error) {
	return r.findRecipient(ctx, queryRecipientByStorageID, id.RawBytes())
}

func (r recordQueries) findRecipient(ctx context.Context, query string, args ...any) (models.Recipient, error) {
	row := r.q.QueryRowContext(ctx, query, args...)
	rec, err := scanRecipient(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Recipient{}, ErrRecipientNotFound
	}
	if err != nil {
		return models.Recipient{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return rec, nil
}

func (r recordQueries) RecipientsByStorageIDs(ctx context.Context, ids []models.StorageID) (map[models.StorageID]models.Recipient, error) {
	out := make(map[models.StorageID]models.Recipient, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	query, args, err := sqlite.
		Select("id", "kind", "service_id", "e164", "group_id", "master_key", "storage_id_raw", "dirty",
			"given_name", "family_name", "profile_key", "identity_key",
			"blocked", "profile_sharing", "archived", "forced_unread", "mute_until",
			"gv1_migrated", "unknown_fields").
		From("recipients").
		Where(sq.Eq{"storage_id_raw": rawBytesOf(ids)}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()
	for rows.Next() {
		rec, err := scanRecipient(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		if !rec.StorageID.IsZero() {
			out[rec.StorageID] = rec
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return out, nil
}

func (r recordQueries) InsertRecipient(ctx context.Context, rec models.Recipient) (int64, error) {
	res, err := r.q.ExecContext(ctx, queryInsertRecipient,
		uint32(rec.Kind), rec.ServiceID, rec.E164, rec.GroupID, rec.MasterKey, storageIDParam(rec.StorageID), int32(rec.Dirty),
		rec.GivenName, rec.FamilyName, rec.ProfileKey, rec.IdentityKey,
		rec.Blocked, rec.ProfileSharing, rec.Archived, rec.ForcedUnread, rec.MuteUntil,
		rec.GV1Migrated, rec.UnknownFields,
	)
	if err != nil {
		return 0, fmt.Errorf("insert recipient: %w", err)
	}
	rowID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("insert recipient: %w", err)
	}
	return rowID, nil
}

func (r recordQueries) UpdateRecipient(ctx context.Context, rec models.Recipient) error {
	_, err := r.q.ExecContext(ctx, queryUpdateRecipient,
		uint32(rec.Kind), rec.ServiceID, rec.E164, rec.GroupID, rec.MasterKey, storageIDParam(rec.StorageID), int32(rec.Dirty),
		rec.GivenName, rec.FamilyName, rec.ProfileKey, rec.IdentityKey,
		rec.Blocked, rec.ProfileSharing, rec.Archived, rec.ForcedUnread, rec.MuteUntil,
		rec.GV1Migrated, rec.UnknownFields,
		rec.RowID,
	)
	if err != nil {
		return fmt.Errorf("update recipient %d: %w", rec.RowID, err)
	}
	return nil
}

func (r recordQueries) DeleteRecipients(ctx context.Context, rowIDs []int64) error {
	if len(rowIDs) == 0 {
		return nil
	}
	query, args, err := sqlite.Delete("recipients").Where(sq.Eq{"id": rowIDs}).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = r.q.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete recipients: %w", err)
	}
	return nil
}

func (r recordQueries) RecipientsPendingInsertion(ctx context.Context) ([]models.Recipient, error) {
	return r.recipientsByDirty(ctx, models.DirtyPendingInsert)
}

func (r recordQueries) RecipientsPendingUpdate(ctx context.Context) ([]models.Recipient, error) {
	return r.recipientsByDirty(ctx, models.DirtyPendingUpdate)
}

func (r recordQueries) RecipientsPendingDeletion(ctx context.Context) ([]models.Recipient, error) {
	return r.recipientsByDirty(ctx, models.DirtyPendingDelete)
}

func (r recordQueries) recipientsByDirty(ctx context.Context, d models.DirtyState) ([]models.Recipient, error) {
	rows, err := r.q.QueryContext(ctx, queryRecipientsByDirty, int32(d))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var out []models.Recipient
	for rows.Next() {
		rec, err := scanRecipient(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return out, nil
}

func (r recordQueries) ClearDirty(ctx context.Context, rowIDs []int64) error {
	if len(rowIDs) == 0 {
		return nil
	}
	query, args, err := sqlite.Update("recipients").
		Set("dirty", int32(models.DirtyClean)).
		Where(sq.Eq{"id": rowIDs}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = r.q.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("clear dirty: %w", err)
	}
	return nil
}

func (r recordQueries) ClearDirtyByStorageIDs(ctx context.Context, ids []models.StorageID) error {
	if len(ids) == 0 {
		return nil
	}
	raws := rawBytesOf(ids)

	query, args, err := sqlite.Update("recipients").
		Set("dirty", int32(models.DirtyClean)).
		Where(sq.Eq{"storage_id_raw": raws}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = r.q.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("clear dirty by storage id: %w", err)
	}

	query, args, err = sqlite.Update("account_settings").
		Set("dirty", int32(models.DirtyClean)).
		Where(sq.Eq{"storage_id_raw": raws}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = r.q.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("clear account dirty by storage id: %w", err)
	}
	return nil
}

func (r recordQueries) UpdateStorageIDs(ctx context.Context, rotations map[int64]models.StorageID) error {
	for rowID, id := range rotations {
		if _, err := r.q.ExecContext(ctx, queryUpdateStorageID, id.RawBytes(), rowID); err != nil {
			return fmt.Errorf("rotate storage id for row %d: %w", rowID, err)
		}
	}
	return nil
}

func (r recordQueries) GetAccount(ctx context.Context) (models.AccountSettings, error) {
	var acc models.AccountSettings
	var storageRaw []byte
	var dirty int32

	err := r.q.QueryRowContext(ctx, queryGetAccount).Scan(
		&acc.ServiceID, &storageRaw, &acc.GivenName, &acc.FamilyName, &acc.AvatarURLPath,
		&acc.NoteToSelfArchived, &acc.ReadReceipts, &acc.TypingIndicators, &acc.SealedSenderIndicators, &acc.LinkPreviews,
		&dirty, &acc.UnknownFields,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.AccountSettings{}, ErrAccountNotFound
	}
	if err != nil {
		return models.AccountSettings{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	acc.Dirty = models.DirtyState(dirty)
	if len(storageRaw) == models.StorageIDSize {
		id, err := models.NewStorageID(models.RecordTypeAccount, storageRaw)
		if err != nil {
			return models.AccountSettings{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		acc.StorageID = id
	}
	return acc, nil
}

func (r recordQueries) SaveAccount(ctx context.Context, acc models.AccountSettings) error {
	_, err := r.q.ExecContext(ctx, querySaveAccount,
		acc.ServiceID, storageIDParam(acc.StorageID), acc.GivenName, acc.FamilyName, acc.AvatarURLPath,
		acc.NoteToSelfArchived, acc.ReadReceipts, acc.TypingIndicators, acc.SealedSenderIndicators, acc.LinkPreviews,
		int32(acc.Dirty), acc.UnknownFields,
	)
	if err != nil {
		return fmt.Errorf("save account settings: %w", err)
	}
	return nil
}

func (r recordQueries) InsertUnknownRecords(ctx context.Context, recs []models.UnknownRecord) error {
	for _, rec := range recs {
		if _, err := r.q.ExecContext(ctx, queryInsertUnknownRecord,
			rec.ID.RawBytes(), uint32(rec.ID.Type), rec.Payload,
		); err != nil {
			return fmt.Errorf("insert unknown record: %w", err)
		}
	}
	return nil
}

func (r recordQueries) DeleteUnknownRecords(ctx context.Context, ids []models.StorageID) error {
	if len(ids) == 0 {
		return nil
	}
	query, args, err := sqlite.Delete("unknown_records").Where(sq.Eq{"raw": rawBytesOf(ids)}).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = r.q.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete unknown records: %w", err)
	}
	return nil
}

func (r recordQueries) UnknownRecordsByIDs(ctx context.Context, ids []models.StorageID) ([]models.UnknownRecord, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query, args, err := sqlite.
		Select("raw", "rtype", "payload").
		From("unknown_records").
		Where(sq.Eq{"raw": rawBytesOf(ids)}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var out []models.UnknownRecord
	for rows.Next() {
		var raw, payload []byte
		var rtype uint32
		if err := rows.Scan(&raw, &rtype, &payload); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		id, err := models.NewStorageID(models.RecordType(rtype), raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		out = append(out, models.UnknownRecord{ID: id, Payload: payload})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return out, nil
}

// scanRecipient reads one recipient row in recipientColumns order.
func scanRecipient(s interface{ Scan(dest ...any) error }) (models.Recipient, error) {
	var rec models.Recipient
	var kind uint32
	var dirty int32
	var storageRaw []byte

	err := s.Scan(
		&rec.RowID, &kind, &rec.ServiceID, &rec.E164, &rec.GroupID, &rec.MasterKey, &storageRaw, &dirty,
		&rec.GivenName, &rec.FamilyName, &rec.ProfileKey, &rec.IdentityKey,
		&rec.Blocked, &rec.ProfileSharing, &rec.Archived, &rec.ForcedUnread, &rec.MuteUntil,
		&rec.GV1Migrated, &rec.UnknownFields,
	)
	if err != nil {
		return models.Recipient{}, err
	}

	rec.Kind = models.RecordType(kind)
	rec.Dirty = models.DirtyState(dirty)
	if len(storageRaw) == models.StorageIDSize {
		id, err := models.NewStorageID(rec.Kind, storageRaw)
		if err != nil {
			return models.Recipient{}, err
		}
		rec.StorageID = id
	}
	return rec, nil
}

// storageIDParam converts an ID for binding: zero IDs become NULL so
// never-pushed rows are excluded from ID enumeration.
func storageIDParam(id models.StorageID) any {
	if id.IsZero() {
		return nil
	}
	return id.RawBytes()
}

// rawBytesOf projects IDs to their raw bytes for IN clauses.
func rawBytesOf(ids []models.StorageID) [][]byte {
	raws := make([][]byte, 0, len(ids))
	for _, id := range ids {
		raws = append(raws, id.RawBytes())
	}
	return raws
}
