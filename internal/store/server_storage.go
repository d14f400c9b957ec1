// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mikhail Khailov

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/mkhailov/go-storage-sync/internal/logger"
	"github.com/mkhailov/go-storage-sync/models"
)

// StorageRepository is the PostgreSQL-backed server half of the storage
// service: a versioned manifest plus an opaque blob per record ID, all
// scoped per account. The server never looks inside record payloads.
//
// Write semantics are compare-and-set: a write carrying manifest version
// N is accepted only while the account sits at N-1, otherwise the
// caller gets the current manifest back with [ErrVersionConflict].
type StorageRepository struct {
	*DB
	logger  *logger.Logger
	builder sq.StatementBuilderType
}

// NewStorageRepository constructs a [StorageRepository] backed by the
// provided database connection and fallback logger.
func NewStorageRepository(db *DB, log *logger.Logger) *StorageRepository {
	return &StorageRepository{
		DB:      db,
		logger:  log,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// rowQuerier lets manifest loading run against either the pool or an
// open transaction.
type rowQuerier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// GetManifest returns the account's current manifest, or
// [ErrManifestNotFound] when the account has never completed a write.
func (r *StorageRepository) GetManifest(ctx context.Context, accountID int64) (models.Manifest, error) {
	return r.loadManifest(ctx, r.DB, accountID)
}

// GetManifestIfDifferent returns the current manifest iff its version is
// strictly greater than knownVersion; otherwise it returns nil. A fresh
// account (no manifest at all) also returns nil.
func (r *StorageRepository) GetManifestIfDifferent(ctx context.Context, accountID int64, knownVersion uint64) (*models.Manifest, error) {
	m, err := r.loadManifest(ctx, r.DB, accountID)
	if errors.Is(err, ErrManifestNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if m.Version <= knownVersion {
		return nil, nil
	}
	return &m, nil
}

// ReadRecords returns the payloads held for the requested raw IDs, keyed
// by the raw bytes (as string). IDs the server does not hold are simply
// absent from the map.
func (r *StorageRepository) ReadRecords(ctx context.Context, accountID int64, raws [][]byte) (map[string][]byte, error) {
	log := logger.FromContext(ctx)

	if len(raws) == 0 {
		return map[string][]byte{}, nil
	}

	query, args, err := r.builder.
		Select("raw", "payload").
		From("storage_records").
		Where(sq.Eq{"account_id": accountID, "raw": raws}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "StorageRepository.ReadRecords").
			Int64("account_id", accountID).
			Int("requested", len(raws)).
			Msg("failed to read storage records")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	found := make(map[string][]byte, len(raws))
	for rows.Next() {
		var raw, payload []byte
		if err := rows.Scan(&raw, &payload); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		found[string(raw)] = payload
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return found, nil
}

// WriteRecords applies one atomic compare-and-set write: replace the
// manifest, delete the records named in deletes, insert the new record
// payloads. On a version mismatch it returns the current server manifest
// together with [ErrVersionConflict] and changes nothing.
func (r *StorageRepository) WriteRecords(ctx context.Context, accountID int64, manifest models.Manifest, inserts []models.WireItem, deletes [][]byte) (*models.Manifest, error) {
	log := logger.FromContext(ctx)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	var currentVersion uint64
	var stored int64
	err = tx.QueryRowContext(ctx,
		`SELECT version FROM storage_manifests WHERE account_id = $1 FOR UPDATE`,
		accountID,
	).Scan(&stored)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		currentVersion = 0
	case err != nil:
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	default:
		currentVersion = uint64(stored)
	}

	if manifest.Version != currentVersion+1 {
		current, loadErr := r.loadManifest(ctx, tx, accountID)
		if loadErr != nil && !errors.Is(loadErr, ErrManifestNotFound) {
			return nil, loadErr
		}
		log.Warn().
			Str("func", "StorageRepository.WriteRecords").
			Int64("account_id", accountID).
			Uint64("current_version", currentVersion).
			Uint64("write_version", manifest.Version).
			Msg("rejecting write: version conflict")
		return &current, ErrVersionConflict
	}

	if _, err = tx.ExecContext(ctx,
		`INSERT INTO storage_manifests (account_id, version) VALUES ($1, $2)
		 ON CONFLICT (account_id) DO UPDATE SET version = EXCLUDED.version, updated_at = now()`,
		accountID, int64(manifest.Version),
	); err != nil {
		return nil, r.wrapWriteError(err, "upsert manifest")
	}

	if _, err = tx.ExecContext(ctx,
		`DELETE FROM storage_manifest_ids WHERE account_id = $1`, accountID,
	); err != nil {
		return nil, r.wrapWriteError(err, "clear manifest ids")
	}

	if len(manifest.IDs) > 0 {
		ins := r.builder.Insert("storage_manifest_ids").Columns("account_id", "raw", "rtype")
		for _, id := range manifest.IDs {
			ins = ins.Values(accountID, id.RawBytes(), uint32(id.Type))
		}
		query, args, err := ins.ToSql()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			return nil, r.wrapWriteError(err, "insert manifest ids")
		}
	}

	if len(deletes) > 0 {
		query, args, err := r.builder.
			Delete("storage_records").
			Where(sq.Eq{"account_id": accountID, "raw": deletes}).
			ToSql()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			return nil, r.wrapWriteError(err, "delete records")
		}
	}

	if len(inserts) > 0 {
		ins := r.builder.Insert("storage_records").Columns("account_id", "raw", "payload")
		for _, item := range inserts {
			ins = ins.Values(accountID, item.ID.Raw, item.Payload)
		}
		query, args, err := ins.ToSql()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			if IsUniqueViolation(err) {
				return nil, fmt.Errorf("%w: %w", ErrDuplicateRecord, err)
			}
			return nil, r.wrapWriteError(err, "insert records")
		}
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCommittingTransaction, err)
	}

	log.Info().
		Str("func", "StorageRepository.WriteRecords").
		Int64("account_id", accountID).
		Uint64("version", manifest.Version).
		Int("inserts", len(inserts)).
		Int("deletes", len(deletes)).
		Msg("accepted storage write")

	return nil, nil
}

// loadManifest reads the manifest version and ID list using q, which may
// be the pool or an open transaction.
func (r *StorageRepository) loadManifest(ctx context.Context, q rowQuerier, accountID int64) (models.Manifest, error) {
	var stored int64
	err := q.QueryRowContext(ctx,
		`SELECT version FROM storage_manifests WHERE account_id = $1`, accountID,
	).Scan(&stored)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Manifest{}, ErrManifestNotFound
	}
	if err != nil {
		return models.Manifest{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	rows, err := q.QueryContext(ctx,
		`SELECT raw, rtype FROM storage_manifest_ids WHERE account_id = $1 ORDER BY raw`, accountID,
	)
	if err != nil {
		return models.Manifest{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	manifest := models.Manifest{Version: uint64(stored)}
	for rows.Next() {
		var raw []byte
		var rtype uint32
		if err := rows.Scan(&raw, &rtype); err != nil {
			return models.Manifest{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		id, err := models.NewStorageID(models.RecordType(rtype), raw)
		if err != nil {
			return models.Manifest{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		manifest.IDs = append(manifest.IDs, id)
	}
	if err := rows.Err(); err != nil {
		return models.Manifest{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return manifest, nil
}

// wrapWriteError wraps a write-path failure, marking it transient when
// the classifier says a retry could succeed.
func (r *StorageRepository) wrapWriteError(err error, op string) error {
	if r.errorClassifier.Classify(err) == Retryable {
		return fmt.Errorf("%w: %s: %w", ErrTransient, op, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
