// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mikhail Khailov

package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mkhailov/go-storage-sync/internal/logger"
	"github.com/mkhailov/go-storage-sync/internal/service"
	"github.com/mkhailov/go-storage-sync/internal/store"
	"github.com/mkhailov/go-storage-sync/internal/utils"
	"github.com/mkhailov/go-storage-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock StorageService
// ─────────────────────────────────────────────

// mockStorageService implements service.StorageService for unit tests.
type mockStorageService struct {
	getManifestFn            func(ctx context.Context, accountID int64) (models.Manifest, error)
	getManifestIfDifferentFn func(ctx context.Context, accountID int64, knownVersion uint64) (*models.Manifest, error)
	readRecordsFn            func(ctx context.Context, accountID int64, ids []models.StorageID) ([]models.WireItem, error)
	writeRecordsFn           func(ctx context.Context, accountID int64, write models.WriteRecordsRequest) (*models.Manifest, error)
}

func (m *mockStorageService) GetManifest(ctx context.Context, accountID int64) (models.Manifest, error) {
	return m.getManifestFn(ctx, accountID)
}

func (m *mockStorageService) GetManifestIfDifferent(ctx context.Context, accountID int64, knownVersion uint64) (*models.Manifest, error) {
	return m.getManifestIfDifferentFn(ctx, accountID, knownVersion)
}

func (m *mockStorageService) ReadRecords(ctx context.Context, accountID int64, ids []models.StorageID) ([]models.WireItem, error) {
	return m.readRecordsFn(ctx, accountID, ids)
}

func (m *mockStorageService) WriteRecords(ctx context.Context, accountID int64, write models.WriteRecordsRequest) (*models.Manifest, error) {
	return m.writeRecordsFn(ctx, accountID, write)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newHandlerWithStorage builds a Handler with the given StorageService mock.
func newHandlerWithStorage(t *testing.T, storage service.StorageService) *Handler {
	t.Helper()
	return NewHandler(&service.Services{StorageService: storage}, logger.Nop())
}

// asAccount injects an authenticated account ID, как это делает auth middleware.
func asAccount(r *http.Request, accountID int64) *http.Request {
	ctx := context.WithValue(r.Context(), utils.AccountIDCtxKey, accountID)
	return r.WithContext(ctx)
}

func storageID(t *testing.T, rt models.RecordType, fill byte) models.StorageID {
	t.Helper()
	raw := make([]byte, models.StorageIDSize)
	for i := range raw {
		raw[i] = fill
	}
	id, err := models.NewStorageID(rt, raw)
	require.NoError(t, err)
	return id
}

// ─────────────────────────────────────────────
// getManifest
// ─────────────────────────────────────────────

// TestGetManifest_Success verifies that the current manifest is returned
// as JSON for an authenticated account.
func TestGetManifest_Success(t *testing.T) {
	id := storageID(t, models.RecordTypeContact, 0x01)

	storage := &mockStorageService{
		getManifestFn: func(_ context.Context, accountID int64) (models.Manifest, error) {
			assert.Equal(t, int64(7), accountID)
			return models.Manifest{Version: 3, IDs: []models.StorageID{id}}, nil
		},
	}

	h := newHandlerWithStorage(t, storage)
	req := asAccount(httptest.NewRequest(http.MethodGet, "/api/v1/storage/manifest", nil), 7)
	rec := httptest.NewRecorder()

	h.getManifest(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var wire models.WireManifest
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &wire))
	assert.Equal(t, uint64(3), wire.Version)
	require.Len(t, wire.IDs, 1)
	assert.Equal(t, id.RawBytes(), wire.IDs[0].Raw)
}

// TestGetManifest_NotFound verifies that a fresh account with no manifest
// yet gets 404.
func TestGetManifest_NotFound(t *testing.T) {
	storage := &mockStorageService{
		getManifestFn: func(_ context.Context, _ int64) (models.Manifest, error) {
			return models.Manifest{}, store.ErrManifestNotFound
		},
	}

	h := newHandlerWithStorage(t, storage)
	req := asAccount(httptest.NewRequest(http.MethodGet, "/api/v1/storage/manifest", nil), 7)
	rec := httptest.NewRecorder()

	h.getManifest(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "manifest not found")
}

// TestGetManifest_NoAccountID verifies that a request that somehow reached
// the handler without passing the auth middleware is rejected.
func TestGetManifest_NoAccountID(t *testing.T) {
	h := newHandlerWithStorage(t, &mockStorageService{})
	req := httptest.NewRequest(http.MethodGet, "/api/v1/storage/manifest", nil)
	rec := httptest.NewRecorder()

	h.getManifest(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "no account id provided")
}

// TestGetManifest_IfDifferent_UpToDate verifies that 204 No Content is
// returned when the server version is not ahead of the client's.
func TestGetManifest_IfDifferent_UpToDate(t *testing.T) {
	storage := &mockStorageService{
		getManifestIfDifferentFn: func(_ context.Context, _ int64, knownVersion uint64) (*models.Manifest, error) {
			assert.Equal(t, uint64(5), knownVersion)
			return nil, nil
		},
	}

	h := newHandlerWithStorage(t, storage)
	req := asAccount(httptest.NewRequest(http.MethodGet, "/api/v1/storage/manifest?ifDifferentThan=5", nil), 7)
	rec := httptest.NewRecorder()

	h.getManifest(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

// TestGetManifest_IfDifferent_NewerVersion verifies that a newer manifest
// is returned when the server is ahead.
func TestGetManifest_IfDifferent_NewerVersion(t *testing.T) {
	storage := &mockStorageService{
		getManifestIfDifferentFn: func(_ context.Context, _ int64, _ uint64) (*models.Manifest, error) {
			return &models.Manifest{Version: 9}, nil
		},
	}

	h := newHandlerWithStorage(t, storage)
	req := asAccount(httptest.NewRequest(http.MethodGet, "/api/v1/storage/manifest?ifDifferentThan=5", nil), 7)
	rec := httptest.NewRecorder()

	h.getManifest(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var wire models.WireManifest
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &wire))
	assert.Equal(t, uint64(9), wire.Version)
}

// TestGetManifest_IfDifferent_BadParam verifies that an unparsable
// ifDifferentThan value is rejected with 400.
func TestGetManifest_IfDifferent_BadParam(t *testing.T) {
	h := newHandlerWithStorage(t, &mockStorageService{})
	req := asAccount(httptest.NewRequest(http.MethodGet, "/api/v1/storage/manifest?ifDifferentThan=abc", nil), 7)
	rec := httptest.NewRecorder()

	h.getManifest(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ─────────────────────────────────────────────
// readRecords
// ─────────────────────────────────────────────

// TestReadRecords_Success verifies that requested items come back in a
// JSON envelope.
func TestReadRecords_Success(t *testing.T) {
	id := storageID(t, models.RecordTypeGroupV2, 0x10)
	payload := []byte("sealed blob")

	storage := &mockStorageService{
		readRecordsFn: func(_ context.Context, accountID int64, ids []models.StorageID) ([]models.WireItem, error) {
			assert.Equal(t, int64(7), accountID)
			require.Len(t, ids, 1)
			assert.Equal(t, id, ids[0])
			return []models.WireItem{{ID: models.WireIDFromStorageID(id), Payload: payload}}, nil
		},
	}

	body, err := json.Marshal(models.ReadRecordsRequest{IDs: []models.WireID{models.WireIDFromStorageID(id)}})
	require.NoError(t, err)

	h := newHandlerWithStorage(t, storage)
	req := asAccount(httptest.NewRequest(http.MethodPost, "/api/v1/storage/read", strings.NewReader(string(body))), 7)
	rec := httptest.NewRecorder()

	h.readRecords(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.ReadRecordsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Items, 1)
	assert.Equal(t, payload, resp.Items[0].Payload)
}

// TestReadRecords_EmptyIDs verifies that a read with no IDs is rejected
// before reaching the service.
func TestReadRecords_EmptyIDs(t *testing.T) {
	h := newHandlerWithStorage(t, &mockStorageService{})
	req := asAccount(httptest.NewRequest(http.MethodPost, "/api/v1/storage/read", strings.NewReader(`{"ids":[]}`)), 7)
	rec := httptest.NewRecorder()

	h.readRecords(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "no record ids provided")
}

// TestReadRecords_MalformedID verifies that an ID with the wrong byte
// width is rejected with 400.
func TestReadRecords_MalformedID(t *testing.T) {
	body, err := json.Marshal(models.ReadRecordsRequest{IDs: []models.WireID{{Type: 1, Raw: []byte{0x01, 0x02}}}})
	require.NoError(t, err)

	h := newHandlerWithStorage(t, &mockStorageService{})
	req := asAccount(httptest.NewRequest(http.MethodPost, "/api/v1/storage/read", strings.NewReader(string(body))), 7)
	rec := httptest.NewRecorder()

	h.readRecords(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// TestReadRecords_InvalidJSON verifies that a malformed body results in 400.
func TestReadRecords_InvalidJSON(t *testing.T) {
	h := newHandlerWithStorage(t, &mockStorageService{})
	req := asAccount(httptest.NewRequest(http.MethodPost, "/api/v1/storage/read", strings.NewReader("{broken")), 7)
	rec := httptest.NewRecorder()

	h.readRecords(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ─────────────────────────────────────────────
// writeRecords
// ─────────────────────────────────────────────

func writeBody(t *testing.T, req models.WriteRecordsRequest) string {
	t.Helper()
	b, err := json.Marshal(req)
	require.NoError(t, err)
	return string(b)
}

// TestWriteRecords_Accepted verifies that an accepted write answers 200
// with an empty body.
func TestWriteRecords_Accepted(t *testing.T) {
	id := storageID(t, models.RecordTypeContact, 0x21)

	storage := &mockStorageService{
		writeRecordsFn: func(_ context.Context, accountID int64, write models.WriteRecordsRequest) (*models.Manifest, error) {
			assert.Equal(t, int64(7), accountID)
			assert.Equal(t, uint64(4), write.Manifest.Version)
			return nil, nil
		},
	}

	body := writeBody(t, models.WriteRecordsRequest{
		Manifest: models.WireManifestFromManifest(models.Manifest{Version: 4, IDs: []models.StorageID{id}}),
		Inserts:  []models.WireItem{{ID: models.WireIDFromStorageID(id), Payload: []byte("blob")}},
	})

	h := newHandlerWithStorage(t, storage)
	req := asAccount(httptest.NewRequest(http.MethodPut, "/api/v1/storage", strings.NewReader(body)), 7)
	rec := httptest.NewRecorder()

	h.writeRecords(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

// TestWriteRecords_VersionConflict verifies that a stale write answers
// 409 with the server's current manifest in the body.
func TestWriteRecords_VersionConflict(t *testing.T) {
	current := models.Manifest{Version: 6}

	storage := &mockStorageService{
		writeRecordsFn: func(_ context.Context, _ int64, _ models.WriteRecordsRequest) (*models.Manifest, error) {
			return &current, store.ErrVersionConflict
		},
	}

	body := writeBody(t, models.WriteRecordsRequest{
		Manifest: models.WireManifest{Version: 4},
		Deletes:  [][]byte{make([]byte, models.StorageIDSize)},
	})

	h := newHandlerWithStorage(t, storage)
	req := asAccount(httptest.NewRequest(http.MethodPut, "/api/v1/storage", strings.NewReader(body)), 7)
	rec := httptest.NewRecorder()

	h.writeRecords(rec, req)

	require.Equal(t, http.StatusConflict, rec.Code)

	var conflict models.WriteConflictResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &conflict))
	assert.Equal(t, uint64(6), conflict.CurrentManifest.Version)
}

// TestWriteRecords_DuplicateRecord verifies that re-inserting known ID
// bytes answers 409 with a plain-text reason.
func TestWriteRecords_DuplicateRecord(t *testing.T) {
	storage := &mockStorageService{
		writeRecordsFn: func(_ context.Context, _ int64, _ models.WriteRecordsRequest) (*models.Manifest, error) {
			return nil, store.ErrDuplicateRecord
		},
	}

	body := writeBody(t, models.WriteRecordsRequest{Manifest: models.WireManifest{Version: 2}})

	h := newHandlerWithStorage(t, storage)
	req := asAccount(httptest.NewRequest(http.MethodPut, "/api/v1/storage", strings.NewReader(body)), 7)
	rec := httptest.NewRecorder()

	h.writeRecords(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "duplicate record id")
}

// TestWriteRecords_InvalidData verifies that a write that fails service
// validation answers 400.
func TestWriteRecords_InvalidData(t *testing.T) {
	storage := &mockStorageService{
		writeRecordsFn: func(_ context.Context, _ int64, _ models.WriteRecordsRequest) (*models.Manifest, error) {
			return nil, service.ErrInvalidDataProvided
		},
	}

	body := writeBody(t, models.WriteRecordsRequest{Manifest: models.WireManifest{Version: 0}})

	h := newHandlerWithStorage(t, storage)
	req := asAccount(httptest.NewRequest(http.MethodPut, "/api/v1/storage", strings.NewReader(body)), 7)
	rec := httptest.NewRecorder()

	h.writeRecords(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// TestWriteRecords_UnexpectedError verifies that unknown store failures
// answer 500.
func TestWriteRecords_UnexpectedError(t *testing.T) {
	storage := &mockStorageService{
		writeRecordsFn: func(_ context.Context, _ int64, _ models.WriteRecordsRequest) (*models.Manifest, error) {
			return nil, errors.New("disk full")
		},
	}

	body := writeBody(t, models.WriteRecordsRequest{Manifest: models.WireManifest{Version: 2}})

	h := newHandlerWithStorage(t, storage)
	req := asAccount(httptest.NewRequest(http.MethodPut, "/api/v1/storage", strings.NewReader(body)), 7)
	rec := httptest.NewRecorder()

	h.writeRecords(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
