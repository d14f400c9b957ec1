// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mikhail Khailov

package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/mkhailov/go-storage-sync/internal/app"
	"github.com/mkhailov/go-storage-sync/internal/logger"
	"github.com/mkhailov/go-storage-sync/internal/service"
	"github.com/mkhailov/go-storage-sync/internal/store"
	"github.com/mkhailov/go-storage-sync/internal/utils"
	"github.com/mkhailov/go-storage-sync/models"
)

// getManifest serves GET /api/v1/storage/manifest.
//
// Without a query the account's current manifest is returned, 404 when
// the account has never written one. With ?ifDifferentThan=N the reply
// is 204 No Content while the server version is still at or below N, so
// polling clients pay nothing when nothing changed.
func (h *Handler) getManifest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	accountID, found := utils.GetAccountIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.getManifest").Msg("no account ID in request context")
		http.Error(w, app.MsgNoAccountIDProvided, http.StatusBadRequest)
		return
	}

	if param := r.URL.Query().Get("ifDifferentThan"); param != "" {
		knownVersion, err := strconv.ParseUint(param, 10, 64)
		if err != nil {
			log.Err(err).Str("func", "*Handler.getManifest").Msg("unparsable ifDifferentThan value")
			http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
			return
		}

		manifest, err := h.services.StorageService.GetManifestIfDifferent(ctx, accountID, knownVersion)
		if err != nil {
			log.Err(err).Str("func", "*Handler.getManifest").Msg("error getting manifest")
			http.Error(w, "error getting manifest", statusFromError(err))
			return
		}
		if manifest == nil {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		utils.WriteJSON(w, models.WireManifestFromManifest(*manifest), http.StatusOK)
		return
	}

	manifest, err := h.services.StorageService.GetManifest(ctx, accountID)
	if err != nil {
		if errors.Is(err, store.ErrManifestNotFound) {
			http.Error(w, app.MsgManifestNotFound, http.StatusNotFound)
			return
		}
		log.Err(err).Str("func", "*Handler.getManifest").Msg("error getting manifest")
		http.Error(w, "error getting manifest", statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.WireManifestFromManifest(manifest), http.StatusOK)
}

// readRecords serves POST /api/v1/storage/read: it returns the sealed
// payloads behind the requested IDs. IDs the account does not hold are
// omitted from the response, never errored.
func (h *Handler) readRecords(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	accountID, found := utils.GetAccountIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.readRecords").Msg("no account ID in request context")
		http.Error(w, app.MsgNoAccountIDProvided, http.StatusBadRequest)
		return
	}

	var req models.ReadRecordsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.readRecords").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if len(req.IDs) == 0 {
		http.Error(w, app.MsgNoRecordIDsProvided, http.StatusBadRequest)
		return
	}

	ids := make([]models.StorageID, 0, len(req.IDs))
	for _, wid := range req.IDs {
		id, err := wid.StorageID()
		if err != nil {
			log.Err(err).Str("func", "*Handler.readRecords").Msg("malformed storage ID in read request")
			http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
			return
		}
		ids = append(ids, id)
	}

	items, err := h.services.StorageService.ReadRecords(ctx, accountID, ids)
	if err != nil {
		log.Err(err).Str("func", "*Handler.readRecords").Msg("error reading records")
		http.Error(w, "error reading records", statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.ReadRecordsResponse{Items: items}, http.StatusOK)
}

// writeRecords serves PUT /api/v1/storage: one compare-and-set push of
// inserts and deletes together with the manifest they produce. A stale
// base version is answered with 409 and the server's current manifest
// so the client can reconcile and retry.
func (h *Handler) writeRecords(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	accountID, found := utils.GetAccountIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.writeRecords").Msg("no account ID in request context")
		http.Error(w, app.MsgNoAccountIDProvided, http.StatusBadRequest)
		return
	}

	var req models.WriteRecordsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.writeRecords").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	current, err := h.services.StorageService.WriteRecords(ctx, accountID, req)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrVersionConflict) && current != nil:
			log.Info().
				Int64("accountID", accountID).
				Uint64("attempted", req.Manifest.Version).
				Uint64("current", current.Version).
				Str("func", "*Handler.writeRecords").
				Msg("write rejected, stale manifest version")
			utils.WriteJSON(w, models.WriteConflictResponse{
				CurrentManifest: models.WireManifestFromManifest(*current),
			}, http.StatusConflict)
			return
		case errors.Is(err, store.ErrDuplicateRecord):
			log.Err(err).Str("func", "*Handler.writeRecords").Msg("write carries an already-known record id")
			http.Error(w, app.MsgDuplicateRecord, http.StatusConflict)
			return
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Str("func", "*Handler.writeRecords").Msg("write failed validation")
			http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
			return
		default:
			log.Err(err).Str("func", "*Handler.writeRecords").Msg("error writing records")
			http.Error(w, "error writing records", statusFromError(err))
			return
		}
	}

	w.WriteHeader(http.StatusOK)
}
