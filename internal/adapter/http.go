package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/mkhailov/go-storage-sync/internal/config"
	"github.com/mkhailov/go-storage-sync/internal/crypto"
	"github.com/mkhailov/go-storage-sync/internal/logger"
	"github.com/mkhailov/go-storage-sync/internal/utils"
	"github.com/mkhailov/go-storage-sync/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient
	cipher crypto.RecordCipher
	logger *logger.Logger

	mu    sync.RWMutex
	token string
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from cfg.HTTPAddress and configures
// the underlying HTTP client with the resolved base URL and request timeout.
// cipher seals record payloads before they leave the process and opens them on
// the way back in.
//
// Returns an error if cfg.HTTPAddress is empty or cannot be parsed as a valid
// URL.
func NewHTTPServerAdapter(cfg config.ClientAdapter, cipher crypto.RecordCipher, logger *logger.Logger) (ServerAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	return &httpServerAdapter{client: client, cipher: cipher, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent authenticated requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter]. It returns the bearer token currently held
// by the adapter, or an empty string if none has been set.
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register implements [ServerAdapter]. It POSTs the credentials to
// POST /api/v1/auth/register. On success the bearer token is extracted from
// the Authorization response header and stored via SetToken, and the
// server-assigned service address is returned. Returns an error if the
// request fails, the server returns a non-2xx status, or the token cannot be
// parsed.
func (h *httpServerAdapter) Register(ctx context.Context, login, password string) (string, error) {
	return h.authenticate(ctx, "/api/v1/auth/register", login, password)
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// POST /api/v1/auth/login and behaves exactly like Register on success.
func (h *httpServerAdapter) Login(ctx context.Context, login, password string) (string, error) {
	return h.authenticate(ctx, "/api/v1/auth/login", login, password)
}

func (h *httpServerAdapter) authenticate(ctx context.Context, path, login, password string) (string, error) {
	var auth models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.AuthRequest{Login: login, Password: password}).
		SetResult(&auth).
		Post(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return "", fmt.Errorf("auth parse bearer token: %w", err)
	}
	if auth.ServiceID == "" {
		return "", fmt.Errorf("auth response carries no service id")
	}

	h.SetToken(token)
	return auth.ServiceID, nil
}

// GetManifestIfDifferent implements [ServerAdapter]. It GETs
// /api/v1/storage/manifest?ifDifferentThan=<knownVersion>; a 204 response
// means the caller is up to date and yields (nil, nil).
func (h *httpServerAdapter) GetManifestIfDifferent(ctx context.Context, knownVersion uint64) (*models.Manifest, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+h.Token()).
		SetQueryParam("ifDifferentThan", strconv.FormatUint(knownVersion, 10)).
		Get("/api/v1/storage/manifest")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNetwork, err)
	}
	if resp.StatusCode() == http.StatusNoContent {
		return nil, nil
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var wire models.WireManifest
	if err := json.Unmarshal(resp.Body(), &wire); err != nil {
		return nil, fmt.Errorf("decode manifest response: %w", err)
	}

	manifest, err := wire.Manifest()
	if err != nil {
		return nil, fmt.Errorf("manifest response: %w", err)
	}

	return &manifest, nil
}

// ReadRecords implements [ServerAdapter]. It POSTs the requested IDs to
// /api/v1/storage/read and opens every returned payload with storageKey.
// The response may be shorter than the request: IDs the server no longer
// holds are omitted, which the caller treats as its own signal.
func (h *httpServerAdapter) ReadRecords(ctx context.Context, storageKey []byte, ids []models.StorageID) ([]models.StorageRecord, error) {
	request := models.ReadRecordsRequest{IDs: make([]models.WireID, 0, len(ids))}
	for _, id := range ids {
		request.IDs = append(request.IDs, models.WireIDFromStorageID(id))
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Authorization", "Bearer "+h.Token()).
		SetBody(request).
		Post("/api/v1/storage/read")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var out models.ReadRecordsResponse
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return nil, fmt.Errorf("decode read response: %w", err)
	}

	records := make([]models.StorageRecord, 0, len(out.Items))
	for _, item := range out.Items {
		id, err := item.ID.StorageID()
		if err != nil {
			return nil, fmt.Errorf("read response item: %w", err)
		}
		record, err := h.cipher.DecryptRecord(storageKey, id, item.Payload)
		if err != nil {
			return nil, fmt.Errorf("open record %s: %w", id, err)
		}
		records = append(records, record)
	}

	return records, nil
}

// WriteRecords implements [ServerAdapter]. It seals every insert under
// storageKey and PUTs the operation to /api/v1/storage. A 409 response is the
// compare-and-set rejection: the server's current manifest is decoded from
// the body and returned together with ErrConflict so the caller can merge
// and retry.
func (h *httpServerAdapter) WriteRecords(ctx context.Context, storageKey []byte, op models.WriteOperation) (*models.Manifest, error) {
	request := models.WriteRecordsRequest{
		Manifest: models.WireManifestFromManifest(op.Manifest),
		Inserts:  make([]models.WireItem, 0, len(op.Inserts)),
		Deletes:  make([][]byte, 0, len(op.Deletes)),
	}
	for _, record := range op.Inserts {
		blob, err := h.cipher.EncryptRecord(storageKey, record)
		if err != nil {
			return nil, fmt.Errorf("seal record %s: %w", record.ID(), err)
		}
		request.Inserts = append(request.Inserts, models.WireItem{
			ID:      models.WireIDFromStorageID(record.ID()),
			Payload: blob,
		})
	}
	for _, id := range op.Deletes {
		request.Deletes = append(request.Deletes, id.RawBytes())
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Authorization", "Bearer "+h.Token()).
		SetBody(request).
		Put("/api/v1/storage")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNetwork, err)
	}

	if resp.StatusCode() == http.StatusConflict {
		var conflict models.WriteConflictResponse
		if err := json.Unmarshal(resp.Body(), &conflict); err != nil {
			return nil, fmt.Errorf("%w: undecodable conflict body: %w", ErrConflict, err)
		}
		current, err := conflict.CurrentManifest.Manifest()
		if err != nil {
			return nil, fmt.Errorf("%w: conflict manifest: %w", ErrConflict, err)
		}

		h.logger.Info().
			Uint64("attempted", op.Manifest.Version).
			Uint64("current", current.Version).
			Str("func", "httpServerAdapter.WriteRecords").
			Msg("write rejected, server manifest is ahead")

		return &current, fmt.Errorf("%w: version %d rejected", ErrConflict, op.Manifest.Version)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return nil, nil
}
