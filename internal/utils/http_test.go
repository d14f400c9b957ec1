package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mkhailov/go-storage-sync/models"
)

func TestWriteJSON_AuthResponse(t *testing.T) {
	w := httptest.NewRecorder()
	data := models.AuthResponse{Token: "signed.jwt.token", ServiceID: "11111111-aaaa-bbbb-cccc-222222222222"}

	n, err := WriteJSON(w, data, http.StatusOK)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if n == 0 {
		t.Error("expected non-zero bytes written")
	}
	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected Content-Type 'application/json', got '%s'", ct)
	}

	expected, _ := json.Marshal(data)
	if w.Body.String() != string(expected) {
		t.Errorf("expected body %s, got %s", expected, w.Body.String())
	}
}

func TestWriteJSON_ConflictManifest(t *testing.T) {
	w := httptest.NewRecorder()
	data := models.WriteConflictResponse{
		CurrentManifest: models.WireManifest{
			Version: 7,
			IDs:     []models.WireID{{Type: 1, Raw: []byte("0123456789abcdef")}},
		},
	}

	_, err := WriteJSON(w, data, http.StatusConflict)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if w.Code != http.StatusConflict {
		t.Errorf("expected status %d, got %d", http.StatusConflict, w.Code)
	}

	var parsed models.WriteConflictResponse
	if err := json.Unmarshal(w.Body.Bytes(), &parsed); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	if parsed.CurrentManifest.Version != 7 {
		t.Errorf("expected manifest version 7, got %d", parsed.CurrentManifest.Version)
	}
}

func TestWriteJSON_ErrorBody(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteJSON(w, map[string]string{"error": "manifest not found"}, http.StatusNotFound)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if w.Code != http.StatusNotFound {
		t.Errorf("expected status %d, got %d", http.StatusNotFound, w.Code)
	}
}

func TestWriteJSON_InvalidData(t *testing.T) {
	w := httptest.NewRecorder()

	// каналы в JSON не сериализуются
	_, err := WriteJSON(w, make(chan int), http.StatusOK)

	if err == nil {
		t.Fatal("expected error for non-serializable data, got nil")
	}
	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
	}
}

func TestWriteJSON_NilData(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteJSON(w, nil, http.StatusOK)

	if err != nil {
		t.Fatalf("expected no error for nil data, got: %v", err)
	}
	if w.Body.String() != "null" {
		t.Errorf("expected body 'null', got '%s'", w.Body.String())
	}
}

func TestWriteJSON_EmptyManifest(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteJSON(w, models.WireManifest{}, http.StatusOK)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	var parsed models.WireManifest
	if err := json.Unmarshal(w.Body.Bytes(), &parsed); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	if parsed.Version != 0 || len(parsed.IDs) != 0 {
		t.Errorf("expected zero manifest, got %+v", parsed)
	}
}
