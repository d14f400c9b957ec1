package models

import "fmt"

// Wire DTOs shared by the HTTP adapter and the storage service handlers.
// Byte fields ride as base64 through encoding/json; record payloads are
// opaque ciphertext at this layer.

// WireID is the transport form of a StorageID.
type WireID struct {
	Type uint32 `json:"type"`
	Raw  []byte `json:"raw"`
}

// WireIDFromStorageID converts a StorageID for transport.
func WireIDFromStorageID(id StorageID) WireID {
	return WireID{Type: uint32(id.Type), Raw: id.RawBytes()}
}

// StorageID validates the width of the raw bytes and converts back.
func (w WireID) StorageID() (StorageID, error) {
	id, err := NewStorageID(RecordType(w.Type), w.Raw)
	if err != nil {
		return StorageID{}, fmt.Errorf("wire id: %w", err)
	}
	return id, nil
}

// WireManifest is the transport form of a Manifest.
type WireManifest struct {
	Version uint64   `json:"version"`
	IDs     []WireID `json:"ids"`
}

// WireManifestFromManifest converts a Manifest for transport.
func WireManifestFromManifest(m Manifest) WireManifest {
	ids := make([]WireID, 0, len(m.IDs))
	for _, id := range m.IDs {
		ids = append(ids, WireIDFromStorageID(id))
	}
	return WireManifest{Version: m.Version, IDs: ids}
}

// Manifest validates every ID and converts back.
func (w WireManifest) Manifest() (Manifest, error) {
	m := Manifest{Version: w.Version, IDs: make([]StorageID, 0, len(w.IDs))}
	for _, wid := range w.IDs {
		id, err := wid.StorageID()
		if err != nil {
			return Manifest{}, err
		}
		m.IDs = append(m.IDs, id)
	}
	return m, nil
}

// WireItem is one stored record on the wire: its ID and the encrypted
// payload exactly as the server holds it.
type WireItem struct {
	ID      WireID `json:"id"`
	Payload []byte `json:"payload"`
}

// ReadRecordsRequest asks the service for the records behind IDs.
// Missing IDs are silently omitted from the response.
type ReadRecordsRequest struct {
	IDs []WireID `json:"ids"`
}

// ReadRecordsResponse returns the records that were found.
type ReadRecordsResponse struct {
	Items []WireItem `json:"items"`
}

// WriteRecordsRequest is one compare-and-set push: the server accepts it
// only if its current version equals Manifest.Version - 1.
type WriteRecordsRequest struct {
	Manifest WireManifest `json:"manifest"`
	Inserts  []WireItem   `json:"inserts,omitempty"`
	Deletes  [][]byte     `json:"deletes,omitempty"`
}

// WriteConflictResponse carries the server's current manifest when a
// write is rejected by the version check.
type WriteConflictResponse struct {
	CurrentManifest WireManifest `json:"currentManifest"`
}
