// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mikhail Khailov

package models

import (
	"bytes"
	"encoding/base64"
	"fmt"
)

// RecordType tags a StorageID with the kind of record it identifies.
// The numeric values are fixed by the wire format and must never be
// renumbered.
type RecordType uint32

const (
	RecordTypeUnknown RecordType = 0
	RecordTypeContact RecordType = 1
	RecordTypeGroupV1 RecordType = 2
	RecordTypeGroupV2 RecordType = 3
	RecordTypeAccount RecordType = 4
)

// Known reports whether this client understands records of type t.
// Anything outside the known range is carried verbatim as an unknown
// record and never interpreted.
func (t RecordType) Known() bool {
	switch t {
	case RecordTypeContact, RecordTypeGroupV1, RecordTypeGroupV2, RecordTypeAccount:
		return true
	default:
		return false
	}
}

// String returns a short human-readable name for logging.
func (t RecordType) String() string {
	switch t {
	case RecordTypeContact:
		return "contact"
	case RecordTypeGroupV1:
		return "groupv1"
	case RecordTypeGroupV2:
		return "groupv2"
	case RecordTypeAccount:
		return "account"
	default:
		return fmt.Sprintf("unknown(%d)", uint32(t))
	}
}

// StorageIDSize is the fixed width of the opaque identifier bytes.
const StorageIDSize = 16

// StorageID identifies one record held by the storage service. The raw
// bytes are opaque and fresh on every logical update: updating a record
// means deleting its old ID and inserting a new one, never reusing bytes.
//
// Two IDs with identical raw bytes but different type tags are distinct.
// The struct is comparable, so it can key maps directly.
type StorageID struct {
	Type RecordType
	Raw  [StorageIDSize]byte
}

// NewStorageID builds a StorageID of the given type from raw bytes.
// The raw slice must be exactly StorageIDSize bytes long.
func NewStorageID(t RecordType, raw []byte) (StorageID, error) {
	if len(raw) != StorageIDSize {
		return StorageID{}, fmt.Errorf("storage id must be %d bytes, got %d", StorageIDSize, len(raw))
	}

	id := StorageID{Type: t}
	copy(id.Raw[:], raw)
	return id, nil
}

// RawBytes returns a copy of the identifier bytes as a slice.
func (id StorageID) RawBytes() []byte {
	out := make([]byte, StorageIDSize)
	copy(out, id.Raw[:])
	return out
}

// IsZero reports whether the ID has never been assigned.
func (id StorageID) IsZero() bool {
	return id.Raw == [StorageIDSize]byte{}
}

// SameRaw reports whether other carries the same raw bytes, regardless
// of type tag. Used to detect type mismatches in manifest diffs.
func (id StorageID) SameRaw(other StorageID) bool {
	return id.Raw == other.Raw
}

// String returns "type/base64(raw)" for logging. The raw bytes carry no
// secrets, only opaque identity.
func (id StorageID) String() string {
	return id.Type.String() + "/" + base64.StdEncoding.EncodeToString(id.Raw[:])
}

// CompareStorageIDs orders IDs by raw bytes, then by type tag. It is a
// total order suitable for deterministic output in tests and logs.
func CompareStorageIDs(a, b StorageID) int {
	if c := bytes.Compare(a.Raw[:], b.Raw[:]); c != 0 {
		return c
	}
	switch {
	case a.Type < b.Type:
		return -1
	case a.Type > b.Type:
		return 1
	default:
		return 0
	}
}
