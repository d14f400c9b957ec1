// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mikhail Khailov

package models

// StorageRecordUpdate pairs the remote record that was merged with the
// record that replaces it. The new record always carries a fresh
// StorageID, so applying the update means inserting New and deleting
// Old's ID in the same write operation.
type StorageRecordUpdate struct {
	Old StorageRecord
	New StorageRecord
}

// WriteOperation is one atomic push to the storage service: the next
// manifest plus the record inserts and ID deletes that take the server
// from the previous manifest to this one.
type WriteOperation struct {
	Manifest Manifest
	Inserts  []StorageRecord
	Deletes  []StorageID
}

// IsEmpty reports whether the operation would change nothing on the
// server; empty operations are never pushed.
func (w WriteOperation) IsEmpty() bool {
	return len(w.Inserts) == 0 && len(w.Deletes) == 0
}
