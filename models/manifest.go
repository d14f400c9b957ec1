// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mikhail Khailov

package models

// Manifest is the versioned index of every StorageID the storage service
// currently holds for one account. The version increases by exactly one
// on every accepted write; writes are compare-and-set against it.
type Manifest struct {
	Version uint64
	IDs     []StorageID
}

// IDSet returns the manifest IDs as a set for membership tests.
func (m Manifest) IDSet() map[StorageID]struct{} {
	set := make(map[StorageID]struct{}, len(m.IDs))
	for _, id := range m.IDs {
		set[id] = struct{}{}
	}
	return set
}

// Contains reports whether the manifest lists id (type tag included).
func (m Manifest) Contains(id StorageID) bool {
	for _, got := range m.IDs {
		if got == id {
			return true
		}
	}
	return false
}

// KeyDifference is the result of diffing a remote manifest's ID set
// against the local one. RemoteOnly are IDs the server holds that the
// client does not; LocalOnly the reverse. Membership is decided by raw
// bytes: an ID present on both sides under different type tags is
// excluded from both lists and reported through HasTypeMismatches,
// which signals that the server's index is structurally corrupt and a
// force-push must follow the cycle.
type KeyDifference struct {
	RemoteOnly        []StorageID
	LocalOnly         []StorageID
	HasTypeMismatches bool
}

// IsEmpty reports whether the two sides hold the same IDs, allowing the
// caller to short-circuit the merge phase.
func (d KeyDifference) IsEmpty() bool {
	return len(d.RemoteOnly) == 0 && len(d.LocalOnly) == 0
}
