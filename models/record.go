// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mikhail Khailov

package models

import "bytes"

// UnknownRecord carries a record of a type this client does not
// understand. Payload holds the decrypted record bytes verbatim; the
// client never interprets, rewrites or re-identifies them.
type UnknownRecord struct {
	ID      StorageID
	Payload []byte
}

// Equal reports whether the two records carry identical payload bytes.
func (u UnknownRecord) Equal(o UnknownRecord) bool {
	return bytes.Equal(u.Payload, o.Payload)
}

// StorageRecord is the tagged union over all record kinds. Exactly one
// of the pointers is set; the record's own StorageID carries the type
// tag used for dispatch. Constructing a value with zero or several
// variants set is a programming error and is rejected by write-operation
// validation before anything reaches the wire.
type StorageRecord struct {
	Contact *ContactRecord
	GroupV1 *GroupV1Record
	GroupV2 *GroupV2Record
	Account *AccountRecord
	Unknown *UnknownRecord
}

// RecordForContact wraps a contact record into the union.
func RecordForContact(c ContactRecord) StorageRecord { return StorageRecord{Contact: &c} }

// RecordForGroupV1 wraps a legacy group record into the union.
func RecordForGroupV1(g GroupV1Record) StorageRecord { return StorageRecord{GroupV1: &g} }

// RecordForGroupV2 wraps a group record into the union.
func RecordForGroupV2(g GroupV2Record) StorageRecord { return StorageRecord{GroupV2: &g} }

// RecordForAccount wraps the account record into the union.
func RecordForAccount(a AccountRecord) StorageRecord { return StorageRecord{Account: &a} }

// RecordForUnknown wraps an opaque record into the union.
func RecordForUnknown(u UnknownRecord) StorageRecord { return StorageRecord{Unknown: &u} }

// ID returns the StorageID of whichever variant is set, or the zero ID
// for a malformed union.
func (r StorageRecord) ID() StorageID {
	switch {
	case r.Contact != nil:
		return r.Contact.ID
	case r.GroupV1 != nil:
		return r.GroupV1.ID
	case r.GroupV2 != nil:
		return r.GroupV2.ID
	case r.Account != nil:
		return r.Account.ID
	case r.Unknown != nil:
		return r.Unknown.ID
	default:
		return StorageID{}
	}
}

// Equal reports whether both unions hold the same variant with the same
// StorageID and identical content. Unlike the per-type Equal methods,
// identity is included: two snapshots of one entity under different IDs
// are not equal.
func (r StorageRecord) Equal(o StorageRecord) bool {
	if r.ID() != o.ID() {
		return false
	}
	switch {
	case r.Contact != nil:
		return o.Contact != nil && r.Contact.Equal(*o.Contact)
	case r.GroupV1 != nil:
		return o.GroupV1 != nil && r.GroupV1.Equal(*o.GroupV1)
	case r.GroupV2 != nil:
		return o.GroupV2 != nil && r.GroupV2.Equal(*o.GroupV2)
	case r.Account != nil:
		return o.Account != nil && r.Account.Equal(*o.Account)
	case r.Unknown != nil:
		return o.Unknown != nil && r.Unknown.Equal(*o.Unknown)
	default:
		return !o.IsValidUnion()
	}
}

// IsValidUnion reports whether exactly one variant is set.
func (r StorageRecord) IsValidUnion() bool {
	n := 0
	if r.Contact != nil {
		n++
	}
	if r.GroupV1 != nil {
		n++
	}
	if r.GroupV2 != nil {
		n++
	}
	if r.Account != nil {
		n++
	}
	if r.Unknown != nil {
		n++
	}
	return n == 1
}
