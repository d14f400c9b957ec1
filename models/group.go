// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mikhail Khailov

package models

import "bytes"

// GroupV1IDSize is the width of a legacy group identifier.
const GroupV1IDSize = 16

// GroupMasterKeySize is the width of a GroupV2 master key.
const GroupMasterKeySize = 32

// GroupV1Record is the synced projection of a legacy group. Its semantic
// key is the group ID bytes.
type GroupV1Record struct {
	ID StorageID `json:"-"`

	GroupID []byte `json:"groupId"`

	Blocked        bool  `json:"blocked,omitempty"`
	ProfileSharing bool  `json:"profileSharing,omitempty"`
	Archived       bool  `json:"archived,omitempty"`
	ForcedUnread   bool  `json:"forcedUnread,omitempty"`
	MuteUntil      int64 `json:"muteUntil,omitempty"`

	UnknownFields []byte `json:"unknownFields,omitempty"`
}

// Equal reports whether the two records carry identical content,
// excluding the StorageID.
func (g GroupV1Record) Equal(o GroupV1Record) bool {
	return bytes.Equal(g.GroupID, o.GroupID) &&
		g.Blocked == o.Blocked &&
		g.ProfileSharing == o.ProfileSharing &&
		g.Archived == o.Archived &&
		g.ForcedUnread == o.ForcedUnread &&
		g.MuteUntil == o.MuteUntil &&
		bytes.Equal(g.UnknownFields, o.UnknownFields)
}

// GroupV2Record is the synced projection of a modern group. Its semantic
// key is the master key, from which the group ID is derived.
type GroupV2Record struct {
	ID StorageID `json:"-"`

	MasterKey []byte `json:"masterKey"`

	Blocked        bool  `json:"blocked,omitempty"`
	ProfileSharing bool  `json:"profileSharing,omitempty"`
	Archived       bool  `json:"archived,omitempty"`
	ForcedUnread   bool  `json:"forcedUnread,omitempty"`
	MuteUntil      int64 `json:"muteUntil,omitempty"`

	UnknownFields []byte `json:"unknownFields,omitempty"`
}

// Equal reports whether the two records carry identical content,
// excluding the StorageID.
func (g GroupV2Record) Equal(o GroupV2Record) bool {
	return bytes.Equal(g.MasterKey, o.MasterKey) &&
		g.Blocked == o.Blocked &&
		g.ProfileSharing == o.ProfileSharing &&
		g.Archived == o.Archived &&
		g.ForcedUnread == o.ForcedUnread &&
		g.MuteUntil == o.MuteUntil &&
		bytes.Equal(g.UnknownFields, o.UnknownFields)
}
