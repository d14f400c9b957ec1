// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mikhail Khailov

package models

// DirtyState marks the uncommitted sync work a local row carries. Rows
// move back to Clean only after the push that included them succeeds.
type DirtyState int32

const (
	DirtyClean DirtyState = iota
	DirtyPendingInsert
	DirtyPendingUpdate
	DirtyPendingDelete
)

// String returns a short name for logging.
func (d DirtyState) String() string {
	switch d {
	case DirtyClean:
		return "clean"
	case DirtyPendingInsert:
		return "insert"
	case DirtyPendingUpdate:
		return "update"
	case DirtyPendingDelete:
		return "delete"
	default:
		return "invalid"
	}
}

// Recipient is the client-side canonical row behind contact and group
// records. One table holds all three kinds; Kind selects which identity
// columns are meaningful (ServiceID/E164 for contacts, GroupID for
// legacy groups, MasterKey for groups).
//
// StorageID is the ID currently assigned to the row; it is zero for
// rows that have never been pushed (PendingInsert).
type Recipient struct {
	RowID int64
	Kind  RecordType

	ServiceID string
	E164      string
	GroupID   []byte
	MasterKey []byte

	StorageID StorageID
	Dirty     DirtyState

	GivenName   string
	FamilyName  string
	ProfileKey  []byte
	IdentityKey []byte

	Blocked        bool
	ProfileSharing bool
	Archived       bool
	ForcedUnread   bool
	MuteUntil      int64

	// GV1Migrated marks a legacy group that has a V2 successor locally;
	// remote records for it are stale and get deleted during merge.
	GV1Migrated bool

	UnknownFields []byte
}

// AccountSettings is the singleton local row behind the account record.
// It is created at registration and never deleted.
type AccountSettings struct {
	ServiceID string

	StorageID StorageID
	Dirty     DirtyState

	GivenName     string
	FamilyName    string
	AvatarURLPath string

	NoteToSelfArchived     bool
	ReadReceipts           bool
	TypingIndicators       bool
	SealedSenderIndicators bool
	LinkPreviews           bool

	UnknownFields []byte
}
