// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mikhail Khailov

package models

import "bytes"

// AccountRecord is the synced projection of the account's own settings.
// Exactly one account record exists per account; its semantic key is the
// self identity, so any two account records refer to the same entity.
type AccountRecord struct {
	ID StorageID `json:"-"`

	GivenName     string `json:"givenName,omitempty"`
	FamilyName    string `json:"familyName,omitempty"`
	AvatarURLPath string `json:"avatarUrlPath,omitempty"`

	NoteToSelfArchived     bool `json:"noteToSelfArchived,omitempty"`
	ReadReceipts           bool `json:"readReceipts,omitempty"`
	TypingIndicators       bool `json:"typingIndicators,omitempty"`
	SealedSenderIndicators bool `json:"sealedSenderIndicators,omitempty"`
	LinkPreviews           bool `json:"linkPreviews,omitempty"`

	UnknownFields []byte `json:"unknownFields,omitempty"`
}

// Equal reports whether the two records carry identical content,
// excluding the StorageID.
func (a AccountRecord) Equal(o AccountRecord) bool {
	return a.GivenName == o.GivenName &&
		a.FamilyName == o.FamilyName &&
		a.AvatarURLPath == o.AvatarURLPath &&
		a.NoteToSelfArchived == o.NoteToSelfArchived &&
		a.ReadReceipts == o.ReadReceipts &&
		a.TypingIndicators == o.TypingIndicators &&
		a.SealedSenderIndicators == o.SealedSenderIndicators &&
		a.LinkPreviews == o.LinkPreviews &&
		bytes.Equal(a.UnknownFields, o.UnknownFields)
}
