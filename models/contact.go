// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mikhail Khailov

package models

import "bytes"

// ContactRecord is the synced projection of one contact. The semantic
// identity of a contact is its service address (ServiceID) with the
// phone number (E164) as a legacy fallback; the StorageID is only the
// snapshot identity and rotates on every update.
//
// The ID is never part of the encrypted payload: it travels in the
// manifest and in read/write envelopes, so it carries no json tag.
type ContactRecord struct {
	ID StorageID `json:"-"`

	ServiceID string `json:"serviceId,omitempty"`
	E164      string `json:"e164,omitempty"`

	GivenName   string `json:"givenName,omitempty"`
	FamilyName  string `json:"familyName,omitempty"`
	ProfileKey  []byte `json:"profileKey,omitempty"`
	IdentityKey []byte `json:"identityKey,omitempty"`

	Blocked        bool  `json:"blocked,omitempty"`
	ProfileSharing bool  `json:"profileSharing,omitempty"`
	Archived       bool  `json:"archived,omitempty"`
	ForcedUnread   bool  `json:"forcedUnread,omitempty"`
	MuteUntil      int64 `json:"muteUntil,omitempty"`

	UnknownFields []byte `json:"unknownFields,omitempty"`
}

// Equal reports whether the two records carry identical content. The
// StorageID is identity, not content, and is deliberately excluded.
func (c ContactRecord) Equal(o ContactRecord) bool {
	return c.ServiceID == o.ServiceID &&
		c.E164 == o.E164 &&
		c.GivenName == o.GivenName &&
		c.FamilyName == o.FamilyName &&
		bytes.Equal(c.ProfileKey, o.ProfileKey) &&
		bytes.Equal(c.IdentityKey, o.IdentityKey) &&
		c.Blocked == o.Blocked &&
		c.ProfileSharing == o.ProfileSharing &&
		c.Archived == o.Archived &&
		c.ForcedUnread == o.ForcedUnread &&
		c.MuteUntil == o.MuteUntil &&
		bytes.Equal(c.UnknownFields, o.UnknownFields)
}
