// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mikhail Khailov

package service

import (
	"testing"

	"github.com/mkhailov/go-storage-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validWriteFixture собирает корректную операцию: свежий контакт поверх
// уже известного манифеста. Тесты портят её по одному полю за раз.
func validWriteFixture() (models.WriteOperation, models.Manifest) {
	held := sid(models.RecordTypeGroupV2, 0xAA)
	insertID := sid(models.RecordTypeContact, 0x01)

	previous := models.Manifest{Version: 4, IDs: []models.StorageID{held}}
	op := models.WriteOperation{
		Manifest: models.Manifest{Version: 5, IDs: []models.StorageID{held, insertID}},
		Inserts: []models.StorageRecord{
			models.RecordForContact(models.ContactRecord{ID: insertID, ServiceID: testContactID}),
		},
	}
	return op, previous
}

func TestValidateWriteOperation_Valid(t *testing.T) {
	op, previous := validWriteFixture()

	require.NoError(t, validateWriteOperation(op, &previous, testSelfID, false))
}

func TestValidateWriteOperation_NoPreviousSkipsSequenceChecks(t *testing.T) {
	op, _ := validWriteFixture()
	op.Manifest.Version = 99

	require.NoError(t, validateWriteOperation(op, nil, testSelfID, false))
}

// ── манифест ─────────────────────────────────────────────────────────────────

func TestValidateWriteOperation_DuplicateManifestID(t *testing.T) {
	op, previous := validWriteFixture()
	op.Manifest.IDs = append(op.Manifest.IDs, op.Manifest.IDs[0])

	err := validateWriteOperation(op, &previous, testSelfID, false)
	require.ErrorIs(t, err, ErrInvalidWriteOperation)
	assert.ErrorContains(t, err, "twice")
}

func TestValidateWriteOperation_ManifestRawCollision(t *testing.T) {
	op, previous := validWriteFixture()
	// Те же 16 байт под другим типом — разные StorageID, общий raw.
	clash := sid(models.RecordTypeGroupV1, 0xAA)
	op.Manifest.IDs = append(op.Manifest.IDs, clash)

	err := validateWriteOperation(op, &previous, testSelfID, false)
	require.ErrorIs(t, err, ErrInvalidWriteOperation)
	assert.ErrorContains(t, err, "raw bytes")
}

// ── вставки ──────────────────────────────────────────────────────────────────

func TestValidateWriteOperation_InvalidUnionInsert(t *testing.T) {
	op, previous := validWriteFixture()
	op.Inserts = append(op.Inserts, models.StorageRecord{})

	err := validateWriteOperation(op, &previous, testSelfID, false)
	require.ErrorIs(t, err, ErrInvalidWriteOperation)
	assert.ErrorContains(t, err, "union")
}

func TestValidateWriteOperation_InsertWithoutID(t *testing.T) {
	op, previous := validWriteFixture()
	op.Inserts = []models.StorageRecord{
		models.RecordForContact(models.ContactRecord{ServiceID: testContactID}),
	}

	err := validateWriteOperation(op, &previous, testSelfID, false)
	require.ErrorIs(t, err, ErrInvalidWriteOperation)
	assert.ErrorContains(t, err, "no storage ID")
}

func TestValidateWriteOperation_InsertedTwice(t *testing.T) {
	op, previous := validWriteFixture()
	op.Inserts = append(op.Inserts, op.Inserts[0])

	err := validateWriteOperation(op, &previous, testSelfID, false)
	require.ErrorIs(t, err, ErrInvalidWriteOperation)
	assert.ErrorContains(t, err, "inserted twice")
}

func TestValidateWriteOperation_InsertMissingFromManifest(t *testing.T) {
	op, previous := validWriteFixture()
	op.Manifest.IDs = op.Manifest.IDs[:1]

	err := validateWriteOperation(op, &previous, testSelfID, false)
	require.ErrorIs(t, err, ErrInvalidWriteOperation)
	assert.ErrorContains(t, err, "missing from manifest")
}

func TestValidateWriteOperation_SelfUploadedAsContact(t *testing.T) {
	op, previous := validWriteFixture()
	op.Inserts[0].Contact.ServiceID = testSelfID

	err := validateWriteOperation(op, &previous, testSelfID, false)
	require.ErrorIs(t, err, ErrInvalidWriteOperation)
	assert.ErrorContains(t, err, "self")
}

func TestValidateWriteOperation_DuplicateContactIdentity(t *testing.T) {
	op, previous := validWriteFixture()
	secondID := sid(models.RecordTypeContact, 0x02)
	op.Manifest.IDs = append(op.Manifest.IDs, secondID)
	op.Inserts = append(op.Inserts, models.RecordForContact(models.ContactRecord{
		ID:        secondID,
		ServiceID: testContactID,
	}))

	err := validateWriteOperation(op, &previous, testSelfID, false)
	require.ErrorIs(t, err, ErrInvalidWriteOperation)
	assert.ErrorContains(t, err, "share identity")
}

func TestValidateWriteOperation_DuplicateGroupV1ID(t *testing.T) {
	op, previous := validWriteFixture()
	firstID := sid(models.RecordTypeGroupV1, 0x03)
	secondID := sid(models.RecordTypeGroupV1, 0x04)
	op.Manifest.IDs = append(op.Manifest.IDs, firstID, secondID)
	op.Inserts = append(op.Inserts,
		models.RecordForGroupV1(models.GroupV1Record{ID: firstID, GroupID: testGroupV1ID(0x05)}),
		models.RecordForGroupV1(models.GroupV1Record{ID: secondID, GroupID: testGroupV1ID(0x05)}),
	)

	err := validateWriteOperation(op, &previous, testSelfID, false)
	require.ErrorIs(t, err, ErrInvalidWriteOperation)
	assert.ErrorContains(t, err, "group ID")
}

func TestValidateWriteOperation_DuplicateGroupMasterKey(t *testing.T) {
	op, previous := validWriteFixture()
	firstID := sid(models.RecordTypeGroupV2, 0x06)
	secondID := sid(models.RecordTypeGroupV2, 0x07)
	op.Manifest.IDs = append(op.Manifest.IDs, firstID, secondID)
	op.Inserts = append(op.Inserts,
		models.RecordForGroupV2(models.GroupV2Record{ID: firstID, MasterKey: testMasterKey(0x08)}),
		models.RecordForGroupV2(models.GroupV2Record{ID: secondID, MasterKey: testMasterKey(0x08)}),
	)

	err := validateWriteOperation(op, &previous, testSelfID, false)
	require.ErrorIs(t, err, ErrInvalidWriteOperation)
	assert.ErrorContains(t, err, "master key")
}

func TestValidateWriteOperation_TwoAccountInserts(t *testing.T) {
	op, previous := validWriteFixture()
	firstID := sid(models.RecordTypeAccount, 0x09)
	secondID := sid(models.RecordTypeAccount, 0x0A)
	op.Manifest.IDs = append(op.Manifest.IDs, firstID, secondID)
	op.Inserts = append(op.Inserts,
		models.RecordForAccount(models.AccountRecord{ID: firstID}),
		models.RecordForAccount(models.AccountRecord{ID: secondID, GivenName: "other"}),
	)

	err := validateWriteOperation(op, &previous, testSelfID, false)
	require.ErrorIs(t, err, ErrInvalidWriteOperation)
	assert.ErrorContains(t, err, "account")
}

// ── удаления ─────────────────────────────────────────────────────────────────

func TestValidateWriteOperation_DeleteOfInsertedID(t *testing.T) {
	op, previous := validWriteFixture()
	op.Deletes = []models.StorageID{op.Inserts[0].ID()}

	err := validateWriteOperation(op, &previous, testSelfID, false)
	require.ErrorIs(t, err, ErrInvalidWriteOperation)
	assert.ErrorContains(t, err, "both inserted and deleted")
}

func TestValidateWriteOperation_DeleteStillListedInManifest(t *testing.T) {
	op, previous := validWriteFixture()
	op.Deletes = []models.StorageID{op.Manifest.IDs[0]}

	err := validateWriteOperation(op, &previous, testSelfID, false)
	require.ErrorIs(t, err, ErrInvalidWriteOperation)
	assert.ErrorContains(t, err, "still listed")
}

// ── сверка с предыдущим манифестом ───────────────────────────────────────────

func TestValidateWriteOperation_VersionMustFollowPrevious(t *testing.T) {
	op, previous := validWriteFixture()
	op.Manifest.Version = previous.Version + 2

	err := validateWriteOperation(op, &previous, testSelfID, false)
	require.ErrorIs(t, err, ErrInvalidWriteOperation)
	assert.ErrorContains(t, err, "does not follow")
}

func TestValidateWriteOperation_ManifestIDNeitherHeldNorInserted(t *testing.T) {
	op, previous := validWriteFixture()
	op.Manifest.IDs = append(op.Manifest.IDs, sid(models.RecordTypeContact, 0x0B))

	err := validateWriteOperation(op, &previous, testSelfID, false)
	require.ErrorIs(t, err, ErrInvalidWriteOperation)
	assert.ErrorContains(t, err, "neither held nor inserted")
}

func TestValidateWriteOperation_ForcePushRelaxesSequenceChecks(t *testing.T) {
	op, previous := validWriteFixture()
	op.Manifest.Version = previous.Version + 7
	op.Manifest.IDs = append(op.Manifest.IDs, sid(models.RecordTypeContact, 0x0C))

	// Перед force push цикл делает запись на лучшее усилие: проверки
	// последовательности отключены, структурные остаются.
	require.NoError(t, validateWriteOperation(op, &previous, testSelfID, true))
}
