package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkhailov/go-storage-sync/internal/logger"
	"github.com/mkhailov/go-storage-sync/models"
)

// Тесты гоняются на настоящем SQLite во временном каталоге: слой
// достаточно тонкий, чтобы мокать его было дороже, чем проверить взаправду.

func newTestRecordStore(t *testing.T) *RecordStore {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "records.db")
	s, err := NewRecordStore(context.Background(), dsn, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	return s
}

func contactFixture(t *testing.T, fill byte) models.Recipient {
	t.Helper()
	return models.Recipient{
		Kind:       models.RecordTypeContact,
		ServiceID:  "service-" + string(rune('a'+fill)),
		E164:       "+791600000" + string(rune('0'+fill)),
		StorageID:  storageID(t, models.RecordTypeContact, fill),
		Dirty:      models.DirtyClean,
		GivenName:  "Given",
		FamilyName: "Family",
	}
}

func TestRecordStore_InsertAndFindContact(t *testing.T) {
	s := newTestRecordStore(t)
	ctx := context.Background()

	rec := contactFixture(t, 1)
	rec.ProfileKey = []byte("profile-key")
	rec.IdentityKey = []byte("identity-key")
	rec.Blocked = true
	rec.MuteUntil = 1756000000

	rowID, err := s.InsertRecipient(ctx, rec)
	require.NoError(t, err)
	require.NotZero(t, rowID)
	rec.RowID = rowID

	byService, err := s.FindContactByServiceID(ctx, rec.ServiceID)
	require.NoError(t, err)
	assert.Equal(t, rec, byService)

	byE164, err := s.FindContactByE164(ctx, rec.E164)
	require.NoError(t, err)
	assert.Equal(t, rec, byE164)

	byStorageID, err := s.FindRecipientByStorageID(ctx, rec.StorageID)
	require.NoError(t, err)
	assert.Equal(t, rec, byStorageID)
}

func TestRecordStore_FindMissing(t *testing.T) {
	s := newTestRecordStore(t)
	ctx := context.Background()

	_, err := s.FindContactByServiceID(ctx, "nobody")
	assert.ErrorIs(t, err, ErrRecipientNotFound)

	_, err = s.FindContactByE164(ctx, "+70000000000")
	assert.ErrorIs(t, err, ErrRecipientNotFound)

	_, err = s.FindGroupV1ByID(ctx, []byte("missing-group"))
	assert.ErrorIs(t, err, ErrRecipientNotFound)

	_, err = s.FindGroupV2ByMasterKey(ctx, []byte("missing-key"))
	assert.ErrorIs(t, err, ErrRecipientNotFound)

	_, err = s.FindRecipientByStorageID(ctx, storageID(t, models.RecordTypeContact, 0x7F))
	assert.ErrorIs(t, err, ErrRecipientNotFound)
}

func TestRecordStore_GroupFinders(t *testing.T) {
	s := newTestRecordStore(t)
	ctx := context.Background()

	gv1 := models.Recipient{
		Kind:      models.RecordTypeGroupV1,
		GroupID:   []byte("legacy-group-id-"),
		StorageID: storageID(t, models.RecordTypeGroupV1, 2),
	}
	gv2 := models.Recipient{
		Kind:      models.RecordTypeGroupV2,
		MasterKey: []byte("master-key-32-bytes-aaaaaaaaaaaa"),
		StorageID: storageID(t, models.RecordTypeGroupV2, 3),
	}

	gv1RowID, err := s.InsertRecipient(ctx, gv1)
	require.NoError(t, err)
	gv1.RowID = gv1RowID

	gv2RowID, err := s.InsertRecipient(ctx, gv2)
	require.NoError(t, err)
	gv2.RowID = gv2RowID

	foundGV1, err := s.FindGroupV1ByID(ctx, gv1.GroupID)
	require.NoError(t, err)
	assert.Equal(t, gv1, foundGV1)

	foundGV2, err := s.FindGroupV2ByMasterKey(ctx, gv2.MasterKey)
	require.NoError(t, err)
	assert.Equal(t, gv2, foundGV2)
}

func TestRecordStore_AllStorageIDs(t *testing.T) {
	s := newTestRecordStore(t)
	ctx := context.Background()

	contact := contactFixture(t, 1)
	_, err := s.InsertRecipient(ctx, contact)
	require.NoError(t, err)

	// строка без storage ID ещё не пушилась и в перечисление не попадает
	pending := models.Recipient{Kind: models.RecordTypeContact, ServiceID: "pending", Dirty: models.DirtyPendingInsert}
	_, err = s.InsertRecipient(ctx, pending)
	require.NoError(t, err)

	gv2 := models.Recipient{
		Kind:      models.RecordTypeGroupV2,
		MasterKey: []byte("master-key"),
		StorageID: storageID(t, models.RecordTypeGroupV2, 2),
	}
	_, err = s.InsertRecipient(ctx, gv2)
	require.NoError(t, err)

	accountID := storageID(t, models.RecordTypeAccount, 3)
	require.NoError(t, s.SaveAccount(ctx, models.AccountSettings{
		ServiceID: "self",
		StorageID: accountID,
	}))

	unknownID := storageID(t, models.RecordType(7), 4)
	require.NoError(t, s.InsertUnknownRecords(ctx, []models.UnknownRecord{
		{ID: unknownID, Payload: []byte("opaque")},
	}))

	ids, err := s.AllStorageIDs(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []models.StorageID{contact.StorageID, gv2.StorageID, accountID, unknownID}, ids)
}

func TestRecordStore_UpdateRecipient(t *testing.T) {
	s := newTestRecordStore(t)
	ctx := context.Background()

	rec := contactFixture(t, 1)
	rowID, err := s.InsertRecipient(ctx, rec)
	require.NoError(t, err)
	rec.RowID = rowID

	rec.GivenName = "Renamed"
	rec.Blocked = true
	rec.Dirty = models.DirtyPendingUpdate
	rec.UnknownFields = []byte("carried")
	require.NoError(t, s.UpdateRecipient(ctx, rec))

	got, err := s.FindContactByServiceID(ctx, rec.ServiceID)
	require.NoError(t, err)
	assert.Equal(t, rec, got)
}

func TestRecordStore_UpdateStorageIDs(t *testing.T) {
	s := newTestRecordStore(t)
	ctx := context.Background()

	rec := contactFixture(t, 1)
	rowID, err := s.InsertRecipient(ctx, rec)
	require.NoError(t, err)

	rotated := storageID(t, models.RecordTypeContact, 9)
	require.NoError(t, s.UpdateStorageIDs(ctx, map[int64]models.StorageID{rowID: rotated}))

	got, err := s.FindRecipientByStorageID(ctx, rotated)
	require.NoError(t, err)
	assert.Equal(t, rowID, got.RowID)

	// старый ID больше ни на что не указывает
	_, err = s.FindRecipientByStorageID(ctx, rec.StorageID)
	assert.ErrorIs(t, err, ErrRecipientNotFound)
}

func TestRecordStore_DirtyLifecycle(t *testing.T) {
	s := newTestRecordStore(t)
	ctx := context.Background()

	insert := models.Recipient{Kind: models.RecordTypeContact, ServiceID: "a", Dirty: models.DirtyPendingInsert}
	update := models.Recipient{Kind: models.RecordTypeContact, ServiceID: "b", Dirty: models.DirtyPendingUpdate,
		StorageID: storageID(t, models.RecordTypeContact, 2)}
	deletion := models.Recipient{Kind: models.RecordTypeContact, ServiceID: "c", Dirty: models.DirtyPendingDelete,
		StorageID: storageID(t, models.RecordTypeContact, 3)}

	insertRowID, err := s.InsertRecipient(ctx, insert)
	require.NoError(t, err)
	updateRowID, err := s.InsertRecipient(ctx, update)
	require.NoError(t, err)
	deleteRowID, err := s.InsertRecipient(ctx, deletion)
	require.NoError(t, err)

	pendingInserts, err := s.RecipientsPendingInsertion(ctx)
	require.NoError(t, err)
	require.Len(t, pendingInserts, 1)
	assert.Equal(t, insertRowID, pendingInserts[0].RowID)

	pendingUpdates, err := s.RecipientsPendingUpdate(ctx)
	require.NoError(t, err)
	require.Len(t, pendingUpdates, 1)
	assert.Equal(t, updateRowID, pendingUpdates[0].RowID)

	pendingDeletes, err := s.RecipientsPendingDeletion(ctx)
	require.NoError(t, err)
	require.Len(t, pendingDeletes, 1)
	assert.Equal(t, deleteRowID, pendingDeletes[0].RowID)

	require.NoError(t, s.ClearDirty(ctx, []int64{insertRowID, updateRowID, deleteRowID}))

	pendingInserts, err = s.RecipientsPendingInsertion(ctx)
	require.NoError(t, err)
	assert.Empty(t, pendingInserts)

	pendingUpdates, err = s.RecipientsPendingUpdate(ctx)
	require.NoError(t, err)
	assert.Empty(t, pendingUpdates)

	pendingDeletes, err = s.RecipientsPendingDeletion(ctx)
	require.NoError(t, err)
	assert.Empty(t, pendingDeletes)
}

func TestRecordStore_ClearDirtyByStorageIDs(t *testing.T) {
	s := newTestRecordStore(t)
	ctx := context.Background()

	rec := contactFixture(t, 1)
	rec.Dirty = models.DirtyPendingUpdate
	_, err := s.InsertRecipient(ctx, rec)
	require.NoError(t, err)

	accountID := storageID(t, models.RecordTypeAccount, 2)
	require.NoError(t, s.SaveAccount(ctx, models.AccountSettings{
		ServiceID: "self",
		StorageID: accountID,
		Dirty:     models.DirtyPendingUpdate,
	}))

	// одним вызовом чистятся и получатели, и аккаунт
	require.NoError(t, s.ClearDirtyByStorageIDs(ctx, []models.StorageID{rec.StorageID, accountID}))

	got, err := s.FindContactByServiceID(ctx, rec.ServiceID)
	require.NoError(t, err)
	assert.Equal(t, models.DirtyClean, got.Dirty)

	acc, err := s.GetAccount(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.DirtyClean, acc.Dirty)
}

func TestRecordStore_RecipientsByStorageIDs(t *testing.T) {
	s := newTestRecordStore(t)
	ctx := context.Background()

	first := contactFixture(t, 1)
	second := contactFixture(t, 2)
	firstRowID, err := s.InsertRecipient(ctx, first)
	require.NoError(t, err)
	secondRowID, err := s.InsertRecipient(ctx, second)
	require.NoError(t, err)

	missing := storageID(t, models.RecordTypeContact, 9)

	found, err := s.RecipientsByStorageIDs(ctx, []models.StorageID{first.StorageID, second.StorageID, missing})
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, firstRowID, found[first.StorageID].RowID)
	assert.Equal(t, secondRowID, found[second.StorageID].RowID)

	empty, err := s.RecipientsByStorageIDs(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestRecordStore_DeleteRecipients(t *testing.T) {
	s := newTestRecordStore(t)
	ctx := context.Background()

	first := contactFixture(t, 1)
	second := contactFixture(t, 2)
	firstRowID, err := s.InsertRecipient(ctx, first)
	require.NoError(t, err)
	_, err = s.InsertRecipient(ctx, second)
	require.NoError(t, err)

	require.NoError(t, s.DeleteRecipients(ctx, []int64{firstRowID}))

	_, err = s.FindContactByServiceID(ctx, first.ServiceID)
	assert.ErrorIs(t, err, ErrRecipientNotFound)

	_, err = s.FindContactByServiceID(ctx, second.ServiceID)
	assert.NoError(t, err)

	// пустой список — no-op
	require.NoError(t, s.DeleteRecipients(ctx, nil))
}

func TestRecordStore_AccountRoundTrip(t *testing.T) {
	s := newTestRecordStore(t)
	ctx := context.Background()

	_, err := s.GetAccount(ctx)
	require.ErrorIs(t, err, ErrAccountNotFound)

	acc := models.AccountSettings{
		ServiceID:    "self-service-id",
		StorageID:    storageID(t, models.RecordTypeAccount, 1),
		Dirty:        models.DirtyPendingInsert,
		GivenName:    "Self",
		ReadReceipts: true,
	}
	require.NoError(t, s.SaveAccount(ctx, acc))

	got, err := s.GetAccount(ctx)
	require.NoError(t, err)
	assert.Equal(t, acc, got)

	// повторная запись перекрывает единственную строку
	acc.GivenName = "Renamed"
	acc.StorageID = storageID(t, models.RecordTypeAccount, 2)
	acc.Dirty = models.DirtyClean
	acc.LinkPreviews = true
	require.NoError(t, s.SaveAccount(ctx, acc))

	got, err = s.GetAccount(ctx)
	require.NoError(t, err)
	assert.Equal(t, acc, got)
}

func TestRecordStore_UnknownRecords(t *testing.T) {
	s := newTestRecordStore(t)
	ctx := context.Background()

	first := models.UnknownRecord{ID: storageID(t, models.RecordType(7), 1), Payload: []byte("opaque-1")}
	second := models.UnknownRecord{ID: storageID(t, models.RecordType(9), 2), Payload: []byte("opaque-2")}
	require.NoError(t, s.InsertUnknownRecords(ctx, []models.UnknownRecord{first, second}))

	got, err := s.UnknownRecordsByIDs(ctx, []models.StorageID{first.ID, second.ID})
	require.NoError(t, err)
	assert.ElementsMatch(t, []models.UnknownRecord{first, second}, got)

	// вставка с теми же raw-байтами перекрывает payload
	replaced := models.UnknownRecord{ID: first.ID, Payload: []byte("opaque-1-v2")}
	require.NoError(t, s.InsertUnknownRecords(ctx, []models.UnknownRecord{replaced}))

	got, err = s.UnknownRecordsByIDs(ctx, []models.StorageID{first.ID})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, replaced.Payload, got[0].Payload)

	require.NoError(t, s.DeleteUnknownRecords(ctx, []models.StorageID{first.ID}))

	got, err = s.UnknownRecordsByIDs(ctx, []models.StorageID{first.ID, second.ID})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, second.ID, got[0].ID)

	none, err := s.UnknownRecordsByIDs(ctx, nil)
	require.NoError(t, err)
	assert.Nil(t, none)
}

func TestRecordStore_TransactionRollback(t *testing.T) {
	s := newTestRecordStore(t)
	ctx := context.Background()

	tx, err := s.Begin(ctx)
	require.NoError(t, err)

	rec := contactFixture(t, 1)
	_, err = tx.InsertRecipient(ctx, rec)
	require.NoError(t, err)

	require.NoError(t, tx.Rollback())

	_, err = s.FindContactByServiceID(ctx, rec.ServiceID)
	assert.ErrorIs(t, err, ErrRecipientNotFound)
}

func TestRecordStore_TransactionCommit(t *testing.T) {
	s := newTestRecordStore(t)
	ctx := context.Background()

	tx, err := s.Begin(ctx)
	require.NoError(t, err)

	rec := contactFixture(t, 1)
	rowID, err := tx.InsertRecipient(ctx, rec)
	require.NoError(t, err)
	rec.RowID = rowID

	require.NoError(t, tx.Commit())

	got, err := s.FindContactByServiceID(ctx, rec.ServiceID)
	require.NoError(t, err)
	assert.Equal(t, rec, got)
}
