package service

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/mkhailov/go-storage-sync/internal/mock"
	"github.com/mkhailov/go-storage-sync/internal/store"
	"github.com/mkhailov/go-storage-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testGroupV1ID(b byte) []byte {
	return bytes.Repeat([]byte{b}, models.GroupV1IDSize)
}

func newTestGroupV1Processor(t *testing.T, ctrl *gomock.Controller) (*groupV1Processor, *mock.MockLocalQueries, *mock.MockIDGenerator) {
	t.Helper()
	q := mock.NewMockLocalQueries(ctrl)
	ids := mock.NewMockIDGenerator(ctrl)
	return newGroupV1Processor(q, ids), q, ids
}

// ── isInvalid ────────────────────────────────────────────────────────────────

func TestGroupV1Processor_IsInvalid_WrongIDLength(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p, _, _ := newTestGroupV1Processor(t, ctrl)
	ctx := context.Background()

	got, err := p.isInvalid(ctx, models.GroupV1Record{GroupID: []byte("short")})
	require.NoError(t, err)
	assert.True(t, got)

	got, err = p.isInvalid(ctx, models.GroupV1Record{})
	require.NoError(t, err)
	assert.True(t, got)
}

func TestGroupV1Processor_IsInvalid_MigratedGroupIsStale(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p, q, _ := newTestGroupV1Processor(t, ctrl)
	ctx := context.Background()
	groupID := testGroupV1ID(0x01)

	// Локально группа уже переехала на V2: серверная V1-запись устарела
	// и подлежит удалению.
	q.EXPECT().FindGroupV1ByID(ctx, groupID).Return(models.Recipient{
		RowID:       3,
		Kind:        models.RecordTypeGroupV1,
		GroupID:     groupID,
		GV1Migrated: true,
	}, nil)

	got, err := p.isInvalid(ctx, models.GroupV1Record{GroupID: groupID})
	require.NoError(t, err)
	assert.True(t, got)
}

func TestGroupV1Processor_IsInvalid_UnknownGroupIsValid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p, q, _ := newTestGroupV1Processor(t, ctrl)
	ctx := context.Background()
	groupID := testGroupV1ID(0x02)

	q.EXPECT().FindGroupV1ByID(ctx, groupID).Return(models.Recipient{}, store.ErrRecipientNotFound)

	got, err := p.isInvalid(ctx, models.GroupV1Record{GroupID: groupID})
	require.NoError(t, err)
	assert.False(t, got)
}

func TestGroupV1Processor_IsInvalid_LookupError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p, q, _ := newTestGroupV1Processor(t, ctrl)
	ctx := context.Background()
	groupID := testGroupV1ID(0x03)

	q.EXPECT().FindGroupV1ByID(ctx, groupID).Return(models.Recipient{}, errors.New("db error"))

	_, err := p.isInvalid(ctx, models.GroupV1Record{GroupID: groupID})
	require.Error(t, err)
}

// ── getMatching / merge ──────────────────────────────────────────────────────

func TestGroupV1Processor_GetMatching(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p, q, _ := newTestGroupV1Processor(t, ctrl)
	ctx := context.Background()
	groupID := testGroupV1ID(0x04)

	row := models.Recipient{
		RowID:     4,
		Kind:      models.RecordTypeGroupV1,
		GroupID:   groupID,
		StorageID: sid(models.RecordTypeGroupV1, 0x05),
		Archived:  true,
	}
	q.EXPECT().FindGroupV1ByID(ctx, groupID).Return(row, nil)

	got, err := p.getMatching(ctx, models.GroupV1Record{GroupID: groupID})
	require.NoError(t, err)

	require.NotNil(t, got)
	assert.Equal(t, row.StorageID, got.ID)
	assert.True(t, got.Archived)
}

func TestGroupV1Processor_Merge_OrSemantics(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p, _, ids := newTestGroupV1Processor(t, ctrl)
	groupID := testGroupV1ID(0x06)

	remote := models.GroupV1Record{
		ID:      sid(models.RecordTypeGroupV1, 0x07),
		GroupID: groupID,
		Blocked: true,
	}
	local := models.GroupV1Record{
		ID:             sid(models.RecordTypeGroupV1, 0x08),
		GroupID:        groupID,
		ProfileSharing: true,
		MuteUntil:      300,
	}

	fresh := sid(models.RecordTypeGroupV1, 0x09)
	ids.EXPECT().NewID(models.RecordTypeGroupV1).Return(fresh, nil)

	merged, err := p.merge(remote, local)
	require.NoError(t, err)

	assert.Equal(t, fresh, merged.ID)
	assert.True(t, merged.Blocked)
	assert.True(t, merged.ProfileSharing)
	assert.Equal(t, int64(300), merged.MuteUntil)
}

func TestGroupV1Processor_Merge_NoChangeKeepsRemote(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p, _, _ := newTestGroupV1Processor(t, ctrl)
	groupID := testGroupV1ID(0x0A)

	remote := models.GroupV1Record{
		ID:        sid(models.RecordTypeGroupV1, 0x0B),
		GroupID:   groupID,
		Archived:  true,
		MuteUntil: 10,
	}
	local := models.GroupV1Record{
		ID:      sid(models.RecordTypeGroupV1, 0x0C),
		GroupID: groupID,
	}

	merged, err := p.merge(remote, local)
	require.NoError(t, err)
	assert.Equal(t, remote, merged, "remote покрывает local — новый ID не нужен")
}

// ── insertLocal / updateLocal ────────────────────────────────────────────────

func TestGroupV1Processor_InsertLocal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p, q, _ := newTestGroupV1Processor(t, ctrl)
	ctx := context.Background()
	groupID := testGroupV1ID(0x0D)

	remote := models.GroupV1Record{
		ID:      sid(models.RecordTypeGroupV1, 0x0E),
		GroupID: groupID,
		Blocked: true,
	}

	q.EXPECT().InsertRecipient(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, rec models.Recipient) (int64, error) {
			assert.Equal(t, models.RecordTypeGroupV1, rec.Kind)
			assert.Equal(t, groupID, rec.GroupID)
			assert.Equal(t, remote.ID, rec.StorageID)
			assert.True(t, rec.Blocked)
			return 1, nil
		},
	)

	require.NoError(t, p.insertLocal(ctx, remote))
}

func TestGroupV1Processor_UpdateLocal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p, q, _ := newTestGroupV1Processor(t, ctrl)
	ctx := context.Background()
	groupID := testGroupV1ID(0x0F)

	local := models.GroupV1Record{ID: sid(models.RecordTypeGroupV1, 0x10), GroupID: groupID}
	merged := models.GroupV1Record{
		ID:        sid(models.RecordTypeGroupV1, 0x11),
		GroupID:   groupID,
		MuteUntil: 500,
	}

	row := models.Recipient{RowID: 6, Kind: models.RecordTypeGroupV1, GroupID: groupID, StorageID: local.ID, GV1Migrated: true}

	q.EXPECT().FindRecipientByStorageID(ctx, local.ID).Return(row, nil)
	q.EXPECT().UpdateRecipient(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, rec models.Recipient) error {
			assert.Equal(t, merged.ID, rec.StorageID)
			assert.Equal(t, int64(500), rec.MuteUntil)
			assert.True(t, rec.GV1Migrated, "локальный флаг миграции переживает merge")
			return nil
		},
	)

	require.NoError(t, p.updateLocal(ctx, local, merged))
}

func TestGroupV1Processor_SemanticKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p, _, _ := newTestGroupV1Processor(t, ctrl)
	groupID := testGroupV1ID(0x12)

	assert.Equal(t, string(groupID), p.semanticKey(models.GroupV1Record{GroupID: groupID}))
}
