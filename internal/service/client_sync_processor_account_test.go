package service

import (
	"context"
	"testing"

	"github.com/mkhailov/go-storage-sync/internal/mock"
	"github.com/mkhailov/go-storage-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestAccountProcessor(t *testing.T, ctrl *gomock.Controller, self models.AccountSettings) (*accountProcessor, *mock.MockLocalQueries, *mock.MockIDGenerator) {
	t.Helper()
	q := mock.NewMockLocalQueries(ctrl)
	ids := mock.NewMockIDGenerator(ctrl)
	return newAccountProcessor(q, ids, self), q, ids
}

func TestAccountProcessor_GetMatching_ReturnsSelf(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	self := models.AccountSettings{
		ServiceID:    testSelfID,
		StorageID:    sid(models.RecordTypeAccount, 0x01),
		GivenName:    "Self",
		ReadReceipts: true,
	}
	p, _, _ := newTestAccountProcessor(t, ctrl, self)

	got, err := p.getMatching(context.Background(), models.AccountRecord{})
	require.NoError(t, err)

	require.NotNil(t, got)
	assert.Equal(t, self.StorageID, got.ID)
	assert.Equal(t, "Self", got.GivenName)
	assert.True(t, got.ReadReceipts)
}

func TestAccountProcessor_GetMatching_AssignsIDToFreshRow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Строка аккаунта засеяна при регистрации, но ID ещё не назначен.
	self := models.AccountSettings{ServiceID: testSelfID}
	p, q, ids := newTestAccountProcessor(t, ctrl, self)
	ctx := context.Background()

	fresh := sid(models.RecordTypeAccount, 0x02)
	ids.EXPECT().NewID(models.RecordTypeAccount).Return(fresh, nil)
	q.EXPECT().SaveAccount(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, acc models.AccountSettings) error {
			assert.Equal(t, fresh, acc.StorageID)
			return nil
		},
	)

	got, err := p.getMatching(ctx, models.AccountRecord{})
	require.NoError(t, err)

	require.NotNil(t, got)
	assert.Equal(t, fresh, got.ID)
}

func TestAccountProcessor_Merge_RemoteSettingsWin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p, _, ids := newTestAccountProcessor(t, ctrl, models.AccountSettings{ServiceID: testSelfID})

	// Настройки-переключатели берутся с сервера как есть, липкий только
	// NoteToSelfArchived.
	remote := models.AccountRecord{
		ID:           sid(models.RecordTypeAccount, 0x03),
		ReadReceipts: false,
		LinkPreviews: true,
	}
	local := models.AccountRecord{
		ID:                 sid(models.RecordTypeAccount, 0x04),
		GivenName:          "Self",
		ReadReceipts:       true,
		NoteToSelfArchived: true,
	}

	fresh := sid(models.RecordTypeAccount, 0x05)
	ids.EXPECT().NewID(models.RecordTypeAccount).Return(fresh, nil)

	merged, err := p.merge(remote, local)
	require.NoError(t, err)

	assert.Equal(t, fresh, merged.ID)
	assert.Equal(t, "Self", merged.GivenName, "пустое имя на сервере не затирает локальное")
	assert.False(t, merged.ReadReceipts, "ReadReceipts берётся с сервера")
	assert.True(t, merged.LinkPreviews)
	assert.True(t, merged.NoteToSelfArchived)
}

func TestAccountProcessor_Merge_IdenticalKeepsRemote(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p, _, _ := newTestAccountProcessor(t, ctrl, models.AccountSettings{ServiceID: testSelfID})

	remote := models.AccountRecord{
		ID:        sid(models.RecordTypeAccount, 0x06),
		GivenName: "Self",
	}
	local := models.AccountRecord{
		ID:        sid(models.RecordTypeAccount, 0x07),
		GivenName: "Self",
	}

	merged, err := p.merge(remote, local)
	require.NoError(t, err)
	assert.Equal(t, remote, merged)
}

func TestAccountProcessor_UpdateLocal_SavesMergedSettings(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	self := models.AccountSettings{
		ServiceID: testSelfID,
		StorageID: sid(models.RecordTypeAccount, 0x08),
		Dirty:     models.DirtyPendingUpdate,
	}
	p, q, _ := newTestAccountProcessor(t, ctrl, self)
	ctx := context.Background()

	merged := models.AccountRecord{
		ID:            sid(models.RecordTypeAccount, 0x09),
		GivenName:     "Merged",
		AvatarURLPath: "/avatars/1",
	}

	q.EXPECT().SaveAccount(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, acc models.AccountSettings) error {
			assert.Equal(t, testSelfID, acc.ServiceID, "адрес аккаунта не меняется merge-ом")
			assert.Equal(t, merged.ID, acc.StorageID)
			assert.Equal(t, "Merged", acc.GivenName)
			assert.Equal(t, "/avatars/1", acc.AvatarURLPath)
			assert.Equal(t, models.DirtyClean, acc.Dirty)
			return nil
		},
	)

	require.NoError(t, p.updateLocal(ctx, models.AccountRecord{}, merged))
}

func TestAccountProcessor_InsertLocal_IsUnreachable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p, _, _ := newTestAccountProcessor(t, ctrl, models.AccountSettings{ServiceID: testSelfID})

	require.Error(t, p.insertLocal(context.Background(), models.AccountRecord{}))
}

func TestAccountProcessor_SemanticKeyIsConstant(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p, _, _ := newTestAccountProcessor(t, ctrl, models.AccountSettings{})

	// Все account-записи описывают одну сущность: второй серверный
	// аккаунт в пачке — дубликат.
	assert.Equal(t, p.semanticKey(models.AccountRecord{GivenName: "a"}), p.semanticKey(models.AccountRecord{GivenName: "b"}))
}
