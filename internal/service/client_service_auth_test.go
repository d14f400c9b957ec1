package service

import (
	"context"
	"testing"

	"github.com/mkhailov/go-storage-sync/internal/crypto"
	"github.com/mkhailov/go-storage-sync/internal/logger"
	"github.com/mkhailov/go-storage-sync/internal/mock"
	"github.com/mkhailov/go-storage-sync/internal/store"
	"github.com/mkhailov/go-storage-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestClientAuth — хелпер для создания clientAuthService с моками
func newTestClientAuth(
	t *testing.T,
	ctrl *gomock.Controller,
) (
	*clientAuthService,
	*mock.MockServerAdapter,
	*mock.MockLocalRecordStore,
	*mock.MockStateStore,
	*mock.MockRecordCipher,
) {
	t.Helper()
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	mockRecords := mock.NewMockLocalRecordStore(ctrl)
	mockState := mock.NewMockStateStore(ctrl)
	mockCipher := mock.NewMockRecordCipher(ctrl)

	storages := &store.ClientStorages{Records: mockRecords, State: mockState}
	svc := NewClientAuthService(storages, mockAdapter, mockCipher, logger.Nop()).(*clientAuthService)

	return svc, mockAdapter, mockRecords, mockState, mockCipher
}

// ── Register ─────────────────────────────────────────────────────────────────

func TestClientAuthService_Register_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockRecords, mockState, mockCipher := newTestClientAuth(t, ctrl)
	ctx := context.Background()

	salt := []byte("fresh-salt-16bb!")
	key := []byte("derived-storage-key-32-bytes-pad")

	gomock.InOrder(
		mockAdapter.EXPECT().Register(ctx, "user", "pass").Return(testSelfID, nil),
		// свежее устройство: соли ещё нет, генерируем и сохраняем
		mockState.EXPECT().StorageKeySalt().Return(nil, nil),
		mockCipher.EXPECT().GenerateSalt().Return(salt, nil),
		mockState.EXPECT().SetStorageKeySalt(salt).Return(nil),
		mockCipher.EXPECT().DeriveStorageKey("master-secret", salt).Return(key),
		mockState.EXPECT().SetStorageKey(key).Return(nil),
		mockRecords.EXPECT().GetAccount(ctx).Return(models.AccountSettings{}, store.ErrAccountNotFound),
		mockRecords.EXPECT().SaveAccount(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, acc models.AccountSettings) error {
				assert.Equal(t, testSelfID, acc.ServiceID)
				assert.Equal(t, models.DirtyPendingInsert, acc.Dirty, "строка аккаунта должна уйти с первым циклом")
				return nil
			},
		),
		mockState.EXPECT().SetRegistered(true).Return(nil),
	)

	err := svc.Register(ctx, "user", "pass", "master-secret")
	require.NoError(t, err)
}

func TestClientAuthService_Register_EmptyArgs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _, _ := newTestClientAuth(t, ctrl)
	ctx := context.Background()

	tests := []struct {
		name                          string
		login, password, masterSecret string
	}{
		{name: "без логина", password: "pass", masterSecret: "secret"},
		{name: "без пароля", login: "user", masterSecret: "secret"},
		{name: "без мастер-секрета", login: "user", password: "pass"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.Register(ctx, tt.login, tt.password, tt.masterSecret)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

func TestClientAuthService_Register_ServerError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _, _, _ := newTestClientAuth(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().Register(ctx, "user", "pass").Return("", assert.AnError)

	err := svc.Register(ctx, "user", "pass", "master-secret")
	require.ErrorIs(t, err, ErrRegisterOnServer)
}

func TestClientAuthService_Register_SeedAccountError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockRecords, mockState, mockCipher := newTestClientAuth(t, ctrl)
	ctx := context.Background()

	salt := []byte("salt")

	mockAdapter.EXPECT().Register(ctx, "user", "pass").Return(testSelfID, nil)
	mockState.EXPECT().StorageKeySalt().Return(nil, nil)
	mockCipher.EXPECT().GenerateSalt().Return(salt, nil)
	mockState.EXPECT().SetStorageKeySalt(salt).Return(nil)
	mockCipher.EXPECT().DeriveStorageKey("master-secret", salt).Return([]byte("key"))
	mockState.EXPECT().SetStorageKey([]byte("key")).Return(nil)
	mockRecords.EXPECT().GetAccount(ctx).Return(models.AccountSettings{}, store.ErrAccountNotFound)
	mockRecords.EXPECT().SaveAccount(ctx, gomock.Any()).Return(assert.AnError)

	err := svc.Register(ctx, "user", "pass", "master-secret")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "seed account row")
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestClientAuthService_Login_ReusesSalt(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockRecords, mockState, mockCipher := newTestClientAuth(t, ctrl)
	ctx := context.Background()

	salt := []byte("persisted-salt!!")
	key := []byte("derived-storage-key-32-bytes-pad")

	gomock.InOrder(
		mockAdapter.EXPECT().Login(ctx, "user", "pass").Return(testSelfID, nil),
		// повторный вход: соль уже есть, GenerateSalt не зовём — иначе
		// производный ключ перестанет совпадать с прежним
		mockState.EXPECT().StorageKeySalt().Return(salt, nil),
		mockCipher.EXPECT().DeriveStorageKey("master-secret", salt).Return(key),
		mockState.EXPECT().SetStorageKey(key).Return(nil),
		mockRecords.EXPECT().GetAccount(ctx).Return(models.AccountSettings{ServiceID: testSelfID}, nil),
		mockState.EXPECT().SetRegistered(true).Return(nil),
	)

	err := svc.Login(ctx, "user", "pass", "master-secret")
	require.NoError(t, err)
}

func TestClientAuthService_Login_EmptyArgs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _, _ := newTestClientAuth(t, ctrl)

	err := svc.Login(context.Background(), "", "pass", "secret")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestClientAuthService_Login_ServerError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _, _, _ := newTestClientAuth(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().Login(ctx, "user", "wrong").Return("", assert.AnError)

	err := svc.Login(ctx, "user", "wrong", "master-secret")
	require.ErrorIs(t, err, ErrLoginOnServer)
}

func TestClientAuthService_Login_ForeignAccountRefused(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockRecords, mockState, mockCipher := newTestClientAuth(t, ctrl)
	ctx := context.Background()

	salt := []byte("persisted-salt!!")

	mockAdapter.EXPECT().Login(ctx, "user", "pass").Return(testSelfID, nil)
	mockState.EXPECT().StorageKeySalt().Return(salt, nil)
	mockCipher.EXPECT().DeriveStorageKey("master-secret", salt).Return([]byte("key"))
	mockState.EXPECT().SetStorageKey([]byte("key")).Return(nil)
	// в локальной базе живёт чужой аккаунт — сливать их нельзя
	mockRecords.EXPECT().GetAccount(ctx).Return(models.AccountSettings{ServiceID: testContactID}, nil)

	err := svc.Login(ctx, "user", "pass", "master-secret")
	require.ErrorIs(t, err, ErrLocalStateMismatch)
}

func TestClientAuthService_Login_SaltReadError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _, mockState, _ := newTestClientAuth(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().Login(ctx, "user", "pass").Return(testSelfID, nil)
	mockState.EXPECT().StorageKeySalt().Return(nil, assert.AnError)

	err := svc.Login(ctx, "user", "pass", "master-secret")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read storage key salt")
}

// ── Integration: реальная крипта, мок только адаптер и хранилища ─────────────

func TestIntegration_RegisterThenLogin_StableStorageKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAdapter := mock.NewMockServerAdapter(ctrl)
	mockRecords := mock.NewMockLocalRecordStore(ctrl)
	mockState := mock.NewMockStateStore(ctrl)

	cipher := crypto.NewRecordCipher()
	storages := &store.ClientStorages{Records: mockRecords, State: mockState}
	svc := NewClientAuthService(storages, mockAdapter, cipher, logger.Nop()).(*clientAuthService)

	ctx := context.Background()

	var persistedSalt, firstKey, secondKey []byte

	// ── Register: соль генерируется и сохраняется ──
	mockAdapter.EXPECT().Register(ctx, "user", "pass").Return(testSelfID, nil)
	mockState.EXPECT().StorageKeySalt().Return(nil, nil)
	mockState.EXPECT().SetStorageKeySalt(gomock.Any()).DoAndReturn(func(salt []byte) error {
		persistedSalt = salt
		return nil
	})
	mockState.EXPECT().SetStorageKey(gomock.Any()).DoAndReturn(func(key []byte) error {
		firstKey = key
		return nil
	})
	mockRecords.EXPECT().GetAccount(ctx).Return(models.AccountSettings{}, store.ErrAccountNotFound)
	mockRecords.EXPECT().SaveAccount(ctx, gomock.Any()).Return(nil)
	mockState.EXPECT().SetRegistered(true).Return(nil)

	require.NoError(t, svc.Register(ctx, "user", "pass", "master-secret"))
	require.Len(t, persistedSalt, crypto.SaltSize)
	require.Len(t, firstKey, crypto.StorageKeySize)

	// ── Login на том же устройстве: соль переиспользуется ──
	mockAdapter.EXPECT().Login(ctx, "user", "pass").Return(testSelfID, nil)
	mockState.EXPECT().StorageKeySalt().DoAndReturn(func() ([]byte, error) {
		return persistedSalt, nil
	})
	mockState.EXPECT().SetStorageKey(gomock.Any()).DoAndReturn(func(key []byte) error {
		secondKey = key
		return nil
	})
	mockRecords.EXPECT().GetAccount(ctx).Return(models.AccountSettings{ServiceID: testSelfID}, nil)
	mockState.EXPECT().SetRegistered(true).Return(nil)

	require.NoError(t, svc.Login(ctx, "user", "pass", "master-secret"))
	assert.Equal(t, firstKey, secondKey, "один master secret + одна соль → один и тот же ключ")
}
