package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/mkhailov/go-storage-sync/internal/adapter"
	"github.com/mkhailov/go-storage-sync/internal/crypto"
	"github.com/mkhailov/go-storage-sync/internal/logger"
	"github.com/mkhailov/go-storage-sync/internal/store"
	"github.com/mkhailov/go-storage-sync/models"
)

type clientAuthService struct {
	records store.LocalRecordStore
	state   store.StateStore
	adapter adapter.ServerAdapter
	cipher  crypto.RecordCipher
	logger  *logger.Logger
}

func NewClientAuthService(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, cipher crypto.RecordCipher, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{
		records: storages.Records,
		state:   storages.State,
		adapter: serverAdapter,
		cipher:  cipher,
		logger:  logger,
	}
}

func (a *clientAuthService) Register(ctx context.Context, login, password, masterSecret string) error {
	if login == "" || password == "" || masterSecret == "" {
		return ErrInvalidDataProvided
	}

	serviceID, err := a.adapter.Register(ctx, login, password)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRegisterOnServer, err)
	}

	if err := a.establishDevice(ctx, serviceID, masterSecret); err != nil {
		return err
	}

	a.logger.Info().Str("func", "clientAuthService.Register").Msg("account registered, device ready to sync")
	return nil
}

func (a *clientAuthService) Login(ctx context.Context, login, password, masterSecret string) error {
	if login == "" || password == "" || masterSecret == "" {
		return ErrInvalidDataProvided
	}

	serviceID, err := a.adapter.Login(ctx, login, password)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrLoginOnServer, err)
	}

	if err := a.establishDevice(ctx, serviceID, masterSecret); err != nil {
		return err
	}

	a.logger.Info().Str("func", "clientAuthService.Login").Msg("login complete, device ready to sync")
	return nil
}

// establishDevice выполняет локальную часть регистрации: ключ, соль,
// строка аккаунта, флаг готовности.
//
// The storage key is derived, never stored remotely: every device that
// knows the master secret and the salt arrives at the same key. The salt
// is generated once per device and reused on re-login so the derived key
// stays stable.
func (a *clientAuthService) establishDevice(ctx context.Context, serviceID, masterSecret string) error {
	salt, err := a.state.StorageKeySalt()
	if err != nil {
		return fmt.Errorf("read storage key salt: %w", err)
	}
	if len(salt) == 0 {
		salt, err = a.cipher.GenerateSalt()
		if err != nil {
			return fmt.Errorf("generate storage key salt: %w", err)
		}
		if err := a.state.SetStorageKeySalt(salt); err != nil {
			return fmt.Errorf("persist storage key salt: %w", err)
		}
	}

	if err := a.state.SetStorageKey(a.cipher.DeriveStorageKey(masterSecret, salt)); err != nil {
		return fmt.Errorf("persist storage key: %w", err)
	}

	acc, err := a.records.GetAccount(ctx)
	switch {
	case errors.Is(err, store.ErrAccountNotFound):
		// First time on this device: seed the account row pending
		// insertion so the first sync cycle uploads (or merges) it.
		acc = models.AccountSettings{ServiceID: serviceID, Dirty: models.DirtyPendingInsert}
		if err := a.records.SaveAccount(ctx, acc); err != nil {
			return fmt.Errorf("seed account row: %w", err)
		}
	case err != nil:
		return fmt.Errorf("read account row: %w", err)
	case acc.ServiceID != serviceID:
		// Refuse rather than merge two accounts' records into one
		// database.
		return fmt.Errorf("%w: local %s, server %s", ErrLocalStateMismatch, acc.ServiceID, serviceID)
	}

	return a.state.SetRegistered(true)
}
