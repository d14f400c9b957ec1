package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mkhailov/go-storage-sync/internal/logger"
	"github.com/mkhailov/go-storage-sync/models"
)

// accountRepository is the PostgreSQL-backed implementation of
// [AccountRepository]. It handles account creation and lookup against the
// "accounts" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type accountRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAccountRepository constructs an [AccountRepository] backed by the
// provided database connection and logger.
func NewAccountRepository(db *DB, logger *logger.Logger) AccountRepository {
	logger.Debug().Msg("creating account repository")
	return &accountRepository{
		db:     db,
		logger: logger,
	}
}

// CreateAccount persists a new account record and returns the fully
// populated [models.Account] with server-assigned fields (AccountID,
// CreatedAt).
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrLoginAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *accountRepository) CreateAccount(ctx context.Context, account models.Account) (models.Account, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createAccount, account.Login, account.AuthHash, account.ServiceID)

	var created models.Account
	if err := row.Scan(&created.AccountID, &created.Login, &created.AuthHash, &created.ServiceID, &created.CreatedAt); err != nil {
		if IsUniqueViolation(err) {
			return models.Account{}, ErrLoginAlreadyExists
		}

		log.Err(err).Str("func", "*accountRepository.CreateAccount").Msg("error: scanning created account")
		return models.Account{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// FindAccountByLogin retrieves the account whose Login matches the given
// value.
//
// Error handling:
//   - No matching row → [ErrNoAccountWasFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *accountRepository) FindAccountByLogin(ctx context.Context, login string) (models.Account, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, findAccountByLogin, login)

	var found models.Account
	if err := row.Scan(&found.AccountID, &found.Login, &found.AuthHash, &found.ServiceID, &found.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Account{}, ErrNoAccountWasFound
		}

		log.Err(err).Str("func", "*accountRepository.FindAccountByLogin").Msg("error: scanning found account")
		return models.Account{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}
