package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mkhailov/go-storage-sync/internal/config"
	"github.com/mkhailov/go-storage-sync/internal/logger"
	"github.com/mkhailov/go-storage-sync/internal/store"
	"github.com/mkhailov/go-storage-sync/internal/utils"
	"github.com/mkhailov/go-storage-sync/models"
)

// authService is the concrete implementation of AuthService.
// It handles account registration, credential verification, and JWT token
// lifecycle using an AccountRepository for persistence and HMAC-SHA256 for
// password hashing.
type authService struct {
	// accounts is the data-access layer used to create and look up accounts.
	accounts store.AccountRepository

	// hashKey is the HMAC secret used when hashing passwords before
	// storage or comparison. Must match the value used at registration time.
	hashKey string

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// AccountRepository and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(accounts store.AccountRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		accounts:      accounts,
		hashKey:       cfg.PasswordHashKey,
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		logger:        logger,
	}
}

// RegisterAccount creates a new account.
//
// It validates that both login and password are non-empty, hashes the
// password with the configured HMAC key, assigns the account a fresh
// service address (clients embed it in contact records and use their own
// to recognise self-records), and delegates persistence to the
// AccountRepository.
//
// Returns the persisted account (with server-assigned AccountID and
// ServiceID) or:
//   - ErrInvalidDataProvided if login or password is empty.
//   - A wrapped storage error if the repository call fails (e.g. login
//     already taken — see store.ErrLoginAlreadyExists).
func (a *authService) RegisterAccount(ctx context.Context, login, password string) (models.Account, error) {
	log := logger.FromContext(ctx)

	if login == "" || password == "" {
		log.Error().Str("login", login).Msg("invalid account data provided")
		return models.Account{}, ErrInvalidDataProvided
	}

	account := models.Account{
		Login:     login,
		AuthHash:  utils.HashString(password, a.hashKey),
		ServiceID: uuid.NewString(),
	}

	registered, err := a.accounts.CreateAccount(ctx, account)
	if err != nil {
		log.Err(err).Str("login", login).Msg("account creation ended with error")
		return models.Account{}, fmt.Errorf("account creation ended with error: %w", err)
	}

	return registered, nil
}

// Login authenticates an existing account.
//
// It validates that both login and password are non-empty, looks the
// account up by login, and compares HMAC-SHA256 password hashes.
//
// Returns the authenticated account record or:
//   - ErrInvalidDataProvided if login or password is empty.
//   - A wrapped storage error if the repository lookup fails (e.g.
//     account not found — see store.ErrNoAccountWasFound).
//   - ErrWrongPassword if the hashed passwords do not match.
func (a *authService) Login(ctx context.Context, login, password string) (models.Account, error) {
	log := logger.FromContext(ctx)

	if login == "" || password == "" {
		log.Error().Str("login", login).Msg("invalid account data provided")
		return models.Account{}, ErrInvalidDataProvided
	}

	found, err := a.accounts.FindAccountByLogin(ctx, login)
	if err != nil {
		log.Err(err).Str("login", login).Msg("account search by login failed")
		return models.Account{}, fmt.Errorf("account search by login failed: %w", err)
	}

	if found.AuthHash != utils.HashString(password, a.hashKey) {
		log.Error().
			Int64("id", found.AccountID).
			Str("login", found.Login).
			Msg("wrong password")
		return models.Account{}, ErrWrongPassword
	}

	return found, nil
}

// CreateToken issues a signed JWT for the given account.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
//
// Returns the token model on success or a wrapped error if JWT generation fails.
func (a *authService) CreateToken(ctx context.Context, account models.Account) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, account.AccountID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature and
// the issuer claim. Any validation failure (expired, wrong issuer, malformed)
// is normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors.
//
// Returns the decoded token model on success or ErrTokenIsExpiredOrInvalid on
// any validation failure.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
