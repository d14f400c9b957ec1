package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/mkhailov/go-storage-sync/internal/app"
	"github.com/mkhailov/go-storage-sync/internal/logger"
	"github.com/mkhailov/go-storage-sync/internal/service"
	"github.com/mkhailov/go-storage-sync/internal/store"
	"github.com/mkhailov/go-storage-sync/internal/utils"
	"github.com/mkhailov/go-storage-sync/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.AuthRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.register").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	account, err := h.services.AuthService.RegisterAccount(ctx, req.Login, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Str("func", "*Handler.register").Msg("invalid data provided")
			http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrLoginAlreadyExists):
			log.Err(err).Str("func", "*Handler.register").Msg("login already exists")
			http.Error(w, app.MsgLoginAlreadyExists, http.StatusConflict)
			return
		default:
			log.Err(err).Str("func", "*Handler.register").Msg("unexpected error occurred during account registration")
			http.Error(w, app.MsgRegistrationFailed, http.StatusInternalServerError)
			return
		}
	}

	h.writeAuthResponse(w, r, account)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.AuthRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.login").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	account, err := h.services.AuthService.Login(ctx, req.Login, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Str("func", "*Handler.login").Msg("invalid data provided")
			http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrNoAccountWasFound) || errors.Is(err, service.ErrWrongPassword):
			log.Err(err).Str("func", "*Handler.login").Msg("no account was found/wrong password")
			http.Error(w, app.MsgInvalidLoginPassword, http.StatusUnauthorized)
			return
		default:
			log.Err(err).Str("func", "*Handler.login").Msg("unexpected error occurred during login")
			http.Error(w, app.MsgLoginFailed, http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Int64("accountID", account.AccountID).Str("func", "*Handler.login").Msg("account successfully logged in")

	h.writeAuthResponse(w, r, account)
}

// writeAuthResponse mints a token for the account and completes the
// auth exchange: the compact JWT goes into the Authorization response
// header и дублируется в JSON-теле рядом с выданным service ID.
func (h *Handler) writeAuthResponse(w http.ResponseWriter, r *http.Request, account models.Account) {
	log := logger.FromRequest(r)

	token, err := h.services.AuthService.CreateToken(r.Context(), account)
	if err != nil {
		log.Err(err).Str("func", "*Handler.writeAuthResponse").Msg("creation of token failed")
		http.Error(w, app.MsgInternalServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, models.AuthResponse{Token: token.SignedString, ServiceID: account.ServiceID}, http.StatusOK)
}
