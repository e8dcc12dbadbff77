package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-share-cache/internal/logger"
	"github.com/MKhiriev/go-share-cache/internal/utils"
	"github.com/MKhiriev/go-share-cache/models"
)

func (h *Handler) listAccounts(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	accounts, err := h.services.Accounts.ListAccounts(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.listAccounts").Msg("error listing accounts")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.AccountsResponse{Accounts: accounts, Length: len(accounts)}, http.StatusOK)
}

func (h *Handler) saveAccount(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var account models.Account
	if err := json.NewDecoder(r.Body).Decode(&account); err != nil {
		log.Err(err).Str("func", "*Handler.saveAccount").Msg("invalid JSON was passed")
		writeError(w, ErrInvalidJSON)
		return
	}

	if err := h.services.Accounts.SaveAccount(r.Context(), account); err != nil {
		log.Err(err).Str("func", "*Handler.saveAccount").Str("account_id", account.ID).Msg("error saving account")
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
}
