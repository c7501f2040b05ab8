package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/alias8/invoices-demo-be/internal/auth"
	"github.com/alias8/invoices-demo-be/internal/services"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// AccountHandler handles HTTP requests for accounts.
type AccountHandler struct {
	service services.AccountServiceProvider
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(service services.AccountServiceProvider) *AccountHandler {
	return &AccountHandler{service: service}
}

// GetAll handles the request to list all accounts with revenue.
func (h *AccountHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.service.ListAccounts(auth.SessionIDFromContext(r.Context()))
	if err != nil {
		log.Error().Err(err).Msg("Failed to list accounts")
		respondError(w, http.StatusInternalServerError, "Failed to retrieve accounts")
		return
	}
	respondJSON(w, http.StatusOK, accounts)
}

// UpdatePayload defines the editable account fields.
type UpdatePayload struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Update handles the request to edit an account's name and description.
func (h *AccountHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var payload UpdatePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	account, err := h.service.UpdateAccount(auth.SessionIDFromContext(r.Context()), id, payload.Name, payload.Description)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			respondError(w, http.StatusNotFound, "Account not found")
			return
		}
		log.Error().Err(err).Str("account_id", id).Msg("Failed to update account")
		respondError(w, http.StatusInternalServerError, "Failed to update account")
		return
	}
	respondJSON(w, http.StatusOK, account)
}

// Delete handles the request to remove an account.
func (h *AccountHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.service.DeleteAccount(auth.SessionIDFromContext(r.Context()), id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			respondError(w, http.StatusNotFound, "Account not found")
			return
		}
		log.Error().Err(err).Str("account_id", id).Msg("Failed to delete account")
		respondError(w, http.StatusInternalServerError, "Failed to delete account")
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}
