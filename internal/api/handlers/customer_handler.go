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

// CustomerHandler handles HTTP requests for customers.
type CustomerHandler struct {
	service services.CustomerServiceProvider
}

// NewCustomerHandler creates a new CustomerHandler.
func NewCustomerHandler(service services.CustomerServiceProvider) *CustomerHandler {
	return &CustomerHandler{service: service}
}

// GetAll handles the request to list all customers with sales.
func (h *CustomerHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	customers, err := h.service.ListCustomers(auth.SessionIDFromContext(r.Context()))
	if err != nil {
		log.Error().Err(err).Msg("Failed to list customers")
		respondError(w, http.StatusInternalServerError, "Failed to retrieve customers")
		return
	}
	respondJSON(w, http.StatusOK, customers)
}

// Update handles the request to rename a customer. Unlike accounts,
// customers carry no description.
func (h *CustomerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var payload struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	customer, err := h.service.UpdateCustomer(auth.SessionIDFromContext(r.Context()), id, payload.Name)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			respondError(w, http.StatusNotFound, "Customer not found")
			return
		}
		log.Error().Err(err).Str("customer_id", id).Msg("Failed to update customer")
		respondError(w, http.StatusInternalServerError, "Failed to update customer")
		return
	}
	respondJSON(w, http.StatusOK, customer)
}

// Delete handles the request to remove a customer.
func (h *CustomerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.service.DeleteCustomer(auth.SessionIDFromContext(r.Context()), id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			respondError(w, http.StatusNotFound, "Customer not found")
			return
		}
		log.Error().Err(err).Str("customer_id", id).Msg("Failed to delete customer")
		respondError(w, http.StatusInternalServerError, "Failed to delete customer")
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}
