package handlers

import (
	"errors"
	"net/http"

	"github.com/alias8/invoices-demo-be/internal/auth"
	"github.com/alias8/invoices-demo-be/internal/services"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// InvoiceHandler handles HTTP requests for invoices. Invoices are
// read-only.
type InvoiceHandler struct {
	service services.InvoiceServiceProvider
}

// NewInvoiceHandler creates a new InvoiceHandler.
func NewInvoiceHandler(service services.InvoiceServiceProvider) *InvoiceHandler {
	return &InvoiceHandler{service: service}
}

// GetAll handles the request to list all invoices.
func (h *InvoiceHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	invoices, err := h.service.ListInvoices(auth.SessionIDFromContext(r.Context()))
	if err != nil {
		log.Error().Err(err).Msg("Failed to list invoices")
		respondError(w, http.StatusInternalServerError, "Failed to retrieve invoices")
		return
	}
	respondJSON(w, http.StatusOK, invoices)
}

// Get handles the request to get a single invoice by its ID.
func (h *InvoiceHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	invoice, err := h.service.GetInvoiceByID(auth.SessionIDFromContext(r.Context()), id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			respondError(w, http.StatusNotFound, "Invoice not found")
			return
		}
		log.Error().Err(err).Str("invoice_id", id).Msg("Failed to get invoice")
		respondError(w, http.StatusInternalServerError, "Failed to retrieve invoice")
		return
	}
	respondJSON(w, http.StatusOK, invoice)
}
