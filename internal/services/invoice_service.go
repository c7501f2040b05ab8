package services

import (
	"fmt"

	"github.com/alias8/invoices-demo-be/internal/models"
	"github.com/alias8/invoices-demo-be/internal/session"
)

// InvoiceServiceProvider defines the interface for invoice services.
type InvoiceServiceProvider interface {
	ListInvoices(sessionID string) ([]models.Invoice, error)
	GetInvoiceByID(sessionID, id string) (models.Invoice, error)
}

// InvoiceService provides read access to a session's invoices. Invoices
// are immutable after generation, so no update or delete exists.
type InvoiceService struct {
	sessions *session.Store
}

// NewInvoiceService creates a new InvoiceService.
func NewInvoiceService(sessions *session.Store) *InvoiceService {
	return &InvoiceService{sessions: sessions}
}

// ListInvoices returns all invoices in generation order, no aggregation.
func (s *InvoiceService) ListInvoices(sessionID string) ([]models.Invoice, error) {
	sess := s.sessions.Get(sessionID)
	sess.Lock()
	defer sess.Unlock()

	invoices := make([]models.Invoice, len(sess.Data.Invoices))
	copy(invoices, sess.Data.Invoices)
	return invoices, nil
}

// GetInvoiceByID retrieves a single invoice.
func (s *InvoiceService) GetInvoiceByID(sessionID, id string) (models.Invoice, error) {
	sess := s.sessions.Get(sessionID)
	sess.Lock()
	defer sess.Unlock()

	for _, inv := range sess.Data.Invoices {
		if inv.ID == id {
			return inv, nil
		}
	}
	return models.Invoice{}, fmt.Errorf("invoice %s: %w", id, ErrNotFound)
}
