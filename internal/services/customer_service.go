package services

import (
	"fmt"

	"github.com/alias8/invoices-demo-be/internal/models"
	"github.com/alias8/invoices-demo-be/internal/session"
)

// CustomerServiceProvider defines the interface for customer services.
type CustomerServiceProvider interface {
	ListCustomers(sessionID string) ([]models.Customer, error)
	UpdateCustomer(sessionID, id, name string) (models.Customer, error)
	DeleteCustomer(sessionID, id string) error
}

// CustomerService provides customer operations over a session's data copy.
type CustomerService struct {
	sessions *session.Store
}

// NewCustomerService creates a new CustomerService.
func NewCustomerService(sessions *session.Store) *CustomerService {
	return &CustomerService{sessions: sessions}
}

// ListCustomers returns the session's customers with sales attached.
func (s *CustomerService) ListCustomers(sessionID string) ([]models.Customer, error) {
	sess := s.sessions.Get(sessionID)
	sess.Lock()
	defer sess.Unlock()
	return CustomersWithSales(sess.Data), nil
}

// UpdateCustomer sets a customer's name in place and returns the updated
// record.
func (s *CustomerService) UpdateCustomer(sessionID, id, name string) (models.Customer, error) {
	sess := s.sessions.Get(sessionID)
	sess.Lock()
	defer sess.Unlock()

	for i := range sess.Data.Customers {
		if sess.Data.Customers[i].ID != id {
			continue
		}
		sess.Data.Customers[i].Name = name
		return sess.Data.Customers[i], nil
	}
	return models.Customer{}, fmt.Errorf("customer %s: %w", id, ErrNotFound)
}

// DeleteCustomer removes a customer from the session's copy. The id is not
// removed from its account's customer list; the aggregation skips dangling
// ids.
func (s *CustomerService) DeleteCustomer(sessionID, id string) error {
	sess := s.sessions.Get(sessionID)
	sess.Lock()
	defer sess.Unlock()

	for i := range sess.Data.Customers {
		if sess.Data.Customers[i].ID == id {
			sess.Data.Customers = append(sess.Data.Customers[:i], sess.Data.Customers[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("customer %s: %w", id, ErrNotFound)
}
