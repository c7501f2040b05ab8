package services

import (
	"fmt"

	"github.com/alias8/invoices-demo-be/internal/models"
	"github.com/alias8/invoices-demo-be/internal/session"
)

// AccountServiceProvider defines the interface for account services.
type AccountServiceProvider interface {
	ListAccounts(sessionID string) ([]models.Account, error)
	UpdateAccount(sessionID, id, name, description string) (models.Account, error)
	DeleteAccount(sessionID, id string) error
}

// AccountService provides account operations over a session's data copy.
type AccountService struct {
	sessions *session.Store
}

// NewAccountService creates a new AccountService.
func NewAccountService(sessions *session.Store) *AccountService {
	return &AccountService{sessions: sessions}
}

// ListAccounts returns the session's accounts with revenue attached.
func (s *AccountService) ListAccounts(sessionID string) ([]models.Account, error) {
	sess := s.sessions.Get(sessionID)
	sess.Lock()
	defer sess.Unlock()
	return AccountsWithRevenue(sess.Data), nil
}

// UpdateAccount sets an account's name and description in place and
// returns the updated record.
func (s *AccountService) UpdateAccount(sessionID, id, name, description string) (models.Account, error) {
	sess := s.sessions.Get(sessionID)
	sess.Lock()
	defer sess.Unlock()

	for i := range sess.Data.Accounts {
		if sess.Data.Accounts[i].ID != id {
			continue
		}
		sess.Data.Accounts[i].Name = name
		sess.Data.Accounts[i].Description = description
		return sess.Data.Accounts[i], nil
	}
	return models.Account{}, fmt.Errorf("account %s: %w", id, ErrNotFound)
}

// DeleteAccount removes an account from the session's copy. Customers that
// belonged to the account are left in place, matching the source system's
// no-cascade behavior.
func (s *AccountService) DeleteAccount(sessionID, id string) error {
	sess := s.sessions.Get(sessionID)
	sess.Lock()
	defer sess.Unlock()

	for i := range sess.Data.Accounts {
		if sess.Data.Accounts[i].ID == id {
			sess.Data.Accounts = append(sess.Data.Accounts[:i], sess.Data.Accounts[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("account %s: %w", id, ErrNotFound)
}
