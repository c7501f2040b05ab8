package services

import (
	"fmt"

	"github.com/alias8/invoices-demo-be/internal/models"
	"github.com/alias8/invoices-demo-be/internal/session"
	"golang.org/x/crypto/bcrypt"
)

// UserServiceProvider defines the interface for user services.
type UserServiceProvider interface {
	Authenticate(sessionID, username, password string) (models.User, error)
}

// UserService provides login verification against a session's data copy.
type UserService struct {
	sessions *session.Store
}

// NewUserService creates a new UserService.
func NewUserService(sessions *session.Store) *UserService {
	return &UserService{sessions: sessions}
}

// Authenticate verifies a username/password pair. An unknown username and
// a wrong password both return ErrInvalidCredentials so the caller cannot
// tell registered usernames apart from unregistered ones.
func (s *UserService) Authenticate(sessionID, username, password string) (models.User, error) {
	if username == "" || password == "" {
		return models.User{}, ErrMissingCredentials
	}

	sess := s.sessions.Get(sessionID)
	sess.Lock()
	defer sess.Unlock()

	for _, user := range sess.Data.Users {
		if user.Username != username {
			continue
		}
		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
			return models.User{}, fmt.Errorf("password mismatch for %q: %w", username, ErrInvalidCredentials)
		}
		// Don't send the password hash to the client
		user.PasswordHash = ""
		return user, nil
	}
	return models.User{}, fmt.Errorf("no user %q: %w", username, ErrInvalidCredentials)
}
