package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthenticateSuccess(t *testing.T) {
	svc := NewUserService(newTestStore())

	user, err := svc.Authenticate("s1", "user0", "user0")
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
	assert.Equal(t, "user0", user.Username)
	assert.Empty(t, user.PasswordHash, "hash must never leave the service")
}

func TestAuthenticateMissingCredentials(t *testing.T) {
	svc := NewUserService(newTestStore())

	_, err := svc.Authenticate("s1", "", "x")
	assert.ErrorIs(t, err, ErrMissingCredentials)

	_, err = svc.Authenticate("s1", "user0", "")
	assert.ErrorIs(t, err, ErrMissingCredentials)
}

func TestAuthenticateWrongPassword(t *testing.T) {
	svc := NewUserService(newTestStore())

	_, err := svc.Authenticate("s1", "user0", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticateUnknownUserIndistinguishable(t *testing.T) {
	svc := NewUserService(newTestStore())

	_, unknownErr := svc.Authenticate("s1", "nobody", "user0")
	_, mismatchErr := svc.Authenticate("s1", "user0", "wrong")

	// Both causes collapse to the same sentinel for the caller.
	assert.ErrorIs(t, unknownErr, ErrInvalidCredentials)
	assert.ErrorIs(t, mismatchErr, ErrInvalidCredentials)
	assert.False(t, errors.Is(unknownErr, ErrMissingCredentials))
}
