package services

import (
	"testing"
	"time"

	"github.com/E-W-N-K/course-project/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(t *testing.T) *AuthService {
	t.Helper()
	db := newTestDB(t)
	return NewAuthService(repository.NewUserRepository(db), "test-secret", time.Hour)
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newAuthService(t)

	user, err := svc.Register("Ann@Example.com", "hunter22", "Ann", "", "")
	require.NoError(t, err)
	assert.Equal(t, "ann@example.com", user.Email)
	assert.Equal(t, "customer", user.Role)
	assert.NotEqual(t, "hunter22", user.Password) // stored hashed

	token, got, err := svc.Login("ann@example.com", "hunter22")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, user.ID, got.ID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.Register("ann@example.com", "hunter22", "Ann", "", "")
	require.NoError(t, err)
	_, err = svc.Register("ANN@example.com", "other-pass", "Ann Again", "", "")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.Register("ann@example.com", "hunter22", "Ann", "", "")
	require.NoError(t, err)

	_, _, err = svc.Login("ann@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login("nobody@example.com", "hunter22")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
