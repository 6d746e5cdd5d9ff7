package services

import (
	"testing"
	"time"

	"github.com/E-W-N-K/course-project/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserFixture(t *testing.T) (*UserService, *AuthService, uint) {
	t.Helper()
	db := newTestDB(t)
	repo := repository.NewUserRepository(db)
	auth := NewAuthService(repo, "test-secret", time.Hour)
	u, err := auth.Register("eva@example.com", "secret1", "Eva", "", "")
	require.NoError(t, err)
	return NewUserService(repo), auth, u.ID
}

func TestUpdateProfilePartial(t *testing.T) {
	svc, _, uid := newUserFixture(t)

	// empty fields keep their current value
	user, err := svc.UpdateProfile(uid, "Eva Green", "", "", "")
	require.NoError(t, err)
	assert.Equal(t, "Eva Green", user.Name)
	assert.Equal(t, "eva@example.com", user.Email)

	user, err = svc.UpdateProfile(uid, "", "", "555-0101", "1 Main St")
	require.NoError(t, err)
	assert.Equal(t, "Eva Green", user.Name)
	assert.Equal(t, "555-0101", user.Phone)
	assert.Equal(t, "1 Main St", user.Address)

	// emails are normalized to lower case
	user, err = svc.UpdateProfile(uid, "", "Eva@Example.ORG", "", "")
	require.NoError(t, err)
	assert.Equal(t, "eva@example.org", user.Email)
}

func TestUpdateProfileEmailTaken(t *testing.T) {
	svc, auth, uid := newUserFixture(t)
	_, err := auth.Register("bob@example.com", "secret1", "Bob", "", "")
	require.NoError(t, err)

	_, err = svc.UpdateProfile(uid, "", "BOB@example.com", "", "")
	assert.ErrorIs(t, err, ErrEmailTaken)

	// keeping your own email is not a conflict
	user, err := svc.UpdateProfile(uid, "", "eva@example.com", "", "")
	require.NoError(t, err)
	assert.Equal(t, "eva@example.com", user.Email)
}

func TestChangePassword(t *testing.T) {
	svc, auth, uid := newUserFixture(t)

	err := svc.ChangePassword(uid, "wrong", "newsecret")
	assert.ErrorIs(t, err, ErrWrongPassword)
	_, _, err = auth.Login("eva@example.com", "secret1")
	require.NoError(t, err)

	require.NoError(t, svc.ChangePassword(uid, "secret1", "newsecret"))
	_, _, err = auth.Login("eva@example.com", "secret1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, _, err = auth.Login("eva@example.com", "newsecret")
	assert.NoError(t, err)
}

func TestDeliveryInfoUpsert(t *testing.T) {
	svc, _, uid := newUserFixture(t)

	_, _, err := svc.DeliveryInfo(uid)
	assert.ErrorIs(t, err, ErrNoDeliveryInfo)

	_, err = svc.SetDeliveryInfo(uid, "555-0101", "1 Main St")
	require.NoError(t, err)

	phone, address, err := svc.DeliveryInfo(uid)
	require.NoError(t, err)
	assert.Equal(t, "555-0101", phone)
	assert.Equal(t, "1 Main St", address)

	// a later put replaces both fields
	_, err = svc.SetDeliveryInfo(uid, "555-0202", "2 Side St")
	require.NoError(t, err)
	phone, address, err = svc.DeliveryInfo(uid)
	require.NoError(t, err)
	assert.Equal(t, "555-0202", phone)
	assert.Equal(t, "2 Side St", address)
}
