package services

import (
	"context"
	"testing"

	"github.com/crumbandco/bakeshop/app/stores"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func newTestAuth(t *testing.T) (*AuthService, *stores.SessionStore) {
	t.Helper()
	gateway := NewSimulatedGateway(0, zap.NewNop().Sugar())
	return NewAuthService(gateway, zap.NewNop().Sugar()), stores.NewSessionStore()
}

func TestLoginWithOTPInstallsSession(t *testing.T) {
	svc, session := newTestAuth(t)

	user, err := svc.LoginWithOTP(context.Background(), session, "9876543210", "123456")
	require.NoError(t, err)

	assert.Equal(t, "9876543210", user.Phone)
	assert.Empty(t, user.Email)
	assert.True(t, session.State().IsAuthenticated)
}

func TestLoginWithPasswordInstallsSession(t *testing.T) {
	svc, session := newTestAuth(t)

	user, err := svc.LoginWithPassword(context.Background(), session, "priya@example.com", "hunter2")
	require.NoError(t, err)

	assert.Equal(t, "priya@example.com", user.Email)
	assert.Equal(t, "priya", user.Name, "name derives from the mailbox part")
	assert.True(t, session.State().IsAuthenticated)
}

func TestSignupHashesPassword(t *testing.T) {
	svc, session := newTestAuth(t)

	user, err := svc.Signup(context.Background(), session, "Priya", "priya@example.com", "9876543210", "hunter2")
	require.NoError(t, err)

	assert.NotEmpty(t, user.PasswordHash)
	assert.NotContains(t, user.PasswordHash, "hunter2")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("hunter2")))
	assert.True(t, session.State().IsAuthenticated)
}

func TestResetPasswordDoesNotLogIn(t *testing.T) {
	svc, session := newTestAuth(t)

	err := svc.ResetPassword(context.Background(), session, "priya@example.com", "123456", "new-secret")
	require.NoError(t, err)
	assert.False(t, session.State().IsAuthenticated)
}

func TestSimulatedUserDestination(t *testing.T) {
	byEmail := simulatedUser("priya@example.com")
	assert.Equal(t, "priya", byEmail.Name)
	assert.Equal(t, "priya@example.com", byEmail.Email)
	assert.Empty(t, byEmail.Phone)

	byPhone := simulatedUser("9876543210")
	assert.Equal(t, "9876543210", byPhone.Name)
	assert.Equal(t, "9876543210", byPhone.Phone)
	assert.Empty(t, byPhone.Email)
}
