package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/crumbandco/bakeshop/app/models"
	"github.com/crumbandco/bakeshop/app/stores"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AuthService drives the simulated login, signup and password-reset flows.
// Nothing is ever verified: the gateway delays and succeeds, VerifyOTP
// accepts any code, and login fabricates the user record it is handed
// back. The only real work is hashing the signup password so the simulated
// record never holds plaintext.
type AuthService struct {
	gateway Gateway
	log     *zap.SugaredLogger
}

func NewAuthService(gateway Gateway, log *zap.SugaredLogger) *AuthService {
	return &AuthService{gateway: gateway, log: log}
}

// RequestOTP asks the gateway to send a code to a phone number or email.
func (s *AuthService) RequestOTP(ctx context.Context, destination string) error {
	if err := s.gateway.SendOTP(ctx, destination); err != nil {
		return fmt.Errorf("failed to send OTP: %w", err)
	}
	return nil
}

// LoginWithOTP verifies the code through the gateway and installs a
// fabricated session user for the destination.
func (s *AuthService) LoginWithOTP(ctx context.Context, session *stores.SessionStore, destination, code string) (models.User, error) {
	if err := s.gateway.VerifyOTP(ctx, destination, code); err != nil {
		return models.User{}, fmt.Errorf("failed to verify OTP: %w", err)
	}
	user := simulatedUser(destination)
	session.Login(user)
	s.log.Infof("simulated OTP login for %s", destination)
	return user, nil
}

// LoginWithPassword installs a fabricated session user. The password is
// accepted as-is; there is no stored credential to compare against.
func (s *AuthService) LoginWithPassword(ctx context.Context, session *stores.SessionStore, email, password string) (models.User, error) {
	if err := s.gateway.VerifyOTP(ctx, email, ""); err != nil {
		return models.User{}, fmt.Errorf("failed to sign in: %w", err)
	}
	user := simulatedUser(email)
	session.Login(user)
	s.log.Infof("simulated password login for %s", email)
	return user, nil
}

// Signup verifies the phone through the gateway, hashes the chosen
// password into the simulated record, and logs the new user in.
func (s *AuthService) Signup(ctx context.Context, session *stores.SessionStore, name, email, phone, password string) (models.User, error) {
	if err := s.gateway.VerifyOTP(ctx, phone, ""); err != nil {
		return models.User{}, fmt.Errorf("failed to verify phone: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		Phone:        phone,
		PasswordHash: string(hash),
	}
	session.Login(user)
	s.log.Infof("simulated signup for %s", email)
	return user, nil
}

// ResetPassword verifies the code through the gateway. With no credential
// store there is nothing to actually update; the flow exists for the modal
// navigation.
func (s *AuthService) ResetPassword(ctx context.Context, session *stores.SessionStore, destination, code, newPassword string) error {
	if err := s.gateway.VerifyOTP(ctx, destination, code); err != nil {
		return fmt.Errorf("failed to verify reset code: %w", err)
	}
	s.log.Infof("simulated password reset for %s", destination)
	return nil
}

// simulatedUser fabricates the profile a real backend would return.
func simulatedUser(destination string) models.User {
	name := destination
	if at := strings.IndexByte(destination, '@'); at > 0 {
		name = destination[:at]
	}
	user := models.User{
		ID:   uuid.New().String(),
		Name: name,
	}
	if strings.ContainsRune(destination, '@') {
		user.Email = destination
	} else {
		user.Phone = destination
	}
	return user
}
