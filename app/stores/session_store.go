package stores

import (
	"sync"

	"github.com/crumbandco/bakeshop/app/models"
)

// AuthView is one of the auth modal's screens. Transitions between views
// are driven entirely by explicit navigation; there is no guard logic and
// no real verification behind any of them.
type AuthView string

const (
	ViewLoginOptions   AuthView = "login-options"
	ViewLoginPhone     AuthView = "login-phone"
	ViewLoginEmail     AuthView = "login-email"
	ViewLoginOTP       AuthView = "login-otp"
	ViewLoginPassword  AuthView = "login-password"
	ViewSignup         AuthView = "signup"
	ViewSignupOTP      AuthView = "signup-otp"
	ViewSignupPassword AuthView = "signup-password"
	ViewForgotPassword AuthView = "forgot-password"
	ViewResetOTP       AuthView = "reset-otp"
	ViewNewPassword    AuthView = "new-password"
)

var authViews = map[AuthView]bool{
	ViewLoginOptions:   true,
	ViewLoginPhone:     true,
	ViewLoginEmail:     true,
	ViewLoginOTP:       true,
	ViewLoginPassword:  true,
	ViewSignup:         true,
	ViewSignupOTP:      true,
	ViewSignupPassword: true,
	ViewForgotPassword: true,
	ViewResetOTP:       true,
	ViewNewPassword:    true,
}

// ValidAuthView reports whether v names a known modal screen.
func ValidAuthView(v AuthView) bool { return authViews[v] }

// SessionState is the auth store snapshot.
type SessionState struct {
	User            *models.User `json:"user"`
	IsAuthenticated bool         `json:"is_authenticated"`
	IsModalOpen     bool         `json:"is_modal_open"`
	ModalView       AuthView     `json:"modal_view"`
}

// ProfileUpdate carries partial profile changes; nil fields are untouched.
type ProfileUpdate struct {
	Name   *string
	Email  *string
	Phone  *string
	Avatar *string
}

// SessionStore holds the simulated user session and the auth modal view
// selector. Login is immediate; the simulated network delay happens in the
// gateway before the caller invokes it.
type SessionStore struct {
	mu          sync.Mutex
	user        *models.User
	isModalOpen bool
	modalView   AuthView
}

func NewSessionStore() *SessionStore {
	return &SessionStore{modalView: ViewLoginOptions}
}

// Login installs the user as the active session and closes the modal.
func (s *SessionStore) Login(user models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = &user
	s.isModalOpen = false
}

// Logout drops the session. No token revocation happens because there is
// no token.
func (s *SessionStore) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
}

// OpenModal shows the modal at the given view, defaulting to the options
// screen when the view is empty or unknown.
func (s *SessionStore) OpenModal(view AuthView) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !ValidAuthView(view) {
		view = ViewLoginOptions
	}
	s.modalView = view
	s.isModalOpen = true
}

// CloseModal hides the modal and resets it to the options screen.
func (s *SessionStore) CloseModal() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.isModalOpen = false
	s.modalView = ViewLoginOptions
}

// SetView navigates the open modal; unknown views are ignored.
func (s *SessionStore) SetView(view AuthView) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !ValidAuthView(view) {
		return
	}
	s.modalView = view
}

// UpdateProfile applies non-nil fields to the session user. No-op when
// logged out.
func (s *SessionStore) UpdateProfile(update ProfileUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return
	}
	if update.Name != nil {
		s.user.Name = *update.Name
	}
	if update.Email != nil {
		s.user.Email = *update.Email
	}
	if update.Phone != nil {
		s.user.Phone = *update.Phone
	}
	if update.Avatar != nil {
		s.user.Avatar = *update.Avatar
	}
}

func (s *SessionStore) AddAddress(addr models.Address) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return
	}
	s.user.Addresses = append(s.user.Addresses, addr)
}

func (s *SessionStore) RemoveAddress(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return
	}
	kept := s.user.Addresses[:0]
	for _, a := range s.user.Addresses {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	s.user.Addresses = kept
}

// UpdateAddress replaces the address with the given id, keeping the id.
func (s *SessionStore) UpdateAddress(id string, addr models.Address) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return
	}
	for i := range s.user.Addresses {
		if s.user.Addresses[i].ID == id {
			addr.ID = id
			s.user.Addresses[i] = addr
			return
		}
	}
}

// AppendOrder records a placed order on the session user and accrues
// loyalty points. No-op when logged out; guest orders are display-only.
func (s *SessionStore) AppendOrder(order models.Order, loyaltyPoints int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return
	}
	s.user.Orders = append(s.user.Orders, order)
	s.user.LoyaltyPoints += loyaltyPoints
}

// User returns a copy of the session user, or nil when logged out.
func (s *SessionStore) User() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// State returns the auth snapshot.
func (s *SessionStore) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	state := SessionState{
		IsAuthenticated: s.user != nil,
		IsModalOpen:     s.isModalOpen,
		ModalView:       s.modalView,
	}
	if s.user != nil {
		u := *s.user
		state.User = &u
	}
	return state
}
