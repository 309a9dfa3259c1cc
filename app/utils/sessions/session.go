package sessions

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
)

const (
	sessionCookieName = "bakeshop-session"

	visitorIDSessionKey = "visitorID"
)

// VisitorStore ties a browser to its store set through a cookie-backed
// visitor id.
type VisitorStore interface {
	GetVisitorID(r *http.Request) string
	EnsureVisitorID(w http.ResponseWriter, r *http.Request) (string, error)
	ClearSession(w http.ResponseWriter, r *http.Request) error
}

type CookieVisitorStore struct {
	store *sessions.CookieStore
}

func NewCookieVisitorStore(keyPairs ...[]byte) *CookieVisitorStore {
	store := sessions.NewCookieStore(keyPairs...)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(30 * 24 * time.Hour / time.Second),
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteLaxMode,
	}
	return &CookieVisitorStore{store: store}
}

func (c *CookieVisitorStore) GetVisitorID(r *http.Request) string {
	session, err := c.store.Get(r, sessionCookieName)
	if err != nil || session == nil {
		return ""
	}
	id, ok := session.Values[visitorIDSessionKey].(string)
	if !ok {
		return ""
	}
	return id
}

// EnsureVisitorID returns the cookie's visitor id, minting and saving a
// new one for first-time visitors.
func (c *CookieVisitorStore) EnsureVisitorID(w http.ResponseWriter, r *http.Request) (string, error) {
	session, err := c.store.Get(r, sessionCookieName)
	if session == nil {
		return "", err
	}
	if id, ok := session.Values[visitorIDSessionKey].(string); ok && id != "" {
		return id, nil
	}
	id := uuid.New().String()
	session.Values[visitorIDSessionKey] = id
	if err := session.Save(r, w); err != nil {
		return "", err
	}
	return id, nil
}

func (c *CookieVisitorStore) ClearSession(w http.ResponseWriter, r *http.Request) error {
	session, err := c.store.Get(r, sessionCookieName)
	if session == nil {
		return err
	}
	session.Options.MaxAge = -1
	return session.Save(r, w)
}
