package services

import (
	"encoding/gob"
	"errors"
	"net/http"

	"Gatehouse/config"
	"Gatehouse/models"

	"github.com/gorilla/sessions"
)

// ErrNotAuthenticated is returned when a request carries no valid session.
var ErrNotAuthenticated = errors.New("not authenticated")

const sessionName = "gatehouse-session"

func init() {
	// The session snapshot travels through securecookie's gob codec
	gob.Register(models.SessionUser{})
}

// SessionManager issues and resolves cookie-backed sessions. The session
// holds a SessionUser snapshot captured at login; a role change takes effect
// on the affected user's next login, not before.
type SessionManager struct {
	store *sessions.CookieStore
}

func NewSessionManager(cfg *config.Config) *SessionManager {
	store := sessions.NewCookieStore([]byte(cfg.SessionSecret))

	secure := false
	if cfg.Environment == "production" {
		secure = true
	}

	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}

	return &SessionManager{store: store}
}

// Establish writes the user's snapshot into the session cookie. Only call
// after authentication has succeeded.
func (m *SessionManager) Establish(w http.ResponseWriter, r *http.Request, user *models.User) error {
	session, err := m.store.Get(r, sessionName)
	if err != nil {
		// A stale or tampered cookie decodes to a fresh session; keep going
		session, _ = m.store.New(r, sessionName)
	}

	session.Values["user"] = user.Snapshot()
	return session.Save(r, w)
}

// Current resolves the active request's session snapshot.
func (m *SessionManager) Current(r *http.Request) (*models.SessionUser, error) {
	session, err := m.store.Get(r, sessionName)
	if err != nil {
		return nil, ErrNotAuthenticated
	}

	value, ok := session.Values["user"]
	if !ok {
		return nil, ErrNotAuthenticated
	}

	snapshot, ok := value.(models.SessionUser)
	if !ok {
		return nil, ErrNotAuthenticated
	}

	return &snapshot, nil
}

// Clear destroys the session. Clearing an already-empty session is fine.
func (m *SessionManager) Clear(w http.ResponseWriter, r *http.Request) error {
	session, err := m.store.Get(r, sessionName)
	if err != nil {
		session, _ = m.store.New(r, sessionName)
	}

	session.Values = make(map[interface{}]interface{})
	session.Options.MaxAge = -1
	return session.Save(r, w)
}
