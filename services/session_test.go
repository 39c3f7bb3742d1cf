package services

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"Gatehouse/config"
	"Gatehouse/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSessionManager() *SessionManager {
	return NewSessionManager(&config.Config{
		SessionSecret: "test-secret",
		Environment:   "development",
	})
}

// requestWithSession establishes a session for user and returns a fresh
// request carrying the resulting cookie.
func requestWithSession(t *testing.T, m *SessionManager, user *models.User) *http.Request {
	t.Helper()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	require.NoError(t, m.Establish(rec, req, user))

	next := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, cookie := range rec.Result().Cookies() {
		next.AddCookie(cookie)
	}
	return next
}

func TestSessionManager_EstablishAndCurrent(t *testing.T) {
	m := testSessionManager()

	user := &models.User{ID: 7, Username: "alice", PasswordHash: "secret-hash", IsAdmin: true}
	req := requestWithSession(t, m, user)

	current, err := m.Current(req)
	require.NoError(t, err)
	assert.Equal(t, int64(7), current.ID)
	assert.Equal(t, "alice", current.Username)
	assert.True(t, current.IsAdmin)
}

func TestSessionManager_Current_NoSession(t *testing.T) {
	m := testSessionManager()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	current, err := m.Current(req)
	assert.Nil(t, current)
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestSessionManager_SnapshotIsStale(t *testing.T) {
	m := testSessionManager()

	user := &models.User{ID: 7, Username: "bob", IsAdmin: false}
	req := requestWithSession(t, m, user)

	// A role change after login does not reach the existing session
	user.IsAdmin = true

	current, err := m.Current(req)
	require.NoError(t, err)
	assert.False(t, current.IsAdmin)
}

func TestSessionManager_Clear(t *testing.T) {
	m := testSessionManager()

	user := &models.User{ID: 7, Username: "alice"}
	rec := httptest.NewRecorder()
	req := requestWithSession(t, m, user)

	require.NoError(t, m.Clear(rec, req))

	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Negative(t, cookies[0].MaxAge)
}

func TestSessionManager_Clear_EmptySessionIsNotAnError(t *testing.T) {
	m := testSessionManager()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.NoError(t, m.Clear(rec, req))
}

func TestSessionManager_SessionHoldsNoPasswordHash(t *testing.T) {
	m := testSessionManager()

	user := &models.User{ID: 7, Username: "alice", PasswordHash: "super-secret"}
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	require.NoError(t, m.Establish(rec, req, user))

	// The snapshot type has no hash field; nothing hash-shaped can end up
	// in the cookie payload
	snapshot := user.Snapshot()
	assert.Equal(t, models.SessionUser{ID: 7, Username: "alice"}, snapshot)
}
