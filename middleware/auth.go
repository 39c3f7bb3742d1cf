package middleware

import (
	"log/slog"
	"net/http"

	"Gatehouse/services"
)

// Guard enforces route-level authorization from the session snapshot alone.
// No store lookup happens here: a user demoted after login keeps admin access
// until that session ends.
type Guard struct {
	sessions *services.SessionManager
}

func NewGuard(sessions *services.SessionManager) *Guard {
	return &Guard{sessions: sessions}
}

func (g *Guard) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := g.sessions.Current(r); err != nil {
			slog.Warn("Unauthenticated request", "path", r.URL.Path)
			http.Error(w, "Not authenticated", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (g *Guard) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, err := g.sessions.Current(r)
		if err != nil {
			slog.Warn("Unauthenticated request", "path", r.URL.Path)
			http.Error(w, "Not authenticated", http.StatusUnauthorized)
			return
		}

		if !user.IsAdmin {
			slog.Warn("Forbidden request", "path", r.URL.Path, "username", user.Username)
			http.Error(w, "Admin access only", http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}
