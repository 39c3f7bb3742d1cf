package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"Gatehouse/services"
)

type FormPageData struct {
	Error string
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		h.render(w, "register", nil)
		return
	}

	username := r.FormValue("username")
	password := r.FormValue("password")

	if username == "" || password == "" {
		h.render(w, "register", FormPageData{Error: "Username and password are required"})
		return
	}

	user, err := h.auth.Register(r.Context(), username, password)
	if err != nil {
		if errors.Is(err, services.ErrDuplicateUsername) {
			h.render(w, "register", FormPageData{Error: "Username already exists"})
			return
		}
		serverError(w, "Registration failed", err)
		return
	}

	slog.Info("User registered", "username", user.Username, "user_id", user.ID, "is_admin", user.IsAdmin)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		h.render(w, "login", nil)
		return
	}

	username := r.FormValue("username")
	password := r.FormValue("password")

	user, err := h.auth.Authenticate(r.Context(), username, password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			slog.Warn("Login failed", "username", username)
			h.render(w, "login", FormPageData{Error: "Invalid credentials"})
			return
		}
		serverError(w, "Login failed", err)
		return
	}

	if err := h.sessions.Establish(w, r, user); err != nil {
		serverError(w, "Failed to create session", err)
		return
	}

	// Best-effort: a failed audit write must not abort a successful login
	if err := h.audit.Record(r.Context(), user.ID, services.ActionLogin); err != nil {
		slog.Error("Failed to record login", "username", user.Username, "error", err)
	}

	slog.Info("User logged in", "username", user.Username, "user_id", user.ID)
	http.Redirect(w, r, "/client/dashboard", http.StatusSeeOther)
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Clear(w, r); err != nil {
		slog.Warn("Failed to clear session", "error", err)
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
