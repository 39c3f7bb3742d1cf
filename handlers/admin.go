package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"Gatehouse/models"
	"Gatehouse/services"
)

type AdminDashboardData struct {
	Username string
}

type AdminUsersData struct {
	Username string
	Users    []models.User
}

type AdminLogsData struct {
	Username string
	Logs     []models.LogView
}

func (h *Handler) AdminDashboard(w http.ResponseWriter, r *http.Request) {
	user, err := h.sessions.Current(r)
	if err != nil {
		http.Error(w, "Not authenticated", http.StatusUnauthorized)
		return
	}

	h.render(w, "admin_dashboard", AdminDashboardData{Username: user.Username})
}

func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	user, err := h.sessions.Current(r)
	if err != nil {
		http.Error(w, "Not authenticated", http.StatusUnauthorized)
		return
	}

	users, err := h.users.List(r.Context())
	if err != nil {
		serverError(w, "Failed to list users", err)
		return
	}

	h.render(w, "admin_users", AdminUsersData{
		Username: user.Username,
		Users:    users,
	})
}

func (h *Handler) ToggleRole(w http.ResponseWriter, r *http.Request) {
	userID, err := parseIDFromForm(r, "user_id")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.users.ToggleRole(r.Context(), userID); err != nil {
		serverError(w, "Failed to toggle role", err)
		return
	}

	slog.Info("Toggled role", "target_user_id", userID)
	http.Redirect(w, r, "/admin/users", http.StatusSeeOther)
}

func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	actor, err := h.sessions.Current(r)
	if err != nil {
		http.Error(w, "Not authenticated", http.StatusUnauthorized)
		return
	}

	userID, err := parseIDFromForm(r, "user_id")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.users.Delete(r.Context(), userID, actor.ID); err != nil {
		if errors.Is(err, services.ErrSelfDelete) {
			http.Error(w, "Cannot delete yourself.", http.StatusBadRequest)
			return
		}
		serverError(w, "Failed to delete user", err)
		return
	}

	slog.Info("Deleted user", "target_user_id", userID, "actor_id", actor.ID)
	http.Redirect(w, r, "/admin/users", http.StatusSeeOther)
}

func (h *Handler) ViewLogs(w http.ResponseWriter, r *http.Request) {
	user, err := h.sessions.Current(r)
	if err != nil {
		http.Error(w, "Not authenticated", http.StatusUnauthorized)
		return
	}

	logs, err := h.audit.List(r.Context())
	if err != nil {
		serverError(w, "Failed to list logs", err)
		return
	}

	h.render(w, "admin_logs", AdminLogsData{
		Username: user.Username,
		Logs:     logs,
	})
}
