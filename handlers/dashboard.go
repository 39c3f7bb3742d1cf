package handlers

import "net/http"

type DashboardData struct {
	Username string
	IsAdmin  bool
}

func (h *Handler) ClientDashboard(w http.ResponseWriter, r *http.Request) {
	user, err := h.sessions.Current(r)
	if err != nil {
		http.Error(w, "Not authenticated", http.StatusUnauthorized)
		return
	}

	h.render(w, "dashboard", DashboardData{
		Username: user.Username,
		IsAdmin:  user.IsAdmin,
	})
}
