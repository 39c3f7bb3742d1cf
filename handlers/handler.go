package handlers

import (
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"path/filepath"
	"strconv"

	"Gatehouse/config"
	"Gatehouse/services"
)

// Handler carries every dependency the HTTP layer needs. It is constructed
// once at startup and shared by all routes; no package-level state.
type Handler struct {
	cfg       *config.Config
	auth      *services.AuthService
	users     *services.UserService
	audit     *services.AuditService
	sessions  *services.SessionManager
	templates map[string]*template.Template
}

func New(
	cfg *config.Config,
	auth *services.AuthService,
	users *services.UserService,
	audit *services.AuditService,
	sessions *services.SessionManager,
) (*Handler, error) {
	h := &Handler{
		cfg:       cfg,
		auth:      auth,
		users:     users,
		audit:     audit,
		sessions:  sessions,
		templates: make(map[string]*template.Template),
	}

	pages := []string{
		"index",
		"login",
		"register",
		"dashboard",
		"admin_dashboard",
		"admin_users",
		"admin_logs",
	}
	for _, page := range pages {
		tmpl, err := h.loadTemplate(page)
		if err != nil {
			return nil, err
		}
		h.templates[page] = tmpl
	}

	return h, nil
}

func (h *Handler) loadTemplate(name string) (*template.Template, error) {
	tmpl, err := template.New(name).ParseFiles(
		filepath.Join(h.cfg.TemplatesDir, "layouts", "base.html"),
		filepath.Join(h.cfg.TemplatesDir, "pages", name+".html"),
		filepath.Join(h.cfg.TemplatesDir, "components", "navigation.html"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
	}
	return tmpl, nil
}

func (h *Handler) render(w http.ResponseWriter, name string, data any) {
	tmpl, ok := h.templates[name]
	if !ok {
		slog.Error("Unknown template requested", "template", name)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if err := tmpl.ExecuteTemplate(w, "base", data); err != nil {
		slog.Error("Error rendering template", "template", name, "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

// serverError logs the real cause and responds with a generic message so
// storage error text never reaches the page.
func serverError(w http.ResponseWriter, msg string, err error) {
	slog.Error(msg, "error", err)
	http.Error(w, "Internal server error", http.StatusInternalServerError)
}

func parseIDFromForm(r *http.Request, param string) (int64, error) {
	idStr := r.FormValue(param)
	if idStr == "" {
		return 0, fmt.Errorf("missing %s parameter", param)
	}
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s parameter", param)
	}
	return id, nil
}
