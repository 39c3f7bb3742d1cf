package main

import (
	"context"
	"log"
	"net/http"

	"Gatehouse/config"
	"Gatehouse/database"
	"Gatehouse/handlers"
	"Gatehouse/logger"
	"Gatehouse/middleware"
	"Gatehouse/services"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.Environment, cfg.Debug)

	ctx := context.Background()

	pool, err := database.Connect(ctx, cfg)
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}
	defer pool.Close()

	if err := database.RunMigrations(ctx, pool); err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	if err := database.SeedAdminUser(ctx, pool); err != nil {
		log.Fatal("Failed to seed admin user: ", err)
	}

	sessions := services.NewSessionManager(cfg)
	auth := services.NewAuthService(pool)
	users := services.NewUserService(pool)
	audit := services.NewAuditService(pool)

	h, err := handlers.New(cfg, auth, users, audit, sessions)
	if err != nil {
		log.Fatal("Failed to build handlers: ", err)
	}

	guard := middleware.NewGuard(sessions)

	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Logging)

	// Static files
	fs := http.FileServer(http.Dir(cfg.StaticDir))
	r.Handle("/static/*", http.StripPrefix("/static/", fs))

	// Public routes
	r.Get("/ping", h.Ping)
	r.Get("/", h.Home)
	r.Get("/register", h.Register)
	r.Post("/register", h.Register)
	r.Get("/login", h.Login)
	r.Post("/login", h.Login)
	r.Get("/logout", h.Logout)

	// Authenticated routes
	r.Group(func(r chi.Router) {
		r.Use(guard.RequireAuth)
		r.Get("/client/dashboard", h.ClientDashboard)
	})

	// Admin routes
	r.Group(func(r chi.Router) {
		r.Use(guard.RequireAdmin)
		r.Get("/admin/dashboard", h.AdminDashboard)
		r.Get("/admin/users", h.ListUsers)
		r.Post("/admin/toggle-role", h.ToggleRole)
		r.Post("/admin/delete-user", h.DeleteUser)
		r.Get("/admin/logs", h.ViewLogs)
	})

	addr := ":" + cfg.ServerPort
	log.Printf("Gatehouse is starting on %s", addr)
	log.Printf("Environment: %s", cfg.Environment)

	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
