package services

import (
	"context"
	"fmt"

	"Gatehouse/models"
)

// Audit action labels.
const (
	ActionLogin = "login"
)

type AuditService struct {
	db DB
}

func NewAuditService(db DB) *AuditService {
	return &AuditService{db: db}
}

// Record appends one audit entry. Callers on the login path treat a failure
// here as best-effort: it is logged but never aborts the login response.
func (s *AuditService) Record(ctx context.Context, userID int64, action string) error {
	_, err := s.db.Exec(ctx,
		"INSERT INTO logs (user_id, action) VALUES ($1, $2)", userID, action)
	if err != nil {
		return fmt.Errorf("failed to record %q for user %d: %w", action, userID, err)
	}
	return nil
}

// List returns all log entries joined with the acting user's name, newest
// first. Entries whose user has been deleted are still listed, with an empty
// username.
func (s *AuditService) List(ctx context.Context) ([]models.LogView, error) {
	rows, err := s.db.Query(ctx, `
		SELECT logs.id, COALESCE(users.username, ''), logs.action, logs.timestamp
		FROM logs
		LEFT JOIN users ON logs.user_id = users.id
		ORDER BY logs.timestamp DESC, logs.id DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list logs: %w", err)
	}
	defer rows.Close()

	var entries []models.LogView
	for rows.Next() {
		var entry models.LogView
		if err := rows.Scan(&entry.ID, &entry.Username, &entry.Action, &entry.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan log row: %w", err)
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
