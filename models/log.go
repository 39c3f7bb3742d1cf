package models

import "time"

// LogEntry is an append-only audit record. UserID is nullable so that log
// history survives account deletion.
type LogEntry struct {
	ID        int64     `db:"id"`
	UserID    *int64    `db:"user_id"`
	Action    string    `db:"action"`
	Timestamp time.Time `db:"timestamp"`
}

// LogView is a log entry joined with the acting user's name for the admin
// page. Username is empty when the user has since been deleted.
type LogView struct {
	ID        int64
	Username  string
	Action    string
	Timestamp time.Time
}
