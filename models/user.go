package models

import "time"

type User struct {
	ID           int64     `db:"id"`
	Username     string    `db:"username"`
	PasswordHash string    `db:"password_hash"`
	IsAdmin      bool      `db:"is_admin"`
	CreatedAt    time.Time `db:"created_at"`
}

// SessionUser is the snapshot of a user stored in the session cookie at
// login time. Role changes made after login are not reflected here until the
// user logs in again.
type SessionUser struct {
	ID       int64
	Username string
	IsAdmin  bool
}

// Snapshot builds the session payload for a user. The password hash is
// deliberately left out of session state.
func (u *User) Snapshot() SessionUser {
	return SessionUser{
		ID:       u.ID,
		Username: u.Username,
		IsAdmin:  u.IsAdmin,
	}
}
