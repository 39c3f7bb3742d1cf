package services

import (
	"context"
	"errors"
	"fmt"

	"Gatehouse/models"

	"github.com/jackc/pgx/v5"
)

// ErrSelfDelete is returned when an admin tries to delete their own account.
var ErrSelfDelete = errors.New("cannot delete your own account")

type UserService struct {
	db DB
}

func NewUserService(db DB) *UserService {
	return &UserService{db: db}
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	rows, err := s.db.Query(ctx,
		"SELECT id, username, is_admin FROM users ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var user models.User
		if err := rows.Scan(&user.ID, &user.Username, &user.IsAdmin); err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

func (s *UserService) GetByID(ctx context.Context, userID int64) (*models.User, error) {
	var user models.User
	err := s.db.QueryRow(ctx,
		"SELECT id, username, password_hash, is_admin, created_at FROM users WHERE id = $1",
		userID,
	).Scan(
		&user.ID,
		&user.Username,
		&user.PasswordHash,
		&user.IsAdmin,
		&user.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("user not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	return &user, nil
}

// ToggleRole flips is_admin for the target user. A missing row is treated as
// idempotent success. Concurrent toggles are last-write-wins.
func (s *UserService) ToggleRole(ctx context.Context, userID int64) error {
	_, err := s.db.Exec(ctx,
		"UPDATE users SET is_admin = NOT is_admin WHERE id = $1", userID)
	if err != nil {
		return fmt.Errorf("failed to toggle role for user %d: %w", userID, err)
	}
	return nil
}

// Delete removes a user. Deleting the acting admin's own account is rejected
// before touching the store. Log rows for the user are kept, with their
// user_id nulled by the schema.
func (s *UserService) Delete(ctx context.Context, userID, actorID int64) error {
	if userID == actorID {
		return ErrSelfDelete
	}

	_, err := s.db.Exec(ctx, "DELETE FROM users WHERE id = $1", userID)
	if err != nil {
		return fmt.Errorf("failed to delete user %d: %w", userID, err)
	}
	return nil
}
