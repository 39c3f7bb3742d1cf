package services

import (
	"context"
	"errors"
	"fmt"

	"Gatehouse/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidCredentials is returned for both unknown usernames and wrong
	// passwords, so callers cannot distinguish the two.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDuplicateUsername  = errors.New("username already exists")
)

const pgUniqueViolation = "23505"

type AuthService struct {
	db DB
}

func NewAuthService(db DB) *AuthService {
	return &AuthService{db: db}
}

// Authenticate verifies a username/password pair. It has no side effects;
// session establishment and audit logging are the caller's responsibility.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	var user models.User
	err := s.db.QueryRow(ctx,
		"SELECT id, username, password_hash, is_admin, created_at FROM users WHERE username = $1",
		username,
	).Scan(
		&user.ID,
		&user.Username,
		&user.PasswordHash,
		&user.IsAdmin,
		&user.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return &user, nil
}

// Register creates a new user. The very first user in an empty table becomes
// an admin; the check and the insert happen in a single statement so two
// racing first registrations cannot both claim the flag.
func (s *AuthService) Register(ctx context.Context, username, password string) (*models.User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	var user models.User
	err = s.db.QueryRow(ctx,
		`INSERT INTO users (username, password_hash, is_admin)
		 VALUES ($1, $2, (SELECT COUNT(*) FROM users) = 0)
		 RETURNING id, username, password_hash, is_admin, created_at`,
		username, string(hashedPassword),
	).Scan(
		&user.ID,
		&user.Username,
		&user.PasswordHash,
		&user.IsAdmin,
		&user.CreatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, ErrDuplicateUsername
		}
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	return &user, nil
}
