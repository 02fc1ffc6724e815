// Package auth implements the authentication backend consumed by the
// handlers: users live in Postgres, sessions live in Redis, passwords are
// bcrypt hashes. Handlers only see the narrow method set of Service.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"daybook/models"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrNoSession          = errors.New("no active session")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
)

type Service struct {
	db     *pgxpool.Pool
	redis  *redis.Client
	mailer Mailer
}

func New(db *pgxpool.Pool, redisClient *redis.Client, mailer Mailer) *Service {
	return &Service{db: db, redis: redisClient, mailer: mailer}
}

// GetSession resolves a session token to the session it names, or
// ErrNoSession when the token is empty, unknown or expired.
func (s *Service) GetSession(ctx context.Context, token string) (*models.Session, error) {
	if token == "" {
		return nil, ErrNoSession
	}
	session, err := getSession(s.redis, token)
	if err != nil {
		return nil, ErrNoSession
	}
	if sessionExpired(session) {
		return nil, ErrNoSession
	}
	return session, nil
}

// GetUser re-derives the identity behind a token straight from storage,
// without trusting any session object the caller may already hold.
func (s *Service) GetUser(ctx context.Context, token string) (*models.User, error) {
	session, err := s.GetSession(ctx, token)
	if err != nil {
		return nil, err
	}

	qctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	var user models.User
	stmt := "SELECT id, email, password_hash, created_at FROM users WHERE id = $1;"
	row := s.db.QueryRow(qctx, stmt, session.UserID)
	if err := row.Scan(&user.ID, &user.Email, &user.PasswordHash, &user.CreatedAt); err != nil {
		log.Println("user lookup failed for session: ", err)
		return nil, ErrUserNotFound
	}
	return &user, nil
}

// SignInWithPassword verifies an email/password pair against the users table.
// It is used purely as a re-authentication check before sensitive updates.
func (s *Service) SignInWithPassword(ctx context.Context, email string, password string) error {
	qctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	var hash []byte
	stmt := "SELECT password_hash FROM users WHERE email = $1;"
	if err := s.db.QueryRow(qctx, stmt, email).Scan(&hash); err != nil {
		log.Printf("user lookup failed: %v", err)
		return ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword(hash, []byte(password)); err != nil {
		log.Printf("password verification failed for user: %s", email)
		return ErrInvalidCredentials
	}
	return nil
}

// UpdateUserEmail changes the address on the user row and sends a
// verification mail to the new address. Address syntax beyond the handler's
// "@" check is left to that verification round trip.
func (s *Service) UpdateUserEmail(ctx context.Context, session *models.Session, email string) error {
	if session == nil {
		return ErrNoSession
	}

	qctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	stmt := "UPDATE users SET email = $1 WHERE id = $2 RETURNING id;"
	var updatedID string
	if err := s.db.QueryRow(qctx, stmt, email, session.UserID).Scan(&updatedID); err != nil {
		log.Printf("failed to update email for user %s: %v", session.UserID, err)
		return fmt.Errorf("unable to update email: %w", err)
	}

	if err := s.mailer.SendVerification(email); err != nil {
		// The row is already updated; the user can request another mail.
		log.Println("error sending verification email: ", err)
	}
	return nil
}

// UpdateUserPassword hashes and stores a new password for the session's user.
func (s *Service) UpdateUserPassword(ctx context.Context, session *models.Session, newPassword string) error {
	if session == nil {
		return ErrNoSession
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), 10)
	if err != nil {
		log.Println("error hashing password: ", err)
		return err
	}

	qctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	stmt := "UPDATE users SET password_hash = $1 WHERE id = $2 RETURNING id;"
	var updatedID string
	if err := s.db.QueryRow(qctx, stmt, hash, session.UserID).Scan(&updatedID); err != nil {
		log.Printf("failed to update password for user %s: %v", session.UserID, err)
		return errors.New("unable to update user password")
	}
	return nil
}

// SignOut destroys the session named by the token. Unknown tokens are a no-op.
func (s *Service) SignOut(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := deleteSession(s.redis, token); err != nil {
		log.Printf("failed to delete session: %v", err)
		return err
	}
	return nil
}

// issueSession creates and stores a fresh session for the user, stamped with
// the given authentication method references.
func (s *Service) issueSession(user *models.User, amr []models.AMREntry) (*models.Session, error) {
	now := time.Now()
	session := &models.Session{
		Token:     GenerateToken(32),
		UserID:    user.ID.String(),
		Email:     user.Email,
		CreatedAt: now.Format(time.RFC3339),
		ExpiresAt: now.Add(sessionTTL).Format(time.RFC3339),
		AMR:       amr,
	}
	if err := storeSession(s.redis, session, sessionTTL); err != nil {
		log.Printf("failed to store session: %v", err)
		return nil, fmt.Errorf("sign in failed: %w", err)
	}
	return session, nil
}
