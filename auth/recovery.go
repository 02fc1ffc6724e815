package auth

import (
	"context"
	"log"
	"time"

	"daybook/models"
)

// recoveryTTL bounds how long a reset code, and the recovery session made
// from it, can be used for secondary verification.
const recoveryTTL = 15 * time.Minute

// RequestReset generates a one-time reset code for the account behind the
// email, stores it with a 15-minute TTL and mails it out. Returns
// ErrUserNotFound when no account carries the address.
func (s *Service) RequestReset(ctx context.Context, email string) error {
	qctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	var exists bool
	stmt := "SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)"
	if err := s.db.QueryRow(qctx, stmt, email).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return ErrUserNotFound
	}

	code := GenerateToken(32)

	rctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := s.redis.Set(rctx, "recovery:"+email, code, recoveryTTL).Err(); err != nil {
		log.Printf("failed to store recovery code for user %s: %v", email, err)
		return err
	}

	if err := s.mailer.SendRecovery(email, code); err != nil {
		log.Println("error sending password reset email: ", err)
		return err
	}
	return nil
}

// Recover exchanges a reset code for a session whose AMR list carries a
// "recovery" grant stamped now. The code is consumed on success.
func (s *Service) Recover(ctx context.Context, email string, code string) (*models.Session, error) {
	rctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	stored, err := s.redis.Get(rctx, "recovery:"+email).Result()
	if err != nil || stored == "" || stored != code {
		return nil, ErrInvalidCredentials
	}
	if err := s.redis.Del(rctx, "recovery:"+email).Err(); err != nil {
		log.Printf("failed to consume recovery code for user %s: %v", email, err)
	}

	qctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	var user models.User
	stmt := "SELECT id, email, password_hash, created_at FROM users WHERE email = $1;"
	row := s.db.QueryRow(qctx, stmt, email)
	if err := row.Scan(&user.ID, &user.Email, &user.PasswordHash, &user.CreatedAt); err != nil {
		return nil, ErrUserNotFound
	}

	amr := []models.AMREntry{{Method: "recovery", Timestamp: time.Now().Unix()}}
	return s.issueSession(&user, amr)
}
