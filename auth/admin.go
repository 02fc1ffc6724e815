package auth

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

var ErrNotElevated = errors.New("admin operations require a service role key")

// Admin wraps the privileged operations that must never run with an
// end-user session alone. It is constructed with the service role key and
// handed to a request only when the route actually needs it.
type Admin struct {
	db             *pgxpool.Pool
	redis          *redis.Client
	serviceRoleKey string
}

func NewAdmin(db *pgxpool.Pool, redisClient *redis.Client, serviceRoleKey string) *Admin {
	return &Admin{db: db, redis: redisClient, serviceRoleKey: serviceRoleKey}
}

// DeleteUser removes the user and everything hanging off them: journal
// entries, profile, the user row and every live session.
func (a *Admin) DeleteUser(ctx context.Context, userID string) error {
	if a.serviceRoleKey == "" {
		return ErrNotElevated
	}

	qctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if _, err := a.db.Exec(qctx, "DELETE FROM journal_entries WHERE user_id = $1;", userID); err != nil {
		return fmt.Errorf("failed to delete journal entries: %w", err)
	}
	if _, err := a.db.Exec(qctx, "DELETE FROM profiles WHERE id = $1;", userID); err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}
	if _, err := a.db.Exec(qctx, "DELETE FROM users WHERE id = $1;", userID); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	if err := deleteAllUserSessions(a.redis, userID); err != nil {
		log.Printf("failed to delete sessions for user %s: %v", userID, err)
	}
	return nil
}
