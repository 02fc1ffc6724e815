package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"daybook/models"

	"github.com/redis/go-redis/v9"
)

const sessionTTL = 24 * time.Hour

// OpenRedis initializes a Redis connection pool
func OpenRedis(dsn string) *redis.Client {
	opt, err := redis.ParseURL(dsn)
	if err != nil {
		log.Fatalf("Failed to parse Redis DSN: %v", err)
	}

	opt.PoolSize = 100
	opt.MinIdleConns = 2
	opt.DialTimeout = 5 * time.Second
	opt.ConnMaxIdleTime = 5 * time.Minute

	client := redis.NewClient(opt)
	if err = client.Ping(context.Background()).Err(); err != nil {
		log.Fatalf("Failed to ping redis db 0: %v", err)
	}

	return client
}

// GenerateToken returns a URL-safe random token of the given byte length.
func GenerateToken(length int) string {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		log.Fatalf("Failed to generate token: %v", err)
	}
	return base64.URLEncoding.EncodeToString(bytes)
}

func encodeAMR(amr []models.AMREntry) string {
	if len(amr) == 0 {
		return "[]"
	}
	b, err := json.Marshal(amr)
	if err != nil {
		return "[]"
	}
	return string(b)
}

func decodeAMR(raw string) []models.AMREntry {
	if raw == "" {
		return nil
	}
	var amr []models.AMREntry
	if err := json.Unmarshal([]byte(raw), &amr); err != nil {
		log.Println("failed to decode session amr: ", err)
		return nil
	}
	return amr
}

// storeSession saves a session in Redis and indexes it under the owning user.
func storeSession(client *redis.Client, session *models.Session, ttl time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	sessionMap := map[string]any{
		"user_id":    session.UserID,
		"email":      session.Email,
		"created_at": session.CreatedAt,
		"expires_at": session.ExpiresAt,
		"amr":        encodeAMR(session.AMR),
	}

	key := "session:" + session.Token
	if err := client.HSet(ctx, key, sessionMap).Err(); err != nil {
		return err
	}

	if err := client.Expire(ctx, key, ttl).Err(); err != nil {
		return err
	}

	// Add to the user's session index
	return client.SAdd(ctx, "user_sessions:"+session.UserID, key).Err()
}

// getSession retrieves session details from Redis
func getSession(client *redis.Client, token string) (*models.Session, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	key := "session:" + token

	data, err := client.HGetAll(ctx, key).Result()
	if err != nil || len(data) == 0 {
		return nil, fmt.Errorf("session not found")
	}

	session := &models.Session{
		Token:     token,
		UserID:    data["user_id"],
		Email:     data["email"],
		CreatedAt: data["created_at"],
		ExpiresAt: data["expires_at"],
		AMR:       decodeAMR(data["amr"]),
	}

	return session, nil
}

// deleteSession removes a single session and its reference in the user index
func deleteSession(client *redis.Client, token string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	userID, err := client.HGet(ctx, "session:"+token, "user_id").Result()
	if err != nil {
		return err
	}

	if err := client.SRem(ctx, "user_sessions:"+userID, "session:"+token).Err(); err != nil {
		return err
	}

	return client.Del(ctx, "session:"+token).Err()
}

// deleteAllUserSessions removes all sessions associated with a specific user
func deleteAllUserSessions(client *redis.Client, userID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	sessionKeys, err := client.SMembers(ctx, "user_sessions:"+userID).Result()
	if err != nil {
		return err
	}

	if len(sessionKeys) > 0 {
		if err := client.Del(ctx, sessionKeys...).Err(); err != nil {
			return err
		}
	}

	// Clean up the index itself
	return client.Del(ctx, "user_sessions:"+userID).Err()
}

// sessionExpired checks the session's own expiry stamp. Redis TTL normally
// evicts the hash first, but the stamp is authoritative.
func sessionExpired(session *models.Session) bool {
	expiresAt, err := time.Parse(time.RFC3339, session.ExpiresAt)
	if err != nil {
		return true
	}
	return !time.Now().Before(expiresAt)
}
