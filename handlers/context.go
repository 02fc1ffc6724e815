// Package handlers holds the account form actions and the journal page load
// pipeline. Every action takes the request-scoped context plus the request
// and returns an Outcome; the route layer writes it.
package handlers

import (
	"context"
	"net/http"

	"daybook/models"
)

// AuthService is the slice of the auth backend the handlers are allowed to
// touch.
type AuthService interface {
	GetSession(ctx context.Context, token string) (*models.Session, error)
	GetUser(ctx context.Context, token string) (*models.User, error)
	SignInWithPassword(ctx context.Context, email string, password string) error
	UpdateUserEmail(ctx context.Context, session *models.Session, email string) error
	UpdateUserPassword(ctx context.Context, session *models.Session, newPassword string) error
	SignOut(ctx context.Context, token string) error
}

// AdminService carries the privileged user deletion. Only the delete-account
// route ever gets one.
type AdminService interface {
	DeleteUser(ctx context.Context, userID string) error
}

type ProfileStore interface {
	Get(ctx context.Context, id string) (*models.Profile, error)
	Upsert(ctx context.Context, profile *models.Profile) error
}

type JournalStore interface {
	Insert(ctx context.Context, entry *models.JournalEntry) error
	Update(ctx context.Context, entry *models.JournalEntry) error
	Delete(ctx context.Context, id int64, userID string) error
	ListByUser(ctx context.Context, userID string) ([]models.JournalEntry, error)
}

// RequestContext is built once per request by the route layer and passed into
// every handler: the current session (nil when anonymous), the raw session
// token, and the backend handles.
type RequestContext struct {
	Session  *models.Session
	Token    string
	Auth     AuthService
	Profiles ProfileStore
	Journal  JournalStore
	Admin    AdminService
}

// ActionFunc is one named form action.
type ActionFunc func(ctx context.Context, rc *RequestContext, r *http.Request) Outcome
