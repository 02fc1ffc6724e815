package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"

	"daybook/auth"
	"daybook/models"
)

// PasswordResetter is the recovery slice of the auth backend.
type PasswordResetter interface {
	RequestReset(ctx context.Context, email string) error
	Recover(ctx context.Context, email string, code string) (*models.Session, error)
}

// ForgotPassword mails a reset code. The answer never reveals whether the
// address has an account.
func ForgotPassword(w http.ResponseWriter, r *http.Request, resetter PasswordResetter) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	email := r.FormValue("email")
	if email == "" {
		WriteOutcome(w, r, Fail("An email address is required", []string{"email"}, map[string]any{"email": email}))
		return
	}

	err := resetter.RequestReset(r.Context(), email)
	if err != nil && !errors.Is(err, auth.ErrUserNotFound) {
		log.Println("error requesting password reset: ", err)
		WriteOutcome(w, r, ServerError(genericErrorMessage, map[string]any{"email": email}))
		return
	}

	WriteOutcome(w, r, Success(map[string]any{"email": email}))
}

// Recover exchanges an emailed reset code for a recovery session and sets
// the session cookie, then sends the user to the password form.
func Recover(w http.ResponseWriter, r *http.Request, resetter PasswordResetter) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	email := r.FormValue("email")
	code := r.FormValue("code")
	if email == "" || code == "" {
		WriteOutcome(w, r, Fail("Email and reset code are required", []string{"email", "code"}, map[string]any{"email": email}))
		return
	}

	session, err := resetter.Recover(r.Context(), email, code)
	if err != nil {
		log.Println("recovery failed for user: ", email, " error: ", err)
		WriteOutcome(w, r, Fail("Invalid or expired reset code. Please try again.", []string{"code"}, map[string]any{"email": email}))
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "session_token",
		Value:    session.Token,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		Path:     "/",
		MaxAge:   3600 * 24,
	})

	http.Redirect(w, r, "/account", http.StatusSeeOther)
}
