package handlers

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"daybook/models"

	"github.com/google/uuid"
)

// recoveryWindow bounds how old a recovery grant may be before it can no
// longer be used to change the password.
const recoveryWindow = 15 * time.Minute

// dedupe keeps the first occurrence of each field name, in order.
func dedupe(fields []string) []string {
	seen := map[string]bool{}
	out := []string{}
	for _, f := range fields {
		if !seen[f] {
			seen[f] = true
			out = append(out, f)
		}
	}
	return out
}

// sessionUserID returns the session's user id, or the empty string when
// anonymous. Mutations filter on it, so an anonymous mutation matches no row.
func sessionUserID(rc *RequestContext) string {
	if rc.Session == nil {
		return ""
	}
	return rc.Session.UserID
}

// UpdateEmail changes the account email. The "@" check is deliberately
// permissive: anything stricter is settled by the verification mail.
func UpdateEmail(ctx context.Context, rc *RequestContext, r *http.Request) Outcome {
	f := DecodeEmailForm(r)
	echo := map[string]any{"email": f.Email}

	if f.Email == "" {
		return Fail("An email address is required", []string{"email"}, echo)
	}
	if !strings.Contains(f.Email, "@") {
		return Fail("A valid email address is required", []string{"email"}, echo)
	}

	if err := rc.Auth.UpdateUserEmail(ctx, rc.Session, f.Email); err != nil {
		log.Println("error updating email: ", err)
		return ServerError(genericErrorMessage, echo)
	}
	return Success(echo)
}

// UpdatePassword changes the password, either against the current password
// or under a fresh recovery grant. Validation collects every offending field
// but reports the last failing rule's message.
func UpdatePassword(ctx context.Context, rc *RequestContext, r *http.Request) Outcome {
	if rc.Session == nil {
		return Redirect("/login")
	}

	f := DecodePasswordForm(r)
	echo := map[string]any{
		"newPassword1":    f.NewPassword1,
		"newPassword2":    f.NewPassword2,
		"currentPassword": f.CurrentPassword,
	}

	// A recovery session may skip the current password, but only while the
	// grant is fresh. A supplied current password takes priority either way.
	recoveryAMR := rc.Session.RecoveryAMR()
	isRecoverySession := recoveryAMR != nil && f.CurrentPassword == ""

	if isRecoverySession {
		sinceLogin := time.Since(time.Unix(recoveryAMR.Timestamp, 0))
		if sinceLogin > recoveryWindow {
			return Fail(
				`Recovery code expired. Please log out, then use "Forgot Password" on the sign in page to reset your password. Codes are valid for 15 minutes.`,
				[]string{},
				map[string]any{
					"newPassword1":    f.NewPassword1,
					"newPassword2":    f.NewPassword2,
					"currentPassword": "",
				})
		}
	}

	var validationError string
	var errorFields []string
	if f.NewPassword1 == "" {
		validationError = "You must type a new password"
		errorFields = append(errorFields, "newPassword1")
	}
	if f.NewPassword2 == "" {
		validationError = "You must type the new password twice"
		errorFields = append(errorFields, "newPassword2")
	}
	if len(f.NewPassword1) < 6 {
		validationError = "The new password must be at least 6 characters long"
		errorFields = append(errorFields, "newPassword1")
	}
	if len(f.NewPassword1) > 72 {
		validationError = "The new password can be at most 72 characters long"
		errorFields = append(errorFields, "newPassword1")
	}
	if f.NewPassword1 != f.NewPassword2 {
		validationError = "The passwords don't match"
		errorFields = append(errorFields, "newPassword1", "newPassword2")
	}
	if f.CurrentPassword == "" && !isRecoverySession {
		validationError = "You must include your current password. If you forgot it, sign out then use 'forgot password' on the sign in page."
		errorFields = append(errorFields, "currentPassword")
	}
	if validationError != "" {
		return Fail(validationError, dedupe(errorFields), echo)
	}

	// Re-authenticate before updating, unless the recovery grant covers it.
	// A wrong current password ends the session rather than the form.
	if !isRecoverySession {
		if err := rc.Auth.SignInWithPassword(ctx, rc.Session.Email, f.CurrentPassword); err != nil {
			if err := rc.Auth.SignOut(ctx, rc.Token); err != nil {
				log.Println("error signing out after failed re-auth: ", err)
			}
			return Redirect("/login/current_password_error")
		}
	}

	if err := rc.Auth.UpdateUserPassword(ctx, rc.Session, f.NewPassword1); err != nil {
		log.Println("error updating password: ", err)
		return ServerError(genericErrorMessage, echo)
	}
	return Success(echo)
}

// DeleteAccount removes the account after a current-password re-auth, using
// the privileged admin handle, then signs the session out.
func DeleteAccount(ctx context.Context, rc *RequestContext, r *http.Request) Outcome {
	if rc.Session == nil {
		return Redirect("/login")
	}

	currentPassword := r.FormValue("currentPassword")
	echo := map[string]any{"currentPassword": currentPassword}

	if currentPassword == "" {
		return Fail(
			"You must provide your current password to delete your account. If you forgot it, sign out then use 'forgot password' on the sign in page.",
			[]string{"currentPassword"}, echo)
	}

	if err := rc.Auth.SignInWithPassword(ctx, rc.Session.Email, currentPassword); err != nil {
		if err := rc.Auth.SignOut(ctx, rc.Token); err != nil {
			log.Println("error signing out after failed re-auth: ", err)
		}
		return Redirect("/login/current_password_error")
	}

	if err := rc.Admin.DeleteUser(ctx, rc.Session.UserID); err != nil {
		log.Println("error deleting user: ", err)
		return ServerError(genericErrorMessage, echo)
	}

	if err := rc.Auth.SignOut(ctx, rc.Token); err != nil {
		log.Println("error signing out deleted user: ", err)
	}
	return Redirect("/")
}

// UpdateProfile upserts the profile row. All three fields are required;
// every missing field is recorded, the first one's message wins.
func UpdateProfile(ctx context.Context, rc *RequestContext, r *http.Request) Outcome {
	f := DecodeProfileForm(r)
	echo := map[string]any{
		"fullName":    f.FullName,
		"companyName": f.CompanyName,
		"website":     f.Website,
	}

	var validationError string
	var errorFields []string
	setError := func(msg string) {
		if validationError == "" {
			validationError = msg
		}
	}
	if f.FullName == "" {
		setError("Name is required")
		errorFields = append(errorFields, "fullName")
	}
	if f.CompanyName == "" {
		setError("Company name is required. If this is a hobby project or personal app, please put your name.")
		errorFields = append(errorFields, "companyName")
	}
	if f.Website == "" {
		setError("Company website is required. An app store URL is a good alternative if you don't have a website.")
		errorFields = append(errorFields, "website")
	}
	if validationError != "" {
		return Fail(validationError, errorFields, echo)
	}

	id, err := uuid.Parse(sessionUserID(rc))
	if err != nil {
		log.Println("profile update without a usable session: ", err)
		return ServerError(genericErrorMessage, echo)
	}

	profile := &models.Profile{
		ID:          id,
		FullName:    f.FullName,
		CompanyName: f.CompanyName,
		Website:     f.Website,
	}
	if err := rc.Profiles.Upsert(ctx, profile); err != nil {
		log.Println("error upserting profile: ", err)
		return ServerError(genericErrorMessage, echo)
	}
	return Success(echo)
}

// Signout destroys the session and sends the user home. Without a session
// it is a no-op.
func Signout(ctx context.Context, rc *RequestContext, r *http.Request) Outcome {
	if rc.Session != nil {
		if err := rc.Auth.SignOut(ctx, rc.Token); err != nil {
			log.Println("error signing out: ", err)
		}
		return Redirect("/")
	}
	return Success(nil)
}

// CreateJournalEntry inserts one entry owned by the session identity.
func CreateJournalEntry(ctx context.Context, rc *RequestContext, r *http.Request) Outcome {
	if rc.Session == nil {
		return Fail("Not authenticated", nil, nil)
	}

	f := DecodeJournalEntryForm(r)
	if f.Title == "" || f.UserText == "" {
		return Fail("Title and text are required", nil, nil)
	}

	userID, err := uuid.Parse(rc.Session.UserID)
	if err != nil {
		log.Println("bad user id on session: ", err)
		return ServerError("Could not create journal entry", nil)
	}

	entry := entryFromForm(f)
	entry.UserID = userID
	if err := rc.Journal.Insert(ctx, entry); err != nil {
		log.Println("error creating journal entry: ", err)
		return ServerError("Could not create journal entry", nil)
	}
	return Success(map[string]any{})
}

// UpdateJournalEntry rewrites an entry, filtered by id and owner. Required
// fields are checked one at a time; the first missing one ends validation.
func UpdateJournalEntry(ctx context.Context, rc *RequestContext, r *http.Request) Outcome {
	f := DecodeJournalEntryForm(r)

	if f.ID == "" {
		return Fail("ID is required to update journal entry.", nil, nil)
	}
	if f.Title == "" {
		return Fail("Title is required to update journal entry.", nil, nil)
	}
	if f.UserText == "" {
		return Fail("Text is required to update journal entry.", nil, nil)
	}
	if f.EntryDate.IsZero() {
		return Fail("Entry date is required to update journal entry.", nil, nil)
	}
	if f.MoodIndicator == "" {
		return Fail("Mood indicator is required to update journal entry.", nil, nil)
	}
	if f.Weather == "" {
		return Fail("Weather is required to update journal entry.", nil, nil)
	}
	if f.Location == "" {
		return Fail("Location is required to update journal entry.", nil, nil)
	}
	if f.PrivacyLevel == "" {
		return Fail("Privacy level is required to update journal entry.", nil, nil)
	}
	if f.EntryType == "" {
		return Fail("Entry type is required to update journal entry.", nil, nil)
	}
	if f.Status == "" {
		return Fail("Status is required to update journal entry.", nil, nil)
	}

	id, err := strconv.ParseInt(f.ID, 10, 64)
	if err != nil {
		return ServerError("Failed to update journal entry.", nil)
	}

	// An anonymous session yields the nil owner, which matches no row.
	userID, err := uuid.Parse(sessionUserID(rc))
	if err != nil {
		userID = uuid.Nil
	}

	entry := entryFromForm(f)
	entry.ID = id
	entry.UserID = userID
	if err := rc.Journal.Update(ctx, entry); err != nil {
		log.Println("error updating journal entry: ", err)
		return ServerError("Failed to update journal entry.", nil)
	}
	return Success(map[string]any{"message": "Journal entry updated successfully."})
}

// DeleteJournalEntry removes an entry filtered by id and owner. Deleting an
// id that no longer exists still succeeds.
func DeleteJournalEntry(ctx context.Context, rc *RequestContext, r *http.Request) Outcome {
	rawID := r.FormValue("id")
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		return ServerError("Failed to delete journal entry.", nil)
	}

	if err := rc.Journal.Delete(ctx, id, sessionUserID(rc)); err != nil {
		log.Println("error deleting journal entry: ", err)
		return ServerError("Failed to delete journal entry.", nil)
	}
	return Success(map[string]any{"message": "Journal entry deleted successfully."})
}

// GetJournalEntries lists the requester's entries, newest first. The
// identity is re-derived from the backend rather than the local session.
func GetJournalEntries(ctx context.Context, rc *RequestContext, r *http.Request) Outcome {
	user, err := rc.Auth.GetUser(ctx, rc.Token)
	if err != nil || user == nil {
		return Fail("Not authenticated", nil, nil)
	}

	entries, err := rc.Journal.ListByUser(ctx, user.ID.String())
	if err != nil {
		// The one read path that surfaces the backend's own error text.
		return ServerError("Could not get journal entries", map[string]any{"details": err.Error()})
	}
	return Success(map[string]any{"journalEntries": entries})
}

func entryFromForm(f JournalEntryForm) *models.JournalEntry {
	return &models.JournalEntry{
		Title:               f.Title,
		Tags:                f.Tags,
		UserText:            f.UserText,
		AIGeneratedText:     f.AIGeneratedText,
		AIGeneratedImageURL: f.AIGeneratedImageURL,
		EntryDate:           f.EntryDate,
		MoodIndicator:       f.MoodIndicator,
		Weather:             f.Weather,
		Location:            f.Location,
		WordCount:           f.WordCount,
		PrivacyLevel:        f.PrivacyLevel,
		DailyQuote:          f.DailyQuote,
		EntryType:           f.EntryType,
		BookmarkFlag:        f.BookmarkFlag,
		Status:              f.Status,
		ImageURL:            f.ImageURL,
		AudioURL:            f.AudioURL,
		TimeSpent:           f.TimeSpent,
	}
}
