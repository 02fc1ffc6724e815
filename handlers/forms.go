package handlers

import (
	"net/http"
	"strconv"
	"time"
)

// One decoded struct per action. Decoding never fails: missing fields come
// back zero-valued and the action's own validation decides what to say.

type EmailForm struct {
	Email string
}

func DecodeEmailForm(r *http.Request) EmailForm {
	return EmailForm{Email: r.FormValue("email")}
}

type PasswordForm struct {
	NewPassword1    string
	NewPassword2    string
	CurrentPassword string
}

func DecodePasswordForm(r *http.Request) PasswordForm {
	return PasswordForm{
		NewPassword1:    r.FormValue("newPassword1"),
		NewPassword2:    r.FormValue("newPassword2"),
		CurrentPassword: r.FormValue("currentPassword"),
	}
}

type ProfileForm struct {
	FullName    string
	CompanyName string
	Website     string
}

func DecodeProfileForm(r *http.Request) ProfileForm {
	return ProfileForm{
		FullName:    r.FormValue("fullName"),
		CompanyName: r.FormValue("companyName"),
		Website:     r.FormValue("website"),
	}
}

type JournalEntryForm struct {
	ID                  string
	Title               string
	Tags                []string
	UserText            string
	AIGeneratedText     string
	AIGeneratedImageURL string
	EntryDate           time.Time
	MoodIndicator       string
	Weather             string
	Location            string
	WordCount           int
	PrivacyLevel        string
	DailyQuote          string
	EntryType           string
	BookmarkFlag        bool
	Status              string
	ImageURL            string
	AudioURL            string
	TimeSpent           string
}

// entryDateLayouts are tried in order; HTML date inputs post the short forms.
var entryDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02",
}

// parseEntryDate turns the submitted entry_date into a time. Absent or
// unparsable values default to now.
func parseEntryDate(raw string) time.Time {
	if raw == "" {
		return time.Now()
	}
	for _, layout := range entryDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	return time.Now()
}

// parseWordCount defaults to 0 on anything that isn't an integer.
func parseWordCount(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return n
}

func DecodeJournalEntryForm(r *http.Request) JournalEntryForm {
	if err := r.ParseForm(); err != nil {
		return JournalEntryForm{EntryDate: time.Now()}
	}

	return JournalEntryForm{
		ID:                  r.FormValue("id"),
		Title:               r.FormValue("title"),
		Tags:                r.Form["tags"],
		UserText:            r.FormValue("user_text"),
		AIGeneratedText:     r.FormValue("ai_generated_text"),
		AIGeneratedImageURL: r.FormValue("ai_generated_image_url"),
		EntryDate:           parseEntryDate(r.FormValue("entry_date")),
		MoodIndicator:       r.FormValue("mood_indicator"),
		Weather:             r.FormValue("weather"),
		Location:            r.FormValue("location"),
		WordCount:           parseWordCount(r.FormValue("word_count")),
		PrivacyLevel:        r.FormValue("privacy_level"),
		DailyQuote:          r.FormValue("daily_quote"),
		EntryType:           r.FormValue("entry_type"),
		BookmarkFlag:        r.FormValue("bookmark_flag") == "true",
		Status:              r.FormValue("status"),
		ImageURL:            r.FormValue("image_url"),
		AudioURL:            r.FormValue("audio_url"),
		TimeSpent:           r.FormValue("time_spent"),
	}
}
