package models

import (
	"time"

	"github.com/google/uuid"
)

type JournalEntry struct {
	ID                  int64     `db:"id" json:"id"`
	UserID              uuid.UUID `db:"user_id" json:"user_id"`
	Title               string    `db:"title" json:"title"`
	Tags                []string  `db:"tags" json:"tags"`
	UserText            string    `db:"user_text" json:"user_text"`
	AIGeneratedText     string    `db:"ai_generated_text" json:"ai_generated_text"`
	AIGeneratedImageURL string    `db:"ai_generated_image_url" json:"ai_generated_image_url"`
	EntryDate           time.Time `db:"entry_date" json:"entry_date"`
	MoodIndicator       string    `db:"mood_indicator" json:"mood_indicator"`
	Weather             string    `db:"weather" json:"weather"`
	Location            string    `db:"location" json:"location"`
	WordCount           int       `db:"word_count" json:"word_count"`
	PrivacyLevel        string    `db:"privacy_level" json:"privacy_level"`
	DailyQuote          string    `db:"daily_quote" json:"daily_quote"`
	EntryType           string    `db:"entry_type" json:"entry_type"`
	BookmarkFlag        bool      `db:"bookmark_flag" json:"bookmark_flag"`
	Status              string    `db:"status" json:"status"`
	ImageURL            string    `db:"image_url" json:"image_url"`
	AudioURL            string    `db:"audio_url" json:"audio_url"`
	TimeSpent           string    `db:"time_spent" json:"time_spent"`
}
