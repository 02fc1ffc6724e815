package store

import (
	"context"
	"log"
	"time"

	"daybook/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Journal struct {
	db *pgxpool.Pool
}

func NewJournal(db *pgxpool.Pool) *Journal {
	return &Journal{db: db}
}

// intervalParam binds time_spent through an ::interval cast, NULL when the
// form left it out.
func intervalParam(timeSpent string) any {
	if timeSpent == "" {
		return nil
	}
	return timeSpent
}

// Insert creates one journal entry owned by entry.UserID.
func (j *Journal) Insert(ctx context.Context, entry *models.JournalEntry) error {
	qctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	stmt := `INSERT INTO journal_entries
		(user_id, title, tags, user_text, ai_generated_text, ai_generated_image_url,
		entry_date, mood_indicator, weather, location, word_count, privacy_level,
		daily_quote, entry_type, bookmark_flag, status, image_url, audio_url, time_spent)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19::interval);`

	_, err := j.db.Exec(qctx, stmt,
		entry.UserID, entry.Title, entry.Tags, entry.UserText, entry.AIGeneratedText,
		entry.AIGeneratedImageURL, entry.EntryDate, entry.MoodIndicator, entry.Weather,
		entry.Location, entry.WordCount, entry.PrivacyLevel, entry.DailyQuote,
		entry.EntryType, entry.BookmarkFlag, entry.Status, entry.ImageURL, entry.AudioURL,
		intervalParam(entry.TimeSpent))
	if err != nil {
		log.Println("error inserting journal entry: ", err)
		return err
	}
	return nil
}

// Update rewrites the entry filtered by id AND owner. A row owned by someone
// else is simply not matched; that is the whole ownership story.
func (j *Journal) Update(ctx context.Context, entry *models.JournalEntry) error {
	qctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	stmt := `UPDATE journal_entries SET
		title = $1, tags = $2, user_text = $3, ai_generated_text = $4,
		ai_generated_image_url = $5, entry_date = $6, mood_indicator = $7, weather = $8,
		location = $9, word_count = $10, privacy_level = $11, daily_quote = $12,
		entry_type = $13, bookmark_flag = $14, status = $15, image_url = $16,
		audio_url = $17, time_spent = $18::interval
		WHERE id = $19 AND user_id = $20;`

	_, err := j.db.Exec(qctx, stmt,
		entry.Title, entry.Tags, entry.UserText, entry.AIGeneratedText,
		entry.AIGeneratedImageURL, entry.EntryDate, entry.MoodIndicator, entry.Weather,
		entry.Location, entry.WordCount, entry.PrivacyLevel, entry.DailyQuote,
		entry.EntryType, entry.BookmarkFlag, entry.Status, entry.ImageURL, entry.AudioURL,
		intervalParam(entry.TimeSpent), entry.ID, entry.UserID)
	if err != nil {
		log.Println("error updating journal entry: ", err)
		return err
	}
	return nil
}

// Delete removes the entry filtered by id AND owner. Deleting an absent or
// foreign row matches nothing and is not an error.
func (j *Journal) Delete(ctx context.Context, id int64, userID string) error {
	qctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	stmt := "DELETE FROM journal_entries WHERE id = $1 AND user_id = $2;"
	if _, err := j.db.Exec(qctx, stmt, id, userID); err != nil {
		log.Println("error deleting journal entry: ", err)
		return err
	}
	return nil
}

// entryColumns is the explicit projection the listing promises.
const entryColumns = `id, user_id, title, tags,
	COALESCE(user_text, ''), COALESCE(ai_generated_text, ''), COALESCE(ai_generated_image_url, ''),
	entry_date, COALESCE(mood_indicator, ''), COALESCE(weather, ''), COALESCE(location, ''),
	COALESCE(word_count, 0), COALESCE(privacy_level, ''), COALESCE(daily_quote, ''),
	COALESCE(entry_type, ''), bookmark_flag, COALESCE(status, ''),
	COALESCE(image_url, ''), COALESCE(audio_url, ''), COALESCE(time_spent::text, '')`

// ListByUser returns every entry owned by the user, newest entry_date first.
func (j *Journal) ListByUser(ctx context.Context, userID string) ([]models.JournalEntry, error) {
	qctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	stmt := "SELECT " + entryColumns + " FROM journal_entries WHERE user_id = $1 ORDER BY entry_date DESC;"
	rows, err := j.db.Query(qctx, stmt, userID)
	if err != nil {
		log.Println("error querying journal entries: ", err)
		return nil, err
	}
	defer rows.Close()

	entries := []models.JournalEntry{}
	for rows.Next() {
		var e models.JournalEntry
		err := rows.Scan(&e.ID, &e.UserID, &e.Title, &e.Tags,
			&e.UserText, &e.AIGeneratedText, &e.AIGeneratedImageURL,
			&e.EntryDate, &e.MoodIndicator, &e.Weather, &e.Location,
			&e.WordCount, &e.PrivacyLevel, &e.DailyQuote,
			&e.EntryType, &e.BookmarkFlag, &e.Status,
			&e.ImageURL, &e.AudioURL, &e.TimeSpent)
		if err != nil {
			log.Println("error scanning journal entry row: ", err)
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		log.Println("error after scanning journal entry rows: ", err)
		return nil, err
	}
	return entries, nil
}
