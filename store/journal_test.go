package store

import (
	"strings"
	"testing"
)

func TestIntervalParam(t *testing.T) {
	if got := intervalParam(""); got != nil {
		t.Errorf("intervalParam(\"\") = %v, want nil", got)
	}
	if got := intervalParam("01:00:00"); got != "01:00:00" {
		t.Errorf("intervalParam(\"01:00:00\") = %v", got)
	}
}

func TestEntryProjectionIsExplicit(t *testing.T) {
	columns := []string{
		"id", "user_id", "title", "tags", "user_text",
		"ai_generated_text", "ai_generated_image_url", "entry_date",
		"mood_indicator", "weather", "location", "word_count",
		"privacy_level", "daily_quote", "entry_type", "bookmark_flag",
		"status", "image_url", "audio_url", "time_spent",
	}
	for _, col := range columns {
		if !strings.Contains(entryColumns, col) {
			t.Errorf("projection is missing %q", col)
		}
	}
	if strings.Contains(entryColumns, "*") {
		t.Errorf("projection must not select *")
	}
}
