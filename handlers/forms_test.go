package handlers_test

import (
	"net/url"
	"reflect"
	"testing"
	"time"

	"daybook/handlers"
)

func TestDecodeJournalEntryForm(t *testing.T) {
	t.Run("Absent entry_date defaults to now", func(t *testing.T) {
		f := handlers.DecodeJournalEntryForm(formRequest(url.Values{"title": {"Day 1"}}))

		if time.Since(f.EntryDate) > 2*time.Second {
			t.Errorf("EntryDate = %v, want about now", f.EntryDate)
		}
	})

	t.Run("Unparsable entry_date defaults to now", func(t *testing.T) {
		f := handlers.DecodeJournalEntryForm(formRequest(url.Values{"entry_date": {"last tuesday"}}))

		if time.Since(f.EntryDate) > 2*time.Second {
			t.Errorf("EntryDate = %v, want about now", f.EntryDate)
		}
	})

	t.Run("Date-only entry_date parses exactly", func(t *testing.T) {
		f := handlers.DecodeJournalEntryForm(formRequest(url.Values{"entry_date": {"2024-03-01"}}))

		want := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
		if !f.EntryDate.Equal(want) {
			t.Errorf("EntryDate = %v, want %v", f.EntryDate, want)
		}
	})

	t.Run("RFC3339 entry_date parses exactly", func(t *testing.T) {
		f := handlers.DecodeJournalEntryForm(formRequest(url.Values{"entry_date": {"2024-03-01T09:30:00Z"}}))

		want := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
		if !f.EntryDate.Equal(want) {
			t.Errorf("EntryDate = %v, want %v", f.EntryDate, want)
		}
	})

	t.Run("Word count defaults to zero on junk", func(t *testing.T) {
		tests := []struct {
			raw  string
			want int
		}{
			{raw: "", want: 0},
			{raw: "abc", want: 0},
			{raw: "3.5", want: 0},
			{raw: "42", want: 42},
		}
		for _, tt := range tests {
			f := handlers.DecodeJournalEntryForm(formRequest(url.Values{"word_count": {tt.raw}}))
			if f.WordCount != tt.want {
				t.Errorf("WordCount(%q) = %d, want %d", tt.raw, f.WordCount, tt.want)
			}
		}
	})

	t.Run("Bookmark flag is the literal string true", func(t *testing.T) {
		tests := []struct {
			raw  string
			want bool
		}{
			{raw: "true", want: true},
			{raw: "TRUE", want: false},
			{raw: "1", want: false},
			{raw: "", want: false},
		}
		for _, tt := range tests {
			f := handlers.DecodeJournalEntryForm(formRequest(url.Values{"bookmark_flag": {tt.raw}}))
			if f.BookmarkFlag != tt.want {
				t.Errorf("BookmarkFlag(%q) = %v, want %v", tt.raw, f.BookmarkFlag, tt.want)
			}
		}
	})

	t.Run("Repeated tags fields collect in order", func(t *testing.T) {
		f := handlers.DecodeJournalEntryForm(formRequest(url.Values{"tags": {"rain", "walk", "oslo"}}))

		if !reflect.DeepEqual(f.Tags, []string{"rain", "walk", "oslo"}) {
			t.Errorf("Tags = %v", f.Tags)
		}
	})
}
