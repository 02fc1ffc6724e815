package handlers_test

import (
	"context"
	"testing"

	"daybook/handlers"
	"daybook/models"
)

func completeProfile() *models.Profile {
	return &models.Profile{
		ID:          userAID,
		FullName:    "Ada Lovelace",
		CompanyName: "Acme",
		Website:     "https://acme.test",
	}
}

func TestServerLoad(t *testing.T) {
	t.Run("No session redirects to login", func(t *testing.T) {
		rc := newRC(&fakeAuth{}, &fakeProfiles{}, &fakeJournal{})

		_, out := handlers.ServerLoad(context.Background(), rc)

		if out.Kind != handlers.KindRedirect || out.Location != "/login" {
			t.Fatalf("got %+v, want redirect to /login", out)
		}
	})

	t.Run("Profile fetch error is fatal", func(t *testing.T) {
		fa := &fakeAuth{session: sessionFor(userAID, "a@example.com", nil)}
		fp := &fakeProfiles{getErr: context.Canceled}
		rc := newRC(fa, fp, &fakeJournal{})

		_, out := handlers.ServerLoad(context.Background(), rc)

		if out.Kind != handlers.KindServerError || out.ErrorMessage != "Failed to fetch profile." {
			t.Fatalf("got %+v, want profile fetch error", out)
		}
	})

	t.Run("Entries fetch error is fatal", func(t *testing.T) {
		fa := &fakeAuth{session: sessionFor(userAID, "a@example.com", nil)}
		fp := &fakeProfiles{profile: completeProfile()}
		fj := &fakeJournal{listErr: context.Canceled}
		rc := newRC(fa, fp, fj)

		_, out := handlers.ServerLoad(context.Background(), rc)

		if out.Kind != handlers.KindServerError || out.ErrorMessage != "Failed to fetch journal entries." {
			t.Fatalf("got %+v, want entries fetch error", out)
		}
	})

	t.Run("Returns session, profile and entries", func(t *testing.T) {
		fa := &fakeAuth{session: sessionFor(userAID, "a@example.com", nil)}
		fp := &fakeProfiles{profile: completeProfile()}
		fj := &fakeJournal{entries: []models.JournalEntry{{ID: 1, UserID: userAID, Title: "mine"}}}
		rc := newRC(fa, fp, fj)

		data, out := handlers.ServerLoad(context.Background(), rc)

		if out.Kind != handlers.KindSuccess {
			t.Fatalf("got %+v, want success", out)
		}
		if data.Session != rc.Session || data.Profile != fp.profile {
			t.Errorf("data = %+v, want the session and profile", data)
		}
		if len(data.JournalEntries) != 1 {
			t.Errorf("JournalEntries = %v, want one entry", data.JournalEntries)
		}
	})
}

func TestJournalPageCompletenessGate(t *testing.T) {
	tests := []struct {
		name     string
		profile  *models.Profile
		path     string
		wantKind handlers.OutcomeKind
		wantLoc  string
	}{
		{
			name:     "Missing profile row redirects to the create page",
			profile:  nil,
			path:     "/journal",
			wantKind: handlers.KindRedirect,
			wantLoc:  "/account/create_profile",
		},
		{
			name: "Incomplete profile on journal page redirects",
			profile: &models.Profile{
				ID:          userAID,
				FullName:    "Ada Lovelace",
				CompanyName: "Acme",
			},
			path:     "/journal",
			wantKind: handlers.KindRedirect,
			wantLoc:  "/account/create_profile",
		},
		{
			name: "Incomplete profile on the create page does not redirect",
			profile: &models.Profile{
				ID:          userAID,
				FullName:    "Ada Lovelace",
				CompanyName: "Acme",
			},
			path:     "/account/create_profile",
			wantKind: handlers.KindSuccess,
		},
		{
			name:     "Complete profile proceeds",
			profile:  completeProfile(),
			path:     "/journal",
			wantKind: handlers.KindSuccess,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fa := &fakeAuth{session: sessionFor(userAID, "a@example.com", nil)}
			fp := &fakeProfiles{profile: tt.profile}
			fj := &fakeJournal{entries: []models.JournalEntry{{ID: 1, UserID: userAID, Title: "mine"}}}
			rc := newRC(fa, fp, fj)

			out := handlers.JournalPage(context.Background(), rc, tt.path)

			if out.Kind != tt.wantKind {
				t.Fatalf("Kind = %v, want %v", out.Kind, tt.wantKind)
			}
			if tt.wantLoc != "" && out.Location != tt.wantLoc {
				t.Errorf("Location = %q, want %q", out.Location, tt.wantLoc)
			}
			if tt.wantKind == handlers.KindSuccess {
				entries, ok := out.Data["journalEntries"].([]models.JournalEntry)
				if !ok || len(entries) != 1 {
					t.Errorf("journalEntries = %v, want the re-fetched entry", out.Data["journalEntries"])
				}
			}
		})
	}
}
