package handlers

import (
	"context"
	"log"

	"daybook/models"
)

const createProfilePath = "/account/create_profile"

// JournalPageData is what the journal pages render from.
type JournalPageData struct {
	Session        *models.Session
	Profile        *models.Profile
	JournalEntries []models.JournalEntry
}

// ServerLoad is the first load stage: it gates on the session and fetches
// the profile and the entries. Any fetch error aborts the page render.
func ServerLoad(ctx context.Context, rc *RequestContext) (*JournalPageData, Outcome) {
	if rc.Session == nil {
		return nil, Redirect("/login")
	}

	profile, err := rc.Profiles.Get(ctx, rc.Session.UserID)
	if err != nil {
		log.Println("error fetching profile: ", err)
		return nil, ServerError("Failed to fetch profile.", nil)
	}

	entries, err := rc.Journal.ListByUser(ctx, rc.Session.UserID)
	if err != nil {
		log.Println("error fetching journal entries: ", err)
		return nil, ServerError("Failed to fetch journal entries.", nil)
	}

	return &JournalPageData{
		Session:        rc.Session,
		Profile:        profile,
		JournalEntries: entries,
	}, Success(nil)
}

// ClientLoad is the second stage: it rebinds to the session token, enforces
// the profile-completeness gate and re-fetches the entries. The re-fetch is
// redundant with the server stage; its result wins.
func ClientLoad(ctx context.Context, rc *RequestContext, path string, data *JournalPageData) Outcome {
	session, err := rc.Auth.GetSession(ctx, rc.Token)
	if err != nil {
		session = nil
	}

	if !data.Profile.Complete() && path != createProfilePath {
		return Redirect(createProfilePath)
	}

	var userID string
	if session != nil {
		userID = session.UserID
	}
	entries, err := rc.Journal.ListByUser(ctx, userID)
	if err != nil {
		log.Println("error fetching journal entries: ", err)
		return ServerError("Failed to fetch journal entries.", nil)
	}

	return Success(map[string]any{
		"session":        session,
		"profile":        data.Profile,
		"journalEntries": entries,
	})
}

// JournalPage runs both load stages for a journal page request.
func JournalPage(ctx context.Context, rc *RequestContext, path string) Outcome {
	data, out := ServerLoad(ctx, rc)
	if out.Kind != KindSuccess {
		return out
	}
	return ClientLoad(ctx, rc, path, data)
}
