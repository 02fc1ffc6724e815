package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"daybook/auth"
	"daybook/handlers"
	"daybook/store"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if os.Getenv("APP_ENV") != "production" {
		if err := godotenv.Load(); err != nil {
			log.Println("No .env file found, continuing..")
		}
	}
	log.Println("environment: ", os.Getenv("APP_ENV"))

	pgDSN := os.Getenv("DATABASE_URL")

	// Initialize the database connection pool
	dbPool, pgErr := store.OpenDB(pgDSN)
	if pgErr != nil {
		log.Fatalf("Failed to connect to database: %v", pgErr)
	}
	defer dbPool.Close()

	redisDSN := os.Getenv("REDIS_URL")
	redisClient := auth.OpenRedis(redisDSN)
	defer redisClient.Close()

	mailer := auth.NewSendgridMailer(os.Getenv("SENDGRID_API_KEY"))
	authService := auth.New(dbPool, redisClient, mailer)
	admin := auth.NewAdmin(dbPool, redisClient, os.Getenv("SERVICE_ROLE_KEY"))
	profiles := store.NewProfiles(dbPool)
	journal := store.NewJournal(dbPool)

	// Named form actions, selected by the "action" request parameter.
	actions := map[string]handlers.ActionFunc{
		"updateEmail":        handlers.UpdateEmail,
		"updatePassword":     handlers.UpdatePassword,
		"deleteAccount":      handlers.DeleteAccount,
		"updateProfile":      handlers.UpdateProfile,
		"signout":            handlers.Signout,
		"createJournalEntry": handlers.CreateJournalEntry,
		"updateJournalEntry": handlers.UpdateJournalEntry,
		"deleteJournalEntry": handlers.DeleteJournalEntry,
		"getJournalEntries":  handlers.GetJournalEntries,
	}

	// requestContext resolves the session cookie into the per-request
	// context every handler receives.
	requestContext := func(r *http.Request) *handlers.RequestContext {
		rc := &handlers.RequestContext{
			Auth:     authService,
			Profiles: profiles,
			Journal:  journal,
		}
		st, err := r.Cookie("session_token")
		if err != nil || st.Value == "" {
			return rc
		}
		rc.Token = st.Value
		session, err := authService.GetSession(r.Context(), st.Value)
		if err != nil {
			return rc
		}
		rc.Session = session
		return rc
	}

	mux := http.NewServeMux()

	// File server for static files
	fileServer := http.FileServer(http.Dir("./ui/static/"))
	mux.Handle("/static/", http.StripPrefix("/static", fileServer))

	mux.HandleFunc("/account/api", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		name := r.URL.Query().Get("action")
		if name == "" {
			name = r.FormValue("action")
		}
		action, ok := actions[name]
		if !ok {
			http.Error(w, "Unknown action", http.StatusNotFound)
			return
		}
		rc := requestContext(r)
		// Only the account deletion route gets the elevated handle.
		if name == "deleteAccount" {
			rc.Admin = admin
		}
		handlers.WriteOutcome(w, r, action(r.Context(), rc, r))
	})

	journalPage := func(w http.ResponseWriter, r *http.Request) {
		rc := requestContext(r)
		handlers.WriteOutcome(w, r, handlers.JournalPage(r.Context(), rc, r.URL.Path))
	}
	mux.HandleFunc("/journal", journalPage)
	mux.HandleFunc("/account/create_profile", journalPage)

	mux.HandleFunc("/auth/forgot_password", func(w http.ResponseWriter, r *http.Request) {
		handlers.ForgotPassword(w, r, authService)
	})
	mux.HandleFunc("/auth/recover", func(w http.ResponseWriter, r *http.Request) {
		handlers.Recover(w, r, authService)
	})

	// Start the server
	fmt.Println("Starting server on :8080")
	log.Fatal(http.ListenAndServe(":8080", mux))
}
