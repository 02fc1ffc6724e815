package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"daybook/handlers"
)

func TestWriteOutcome(t *testing.T) {
	tests := []struct {
		name       string
		outcome    handlers.Outcome
		wantStatus int
		wantBody   map[string]any
	}{
		{
			name:       "Success writes 200 with the payload",
			outcome:    handlers.Success(map[string]any{"email": "user@example.com"}),
			wantStatus: http.StatusOK,
			wantBody:   map[string]any{"email": "user@example.com"},
		},
		{
			name:       "Validation failure writes 400 with message and fields",
			outcome:    handlers.Fail("An email address is required", []string{"email"}, map[string]any{"email": ""}),
			wantStatus: http.StatusBadRequest,
			wantBody: map[string]any{
				"email":        "",
				"errorMessage": "An email address is required",
				"errorFields":  []any{"email"},
			},
		},
		{
			name:       "Validation failure without fields omits errorFields",
			outcome:    handlers.Fail("Not authenticated", nil, nil),
			wantStatus: http.StatusBadRequest,
			wantBody:   map[string]any{"errorMessage": "Not authenticated"},
		},
		{
			name:       "Server error writes 500",
			outcome:    handlers.ServerError("Unknown error. If this persists please contact us.", nil),
			wantStatus: http.StatusInternalServerError,
			wantBody:   map[string]any{"errorMessage": "Unknown error. If this persists please contact us."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodPost, "/account/api", nil)

			handlers.WriteOutcome(w, r, tt.outcome)

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			var body map[string]any
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("invalid JSON body: %v", err)
			}
			for k, want := range tt.wantBody {
				got := body[k]
				switch wantV := want.(type) {
				case []any:
					gotV, ok := got.([]any)
					if !ok || len(gotV) != len(wantV) {
						t.Errorf("body[%q] = %v, want %v", k, got, want)
						continue
					}
					for i := range wantV {
						if gotV[i] != wantV[i] {
							t.Errorf("body[%q][%d] = %v, want %v", k, i, gotV[i], wantV[i])
						}
					}
				default:
					if got != want {
						t.Errorf("body[%q] = %v, want %v", k, got, want)
					}
				}
			}
			if _, present := body["errorFields"]; present && tt.wantBody["errorFields"] == nil {
				t.Errorf("errorFields present, want omitted")
			}
		})
	}
}

func TestWriteOutcomeRedirect(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/account/api", nil)

	handlers.WriteOutcome(w, r, handlers.Redirect("/login"))

	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusSeeOther)
	}
	if loc := w.Header().Get("Location"); loc != "/login" {
		t.Errorf("Location = %q, want /login", loc)
	}
}
