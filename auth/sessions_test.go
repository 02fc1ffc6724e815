package auth

import (
	"testing"

	"daybook/models"
)

func TestAMRRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		amr  []models.AMREntry
	}{
		{
			name: "Empty list",
			amr:  nil,
		},
		{
			name: "Single recovery grant",
			amr:  []models.AMREntry{{Method: "recovery", Timestamp: 1717000000}},
		},
		{
			name: "Password then recovery",
			amr: []models.AMREntry{
				{Method: "password", Timestamp: 1716000000},
				{Method: "recovery", Timestamp: 1717000000},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := decodeAMR(encodeAMR(tt.amr))
			if len(got) != len(tt.amr) {
				t.Fatalf("decoded %d entries, want %d", len(got), len(tt.amr))
			}
			for i := range got {
				if got[i] != tt.amr[i] {
					t.Errorf("entry %d = %+v, want %+v", i, got[i], tt.amr[i])
				}
			}
		})
	}
}

func TestDecodeAMRGarbage(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "Empty string", raw: ""},
		{name: "Not JSON", raw: "recovery"},
		{name: "Wrong shape", raw: `{"method":"recovery"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := decodeAMR(tt.raw); got != nil {
				t.Errorf("decodeAMR(%q) = %v, want nil", tt.raw, got)
			}
		})
	}
}

func TestGenerateToken(t *testing.T) {
	a := GenerateToken(32)
	b := GenerateToken(32)

	if a == "" || b == "" {
		t.Fatal("empty token")
	}
	if a == b {
		t.Fatal("two tokens came out identical")
	}
}

func TestSessionExpired(t *testing.T) {
	tests := []struct {
		name      string
		expiresAt string
		want      bool
	}{
		{name: "Future expiry is live", expiresAt: "2100-01-01T00:00:00Z", want: false},
		{name: "Past expiry is dead", expiresAt: "2000-01-01T00:00:00Z", want: true},
		{name: "Unparsable stamp counts as expired", expiresAt: "whenever", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &models.Session{ExpiresAt: tt.expiresAt}
			if got := sessionExpired(s); got != tt.want {
				t.Errorf("sessionExpired() = %v, want %v", got, tt.want)
			}
		})
	}
}
