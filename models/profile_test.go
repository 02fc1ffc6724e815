package models_test

import (
	"testing"

	"daybook/models"
)

func TestProfileComplete(t *testing.T) {
	tests := []struct {
		name    string
		profile *models.Profile
		want    bool
	}{
		{
			name:    "Nil profile is incomplete",
			profile: nil,
			want:    false,
		},
		{
			name:    "Empty profile is incomplete",
			profile: &models.Profile{},
			want:    false,
		},
		{
			name:    "Missing website is incomplete",
			profile: &models.Profile{FullName: "Ada Lovelace", CompanyName: "Acme"},
			want:    false,
		},
		{
			name:    "Missing company name is incomplete",
			profile: &models.Profile{FullName: "Ada Lovelace", Website: "https://acme.test"},
			want:    false,
		},
		{
			name:    "Missing full name is incomplete",
			profile: &models.Profile{CompanyName: "Acme", Website: "https://acme.test"},
			want:    false,
		},
		{
			name: "All three fields present is complete",
			profile: &models.Profile{
				FullName:    "Ada Lovelace",
				CompanyName: "Acme",
				Website:     "https://acme.test",
			},
			want: true,
		},
		{
			name: "Avatar is not part of completeness",
			profile: &models.Profile{
				FullName:    "Ada Lovelace",
				CompanyName: "Acme",
				Website:     "https://acme.test",
				AvatarURL:   "",
			},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.profile.Complete(); got != tt.want {
				t.Errorf("Complete() = %v, want %v", got, tt.want)
			}
		})
	}
}
