package models

import (
	"time"

	"github.com/google/uuid"
)

type Profile struct {
	ID          uuid.UUID `db:"id"`
	FullName    string    `db:"full_name"`
	CompanyName string    `db:"company_name"`
	Website     string    `db:"website"`
	AvatarURL   string    `db:"avatar_url"`
	UpdatedAt   time.Time `db:"updated_at"`
}

// Complete reports whether the profile has everything we ask for before
// letting the user into the journal: full name, company name and website.
func (p *Profile) Complete() bool {
	if p == nil {
		return false
	}
	if p.FullName == "" {
		return false
	}
	if p.CompanyName == "" {
		return false
	}
	if p.Website == "" {
		return false
	}
	return true
}
