package store

import (
	"context"
	"errors"
	"log"
	"time"

	"daybook/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Profiles struct {
	db *pgxpool.Pool
}

func NewProfiles(db *pgxpool.Pool) *Profiles {
	return &Profiles{db: db}
}

// Get fetches the single profile row for the identity. A user who has not
// created a profile yet gets nil, nil; the page gate handles that.
func (p *Profiles) Get(ctx context.Context, id string) (*models.Profile, error) {
	qctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	stmt := `SELECT id, COALESCE(full_name, ''), COALESCE(company_name, ''), COALESCE(website, ''),
		COALESCE(avatar_url, ''), COALESCE(updated_at, to_timestamp(0))
		FROM profiles WHERE id = $1;`

	var profile models.Profile
	row := p.db.QueryRow(qctx, stmt, id)
	err := row.Scan(&profile.ID, &profile.FullName, &profile.CompanyName, &profile.Website,
		&profile.AvatarURL, &profile.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		log.Println("error fetching profile: ", err)
		return nil, err
	}
	return &profile, nil
}

// Upsert writes the profile row keyed by identity id, creating it on first
// update, and stamps updated_at.
func (p *Profiles) Upsert(ctx context.Context, profile *models.Profile) error {
	qctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	stmt := `INSERT INTO profiles (id, full_name, company_name, website, updated_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (id) DO UPDATE SET
			full_name = EXCLUDED.full_name,
			company_name = EXCLUDED.company_name,
			website = EXCLUDED.website,
			updated_at = NOW();`

	_, err := p.db.Exec(qctx, stmt, profile.ID, profile.FullName, profile.CompanyName, profile.Website)
	if err != nil {
		log.Println("error upserting profile: ", err)
		return err
	}
	return nil
}
