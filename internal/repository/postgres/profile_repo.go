package postgres

import (
	"context"
	"errors"

	"jobdesk-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type profileRepo struct {
	db *pgxpool.Pool
}

func NewProfileRepository(db *pgxpool.Pool) domain.ProfileRepository {
	return &profileRepo{db: db}
}

func (r *profileRepo) GetSeekerByUserID(ctx context.Context, userID string) (*domain.SeekerProfile, error) {
	query := `
		SELECT id, user_id, full_name,
			COALESCE(headline, ''), COALESCE(bio, ''), COALESCE(phone, ''), COALESCE(location, ''),
			avatar_url, languages, created_at, updated_at
		FROM seeker_profiles WHERE user_id = $1`

	var p domain.SeekerProfile
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&p.ID, &p.UserID, &p.FullName,
		&p.Headline, &p.Bio, &p.Phone, &p.Location,
		&p.AvatarURL, pq.Array(&p.Languages), &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *profileRepo) UpdateSeeker(ctx context.Context, profile *domain.SeekerProfile) error {
	query := `UPDATE seeker_profiles SET
		full_name = $2,
		headline = $3,
		bio = $4,
		phone = $5,
		location = $6,
		avatar_url = $7,
		languages = $8,
		updated_at = $9
	WHERE user_id = $1`

	result, err := r.db.Exec(ctx, query,
		profile.UserID, profile.FullName, profile.Headline, profile.Bio,
		profile.Phone, profile.Location, profile.AvatarURL,
		pq.Array(profile.Languages), profile.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *profileRepo) GetEmployerByUserID(ctx context.Context, userID string) (*domain.EmployerProfile, error) {
	query := `
		SELECT id, user_id, company_name, website, industry, COALESCE(about, ''), logo_url, created_at, updated_at
		FROM employer_profiles WHERE user_id = $1`

	var p domain.EmployerProfile
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&p.ID, &p.UserID, &p.CompanyName, &p.Website, &p.Industry, &p.About, &p.LogoURL,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *profileRepo) GetEmployerByID(ctx context.Context, id int64) (*domain.EmployerProfile, error) {
	query := `
		SELECT id, user_id, company_name, website, industry, COALESCE(about, ''), logo_url, created_at, updated_at
		FROM employer_profiles WHERE id = $1`

	var p domain.EmployerProfile
	err := r.db.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.UserID, &p.CompanyName, &p.Website, &p.Industry, &p.About, &p.LogoURL,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *profileRepo) UpdateEmployer(ctx context.Context, profile *domain.EmployerProfile) error {
	query := `UPDATE employer_profiles SET
		company_name = $2,
		website = $3,
		industry = $4,
		about = $5,
		logo_url = $6,
		updated_at = $7
	WHERE user_id = $1`

	result, err := r.db.Exec(ctx, query,
		profile.UserID, profile.CompanyName, profile.Website, profile.Industry,
		profile.About, profile.LogoURL, profile.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
