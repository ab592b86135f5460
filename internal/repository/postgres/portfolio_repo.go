package postgres

import (
	"context"
	"encoding/json"

	"jobdesk-backend/internal/domain"
	"jobdesk-backend/pkg/shape"

	"github.com/jackc/pgx/v5/pgxpool"
)

type portfolioRepo struct {
	db *pgxpool.Pool
}

func NewPortfolioRepository(db *pgxpool.Pool) domain.PortfolioRepository {
	return &portfolioRepo{db: db}
}

// ============================================================================
// Projects
// ============================================================================

func (r *portfolioRepo) CreateProject(ctx context.Context, p *domain.Project) error {
	links, err := json.Marshal(p.Links)
	if err != nil {
		return err
	}
	return r.db.QueryRow(ctx, `
		INSERT INTO projects (user_id, title, description, links, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`, p.UserID, p.Title, p.Description, links, p.CreatedAt, p.UpdatedAt).Scan(&p.ID)
}

func (r *portfolioRepo) FetchProjects(ctx context.Context, userID string) ([]domain.Project, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, title, description, links, created_at, updated_at
		FROM projects WHERE user_id = $1 ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []domain.Project
	for rows.Next() {
		var p domain.Project
		var rawLinks interface{}
		if err := rows.Scan(&p.ID, &p.UserID, &p.Title, &p.Description, &rawLinks, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		if err := shape.ParseIfEncoded(rawLinks, &p.Links); err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

func (r *portfolioRepo) UpdateProject(ctx context.Context, p *domain.Project) error {
	links, err := json.Marshal(p.Links)
	if err != nil {
		return err
	}
	result, err := r.db.Exec(ctx, `
		UPDATE projects SET title = $3, description = $4, links = $5, updated_at = $6
		WHERE id = $1 AND user_id = $2
	`, p.ID, p.UserID, p.Title, p.Description, links, p.UpdatedAt)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *portfolioRepo) DeleteProject(ctx context.Context, userID string, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM projects WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ============================================================================
// Experiences
// ============================================================================

func (r *portfolioRepo) CreateExperience(ctx context.Context, e *domain.Experience) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO experiences (user_id, company_name, job_title, start_date, end_date, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`, e.UserID, e.CompanyName, e.JobTitle, e.StartDate, e.EndDate, e.Description, e.CreatedAt, e.UpdatedAt).Scan(&e.ID)
}

func (r *portfolioRepo) FetchExperiences(ctx context.Context, userID string) ([]domain.Experience, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, company_name, job_title, start_date, end_date, COALESCE(description, ''), created_at, updated_at
		FROM experiences WHERE user_id = $1 ORDER BY start_date DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var experiences []domain.Experience
	for rows.Next() {
		var e domain.Experience
		if err := rows.Scan(&e.ID, &e.UserID, &e.CompanyName, &e.JobTitle, &e.StartDate, &e.EndDate, &e.Description, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, err
		}
		experiences = append(experiences, e)
	}
	return experiences, rows.Err()
}

func (r *portfolioRepo) UpdateExperience(ctx context.Context, e *domain.Experience) error {
	result, err := r.db.Exec(ctx, `
		UPDATE experiences SET company_name = $3, job_title = $4, start_date = $5, end_date = $6, description = $7, updated_at = $8
		WHERE id = $1 AND user_id = $2
	`, e.ID, e.UserID, e.CompanyName, e.JobTitle, e.StartDate, e.EndDate, e.Description, e.UpdatedAt)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *portfolioRepo) DeleteExperience(ctx context.Context, userID string, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM experiences WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ============================================================================
// Educations
// ============================================================================

func (r *portfolioRepo) CreateEducation(ctx context.Context, e *domain.Education) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO educations (user_id, institution, degree, field, start_year, end_year, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`, e.UserID, e.Institution, e.Degree, e.Field, e.StartYear, e.EndYear, e.CreatedAt, e.UpdatedAt).Scan(&e.ID)
}

func (r *portfolioRepo) FetchEducations(ctx context.Context, userID string) ([]domain.Education, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, institution, degree, COALESCE(field, ''), start_year, end_year, created_at, updated_at
		FROM educations WHERE user_id = $1 ORDER BY start_year DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var educations []domain.Education
	for rows.Next() {
		var e domain.Education
		if err := rows.Scan(&e.ID, &e.UserID, &e.Institution, &e.Degree, &e.Field, &e.StartYear, &e.EndYear, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, err
		}
		educations = append(educations, e)
	}
	return educations, rows.Err()
}

func (r *portfolioRepo) UpdateEducation(ctx context.Context, e *domain.Education) error {
	result, err := r.db.Exec(ctx, `
		UPDATE educations SET institution = $3, degree = $4, field = $5, start_year = $6, end_year = $7, updated_at = $8
		WHERE id = $1 AND user_id = $2
	`, e.ID, e.UserID, e.Institution, e.Degree, e.Field, e.StartYear, e.EndYear, e.UpdatedAt)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *portfolioRepo) DeleteEducation(ctx context.Context, userID string, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM educations WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
