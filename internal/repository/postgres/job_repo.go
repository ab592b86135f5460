package postgres

import (
	"context"
	"errors"

	"jobdesk-backend/internal/domain"
	"jobdesk-backend/pkg/database"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type jobRepo struct {
	db *pgxpool.Pool
}

func NewJobRepository(db *pgxpool.Pool) domain.JobRepository {
	return &jobRepo{db: db}
}

// CreateWithSkills inserts the job and one link row per skill ID inside a
// single transaction, preserving request order and inserting duplicates as
// given. A bad skill ID fails its insert and rolls back the job row too.
// The resolved names are read back for the response.
func (r *jobRepo) CreateWithSkills(ctx context.Context, job *domain.Job, skillIDs []int64) ([]domain.Skill, error) {
	var resolved []domain.Skill

	err := database.WithinTx(ctx, r.db, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
			INSERT INTO jobs (employer_id, title, description, salary_min, salary_max, location, employment_type, status, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			RETURNING id
		`, job.EmployerID, job.Title, job.Description, job.SalaryMin, job.SalaryMax,
			job.Location, job.EmploymentType, job.Status, job.CreatedAt, job.UpdatedAt,
		).Scan(&job.ID)
		if err != nil {
			return err
		}

		for _, skillID := range skillIDs {
			if _, err := tx.Exec(ctx,
				`INSERT INTO job_skills (job_id, skill_id) VALUES ($1, $2)`, job.ID, skillID,
			); err != nil {
				return err
			}
		}

		rows, err := tx.Query(ctx, `
			SELECT s.id, s.name FROM job_skills js
			JOIN skills s ON js.skill_id = s.id
			WHERE js.job_id = $1
			ORDER BY js.id
		`, job.ID)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var s domain.Skill
			if err := rows.Scan(&s.ID, &s.Name); err != nil {
				return err
			}
			resolved = append(resolved, s)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return resolved, nil
}

func (r *jobRepo) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	query := `SELECT id, employer_id, title, description, salary_min, salary_max, location, employment_type, status, created_at, updated_at
	          FROM jobs WHERE id = $1`

	var job domain.Job
	err := r.db.QueryRow(ctx, query, id).Scan(
		&job.ID, &job.EmployerID, &job.Title, &job.Description, &job.SalaryMin, &job.SalaryMax,
		&job.Location, &job.EmploymentType, &job.Status, &job.CreatedAt, &job.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &job, nil
}

// GetByIDWithEmployer retrieves a job with its employer card.
func (r *jobRepo) GetByIDWithEmployer(ctx context.Context, id int64) (*domain.JobWithEmployer, error) {
	query := `
		SELECT
			j.id, j.employer_id, j.title, j.description, j.salary_min, j.salary_max,
			j.location, j.employment_type, j.status, j.created_at, j.updated_at,
			COALESCE(ep.company_name, 'Unknown Company') AS company_name,
			ep.logo_url, ep.website, ep.industry
		FROM jobs j
		LEFT JOIN employer_profiles ep ON j.employer_id = ep.id
		WHERE j.id = $1`

	var job domain.JobWithEmployer
	err := r.db.QueryRow(ctx, query, id).Scan(
		&job.ID, &job.EmployerID, &job.Title, &job.Description, &job.SalaryMin, &job.SalaryMax,
		&job.Location, &job.EmploymentType, &job.Status, &job.CreatedAt, &job.UpdatedAt,
		&job.CompanyName, &job.CompanyLogoURL, &job.CompanyWebsite, &job.Industry,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *jobRepo) GetSkills(ctx context.Context, jobID int64) ([]domain.Skill, error) {
	rows, err := r.db.Query(ctx, `
		SELECT s.id, s.name FROM job_skills js
		JOIN skills s ON js.skill_id = s.id
		WHERE js.job_id = $1
		ORDER BY js.id
	`, jobID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var skills []domain.Skill
	for rows.Next() {
		var s domain.Skill
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, err
		}
		skills = append(skills, s)
	}
	return skills, rows.Err()
}

// FetchOpen retrieves open jobs with employer data for public listings.
// The status filter is hardcoded server-side.
func (r *jobRepo) FetchOpen(ctx context.Context, limit, offset int) ([]domain.JobWithEmployer, int64, error) {
	query := `
		SELECT
			j.id, j.employer_id, j.title, j.description, j.salary_min, j.salary_max,
			j.location, j.employment_type, j.status, j.created_at, j.updated_at,
			COALESCE(ep.company_name, 'Unknown Company') AS company_name,
			ep.logo_url, ep.website, ep.industry
		FROM jobs j
		LEFT JOIN employer_profiles ep ON j.employer_id = ep.id
		WHERE j.status = 'open'
		ORDER BY j.created_at DESC
		LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var jobs []domain.JobWithEmployer
	for rows.Next() {
		var job domain.JobWithEmployer
		if err := rows.Scan(
			&job.ID, &job.EmployerID, &job.Title, &job.Description, &job.SalaryMin, &job.SalaryMax,
			&job.Location, &job.EmploymentType, &job.Status, &job.CreatedAt, &job.UpdatedAt,
			&job.CompanyName, &job.CompanyLogoURL, &job.CompanyWebsite, &job.Industry,
		); err != nil {
			return nil, 0, err
		}
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM jobs WHERE status = 'open'`).Scan(&total); err != nil {
		return nil, 0, err
	}
	return jobs, total, nil
}

// FetchByEmployerID retrieves jobs belonging to one employer.
func (r *jobRepo) FetchByEmployerID(ctx context.Context, employerID int64, limit, offset int) ([]domain.Job, int64, error) {
	query := `SELECT id, employer_id, title, description, salary_min, salary_max, location, employment_type, status, created_at, updated_at
	          FROM jobs WHERE employer_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, query, employerID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var jobs []domain.Job
	for rows.Next() {
		var job domain.Job
		if err := rows.Scan(
			&job.ID, &job.EmployerID, &job.Title, &job.Description, &job.SalaryMin, &job.SalaryMax,
			&job.Location, &job.EmploymentType, &job.Status, &job.CreatedAt, &job.UpdatedAt,
		); err != nil {
			return nil, 0, err
		}
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM jobs WHERE employer_id = $1`, employerID).Scan(&total); err != nil {
		return nil, 0, err
	}
	return jobs, total, nil
}

func (r *jobRepo) Update(ctx context.Context, job *domain.Job, employerID int64) error {
	query := `UPDATE jobs SET
		title = $3,
		description = $4,
		salary_min = $5,
		salary_max = $6,
		location = $7,
		employment_type = $8,
		status = $9,
		updated_at = $10
	WHERE id = $1 AND employer_id = $2`

	result, err := r.db.Exec(ctx, query,
		job.ID, employerID, job.Title, job.Description, job.SalaryMin, job.SalaryMax,
		job.Location, job.EmploymentType, job.Status, job.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteCascade removes the job's dependents before the job itself, in
// foreign-key order, all inside one transaction. Absent or foreign jobs
// report ErrNotFound without deleting anything.
func (r *jobRepo) DeleteCascade(ctx context.Context, id int64, employerID int64) error {
	return database.WithinTx(ctx, r.db, func(tx pgx.Tx) error {
		var owned int64
		err := tx.QueryRow(ctx,
			`SELECT id FROM jobs WHERE id = $1 AND employer_id = $2`, id, employerID,
		).Scan(&owned)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domain.ErrNotFound
			}
			return err
		}

		if _, err := tx.Exec(ctx, `DELETE FROM applications WHERE job_id = $1`, id); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, `DELETE FROM job_skills WHERE job_id = $1`, id); err != nil {
			return err
		}
		_, err = tx.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
		return err
	})
}
