package postgres

import (
	"context"
	"errors"

	"jobdesk-backend/internal/domain"
	"jobdesk-backend/pkg/apperror"
	"jobdesk-backend/pkg/database"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type applicationRepo struct {
	db *pgxpool.Pool
}

func NewApplicationRepository(db *pgxpool.Pool) domain.ApplicationRepository {
	return &applicationRepo{db: db}
}

// Create verifies the CV belongs to the applicant inside the same
// transaction as the insert, so a concurrent CV delete cannot leave a
// dangling reference. A duplicate (job, seeker) pair is rejected by the
// storage-level unique constraint and surfaces as Conflict.
func (r *applicationRepo) Create(ctx context.Context, app *domain.Application) error {
	err := database.WithinTx(ctx, r.db, func(tx pgx.Tx) error {
		var cvID int64
		err := tx.QueryRow(ctx,
			`SELECT id FROM cvs WHERE id = $1 AND user_id = $2`, app.CVID, app.SeekerUserID,
		).Scan(&cvID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domain.ErrNotFound
			}
			return err
		}

		return tx.QueryRow(ctx, `
			INSERT INTO applications (job_id, seeker_user_id, cv_id, cover_letter, status, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id
		`, app.JobID, app.SeekerUserID, app.CVID, app.CoverLetter, app.Status,
			app.CreatedAt, app.UpdatedAt,
		).Scan(&app.ID)
	})

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperror.Conflict("You have already applied to this job")
		}
		return err
	}
	return nil
}

// FetchByJobID lists a job's applications with candidate projections.
func (r *applicationRepo) FetchByJobID(ctx context.Context, jobID int64) ([]domain.Application, error) {
	query := `
		SELECT
			a.id, a.job_id, a.seeker_user_id, a.cv_id, a.cover_letter, a.status,
			a.created_at, a.updated_at,
			sp.full_name AS candidate_name,
			c.file_url AS cv_file_url
		FROM applications a
		LEFT JOIN seeker_profiles sp ON a.seeker_user_id = sp.user_id
		LEFT JOIN cvs c ON a.cv_id = c.id
		WHERE a.job_id = $1
		ORDER BY a.created_at DESC`

	rows, err := r.db.Query(ctx, query, jobID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var applications []domain.Application
	for rows.Next() {
		var app domain.Application
		if err := rows.Scan(
			&app.ID, &app.JobID, &app.SeekerUserID, &app.CVID, &app.CoverLetter, &app.Status,
			&app.CreatedAt, &app.UpdatedAt,
			&app.CandidateName, &app.CVFileURL,
		); err != nil {
			return nil, err
		}
		applications = append(applications, app)
	}
	return applications, rows.Err()
}

// FetchBySeeker lists the seeker's own applications with job titles.
func (r *applicationRepo) FetchBySeeker(ctx context.Context, userID string) ([]domain.Application, error) {
	query := `
		SELECT
			a.id, a.job_id, a.seeker_user_id, a.cv_id, a.cover_letter, a.status,
			a.created_at, a.updated_at,
			j.title AS job_title
		FROM applications a
		LEFT JOIN jobs j ON a.job_id = j.id
		WHERE a.seeker_user_id = $1
		ORDER BY a.created_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var applications []domain.Application
	for rows.Next() {
		var app domain.Application
		if err := rows.Scan(
			&app.ID, &app.JobID, &app.SeekerUserID, &app.CVID, &app.CoverLetter, &app.Status,
			&app.CreatedAt, &app.UpdatedAt,
			&app.JobTitle,
		); err != nil {
			return nil, err
		}
		applications = append(applications, app)
	}
	return applications, rows.Err()
}
