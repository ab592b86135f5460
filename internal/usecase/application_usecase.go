package usecase

import (
	"context"
	"errors"
	"time"

	"jobdesk-backend/internal/domain"
	"jobdesk-backend/pkg/apperror"
)

type applicationUsecase struct {
	appRepo     domain.ApplicationRepository
	jobRepo     domain.JobRepository
	profileRepo domain.ProfileRepository
}

func NewApplicationUsecase(appRepo domain.ApplicationRepository, jobRepo domain.JobRepository, profileRepo domain.ProfileRepository) domain.ApplicationUsecase {
	return &applicationUsecase{appRepo: appRepo, jobRepo: jobRepo, profileRepo: profileRepo}
}

// Apply submits an application with one of the seeker's CVs. The CV
// ownership check runs inside the repository transaction; the job must
// still be open at submission time.
func (u *applicationUsecase) Apply(ctx context.Context, userID string, app *domain.Application) error {
	if app.CVID <= 0 {
		return apperror.Validation([]string{"CV is required"})
	}

	job, err := u.jobRepo.GetByID(ctx, app.JobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Job not found")
		}
		return err
	}
	if job.Status != domain.JobStatusOpen {
		return apperror.NotFound("Job not found")
	}

	app.SeekerUserID = userID
	app.Status = domain.ApplicationStatusApplied
	now := time.Now()
	app.CreatedAt = now
	app.UpdatedAt = now

	if err := u.appRepo.Create(ctx, app); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("CV not found")
		}
		return err
	}
	return nil
}

// ListApplicants shows a job's applications to its owning employer only.
func (u *applicationUsecase) ListApplicants(ctx context.Context, userID string, jobID int64) ([]domain.Application, error) {
	employer, err := u.profileRepo.GetEmployerByUserID(ctx, userID)
	if err != nil {
		return nil, employerProfileOr(err)
	}

	job, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, err
	}
	if job.EmployerID != employer.ID {
		// Same status as a missing job so foreign listings stay invisible.
		return nil, apperror.NotFound("Job not found")
	}

	return u.appRepo.FetchByJobID(ctx, jobID)
}

func (u *applicationUsecase) ListOwnApplications(ctx context.Context, userID string) ([]domain.Application, error) {
	return u.appRepo.FetchBySeeker(ctx, userID)
}
