package usecase

import (
	"context"
	"errors"
	"time"

	"jobdesk-backend/internal/domain"
	"jobdesk-backend/pkg/apperror"
)

type jobUsecase struct {
	jobRepo     domain.JobRepository
	profileRepo domain.ProfileRepository
}

func NewJobUsecase(jobRepo domain.JobRepository, profileRepo domain.ProfileRepository) domain.JobUsecase {
	return &jobUsecase{jobRepo: jobRepo, profileRepo: profileRepo}
}

// CreateJob validates, resolves the employer from the caller, then hands
// the atomic job+skills insert to the repository. Skill IDs keep their
// request order and are not de-duplicated.
func (u *jobUsecase) CreateJob(ctx context.Context, userID string, job *domain.Job, skillIDs []int64) ([]domain.Skill, error) {
	var fields []string
	if job.Title == "" {
		fields = append(fields, "Title is required")
	}
	if job.SalaryMin > job.SalaryMax {
		fields = append(fields, "Maximum salary must not be less than Minimum salary")
	}
	for _, id := range skillIDs {
		if id <= 0 {
			fields = append(fields, "Skills must be valid catalog IDs")
			break
		}
	}
	if len(fields) > 0 {
		return nil, apperror.Validation(fields)
	}

	employer, err := u.profileRepo.GetEmployerByUserID(ctx, userID)
	if err != nil {
		return nil, employerProfileOr(err)
	}
	job.EmployerID = employer.ID

	if job.Status == "" {
		job.Status = domain.JobStatusOpen
	}
	now := time.Now()
	job.CreatedAt = now
	job.UpdatedAt = now

	return u.jobRepo.CreateWithSkills(ctx, job, skillIDs)
}

func (u *jobUsecase) GetJobDetails(ctx context.Context, id int64) (*domain.JobWithEmployer, []domain.Skill, error) {
	job, err := u.jobRepo.GetByIDWithEmployer(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil, apperror.NotFound("Job not found")
		}
		return nil, nil, err
	}

	skills, err := u.jobRepo.GetSkills(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return job, skills, nil
}

func (u *jobUsecase) ListOpenJobs(ctx context.Context, page, pageSize int) ([]domain.JobWithEmployer, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	offset := (page - 1) * pageSize

	return u.jobRepo.FetchOpen(ctx, pageSize, offset)
}

func (u *jobUsecase) ListJobsByEmployer(ctx context.Context, userID string, page, pageSize int) ([]domain.Job, int64, error) {
	employer, err := u.profileRepo.GetEmployerByUserID(ctx, userID)
	if err != nil {
		return nil, 0, employerProfileOr(err)
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	offset := (page - 1) * pageSize

	return u.jobRepo.FetchByEmployerID(ctx, employer.ID, pageSize, offset)
}

func (u *jobUsecase) UpdateJob(ctx context.Context, userID string, job *domain.Job) error {
	employer, err := u.profileRepo.GetEmployerByUserID(ctx, userID)
	if err != nil {
		return employerProfileOr(err)
	}

	var fields []string
	if job.Title == "" {
		fields = append(fields, "Title is required")
	}
	if job.SalaryMin > job.SalaryMax {
		fields = append(fields, "Maximum salary must not be less than Minimum salary")
	}
	if len(fields) > 0 {
		return apperror.Validation(fields)
	}

	if job.Status == "" {
		job.Status = domain.JobStatusOpen
	}
	job.UpdatedAt = time.Now()

	if err := u.jobRepo.Update(ctx, job, employer.ID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Job not found")
		}
		return err
	}
	return nil
}

func (u *jobUsecase) DeleteJob(ctx context.Context, userID string, id int64) error {
	employer, err := u.profileRepo.GetEmployerByUserID(ctx, userID)
	if err != nil {
		return employerProfileOr(err)
	}

	if err := u.jobRepo.DeleteCascade(ctx, id, employer.ID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Job not found")
		}
		return err
	}
	return nil
}

// employerProfileOr maps a missing employer profile to NotFound; any other
// repository failure propagates so it surfaces as a 500, not a phantom 404.
func employerProfileOr(err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return apperror.NotFound("Employer profile not found")
	}
	return err
}
