package usecase

import (
	"context"
	"errors"
	"time"

	"jobdesk-backend/internal/domain"
	"jobdesk-backend/pkg/apperror"
)

type portfolioUsecase struct {
	repo domain.PortfolioRepository
}

func NewPortfolioUsecase(repo domain.PortfolioRepository) domain.PortfolioUsecase {
	return &portfolioUsecase{repo: repo}
}

func (u *portfolioUsecase) CreateProject(ctx context.Context, userID string, p *domain.Project) error {
	if p.Title == "" {
		return apperror.Validation([]string{"Title is required"})
	}
	p.UserID = userID
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now
	return u.repo.CreateProject(ctx, p)
}

func (u *portfolioUsecase) ListProjects(ctx context.Context, userID string) ([]domain.Project, error) {
	return u.repo.FetchProjects(ctx, userID)
}

func (u *portfolioUsecase) UpdateProject(ctx context.Context, userID string, p *domain.Project) error {
	if p.Title == "" {
		return apperror.Validation([]string{"Title is required"})
	}
	p.UserID = userID
	p.UpdatedAt = time.Now()
	return notFoundOr(u.repo.UpdateProject(ctx, p), "Project not found")
}

func (u *portfolioUsecase) DeleteProject(ctx context.Context, userID string, id int64) error {
	return notFoundOr(u.repo.DeleteProject(ctx, userID, id), "Project not found")
}

func (u *portfolioUsecase) CreateExperience(ctx context.Context, userID string, e *domain.Experience) error {
	var fields []string
	if e.CompanyName == "" {
		fields = append(fields, "Company name is required")
	}
	if e.JobTitle == "" {
		fields = append(fields, "Job title is required")
	}
	if e.StartDate.IsZero() {
		fields = append(fields, "Start date is required")
	}
	if e.EndDate != nil && e.EndDate.Before(e.StartDate) {
		fields = append(fields, "End date must not be before Start date")
	}
	if len(fields) > 0 {
		return apperror.Validation(fields)
	}

	e.UserID = userID
	now := time.Now()
	e.CreatedAt = now
	e.UpdatedAt = now
	return u.repo.CreateExperience(ctx, e)
}

func (u *portfolioUsecase) ListExperiences(ctx context.Context, userID string) ([]domain.Experience, error) {
	return u.repo.FetchExperiences(ctx, userID)
}

func (u *portfolioUsecase) UpdateExperience(ctx context.Context, userID string, e *domain.Experience) error {
	if e.CompanyName == "" || e.JobTitle == "" {
		return apperror.Validation([]string{"Company name and Job title are required"})
	}
	e.UserID = userID
	e.UpdatedAt = time.Now()
	return notFoundOr(u.repo.UpdateExperience(ctx, e), "Experience not found")
}

func (u *portfolioUsecase) DeleteExperience(ctx context.Context, userID string, id int64) error {
	return notFoundOr(u.repo.DeleteExperience(ctx, userID, id), "Experience not found")
}

func (u *portfolioUsecase) CreateEducation(ctx context.Context, userID string, e *domain.Education) error {
	var fields []string
	if e.Institution == "" {
		fields = append(fields, "Institution is required")
	}
	if e.Degree == "" {
		fields = append(fields, "Degree is required")
	}
	if e.StartYear <= 0 {
		fields = append(fields, "Start year is required")
	}
	if e.EndYear != nil && *e.EndYear < e.StartYear {
		fields = append(fields, "End year must not be before Start year")
	}
	if len(fields) > 0 {
		return apperror.Validation(fields)
	}

	e.UserID = userID
	now := time.Now()
	e.CreatedAt = now
	e.UpdatedAt = now
	return u.repo.CreateEducation(ctx, e)
}

func (u *portfolioUsecase) ListEducations(ctx context.Context, userID string) ([]domain.Education, error) {
	return u.repo.FetchEducations(ctx, userID)
}

func (u *portfolioUsecase) UpdateEducation(ctx context.Context, userID string, e *domain.Education) error {
	if e.Institution == "" || e.Degree == "" {
		return apperror.Validation([]string{"Institution and Degree are required"})
	}
	e.UserID = userID
	e.UpdatedAt = time.Now()
	return notFoundOr(u.repo.UpdateEducation(ctx, e), "Education not found")
}

func (u *portfolioUsecase) DeleteEducation(ctx context.Context, userID string, id int64) error {
	return notFoundOr(u.repo.DeleteEducation(ctx, userID, id), "Education not found")
}

func notFoundOr(err error, message string) error {
	if errors.Is(err, domain.ErrNotFound) {
		return apperror.NotFound(message)
	}
	return err
}
