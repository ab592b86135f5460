package usecase

import (
	"context"
	"errors"
	"time"

	"jobdesk-backend/internal/domain"
	"jobdesk-backend/pkg/apperror"
)

type cvUsecase struct {
	cvRepo domain.CVRepository
}

func NewCVUsecase(cvRepo domain.CVRepository) domain.CVUsecase {
	return &cvUsecase{cvRepo: cvRepo}
}

// CreateCV validates before any transaction opens; the repository decides
// the primary flag (first CV for the owner becomes primary).
func (u *cvUsecase) CreateCV(ctx context.Context, userID string, cv *domain.CV) error {
	var fields []string
	if cv.Name == "" {
		fields = append(fields, "Name is required")
	}
	if cv.FileURL == "" {
		fields = append(fields, "File URL is required")
	}
	if len(fields) > 0 {
		return apperror.Validation(fields)
	}

	cv.UserID = userID
	now := time.Now()
	cv.CreatedAt = now
	cv.UpdatedAt = now

	return u.cvRepo.Create(ctx, cv)
}

func (u *cvUsecase) ListCVs(ctx context.Context, userID string) ([]domain.CV, error) {
	return u.cvRepo.FetchByOwner(ctx, userID)
}

func (u *cvUsecase) GetCV(ctx context.Context, userID string, id int64) (*domain.CV, error) {
	cv, err := u.cvRepo.GetByID(ctx, id, userID)
	if err != nil {
		return nil, cvNotFoundOr(err)
	}
	return cv, nil
}

func (u *cvUsecase) UpdateCV(ctx context.Context, userID string, cv *domain.CV) error {
	var fields []string
	if cv.Name == "" {
		fields = append(fields, "Name is required")
	}
	if cv.FileURL == "" {
		fields = append(fields, "File URL is required")
	}
	if len(fields) > 0 {
		return apperror.Validation(fields)
	}

	cv.UserID = userID
	cv.UpdatedAt = time.Now()

	if err := u.cvRepo.Update(ctx, cv); err != nil {
		return cvNotFoundOr(err)
	}
	return nil
}

func (u *cvUsecase) SetPrimaryCV(ctx context.Context, userID string, id int64) error {
	if err := u.cvRepo.SetPrimary(ctx, userID, id); err != nil {
		return cvNotFoundOr(err)
	}
	return nil
}

func (u *cvUsecase) DeleteCV(ctx context.Context, userID string, id int64) error {
	if err := u.cvRepo.DeleteWithReelection(ctx, userID, id); err != nil {
		return cvNotFoundOr(err)
	}
	return nil
}

// cvNotFoundOr maps the repository's not-found to the API taxonomy. A CV
// owned by someone else reports the same NotFound as a missing one, so
// callers cannot probe other owners' collections.
func cvNotFoundOr(err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return apperror.NotFound("CV not found")
	}
	return err
}
