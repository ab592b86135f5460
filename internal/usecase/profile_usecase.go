package usecase

import (
	"context"
	"errors"
	"time"

	"jobdesk-backend/internal/domain"
	"jobdesk-backend/pkg/apperror"
	"jobdesk-backend/pkg/shape"
)

type profileUsecase struct {
	profileRepo domain.ProfileRepository
}

func NewProfileUsecase(profileRepo domain.ProfileRepository) domain.ProfileUsecase {
	return &profileUsecase{profileRepo: profileRepo}
}

func (u *profileUsecase) GetSeekerProfile(ctx context.Context, userID string) (*domain.SeekerProfile, error) {
	if err := requireSelf(ctx, userID); err != nil {
		return nil, err
	}

	profile, err := u.profileRepo.GetSeekerByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Profile not found")
		}
		return nil, err
	}
	shapeSeeker(profile)
	return profile, nil
}

func (u *profileUsecase) UpdateSeekerProfile(ctx context.Context, profile *domain.SeekerProfile) (*domain.SeekerProfile, error) {
	// The owner always comes from the authenticated context, never the body.
	userID, ok := ctx.Value(domain.KeyUserID).(string)
	if !ok || userID == "" {
		return nil, apperror.Unauthorized("User not authenticated")
	}
	profile.UserID = userID

	if profile.FullName == "" {
		return nil, apperror.Validation([]string{"Full name is required"})
	}
	profile.UpdatedAt = time.Now()

	if err := u.profileRepo.UpdateSeeker(ctx, profile); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Profile not found")
		}
		return nil, err
	}

	updated, err := u.profileRepo.GetSeekerByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	shapeSeeker(updated)
	return updated, nil
}

func (u *profileUsecase) GetEmployerProfile(ctx context.Context, userID string) (*domain.EmployerProfile, error) {
	if err := requireSelf(ctx, userID); err != nil {
		return nil, err
	}

	profile, err := u.profileRepo.GetEmployerByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Profile not found")
		}
		return nil, err
	}
	shapeEmployer(profile)
	return profile, nil
}

// GetEmployerCard returns the public employer view shown on job listings.
func (u *profileUsecase) GetEmployerCard(ctx context.Context, id int64) (*domain.EmployerProfile, error) {
	profile, err := u.profileRepo.GetEmployerByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Employer not found")
		}
		return nil, err
	}
	shapeEmployer(profile)
	return profile, nil
}

func (u *profileUsecase) UpdateEmployerProfile(ctx context.Context, profile *domain.EmployerProfile) (*domain.EmployerProfile, error) {
	userID, ok := ctx.Value(domain.KeyUserID).(string)
	if !ok || userID == "" {
		return nil, apperror.Unauthorized("User not authenticated")
	}
	profile.UserID = userID

	if profile.CompanyName == "" {
		return nil, apperror.Validation([]string{"Company name is required"})
	}
	profile.UpdatedAt = time.Now()

	if err := u.profileRepo.UpdateEmployer(ctx, profile); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Profile not found")
		}
		return nil, err
	}

	updated, err := u.profileRepo.GetEmployerByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	shapeEmployer(updated)
	return updated, nil
}

// requireSelf rejects requests whose authenticated identity does not match
// the requested owner. Missing identity fails safe.
func requireSelf(ctx context.Context, userID string) error {
	ctxUserID, ok := ctx.Value(domain.KeyUserID).(string)
	if !ok || ctxUserID == "" {
		return apperror.Unauthorized("User not authenticated")
	}
	if ctxUserID != userID {
		return apperror.Forbidden("You can only view your own profile")
	}
	return nil
}

func shapeSeeker(p *domain.SeekerProfile) {
	avatar := shape.OrDefault(p.AvatarURL, shape.DefaultAvatarURL)
	p.AvatarURL = &avatar
	if p.Languages == nil {
		p.Languages = []string{}
	}
}

func shapeEmployer(p *domain.EmployerProfile) {
	logo := shape.OrDefault(p.LogoURL, shape.DefaultLogoURL)
	p.LogoURL = &logo
}
