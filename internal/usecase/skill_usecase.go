package usecase

import (
	"context"
	"strings"

	"jobdesk-backend/internal/domain"
	"jobdesk-backend/pkg/apperror"
)

type skillUsecase struct {
	skillRepo domain.SkillRepository
}

func NewSkillUsecase(skillRepo domain.SkillRepository) domain.SkillUsecase {
	return &skillUsecase{skillRepo: skillRepo}
}

func (u *skillUsecase) ListSkills(ctx context.Context, query string, limit int) ([]domain.Skill, error) {
	return u.skillRepo.Fetch(ctx, strings.TrimSpace(query), limit)
}

// CreateSkill adds a catalog entry. Admin only.
func (u *skillUsecase) CreateSkill(ctx context.Context, skill *domain.Skill) error {
	role, ok := ctx.Value(domain.KeyUserRole).(string)
	if !ok || role != domain.RoleAdmin {
		return apperror.Forbidden("Only admins can manage the skill catalog")
	}

	skill.Name = strings.TrimSpace(skill.Name)
	if skill.Name == "" {
		return apperror.Validation([]string{"Name is required"})
	}

	return u.skillRepo.Create(ctx, skill)
}

// SetSeekerSkills replaces the seeker's skill links in one transaction.
// The given order is preserved and duplicates are not filtered out.
func (u *skillUsecase) SetSeekerSkills(ctx context.Context, userID string, skillIDs []int64) ([]domain.Skill, error) {
	for _, id := range skillIDs {
		if id <= 0 {
			return nil, apperror.Validation([]string{"Skills must be valid catalog IDs"})
		}
	}
	return u.skillRepo.ReplaceSeekerSkills(ctx, userID, skillIDs)
}

func (u *skillUsecase) ListSeekerSkills(ctx context.Context, userID string) ([]domain.Skill, error) {
	return u.skillRepo.FetchSeekerSkills(ctx, userID)
}
