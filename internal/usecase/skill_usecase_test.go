package usecase_test

import (
	"context"
	"testing"

	"jobdesk-backend/internal/domain"
	"jobdesk-backend/internal/usecase"
	"jobdesk-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCreateSkillPrivilege(t *testing.T) {
	mockRepo := new(MockSkillRepo)
	uc := usecase.NewSkillUsecase(mockRepo)

	t.Run("Should fail if role is not admin", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), domain.KeyUserRole, domain.RoleSeeker)
		err := uc.CreateSkill(ctx, &domain.Skill{Name: "Go"})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Only admins")
	})

	t.Run("Should fail safe if role is nil", func(t *testing.T) {
		err := uc.CreateSkill(context.Background(), &domain.Skill{Name: "Go"})
		assert.Error(t, err)
	})

	t.Run("Admin creates with trimmed name", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), domain.KeyUserRole, domain.RoleAdmin)
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Skill")).Return(nil).Run(func(args mock.Arguments) {
			s := args.Get(1).(*domain.Skill)
			assert.Equal(t, "Go", s.Name)
		}).Once()

		assert.NoError(t, uc.CreateSkill(ctx, &domain.Skill{Name: "  Go  "}))
	})
}

func TestSetSeekerSkills(t *testing.T) {
	mockRepo := new(MockSkillRepo)
	uc := usecase.NewSkillUsecase(mockRepo)

	t.Run("Should reject non-positive catalog IDs", func(t *testing.T) {
		_, err := uc.SetSeekerSkills(context.Background(), "user1", []int64{1, 0, 2})

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		mockRepo.AssertNotCalled(t, "ReplaceSeekerSkills")
	})

	t.Run("Order and duplicates reach the repository unchanged", func(t *testing.T) {
		ids := []int64{2, 2, 1}
		expected := []domain.Skill{{ID: 2, Name: "SQL"}, {ID: 2, Name: "SQL"}, {ID: 1, Name: "Go"}}
		mockRepo.On("ReplaceSeekerSkills", mock.Anything, "user1", ids).Return(expected, nil).Once()

		got, err := uc.SetSeekerSkills(context.Background(), "user1", ids)
		assert.NoError(t, err)
		assert.Equal(t, expected, got)
	})
}
