package usecase_test

import (
	"context"
	"testing"
	"time"

	"jobdesk-backend/internal/domain"
	"jobdesk-backend/internal/usecase"
	"jobdesk-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockPortfolioRepo struct {
	mock.Mock
}

func (m *MockPortfolioRepo) CreateProject(ctx context.Context, p *domain.Project) error {
	return m.Called(ctx, p).Error(0)
}
func (m *MockPortfolioRepo) FetchProjects(ctx context.Context, userID string) ([]domain.Project, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Project), args.Error(1)
}
func (m *MockPortfolioRepo) UpdateProject(ctx context.Context, p *domain.Project) error {
	return m.Called(ctx, p).Error(0)
}
func (m *MockPortfolioRepo) DeleteProject(ctx context.Context, userID string, id int64) error {
	return m.Called(ctx, userID, id).Error(0)
}
func (m *MockPortfolioRepo) CreateExperience(ctx context.Context, e *domain.Experience) error {
	return m.Called(ctx, e).Error(0)
}
func (m *MockPortfolioRepo) FetchExperiences(ctx context.Context, userID string) ([]domain.Experience, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Experience), args.Error(1)
}
func (m *MockPortfolioRepo) UpdateExperience(ctx context.Context, e *domain.Experience) error {
	return m.Called(ctx, e).Error(0)
}
func (m *MockPortfolioRepo) DeleteExperience(ctx context.Context, userID string, id int64) error {
	return m.Called(ctx, userID, id).Error(0)
}
func (m *MockPortfolioRepo) CreateEducation(ctx context.Context, e *domain.Education) error {
	return m.Called(ctx, e).Error(0)
}
func (m *MockPortfolioRepo) FetchEducations(ctx context.Context, userID string) ([]domain.Education, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Education), args.Error(1)
}
func (m *MockPortfolioRepo) UpdateEducation(ctx context.Context, e *domain.Education) error {
	return m.Called(ctx, e).Error(0)
}
func (m *MockPortfolioRepo) DeleteEducation(ctx context.Context, userID string, id int64) error {
	return m.Called(ctx, userID, id).Error(0)
}

func TestCreateExperienceValidation(t *testing.T) {
	mockRepo := new(MockPortfolioRepo)
	uc := usecase.NewPortfolioUsecase(mockRepo)

	t.Run("Should collect all missing fields at once", func(t *testing.T) {
		err := uc.CreateExperience(context.Background(), "user1", &domain.Experience{})

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Len(t, appErr.Fields, 3)
	})

	t.Run("End date before start date is rejected", func(t *testing.T) {
		start := time.Date(2022, 5, 1, 0, 0, 0, 0, time.UTC)
		end := start.AddDate(-1, 0, 0)
		err := uc.CreateExperience(context.Background(), "user1", &domain.Experience{
			CompanyName: "Acme",
			JobTitle:    "Engineer",
			StartDate:   start,
			EndDate:     &end,
		})
		assert.Error(t, err)
	})

	t.Run("Owner is stamped from the caller", func(t *testing.T) {
		mockRepo.On("CreateExperience", mock.Anything, mock.AnythingOfType("*domain.Experience")).Return(nil).Run(func(args mock.Arguments) {
			e := args.Get(1).(*domain.Experience)
			assert.Equal(t, "user1", e.UserID)
		}).Once()

		err := uc.CreateExperience(context.Background(), "user1", &domain.Experience{
			CompanyName: "Acme",
			JobTitle:    "Engineer",
			StartDate:   time.Date(2022, 5, 1, 0, 0, 0, 0, time.UTC),
		})
		assert.NoError(t, err)
	})
}

func TestDeleteProjectNotFound(t *testing.T) {
	mockRepo := new(MockPortfolioRepo)
	uc := usecase.NewPortfolioUsecase(mockRepo)

	mockRepo.On("DeleteProject", mock.Anything, "user1", int64(9)).Return(domain.ErrNotFound).Once()

	err := uc.DeleteProject(context.Background(), "user1", 9)

	var appErr *apperror.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.Code)
	assert.Equal(t, "Project not found", appErr.Message)
}
