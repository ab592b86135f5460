package usecase_test

import (
	"context"
	"errors"
	"testing"

	"jobdesk-backend/internal/domain"
	"jobdesk-backend/internal/usecase"
	"jobdesk-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCreateJob(t *testing.T) {
	mockJobs := new(MockJobRepo)
	mockProfiles := new(MockProfileRepo)
	uc := usecase.NewJobUsecase(mockJobs, mockProfiles)

	employer := &domain.EmployerProfile{ID: 10, UserID: "emp1", CompanyName: "Acme"}
	mockProfiles.On("GetEmployerByUserID", mock.Anything, "emp1").Return(employer, nil)
	mockProfiles.On("GetEmployerByUserID", mock.Anything, "nobody").Return(nil, domain.ErrNotFound)

	t.Run("Should fail when the caller has no employer profile", func(t *testing.T) {
		_, err := uc.CreateJob(context.Background(), "nobody", &domain.Job{Title: "Dev"}, nil)

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 404, appErr.Code)
	})

	t.Run("Should reject inverted salary range", func(t *testing.T) {
		job := &domain.Job{Title: "Dev", SalaryMin: 9000, SalaryMax: 5000}
		_, err := uc.CreateJob(context.Background(), "emp1", job, nil)

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.NotEmpty(t, appErr.Fields)
		mockJobs.AssertNotCalled(t, "CreateWithSkills")
	})

	t.Run("Should keep skill order and duplicates unchanged", func(t *testing.T) {
		skillIDs := []int64{3, 1, 3}
		expected := []domain.Skill{{ID: 3, Name: "Go"}, {ID: 1, Name: "SQL"}, {ID: 3, Name: "Go"}}

		mockJobs.On("CreateWithSkills", mock.Anything, mock.AnythingOfType("*domain.Job"), skillIDs).Return(expected, nil).Run(func(args mock.Arguments) {
			job := args.Get(1).(*domain.Job)
			assert.Equal(t, int64(10), job.EmployerID)
			assert.Equal(t, domain.JobStatusOpen, job.Status)
		}).Once()

		job := &domain.Job{Title: "Backend Engineer", SalaryMin: 5000, SalaryMax: 9000, Location: "Jakarta"}
		skills, err := uc.CreateJob(context.Background(), "emp1", job, skillIDs)
		assert.NoError(t, err)
		assert.Equal(t, expected, skills)
	})
}

func TestEmployerLookupFailure(t *testing.T) {
	dbErr := errors.New("connection reset by peer")

	t.Run("Database failure on create propagates, not a phantom 404", func(t *testing.T) {
		mockJobs := new(MockJobRepo)
		mockProfiles := new(MockProfileRepo)
		uc := usecase.NewJobUsecase(mockJobs, mockProfiles)
		mockProfiles.On("GetEmployerByUserID", mock.Anything, "emp1").Return(nil, dbErr)

		job := &domain.Job{Title: "Dev", SalaryMin: 1000, SalaryMax: 2000}
		_, err := uc.CreateJob(context.Background(), "emp1", job, nil)

		assert.ErrorIs(t, err, dbErr)
		var appErr *apperror.AppError
		assert.False(t, errors.As(err, &appErr))
		mockJobs.AssertNotCalled(t, "CreateWithSkills")
	})

	t.Run("Validation runs before the employer lookup", func(t *testing.T) {
		mockJobs := new(MockJobRepo)
		mockProfiles := new(MockProfileRepo)
		uc := usecase.NewJobUsecase(mockJobs, mockProfiles)

		job := &domain.Job{SalaryMin: 9000, SalaryMax: 5000}
		_, err := uc.CreateJob(context.Background(), "emp1", job, nil)

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 400, appErr.Code)
		mockProfiles.AssertNotCalled(t, "GetEmployerByUserID")
	})

	t.Run("Database failure on delete propagates", func(t *testing.T) {
		mockJobs := new(MockJobRepo)
		mockProfiles := new(MockProfileRepo)
		uc := usecase.NewJobUsecase(mockJobs, mockProfiles)
		mockProfiles.On("GetEmployerByUserID", mock.Anything, "emp1").Return(nil, dbErr)

		err := uc.DeleteJob(context.Background(), "emp1", 5)
		assert.ErrorIs(t, err, dbErr)
	})
}

func TestDeleteJobOwnership(t *testing.T) {
	mockJobs := new(MockJobRepo)
	mockProfiles := new(MockProfileRepo)
	uc := usecase.NewJobUsecase(mockJobs, mockProfiles)

	employer := &domain.EmployerProfile{ID: 10, UserID: "emp1"}
	mockProfiles.On("GetEmployerByUserID", mock.Anything, "emp1").Return(employer, nil)

	t.Run("Foreign job deletes report NotFound", func(t *testing.T) {
		mockJobs.On("DeleteCascade", mock.Anything, int64(55), int64(10)).Return(domain.ErrNotFound).Once()

		err := uc.DeleteJob(context.Background(), "emp1", 55)

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 404, appErr.Code)
	})

	t.Run("Owned job delete scopes to the employer ID", func(t *testing.T) {
		mockJobs.On("DeleteCascade", mock.Anything, int64(56), int64(10)).Return(nil).Once()

		assert.NoError(t, uc.DeleteJob(context.Background(), "emp1", 56))
		mockJobs.AssertExpectations(t)
	})
}
