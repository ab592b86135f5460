package usecase_test

import (
	"context"
	"testing"

	"jobdesk-backend/internal/domain"
	"jobdesk-backend/internal/usecase"
	"jobdesk-backend/pkg/shape"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestProfileIDOR(t *testing.T) {
	mockRepo := new(MockProfileRepo)
	uc := usecase.NewProfileUsecase(mockRepo)

	t.Run("Should fail when Context UserID does not match Argument UserID", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), domain.KeyUserID, "user1")
		_, err := uc.GetSeekerProfile(ctx, "user2")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "only view your own profile")
	})

	t.Run("Should fail safely when Context UserID is nil", func(t *testing.T) {
		ctx := context.Background() // keys missing
		_, err := uc.GetSeekerProfile(ctx, "user1")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "User not authenticated")
	})
}

func TestUpdateSeekerProfile(t *testing.T) {
	mockRepo := new(MockProfileRepo)
	uc := usecase.NewProfileUsecase(mockRepo)
	ctx := context.WithValue(context.Background(), domain.KeyUserID, "user1")

	t.Run("Should force UserID from context", func(t *testing.T) {
		mockRepo.On("UpdateSeeker", mock.Anything, mock.AnythingOfType("*domain.SeekerProfile")).Return(nil).Run(func(args mock.Arguments) {
			p := args.Get(1).(*domain.SeekerProfile)
			assert.Equal(t, "user1", p.UserID)
		}).Once()
		mockRepo.On("GetSeekerByUserID", mock.Anything, "user1").Return(&domain.SeekerProfile{UserID: "user1", FullName: "Jane"}, nil).Once()

		_, err := uc.UpdateSeekerProfile(ctx, &domain.SeekerProfile{
			UserID:   "hacker_try",
			FullName: "Jane",
		})
		assert.NoError(t, err)
	})

	t.Run("Should reject empty full name", func(t *testing.T) {
		_, err := uc.UpdateSeekerProfile(ctx, &domain.SeekerProfile{})
		assert.Error(t, err)
	})
}

func TestProfileShaping(t *testing.T) {
	mockRepo := new(MockProfileRepo)
	uc := usecase.NewProfileUsecase(mockRepo)
	ctx := context.WithValue(context.Background(), domain.KeyUserID, "user1")

	t.Run("Missing avatar gets the placeholder", func(t *testing.T) {
		mockRepo.On("GetSeekerByUserID", mock.Anything, "user1").Return(&domain.SeekerProfile{UserID: "user1", FullName: "Jane"}, nil).Once()

		profile, err := uc.GetSeekerProfile(ctx, "user1")
		assert.NoError(t, err)
		assert.NotNil(t, profile.AvatarURL)
		assert.Equal(t, shape.DefaultAvatarURL, *profile.AvatarURL)
		assert.NotNil(t, profile.Languages)
	})

	t.Run("Public employer card keeps real logo when present", func(t *testing.T) {
		logo := "https://cdn.example.com/logo.png"
		mockRepo.On("GetEmployerByID", mock.Anything, int64(5)).Return(&domain.EmployerProfile{ID: 5, CompanyName: "Acme", LogoURL: &logo}, nil).Once()

		card, err := uc.GetEmployerCard(context.Background(), 5)
		assert.NoError(t, err)
		assert.Equal(t, logo, *card.LogoURL)
	})
}
