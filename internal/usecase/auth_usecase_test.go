package usecase_test

import (
	"context"
	"testing"
	"time"

	"jobdesk-backend/internal/domain"
	"jobdesk-backend/internal/usecase"
	"jobdesk-backend/pkg/apperror"
	"jobdesk-backend/pkg/token"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func testTokens() *token.Manager {
	return token.NewManager("test-secret", time.Hour)
}

func TestRegisterValidation(t *testing.T) {
	mockRepo := new(MockUserRepo)
	uc := usecase.NewAuthUsecase(mockRepo, testTokens())

	t.Run("Should reject short password and bad role without touching the repo", func(t *testing.T) {
		_, _, err := uc.Register(context.Background(), "a@b.com", "short", "wizard")

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Len(t, appErr.Fields, 2)
		mockRepo.AssertNotCalled(t, "CreateWithProfile")
	})

	t.Run("Should normalize email before storing", func(t *testing.T) {
		mockRepo.On("CreateWithProfile", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil).Run(func(args mock.Arguments) {
			u := args.Get(1).(*domain.User)
			assert.Equal(t, "user@example.com", u.Email)
			assert.NotEmpty(t, u.ID)
			assert.NotEqual(t, "password123", u.PasswordHash)
		}).Once()

		user, tok, err := uc.Register(context.Background(), "  User@Example.COM ", "password123", domain.RoleSeeker)
		assert.NoError(t, err)
		assert.NotEmpty(t, tok)
		assert.Equal(t, domain.RoleSeeker, user.Role)
	})

	t.Run("Should surface repository conflict untouched", func(t *testing.T) {
		conflict := apperror.Conflict("An account with this email already exists")
		mockRepo.On("CreateWithProfile", mock.Anything, mock.AnythingOfType("*domain.User")).Return(conflict).Once()

		_, _, err := uc.Register(context.Background(), "dup@example.com", "password123", domain.RoleEmployer)
		assert.ErrorIs(t, err, conflict)
	})
}

func TestLoginIndistinguishable(t *testing.T) {
	mockRepo := new(MockUserRepo)
	uc := usecase.NewAuthUsecase(mockRepo, testTokens())

	hash, _ := bcrypt.GenerateFromPassword([]byte("correct-password"), bcrypt.MinCost)
	known := &domain.User{ID: "u1", Email: "known@example.com", PasswordHash: string(hash), Role: domain.RoleSeeker}

	mockRepo.On("GetByEmail", mock.Anything, "known@example.com").Return(known, nil)
	mockRepo.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, domain.ErrNotFound)

	t.Run("Unknown email and wrong password yield the same error", func(t *testing.T) {
		_, _, errGhost := uc.Login(context.Background(), "ghost@example.com", "whatever")
		_, _, errWrong := uc.Login(context.Background(), "known@example.com", "wrong-password")

		var appGhost, appWrong *apperror.AppError
		assert.ErrorAs(t, errGhost, &appGhost)
		assert.ErrorAs(t, errWrong, &appWrong)
		assert.Equal(t, appGhost.Code, appWrong.Code)
		assert.Equal(t, appGhost.Message, appWrong.Message)
	})

	t.Run("Valid credentials issue a verifiable token", func(t *testing.T) {
		user, tok, err := uc.Login(context.Background(), "known@example.com", "correct-password")
		assert.NoError(t, err)
		assert.Equal(t, "u1", user.ID)

		claims, err := testTokens().Verify(tok)
		assert.NoError(t, err)
		assert.Equal(t, "u1", claims.UserID)
		assert.Equal(t, domain.RoleSeeker, claims.Role)
	})
}
