package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"jobdesk-backend/internal/domain"
	"jobdesk-backend/pkg/apperror"
	"jobdesk-backend/pkg/token"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type authUsecase struct {
	userRepo domain.UserRepository
	tokens   *token.Manager
}

func NewAuthUsecase(userRepo domain.UserRepository, tokens *token.Manager) domain.AuthUsecase {
	return &authUsecase{userRepo: userRepo, tokens: tokens}
}

// Register creates the account and its role profile in one transaction and
// returns a freshly issued access token. Validation happens before any
// database work; duplicate emails surface as Conflict from the repository.
func (u *authUsecase) Register(ctx context.Context, email, password, role string) (*domain.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var fields []string
	if email == "" {
		fields = append(fields, "Email is required")
	}
	if len(password) < 8 {
		fields = append(fields, "Password must be at least 8 characters")
	}
	if role != domain.RoleSeeker && role != domain.RoleEmployer {
		fields = append(fields, "Role must be one of: seeker, employer")
	}
	if len(fields) > 0 {
		return nil, "", apperror.Validation(fields)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", apperror.Internal(err)
	}

	now := time.Now()
	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := u.userRepo.CreateWithProfile(ctx, user); err != nil {
		return nil, "", err
	}

	tok, err := u.tokens.Issue(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, "", apperror.Internal(err)
	}
	return user, tok, nil
}

// Login verifies credentials and issues a token. Unknown email and wrong
// password are deliberately indistinguishable.
func (u *authUsecase) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, "", apperror.BadRequest("Email and password are required")
	}

	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, "", apperror.Unauthorized("Invalid email or password")
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", apperror.Unauthorized("Invalid email or password")
	}

	tok, err := u.tokens.Issue(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, "", apperror.Internal(err)
	}
	return user, tok, nil
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, id string) (*domain.User, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, err
	}
	return user, nil
}
