package domain

import (
	"context"
	"time"
)

type SeekerProfile struct {
	ID        int64     `json:"id"`
	UserID    string    `json:"userId"`
	FullName  string    `json:"fullName"`
	Headline  string    `json:"headline"`
	Bio       string    `json:"bio"`
	Phone     string    `json:"phone"`
	Location  string    `json:"location"`
	AvatarURL *string   `json:"avatarUrl"`
	Languages []string  `json:"languages"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type EmployerProfile struct {
	ID          int64     `json:"id"`
	UserID      string    `json:"userId"`
	CompanyName string    `json:"companyName"`
	Website     *string   `json:"website"`
	Industry    *string   `json:"industry"`
	About       string    `json:"about"`
	LogoURL     *string   `json:"logoUrl"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type ProfileRepository interface {
	GetSeekerByUserID(ctx context.Context, userID string) (*SeekerProfile, error)
	UpdateSeeker(ctx context.Context, profile *SeekerProfile) error
	GetEmployerByUserID(ctx context.Context, userID string) (*EmployerProfile, error)
	GetEmployerByID(ctx context.Context, id int64) (*EmployerProfile, error)
	UpdateEmployer(ctx context.Context, profile *EmployerProfile) error
}

type ProfileUsecase interface {
	GetSeekerProfile(ctx context.Context, userID string) (*SeekerProfile, error)
	UpdateSeekerProfile(ctx context.Context, profile *SeekerProfile) (*SeekerProfile, error)
	GetEmployerProfile(ctx context.Context, userID string) (*EmployerProfile, error)
	GetEmployerCard(ctx context.Context, id int64) (*EmployerProfile, error)
	UpdateEmployerProfile(ctx context.Context, profile *EmployerProfile) (*EmployerProfile, error)
}
