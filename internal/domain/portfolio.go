package domain

import (
	"context"
	"time"
)

// ProjectLinks is stored as a JSON column and normalized by the response
// shaper, since the driver may hand it back raw or already decoded.
type ProjectLinks struct {
	Repo string `json:"repo,omitempty"`
	Demo string `json:"demo,omitempty"`
}

type Project struct {
	ID          int64        `json:"id"`
	UserID      string       `json:"userId"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Links       ProjectLinks `json:"links"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

type Experience struct {
	ID          int64      `json:"id"`
	UserID      string     `json:"userId"`
	CompanyName string     `json:"companyName"`
	JobTitle    string     `json:"jobTitle"`
	StartDate   time.Time  `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
	Description string     `json:"description"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

type Education struct {
	ID          int64     `json:"id"`
	UserID      string    `json:"userId"`
	Institution string    `json:"institution"`
	Degree      string    `json:"degree"`
	Field       string    `json:"field"`
	StartYear   int       `json:"startYear"`
	EndYear     *int      `json:"endYear"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type PortfolioRepository interface {
	CreateProject(ctx context.Context, p *Project) error
	FetchProjects(ctx context.Context, userID string) ([]Project, error)
	UpdateProject(ctx context.Context, p *Project) error
	DeleteProject(ctx context.Context, userID string, id int64) error

	CreateExperience(ctx context.Context, e *Experience) error
	FetchExperiences(ctx context.Context, userID string) ([]Experience, error)
	UpdateExperience(ctx context.Context, e *Experience) error
	DeleteExperience(ctx context.Context, userID string, id int64) error

	CreateEducation(ctx context.Context, e *Education) error
	FetchEducations(ctx context.Context, userID string) ([]Education, error)
	UpdateEducation(ctx context.Context, e *Education) error
	DeleteEducation(ctx context.Context, userID string, id int64) error
}

type PortfolioUsecase interface {
	CreateProject(ctx context.Context, userID string, p *Project) error
	ListProjects(ctx context.Context, userID string) ([]Project, error)
	UpdateProject(ctx context.Context, userID string, p *Project) error
	DeleteProject(ctx context.Context, userID string, id int64) error

	CreateExperience(ctx context.Context, userID string, e *Experience) error
	ListExperiences(ctx context.Context, userID string) ([]Experience, error)
	UpdateExperience(ctx context.Context, userID string, e *Experience) error
	DeleteExperience(ctx context.Context, userID string, id int64) error

	CreateEducation(ctx context.Context, userID string, e *Education) error
	ListEducations(ctx context.Context, userID string) ([]Education, error)
	UpdateEducation(ctx context.Context, userID string, e *Education) error
	DeleteEducation(ctx context.Context, userID string, id int64) error
}
