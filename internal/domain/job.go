package domain

import (
	"context"
	"time"
)

const (
	JobStatusOpen   = "open"
	JobStatusClosed = "closed"
)

type Job struct {
	ID             int64     `json:"id"`
	EmployerID     int64     `json:"employerId"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	SalaryMin      float64   `json:"salaryMin"`
	SalaryMax      float64   `json:"salaryMax"`
	Location       string    `json:"location"`
	EmploymentType *string   `json:"employmentType"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// JobWithEmployer extends Job with the employer card shown on listings.
type JobWithEmployer struct {
	Job
	CompanyName    string  `json:"companyName"`
	CompanyLogoURL *string `json:"companyLogoUrl"`
	CompanyWebsite *string `json:"companyWebsite"`
	Industry       *string `json:"industry"`
}

type JobRepository interface {
	// CreateWithSkills inserts the job plus one link row per skill ID, in
	// the order given and without de-duplication, inside one transaction.
	// The resolved skill names are returned for the response.
	CreateWithSkills(ctx context.Context, job *Job, skillIDs []int64) ([]Skill, error)
	GetByID(ctx context.Context, id int64) (*Job, error)
	GetByIDWithEmployer(ctx context.Context, id int64) (*JobWithEmployer, error)
	GetSkills(ctx context.Context, jobID int64) ([]Skill, error)
	FetchOpen(ctx context.Context, limit, offset int) ([]JobWithEmployer, int64, error)
	FetchByEmployerID(ctx context.Context, employerID int64, limit, offset int) ([]Job, int64, error)
	// Update rewrites the job row, scoped to the owning employer.
	Update(ctx context.Context, job *Job, employerID int64) error
	// DeleteCascade removes applications, skill links, then the job row,
	// in that order inside one transaction, scoped to the owning employer.
	DeleteCascade(ctx context.Context, id int64, employerID int64) error
}

type JobUsecase interface {
	CreateJob(ctx context.Context, userID string, job *Job, skillIDs []int64) ([]Skill, error)
	GetJobDetails(ctx context.Context, id int64) (*JobWithEmployer, []Skill, error)
	ListOpenJobs(ctx context.Context, page, pageSize int) ([]JobWithEmployer, int64, error)
	ListJobsByEmployer(ctx context.Context, userID string, page, pageSize int) ([]Job, int64, error)
	UpdateJob(ctx context.Context, userID string, job *Job) error
	DeleteJob(ctx context.Context, userID string, id int64) error
}
