package domain

import (
	"context"
	"time"
)

const ApplicationStatusApplied = "applied"

type Application struct {
	ID           int64     `json:"id"`
	JobID        int64     `json:"jobId"`
	SeekerUserID string    `json:"seekerUserId"`
	CVID         int64     `json:"cvId"`
	CoverLetter  *string   `json:"coverLetter"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`

	// Joined projections, populated on reads only.
	JobTitle      *string `json:"jobTitle,omitempty"`
	CandidateName *string `json:"candidateName,omitempty"`
	CVFileURL     *string `json:"cvFileUrl,omitempty"`
}

type ApplicationRepository interface {
	// Create verifies inside the transaction that the CV belongs to the
	// applying seeker, then inserts the application. A duplicate
	// (job, seeker) pair surfaces as a unique violation.
	Create(ctx context.Context, app *Application) error
	FetchByJobID(ctx context.Context, jobID int64) ([]Application, error)
	FetchBySeeker(ctx context.Context, userID string) ([]Application, error)
}

type ApplicationUsecase interface {
	Apply(ctx context.Context, userID string, app *Application) error
	ListApplicants(ctx context.Context, userID string, jobID int64) ([]Application, error)
	ListOwnApplications(ctx context.Context, userID string) ([]Application, error)
}
