package domain

import (
	"context"
	"time"
)

// CV is an owner-scoped collection item carrying the primary flag.
// Invariant: at most one CV per owner has IsPrimary set in any committed
// state. The flag is maintained procedurally inside repository
// transactions, not by a storage constraint.
type CV struct {
	ID        int64     `json:"id"`
	UserID    string    `json:"userId"`
	Name      string    `json:"name"`
	FileURL   string    `json:"fileUrl"`
	IsPrimary bool      `json:"isPrimary"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type CVRepository interface {
	// Create inserts the CV; the owner's first CV is flagged primary in
	// the same transaction.
	Create(ctx context.Context, cv *CV) error
	FetchByOwner(ctx context.Context, userID string) ([]CV, error)
	GetByID(ctx context.Context, id int64, userID string) (*CV, error)
	Update(ctx context.Context, cv *CV) error
	// SetPrimary clears the flag across the owner's CVs and sets it on
	// the target, all in one transaction. ErrNotFound when the CV does
	// not exist or belongs to someone else; no writes happen in that case.
	SetPrimary(ctx context.Context, userID string, id int64) error
	// DeleteWithReelection deletes the CV and, when it held the primary
	// flag, promotes the most recently created remaining CV.
	DeleteWithReelection(ctx context.Context, userID string, id int64) error
}

type CVUsecase interface {
	CreateCV(ctx context.Context, userID string, cv *CV) error
	ListCVs(ctx context.Context, userID string) ([]CV, error)
	GetCV(ctx context.Context, userID string, id int64) (*CV, error)
	UpdateCV(ctx context.Context, userID string, cv *CV) error
	SetPrimaryCV(ctx context.Context, userID string, id int64) error
	DeleteCV(ctx context.Context, userID string, id int64) error
}
