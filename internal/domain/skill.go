package domain

import "context"

// Skill is a catalog entry that jobs and seekers link against.
type Skill struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type SkillRepository interface {
	Fetch(ctx context.Context, query string, limit int) ([]Skill, error)
	Create(ctx context.Context, skill *Skill) error
	// ReplaceSeekerSkills swaps the seeker's skill links for the given
	// catalog IDs in one transaction (clear then insert in given order).
	ReplaceSeekerSkills(ctx context.Context, userID string, skillIDs []int64) ([]Skill, error)
	FetchSeekerSkills(ctx context.Context, userID string) ([]Skill, error)
}

type SkillUsecase interface {
	ListSkills(ctx context.Context, query string, limit int) ([]Skill, error)
	CreateSkill(ctx context.Context, skill *Skill) error
	SetSeekerSkills(ctx context.Context, userID string, skillIDs []int64) ([]Skill, error)
	ListSeekerSkills(ctx context.Context, userID string) ([]Skill, error)
}
