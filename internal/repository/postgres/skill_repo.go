package postgres

import (
	"context"
	"errors"

	"jobdesk-backend/internal/domain"
	"jobdesk-backend/pkg/apperror"
	"jobdesk-backend/pkg/database"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type skillRepo struct {
	db *pgxpool.Pool
}

func NewSkillRepository(db *pgxpool.Pool) domain.SkillRepository {
	return &skillRepo{db: db}
}

func (r *skillRepo) Fetch(ctx context.Context, query string, limit int) ([]domain.Skill, error) {
	if limit <= 0 || limit > 100 {
		limit = 100
	}

	rows, err := r.db.Query(ctx, `
		SELECT id, name FROM skills
		WHERE name ILIKE $1
		ORDER BY name ASC
		LIMIT $2
	`, "%"+query+"%", limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var skills []domain.Skill
	for rows.Next() {
		var s domain.Skill
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, err
		}
		skills = append(skills, s)
	}
	return skills, rows.Err()
}

func (r *skillRepo) Create(ctx context.Context, skill *domain.Skill) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO skills (name) VALUES ($1) RETURNING id`, skill.Name,
	).Scan(&skill.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperror.Conflict("Skill already exists")
		}
		return err
	}
	return nil
}

// ReplaceSeekerSkills swaps the seeker's skill links atomically: clear,
// insert in the given order, read back resolved names. A bad catalog ID
// fails its insert and rolls the whole replacement back.
func (r *skillRepo) ReplaceSeekerSkills(ctx context.Context, userID string, skillIDs []int64) ([]domain.Skill, error) {
	var resolved []domain.Skill

	err := database.WithinTx(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM seeker_skills WHERE user_id = $1`, userID); err != nil {
			return err
		}

		for _, skillID := range skillIDs {
			if _, err := tx.Exec(ctx,
				`INSERT INTO seeker_skills (user_id, skill_id) VALUES ($1, $2)`, userID, skillID,
			); err != nil {
				return err
			}
		}

		rows, err := tx.Query(ctx, `
			SELECT s.id, s.name FROM seeker_skills ss
			JOIN skills s ON ss.skill_id = s.id
			WHERE ss.user_id = $1
			ORDER BY ss.id
		`, userID)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var s domain.Skill
			if err := rows.Scan(&s.ID, &s.Name); err != nil {
				return err
			}
			resolved = append(resolved, s)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return resolved, nil
}

func (r *skillRepo) FetchSeekerSkills(ctx context.Context, userID string) ([]domain.Skill, error) {
	rows, err := r.db.Query(ctx, `
		SELECT s.id, s.name FROM seeker_skills ss
		JOIN skills s ON ss.skill_id = s.id
		WHERE ss.user_id = $1
		ORDER BY ss.id
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var skills []domain.Skill
	for rows.Next() {
		var s domain.Skill
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, err
		}
		skills = append(skills, s)
	}
	return skills, rows.Err()
}
