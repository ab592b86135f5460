package postgres

import (
	"context"
	"errors"

	"jobdesk-backend/internal/domain"
	"jobdesk-backend/pkg/database"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type cvRepo struct {
	db *pgxpool.Pool
}

func NewCVRepository(db *pgxpool.Pool) domain.CVRepository {
	return &cvRepo{db: db}
}

// Create inserts the CV. The owner's first CV becomes primary in the same
// transaction so the collection never starts without one.
func (r *cvRepo) Create(ctx context.Context, cv *domain.CV) error {
	return database.WithinTx(ctx, r.db, func(tx pgx.Tx) error {
		var existing int64
		if err := tx.QueryRow(ctx,
			`SELECT COUNT(*) FROM cvs WHERE user_id = $1`, cv.UserID,
		).Scan(&existing); err != nil {
			return err
		}
		cv.IsPrimary = existing == 0

		return tx.QueryRow(ctx, `
			INSERT INTO cvs (user_id, name, file_url, is_primary, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id
		`, cv.UserID, cv.Name, cv.FileURL, cv.IsPrimary, cv.CreatedAt, cv.UpdatedAt).Scan(&cv.ID)
	})
}

func (r *cvRepo) FetchByOwner(ctx context.Context, userID string) ([]domain.CV, error) {
	query := `SELECT id, user_id, name, file_url, is_primary, created_at, updated_at
	          FROM cvs WHERE user_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cvs []domain.CV
	for rows.Next() {
		var cv domain.CV
		if err := rows.Scan(&cv.ID, &cv.UserID, &cv.Name, &cv.FileURL, &cv.IsPrimary, &cv.CreatedAt, &cv.UpdatedAt); err != nil {
			return nil, err
		}
		cvs = append(cvs, cv)
	}
	return cvs, rows.Err()
}

func (r *cvRepo) GetByID(ctx context.Context, id int64, userID string) (*domain.CV, error) {
	query := `SELECT id, user_id, name, file_url, is_primary, created_at, updated_at
	          FROM cvs WHERE id = $1 AND user_id = $2`

	var cv domain.CV
	err := r.db.QueryRow(ctx, query, id, userID).Scan(
		&cv.ID, &cv.UserID, &cv.Name, &cv.FileURL, &cv.IsPrimary, &cv.CreatedAt, &cv.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &cv, nil
}

func (r *cvRepo) Update(ctx context.Context, cv *domain.CV) error {
	query := `UPDATE cvs SET name = $3, file_url = $4, updated_at = $5
	          WHERE id = $1 AND user_id = $2`
	result, err := r.db.Exec(ctx, query, cv.ID, cv.UserID, cv.Name, cv.FileURL, cv.UpdatedAt)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SetPrimary reassigns the primary flag to the given CV: verify ownership,
// clear the flag across the owner's collection, set it on the target. The
// ownership read happens inside the transaction so a concurrent delete
// cannot slip between check and write. Setting an already-primary CV runs
// the same statements and lands in the same state.
func (r *cvRepo) SetPrimary(ctx context.Context, userID string, id int64) error {
	return database.WithinTx(ctx, r.db, func(tx pgx.Tx) error {
		var owned int64
		err := tx.QueryRow(ctx,
			`SELECT id FROM cvs WHERE id = $1 AND user_id = $2`, id, userID,
		).Scan(&owned)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domain.ErrNotFound
			}
			return err
		}

		if err := clearPrimary(ctx, tx, userID); err != nil {
			return err
		}
		_, err = tx.Exec(ctx, `UPDATE cvs SET is_primary = TRUE, updated_at = NOW() WHERE id = $1`, id)
		return err
	})
}

// DeleteWithReelection deletes the CV and, when it held the primary flag,
// promotes the most recently created remaining CV. An emptied collection
// legitimately ends with zero primaries.
func (r *cvRepo) DeleteWithReelection(ctx context.Context, userID string, id int64) error {
	return database.WithinTx(ctx, r.db, func(tx pgx.Tx) error {
		var wasPrimary bool
		err := tx.QueryRow(ctx,
			`SELECT is_primary FROM cvs WHERE id = $1 AND user_id = $2`, id, userID,
		).Scan(&wasPrimary)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domain.ErrNotFound
			}
			return err
		}

		if _, err := tx.Exec(ctx, `DELETE FROM cvs WHERE id = $1`, id); err != nil {
			return err
		}

		if !wasPrimary {
			return nil
		}

		var nextID int64
		err = tx.QueryRow(ctx, `
			SELECT id FROM cvs WHERE user_id = $1
			ORDER BY created_at DESC, id DESC LIMIT 1
		`, userID).Scan(&nextID)
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		if err != nil {
			return err
		}

		if err := clearPrimary(ctx, tx, userID); err != nil {
			return err
		}
		_, err = tx.Exec(ctx, `UPDATE cvs SET is_primary = TRUE, updated_at = NOW() WHERE id = $1`, nextID)
		return err
	})
}

func clearPrimary(ctx context.Context, tx pgx.Tx, userID string) error {
	_, err := tx.Exec(ctx, `UPDATE cvs SET is_primary = FALSE WHERE user_id = $1 AND is_primary`, userID)
	return err
}
