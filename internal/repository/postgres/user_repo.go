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

// PostgreSQL error codes
const (
	pgUniqueViolation = "23505"
)

type userRepo struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) domain.UserRepository {
	return &userRepo{db: db}
}

// CreateWithProfile inserts the account row and its role profile row in one
// transaction. A duplicate email aborts both inserts and surfaces as Conflict;
// the email uniqueness constraint at the storage layer decides concurrent races.
func (r *userRepo) CreateWithProfile(ctx context.Context, user *domain.User) error {
	err := database.WithinTx(ctx, r.db, func(tx pgx.Tx) error {
		query := `INSERT INTO users (id, email, password_hash, role, created_at, updated_at)
		          VALUES ($1, $2, $3, $4, $5, $6)`
		if _, err := tx.Exec(ctx, query,
			user.ID, user.Email, user.PasswordHash, user.Role, user.CreatedAt, user.UpdatedAt,
		); err != nil {
			return err
		}

		switch user.Role {
		case domain.RoleSeeker:
			_, err := tx.Exec(ctx, `
				INSERT INTO seeker_profiles (user_id, full_name, created_at, updated_at)
				VALUES ($1, '', $2, $3)
			`, user.ID, user.CreatedAt, user.UpdatedAt)
			return err
		case domain.RoleEmployer:
			_, err := tx.Exec(ctx, `
				INSERT INTO employer_profiles (user_id, company_name, created_at, updated_at)
				VALUES ($1, '', $2, $3)
			`, user.ID, user.CreatedAt, user.UpdatedAt)
			return err
		}
		return nil
	})

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperror.Conflict("An account with this email already exists")
		}
		return apperror.Internal(err)
	}
	return nil
}

func (r *userRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `SELECT id, email, password_hash, role, created_at, updated_at FROM users WHERE id = $1`
	var user domain.User
	err := r.db.QueryRow(ctx, query, id).Scan(
		&user.ID, &user.Email, &user.PasswordHash, &user.Role, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT id, email, password_hash, role, created_at, updated_at FROM users WHERE email = $1`
	var user domain.User
	err := r.db.QueryRow(ctx, query, email).Scan(
		&user.ID, &user.Email, &user.PasswordHash, &user.Role, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}
