package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/dayboard/dayboard_backend/internal/apperrors"
	"github.com/dayboard/dayboard_backend/internal/core/domain"
	portsrepo "github.com/dayboard/dayboard_backend/internal/core/ports/repositories"
	"github.com/dayboard/dayboard_backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// uniqueViolation is the Postgres error code for unique constraint failures.
const uniqueViolation = "23505"

type PgxUserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a pgx-backed user repository.
func NewUserRepository(db *pgxpool.Pool) portsrepo.UserRepository {
	return &PgxUserRepository{db: db}
}

var _ portsrepo.UserRepository = (*PgxUserRepository)(nil)

func toDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:       m.ID,
		Email:        m.Email,
		PasswordHash: m.Password,
		CreatedAt:    m.CreatedAt,
	}
}

func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) (*domain.User, error) {
	query := `
        INSERT INTO users (email, password, created_at)
        VALUES ($1, $2, $3)
        RETURNING id;
    `
	err := r.db.QueryRow(ctx, query, user.Email, user.PasswordHash, user.CreatedAt).Scan(&user.UserID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, apperrors.ErrDuplicate
		}
		return nil, fmt.Errorf("failed to save user: %w", err)
	}
	return &user, nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	query := `
		SELECT id, email, password, created_at
		FROM users
		WHERE id = $1;
	`
	var m models.User
	err := r.db.QueryRow(ctx, query, userID).Scan(&m.ID, &m.Email, &m.Password, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by ID %d: %w", userID, err)
	}

	user := toDomainUser(m)
	return &user, nil
}

func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
		SELECT id, email, password, created_at
		FROM users
		WHERE email = $1;
	`
	var m models.User
	err := r.db.QueryRow(ctx, query, email).Scan(&m.ID, &m.Email, &m.Password, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}

	user := toDomainUser(m)
	return &user, nil
}

func (r *PgxUserRepository) UpdatePassword(ctx context.Context, userID int64, passwordHash string) error {
	query := `UPDATE users SET password = $1 WHERE id = $2;`
	tag, err := r.db.Exec(ctx, query, passwordHash, userID)
	if err != nil {
		return fmt.Errorf("failed to update password for user %d: %w", userID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxUserRepository) DeleteUser(ctx context.Context, userID int64) error {
	// Owned rows in reading_list, daily_tasks_list, movie_list and
	// quick_notes go with the user via ON DELETE CASCADE.
	query := `DELETE FROM users WHERE id = $1;`
	tag, err := r.db.Exec(ctx, query, userID)
	if err != nil {
		return fmt.Errorf("failed to delete user %d: %w", userID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
