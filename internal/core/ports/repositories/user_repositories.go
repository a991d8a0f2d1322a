package repositories

import (
	"context"

	"github.com/dayboard/dayboard_backend/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	// SaveUser persists a new user and returns it with the generated id.
	// Returns apperrors.ErrDuplicate when the email is already registered.
	SaveUser(ctx context.Context, user domain.User) (*domain.User, error)

	// FindUserByID retrieves a user by id.
	FindUserByID(ctx context.Context, userID int64) (*domain.User, error)

	// FindUserByEmail retrieves a user by email.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// UpdatePassword replaces a user's password hash.
	UpdatePassword(ctx context.Context, userID int64, passwordHash string) error

	// DeleteUser removes a user. Owned resources are removed by the
	// database's cascade rules.
	DeleteUser(ctx context.Context, userID int64) error
}
