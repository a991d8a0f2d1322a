package services

import (
	"context"

	"github.com/dayboard/dayboard_backend/internal/core/domain"
)

// UserSvcFacade defines account-level operations for the authenticated user.
type UserSvcFacade interface {
	// GetUserByID retrieves a user's profile.
	GetUserByID(ctx context.Context, userID int64) (*domain.User, error)

	// DeleteUser removes an account and, via the database cascade, every
	// resource the account owns.
	DeleteUser(ctx context.Context, userID int64) error
}
