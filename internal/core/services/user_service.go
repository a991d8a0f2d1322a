package services

import (
	"context"

	"github.com/dayboard/dayboard_backend/internal/core/domain"
	portsrepo "github.com/dayboard/dayboard_backend/internal/core/ports/repositories"
	portssvc "github.com/dayboard/dayboard_backend/internal/core/ports/services"
)

// userService implements UserSvcFacade.
type userService struct {
	userRepo portsrepo.UserRepository
}

// NewUserService creates a new userService.
func NewUserService(userRepo portsrepo.UserRepository) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

func (s *userService) GetUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	return s.userRepo.FindUserByID(ctx, userID)
}

func (s *userService) DeleteUser(ctx context.Context, userID int64) error {
	// The database cascades the delete to every owned resource table, so
	// this single statement removes the account and all of its lists.
	return s.userRepo.DeleteUser(ctx, userID)
}
