package dto

import (
	"time"

	"github.com/dayboard/dayboard_backend/internal/core/domain"
)

// UserResponse is the public view of an account. The password hash is never
// serialized.
type UserResponse struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// ToUserResponse converts a domain.User to its response DTO.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.UserID,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}
