package services

import (
	"context"
	"time"

	"github.com/dayboard/dayboard_backend/internal/core/domain"
	"github.com/dayboard/dayboard_backend/internal/dto"
)

// AuthSvcFacade defines the interface for the authentication and token
// lifecycle service.
type AuthSvcFacade interface {
	// SignUp registers a new account. Returns apperrors.ErrDuplicate when
	// the email is taken and apperrors.ErrValidation on missing fields.
	SignUp(ctx context.Context, req dto.SignUpRequest) (*domain.User, error)

	// SignIn verifies credentials and mints an access + refresh token pair.
	// Unknown email and wrong password both map to apperrors.ErrUnauthorized.
	SignIn(ctx context.Context, req dto.SignInRequest) (accessToken, refreshToken string, err error)

	// RefreshAccessToken validates a refresh token and mints a new access
	// token for the same identity. The refresh token is not checked against
	// the revocation list.
	RefreshAccessToken(ctx context.Context, refreshTokenString string) (string, error)

	// Logout puts an access token's id on the revocation list until the
	// token's natural expiry.
	Logout(ctx context.Context, tokenID string, expiresAt time.Time) error

	// ForgotPassword mints a reset token and hands it to the mailer when the
	// email is registered. It succeeds either way so the response never
	// reveals whether an account exists.
	ForgotPassword(ctx context.Context, email string) error

	// ResetPassword consumes a reset token and stores a new password hash.
	ResetPassword(ctx context.Context, tokenString, newPassword string) error
}

// Mailer delivers password reset tokens out of band.
type Mailer interface {
	SendPasswordReset(ctx context.Context, toEmail, resetToken string) error
}
