package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/dayboard/dayboard_backend/internal/apperrors"
	"github.com/dayboard/dayboard_backend/internal/core/domain"
	portsrepo "github.com/dayboard/dayboard_backend/internal/core/ports/repositories"
	portssvc "github.com/dayboard/dayboard_backend/internal/core/ports/services"
	"github.com/dayboard/dayboard_backend/internal/dto"
	"github.com/dayboard/dayboard_backend/internal/middleware"
	"github.com/dayboard/dayboard_backend/internal/platform/config"
	"github.com/dayboard/dayboard_backend/internal/utils"
)

// resetTokenExpiry is fixed by contract: a password reset link is valid for
// exactly 15 minutes regardless of the configured access token expiry.
const resetTokenExpiry = 15 * time.Minute

// authService implements AuthSvcFacade: sign-up, sign-in, the token
// lifecycle (issue, refresh, revoke) and the password reset flow.
type authService struct {
	cfg      *config.Config
	userRepo portsrepo.UserRepository
	revoker  portsrepo.TokenRevoker
	mailer   portssvc.Mailer
}

// NewAuthService creates a new authService.
func NewAuthService(cfg *config.Config, userRepo portsrepo.UserRepository, revoker portsrepo.TokenRevoker, mailer portssvc.Mailer) portssvc.AuthSvcFacade {
	return &authService{
		cfg:      cfg,
		userRepo: userRepo,
		revoker:  revoker,
		mailer:   mailer,
	}
}

func (s *authService) SignUp(ctx context.Context, req dto.SignUpRequest) (*domain.User, error) {
	email := strings.TrimSpace(req.Email)
	if email == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: email and password are required", apperrors.ErrValidation)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := domain.User{
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	// The unique index on email turns a duplicate sign-up into ErrDuplicate,
	// so there is no check-then-insert race.
	saved, err := s.userRepo.SaveUser(ctx, user)
	if err != nil {
		return nil, err
	}
	return saved, nil
}

func (s *authService) SignIn(ctx context.Context, req dto.SignInRequest) (string, string, error) {
	email := strings.TrimSpace(req.Email)
	if email == "" || req.Password == "" {
		return "", "", fmt.Errorf("%w: email and password are required", apperrors.ErrValidation)
	}

	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// Same outcome as a wrong password so the response cannot be
			// used to probe for registered emails.
			return "", "", apperrors.ErrUnauthorized
		}
		return "", "", fmt.Errorf("failed to look up user for sign-in: %w", err)
	}
	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		return "", "", apperrors.ErrUnauthorized
	}

	accessToken, err := utils.GenerateToken(user.UserID, user.Email, utils.TokenTypeAccess, s.cfg.JWTSecret, s.cfg.JWTIssuer, s.cfg.AccessTokenExpiry)
	if err != nil {
		return "", "", fmt.Errorf("failed to generate access token: %w", err)
	}
	refreshToken, err := utils.GenerateToken(user.UserID, user.Email, utils.TokenTypeRefresh, s.cfg.JWTSecret, s.cfg.JWTIssuer, s.cfg.RefreshTokenExpiry)
	if err != nil {
		return "", "", fmt.Errorf("failed to generate refresh token: %w", err)
	}
	return accessToken, refreshToken, nil
}

func (s *authService) RefreshAccessToken(ctx context.Context, refreshTokenString string) (string, error) {
	claims, err := utils.ParseAndValidateToken(refreshTokenString, s.cfg.JWTSecret)
	if err != nil {
		return "", apperrors.ErrUnauthorized
	}
	if claims.TokenType != utils.TokenTypeRefresh {
		return "", apperrors.ErrUnauthorized
	}

	// Revoking an access token does not touch its paired refresh token:
	// the refresh token is deliberately not checked against the revocation
	// list, so a logged-out client can still mint fresh access tokens until
	// the refresh token expires.
	accessToken, err := utils.GenerateToken(claims.UserID, claims.Email, utils.TokenTypeAccess, s.cfg.JWTSecret, s.cfg.JWTIssuer, s.cfg.AccessTokenExpiry)
	if err != nil {
		return "", fmt.Errorf("failed to generate access token: %w", err)
	}
	return accessToken, nil
}

func (s *authService) Logout(ctx context.Context, tokenID string, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if err := s.revoker.Revoke(ctx, tokenID, ttl); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

func (s *authService) ForgotPassword(ctx context.Context, email string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	email = strings.TrimSpace(email)
	if email == "" {
		return fmt.Errorf("%w: email is required", apperrors.ErrValidation)
	}

	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// Report success regardless so the endpoint cannot be used to
			// enumerate accounts.
			logger.Info("Password reset requested for unknown email")
			return nil
		}
		return fmt.Errorf("failed to look up user for password reset: %w", err)
	}

	resetToken, err := utils.GenerateToken(user.UserID, user.Email, utils.TokenTypeReset, s.cfg.JWTSecret, s.cfg.JWTIssuer, resetTokenExpiry)
	if err != nil {
		return fmt.Errorf("failed to generate reset token: %w", err)
	}

	if err := s.mailer.SendPasswordReset(ctx, user.Email, resetToken); err != nil {
		// Delivery failure stays server-side; the response to the caller is
		// the same either way.
		logger.Error("Failed to deliver password reset token", slog.String("error", err.Error()))
	}
	return nil
}

func (s *authService) ResetPassword(ctx context.Context, tokenString, newPassword string) error {
	if newPassword == "" {
		return fmt.Errorf("%w: new password is required", apperrors.ErrValidation)
	}

	claims, err := utils.ParseAndValidateToken(tokenString, s.cfg.JWTSecret)
	if err != nil {
		return apperrors.ErrUnauthorized
	}
	if claims.TokenType != utils.TokenTypeReset {
		return apperrors.ErrUnauthorized
	}

	// The embedded email is the target identity. There is no consumed
	// marker: the token works any number of times inside its 15 minute
	// window. Single use would require server-side state per token.
	user, err := s.userRepo.FindUserByEmail(ctx, claims.Email)
	if err != nil {
		return err
	}

	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash new password: %w", err)
	}
	return s.userRepo.UpdatePassword(ctx, user.UserID, hash)
}
