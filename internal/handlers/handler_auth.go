package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	limitergin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/dayboard/dayboard_backend/internal/apperrors"
	portssvc "github.com/dayboard/dayboard_backend/internal/core/ports/services"
	"github.com/dayboard/dayboard_backend/internal/dto"
	"github.com/dayboard/dayboard_backend/internal/middleware"
)

// authHandler handles authentication related requests.
type authHandler struct {
	authService portssvc.AuthSvcFacade
}

// newAuthHandler creates a new authHandler.
func newAuthHandler(as portssvc.AuthSvcFacade) *authHandler {
	return &authHandler{authService: as}
}

// registerAuthRoutes sets up the public authentication routes. The
// credential endpoints share an IP rate limit of 5 requests per minute.
func registerAuthRoutes(r *gin.Engine, authService portssvc.AuthSvcFacade) {
	h := newAuthHandler(authService)

	rate, _ := limiter.NewRateFromFormatted("5-M")
	store := memory.NewStore()
	ipLimiter := limiter.New(store, rate)
	limitMiddleware := limitergin.NewMiddleware(ipLimiter)

	r.POST("/sign-up", limitMiddleware, h.SignUp)
	r.POST("/sign-in", limitMiddleware, h.SignIn)
	r.POST("/forgot-password", limitMiddleware, h.ForgotPassword)
	r.POST("/reset-password/:token", h.ResetPassword)
	r.POST("/refresh-token", h.RefreshToken)
}

// registerLogoutRoute registers the logout endpoint on the authenticated
// group; logout needs the middleware-resolved token id to revoke.
func registerLogoutRoute(rg *gin.RouterGroup, authService portssvc.AuthSvcFacade) {
	h := newAuthHandler(authService)
	rg.POST("/logout", h.Logout)
}

// SignUp godoc
// @Summary Register a new account
// @Success 201 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /sign-up [post]
func (h *authHandler) SignUp(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
		return
	}

	_, err := h.authService.SignUp(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Email and password are required"})
		case errors.Is(err, apperrors.ErrDuplicate):
			c.JSON(http.StatusConflict, dto.ErrorResponse{Error: "User already exists"})
		default:
			logger.Error("Failed to sign up user", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to create user"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.MessageResponse{Msg: "User created successfully"})
}

// SignIn godoc
// @Summary Authenticate and receive access + refresh tokens
// @Success 200 {object} dto.SignInResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /sign-in [post]
func (h *authHandler) SignIn(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
		return
	}

	accessToken, refreshToken, err := h.authService.SignIn(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Missing email or password"})
		case errors.Is(err, apperrors.ErrUnauthorized):
			// Unknown email and wrong password share one message.
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Invalid email or password"})
		default:
			logger.Error("Failed to sign in user", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to sign in"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.SignInResponse{AccessToken: accessToken, RefreshToken: refreshToken})
}

// Logout godoc
// @Summary Revoke the presented access token
// @Success 200 {object} dto.MessageResponse
// @Failure 401 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /logout [post]
func (h *authHandler) Logout(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	auth, ok := requireAuth(c)
	if !ok {
		return
	}

	if err := h.authService.Logout(c.Request.Context(), auth.TokenID, auth.ExpiresAt); err != nil {
		logger.Error("Failed to log out", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to log out"})
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Msg: "Successfully logged out"})
}

// ForgotPassword godoc
// @Summary Request a password reset token
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /forgot-password [post]
func (h *authHandler) ForgotPassword(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
		return
	}

	err := h.authService.ForgotPassword(c.Request.Context(), req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Email is required"})
			return
		}
		logger.Error("Failed to process password reset request", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to process request"})
		return
	}

	// Identical response whether or not the email is registered.
	c.JSON(http.StatusOK, dto.MessageResponse{Msg: "Password reset email sent"})
}

// ResetPassword godoc
// @Summary Set a new password using a reset token
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /reset-password/{token} [post]
func (h *authHandler) ResetPassword(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
		return
	}

	err := h.authService.ResetPassword(c.Request.Context(), c.Param("token"), req.NewPassword)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "New password is required"})
		case errors.Is(err, apperrors.ErrUnauthorized):
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Invalid token"})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "User not found"})
		default:
			logger.Error("Failed to reset password", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to reset password"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Msg: "Password updated successfully"})
}

// RefreshToken godoc
// @Summary Mint a new access token from a refresh token
// @Success 200 {object} dto.RefreshResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /refresh-token [post]
func (h *authHandler) RefreshToken(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	// The refresh token rides in the Authorization header like an access
	// token, so this route stays off the auth middleware (which only
	// accepts typ=access).
	tokenString := strings.TrimSpace(c.GetHeader("Authorization"))
	if after, found := strings.CutPrefix(tokenString, "Bearer "); found {
		tokenString = after
	}
	if tokenString == "" {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Authorization header required"})
		return
	}

	accessToken, err := h.authService.RefreshAccessToken(c.Request.Context(), tokenString)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnauthorized) {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Invalid refresh token"})
			return
		}
		logger.Error("Failed to refresh access token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to refresh token"})
		return
	}

	c.JSON(http.StatusOK, dto.RefreshResponse{AccessToken: accessToken})
}
