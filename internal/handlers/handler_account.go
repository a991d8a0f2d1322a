package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dayboard/dayboard_backend/internal/apperrors"
	portssvc "github.com/dayboard/dayboard_backend/internal/core/ports/services"
	"github.com/dayboard/dayboard_backend/internal/dto"
	"github.com/dayboard/dayboard_backend/internal/middleware"
)

// accountHandler exposes the authenticated user's own account.
type accountHandler struct {
	userService portssvc.UserSvcFacade
}

func newAccountHandler(us portssvc.UserSvcFacade) *accountHandler {
	return &accountHandler{userService: us}
}

// registerAccountRoutes registers the account routes on the authenticated
// group.
func registerAccountRoutes(rg *gin.RouterGroup, userService portssvc.UserSvcFacade) {
	h := newAccountHandler(userService)
	rg.GET("/account", h.GetAccount)
	rg.DELETE("/account", h.DeleteAccount)
}

// GetAccount godoc
// @Summary Get the signed-in user's profile
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /account [get]
func (h *accountHandler) GetAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	auth, ok := requireAuth(c)
	if !ok {
		return
	}

	user, err := h.userService.GetUserByID(c.Request.Context(), auth.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "User not found"})
			return
		}
		logger.Error("Failed to fetch account", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to fetch account"})
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// DeleteAccount godoc
// @Summary Delete the signed-in user's account and all owned resources
// @Success 200 {object} dto.MessageResponse
// @Failure 401 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /account [delete]
func (h *accountHandler) DeleteAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	auth, ok := requireAuth(c)
	if !ok {
		return
	}

	if err := h.userService.DeleteUser(c.Request.Context(), auth.UserID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "User not found"})
			return
		}
		logger.Error("Failed to delete account", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to delete account"})
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Msg: "Account deleted"})
}
