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

// readingListHandler handles reading list CRUD for the signed-in user.
type readingListHandler struct {
	service portssvc.ReadingListSvcFacade
}

func newReadingListHandler(s portssvc.ReadingListSvcFacade) *readingListHandler {
	return &readingListHandler{service: s}
}

// registerReadingListRoutes keeps the original flat route names.
func registerReadingListRoutes(rg *gin.RouterGroup, service portssvc.ReadingListSvcFacade) {
	h := newReadingListHandler(service)
	rg.GET("/reading-list", h.List)
	rg.POST("/create_reading_list", h.Create)
	rg.GET("/get_reading_list/:id", h.Get)
	rg.PUT("/update_reading_list/:id", h.Update)
	rg.DELETE("/get_reading_list/:id", h.Delete)
}

func (h *readingListHandler) List(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	auth, ok := requireAuth(c)
	if !ok {
		return
	}

	items, err := h.service.ListItems(c.Request.Context(), auth.UserID)
	if err != nil {
		logger.Error("Failed to list reading list", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to fetch reading list"})
		return
	}
	c.JSON(http.StatusOK, dto.ToReadingListResponse(items))
}

func (h *readingListHandler) Get(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	auth, ok := requireAuth(c)
	if !ok {
		return
	}
	bookID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	item, err := h.service.GetItem(c.Request.Context(), auth.UserID, bookID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Reading list item not found"})
			return
		}
		logger.Error("Failed to get reading list item", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to fetch reading list item"})
		return
	}
	c.JSON(http.StatusOK, dto.ToReadingListItemResponse(item))
}

func (h *readingListHandler) Create(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	auth, ok := requireAuth(c)
	if !ok {
		return
	}

	var req dto.CreateReadingListItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "book_title is required"})
		return
	}

	item, err := h.service.CreateItem(c.Request.Context(), auth.UserID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to create reading list item", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to create reading list item"})
		return
	}
	c.JSON(http.StatusCreated, dto.ToReadingListItemResponse(item))
}

func (h *readingListHandler) Update(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	auth, ok := requireAuth(c)
	if !ok {
		return
	}
	bookID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateReadingListItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
		return
	}

	item, err := h.service.UpdateItem(c.Request.Context(), auth.UserID, bookID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Reading list item not found"})
		default:
			logger.Error("Failed to update reading list item", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to update reading list item"})
		}
		return
	}
	c.JSON(http.StatusOK, dto.ToReadingListItemResponse(item))
}

func (h *readingListHandler) Delete(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	auth, ok := requireAuth(c)
	if !ok {
		return
	}
	bookID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteItem(c.Request.Context(), auth.UserID, bookID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Reading list item not found"})
			return
		}
		logger.Error("Failed to delete reading list item", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to delete reading list item"})
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Msg: "Reading list item deleted"})
}
