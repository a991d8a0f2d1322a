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

// quickNoteHandler handles quick note CRUD for the signed-in user.
type quickNoteHandler struct {
	service portssvc.QuickNoteSvcFacade
}

func newQuickNoteHandler(s portssvc.QuickNoteSvcFacade) *quickNoteHandler {
	return &quickNoteHandler{service: s}
}

func registerQuickNoteRoutes(rg *gin.RouterGroup, service portssvc.QuickNoteSvcFacade) {
	h := newQuickNoteHandler(service)
	rg.GET("/quicknotes", h.List)
	rg.POST("/create_quicknote", h.Create)
	rg.GET("/get_quicknote/:id", h.Get)
	rg.PUT("/update_quicknote/:id", h.Update)
	rg.DELETE("/get_quicknote/:id", h.Delete)
}

func (h *quickNoteHandler) List(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	auth, ok := requireAuth(c)
	if !ok {
		return
	}

	notes, err := h.service.ListNotes(c.Request.Context(), auth.UserID)
	if err != nil {
		logger.Error("Failed to list quick notes", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to fetch quick notes"})
		return
	}
	c.JSON(http.StatusOK, dto.ToQuickNoteListResponse(notes))
}

func (h *quickNoteHandler) Get(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	auth, ok := requireAuth(c)
	if !ok {
		return
	}
	noteID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	note, err := h.service.GetNote(c.Request.Context(), auth.UserID, noteID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Quick note not found"})
			return
		}
		logger.Error("Failed to get quick note", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to fetch quick note"})
		return
	}
	c.JSON(http.StatusOK, dto.ToQuickNoteResponse(note))
}

func (h *quickNoteHandler) Create(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	auth, ok := requireAuth(c)
	if !ok {
		return
	}

	var req dto.CreateQuickNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "note_content is required"})
		return
	}

	note, err := h.service.CreateNote(c.Request.Context(), auth.UserID, req)
	if err != nil {
		logger.Error("Failed to create quick note", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to create quick note"})
		return
	}
	c.JSON(http.StatusCreated, dto.ToQuickNoteResponse(note))
}

func (h *quickNoteHandler) Update(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	auth, ok := requireAuth(c)
	if !ok {
		return
	}
	noteID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateQuickNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
		return
	}

	note, err := h.service.UpdateNote(c.Request.Context(), auth.UserID, noteID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Quick note not found"})
			return
		}
		logger.Error("Failed to update quick note", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to update quick note"})
		return
	}
	c.JSON(http.StatusOK, dto.ToQuickNoteResponse(note))
}

func (h *quickNoteHandler) Delete(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	auth, ok := requireAuth(c)
	if !ok {
		return
	}
	noteID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteNote(c.Request.Context(), auth.UserID, noteID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Quick note not found"})
			return
		}
		logger.Error("Failed to delete quick note", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to delete quick note"})
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Msg: "Quick note deleted"})
}
