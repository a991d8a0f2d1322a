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

// movieHandler handles movie watch list CRUD for the signed-in user.
type movieHandler struct {
	service portssvc.MovieListSvcFacade
}

func newMovieHandler(s portssvc.MovieListSvcFacade) *movieHandler {
	return &movieHandler{service: s}
}

func registerMovieRoutes(rg *gin.RouterGroup, service portssvc.MovieListSvcFacade) {
	h := newMovieHandler(service)
	rg.GET("/movie-list", h.List)
	rg.POST("/create_movie", h.Create)
	rg.GET("/get_movie/:id", h.Get)
	rg.PUT("/update_movie/:id", h.Update)
	rg.DELETE("/get_movie/:id", h.Delete)
}

func (h *movieHandler) List(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	auth, ok := requireAuth(c)
	if !ok {
		return
	}

	movies, err := h.service.ListMovies(c.Request.Context(), auth.UserID)
	if err != nil {
		logger.Error("Failed to list movies", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to fetch movie list"})
		return
	}
	c.JSON(http.StatusOK, dto.ToMovieListResponse(movies))
}

func (h *movieHandler) Get(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	auth, ok := requireAuth(c)
	if !ok {
		return
	}
	movieID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	movie, err := h.service.GetMovie(c.Request.Context(), auth.UserID, movieID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Movie not found"})
			return
		}
		logger.Error("Failed to get movie", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to fetch movie"})
		return
	}
	c.JSON(http.StatusOK, dto.ToMovieResponse(movie))
}

func (h *movieHandler) Create(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	auth, ok := requireAuth(c)
	if !ok {
		return
	}

	var req dto.CreateMovieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "movie_title is required"})
		return
	}

	movie, err := h.service.CreateMovie(c.Request.Context(), auth.UserID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to create movie", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to create movie"})
		return
	}
	c.JSON(http.StatusCreated, dto.ToMovieResponse(movie))
}

func (h *movieHandler) Update(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	auth, ok := requireAuth(c)
	if !ok {
		return
	}
	movieID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateMovieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
		return
	}

	movie, err := h.service.UpdateMovie(c.Request.Context(), auth.UserID, movieID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Movie not found"})
		default:
			logger.Error("Failed to update movie", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to update movie"})
		}
		return
	}
	c.JSON(http.StatusOK, dto.ToMovieResponse(movie))
}

func (h *movieHandler) Delete(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	auth, ok := requireAuth(c)
	if !ok {
		return
	}
	movieID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteMovie(c.Request.Context(), auth.UserID, movieID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Movie not found"})
			return
		}
		logger.Error("Failed to delete movie", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to delete movie"})
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Msg: "Movie deleted"})
}
