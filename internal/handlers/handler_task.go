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

// taskHandler handles daily task CRUD for the signed-in user.
type taskHandler struct {
	service portssvc.TaskSvcFacade
}

func newTaskHandler(s portssvc.TaskSvcFacade) *taskHandler {
	return &taskHandler{service: s}
}

func registerTaskRoutes(rg *gin.RouterGroup, service portssvc.TaskSvcFacade) {
	h := newTaskHandler(service)
	rg.GET("/tasks", h.List)
	rg.POST("/create_task", h.Create)
	rg.GET("/get_task/:id", h.Get)
	rg.PUT("/update_task/:id", h.Update)
	rg.DELETE("/get_task/:id", h.Delete)
}

func (h *taskHandler) List(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	auth, ok := requireAuth(c)
	if !ok {
		return
	}

	tasks, err := h.service.ListTasks(c.Request.Context(), auth.UserID)
	if err != nil {
		logger.Error("Failed to list tasks", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to fetch tasks"})
		return
	}
	c.JSON(http.StatusOK, dto.ToTaskListResponse(tasks))
}

func (h *taskHandler) Get(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	auth, ok := requireAuth(c)
	if !ok {
		return
	}
	taskID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	task, err := h.service.GetTask(c.Request.Context(), auth.UserID, taskID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Task not found"})
			return
		}
		logger.Error("Failed to get task", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to fetch task"})
		return
	}
	c.JSON(http.StatusOK, dto.ToTaskResponse(task))
}

func (h *taskHandler) Create(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	auth, ok := requireAuth(c)
	if !ok {
		return
	}

	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "task_title is required"})
		return
	}

	task, err := h.service.CreateTask(c.Request.Context(), auth.UserID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to create task", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to create task"})
		return
	}
	c.JSON(http.StatusCreated, dto.ToTaskResponse(task))
}

func (h *taskHandler) Update(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	auth, ok := requireAuth(c)
	if !ok {
		return
	}
	taskID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
		return
	}

	task, err := h.service.UpdateTask(c.Request.Context(), auth.UserID, taskID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Task not found"})
		default:
			logger.Error("Failed to update task", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to update task"})
		}
		return
	}
	c.JSON(http.StatusOK, dto.ToTaskResponse(task))
}

func (h *taskHandler) Delete(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	auth, ok := requireAuth(c)
	if !ok {
		return
	}
	taskID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteTask(c.Request.Context(), auth.UserID, taskID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Task not found"})
			return
		}
		logger.Error("Failed to delete task", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to delete task"})
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Msg: "Task deleted"})
}
