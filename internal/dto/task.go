package dto

import (
	"time"

	"github.com/dayboard/dayboard_backend/internal/core/domain"
)

// CreateTaskRequest adds an entry to the daily task list.
type CreateTaskRequest struct {
	TaskTitle string `json:"task_title" binding:"required,max=100"`
	Status    string `json:"status"`
}

// UpdateTaskRequest updates a task's title or status.
type UpdateTaskRequest struct {
	TaskTitle *string `json:"task_title"`
	Status    *string `json:"status"`
}

// TaskResponse mirrors the daily_tasks_list row shape.
type TaskResponse struct {
	TaskID    int64     `json:"task_id"`
	TaskTitle string    `json:"task_title"`
	Status    *string   `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UserID    int64     `json:"user_id"`
}

// ToTaskResponse converts a domain task to its response DTO.
func ToTaskResponse(task *domain.Task) TaskResponse {
	return TaskResponse{
		TaskID:    task.TaskID,
		TaskTitle: task.TaskTitle,
		Status:    statusString(task.Status),
		CreatedAt: task.CreatedAt,
		UserID:    task.UserID,
	}
}

// ToTaskListResponse converts a slice of domain tasks.
func ToTaskListResponse(tasks []domain.Task) []TaskResponse {
	out := make([]TaskResponse, len(tasks))
	for i := range tasks {
		out[i] = ToTaskResponse(&tasks[i])
	}
	return out
}
