package services

import (
	"context"
	"time"

	"github.com/dayboard/dayboard_backend/internal/core/domain"
	portsrepo "github.com/dayboard/dayboard_backend/internal/core/ports/repositories"
	portssvc "github.com/dayboard/dayboard_backend/internal/core/ports/services"
	"github.com/dayboard/dayboard_backend/internal/dto"
)

// taskService implements TaskSvcFacade.
type taskService struct {
	repo portsrepo.TaskRepository
}

// NewTaskService creates a new taskService.
func NewTaskService(repo portsrepo.TaskRepository) portssvc.TaskSvcFacade {
	return &taskService{repo: repo}
}

func (s *taskService) ListTasks(ctx context.Context, userID int64) ([]domain.Task, error) {
	return s.repo.FindTasks(ctx, userID)
}

func (s *taskService) GetTask(ctx context.Context, userID, taskID int64) (*domain.Task, error) {
	return s.repo.FindTaskByID(ctx, userID, taskID)
}

func (s *taskService) CreateTask(ctx context.Context, userID int64, req dto.CreateTaskRequest) (*domain.Task, error) {
	status, err := domain.ParseReadingStatus(req.Status)
	if err != nil {
		return nil, err
	}
	task := domain.Task{
		TaskTitle: req.TaskTitle,
		Status:    status,
		CreatedAt: time.Now().UTC(),
		UserID:    userID,
	}
	return s.repo.SaveTask(ctx, task)
}

func (s *taskService) UpdateTask(ctx context.Context, userID, taskID int64, req dto.UpdateTaskRequest) (*domain.Task, error) {
	task, err := s.repo.FindTaskByID(ctx, userID, taskID)
	if err != nil {
		return nil, err
	}
	if req.TaskTitle != nil {
		task.TaskTitle = *req.TaskTitle
	}
	if req.Status != nil {
		status, err := domain.ParseReadingStatus(*req.Status)
		if err != nil {
			return nil, err
		}
		task.Status = status
	}
	if err := s.repo.UpdateTask(ctx, *task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *taskService) DeleteTask(ctx context.Context, userID, taskID int64) error {
	return s.repo.DeleteTask(ctx, userID, taskID)
}
