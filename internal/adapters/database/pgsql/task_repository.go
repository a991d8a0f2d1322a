package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/dayboard/dayboard_backend/internal/apperrors"
	"github.com/dayboard/dayboard_backend/internal/core/domain"
	portsrepo "github.com/dayboard/dayboard_backend/internal/core/ports/repositories"
	"github.com/dayboard/dayboard_backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxTaskRepository struct {
	db *pgxpool.Pool
}

// NewTaskRepository creates a pgx-backed task repository.
func NewTaskRepository(db *pgxpool.Pool) portsrepo.TaskRepository {
	return &PgxTaskRepository{db: db}
}

var _ portsrepo.TaskRepository = (*PgxTaskRepository)(nil)

func toDomainTask(m models.Task) domain.Task {
	return domain.Task{
		TaskID:    m.TaskID,
		TaskTitle: m.TaskTitle,
		Status:    statusToDomain(m.Status),
		CreatedAt: m.CreatedAt,
		UserID:    m.UserID,
	}
}

func (r *PgxTaskRepository) SaveTask(ctx context.Context, task domain.Task) (*domain.Task, error) {
	query := `
        INSERT INTO daily_tasks_list (task_title, status, created_at, user_id)
        VALUES ($1, $2, $3, $4)
        RETURNING task_id;
    `
	err := r.db.QueryRow(ctx, query, task.TaskTitle, statusToModel(task.Status), task.CreatedAt, task.UserID).Scan(&task.TaskID)
	if err != nil {
		return nil, fmt.Errorf("failed to save task: %w", err)
	}
	return &task, nil
}

func (r *PgxTaskRepository) FindTasks(ctx context.Context, userID int64) ([]domain.Task, error) {
	query := `
        SELECT task_id, task_title, status, created_at, user_id
        FROM daily_tasks_list
        WHERE user_id = $1
        ORDER BY created_at DESC;
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks: %w", err)
	}
	defer rows.Close()

	tasks := []domain.Task{}
	for rows.Next() {
		var m models.Task
		if err := rows.Scan(&m.TaskID, &m.TaskTitle, &m.Status, &m.CreatedAt, &m.UserID); err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, toDomainTask(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating task rows: %w", err)
	}
	return tasks, nil
}

func (r *PgxTaskRepository) FindTaskByID(ctx context.Context, userID, taskID int64) (*domain.Task, error) {
	query := `
        SELECT task_id, task_title, status, created_at, user_id
        FROM daily_tasks_list
        WHERE task_id = $1 AND user_id = $2;
    `
	var m models.Task
	err := r.db.QueryRow(ctx, query, taskID, userID).Scan(&m.TaskID, &m.TaskTitle, &m.Status, &m.CreatedAt, &m.UserID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find task %d: %w", taskID, err)
	}
	task := toDomainTask(m)
	return &task, nil
}

func (r *PgxTaskRepository) UpdateTask(ctx context.Context, task domain.Task) error {
	query := `
        UPDATE daily_tasks_list
        SET task_title = $1, status = $2
        WHERE task_id = $3 AND user_id = $4;
    `
	tag, err := r.db.Exec(ctx, query, task.TaskTitle, statusToModel(task.Status), task.TaskID, task.UserID)
	if err != nil {
		return fmt.Errorf("failed to update task %d: %w", task.TaskID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxTaskRepository) DeleteTask(ctx context.Context, userID, taskID int64) error {
	query := `DELETE FROM daily_tasks_list WHERE task_id = $1 AND user_id = $2;`
	tag, err := r.db.Exec(ctx, query, taskID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete task %d: %w", taskID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
