package repositories

import (
	"context"

	"github.com/dayboard/dayboard_backend/internal/core/domain"
)

// Every read, update and delete below filters by the owning user id. A row
// that exists but belongs to someone else is reported as ErrNotFound.

// ReadingListRepository defines persistence operations for reading list items.
type ReadingListRepository interface {
	SaveItem(ctx context.Context, item domain.ReadingListItem) (*domain.ReadingListItem, error)
	FindItems(ctx context.Context, userID int64) ([]domain.ReadingListItem, error)
	FindItemByID(ctx context.Context, userID, bookID int64) (*domain.ReadingListItem, error)
	UpdateItem(ctx context.Context, item domain.ReadingListItem) error
	DeleteItem(ctx context.Context, userID, bookID int64) error
}

// TaskRepository defines persistence operations for daily tasks.
type TaskRepository interface {
	SaveTask(ctx context.Context, task domain.Task) (*domain.Task, error)
	FindTasks(ctx context.Context, userID int64) ([]domain.Task, error)
	FindTaskByID(ctx context.Context, userID, taskID int64) (*domain.Task, error)
	UpdateTask(ctx context.Context, task domain.Task) error
	DeleteTask(ctx context.Context, userID, taskID int64) error
}

// MovieListRepository defines persistence operations for the movie watch list.
type MovieListRepository interface {
	SaveMovie(ctx context.Context, movie domain.MovieListItem) (*domain.MovieListItem, error)
	FindMovies(ctx context.Context, userID int64) ([]domain.MovieListItem, error)
	FindMovieByID(ctx context.Context, userID, movieID int64) (*domain.MovieListItem, error)
	UpdateMovie(ctx context.Context, movie domain.MovieListItem) error
	DeleteMovie(ctx context.Context, userID, movieID int64) error
}

// QuickNoteRepository defines persistence operations for quick notes.
type QuickNoteRepository interface {
	SaveNote(ctx context.Context, note domain.QuickNote) (*domain.QuickNote, error)
	FindNotes(ctx context.Context, userID int64) ([]domain.QuickNote, error)
	FindNoteByID(ctx context.Context, userID, noteID int64) (*domain.QuickNote, error)
	UpdateNote(ctx context.Context, note domain.QuickNote) error
	DeleteNote(ctx context.Context, userID, noteID int64) error
}
