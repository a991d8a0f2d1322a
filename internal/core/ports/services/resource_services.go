package services

import (
	"context"

	"github.com/dayboard/dayboard_backend/internal/core/domain"
	"github.com/dayboard/dayboard_backend/internal/dto"
)

// The resource facades are all scoped by the caller's user id taken from the
// request's AuthContext; no operation can reach another user's rows.

// ReadingListSvcFacade manages a user's reading list.
type ReadingListSvcFacade interface {
	ListItems(ctx context.Context, userID int64) ([]domain.ReadingListItem, error)
	GetItem(ctx context.Context, userID, bookID int64) (*domain.ReadingListItem, error)
	CreateItem(ctx context.Context, userID int64, req dto.CreateReadingListItemRequest) (*domain.ReadingListItem, error)
	UpdateItem(ctx context.Context, userID, bookID int64, req dto.UpdateReadingListItemRequest) (*domain.ReadingListItem, error)
	DeleteItem(ctx context.Context, userID, bookID int64) error
}

// TaskSvcFacade manages a user's daily task list.
type TaskSvcFacade interface {
	ListTasks(ctx context.Context, userID int64) ([]domain.Task, error)
	GetTask(ctx context.Context, userID, taskID int64) (*domain.Task, error)
	CreateTask(ctx context.Context, userID int64, req dto.CreateTaskRequest) (*domain.Task, error)
	UpdateTask(ctx context.Context, userID, taskID int64, req dto.UpdateTaskRequest) (*domain.Task, error)
	DeleteTask(ctx context.Context, userID, taskID int64) error
}

// MovieListSvcFacade manages a user's movie watch list.
type MovieListSvcFacade interface {
	ListMovies(ctx context.Context, userID int64) ([]domain.MovieListItem, error)
	GetMovie(ctx context.Context, userID, movieID int64) (*domain.MovieListItem, error)
	CreateMovie(ctx context.Context, userID int64, req dto.CreateMovieRequest) (*domain.MovieListItem, error)
	UpdateMovie(ctx context.Context, userID, movieID int64, req dto.UpdateMovieRequest) (*domain.MovieListItem, error)
	DeleteMovie(ctx context.Context, userID, movieID int64) error
}

// QuickNoteSvcFacade manages a user's quick notes.
type QuickNoteSvcFacade interface {
	ListNotes(ctx context.Context, userID int64) ([]domain.QuickNote, error)
	GetNote(ctx context.Context, userID, noteID int64) (*domain.QuickNote, error)
	CreateNote(ctx context.Context, userID int64, req dto.CreateQuickNoteRequest) (*domain.QuickNote, error)
	UpdateNote(ctx context.Context, userID, noteID int64, req dto.UpdateQuickNoteRequest) (*domain.QuickNote, error)
	DeleteNote(ctx context.Context, userID, noteID int64) error
}
