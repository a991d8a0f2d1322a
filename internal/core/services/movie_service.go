package services

import (
	"context"
	"time"

	"github.com/dayboard/dayboard_backend/internal/core/domain"
	portsrepo "github.com/dayboard/dayboard_backend/internal/core/ports/repositories"
	portssvc "github.com/dayboard/dayboard_backend/internal/core/ports/services"
	"github.com/dayboard/dayboard_backend/internal/dto"
)

// movieListService implements MovieListSvcFacade.
type movieListService struct {
	repo portsrepo.MovieListRepository
}

// NewMovieListService creates a new movieListService.
func NewMovieListService(repo portsrepo.MovieListRepository) portssvc.MovieListSvcFacade {
	return &movieListService{repo: repo}
}

func (s *movieListService) ListMovies(ctx context.Context, userID int64) ([]domain.MovieListItem, error) {
	return s.repo.FindMovies(ctx, userID)
}

func (s *movieListService) GetMovie(ctx context.Context, userID, movieID int64) (*domain.MovieListItem, error) {
	return s.repo.FindMovieByID(ctx, userID, movieID)
}

func (s *movieListService) CreateMovie(ctx context.Context, userID int64, req dto.CreateMovieRequest) (*domain.MovieListItem, error) {
	status, err := domain.ParseWatchStatus(req.Status)
	if err != nil {
		return nil, err
	}
	movie := domain.MovieListItem{
		MovieTitle: req.MovieTitle,
		Status:     status,
		CreatedAt:  time.Now().UTC(),
		UserID:     userID,
	}
	return s.repo.SaveMovie(ctx, movie)
}

func (s *movieListService) UpdateMovie(ctx context.Context, userID, movieID int64, req dto.UpdateMovieRequest) (*domain.MovieListItem, error) {
	movie, err := s.repo.FindMovieByID(ctx, userID, movieID)
	if err != nil {
		return nil, err
	}
	if req.MovieTitle != nil {
		movie.MovieTitle = *req.MovieTitle
	}
	if req.Status != nil {
		status, err := domain.ParseWatchStatus(*req.Status)
		if err != nil {
			return nil, err
		}
		movie.Status = status
	}
	if err := s.repo.UpdateMovie(ctx, *movie); err != nil {
		return nil, err
	}
	return movie, nil
}

func (s *movieListService) DeleteMovie(ctx context.Context, userID, movieID int64) error {
	return s.repo.DeleteMovie(ctx, userID, movieID)
}
