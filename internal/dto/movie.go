package dto

import (
	"time"

	"github.com/dayboard/dayboard_backend/internal/core/domain"
)

// CreateMovieRequest adds a movie to the watch list.
type CreateMovieRequest struct {
	MovieTitle string `json:"movie_title" binding:"required"`
	Status     string `json:"status"`
}

// UpdateMovieRequest updates a movie's title or watch status.
type UpdateMovieRequest struct {
	MovieTitle *string `json:"movie_title"`
	Status     *string `json:"status"`
}

// MovieResponse mirrors the movie_list row shape.
type MovieResponse struct {
	MovieID    int64     `json:"movie_id"`
	MovieTitle string    `json:"movie_title"`
	Status     *string   `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UserID     int64     `json:"user_id"`
}

// ToMovieResponse converts a domain movie to its response DTO.
func ToMovieResponse(movie *domain.MovieListItem) MovieResponse {
	return MovieResponse{
		MovieID:    movie.MovieID,
		MovieTitle: movie.MovieTitle,
		Status:     statusString(movie.Status),
		CreatedAt:  movie.CreatedAt,
		UserID:     movie.UserID,
	}
}

// ToMovieListResponse converts a slice of domain movies.
func ToMovieListResponse(movies []domain.MovieListItem) []MovieResponse {
	out := make([]MovieResponse, len(movies))
	for i := range movies {
		out[i] = ToMovieResponse(&movies[i])
	}
	return out
}
