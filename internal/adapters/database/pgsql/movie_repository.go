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

type PgxMovieListRepository struct {
	db *pgxpool.Pool
}

// NewMovieListRepository creates a pgx-backed movie list repository.
func NewMovieListRepository(db *pgxpool.Pool) portsrepo.MovieListRepository {
	return &PgxMovieListRepository{db: db}
}

var _ portsrepo.MovieListRepository = (*PgxMovieListRepository)(nil)

func toDomainMovie(m models.MovieListItem) domain.MovieListItem {
	return domain.MovieListItem{
		MovieID:    m.MovieID,
		MovieTitle: m.MovieTitle,
		Status:     statusToDomain(m.Status),
		CreatedAt:  m.CreatedAt,
		UserID:     m.UserID,
	}
}

func (r *PgxMovieListRepository) SaveMovie(ctx context.Context, movie domain.MovieListItem) (*domain.MovieListItem, error) {
	query := `
        INSERT INTO movie_list (movie_title, status, created_at, user_id)
        VALUES ($1, $2, $3, $4)
        RETURNING movie_id;
    `
	err := r.db.QueryRow(ctx, query, movie.MovieTitle, statusToModel(movie.Status), movie.CreatedAt, movie.UserID).Scan(&movie.MovieID)
	if err != nil {
		return nil, fmt.Errorf("failed to save movie: %w", err)
	}
	return &movie, nil
}

func (r *PgxMovieListRepository) FindMovies(ctx context.Context, userID int64) ([]domain.MovieListItem, error) {
	query := `
        SELECT movie_id, movie_title, status, created_at, user_id
        FROM movie_list
        WHERE user_id = $1
        ORDER BY created_at DESC;
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query movie list: %w", err)
	}
	defer rows.Close()

	movies := []domain.MovieListItem{}
	for rows.Next() {
		var m models.MovieListItem
		if err := rows.Scan(&m.MovieID, &m.MovieTitle, &m.Status, &m.CreatedAt, &m.UserID); err != nil {
			return nil, fmt.Errorf("failed to scan movie: %w", err)
		}
		movies = append(movies, toDomainMovie(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating movie rows: %w", err)
	}
	return movies, nil
}

func (r *PgxMovieListRepository) FindMovieByID(ctx context.Context, userID, movieID int64) (*domain.MovieListItem, error) {
	query := `
        SELECT movie_id, movie_title, status, created_at, user_id
        FROM movie_list
        WHERE movie_id = $1 AND user_id = $2;
    `
	var m models.MovieListItem
	err := r.db.QueryRow(ctx, query, movieID, userID).Scan(&m.MovieID, &m.MovieTitle, &m.Status, &m.CreatedAt, &m.UserID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find movie %d: %w", movieID, err)
	}
	movie := toDomainMovie(m)
	return &movie, nil
}

func (r *PgxMovieListRepository) UpdateMovie(ctx context.Context, movie domain.MovieListItem) error {
	query := `
        UPDATE movie_list
        SET movie_title = $1, status = $2
        WHERE movie_id = $3 AND user_id = $4;
    `
	tag, err := r.db.Exec(ctx, query, movie.MovieTitle, statusToModel(movie.Status), movie.MovieID, movie.UserID)
	if err != nil {
		return fmt.Errorf("failed to update movie %d: %w", movie.MovieID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxMovieListRepository) DeleteMovie(ctx context.Context, userID, movieID int64) error {
	query := `DELETE FROM movie_list WHERE movie_id = $1 AND user_id = $2;`
	tag, err := r.db.Exec(ctx, query, movieID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete movie %d: %w", movieID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
