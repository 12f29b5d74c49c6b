package repository

import (
	"context"
	"fmt"
	"strings"

	"movie-catalog/internal/data/entity"
	"movie-catalog/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type MovieRepository interface {
	// Streaming listing
	FindStreamingMovies(ctx context.Context, providerID int, search string, limit, offset int) ([]*entity.Movie, error)
	CountStreamingMovies(ctx context.Context, providerID int, search string) (int64, error)
	FindByProviderID(ctx context.Context, providerID int) ([]*entity.Movie, error)

	// Detail lookups
	FindByID(ctx context.Context, id int64) (*entity.Movie, error)
	FindTheatricalByID(ctx context.Context, id int64) (*entity.Movie, error)
	FindByTheMovieDbIDs(ctx context.Context, theMovieDbIDs []int64) ([]*entity.Movie, error)

	// Theatrical listings
	FindUpcoming(ctx context.Context, today string) ([]*entity.Movie, error)
	FindReleased(ctx context.Context, today string) ([]*entity.Movie, error)

	// Relations
	FindProvidersByMovieID(ctx context.Context, movieID int64) ([]*entity.MovieProvider, error)
	FindProvidersByMovieIDs(ctx context.Context, movieIDs []int64) (map[int64][]*entity.MovieProvider, error)
	FindTheatersByMovieID(ctx context.Context, movieID int64) ([]*entity.Theater, error)
	FindTheatersByMovieIDs(ctx context.Context, movieIDs []int64) (map[int64][]*entity.Theater, error)
}

type movieRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMovieRepository(db database.PgxIface, log *zap.Logger) MovieRepository {
	return &movieRepository{
		db:  db,
		log: log.With(zap.String("repository", "movie")),
	}
}

const movieColumns = `m.id, m.title, m.release_date, m.poster_path, m.overview,
	       m.vote_average, m.vote_count, m.the_movie_db_id, m.is_theatrical_release`

func scanMovie(row pgx.Row) (*entity.Movie, error) {
	var movie entity.Movie
	err := row.Scan(
		&movie.ID,
		&movie.Title,
		&movie.ReleaseDate,
		&movie.PosterPath,
		&movie.Overview,
		&movie.VoteAverage,
		&movie.VoteCount,
		&movie.TheMovieDbID,
		&movie.IsTheatricalRelease,
	)
	if err != nil {
		return nil, err
	}
	return &movie, nil
}

func (r *movieRepository) collectMovies(rows pgx.Rows) ([]*entity.Movie, error) {
	defer rows.Close()

	var movies []*entity.Movie
	for rows.Next() {
		movie, err := scanMovie(rows)
		if err != nil {
			r.log.Error("Failed to scan movie row", zap.Error(err))
			return nil, fmt.Errorf("scan movie row: %w", err)
		}
		movies = append(movies, movie)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate movie rows: %w", err)
	}

	return movies, nil
}

func (r *movieRepository) FindStreamingMovies(ctx context.Context, providerID int, search string, limit, offset int) ([]*entity.Movie, error) {
	// Build query with optional provider/search filters
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`
		SELECT DISTINCT ` + movieColumns + `
		FROM movie m
		INNER JOIN movie_providers mp ON mp.movie_id = m.id
		WHERE m.is_theatrical_release = FALSE
	`)

	args := []interface{}{}
	argCount := 1

	if providerID != 0 {
		queryBuilder.WriteString(fmt.Sprintf(" AND mp.the_provider_id = $%d", argCount))
		args = append(args, providerID)
		argCount++
	}

	if search != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND m.title ILIKE '%%' || $%d || '%%'", argCount))
		args = append(args, search)
		argCount++
	}

	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY m.release_date DESC LIMIT $%d OFFSET $%d", argCount, argCount+1))
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		r.log.Error("Failed to find streaming movies",
			zap.Error(err),
			zap.Int("provider_id", providerID),
			zap.String("search", search),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find streaming movies: %w", err)
	}

	return r.collectMovies(rows)
}

func (r *movieRepository) CountStreamingMovies(ctx context.Context, providerID int, search string) (int64, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`
		SELECT COUNT(DISTINCT m.id)
		FROM movie m
		INNER JOIN movie_providers mp ON mp.movie_id = m.id
		WHERE m.is_theatrical_release = FALSE
	`)

	args := []interface{}{}
	argCount := 1

	if providerID != 0 {
		queryBuilder.WriteString(fmt.Sprintf(" AND mp.the_provider_id = $%d", argCount))
		args = append(args, providerID)
		argCount++
	}

	if search != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND m.title ILIKE '%%' || $%d || '%%'", argCount))
		args = append(args, search)
	}

	var total int64
	err := r.db.QueryRow(ctx, queryBuilder.String(), args...).Scan(&total)
	if err != nil {
		r.log.Error("Failed to count streaming movies",
			zap.Error(err),
			zap.Int("provider_id", providerID),
			zap.String("search", search),
		)
		return 0, fmt.Errorf("count streaming movies: %w", err)
	}

	return total, nil
}

func (r *movieRepository) FindByProviderID(ctx context.Context, providerID int) ([]*entity.Movie, error) {
	query := `
		SELECT DISTINCT ` + movieColumns + `
		FROM movie m
		INNER JOIN movie_providers mp ON mp.movie_id = m.id
		WHERE m.is_theatrical_release = FALSE AND mp.the_provider_id = $1
		ORDER BY m.release_date DESC
	`

	rows, err := r.db.Query(ctx, query, providerID)
	if err != nil {
		r.log.Error("Failed to find movies by provider",
			zap.Error(err),
			zap.Int("provider_id", providerID),
		)
		return nil, fmt.Errorf("find movies by provider %d: %w", providerID, err)
	}

	return r.collectMovies(rows)
}

func (r *movieRepository) FindByID(ctx context.Context, id int64) (*entity.Movie, error) {
	query := `
		SELECT ` + movieColumns + `
		FROM movie m
		WHERE m.id = $1
	`

	movie, err := scanMovie(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find movie by ID",
			zap.Error(err),
			zap.Int64("movie_id", id),
		)
		return nil, fmt.Errorf("find movie %d: %w", id, err)
	}

	return movie, nil
}

func (r *movieRepository) FindTheatricalByID(ctx context.Context, id int64) (*entity.Movie, error) {
	query := `
		SELECT ` + movieColumns + `
		FROM movie m
		WHERE m.id = $1 AND m.is_theatrical_release = TRUE
	`

	movie, err := scanMovie(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find theatrical movie by ID",
			zap.Error(err),
			zap.Int64("movie_id", id),
		)
		return nil, fmt.Errorf("find theatrical movie %d: %w", id, err)
	}

	return movie, nil
}

func (r *movieRepository) FindByTheMovieDbIDs(ctx context.Context, theMovieDbIDs []int64) ([]*entity.Movie, error) {
	if len(theMovieDbIDs) == 0 {
		return nil, nil
	}

	query := `
		SELECT ` + movieColumns + `
		FROM movie m
		WHERE m.the_movie_db_id = ANY($1)
	`

	rows, err := r.db.Query(ctx, query, theMovieDbIDs)
	if err != nil {
		r.log.Error("Failed to find movies by the_movie_db_ids",
			zap.Error(err),
			zap.Int("id_count", len(theMovieDbIDs)),
		)
		return nil, fmt.Errorf("find movies by external ids: %w", err)
	}

	return r.collectMovies(rows)
}

func (r *movieRepository) FindUpcoming(ctx context.Context, today string) ([]*entity.Movie, error) {
	query := `
		SELECT ` + movieColumns + `
		FROM movie m
		WHERE m.is_theatrical_release = TRUE AND m.release_date > $1
		ORDER BY m.release_date ASC
	`

	rows, err := r.db.Query(ctx, query, today)
	if err != nil {
		r.log.Error("Failed to find upcoming movies",
			zap.Error(err),
			zap.String("today", today),
		)
		return nil, fmt.Errorf("find upcoming movies: %w", err)
	}

	return r.collectMovies(rows)
}

func (r *movieRepository) FindReleased(ctx context.Context, today string) ([]*entity.Movie, error) {
	query := `
		SELECT ` + movieColumns + `
		FROM movie m
		WHERE m.is_theatrical_release = TRUE AND m.release_date <= $1
		ORDER BY m.release_date DESC
	`

	rows, err := r.db.Query(ctx, query, today)
	if err != nil {
		r.log.Error("Failed to find released movies",
			zap.Error(err),
			zap.String("today", today),
		)
		return nil, fmt.Errorf("find released movies: %w", err)
	}

	return r.collectMovies(rows)
}

func (r *movieRepository) FindProvidersByMovieID(ctx context.Context, movieID int64) ([]*entity.MovieProvider, error) {
	providersByMovie, err := r.FindProvidersByMovieIDs(ctx, []int64{movieID})
	if err != nil {
		return nil, err
	}
	return providersByMovie[movieID], nil
}

func (r *movieRepository) FindProvidersByMovieIDs(ctx context.Context, movieIDs []int64) (map[int64][]*entity.MovieProvider, error) {
	providersByMovie := make(map[int64][]*entity.MovieProvider)
	if len(movieIDs) == 0 {
		return providersByMovie, nil
	}

	query := `
		SELECT id, movie_id, the_provider_id
		FROM movie_providers
		WHERE movie_id = ANY($1)
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query, movieIDs)
	if err != nil {
		r.log.Error("Failed to find movie providers",
			zap.Error(err),
			zap.Int("movie_count", len(movieIDs)),
		)
		return nil, fmt.Errorf("find movie providers: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var provider entity.MovieProvider
		if err := rows.Scan(&provider.ID, &provider.MovieID, &provider.TheProviderID); err != nil {
			r.log.Error("Failed to scan movie provider row", zap.Error(err))
			return nil, fmt.Errorf("scan movie provider row: %w", err)
		}
		providersByMovie[provider.MovieID] = append(providersByMovie[provider.MovieID], &provider)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate movie provider rows: %w", err)
	}

	return providersByMovie, nil
}

func (r *movieRepository) FindTheatersByMovieID(ctx context.Context, movieID int64) ([]*entity.Theater, error) {
	query := `
		SELECT t.id, t.name
		FROM theaters t
		INNER JOIN movie_theaters mt ON mt.theaters_id = t.id
		WHERE mt.movie_id = $1
		ORDER BY t.name
	`

	rows, err := r.db.Query(ctx, query, movieID)
	if err != nil {
		r.log.Error("Failed to find theaters by movie ID",
			zap.Error(err),
			zap.Int64("movie_id", movieID),
		)
		return nil, fmt.Errorf("find theaters for movie %d: %w", movieID, err)
	}
	defer rows.Close()

	var theaters []*entity.Theater
	for rows.Next() {
		var theater entity.Theater
		if err := rows.Scan(&theater.ID, &theater.Name); err != nil {
			r.log.Error("Failed to scan theater row", zap.Error(err))
			return nil, fmt.Errorf("scan theater row: %w", err)
		}
		theaters = append(theaters, &theater)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate theater rows: %w", err)
	}

	return theaters, nil
}

func (r *movieRepository) FindTheatersByMovieIDs(ctx context.Context, movieIDs []int64) (map[int64][]*entity.Theater, error) {
	theatersByMovie := make(map[int64][]*entity.Theater)
	if len(movieIDs) == 0 {
		return theatersByMovie, nil
	}

	query := `
		SELECT mt.movie_id, t.id, t.name
		FROM theaters t
		INNER JOIN movie_theaters mt ON mt.theaters_id = t.id
		WHERE mt.movie_id = ANY($1)
		ORDER BY t.name
	`

	rows, err := r.db.Query(ctx, query, movieIDs)
	if err != nil {
		r.log.Error("Failed to find theaters by movie IDs",
			zap.Error(err),
			zap.Int("movie_count", len(movieIDs)),
		)
		return nil, fmt.Errorf("find theaters for movies: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var movieID int64
		var theater entity.Theater
		if err := rows.Scan(&movieID, &theater.ID, &theater.Name); err != nil {
			r.log.Error("Failed to scan theater row", zap.Error(err))
			return nil, fmt.Errorf("scan theater row: %w", err)
		}
		theatersByMovie[movieID] = append(theatersByMovie[movieID], &theater)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate theater rows: %w", err)
	}

	return theatersByMovie, nil
}
