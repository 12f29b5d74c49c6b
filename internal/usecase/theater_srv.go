package usecase

import (
	"context"
	"fmt"

	"movie-catalog/internal/data/repository"
	"movie-catalog/internal/dto/response"
	"movie-catalog/pkg/utils"

	"go.uber.org/zap"
)

type TheaterService interface {
	// FindUpcomingMovies lists theatrical movies releasing after today,
	// soonest first.
	FindUpcomingMovies(ctx context.Context, today string) ([]response.MovieResponse, error)
	// FindReleasedMovies lists theatrical movies released on or before
	// today, newest first. Movies with no associated theater are excluded.
	FindReleasedMovies(ctx context.Context, today string) ([]response.MovieResponse, error)
	FindTheatricalMovieDetail(ctx context.Context, id int64) (*response.MovieDetailResponse, error)
}

type theaterService struct {
	repo   *repository.Repository
	paging utils.PagingConfig
	log    *zap.Logger
}

func NewTheaterService(repo *repository.Repository, paging utils.PagingConfig, log *zap.Logger) TheaterService {
	return &theaterService{
		repo:   repo,
		paging: paging,
		log:    log.With(zap.String("service", "theater")),
	}
}

func (s *theaterService) FindUpcomingMovies(ctx context.Context, today string) ([]response.MovieResponse, error) {
	movies, err := s.repo.Movie.FindUpcoming(ctx, today)
	if err != nil {
		return nil, fmt.Errorf("find upcoming movies: %w", err)
	}

	entries := make([]response.MovieResponse, len(movies))
	for i, movie := range movies {
		entries[i] = response.MovieToResponse(movie, "")
	}

	return entries, nil
}

func (s *theaterService) FindReleasedMovies(ctx context.Context, today string) ([]response.MovieResponse, error) {
	movies, err := s.repo.Movie.FindReleased(ctx, today)
	if err != nil {
		return nil, fmt.Errorf("find released movies: %w", err)
	}

	movieIDs := make([]int64, len(movies))
	for i, movie := range movies {
		movieIDs[i] = movie.ID
	}

	theatersByMovie, err := s.repo.Movie.FindTheatersByMovieIDs(ctx, movieIDs)
	if err != nil {
		return nil, fmt.Errorf("load movie theaters: %w", err)
	}

	// A released movie with no theater is not actually screening anywhere.
	entries := make([]response.MovieResponse, 0, len(movies))
	for _, movie := range movies {
		if len(theatersByMovie[movie.ID]) == 0 {
			continue
		}
		entries = append(entries, response.MovieToResponse(movie, ""))
	}

	return entries, nil
}

func (s *theaterService) FindTheatricalMovieDetail(ctx context.Context, id int64) (*response.MovieDetailResponse, error) {
	movie, err := s.repo.Movie.FindTheatricalByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find theatrical movie detail: %w", err)
	}
	if movie == nil {
		return nil, fmt.Errorf(msgTheatricalMovieNotFound+": %w", id, repository.ErrNotFound)
	}

	theaters, err := s.repo.Movie.FindTheatersByMovieID(ctx, movie.ID)
	if err != nil {
		return nil, fmt.Errorf("load movie theaters: %w", err)
	}

	theaterNames := make([]string, len(theaters))
	for i, theater := range theaters {
		theaterNames[i] = theater.Name
	}

	reviews, err := s.repo.Review.FindByMovieDbID(ctx, movie.TheMovieDbID, s.paging.DetailReviewLimit, 0)
	if err != nil {
		return nil, fmt.Errorf("load recent reviews: %w", err)
	}

	totalReviews, err := s.repo.Review.CountByMovieDbID(ctx, movie.TheMovieDbID)
	if err != nil {
		return nil, fmt.Errorf("count reviews: %w", err)
	}

	return &response.MovieDetailResponse{
		ID:           movie.ID,
		Title:        movie.Title,
		PosterPath:   movie.PosterPath,
		ReleaseDate:  movie.ReleaseDate,
		Overview:     movie.Overview,
		VoteAverage:  movie.VoteAverage,
		VoteCount:    movie.VoteCount,
		Providers:    theaterNames,
		TheMovieDbID: movie.TheMovieDbID,
		Reviews:      response.ReviewsToResponses(reviews),
		TotalReviews: totalReviews,
	}, nil
}
