package usecase

import (
	"context"
	"fmt"
	"time"

	"movie-catalog/internal/data/entity"
	"movie-catalog/internal/data/repository"
	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/dto/response"
	"movie-catalog/pkg/utils"

	"go.uber.org/zap"
)

// User-facing not-found messages, formatted with the requested id.
const (
	msgMovieNotFound           = "영화 ID %d를 찾을 수 없습니다"
	msgStreamingMovieNotFound  = "스트리밍 영화 ID %d를 찾을 수 없습니다"
	msgTheatricalMovieNotFound = "극장 개봉 영화 ID %d를 찾을 수 없습니다"
	msgExpiringMovieNotFound   = "만료 예정인 영화 ID %d를 찾을 수 없습니다"
)

const dateLayout = "2006-01-02"

type MovieService interface {
	GetStreamingMovies(ctx context.Context, query *request.StreamingQuery) (*response.StreamingPageResponse, error)
	GetStreamingMovieDetail(ctx context.Context, id int64) (*response.MovieDetailResponse, error)
	GetProviderMovies(ctx context.Context, providerID int) ([]response.MovieResponse, error)
	GetExpiringHorrorMovies(ctx context.Context, today time.Time) ([]response.ExpiringMovieResponse, error)
	GetExpiringHorrorMovieDetail(ctx context.Context, id int64) (*response.ExpiringMovieDetailResponse, error)
	GetMovieReviews(ctx context.Context, movieID int64, page int) (*response.ReviewPageResponse, error)
}

type movieService struct {
	repo   *repository.Repository
	paging utils.PagingConfig
	log    *zap.Logger
}

func NewMovieService(repo *repository.Repository, paging utils.PagingConfig, log *zap.Logger) MovieService {
	return &movieService{
		repo:   repo,
		paging: paging,
		log:    log.With(zap.String("service", "movie")),
	}
}

func (s *movieService) GetStreamingMovies(ctx context.Context, query *request.StreamingQuery) (*response.StreamingPageResponse, error) {
	page := utils.ClampPage(query.Page)
	providerID := entity.ProviderIDFromSlug(query.Provider)
	pageSize := s.paging.MoviePageSize
	offset := utils.CalculateOffset(page, pageSize)

	movies, err := s.repo.Movie.FindStreamingMovies(ctx, providerID, query.Search, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("get streaming movies: %w", err)
	}

	total, err := s.repo.Movie.CountStreamingMovies(ctx, providerID, query.Search)
	if err != nil {
		return nil, fmt.Errorf("count streaming movies: %w", err)
	}

	movieIDs := make([]int64, len(movies))
	for i, movie := range movies {
		movieIDs[i] = movie.ID
	}

	providersByMovie, err := s.repo.Movie.FindProvidersByMovieIDs(ctx, movieIDs)
	if err != nil {
		return nil, fmt.Errorf("load movie providers: %w", err)
	}

	entries := make([]response.MovieResponse, len(movies))
	for i, movie := range movies {
		entries[i] = response.MovieToResponse(movie, s.listingProviderName(providerID, providersByMovie[movie.ID]))
	}

	// At least one page is always reported, even for an empty result.
	totalPages := utils.CalculateTotalPages(total, pageSize)
	if totalPages < 1 {
		totalPages = 1
	}

	s.log.Debug("Streaming movies listed",
		zap.Int("count", len(entries)),
		zap.Int64("total", total),
		zap.Int("page", page),
		zap.String("provider", query.Provider),
	)

	return &response.StreamingPageResponse{
		Movies:      entries,
		TotalPages:  totalPages,
		CurrentPage: page,
	}, nil
}

// listingProviderName picks the display name for a listing entry: the
// filtered provider when one applies, otherwise the movie's first provider.
func (s *movieService) listingProviderName(filterID int, providers []*entity.MovieProvider) string {
	if filterID != 0 {
		return entity.ProviderName(filterID)
	}
	if len(providers) == 0 {
		return entity.ProviderNameUnknown
	}
	return entity.ProviderName(providers[0].TheProviderID)
}

func (s *movieService) GetStreamingMovieDetail(ctx context.Context, id int64) (*response.MovieDetailResponse, error) {
	movie, err := s.repo.Movie.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get streaming movie detail: %w", err)
	}
	if movie == nil {
		return nil, fmt.Errorf(msgStreamingMovieNotFound+": %w", id, repository.ErrNotFound)
	}

	providerNames, err := s.providerNames(ctx, movie.ID)
	if err != nil {
		return nil, err
	}

	reviews, totalReviews, err := s.recentReviews(ctx, movie.TheMovieDbID)
	if err != nil {
		return nil, err
	}

	return &response.MovieDetailResponse{
		ID:           movie.ID,
		Title:        movie.Title,
		PosterPath:   movie.PosterPath,
		ReleaseDate:  movie.ReleaseDate,
		Overview:     movie.Overview,
		VoteAverage:  movie.VoteAverage,
		VoteCount:    movie.VoteCount,
		Providers:    providerNames,
		TheMovieDbID: movie.TheMovieDbID,
		Reviews:      reviews,
		TotalReviews: totalReviews,
	}, nil
}

func (s *movieService) GetProviderMovies(ctx context.Context, providerID int) ([]response.MovieResponse, error) {
	movies, err := s.repo.Movie.FindByProviderID(ctx, providerID)
	if err != nil {
		return nil, fmt.Errorf("get provider movies: %w", err)
	}

	entries := make([]response.MovieResponse, len(movies))
	for i, movie := range movies {
		entries[i] = response.MovieToResponse(movie, entity.ProviderName(providerID))
	}

	return entries, nil
}

func (s *movieService) GetExpiringHorrorMovies(ctx context.Context, today time.Time) ([]response.ExpiringMovieResponse, error) {
	expiring, err := s.repo.Expiring.FindExpiring(ctx, today)
	if err != nil {
		return nil, fmt.Errorf("get expiring movies: %w", err)
	}

	entries := make([]response.ExpiringMovieResponse, 0, len(expiring))
	if len(expiring) == 0 {
		return entries, nil
	}

	theMovieDbIDs := make([]int64, len(expiring))
	for i, row := range expiring {
		theMovieDbIDs[i] = row.TheMovieDbID
	}

	movies, err := s.repo.Movie.FindByTheMovieDbIDs(ctx, theMovieDbIDs)
	if err != nil {
		return nil, fmt.Errorf("load expiring movie rows: %w", err)
	}

	moviesByExternalID := make(map[int64]*entity.Movie, len(movies))
	for _, movie := range movies {
		moviesByExternalID[movie.TheMovieDbID] = movie
	}

	// Iterate expiring rows to keep the soonest-expiry-first order.
	for _, row := range expiring {
		movie, ok := moviesByExternalID[row.TheMovieDbID]
		if !ok {
			continue
		}
		entries = append(entries, response.ExpiringMovieResponse{
			ID:           movie.ID,
			Title:        movie.Title,
			PosterPath:   movie.PosterPath,
			ExpiringDate: row.ExpiredDate.Format(dateLayout),
			Providers:    entity.ProviderName(entity.ProviderNetflix),
		})
	}

	return entries, nil
}

func (s *movieService) GetExpiringHorrorMovieDetail(ctx context.Context, id int64) (*response.ExpiringMovieDetailResponse, error) {
	movie, err := s.repo.Movie.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get expiring movie detail: %w", err)
	}
	if movie == nil {
		return nil, fmt.Errorf(msgMovieNotFound+": %w", id, repository.ErrNotFound)
	}

	expiring, err := s.repo.Expiring.FindByTheMovieDbID(ctx, movie.TheMovieDbID)
	if err != nil {
		return nil, fmt.Errorf("get expiring movie detail: %w", err)
	}
	if expiring == nil {
		return nil, fmt.Errorf(msgExpiringMovieNotFound+": %w", id, repository.ErrNotFound)
	}

	providerNames, err := s.providerNames(ctx, movie.ID)
	if err != nil {
		return nil, err
	}

	reviews, totalReviews, err := s.recentReviews(ctx, movie.TheMovieDbID)
	if err != nil {
		return nil, err
	}

	return &response.ExpiringMovieDetailResponse{
		ID:           movie.ID,
		Title:        movie.Title,
		PosterPath:   movie.PosterPath,
		ExpiringDate: expiring.ExpiredDate.Format(dateLayout),
		Overview:     movie.Overview,
		VoteAverage:  movie.VoteAverage,
		VoteCount:    movie.VoteCount,
		Providers:    providerNames,
		TheMovieDbID: movie.TheMovieDbID,
		Reviews:      reviews,
		TotalReviews: totalReviews,
	}, nil
}

func (s *movieService) GetMovieReviews(ctx context.Context, movieID int64, page int) (*response.ReviewPageResponse, error) {
	movie, err := s.repo.Movie.FindByID(ctx, movieID)
	if err != nil {
		return nil, fmt.Errorf("get movie reviews: %w", err)
	}
	if movie == nil {
		return nil, fmt.Errorf(msgMovieNotFound+": %w", movieID, repository.ErrNotFound)
	}

	page = utils.ClampPage(page)
	pageSize := s.paging.ReviewPageSize
	offset := utils.CalculateOffset(page, pageSize)

	reviews, err := s.repo.Review.FindByMovieDbID(ctx, movie.TheMovieDbID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("get movie reviews: %w", err)
	}

	total, err := s.repo.Review.CountByMovieDbID(ctx, movie.TheMovieDbID)
	if err != nil {
		return nil, fmt.Errorf("count movie reviews: %w", err)
	}

	totalPages := utils.CalculateTotalPages(total, pageSize)

	return &response.ReviewPageResponse{
		Reviews:     response.ReviewsToResponses(reviews),
		TotalPages:  totalPages,
		CurrentPage: page,
		HasNext:     page < totalPages,
	}, nil
}

// ==================== HELPER METHODS ====================

func (s *movieService) providerNames(ctx context.Context, movieID int64) ([]string, error) {
	providers, err := s.repo.Movie.FindProvidersByMovieID(ctx, movieID)
	if err != nil {
		return nil, fmt.Errorf("load movie providers: %w", err)
	}

	names := make([]string, len(providers))
	for i, provider := range providers {
		names[i] = entity.ProviderName(provider.TheProviderID)
	}
	return names, nil
}

func (s *movieService) recentReviews(ctx context.Context, theMovieDbID int64) ([]response.ReviewResponse, int64, error) {
	reviews, err := s.repo.Review.FindByMovieDbID(ctx, theMovieDbID, s.paging.DetailReviewLimit, 0)
	if err != nil {
		return nil, 0, fmt.Errorf("load recent reviews: %w", err)
	}

	total, err := s.repo.Review.CountByMovieDbID(ctx, theMovieDbID)
	if err != nil {
		return nil, 0, fmt.Errorf("count reviews: %w", err)
	}

	return response.ReviewsToResponses(reviews), total, nil
}
