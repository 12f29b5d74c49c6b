package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"movie-catalog/internal/data/entity"
	"movie-catalog/internal/data/repository"
	"movie-catalog/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func streamingMovie(id, externalID int64, title string) *entity.Movie {
	return &entity.Movie{
		ID:           id,
		Title:        title,
		ReleaseDate:  "2025-01-01",
		TheMovieDbID: externalID,
	}
}

func TestGetStreamingMoviesClampsPage(t *testing.T) {
	movieRepo := &fakeMovieRepo{total: 0}
	service := NewMovieService(newTestRepo(movieRepo, nil, nil), testPaging(), zap.NewNop())

	page, err := service.GetStreamingMovies(context.Background(), &request.StreamingQuery{Page: -3})
	require.NoError(t, err)

	assert.Equal(t, 1, page.CurrentPage)
	assert.Equal(t, 0, movieRepo.lastOffset)
	assert.Equal(t, 24, movieRepo.lastLimit)
}

func TestGetStreamingMoviesEmptyResultHasOnePage(t *testing.T) {
	service := NewMovieService(newTestRepo(nil, nil, nil), testPaging(), zap.NewNop())

	page, err := service.GetStreamingMovies(context.Background(), &request.StreamingQuery{Page: 1})
	require.NoError(t, err)

	assert.Empty(t, page.Movies)
	assert.Equal(t, 1, page.TotalPages)
}

func TestGetStreamingMoviesTotalPages(t *testing.T) {
	movieRepo := &fakeMovieRepo{total: 49}
	service := NewMovieService(newTestRepo(movieRepo, nil, nil), testPaging(), zap.NewNop())

	page, err := service.GetStreamingMovies(context.Background(), &request.StreamingQuery{Page: 2})
	require.NoError(t, err)

	// 49 movies at 24 per page is 3 pages.
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 2, page.CurrentPage)
	assert.Equal(t, 24, movieRepo.lastOffset)
}

func TestGetStreamingMoviesProviderFilter(t *testing.T) {
	movieRepo := &fakeMovieRepo{
		movies: []*entity.Movie{streamingMovie(1, 100, "Alien")},
		total:  1,
	}
	service := NewMovieService(newTestRepo(movieRepo, nil, nil), testPaging(), zap.NewNop())

	page, err := service.GetStreamingMovies(context.Background(), &request.StreamingQuery{Provider: "netflix", Page: 1})
	require.NoError(t, err)

	assert.Equal(t, entity.ProviderNetflix, movieRepo.lastProviderID)
	require.Len(t, page.Movies, 1)
	assert.Equal(t, "넷플릭스", page.Movies[0].Providers)
}

func TestGetStreamingMoviesUnfilteredUsesFirstProvider(t *testing.T) {
	movieRepo := &fakeMovieRepo{
		movies: []*entity.Movie{
			streamingMovie(1, 100, "Alien"),
			streamingMovie(2, 200, "The Thing"),
		},
		providers: map[int64][]*entity.MovieProvider{
			1: {{ID: 1, MovieID: 1, TheProviderID: entity.ProviderDisneyPlus}},
		},
		total: 2,
	}
	service := NewMovieService(newTestRepo(movieRepo, nil, nil), testPaging(), zap.NewNop())

	page, err := service.GetStreamingMovies(context.Background(), &request.StreamingQuery{Page: 1})
	require.NoError(t, err)

	assert.Equal(t, 0, movieRepo.lastProviderID)
	require.Len(t, page.Movies, 2)
	assert.Equal(t, "디즈니플러스", page.Movies[0].Providers)
	// No provider rows at all falls back to the unknown label.
	assert.Equal(t, "알 수 없음", page.Movies[1].Providers)
}

func TestGetStreamingMovieDetailNotFound(t *testing.T) {
	service := NewMovieService(newTestRepo(nil, nil, nil), testPaging(), zap.NewNop())

	_, err := service.GetStreamingMovieDetail(context.Background(), 42)

	require.Error(t, err)
	assert.True(t, errors.Is(err, repository.ErrNotFound))
	assert.Contains(t, err.Error(), "42")
}

func TestGetStreamingMovieDetail(t *testing.T) {
	movie := streamingMovie(1, 100, "Alien")
	movieRepo := &fakeMovieRepo{
		movies: []*entity.Movie{movie},
		providers: map[int64][]*entity.MovieProvider{
			1: {
				{ID: 1, MovieID: 1, TheProviderID: entity.ProviderNetflix},
				{ID: 2, MovieID: 1, TheProviderID: entity.ProviderWavve},
			},
		},
	}
	reviewRepo := &fakeReviewRepo{
		reviews: []*entity.Review{
			{ID: 1, CreatedAt: time.Now(), UserID: uuid.New(), UserName: "kim", MovieID: 100, Rating: 5, Content: "great movie"},
		},
		nextID: 1,
	}
	service := NewMovieService(newTestRepo(movieRepo, nil, reviewRepo), testPaging(), zap.NewNop())

	detail, err := service.GetStreamingMovieDetail(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, "Alien", detail.Title)
	assert.Equal(t, []string{"넷플릭스", "웨이브"}, detail.Providers)
	assert.Equal(t, int64(100), detail.TheMovieDbID)
	require.Len(t, detail.Reviews, 1)
	assert.Equal(t, "kim", detail.Reviews[0].Profile.Name)
	assert.Equal(t, int64(1), detail.TotalReviews)
}

func TestGetExpiringHorrorMoviesOrderedByExpiry(t *testing.T) {
	movieRepo := &fakeMovieRepo{
		movies: []*entity.Movie{
			streamingMovie(1, 100, "Later"),
			streamingMovie(2, 200, "Sooner"),
		},
	}
	today := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	expiringRepo := &fakeExpiringRepo{
		rows: []*entity.NetflixHorrorExpiring{
			{ID: 1, Title: "Later", ExpiredDate: today.AddDate(0, 0, 14), TheMovieDbID: 100},
			{ID: 2, Title: "Sooner", ExpiredDate: today.AddDate(0, 0, 3), TheMovieDbID: 200},
			{ID: 3, Title: "Gone", ExpiredDate: today.AddDate(0, 0, -1), TheMovieDbID: 300},
		},
	}
	service := NewMovieService(newTestRepo(movieRepo, expiringRepo, nil), testPaging(), zap.NewNop())

	movies, err := service.GetExpiringHorrorMovies(context.Background(), today)
	require.NoError(t, err)

	require.Len(t, movies, 2)
	assert.Equal(t, "Sooner", movies[0].Title)
	assert.Equal(t, "Later", movies[1].Title)
	assert.Equal(t, "넷플릭스", movies[0].Providers)
	assert.Equal(t, today.AddDate(0, 0, 3).Format("2006-01-02"), movies[0].ExpiringDate)
}

func TestGetExpiringHorrorMoviesExpiringTodayIncluded(t *testing.T) {
	today := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	movieRepo := &fakeMovieRepo{
		movies: []*entity.Movie{streamingMovie(1, 100, "Last Day")},
	}
	expiringRepo := &fakeExpiringRepo{
		rows: []*entity.NetflixHorrorExpiring{
			{ID: 1, Title: "Last Day", ExpiredDate: today, TheMovieDbID: 100},
		},
	}
	service := NewMovieService(newTestRepo(movieRepo, expiringRepo, nil), testPaging(), zap.NewNop())

	movies, err := service.GetExpiringHorrorMovies(context.Background(), today)
	require.NoError(t, err)

	require.Len(t, movies, 1)
	assert.Equal(t, "Last Day", movies[0].Title)
}

func TestGetExpiringHorrorMoviesSkipsUnknownCatalogRows(t *testing.T) {
	today := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	expiringRepo := &fakeExpiringRepo{
		rows: []*entity.NetflixHorrorExpiring{
			{ID: 1, Title: "Orphan Row", ExpiredDate: today.AddDate(0, 0, 7), TheMovieDbID: 999},
		},
	}
	service := NewMovieService(newTestRepo(nil, expiringRepo, nil), testPaging(), zap.NewNop())

	movies, err := service.GetExpiringHorrorMovies(context.Background(), today)
	require.NoError(t, err)

	assert.Empty(t, movies)
}

func TestGetExpiringHorrorMovieDetailRequiresExpiryRow(t *testing.T) {
	movieRepo := &fakeMovieRepo{
		movies: []*entity.Movie{streamingMovie(1, 100, "Alien")},
	}
	service := NewMovieService(newTestRepo(movieRepo, nil, nil), testPaging(), zap.NewNop())

	_, err := service.GetExpiringHorrorMovieDetail(context.Background(), 1)

	require.Error(t, err)
	assert.True(t, errors.Is(err, repository.ErrNotFound))
}

func TestGetMovieReviewsPagination(t *testing.T) {
	movieRepo := &fakeMovieRepo{
		movies: []*entity.Movie{streamingMovie(1, 100, "Alien")},
	}
	reviewRepo := &fakeReviewRepo{nextID: 0}
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		reviewRepo.reviews = append(reviewRepo.reviews, &entity.Review{
			ID:        int64(i + 1),
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
			UserID:    uuid.New(),
			UserName:  "user",
			MovieID:   100,
			Rating:    4,
			Content:   "long enough review content",
		})
	}
	service := NewMovieService(newTestRepo(movieRepo, nil, reviewRepo), testPaging(), zap.NewNop())

	first, err := service.GetMovieReviews(context.Background(), 1, 1)
	require.NoError(t, err)

	assert.Len(t, first.Reviews, 5)
	assert.Equal(t, 2, first.TotalPages)
	assert.True(t, first.HasNext)
	// Newest review comes first.
	assert.Equal(t, int64(7), first.Reviews[0].ID)

	second, err := service.GetMovieReviews(context.Background(), 1, 2)
	require.NoError(t, err)

	assert.Len(t, second.Reviews, 2)
	assert.False(t, second.HasNext)
}

func TestGetMovieReviewsUnknownMovie(t *testing.T) {
	service := NewMovieService(newTestRepo(nil, nil, nil), testPaging(), zap.NewNop())

	_, err := service.GetMovieReviews(context.Background(), 77, 1)

	require.Error(t, err)
	assert.True(t, errors.Is(err, repository.ErrNotFound))
	assert.Contains(t, err.Error(), "77")
}
