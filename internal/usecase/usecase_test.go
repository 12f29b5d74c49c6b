package usecase

import (
	"context"
	"sort"
	"time"

	"movie-catalog/internal/data/entity"
	"movie-catalog/internal/data/repository"
	"movie-catalog/pkg/utils"

	"github.com/google/uuid"
)

// In-memory repository fakes for service tests.

type fakeMovieRepo struct {
	movies    []*entity.Movie
	providers map[int64][]*entity.MovieProvider
	theaters  map[int64][]*entity.Theater
	upcoming  []*entity.Movie
	released  []*entity.Movie
	total     int64

	lastProviderID int
	lastSearch     string
	lastLimit      int
	lastOffset     int
}

func (f *fakeMovieRepo) FindStreamingMovies(ctx context.Context, providerID int, search string, limit, offset int) ([]*entity.Movie, error) {
	f.lastProviderID = providerID
	f.lastSearch = search
	f.lastLimit = limit
	f.lastOffset = offset
	return f.movies, nil
}

func (f *fakeMovieRepo) CountStreamingMovies(ctx context.Context, providerID int, search string) (int64, error) {
	return f.total, nil
}

func (f *fakeMovieRepo) FindByProviderID(ctx context.Context, providerID int) ([]*entity.Movie, error) {
	f.lastProviderID = providerID
	return f.movies, nil
}

func (f *fakeMovieRepo) FindByID(ctx context.Context, id int64) (*entity.Movie, error) {
	for _, movie := range f.movies {
		if movie.ID == id {
			return movie, nil
		}
	}
	return nil, nil
}

func (f *fakeMovieRepo) FindTheatricalByID(ctx context.Context, id int64) (*entity.Movie, error) {
	for _, movie := range f.movies {
		if movie.ID == id && movie.IsTheatricalRelease {
			return movie, nil
		}
	}
	return nil, nil
}

func (f *fakeMovieRepo) FindByTheMovieDbIDs(ctx context.Context, theMovieDbIDs []int64) ([]*entity.Movie, error) {
	wanted := make(map[int64]bool, len(theMovieDbIDs))
	for _, id := range theMovieDbIDs {
		wanted[id] = true
	}
	var found []*entity.Movie
	for _, movie := range f.movies {
		if wanted[movie.TheMovieDbID] {
			found = append(found, movie)
		}
	}
	return found, nil
}

func (f *fakeMovieRepo) FindUpcoming(ctx context.Context, today string) ([]*entity.Movie, error) {
	return f.upcoming, nil
}

func (f *fakeMovieRepo) FindReleased(ctx context.Context, today string) ([]*entity.Movie, error) {
	return f.released, nil
}

func (f *fakeMovieRepo) FindProvidersByMovieID(ctx context.Context, movieID int64) ([]*entity.MovieProvider, error) {
	return f.providers[movieID], nil
}

func (f *fakeMovieRepo) FindProvidersByMovieIDs(ctx context.Context, movieIDs []int64) (map[int64][]*entity.MovieProvider, error) {
	return f.providers, nil
}

func (f *fakeMovieRepo) FindTheatersByMovieID(ctx context.Context, movieID int64) ([]*entity.Theater, error) {
	return f.theaters[movieID], nil
}

func (f *fakeMovieRepo) FindTheatersByMovieIDs(ctx context.Context, movieIDs []int64) (map[int64][]*entity.Theater, error) {
	return f.theaters, nil
}

type fakeExpiringRepo struct {
	rows []*entity.NetflixHorrorExpiring
}

func (f *fakeExpiringRepo) FindExpiring(ctx context.Context, from time.Time) ([]*entity.NetflixHorrorExpiring, error) {
	var matched []*entity.NetflixHorrorExpiring
	for _, row := range f.rows {
		if !row.ExpiredDate.Before(from) {
			matched = append(matched, row)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].ExpiredDate.Before(matched[j].ExpiredDate)
	})
	return matched, nil
}

func (f *fakeExpiringRepo) FindByTheMovieDbID(ctx context.Context, theMovieDbID int64) (*entity.NetflixHorrorExpiring, error) {
	for _, row := range f.rows {
		if row.TheMovieDbID == theMovieDbID {
			return row, nil
		}
	}
	return nil, nil
}

type fakeReviewRepo struct {
	reviews   []*entity.Review
	nextID    int64
	createErr error

	updateCalls int
	deleteCalls int
}

func (f *fakeReviewRepo) Create(ctx context.Context, review *entity.Review) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.nextID++
	review.ID = f.nextID
	f.reviews = append(f.reviews, review)
	return nil
}

func (f *fakeReviewRepo) FindByID(ctx context.Context, id int64) (*entity.Review, error) {
	for _, review := range f.reviews {
		if review.ID == id {
			return review, nil
		}
	}
	return nil, nil
}

func (f *fakeReviewRepo) FindByMovieDbID(ctx context.Context, theMovieDbID int64, limit, offset int) ([]*entity.Review, error) {
	var matched []*entity.Review
	for _, review := range f.reviews {
		if review.MovieID == theMovieDbID {
			matched = append(matched, review)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})
	return pageOf(matched, limit, offset), nil
}

func (f *fakeReviewRepo) CountByMovieDbID(ctx context.Context, theMovieDbID int64) (int64, error) {
	var count int64
	for _, review := range f.reviews {
		if review.MovieID == theMovieDbID {
			count++
		}
	}
	return count, nil
}

func (f *fakeReviewRepo) FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Review, error) {
	var matched []*entity.Review
	for _, review := range f.reviews {
		if review.UserID == userID {
			matched = append(matched, review)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})
	return pageOf(matched, limit, offset), nil
}

func (f *fakeReviewRepo) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	for _, review := range f.reviews {
		if review.UserID == userID {
			count++
		}
	}
	return count, nil
}

func (f *fakeReviewRepo) Update(ctx context.Context, review *entity.Review) error {
	f.updateCalls++
	for i, existing := range f.reviews {
		if existing.ID == review.ID {
			f.reviews[i] = review
			return nil
		}
	}
	return repository.ErrNotFound
}

func (f *fakeReviewRepo) Delete(ctx context.Context, id int64) error {
	f.deleteCalls++
	for i, existing := range f.reviews {
		if existing.ID == id {
			f.reviews = append(f.reviews[:i], f.reviews[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func pageOf(reviews []*entity.Review, limit, offset int) []*entity.Review {
	if offset >= len(reviews) {
		return nil
	}
	end := offset + limit
	if end > len(reviews) {
		end = len(reviews)
	}
	return reviews[offset:end]
}

func newTestRepo(movie *fakeMovieRepo, expiring *fakeExpiringRepo, review *fakeReviewRepo) *repository.Repository {
	if movie == nil {
		movie = &fakeMovieRepo{}
	}
	if expiring == nil {
		expiring = &fakeExpiringRepo{}
	}
	if review == nil {
		review = &fakeReviewRepo{}
	}
	return &repository.Repository{
		Movie:    movie,
		Expiring: expiring,
		Review:   review,
	}
}

func testPaging() utils.PagingConfig {
	return utils.PagingConfig{
		MoviePageSize:     24,
		ReviewPageSize:    5,
		DetailReviewLimit: 5,
	}
}
