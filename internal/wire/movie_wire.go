package wire

import (
	"movie-catalog/internal/adaptor"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireMovie(
	r chi.Router,
	movieHandler *adaptor.MovieHandler,
	theaterHandler *adaptor.TheaterHandler,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// Streaming catalog
	r.Get("/api/movies/streaming", movieHandler.GetStreamingMovies)
	r.Get("/api/movies/streaming/{id}", movieHandler.GetStreamingMovieDetail)
	r.Get("/api/movies/provider/{providerId}", movieHandler.GetProviderMovies)

	// Theatrical releases
	r.Get("/api/movies/theater/upcoming", theaterHandler.GetUpcomingMovies)
	r.Get("/api/movies/theater/released", theaterHandler.GetReleasedMovies)
	r.Get("/api/movies/theater/{id}", theaterHandler.GetTheatricalMovieDetail)

	// Expiring horror titles
	r.Get("/api/movies/expiring-horror", movieHandler.GetExpiringHorrorMovies)
	r.Get("/api/movies/expiring-horror/{id}", movieHandler.GetExpiringHorrorMovieDetail)

	// Paged reviews for any listing type
	r.Get("/api/movies/{movieType}/{id}/reviews", movieHandler.GetMovieReviews)
}
