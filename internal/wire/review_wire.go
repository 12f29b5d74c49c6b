package wire

import (
	"movie-catalog/internal/adaptor"
	"movie-catalog/pkg/identity"
	"movie-catalog/pkg/middleware"
	"movie-catalog/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireReview(
	r chi.Router,
	reviewHandler *adaptor.ReviewHandler,
	idClient *identity.Client,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== AUTHENTICATED ROUTES ====================
	r.Route("/api/reviews/movie", func(r chi.Router) {
		if config.Auth.Mode == utils.AuthModeIdentity {
			r.Use(middleware.Auth(idClient, log))
		}

		r.Post("/{movieId}", reviewHandler.CreateReview)
		r.Put("/{reviewId}", reviewHandler.UpdateReview)
		r.Delete("/{reviewId}", reviewHandler.DeleteReview)
	})

	r.Route("/api/user/reviews", func(r chi.Router) {
		if config.Auth.Mode == utils.AuthModeIdentity {
			r.Use(middleware.Auth(idClient, log))
		}

		r.Get("/", reviewHandler.GetUserReviews)
	})
}
