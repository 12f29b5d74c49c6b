package wire

import (
	"movie-catalog/internal/adaptor"
	"movie-catalog/pkg/identity"
	"movie-catalog/pkg/middleware"
	"movie-catalog/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireUser(
	r chi.Router,
	userHandler *adaptor.UserHandler,
	idClient *identity.Client,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== AUTHENTICATED ROUTES ====================
	r.Route("/api/users/profile", func(r chi.Router) {
		if config.Auth.Mode == utils.AuthModeIdentity {
			r.Use(middleware.Auth(idClient, log))
		}

		r.Get("/", userHandler.GetProfile)
		r.Patch("/", userHandler.UpdateProfile)
		r.Post("/image", userHandler.UploadProfileImage)
	})
}
