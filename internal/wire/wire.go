// internal/wire/wire.go
package wire

import (
	"net/http"

	"movie-catalog/internal/adaptor"
	"movie-catalog/internal/data/repository"
	"movie-catalog/internal/usecase"
	"movie-catalog/pkg/identity"
	"movie-catalog/pkg/middleware"
	"movie-catalog/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired application dependencies.
type App struct {
	Router *chi.Mux
}

// Wiring initializes services, handlers and routes.
func Wiring(repo *repository.Repository, idClient *identity.Client, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, idClient, config, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, idClient, config, logger)

	return &App{
		Router: router,
	}
}

// setupRouter configures the Chi router.
func setupRouter(
	handler *adaptor.Handler,
	idClient *identity.Client,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS(config.CORS.Origins))

	if config.Auth.Mode == utils.AuthModeAPIKey {
		r.Use(middleware.APIKey(config.Auth.APIKey, logger))
	}

	// Apply routes
	wireMovie(r, handler.Movie, handler.Theater, logger)
	wireReview(r, handler.Review, idClient, config, logger)
	wireUser(r, handler.User, idClient, config, logger)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
