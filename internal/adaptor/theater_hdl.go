package adaptor

import (
	"net/http"
	"time"

	"movie-catalog/internal/usecase"
	"movie-catalog/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type TheaterHandler struct {
	service usecase.TheaterService
	log     *zap.Logger
}

func NewTheaterHandler(service usecase.TheaterService, log *zap.Logger) *TheaterHandler {
	return &TheaterHandler{
		service: service,
		log:     log.With(zap.String("handler", "theater")),
	}
}

func today() string {
	return time.Now().Format("2006-01-02")
}

// GetUpcomingMovies handles GET /api/movies/theater/upcoming (public)
func (h *TheaterHandler) GetUpcomingMovies(w http.ResponseWriter, r *http.Request) {
	movies, err := h.service.FindUpcomingMovies(r.Context(), today())
	if err != nil {
		writeServiceError(w, h.log, err, "get upcoming movies")
		return
	}

	utils.ResponseSuccess(w, "success", movies)
}

// GetReleasedMovies handles GET /api/movies/theater/released (public)
func (h *TheaterHandler) GetReleasedMovies(w http.ResponseWriter, r *http.Request) {
	movies, err := h.service.FindReleasedMovies(r.Context(), today())
	if err != nil {
		writeServiceError(w, h.log, err, "get released movies")
		return
	}

	utils.ResponseSuccess(w, "success", movies)
}

// GetTheatricalMovieDetail handles GET /api/movies/theater/{id} (public)
func (h *TheaterHandler) GetTheatricalMovieDetail(w http.ResponseWriter, r *http.Request) {
	id, ok := utils.ParseInt64(chi.URLParam(r, "id"))
	if !ok {
		utils.ResponseBadRequest(w, "Invalid movie ID", nil)
		return
	}

	detail, err := h.service.FindTheatricalMovieDetail(r.Context(), id)
	if err != nil {
		writeServiceError(w, h.log, err, "get theatrical movie detail")
		return
	}

	utils.ResponseSuccess(w, "success", detail)
}
