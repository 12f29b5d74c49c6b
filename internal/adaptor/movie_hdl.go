package adaptor

import (
	"net/http"
	"time"

	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/usecase"
	"movie-catalog/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type MovieHandler struct {
	service usecase.MovieService
	log     *zap.Logger
}

func NewMovieHandler(service usecase.MovieService, log *zap.Logger) *MovieHandler {
	return &MovieHandler{
		service: service,
		log:     log.With(zap.String("handler", "movie")),
	}
}

var movieTypes = map[string]bool{
	"streaming":       true,
	"theater":         true,
	"expiring-horror": true,
}

// GetStreamingMovies handles GET /api/movies/streaming (public)
func (h *MovieHandler) GetStreamingMovies(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.StreamingQuery{
		Provider: query.Get("provider"),
		Search:   query.Get("search"),
		Page:     utils.ParseInt(query.Get("page"), 1),
	}

	page, err := h.service.GetStreamingMovies(r.Context(), req)
	if err != nil {
		writeServiceError(w, h.log, err, "get streaming movies")
		return
	}

	utils.ResponseSuccess(w, "success", page)
}

// GetStreamingMovieDetail handles GET /api/movies/streaming/{id} (public)
func (h *MovieHandler) GetStreamingMovieDetail(w http.ResponseWriter, r *http.Request) {
	id, ok := utils.ParseInt64(chi.URLParam(r, "id"))
	if !ok {
		utils.ResponseBadRequest(w, "Invalid movie ID", nil)
		return
	}

	detail, err := h.service.GetStreamingMovieDetail(r.Context(), id)
	if err != nil {
		writeServiceError(w, h.log, err, "get streaming movie detail")
		return
	}

	utils.ResponseSuccess(w, "success", detail)
}

// GetProviderMovies handles GET /api/movies/provider/{providerId} (public)
func (h *MovieHandler) GetProviderMovies(w http.ResponseWriter, r *http.Request) {
	providerID, ok := utils.ParseInt64(chi.URLParam(r, "providerId"))
	if !ok {
		utils.ResponseBadRequest(w, "Invalid provider ID", nil)
		return
	}

	movies, err := h.service.GetProviderMovies(r.Context(), int(providerID))
	if err != nil {
		writeServiceError(w, h.log, err, "get provider movies")
		return
	}

	utils.ResponseSuccess(w, "success", movies)
}

// GetExpiringHorrorMovies handles GET /api/movies/expiring-horror (public)
func (h *MovieHandler) GetExpiringHorrorMovies(w http.ResponseWriter, r *http.Request) {
	movies, err := h.service.GetExpiringHorrorMovies(r.Context(), time.Now())
	if err != nil {
		writeServiceError(w, h.log, err, "get expiring horror movies")
		return
	}

	utils.ResponseSuccess(w, "success", movies)
}

// GetExpiringHorrorMovieDetail handles GET /api/movies/expiring-horror/{id} (public)
func (h *MovieHandler) GetExpiringHorrorMovieDetail(w http.ResponseWriter, r *http.Request) {
	id, ok := utils.ParseInt64(chi.URLParam(r, "id"))
	if !ok {
		utils.ResponseBadRequest(w, "Invalid movie ID", nil)
		return
	}

	detail, err := h.service.GetExpiringHorrorMovieDetail(r.Context(), id)
	if err != nil {
		writeServiceError(w, h.log, err, "get expiring horror movie detail")
		return
	}

	utils.ResponseSuccess(w, "success", detail)
}

// GetMovieReviews handles GET /api/movies/{movieType}/{id}/reviews (public)
func (h *MovieHandler) GetMovieReviews(w http.ResponseWriter, r *http.Request) {
	if !movieTypes[chi.URLParam(r, "movieType")] {
		utils.ResponseBadRequest(w, "Invalid movie type", nil)
		return
	}

	id, ok := utils.ParseInt64(chi.URLParam(r, "id"))
	if !ok {
		utils.ResponseBadRequest(w, "Invalid movie ID", nil)
		return
	}

	page := utils.ParseInt(r.URL.Query().Get("page"), 1)

	reviews, err := h.service.GetMovieReviews(r.Context(), id, page)
	if err != nil {
		writeServiceError(w, h.log, err, "get movie reviews")
		return
	}

	utils.ResponseSuccess(w, "success", reviews)
}
