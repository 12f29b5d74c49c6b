package adaptor

import (
	"errors"
	"net/http"

	"movie-catalog/internal/data/repository"
	"movie-catalog/internal/usecase"
	"movie-catalog/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Movie   *MovieHandler
	Theater *TheaterHandler
	Review  *ReviewHandler
	User    *UserHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Movie:   NewMovieHandler(service.Movie, log),
		Theater: NewTheaterHandler(service.Theater, log),
		Review:  NewReviewHandler(service.Review, log),
		User:    NewUserHandler(service.User, log),
	}
}

// writeServiceError translates service-layer failures into HTTP statuses.
func writeServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, repository.ErrForbidden):
		log.Warn(operation+" failed - forbidden", zap.Error(err))
		utils.ResponseForbidden(w, "권한이 없습니다")

	case errors.Is(err, repository.ErrAlreadyReviewed):
		log.Warn(operation+" failed - already reviewed", zap.Error(err))
		utils.ResponseConflict(w, "이미 이 영화에 대한 리뷰를 작성했습니다")

	case errors.Is(err, usecase.ErrUnsupportedImage):
		log.Warn(operation+" failed - unsupported image", zap.Error(err))
		utils.ResponseBadRequest(w, "이미지는 JPEG 형식이어야 합니다", nil)

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
