package usecase

import (
	"movie-catalog/internal/data/repository"
	"movie-catalog/pkg/identity"
	"movie-catalog/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Movie   MovieService
	Theater TheaterService
	Review  ReviewService
	User    UserService
}

func NewService(repo *repository.Repository, idClient *identity.Client, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Movie:   NewMovieService(repo, config.Paging, log),
		Theater: NewTheaterService(repo, config.Paging, log),
		Review:  NewReviewService(repo, log),
		User:    NewUserService(idClient, log),
	}
}
