package usecase

import (
	"context"
	"fmt"
	"time"

	"movie-catalog/internal/data/entity"
	"movie-catalog/internal/data/repository"
	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const msgReviewNotFound = "리뷰 ID %d를 찾을 수 없습니다"

type ReviewService interface {
	// CreateReview inserts a review for the movie identified by its
	// the_movie_db_id. A second review by the same user for the same
	// movie fails with ErrAlreadyReviewed.
	CreateReview(ctx context.Context, userID uuid.UUID, userName string, movieID int64, req *request.CreateReviewRequest) (*response.UserReviewResponse, error)
	UpdateReview(ctx context.Context, reviewID int64, userID uuid.UUID, req *request.UpdateReviewRequest) (*response.UserReviewResponse, error)
	DeleteReview(ctx context.Context, reviewID int64, userID uuid.UUID) error
	GetUserReviews(ctx context.Context, userID uuid.UUID, req *request.PaginatedRequest) (*response.PaginatedResponse[response.UserReviewResponse], error)
}

type reviewService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewReviewService(repo *repository.Repository, log *zap.Logger) ReviewService {
	return &reviewService{
		repo: repo,
		log:  log.With(zap.String("service", "review")),
	}
}

func (s *reviewService) CreateReview(ctx context.Context, userID uuid.UUID, userName string, movieID int64, req *request.CreateReviewRequest) (*response.UserReviewResponse, error) {
	review := &entity.Review{
		CreatedAt: time.Now(),
		UserID:    userID,
		UserName:  userName,
		MovieID:   movieID,
		Rating:    req.Rating,
		Content:   req.Content,
	}

	if err := s.repo.Review.Create(ctx, review); err != nil {
		return nil, err
	}

	s.log.Info("Review created",
		zap.Int64("review_id", review.ID),
		zap.String("user_id", userID.String()),
		zap.Int64("movie_id", movieID),
		zap.Int("rating", req.Rating),
	)

	resp := response.ReviewToUserResponse(review)
	return &resp, nil
}

func (s *reviewService) UpdateReview(ctx context.Context, reviewID int64, userID uuid.UUID, req *request.UpdateReviewRequest) (*response.UserReviewResponse, error) {
	review, err := s.repo.Review.FindByID(ctx, reviewID)
	if err != nil {
		return nil, fmt.Errorf("update review: %w", err)
	}
	if review == nil {
		return nil, fmt.Errorf(msgReviewNotFound+": %w", reviewID, repository.ErrNotFound)
	}

	if review.UserID != userID {
		return nil, fmt.Errorf("review %d belongs to another user: %w", reviewID, repository.ErrForbidden)
	}

	updated := false
	if req.Rating != nil && *req.Rating != review.Rating {
		review.Rating = *req.Rating
		updated = true
	}
	if req.Content != nil && *req.Content != review.Content {
		review.Content = *req.Content
		updated = true
	}

	if updated {
		if err := s.repo.Review.Update(ctx, review); err != nil {
			return nil, err
		}

		s.log.Info("Review updated",
			zap.Int64("review_id", reviewID),
			zap.String("user_id", userID.String()),
		)
	}

	resp := response.ReviewToUserResponse(review)
	return &resp, nil
}

func (s *reviewService) DeleteReview(ctx context.Context, reviewID int64, userID uuid.UUID) error {
	review, err := s.repo.Review.FindByID(ctx, reviewID)
	if err != nil {
		return fmt.Errorf("delete review: %w", err)
	}
	if review == nil {
		return fmt.Errorf(msgReviewNotFound+": %w", reviewID, repository.ErrNotFound)
	}

	if review.UserID != userID {
		return fmt.Errorf("review %d belongs to another user: %w", reviewID, repository.ErrForbidden)
	}

	if err := s.repo.Review.Delete(ctx, reviewID); err != nil {
		return err
	}

	s.log.Info("Review deleted",
		zap.Int64("review_id", reviewID),
		zap.String("user_id", userID.String()),
		zap.Int64("movie_id", review.MovieID),
	)

	return nil
}

func (s *reviewService) GetUserReviews(ctx context.Context, userID uuid.UUID, req *request.PaginatedRequest) (*response.PaginatedResponse[response.UserReviewResponse], error) {
	reviews, err := s.repo.Review.FindByUserID(ctx, userID, req.Limit(), req.Offset())
	if err != nil {
		return nil, fmt.Errorf("get user reviews: %w", err)
	}

	total, err := s.repo.Review.CountByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("count user reviews: %w", err)
	}

	entries := make([]response.UserReviewResponse, len(reviews))
	for i, review := range reviews {
		entries[i] = response.ReviewToUserResponse(review)
	}

	return response.NewPaginatedResponse(entries, req.Page, req.PerPage, total), nil
}
