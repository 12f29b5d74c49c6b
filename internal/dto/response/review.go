package response

import (
	"time"

	"movie-catalog/internal/data/entity"
)

// ReviewProfile is the reviewer as shown on detail pages.
type ReviewProfile struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type ReviewResponse struct {
	ID        int64         `json:"id"`
	Content   string        `json:"content"`
	Rating    int           `json:"rating"`
	CreatedAt time.Time     `json:"createdAt"`
	Profile   ReviewProfile `json:"profile"`
}

type ReviewPageResponse struct {
	Reviews     []ReviewResponse `json:"reviews"`
	TotalPages  int              `json:"totalPages"`
	CurrentPage int              `json:"currentPage"`
	HasNext     bool             `json:"hasNext"`
}

// UserReviewResponse is a review as shown in the owner's own listing.
type UserReviewResponse struct {
	ID        int64     `json:"id"`
	MovieID   int64     `json:"movieId"`
	Rating    int       `json:"rating"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

func ReviewToResponse(review *entity.Review) ReviewResponse {
	return ReviewResponse{
		ID:        review.ID,
		Content:   review.Content,
		Rating:    review.Rating,
		CreatedAt: review.CreatedAt,
		Profile: ReviewProfile{
			ID:   review.UserID.String(),
			Name: review.UserName,
		},
	}
}

func ReviewsToResponses(reviews []*entity.Review) []ReviewResponse {
	responses := make([]ReviewResponse, len(reviews))
	for i, review := range reviews {
		responses[i] = ReviewToResponse(review)
	}
	return responses
}

func ReviewToUserResponse(review *entity.Review) UserReviewResponse {
	return UserReviewResponse{
		ID:        review.ID,
		MovieID:   review.MovieID,
		Rating:    review.Rating,
		Content:   review.Content,
		CreatedAt: review.CreatedAt,
	}
}
