package repository

import (
	"context"
	"errors"
	"fmt"

	"movie-catalog/internal/data/entity"
	"movie-catalog/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	FindByID(ctx context.Context, id int64) (*entity.Review, error)
	// FindByMovieDbID pages reviews for a movie by its the_movie_db_id,
	// newest first.
	FindByMovieDbID(ctx context.Context, theMovieDbID int64, limit, offset int) ([]*entity.Review, error)
	CountByMovieDbID(ctx context.Context, theMovieDbID int64) (int64, error)
	FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Review, error)
	CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error)
	Update(ctx context.Context, review *entity.Review) error
	Delete(ctx context.Context, id int64) error
}

// uniqueViolation is the SQLSTATE raised when the one-review-per-user-per-movie
// constraint fires.
const uniqueViolation = "23505"

type reviewRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewReviewRepository(db database.PgxIface, log *zap.Logger) ReviewRepository {
	return &reviewRepository{
		db:  db,
		log: log.With(zap.String("repository", "review")),
	}
}

func (r *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	query := `
		INSERT INTO reviews (created_at, review_user_id, review_user_name,
		                     review_movie_id, rating, review_content)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		review.CreatedAt,
		review.UserID,
		review.UserName,
		review.MovieID,
		review.Rating,
		review.Content,
	).Scan(&review.ID)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return fmt.Errorf("review for movie %d by user %s: %w",
				review.MovieID, review.UserID.String(), ErrAlreadyReviewed)
		}
		r.log.Error("Failed to create review",
			zap.Error(err),
			zap.String("user_id", review.UserID.String()),
			zap.Int64("movie_id", review.MovieID),
		)
		return fmt.Errorf("create review for movie %d by user %s: %w",
			review.MovieID, review.UserID.String(), err)
	}

	return nil
}

func (r *reviewRepository) FindByID(ctx context.Context, id int64) (*entity.Review, error) {
	query := `
		SELECT id, created_at, review_user_id, review_user_name,
		       review_movie_id, rating, review_content
		FROM reviews
		WHERE id = $1
	`

	var review entity.Review
	err := r.db.QueryRow(ctx, query, id).Scan(
		&review.ID,
		&review.CreatedAt,
		&review.UserID,
		&review.UserName,
		&review.MovieID,
		&review.Rating,
		&review.Content,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find review by ID",
			zap.Error(err),
			zap.Int64("review_id", id),
		)
		return nil, fmt.Errorf("find review %d: %w", id, err)
	}

	return &review, nil
}

func (r *reviewRepository) FindByMovieDbID(ctx context.Context, theMovieDbID int64, limit, offset int) ([]*entity.Review, error) {
	query := `
		SELECT id, created_at, review_user_id, review_user_name,
		       review_movie_id, rating, review_content
		FROM reviews
		WHERE review_movie_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, theMovieDbID, limit, offset)
	if err != nil {
		r.log.Error("Failed to find reviews by movie",
			zap.Error(err),
			zap.Int64("the_movie_db_id", theMovieDbID),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find reviews for movie %d: %w", theMovieDbID, err)
	}

	return r.collectReviews(rows)
}

func (r *reviewRepository) CountByMovieDbID(ctx context.Context, theMovieDbID int64) (int64, error) {
	query := `SELECT COUNT(*) FROM reviews WHERE review_movie_id = $1`

	var count int64
	if err := r.db.QueryRow(ctx, query, theMovieDbID).Scan(&count); err != nil {
		r.log.Error("Failed to count reviews by movie",
			zap.Error(err),
			zap.Int64("the_movie_db_id", theMovieDbID),
		)
		return 0, fmt.Errorf("count reviews for movie %d: %w", theMovieDbID, err)
	}

	return count, nil
}

func (r *reviewRepository) FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Review, error) {
	query := `
		SELECT id, created_at, review_user_id, review_user_name,
		       review_movie_id, rating, review_content
		FROM reviews
		WHERE review_user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		r.log.Error("Failed to find reviews by user",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find reviews for user %s: %w", userID.String(), err)
	}

	return r.collectReviews(rows)
}

func (r *reviewRepository) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM reviews WHERE review_user_id = $1`

	var count int64
	if err := r.db.QueryRow(ctx, query, userID).Scan(&count); err != nil {
		r.log.Error("Failed to count reviews by user",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return 0, fmt.Errorf("count reviews for user %s: %w", userID.String(), err)
	}

	return count, nil
}

func (r *reviewRepository) Update(ctx context.Context, review *entity.Review) error {
	query := `
		UPDATE reviews
		SET rating = $2, review_content = $3
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query, review.ID, review.Rating, review.Content)
	if err != nil {
		r.log.Error("Failed to update review",
			zap.Error(err),
			zap.Int64("review_id", review.ID),
		)
		return fmt.Errorf("update review %d: %w", review.ID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("review %d: %w", review.ID, ErrNotFound)
	}

	return nil
}

func (r *reviewRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM reviews WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete review",
			zap.Error(err),
			zap.Int64("review_id", id),
		)
		return fmt.Errorf("delete review %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("review %d: %w", id, ErrNotFound)
	}

	r.log.Info("Review deleted", zap.Int64("review_id", id))
	return nil
}

func (r *reviewRepository) collectReviews(rows pgx.Rows) ([]*entity.Review, error) {
	defer rows.Close()

	var reviews []*entity.Review
	for rows.Next() {
		var review entity.Review
		err := rows.Scan(
			&review.ID,
			&review.CreatedAt,
			&review.UserID,
			&review.UserName,
			&review.MovieID,
			&review.Rating,
			&review.Content,
		)
		if err != nil {
			r.log.Error("Failed to scan review row", zap.Error(err))
			return nil, fmt.Errorf("scan review row: %w", err)
		}
		reviews = append(reviews, &review)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate review rows: %w", err)
	}

	return reviews, nil
}
