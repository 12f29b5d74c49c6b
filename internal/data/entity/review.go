package entity

import (
	"time"

	"github.com/google/uuid"
)

// Review is a user-submitted movie review. MovieID holds the movie's
// the_movie_db_id, so review lookups resolve the external id first.
type Review struct {
	ID        int64     `db:"id"`
	CreatedAt time.Time `db:"created_at"`
	UserID    uuid.UUID `db:"review_user_id"`
	UserName  string    `db:"review_user_name"`
	MovieID   int64     `db:"review_movie_id"`
	Rating    int       `db:"rating"` // 1-5
	Content   string    `db:"review_content"`
}
