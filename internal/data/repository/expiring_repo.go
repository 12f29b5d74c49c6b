package repository

import (
	"context"
	"fmt"
	"time"

	"movie-catalog/internal/data/entity"
	"movie-catalog/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ExpiringRepository interface {
	// FindExpiring returns rows whose expiry date is on or after the given
	// date, soonest first. The boundary is inclusive.
	FindExpiring(ctx context.Context, from time.Time) ([]*entity.NetflixHorrorExpiring, error)
	FindByTheMovieDbID(ctx context.Context, theMovieDbID int64) (*entity.NetflixHorrorExpiring, error)
}

type expiringRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewExpiringRepository(db database.PgxIface, log *zap.Logger) ExpiringRepository {
	return &expiringRepository{
		db:  db,
		log: log.With(zap.String("repository", "expiring")),
	}
}

func (r *expiringRepository) FindExpiring(ctx context.Context, from time.Time) ([]*entity.NetflixHorrorExpiring, error) {
	query := `
		SELECT id, title, expired_date, the_movie_db_id
		FROM netflix_horror_expiring
		WHERE expired_date >= $1
		ORDER BY expired_date ASC
	`

	rows, err := r.db.Query(ctx, query, from)
	if err != nil {
		r.log.Error("Failed to find expiring movies",
			zap.Error(err),
			zap.Time("from", from),
		)
		return nil, fmt.Errorf("find expiring movies: %w", err)
	}
	defer rows.Close()

	var expiring []*entity.NetflixHorrorExpiring
	for rows.Next() {
		var row entity.NetflixHorrorExpiring
		if err := rows.Scan(&row.ID, &row.Title, &row.ExpiredDate, &row.TheMovieDbID); err != nil {
			r.log.Error("Failed to scan expiring row", zap.Error(err))
			return nil, fmt.Errorf("scan expiring row: %w", err)
		}
		expiring = append(expiring, &row)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate expiring rows: %w", err)
	}

	return expiring, nil
}

func (r *expiringRepository) FindByTheMovieDbID(ctx context.Context, theMovieDbID int64) (*entity.NetflixHorrorExpiring, error) {
	query := `
		SELECT id, title, expired_date, the_movie_db_id
		FROM netflix_horror_expiring
		WHERE the_movie_db_id = $1
		LIMIT 1
	`

	var row entity.NetflixHorrorExpiring
	err := r.db.QueryRow(ctx, query, theMovieDbID).Scan(
		&row.ID,
		&row.Title,
		&row.ExpiredDate,
		&row.TheMovieDbID,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find expiring row by the_movie_db_id",
			zap.Error(err),
			zap.Int64("the_movie_db_id", theMovieDbID),
		)
		return nil, fmt.Errorf("find expiring row for external id %d: %w", theMovieDbID, err)
	}

	return &row, nil
}
