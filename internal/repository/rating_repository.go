package repository

import (
	"context"
	"time"

	"skill-swap/internal/database"

	"github.com/google/uuid"
)

type Rating struct {
	ID            uuid.UUID
	SwapRequestID uuid.UUID
	RaterID       uuid.UUID
	RatedID       uuid.UUID
	Score         int
	Feedback      string
	CreatedAt     time.Time
}

// RatingRow is a rating enriched with the rater's display name.
type RatingRow struct {
	Rating
	RaterName string
}

type RatingSummary struct {
	Ratings      []RatingRow
	AverageScore float64
	TotalRatings int
}

type RatingRepository interface {
	Create(ctx context.Context, rt Rating) (Rating, error)
	SummaryFor(ctx context.Context, userID uuid.UUID) (RatingSummary, error)
}

type PostgresRatingRepository struct {
	db database.DB
}

func NewPostgresRatingRepository(db database.DB) *PostgresRatingRepository {
	return &PostgresRatingRepository{db: db}
}

func (r *PostgresRatingRepository) Create(ctx context.Context, rt Rating) (Rating, error) {
	_, err := r.db.Exec(ctx,
		`INSERT INTO ratings (id, swap_request_id, rater_id, rated_id, rating, feedback)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		rt.ID, rt.SwapRequestID, rt.RaterID, rt.RatedID, rt.Score, rt.Feedback,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return Rating{}, ErrSwapAlreadyRated
		}
		return Rating{}, err
	}

	row := r.db.QueryRow(ctx,
		`SELECT id, swap_request_id, rater_id, rated_id, rating, feedback, created_at
		 FROM ratings WHERE id = $1`,
		rt.ID,
	)

	var created Rating
	if err := row.Scan(&created.ID, &created.SwapRequestID, &created.RaterID, &created.RatedID, &created.Score, &created.Feedback, &created.CreatedAt); err != nil {
		return Rating{}, err
	}
	return created, nil
}

func (r *PostgresRatingRepository) SummaryFor(ctx context.Context, userID uuid.UUID) (RatingSummary, error) {
	rows, err := r.db.Query(ctx,
		`SELECT r.id, r.swap_request_id, r.rater_id, r.rated_id, r.rating, r.feedback, r.created_at, u.name
		 FROM ratings r
		 JOIN users u ON u.id = r.rater_id
		 WHERE r.rated_id = $1
		 ORDER BY r.created_at DESC`,
		userID,
	)
	if err != nil {
		return RatingSummary{}, err
	}
	defer rows.Close()

	summary := RatingSummary{Ratings: make([]RatingRow, 0)}
	var total int
	for rows.Next() {
		var rr RatingRow
		if err := rows.Scan(&rr.ID, &rr.SwapRequestID, &rr.RaterID, &rr.RatedID, &rr.Score, &rr.Feedback, &rr.CreatedAt, &rr.RaterName); err != nil {
			return RatingSummary{}, err
		}
		summary.Ratings = append(summary.Ratings, rr)
		total += rr.Score
	}
	if err := rows.Err(); err != nil {
		return RatingSummary{}, err
	}

	summary.TotalRatings = len(summary.Ratings)
	if summary.TotalRatings > 0 {
		summary.AverageScore = float64(total) / float64(summary.TotalRatings)
	}
	return summary, nil
}
