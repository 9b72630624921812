package dto

import (
	"time"

	"skill-swap/internal/repository"

	"github.com/google/uuid"
)

type RatingResponse struct {
	ID            uuid.UUID `json:"id"`
	SwapRequestID uuid.UUID `json:"swap_request_id"`
	RaterID       uuid.UUID `json:"rater_id"`
	RatedID       uuid.UUID `json:"rated_id"`
	Rating        int       `json:"rating"`
	Feedback      string    `json:"feedback"`
	CreatedAt     time.Time `json:"created_at"`
}

func NewRatingResponse(rt repository.Rating) RatingResponse {
	return RatingResponse{
		ID:            rt.ID,
		SwapRequestID: rt.SwapRequestID,
		RaterID:       rt.RaterID,
		RatedID:       rt.RatedID,
		Rating:        rt.Score,
		Feedback:      rt.Feedback,
		CreatedAt:     rt.CreatedAt,
	}
}

type RatingListItem struct {
	RatingResponse
	RaterName string `json:"rater_name"`
}

type RatingSummaryResponse struct {
	Ratings      []RatingListItem `json:"ratings"`
	AverageScore float64          `json:"average_score"`
	TotalRatings int              `json:"total_ratings"`
}

func NewRatingSummaryResponse(s repository.RatingSummary) RatingSummaryResponse {
	items := make([]RatingListItem, 0, len(s.Ratings))
	for _, rr := range s.Ratings {
		items = append(items, RatingListItem{
			RatingResponse: NewRatingResponse(rr.Rating),
			RaterName:      rr.RaterName,
		})
	}
	return RatingSummaryResponse{
		Ratings:      items,
		AverageScore: s.AverageScore,
		TotalRatings: s.TotalRatings,
	}
}
