package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"skill-swap/internal/infrastructure/cache"
	"skill-swap/internal/repository"

	"github.com/google/uuid"
)

type CreateRatingInput struct {
	SwapRequestID uuid.UUID
	RatedID       uuid.UUID
	Score         int
	Feedback      string
}

type RatingUsecase interface {
	CreateRating(ctx context.Context, raterID uuid.UUID, in CreateRatingInput) (repository.Rating, error)
	SummaryFor(ctx context.Context, userID uuid.UUID) (repository.RatingSummary, error)
}

type Rating struct {
	ratings repository.RatingRepository
	cache   *cache.Redis
}

func NewRatingUsecase(ratings repository.RatingRepository, c *cache.Redis) *Rating {
	return &Rating{ratings: ratings, cache: c}
}

func (u *Rating) CreateRating(ctx context.Context, raterID uuid.UUID, in CreateRatingInput) (repository.Rating, error) {
	if in.SwapRequestID == uuid.Nil || in.RatedID == uuid.Nil {
		return repository.Rating{}, ErrInvalidInput
	}
	if in.Score < 1 || in.Score > 5 {
		return repository.Rating{}, ErrInvalidScore
	}

	created, err := u.ratings.Create(ctx, repository.Rating{
		ID:            uuid.New(),
		SwapRequestID: in.SwapRequestID,
		RaterID:       raterID,
		RatedID:       in.RatedID,
		Score:         in.Score,
		Feedback:      strings.TrimSpace(in.Feedback),
	})
	if err != nil {
		if errors.Is(err, repository.ErrSwapAlreadyRated) {
			return repository.Rating{}, ErrAlreadyRated
		}
		return repository.Rating{}, ErrInternal
	}

	_ = u.cache.Delete(ctx, cache.KeyRatingSummary(in.RatedID.String()))
	return created, nil
}

func (u *Rating) SummaryFor(ctx context.Context, userID uuid.UUID) (repository.RatingSummary, error) {
	key := cache.KeyRatingSummary(userID.String())

	var cached repository.RatingSummary
	if hit, err := u.cache.GetJSON(ctx, key, &cached); err == nil && hit {
		return cached, nil
	}

	summary, err := u.ratings.SummaryFor(ctx, userID)
	if err != nil {
		return repository.RatingSummary{}, ErrInternal
	}

	_ = u.cache.SetJSON(ctx, key, summary, 5*time.Minute)
	return summary, nil
}
