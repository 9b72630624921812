package usecase

import (
	"context"
	"errors"
	"testing"

	"skill-swap/internal/repository"

	"github.com/google/uuid"
)

type mockRatingRepo struct {
	created []repository.Rating
	summary repository.RatingSummary
	err     error
}

func (m *mockRatingRepo) Create(_ context.Context, rt repository.Rating) (repository.Rating, error) {
	if m.err != nil {
		return repository.Rating{}, m.err
	}
	for _, existing := range m.created {
		if existing.SwapRequestID == rt.SwapRequestID && existing.RaterID == rt.RaterID {
			return repository.Rating{}, repository.ErrSwapAlreadyRated
		}
	}
	m.created = append(m.created, rt)
	return rt, nil
}

func (m *mockRatingRepo) SummaryFor(context.Context, uuid.UUID) (repository.RatingSummary, error) {
	if m.err != nil {
		return repository.RatingSummary{}, m.err
	}
	return m.summary, nil
}

func TestCreateRating_ScoreOutOfRange(t *testing.T) {
	uc := NewRatingUsecase(&mockRatingRepo{}, nil)

	for _, score := range []int{0, 6} {
		_, err := uc.CreateRating(context.Background(), uuid.New(), CreateRatingInput{
			SwapRequestID: uuid.New(),
			RatedID:       uuid.New(),
			Score:         score,
		})
		if !errors.Is(err, ErrInvalidScore) {
			t.Fatalf("score %d: expected ErrInvalidScore, got %v", score, err)
		}
	}
}

func TestCreateRating_MissingIDs(t *testing.T) {
	uc := NewRatingUsecase(&mockRatingRepo{}, nil)

	_, err := uc.CreateRating(context.Background(), uuid.New(), CreateRatingInput{Score: 5})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestCreateRating_DuplicateRejected(t *testing.T) {
	uc := NewRatingUsecase(&mockRatingRepo{}, nil)
	rater := uuid.New()
	in := CreateRatingInput{SwapRequestID: uuid.New(), RatedID: uuid.New(), Score: 4}

	if _, err := uc.CreateRating(context.Background(), rater, in); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	_, err := uc.CreateRating(context.Background(), rater, in)
	if !errors.Is(err, ErrAlreadyRated) {
		t.Fatalf("expected ErrAlreadyRated, got %v", err)
	}
}

func TestCreateRating_TrimsFeedback(t *testing.T) {
	repo := &mockRatingRepo{}
	uc := NewRatingUsecase(repo, nil)

	created, err := uc.CreateRating(context.Background(), uuid.New(), CreateRatingInput{
		SwapRequestID: uuid.New(),
		RatedID:       uuid.New(),
		Score:         5,
		Feedback:      "  patient and clear  ",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if created.Feedback != "patient and clear" {
		t.Fatalf("expected trimmed feedback, got %q", created.Feedback)
	}
}

func TestRatingSummary_PassThrough(t *testing.T) {
	rated := uuid.New()
	repo := &mockRatingRepo{summary: repository.RatingSummary{
		Ratings: []repository.RatingRow{
			{Rating: repository.Rating{Score: 5}, RaterName: "Ana"},
			{Rating: repository.Rating{Score: 3}, RaterName: "Ben"},
		},
		AverageScore: 4,
		TotalRatings: 2,
	}}
	uc := NewRatingUsecase(repo, nil)

	summary, err := uc.SummaryFor(context.Background(), rated)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if summary.TotalRatings != 2 {
		t.Fatalf("expected 2 ratings, got %d", summary.TotalRatings)
	}
	if summary.AverageScore != 4 {
		t.Fatalf("expected average 4, got %v", summary.AverageScore)
	}
}
