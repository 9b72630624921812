package usecase

import (
	"context"
	"errors"
	"strings"

	"skill-swap/internal/domain/swap"
	"skill-swap/internal/domain/user"
	"skill-swap/internal/infrastructure/cache"
	"skill-swap/internal/repository"
	"skill-swap/internal/ws"

	"github.com/google/uuid"
)

var (
	// ErrSwapRequestNotFound intentionally conflates a missing row with an
	// actor who is not a participant, so callers cannot probe which
	// request ids exist.
	ErrSwapRequestNotFound = errors.New("swap request not found")
	ErrInvalidTransition   = errors.New("invalid status transition")
	ErrSelfSwap            = errors.New("cannot request a swap with yourself")
	ErrInvalidScore        = errors.New("rating must be between 1 and 5")
	ErrAlreadyRated        = errors.New("swap request already rated by this user")
)

type CreateSwapRequestInput struct {
	ProviderID       uuid.UUID
	RequestedSkillID uuid.UUID
	OfferedSkillID   *uuid.UUID
	Message          string
}

type CompleteSwapInput struct {
	Score    int
	Feedback string
}

type SwapRequestUsecase interface {
	Create(ctx context.Context, requesterID uuid.UUID, in CreateSwapRequestInput) (swap.Request, error)
	List(ctx context.Context, userID uuid.UUID) ([]repository.SwapRequestRow, error)
	Transition(ctx context.Context, id, actorID uuid.UUID, status string) (swap.Request, error)
	Delete(ctx context.Context, id, actorID uuid.UUID) error
	Complete(ctx context.Context, id, actorID uuid.UUID, in CompleteSwapInput) (swap.Request, repository.Rating, error)
}

type SwapRequest struct {
	swaps  repository.SwapRequestRepository
	skills repository.SkillRepository
	users  user.Repository
	cache  *cache.Redis
}

func NewSwapRequestUsecase(swaps repository.SwapRequestRepository, skills repository.SkillRepository, users user.Repository, c *cache.Redis) *SwapRequest {
	return &SwapRequest{swaps: swaps, skills: skills, users: users, cache: c}
}

func (u *SwapRequest) Create(ctx context.Context, requesterID uuid.UUID, in CreateSwapRequestInput) (swap.Request, error) {
	if in.ProviderID == uuid.Nil || in.RequestedSkillID == uuid.Nil {
		return swap.Request{}, ErrInvalidInput
	}
	if in.ProviderID == requesterID {
		return swap.Request{}, ErrSelfSwap
	}

	if _, err := u.users.GetByID(ctx, in.ProviderID); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return swap.Request{}, ErrInvalidInput
		}
		return swap.Request{}, ErrInternal
	}

	if err := u.requireSkill(ctx, in.RequestedSkillID); err != nil {
		return swap.Request{}, err
	}
	if in.OfferedSkillID != nil {
		if err := u.requireSkill(ctx, *in.OfferedSkillID); err != nil {
			return swap.Request{}, err
		}
	}

	created, err := u.swaps.Create(ctx, swap.Request{
		ID:               uuid.New(),
		RequesterID:      requesterID,
		ProviderID:       in.ProviderID,
		RequestedSkillID: in.RequestedSkillID,
		OfferedSkillID:   in.OfferedSkillID,
		Message:          strings.TrimSpace(in.Message),
		Status:           swap.StatusPending,
	})
	if err != nil {
		return swap.Request{}, ErrInternal
	}

	ws.NotifySwapRequest(ws.EventSwapRequestCreated, created)
	return created, nil
}

func (u *SwapRequest) List(ctx context.Context, userID uuid.UUID) ([]repository.SwapRequestRow, error) {
	rows, err := u.swaps.ListForUser(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}
	return rows, nil
}

// Transition applies a guarded status change. The participant check and the
// role/state rules live in domain/swap; concurrent writers race on the final
// UPDATE with last-write-wins semantics.
func (u *SwapRequest) Transition(ctx context.Context, id, actorID uuid.UUID, status string) (swap.Request, error) {
	next := swap.Status(strings.ToLower(strings.TrimSpace(status)))
	if !next.Valid() {
		return swap.Request{}, ErrInvalidTransition
	}

	req, err := u.swaps.GetForParticipant(ctx, id, actorID)
	if err != nil {
		if errors.Is(err, repository.ErrSwapRequestNotFound) {
			return swap.Request{}, ErrSwapRequestNotFound
		}
		return swap.Request{}, ErrInternal
	}

	if !req.CanTransition(req.RoleOf(actorID), next) {
		return swap.Request{}, ErrInvalidTransition
	}

	updated, err := u.swaps.UpdateStatus(ctx, id, actorID, next)
	if err != nil {
		if errors.Is(err, repository.ErrSwapRequestNotFound) {
			return swap.Request{}, ErrSwapRequestNotFound
		}
		return swap.Request{}, ErrInternal
	}

	ws.NotifySwapRequest(ws.EventSwapRequestUpdated, updated)
	return updated, nil
}

func (u *SwapRequest) Delete(ctx context.Context, id, actorID uuid.UUID) error {
	if err := u.swaps.Delete(ctx, id, actorID); err != nil {
		if errors.Is(err, repository.ErrSwapRequestNotFound) {
			return ErrSwapRequestNotFound
		}
		return ErrInternal
	}
	return nil
}

// Complete rates the counterpart and moves the request to completed in a
// single transaction.
func (u *SwapRequest) Complete(ctx context.Context, id, actorID uuid.UUID, in CompleteSwapInput) (swap.Request, repository.Rating, error) {
	if in.Score < 1 || in.Score > 5 {
		return swap.Request{}, repository.Rating{}, ErrInvalidScore
	}

	updated, rating, err := u.swaps.CompleteWithRating(ctx, id, actorID, in.Score, strings.TrimSpace(in.Feedback))
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrSwapRequestNotFound):
			return swap.Request{}, repository.Rating{}, ErrSwapRequestNotFound
		case errors.Is(err, repository.ErrSwapNotCompletable):
			return swap.Request{}, repository.Rating{}, ErrInvalidTransition
		case errors.Is(err, repository.ErrSwapAlreadyRated):
			return swap.Request{}, repository.Rating{}, ErrAlreadyRated
		}
		return swap.Request{}, repository.Rating{}, ErrInternal
	}

	_ = u.cache.Delete(ctx, cache.KeyRatingSummary(rating.RatedID.String()))
	ws.NotifySwapRequest(ws.EventSwapRequestUpdated, updated)
	return updated, rating, nil
}

func (u *SwapRequest) requireSkill(ctx context.Context, skillID uuid.UUID) error {
	exists, err := u.skills.ExistsByID(ctx, skillID)
	if err != nil {
		return ErrInternal
	}
	if !exists {
		return ErrSkillNotFound
	}
	return nil
}
