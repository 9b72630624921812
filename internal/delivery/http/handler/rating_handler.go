package handler

import (
	"errors"

	"skill-swap/internal/delivery/http/dto"
	"skill-swap/internal/delivery/http/middleware"
	"skill-swap/internal/pkg/response"
	"skill-swap/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type RatingHandler struct {
	uc usecase.RatingUsecase
}

type createRatingRequest struct {
	SwapRequestID uuid.UUID `json:"swap_request_id"`
	RatedID       uuid.UUID `json:"rated_id"`
	Rating        int       `json:"rating"`
	Feedback      string    `json:"feedback"`
}

func NewRatingHandler(uc usecase.RatingUsecase) *RatingHandler {
	return &RatingHandler{uc: uc}
}

// RegisterPublicRoutes exposes rating summaries, which are part of a public
// profile.
func (h *RatingHandler) RegisterPublicRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/ratings/user/:userId", h.Summary)
}

func (h *RatingHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/ratings", h.Create)
}

func (h *RatingHandler) Create(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req createRatingRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	created, err := h.uc.CreateRating(c.Context(), userID, usecase.CreateRatingInput{
		SwapRequestID: req.SwapRequestID,
		RatedID:       req.RatedID,
		Score:         req.Rating,
		Feedback:      req.Feedback,
	})
	if err != nil {
		return mapRatingUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, dto.NewRatingResponse(created))
}

func (h *RatingHandler) Summary(c fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	summary, err := h.uc.SummaryFor(c.Context(), userID)
	if err != nil {
		return mapRatingUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewRatingSummaryResponse(summary))
}

func mapRatingUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidScore):
		return middleware.NewAppError(fiber.StatusBadRequest, "Rating must be between 1 and 5", nil, err)
	case errors.Is(err, usecase.ErrAlreadyRated):
		return middleware.NewAppError(fiber.StatusConflict, "Swap request already rated", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
