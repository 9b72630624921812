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

type SwapRequestHandler struct {
	uc usecase.SwapRequestUsecase
}

type createSwapRequestRequest struct {
	ProviderID       uuid.UUID  `json:"provider_id"`
	RequestedSkillID uuid.UUID  `json:"requested_skill_id"`
	OfferedSkillID   *uuid.UUID `json:"offered_skill_id"`
	Message          string     `json:"message"`
}

type updateSwapRequestRequest struct {
	Status string `json:"status"`
}

type completeSwapRequestRequest struct {
	Rating   int    `json:"rating"`
	Feedback string `json:"feedback"`
}

func NewSwapRequestHandler(uc usecase.SwapRequestUsecase) *SwapRequestHandler {
	return &SwapRequestHandler{uc: uc}
}

func (h *SwapRequestHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/swap-requests")
	grp.Get("/", h.List)
	grp.Post("/", h.Create)
	grp.Put("/:id", h.UpdateStatus)
	grp.Delete("/:id", h.Delete)
	grp.Post("/:id/complete", h.Complete)
}

func (h *SwapRequestHandler) List(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	rows, err := h.uc.List(c.Context(), userID)
	if err != nil {
		return mapSwapRequestUsecaseError(err)
	}

	res := make([]dto.SwapRequestListItem, 0, len(rows))
	for _, row := range rows {
		res = append(res, dto.NewSwapRequestListItem(row))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *SwapRequestHandler) Create(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req createSwapRequestRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	created, err := h.uc.Create(c.Context(), userID, usecase.CreateSwapRequestInput{
		ProviderID:       req.ProviderID,
		RequestedSkillID: req.RequestedSkillID,
		OfferedSkillID:   req.OfferedSkillID,
		Message:          req.Message,
	})
	if err != nil {
		return mapSwapRequestUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, dto.NewSwapRequestResponse(created))
}

func (h *SwapRequestHandler) UpdateStatus(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	var req updateSwapRequestRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	updated, err := h.uc.Transition(c.Context(), id, userID, req.Status)
	if err != nil {
		return mapSwapRequestUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewSwapRequestResponse(updated))
}

func (h *SwapRequestHandler) Delete(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	if err := h.uc.Delete(c.Context(), id, userID); err != nil {
		return mapSwapRequestUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func (h *SwapRequestHandler) Complete(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	var req completeSwapRequestRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	updated, rating, err := h.uc.Complete(c.Context(), id, userID, usecase.CompleteSwapInput{
		Score:    req.Rating,
		Feedback: req.Feedback,
	})
	if err != nil {
		return mapSwapRequestUsecaseError(err)
	}

	data := map[string]any{
		"swap_request": dto.NewSwapRequestResponse(updated),
		"rating":       dto.NewRatingResponse(rating),
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}

func mapSwapRequestUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrSwapRequestNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Swap request not found", nil, err)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid status transition", nil, err)
	case errors.Is(err, usecase.ErrSelfSwap):
		return middleware.NewAppError(fiber.StatusBadRequest, "Cannot request a swap with yourself", nil, err)
	case errors.Is(err, usecase.ErrInvalidScore):
		return middleware.NewAppError(fiber.StatusBadRequest, "Rating must be between 1 and 5", nil, err)
	case errors.Is(err, usecase.ErrAlreadyRated):
		return middleware.NewAppError(fiber.StatusConflict, "Swap request already rated", nil, err)
	case errors.Is(err, usecase.ErrSkillNotFound):
		return middleware.NewAppError(fiber.StatusBadRequest, "Unknown skill", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
