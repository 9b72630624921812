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

type ListingHandler struct {
	uc usecase.ListingUsecase
}

type addOfferedListingRequest struct {
	SkillID          uuid.UUID `json:"skill_id"`
	ProficiencyLevel string    `json:"proficiency_level"`
	Description      string    `json:"description"`
}

type addWantedListingRequest struct {
	SkillID      uuid.UUID `json:"skill_id"`
	UrgencyLevel string    `json:"urgency_level"`
	Description  string    `json:"description"`
}

func NewListingHandler(uc usecase.ListingUsecase) *ListingHandler {
	return &ListingHandler{uc: uc}
}

func (h *ListingHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/user/skills")
	grp.Get("/offered", h.ListOffered)
	grp.Post("/offered", h.AddOffered)
	grp.Get("/wanted", h.ListWanted)
	grp.Post("/wanted", h.AddWanted)
}

func (h *ListingHandler) ListOffered(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	items, err := h.uc.ListOffered(c.Context(), userID)
	if err != nil {
		return mapListingUsecaseError(err)
	}

	res := make([]dto.OfferedListingResponse, 0, len(items))
	for _, it := range items {
		res = append(res, dto.NewOfferedListingResponse(it))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *ListingHandler) AddOffered(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req addOfferedListingRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	created, err := h.uc.AddOffered(c.Context(), userID, usecase.AddOfferedListingInput{
		SkillID:          req.SkillID,
		ProficiencyLevel: req.ProficiencyLevel,
		Description:      req.Description,
	})
	if err != nil {
		return mapListingUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, dto.NewOfferedListingResponse(created))
}

func (h *ListingHandler) ListWanted(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	items, err := h.uc.ListWanted(c.Context(), userID)
	if err != nil {
		return mapListingUsecaseError(err)
	}

	res := make([]dto.WantedListingResponse, 0, len(items))
	for _, it := range items {
		res = append(res, dto.NewWantedListingResponse(it))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *ListingHandler) AddWanted(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req addWantedListingRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	created, err := h.uc.AddWanted(c.Context(), userID, usecase.AddWantedListingInput{
		SkillID:      req.SkillID,
		UrgencyLevel: req.UrgencyLevel,
		Description:  req.Description,
	})
	if err != nil {
		return mapListingUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, dto.NewWantedListingResponse(created))
}

func mapListingUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidProficiencyLevel):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid proficiency level", nil, err)
	case errors.Is(err, usecase.ErrInvalidUrgencyLevel):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid urgency level", nil, err)
	case errors.Is(err, usecase.ErrSkillNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Skill not found", nil, err)
	case errors.Is(err, usecase.ErrAlreadyListed):
		return middleware.NewAppError(fiber.StatusConflict, "Skill already listed", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
