package handler

import (
	"skill-swap/internal/delivery/http/dto"
	"skill-swap/internal/delivery/http/middleware"
	"skill-swap/internal/pkg/response"
	"skill-swap/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type BrowseHandler struct {
	uc usecase.BrowseUsecase
}

func NewBrowseHandler(uc usecase.BrowseUsecase) *BrowseHandler {
	return &BrowseHandler{uc: uc}
}

func (h *BrowseHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/users/browse", h.Browse)
}

func (h *BrowseHandler) Browse(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	rows, err := h.uc.BrowseUsers(c.Context(), userID, c.Query("skill"), c.Query("search"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	res := make([]dto.BrowseUserResponse, 0, len(rows))
	for _, row := range rows {
		res = append(res, dto.NewBrowseUserResponse(row))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}
