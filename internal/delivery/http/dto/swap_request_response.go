package dto

import (
	"time"

	"skill-swap/internal/domain/swap"
	"skill-swap/internal/repository"

	"github.com/google/uuid"
)

type SwapRequestResponse struct {
	ID               uuid.UUID  `json:"id"`
	RequesterID      uuid.UUID  `json:"requester_id"`
	ProviderID       uuid.UUID  `json:"provider_id"`
	RequestedSkillID uuid.UUID  `json:"requested_skill_id"`
	OfferedSkillID   *uuid.UUID `json:"offered_skill_id"`
	Message          string     `json:"message"`
	Status           string     `json:"status"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

func NewSwapRequestResponse(req swap.Request) SwapRequestResponse {
	return SwapRequestResponse{
		ID:               req.ID,
		RequesterID:      req.RequesterID,
		ProviderID:       req.ProviderID,
		RequestedSkillID: req.RequestedSkillID,
		OfferedSkillID:   req.OfferedSkillID,
		Message:          req.Message,
		Status:           string(req.Status),
		CreatedAt:        req.CreatedAt,
		UpdatedAt:        req.UpdatedAt,
	}
}

// SwapRequestListItem adds display names for the list view so clients never
// need a second round trip per row.
type SwapRequestListItem struct {
	SwapRequestResponse

	RequesterName      string  `json:"requester_name"`
	ProviderName       string  `json:"provider_name"`
	RequestedSkillName string  `json:"requested_skill_name"`
	OfferedSkillName   *string `json:"offered_skill_name"`
}

func NewSwapRequestListItem(row repository.SwapRequestRow) SwapRequestListItem {
	return SwapRequestListItem{
		SwapRequestResponse: NewSwapRequestResponse(row.Request),
		RequesterName:       row.RequesterName,
		ProviderName:        row.ProviderName,
		RequestedSkillName:  row.RequestedSkillName,
		OfferedSkillName:    row.OfferedSkillName,
	}
}
