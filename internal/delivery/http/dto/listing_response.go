package dto

import (
	"time"

	"skill-swap/internal/repository"

	"github.com/google/uuid"
)

type OfferedListingResponse struct {
	ID               uuid.UUID `json:"id"`
	SkillID          uuid.UUID `json:"skill_id"`
	SkillName        string    `json:"skill_name"`
	Category         string    `json:"category"`
	ProficiencyLevel string    `json:"proficiency_level"`
	Description      string    `json:"description"`
	CreatedAt        time.Time `json:"created_at"`
}

func NewOfferedListingResponse(l repository.OfferedListing) OfferedListingResponse {
	return OfferedListingResponse{
		ID:               l.ID,
		SkillID:          l.SkillID,
		SkillName:        l.SkillName,
		Category:         l.SkillCategory,
		ProficiencyLevel: l.ProficiencyLevel,
		Description:      l.Description,
		CreatedAt:        l.CreatedAt,
	}
}

type WantedListingResponse struct {
	ID           uuid.UUID `json:"id"`
	SkillID      uuid.UUID `json:"skill_id"`
	SkillName    string    `json:"skill_name"`
	Category     string    `json:"category"`
	UrgencyLevel string    `json:"urgency_level"`
	Description  string    `json:"description"`
	CreatedAt    time.Time `json:"created_at"`
}

func NewWantedListingResponse(l repository.WantedListing) WantedListingResponse {
	return WantedListingResponse{
		ID:           l.ID,
		SkillID:      l.SkillID,
		SkillName:    l.SkillName,
		Category:     l.SkillCategory,
		UrgencyLevel: l.UrgencyLevel,
		Description:  l.Description,
		CreatedAt:    l.CreatedAt,
	}
}
