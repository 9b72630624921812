package dto

import (
	"skill-swap/internal/usecase"

	"github.com/google/uuid"
)

type SkillResponse struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Category string    `json:"category"`
}

func NewSkillResponse(s usecase.SkillItem) SkillResponse {
	return SkillResponse{ID: s.ID, Name: s.Name, Category: s.Category}
}
