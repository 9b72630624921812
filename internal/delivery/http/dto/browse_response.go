package dto

import (
	"skill-swap/internal/repository"

	"github.com/google/uuid"
)

type BrowseUserResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Location      string    `json:"location"`
	ProfilePhoto  string    `json:"profile_photo"`
	Availability  string    `json:"availability"`
	OfferedSkills []string  `json:"offered_skills"`
	WantedSkills  []string  `json:"wanted_skills"`
}

func NewBrowseUserResponse(row repository.BrowseRow) BrowseUserResponse {
	return BrowseUserResponse{
		ID:            row.ID,
		Name:          row.Name,
		Location:      row.Location,
		ProfilePhoto:  row.ProfilePhoto,
		Availability:  row.Availability,
		OfferedSkills: row.OfferedSkills,
		WantedSkills:  row.WantedSkills,
	}
}
