package dto

import (
	"skill-swap/internal/domain/user"

	"github.com/google/uuid"
)

// UserResponse is the public projection of a user. The password hash is
// never part of it.
type UserResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Location     string    `json:"location"`
	ProfilePhoto string    `json:"profile_photo"`
	Availability string    `json:"availability"`
	IsPublic     bool      `json:"is_public"`
}

func NewUserResponse(u user.User) UserResponse {
	return UserResponse{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		Location:     u.Location,
		ProfilePhoto: u.ProfilePhoto,
		Availability: u.Availability,
		IsPublic:     u.IsPublic,
	}
}
