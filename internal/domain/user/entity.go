package user

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	Location     string
	Availability string
	ProfilePhoto string
	IsPublic     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
