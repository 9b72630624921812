package swap

import (
	"time"

	"github.com/google/uuid"
)

// Status is the lifecycle state of a swap request.
//
//	pending  -> accepted | rejected   (provider only)
//	pending  -> cancelled             (requester only)
//	accepted -> completed             (either party)
//
// completed is terminal. rejected and cancelled accept no further
// transitions but the requester may still delete the record.
type Status string

const (
	StatusPending   Status = "pending"
	StatusAccepted  Status = "accepted"
	StatusRejected  Status = "rejected"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusRejected, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

func (s Status) Terminal() bool {
	switch s {
	case StatusRejected, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Role of the acting party relative to a given request.
type Role int

const (
	RoleNone Role = iota
	RoleRequester
	RoleProvider
)

type Request struct {
	ID               uuid.UUID
	RequesterID      uuid.UUID
	ProviderID       uuid.UUID
	RequestedSkillID uuid.UUID
	OfferedSkillID   *uuid.UUID
	Message          string
	Status           Status
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (r Request) RoleOf(userID uuid.UUID) Role {
	switch userID {
	case r.RequesterID:
		return RoleRequester
	case r.ProviderID:
		return RoleProvider
	}
	return RoleNone
}

// CanTransition reports whether the given role may move the request from its
// current status to next. Callers must have already established that the
// actor is a participant; RoleNone is always refused.
func (r Request) CanTransition(role Role, next Status) bool {
	if role == RoleNone || !next.Valid() {
		return false
	}

	switch r.Status {
	case StatusPending:
		switch next {
		case StatusAccepted, StatusRejected:
			return role == RoleProvider
		case StatusCancelled:
			return role == RoleRequester
		}
	case StatusAccepted:
		return next == StatusCompleted
	}

	return false
}

// Deletable reports whether the requester may remove the record. Completed
// swaps are kept for the rating history.
func (r Request) Deletable(role Role) bool {
	return role == RoleRequester && r.Status != StatusCompleted
}
