package usecase

import (
	"context"
	"errors"
	"strings"

	"skill-swap/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrInvalidProficiencyLevel = errors.New("invalid proficiency level")
	ErrInvalidUrgencyLevel     = errors.New("invalid urgency level")
	ErrSkillNotFound           = errors.New("skill not found")
	ErrAlreadyListed           = errors.New("skill already listed")
)

var proficiencyLevels = map[string]bool{
	"beginner":     true,
	"intermediate": true,
	"advanced":     true,
	"expert":       true,
}

var urgencyLevels = map[string]bool{
	"low":    true,
	"medium": true,
	"high":   true,
	"urgent": true,
}

type AddOfferedListingInput struct {
	SkillID          uuid.UUID
	ProficiencyLevel string
	Description      string
}

type AddWantedListingInput struct {
	SkillID      uuid.UUID
	UrgencyLevel string
	Description  string
}

type ListingUsecase interface {
	ListOffered(ctx context.Context, userID uuid.UUID) ([]repository.OfferedListing, error)
	AddOffered(ctx context.Context, userID uuid.UUID, in AddOfferedListingInput) (repository.OfferedListing, error)
	ListWanted(ctx context.Context, userID uuid.UUID) ([]repository.WantedListing, error)
	AddWanted(ctx context.Context, userID uuid.UUID, in AddWantedListingInput) (repository.WantedListing, error)
}

type Listing struct {
	offered repository.OfferedListingRepository
	wanted  repository.WantedListingRepository
	skills  repository.SkillRepository
}

func NewListingUsecase(offered repository.OfferedListingRepository, wanted repository.WantedListingRepository, skills repository.SkillRepository) *Listing {
	return &Listing{offered: offered, wanted: wanted, skills: skills}
}

func (u *Listing) ListOffered(ctx context.Context, userID uuid.UUID) ([]repository.OfferedListing, error) {
	items, err := u.offered.FindByUserID(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

func (u *Listing) AddOffered(ctx context.Context, userID uuid.UUID, in AddOfferedListingInput) (repository.OfferedListing, error) {
	level := strings.ToLower(strings.TrimSpace(in.ProficiencyLevel))
	if !proficiencyLevels[level] {
		return repository.OfferedListing{}, ErrInvalidProficiencyLevel
	}

	if err := u.requireSkill(ctx, in.SkillID); err != nil {
		return repository.OfferedListing{}, err
	}

	created, err := u.offered.Create(ctx, repository.OfferedListing{
		ID:               uuid.New(),
		UserID:           userID,
		SkillID:          in.SkillID,
		ProficiencyLevel: level,
		Description:      strings.TrimSpace(in.Description),
	})
	if err != nil {
		if errors.Is(err, repository.ErrListingAlreadyExists) {
			return repository.OfferedListing{}, ErrAlreadyListed
		}
		return repository.OfferedListing{}, ErrInternal
	}
	return created, nil
}

func (u *Listing) ListWanted(ctx context.Context, userID uuid.UUID) ([]repository.WantedListing, error) {
	items, err := u.wanted.FindByUserID(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

func (u *Listing) AddWanted(ctx context.Context, userID uuid.UUID, in AddWantedListingInput) (repository.WantedListing, error) {
	level := strings.ToLower(strings.TrimSpace(in.UrgencyLevel))
	if !urgencyLevels[level] {
		return repository.WantedListing{}, ErrInvalidUrgencyLevel
	}

	if err := u.requireSkill(ctx, in.SkillID); err != nil {
		return repository.WantedListing{}, err
	}

	created, err := u.wanted.Create(ctx, repository.WantedListing{
		ID:           uuid.New(),
		UserID:       userID,
		SkillID:      in.SkillID,
		UrgencyLevel: level,
		Description:  strings.TrimSpace(in.Description),
	})
	if err != nil {
		if errors.Is(err, repository.ErrListingAlreadyExists) {
			return repository.WantedListing{}, ErrAlreadyListed
		}
		return repository.WantedListing{}, ErrInternal
	}
	return created, nil
}

func (u *Listing) requireSkill(ctx context.Context, skillID uuid.UUID) error {
	if skillID == uuid.Nil {
		return ErrInvalidInput
	}
	exists, err := u.skills.ExistsByID(ctx, skillID)
	if err != nil {
		return ErrInternal
	}
	if !exists {
		return ErrSkillNotFound
	}
	return nil
}
