package usecase

import (
	"context"
	"errors"
	"testing"

	"skill-swap/internal/repository"

	"github.com/google/uuid"
)

type mockOfferedRepo struct {
	items []repository.OfferedListing
	err   error
}

func (m *mockOfferedRepo) FindByUserID(context.Context, uuid.UUID) ([]repository.OfferedListing, error) {
	return m.items, m.err
}

func (m *mockOfferedRepo) Create(_ context.Context, l repository.OfferedListing) (repository.OfferedListing, error) {
	if m.err != nil {
		return repository.OfferedListing{}, m.err
	}
	for _, existing := range m.items {
		if existing.UserID == l.UserID && existing.SkillID == l.SkillID {
			return repository.OfferedListing{}, repository.ErrListingAlreadyExists
		}
	}
	m.items = append(m.items, l)
	return l, nil
}

type mockWantedRepo struct {
	items []repository.WantedListing
	err   error
}

func (m *mockWantedRepo) FindByUserID(context.Context, uuid.UUID) ([]repository.WantedListing, error) {
	return m.items, m.err
}

func (m *mockWantedRepo) Create(_ context.Context, l repository.WantedListing) (repository.WantedListing, error) {
	if m.err != nil {
		return repository.WantedListing{}, m.err
	}
	m.items = append(m.items, l)
	return l, nil
}

func newListingFixture(skillID uuid.UUID) (*Listing, *mockOfferedRepo) {
	offered := &mockOfferedRepo{}
	wanted := &mockWantedRepo{}
	skills := mockSkillRepo{existing: map[uuid.UUID]bool{skillID: true}}
	return NewListingUsecase(offered, wanted, skills), offered
}

func TestAddOffered_InvalidProficiency(t *testing.T) {
	skillID := uuid.New()
	uc, _ := newListingFixture(skillID)

	_, err := uc.AddOffered(context.Background(), uuid.New(), AddOfferedListingInput{
		SkillID:          skillID,
		ProficiencyLevel: "wizard",
	})
	if !errors.Is(err, ErrInvalidProficiencyLevel) {
		t.Fatalf("expected ErrInvalidProficiencyLevel, got %v", err)
	}
}

func TestAddOffered_NormalizesLevel(t *testing.T) {
	skillID := uuid.New()
	uc, _ := newListingFixture(skillID)

	created, err := uc.AddOffered(context.Background(), uuid.New(), AddOfferedListingInput{
		SkillID:          skillID,
		ProficiencyLevel: "  Expert ",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if created.ProficiencyLevel != "expert" {
		t.Fatalf("expected lowercase level, got %q", created.ProficiencyLevel)
	}
}

func TestAddOffered_UnknownSkill(t *testing.T) {
	uc, _ := newListingFixture(uuid.New())

	_, err := uc.AddOffered(context.Background(), uuid.New(), AddOfferedListingInput{
		SkillID:          uuid.New(),
		ProficiencyLevel: "beginner",
	})
	if !errors.Is(err, ErrSkillNotFound) {
		t.Fatalf("expected ErrSkillNotFound, got %v", err)
	}
}

func TestAddOffered_DuplicatePair(t *testing.T) {
	skillID := uuid.New()
	uc, _ := newListingFixture(skillID)
	userID := uuid.New()

	in := AddOfferedListingInput{SkillID: skillID, ProficiencyLevel: "advanced"}
	if _, err := uc.AddOffered(context.Background(), userID, in); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	_, err := uc.AddOffered(context.Background(), userID, in)
	if !errors.Is(err, ErrAlreadyListed) {
		t.Fatalf("expected ErrAlreadyListed, got %v", err)
	}
}

func TestAddWanted_InvalidUrgency(t *testing.T) {
	skillID := uuid.New()
	uc, _ := newListingFixture(skillID)

	_, err := uc.AddWanted(context.Background(), uuid.New(), AddWantedListingInput{
		SkillID:      skillID,
		UrgencyLevel: "immediately",
	})
	if !errors.Is(err, ErrInvalidUrgencyLevel) {
		t.Fatalf("expected ErrInvalidUrgencyLevel, got %v", err)
	}
}

func TestAddWanted_Success(t *testing.T) {
	skillID := uuid.New()
	uc, _ := newListingFixture(skillID)

	created, err := uc.AddWanted(context.Background(), uuid.New(), AddWantedListingInput{
		SkillID:      skillID,
		UrgencyLevel: "HIGH",
		Description:  " want to learn ",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if created.UrgencyLevel != "high" {
		t.Fatalf("expected lowercase urgency, got %q", created.UrgencyLevel)
	}
	if created.Description != "want to learn" {
		t.Fatalf("expected trimmed description, got %q", created.Description)
	}
}
