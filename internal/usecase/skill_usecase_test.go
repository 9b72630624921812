package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"skill-swap/internal/repository"

	"github.com/google/uuid"
)

type mockSkillCatalogRepo struct {
	skills []repository.Skill
	err    error
}

func (m *mockSkillCatalogRepo) GetAllSkills(context.Context) ([]repository.Skill, error) {
	return m.skills, m.err
}

func (m *mockSkillCatalogRepo) FindByName(_ context.Context, name string) (repository.Skill, error) {
	for _, s := range m.skills {
		if s.Name == name {
			return s, nil
		}
	}
	return repository.Skill{}, repository.ErrSkillNotFound
}

func (m *mockSkillCatalogRepo) FindOrCreate(_ context.Context, name, category string) (repository.Skill, error) {
	if m.err != nil {
		return repository.Skill{}, m.err
	}
	for _, s := range m.skills {
		if s.Name == name {
			return s, nil
		}
	}
	if strings.TrimSpace(category) == "" {
		category = repository.DefaultSkillCategory
	}
	created := repository.Skill{ID: uuid.New(), Name: name, Category: category}
	m.skills = append(m.skills, created)
	return created, nil
}

func (m *mockSkillCatalogRepo) ExistsByID(_ context.Context, id uuid.UUID) (bool, error) {
	for _, s := range m.skills {
		if s.ID == id {
			return true, nil
		}
	}
	return false, nil
}

func TestListSkills_MapsCatalog(t *testing.T) {
	repo := &mockSkillCatalogRepo{skills: []repository.Skill{
		{ID: uuid.New(), Name: "Guitar", Category: "Music"},
		{ID: uuid.New(), Name: "Spanish", Category: "Language"},
	}}
	uc := NewSkillUsecase(repo, nil)

	items, err := uc.ListSkills(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Name != "Guitar" || items[0].Category != "Music" {
		t.Fatalf("unexpected first item: %+v", items[0])
	}
}

func TestFindOrCreateSkill_EmptyName(t *testing.T) {
	uc := NewSkillUsecase(&mockSkillCatalogRepo{}, nil)

	_, err := uc.FindOrCreateSkill(context.Background(), "   ", "")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestFindOrCreateSkill_ReusesExistingRow(t *testing.T) {
	repo := &mockSkillCatalogRepo{}
	uc := NewSkillUsecase(repo, nil)

	first, err := uc.FindOrCreateSkill(context.Background(), "Guitar", "Music")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	second, err := uc.FindOrCreateSkill(context.Background(), " Guitar ", "Other")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if first.ID != second.ID {
		t.Fatalf("expected the same skill row, got %s and %s", first.ID, second.ID)
	}
}

func TestFindOrCreateSkill_DefaultCategory(t *testing.T) {
	repo := &mockSkillCatalogRepo{}
	uc := NewSkillUsecase(repo, nil)

	created, err := uc.FindOrCreateSkill(context.Background(), "Juggling", "")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if created.Category != repository.DefaultSkillCategory {
		t.Fatalf("expected default category, got %q", created.Category)
	}
}
