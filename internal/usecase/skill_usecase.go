package usecase

import (
	"context"
	"strings"
	"time"

	"skill-swap/internal/infrastructure/cache"
	"skill-swap/internal/repository"

	"github.com/google/uuid"
)

type SkillItem struct {
	ID       uuid.UUID
	Name     string
	Category string
}

type SkillUsecase interface {
	ListSkills(ctx context.Context) ([]SkillItem, error)
	FindOrCreateSkill(ctx context.Context, name, category string) (SkillItem, error)
}

type Skill struct {
	repo  repository.SkillRepository
	cache *cache.Redis
}

func NewSkillUsecase(repo repository.SkillRepository, c *cache.Redis) *Skill {
	return &Skill{repo: repo, cache: c}
}

func (u *Skill) ListSkills(ctx context.Context) ([]SkillItem, error) {
	var cached []SkillItem
	if hit, err := u.cache.GetJSON(ctx, cache.KeySkillCatalog, &cached); err == nil && hit {
		return cached, nil
	}

	items, err := u.repo.GetAllSkills(ctx)
	if err != nil {
		return nil, ErrInternal
	}

	out := make([]SkillItem, 0, len(items))
	for _, it := range items {
		out = append(out, SkillItem{ID: it.ID, Name: it.Name, Category: it.Category})
	}

	_ = u.cache.SetJSON(ctx, cache.KeySkillCatalog, out, 10*time.Minute)
	return out, nil
}

// FindOrCreateSkill matches by exact name (case-sensitive); absent names are
// inserted with the category defaulting to "Other".
func (u *Skill) FindOrCreateSkill(ctx context.Context, name, category string) (SkillItem, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return SkillItem{}, ErrInvalidInput
	}
	category = strings.TrimSpace(category)

	created, err := u.repo.FindOrCreate(ctx, name, category)
	if err != nil {
		return SkillItem{}, ErrInternal
	}

	_ = u.cache.Delete(ctx, cache.KeySkillCatalog)
	return SkillItem{ID: created.ID, Name: created.Name, Category: created.Category}, nil
}
