package seeder

import (
	"context"
	"fmt"

	"skill-swap/internal/database"
)

// SkillsSeeder gives a fresh install a starter catalog so browsing and
// listing creation work before any member has added a skill.
type SkillsSeeder struct{}

func (SkillsSeeder) Name() string { return "skills" }

func (SkillsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "skills", "id", "name", "category", "created_at"); err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	items := []struct {
		Name     string
		Category string
	}{
		{Name: "Guitar", Category: "Music"},
		{Name: "Piano", Category: "Music"},
		{Name: "Spanish", Category: "Language"},
		{Name: "French", Category: "Language"},
		{Name: "Cooking", Category: "Culinary"},
		{Name: "Baking", Category: "Culinary"},
		{Name: "Photography", Category: "Art"},
		{Name: "Drawing", Category: "Art"},
		{Name: "Yoga", Category: "Fitness"},
		{Name: "Running", Category: "Fitness"},
		{Name: "Web Development", Category: "Technology"},
		{Name: "Graphic Design", Category: "Technology"},
		{Name: "Gardening", Category: "Home"},
		{Name: "Woodworking", Category: "Home"},
	}

	for _, it := range items {
		_, err := tx.Exec(
			ctx,
			`INSERT INTO skills (id, name, category) VALUES (gen_random_uuid(), $1, $2) ON CONFLICT (name) DO NOTHING`,
			it.Name,
			it.Category,
		)
		if err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
