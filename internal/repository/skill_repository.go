package repository

import (
	"context"
	"errors"
	"time"

	"skill-swap/internal/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrSkillNotFound = errors.New("skill not found")

const DefaultSkillCategory = "Other"

type Skill struct {
	ID        uuid.UUID
	Name      string
	Category  string
	CreatedAt time.Time
}

type SkillRepository interface {
	GetAllSkills(ctx context.Context) ([]Skill, error)
	FindByName(ctx context.Context, name string) (Skill, error)
	FindOrCreate(ctx context.Context, name, category string) (Skill, error)
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
}

type PostgresSkillRepository struct {
	db database.DB
}

func NewPostgresSkillRepository(db database.DB) *PostgresSkillRepository {
	return &PostgresSkillRepository{db: db}
}

func (r *PostgresSkillRepository) GetAllSkills(ctx context.Context) ([]Skill, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, category, created_at FROM skills ORDER BY name ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Skill, 0)
	for rows.Next() {
		var s Skill
		if err := rows.Scan(&s.ID, &s.Name, &s.Category, &s.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresSkillRepository) FindByName(ctx context.Context, name string) (Skill, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, name, category, created_at FROM skills WHERE name = $1`,
		name,
	)

	var s Skill
	if err := row.Scan(&s.ID, &s.Name, &s.Category, &s.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Skill{}, ErrSkillNotFound
		}
		return Skill{}, err
	}
	return s, nil
}

// FindOrCreate matches by exact name. The UNIQUE(name) index makes
// concurrent first references converge on a single row: the insert is
// ON CONFLICT DO NOTHING and the loser re-reads the winner's row.
func (r *PostgresSkillRepository) FindOrCreate(ctx context.Context, name, category string) (Skill, error) {
	existing, err := r.FindByName(ctx, name)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, ErrSkillNotFound) {
		return Skill{}, err
	}

	if category == "" {
		category = DefaultSkillCategory
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO skills (id, name, category) VALUES ($1, $2, $3)
		 ON CONFLICT (name) DO NOTHING`,
		uuid.New(), name, category,
	)
	if err != nil {
		return Skill{}, err
	}

	return r.FindByName(ctx, name)
}

func (r *PostgresSkillRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM skills WHERE id = $1)`, id)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}
