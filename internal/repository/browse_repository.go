package repository

import (
	"context"
	"fmt"

	"skill-swap/internal/database"

	"github.com/google/uuid"
)

// BrowseRow is a public member of the directory with the skill names they
// offer and want.
type BrowseRow struct {
	ID            uuid.UUID
	Name          string
	Location      string
	ProfilePhoto  string
	Availability  string
	OfferedSkills []string
	WantedSkills  []string
}

type BrowseFilter struct {
	// Skill matches case-insensitive substrings of offered or wanted
	// skill names; Search matches the display name. Both are AND-ed.
	Skill  string
	Search string
}

type BrowseRepository interface {
	BrowseUsers(ctx context.Context, requestingUser uuid.UUID, filter BrowseFilter) ([]BrowseRow, error)
}

type PostgresBrowseRepository struct {
	db database.DB
}

func NewPostgresBrowseRepository(db database.DB) *PostgresBrowseRepository {
	return &PostgresBrowseRepository{db: db}
}

func (r *PostgresBrowseRepository) BrowseUsers(ctx context.Context, requestingUser uuid.UUID, filter BrowseFilter) ([]BrowseRow, error) {
	query := `
		SELECT u.id, u.name, u.location, u.profile_photo, u.availability,
		       array_remove(array_agg(DISTINCT s_offered.name), NULL),
		       array_remove(array_agg(DISTINCT s_wanted.name), NULL)
		FROM users u
		LEFT JOIN user_skills_offered uso ON uso.user_id = u.id
		LEFT JOIN skills s_offered ON s_offered.id = uso.skill_id
		LEFT JOIN user_skills_wanted usw ON usw.user_id = u.id
		LEFT JOIN skills s_wanted ON s_wanted.id = usw.skill_id
		WHERE u.is_public = TRUE AND u.id <> $1`

	args := []any{requestingUser}

	if filter.Skill != "" {
		args = append(args, "%"+filter.Skill+"%")
		query += fmt.Sprintf(" AND (s_offered.name ILIKE $%d OR s_wanted.name ILIKE $%d)", len(args), len(args))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		query += fmt.Sprintf(" AND u.name ILIKE $%d", len(args))
	}

	query += `
		GROUP BY u.id, u.name, u.location, u.profile_photo, u.availability
		ORDER BY u.name ASC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]BrowseRow, 0)
	for rows.Next() {
		var b BrowseRow
		if err := rows.Scan(&b.ID, &b.Name, &b.Location, &b.ProfilePhoto, &b.Availability, &b.OfferedSkills, &b.WantedSkills); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
