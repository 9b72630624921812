package repository

import (
	"context"
	"errors"
	"time"

	"skill-swap/internal/database"

	"github.com/google/uuid"
)

var (
	ErrListingAlreadyExists = errors.New("skill already listed")
)

// OfferedListing is a skill a user teaches, with a self-reported
// proficiency tier.
type OfferedListing struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	SkillID          uuid.UUID
	SkillName        string
	SkillCategory    string
	ProficiencyLevel string
	Description      string
	CreatedAt        time.Time
}

// WantedListing is a skill a user wants to learn, with an urgency tier.
type WantedListing struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	SkillID       uuid.UUID
	SkillName     string
	SkillCategory string
	UrgencyLevel  string
	Description   string
	CreatedAt     time.Time
}

type OfferedListingRepository interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]OfferedListing, error)
	Create(ctx context.Context, l OfferedListing) (OfferedListing, error)
}

type WantedListingRepository interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]WantedListing, error)
	Create(ctx context.Context, l WantedListing) (WantedListing, error)
}

type PostgresOfferedListingRepository struct {
	db database.DB
}

func NewPostgresOfferedListingRepository(db database.DB) *PostgresOfferedListingRepository {
	return &PostgresOfferedListingRepository{db: db}
}

func (r *PostgresOfferedListingRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]OfferedListing, error) {
	rows, err := r.db.Query(ctx,
		`SELECT uso.id, uso.user_id, uso.skill_id, s.name, s.category, uso.proficiency_level, uso.description, uso.created_at
		 FROM user_skills_offered uso
		 JOIN skills s ON s.id = uso.skill_id
		 WHERE uso.user_id = $1
		 ORDER BY s.name ASC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]OfferedListing, 0)
	for rows.Next() {
		var l OfferedListing
		if err := rows.Scan(&l.ID, &l.UserID, &l.SkillID, &l.SkillName, &l.SkillCategory, &l.ProficiencyLevel, &l.Description, &l.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresOfferedListingRepository) Create(ctx context.Context, l OfferedListing) (OfferedListing, error) {
	_, err := r.db.Exec(ctx,
		`INSERT INTO user_skills_offered (id, user_id, skill_id, proficiency_level, description)
		 VALUES ($1, $2, $3, $4, $5)`,
		l.ID, l.UserID, l.SkillID, l.ProficiencyLevel, l.Description,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return OfferedListing{}, ErrListingAlreadyExists
		}
		return OfferedListing{}, err
	}

	row := r.db.QueryRow(ctx,
		`SELECT uso.id, uso.user_id, uso.skill_id, s.name, s.category, uso.proficiency_level, uso.description, uso.created_at
		 FROM user_skills_offered uso
		 JOIN skills s ON s.id = uso.skill_id
		 WHERE uso.id = $1`,
		l.ID,
	)

	var created OfferedListing
	if err := row.Scan(&created.ID, &created.UserID, &created.SkillID, &created.SkillName, &created.SkillCategory, &created.ProficiencyLevel, &created.Description, &created.CreatedAt); err != nil {
		return OfferedListing{}, err
	}
	return created, nil
}

type PostgresWantedListingRepository struct {
	db database.DB
}

func NewPostgresWantedListingRepository(db database.DB) *PostgresWantedListingRepository {
	return &PostgresWantedListingRepository{db: db}
}

func (r *PostgresWantedListingRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]WantedListing, error) {
	rows, err := r.db.Query(ctx,
		`SELECT usw.id, usw.user_id, usw.skill_id, s.name, s.category, usw.urgency_level, usw.description, usw.created_at
		 FROM user_skills_wanted usw
		 JOIN skills s ON s.id = usw.skill_id
		 WHERE usw.user_id = $1
		 ORDER BY s.name ASC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]WantedListing, 0)
	for rows.Next() {
		var l WantedListing
		if err := rows.Scan(&l.ID, &l.UserID, &l.SkillID, &l.SkillName, &l.SkillCategory, &l.UrgencyLevel, &l.Description, &l.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresWantedListingRepository) Create(ctx context.Context, l WantedListing) (WantedListing, error) {
	_, err := r.db.Exec(ctx,
		`INSERT INTO user_skills_wanted (id, user_id, skill_id, urgency_level, description)
		 VALUES ($1, $2, $3, $4, $5)`,
		l.ID, l.UserID, l.SkillID, l.UrgencyLevel, l.Description,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return WantedListing{}, ErrListingAlreadyExists
		}
		return WantedListing{}, err
	}

	row := r.db.QueryRow(ctx,
		`SELECT usw.id, usw.user_id, usw.skill_id, s.name, s.category, usw.urgency_level, usw.description, usw.created_at
		 FROM user_skills_wanted usw
		 JOIN skills s ON s.id = usw.skill_id
		 WHERE usw.id = $1`,
		l.ID,
	)

	var created WantedListing
	if err := row.Scan(&created.ID, &created.UserID, &created.SkillID, &created.SkillName, &created.SkillCategory, &created.UrgencyLevel, &created.Description, &created.CreatedAt); err != nil {
		return WantedListing{}, err
	}
	return created, nil
}
