package repository

import (
	"context"
	"errors"
	"time"

	"skill-swap/internal/database"
	"skill-swap/internal/domain/swap"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ErrSwapRequestNotFound deliberately covers both "no such row" and "actor is
// not a participant" so the API never reveals whether a request id exists.
var (
	ErrSwapRequestNotFound = errors.New("swap request not found")
	ErrSwapNotCompletable  = errors.New("swap request not completable")
	ErrSwapAlreadyRated    = errors.New("swap request already rated by this user")
)

// SwapRequestRow is a request enriched with display names for the list view.
type SwapRequestRow struct {
	swap.Request

	RequesterName      string
	ProviderName       string
	RequestedSkillName string
	OfferedSkillName   *string
}

type SwapRequestRepository interface {
	Create(ctx context.Context, req swap.Request) (swap.Request, error)
	GetForParticipant(ctx context.Context, id, userID uuid.UUID) (swap.Request, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]SwapRequestRow, error)
	UpdateStatus(ctx context.Context, id, userID uuid.UUID, status swap.Status) (swap.Request, error)
	Delete(ctx context.Context, id, requesterID uuid.UUID) error
	CompleteWithRating(ctx context.Context, id, raterID uuid.UUID, score int, feedback string) (swap.Request, Rating, error)
}

type PostgresSwapRequestRepository struct {
	db database.DB
}

func NewPostgresSwapRequestRepository(db database.DB) *PostgresSwapRequestRepository {
	return &PostgresSwapRequestRepository{db: db}
}

const swapColumns = `id, requester_id, provider_id, requested_skill_id, offered_skill_id, message, status, created_at, updated_at`

func (r *PostgresSwapRequestRepository) Create(ctx context.Context, req swap.Request) (swap.Request, error) {
	_, err := r.db.Exec(ctx,
		`INSERT INTO swap_requests (id, requester_id, provider_id, requested_skill_id, offered_skill_id, message, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		req.ID, req.RequesterID, req.ProviderID, req.RequestedSkillID, req.OfferedSkillID, req.Message, req.Status,
	)
	if err != nil {
		return swap.Request{}, err
	}

	row := r.db.QueryRow(ctx, `SELECT `+swapColumns+` FROM swap_requests WHERE id = $1`, req.ID)
	return scanSwapRequest(row)
}

func (r *PostgresSwapRequestRepository) GetForParticipant(ctx context.Context, id, userID uuid.UUID) (swap.Request, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+swapColumns+` FROM swap_requests
		 WHERE id = $1 AND (requester_id = $2 OR provider_id = $2)`,
		id, userID,
	)
	return scanSwapRequest(row)
}

func (r *PostgresSwapRequestRepository) ListForUser(ctx context.Context, userID uuid.UUID) ([]SwapRequestRow, error) {
	rows, err := r.db.Query(ctx,
		`SELECT sr.id, sr.requester_id, sr.provider_id, sr.requested_skill_id, sr.offered_skill_id,
		        sr.message, sr.status, sr.created_at, sr.updated_at,
		        u_req.name, u_prov.name, s_req.name, s_off.name
		 FROM swap_requests sr
		 JOIN users u_req ON u_req.id = sr.requester_id
		 JOIN users u_prov ON u_prov.id = sr.provider_id
		 JOIN skills s_req ON s_req.id = sr.requested_skill_id
		 LEFT JOIN skills s_off ON s_off.id = sr.offered_skill_id
		 WHERE sr.requester_id = $1 OR sr.provider_id = $1
		 ORDER BY sr.created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]SwapRequestRow, 0)
	for rows.Next() {
		var sr SwapRequestRow
		if err := rows.Scan(
			&sr.ID, &sr.RequesterID, &sr.ProviderID, &sr.RequestedSkillID, &sr.OfferedSkillID,
			&sr.Message, &sr.Status, &sr.CreatedAt, &sr.UpdatedAt,
			&sr.RequesterName, &sr.ProviderName, &sr.RequestedSkillName, &sr.OfferedSkillName,
		); err != nil {
			return nil, err
		}
		out = append(out, sr)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresSwapRequestRepository) UpdateStatus(ctx context.Context, id, userID uuid.UUID, status swap.Status) (swap.Request, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE swap_requests
		 SET status = $1, updated_at = now()
		 WHERE id = $2 AND (requester_id = $3 OR provider_id = $3)
		 RETURNING `+swapColumns,
		status, id, userID,
	)
	return scanSwapRequest(row)
}

func (r *PostgresSwapRequestRepository) Delete(ctx context.Context, id, requesterID uuid.UUID) error {
	rowsAffected, err := r.db.Exec(ctx,
		`DELETE FROM swap_requests
		 WHERE id = $1 AND requester_id = $2 AND status <> $3`,
		id, requesterID, swap.StatusCompleted,
	)
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrSwapRequestNotFound
	}
	return nil
}

// CompleteWithRating commits the rating insert and the transition to
// completed as one transaction, so a crash can never leave a rating without
// the matching status change.
func (r *PostgresSwapRequestRepository) CompleteWithRating(ctx context.Context, id, raterID uuid.UUID, score int, feedback string) (swap.Request, Rating, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return swap.Request{}, Rating{}, err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	row := tx.QueryRow(ctx,
		`SELECT `+swapColumns+` FROM swap_requests
		 WHERE id = $1 AND (requester_id = $2 OR provider_id = $2)
		 FOR UPDATE`,
		id, raterID,
	)
	req, err := scanSwapRequest(row)
	if err != nil {
		return swap.Request{}, Rating{}, err
	}

	role := req.RoleOf(raterID)
	if !req.CanTransition(role, swap.StatusCompleted) {
		return swap.Request{}, Rating{}, ErrSwapNotCompletable
	}

	ratedID := req.ProviderID
	if role == swap.RoleProvider {
		ratedID = req.RequesterID
	}

	rating := Rating{
		ID:            uuid.New(),
		SwapRequestID: req.ID,
		RaterID:       raterID,
		RatedID:       ratedID,
		Score:         score,
		Feedback:      feedback,
	}
	_, err = tx.Exec(ctx,
		`INSERT INTO ratings (id, swap_request_id, rater_id, rated_id, rating, feedback)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		rating.ID, rating.SwapRequestID, rating.RaterID, rating.RatedID, rating.Score, rating.Feedback,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return swap.Request{}, Rating{}, ErrSwapAlreadyRated
		}
		return swap.Request{}, Rating{}, err
	}

	row = tx.QueryRow(ctx,
		`UPDATE swap_requests SET status = $1, updated_at = now() WHERE id = $2 RETURNING `+swapColumns,
		swap.StatusCompleted, id,
	)
	updated, err := scanSwapRequest(row)
	if err != nil {
		return swap.Request{}, Rating{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return swap.Request{}, Rating{}, err
	}
	rating.CreatedAt = time.Now().UTC()
	return updated, rating, nil
}

func scanSwapRequest(row database.Row) (swap.Request, error) {
	var req swap.Request
	err := row.Scan(
		&req.ID, &req.RequesterID, &req.ProviderID, &req.RequestedSkillID, &req.OfferedSkillID,
		&req.Message, &req.Status, &req.CreatedAt, &req.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return swap.Request{}, ErrSwapRequestNotFound
		}
		return swap.Request{}, err
	}
	return req, nil
}
