package usecase

import (
	"context"
	"errors"
	"testing"

	"skill-swap/internal/domain/swap"
	"skill-swap/internal/domain/user"
	"skill-swap/internal/repository"

	"github.com/google/uuid"
)

type mockSwapRepo struct {
	requests map[uuid.UUID]swap.Request
	rated    map[uuid.UUID]bool
	err      error
}

func newMockSwapRepo() *mockSwapRepo {
	return &mockSwapRepo{requests: map[uuid.UUID]swap.Request{}, rated: map[uuid.UUID]bool{}}
}

func (m *mockSwapRepo) Create(_ context.Context, req swap.Request) (swap.Request, error) {
	if m.err != nil {
		return swap.Request{}, m.err
	}
	m.requests[req.ID] = req
	return req, nil
}

func (m *mockSwapRepo) GetForParticipant(_ context.Context, id, userID uuid.UUID) (swap.Request, error) {
	req, ok := m.requests[id]
	if !ok || req.RoleOf(userID) == swap.RoleNone {
		return swap.Request{}, repository.ErrSwapRequestNotFound
	}
	return req, nil
}

func (m *mockSwapRepo) ListForUser(_ context.Context, userID uuid.UUID) ([]repository.SwapRequestRow, error) {
	out := make([]repository.SwapRequestRow, 0)
	for _, req := range m.requests {
		if req.RoleOf(userID) != swap.RoleNone {
			out = append(out, repository.SwapRequestRow{Request: req})
		}
	}
	return out, nil
}

func (m *mockSwapRepo) UpdateStatus(_ context.Context, id, userID uuid.UUID, status swap.Status) (swap.Request, error) {
	req, ok := m.requests[id]
	if !ok || req.RoleOf(userID) == swap.RoleNone {
		return swap.Request{}, repository.ErrSwapRequestNotFound
	}
	req.Status = status
	m.requests[id] = req
	return req, nil
}

func (m *mockSwapRepo) Delete(_ context.Context, id, requesterID uuid.UUID) error {
	req, ok := m.requests[id]
	if !ok || req.RequesterID != requesterID || req.Status == swap.StatusCompleted {
		return repository.ErrSwapRequestNotFound
	}
	delete(m.requests, id)
	return nil
}

func (m *mockSwapRepo) CompleteWithRating(_ context.Context, id, raterID uuid.UUID, score int, feedback string) (swap.Request, repository.Rating, error) {
	req, ok := m.requests[id]
	if !ok || req.RoleOf(raterID) == swap.RoleNone {
		return swap.Request{}, repository.Rating{}, repository.ErrSwapRequestNotFound
	}
	role := req.RoleOf(raterID)
	if !req.CanTransition(role, swap.StatusCompleted) {
		return swap.Request{}, repository.Rating{}, repository.ErrSwapNotCompletable
	}
	if m.rated[id] {
		return swap.Request{}, repository.Rating{}, repository.ErrSwapAlreadyRated
	}
	m.rated[id] = true

	ratedID := req.ProviderID
	if role == swap.RoleProvider {
		ratedID = req.RequesterID
	}
	req.Status = swap.StatusCompleted
	m.requests[id] = req
	return req, repository.Rating{
		ID:            uuid.New(),
		SwapRequestID: id,
		RaterID:       raterID,
		RatedID:       ratedID,
		Score:         score,
		Feedback:      feedback,
	}, nil
}

type mockSkillRepo struct {
	existing map[uuid.UUID]bool
}

func (m mockSkillRepo) GetAllSkills(context.Context) ([]repository.Skill, error) { return nil, nil }
func (m mockSkillRepo) FindByName(context.Context, string) (repository.Skill, error) {
	return repository.Skill{}, repository.ErrSkillNotFound
}
func (m mockSkillRepo) FindOrCreate(context.Context, string, string) (repository.Skill, error) {
	return repository.Skill{}, nil
}
func (m mockSkillRepo) ExistsByID(_ context.Context, id uuid.UUID) (bool, error) {
	return m.existing[id], nil
}

type mockUserRepo struct {
	users map[uuid.UUID]user.User
}

func (m mockUserRepo) Create(_ context.Context, u user.User) error { m.users[u.ID] = u; return nil }
func (m mockUserRepo) GetByID(_ context.Context, id uuid.UUID) (user.User, error) {
	u, ok := m.users[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}
func (m mockUserRepo) GetByEmail(context.Context, string) (user.User, error) {
	return user.User{}, user.ErrNotFound
}
func (m mockUserRepo) ExistsByEmail(context.Context, string) (bool, error) { return false, nil }
func (m mockUserRepo) Update(context.Context, user.User) error             { return nil }
func (m mockUserRepo) SetProfilePhoto(context.Context, uuid.UUID, string) error {
	return nil
}

type swapFixture struct {
	uc        *SwapRequest
	swaps     *mockSwapRepo
	requester uuid.UUID
	provider  uuid.UUID
	skillID   uuid.UUID
}

func newSwapFixture() swapFixture {
	requester := uuid.New()
	provider := uuid.New()
	skillID := uuid.New()

	swaps := newMockSwapRepo()
	skills := mockSkillRepo{existing: map[uuid.UUID]bool{skillID: true}}
	users := mockUserRepo{users: map[uuid.UUID]user.User{
		requester: {ID: requester, Name: "Ana"},
		provider:  {ID: provider, Name: "Ben"},
	}}

	return swapFixture{
		uc:        NewSwapRequestUsecase(swaps, skills, users, nil),
		swaps:     swaps,
		requester: requester,
		provider:  provider,
		skillID:   skillID,
	}
}

func (f swapFixture) seed(t *testing.T, status swap.Status) uuid.UUID {
	t.Helper()
	id := uuid.New()
	f.swaps.requests[id] = swap.Request{
		ID:               id,
		RequesterID:      f.requester,
		ProviderID:       f.provider,
		RequestedSkillID: f.skillID,
		Status:           status,
	}
	return id
}

func TestSwapRequestCreate_Success(t *testing.T) {
	f := newSwapFixture()

	created, err := f.uc.Create(context.Background(), f.requester, CreateSwapRequestInput{
		ProviderID:       f.provider,
		RequestedSkillID: f.skillID,
		Message:          "  let's trade  ",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if created.Status != swap.StatusPending {
		t.Fatalf("expected pending, got %s", created.Status)
	}
	if created.Message != "let's trade" {
		t.Fatalf("expected trimmed message, got %q", created.Message)
	}
}

func TestSwapRequestCreate_SelfSwap(t *testing.T) {
	f := newSwapFixture()

	_, err := f.uc.Create(context.Background(), f.requester, CreateSwapRequestInput{
		ProviderID:       f.requester,
		RequestedSkillID: f.skillID,
	})
	if !errors.Is(err, ErrSelfSwap) {
		t.Fatalf("expected ErrSelfSwap, got %v", err)
	}
}

func TestSwapRequestCreate_UnknownProvider(t *testing.T) {
	f := newSwapFixture()

	_, err := f.uc.Create(context.Background(), f.requester, CreateSwapRequestInput{
		ProviderID:       uuid.New(),
		RequestedSkillID: f.skillID,
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestSwapRequestCreate_UnknownSkill(t *testing.T) {
	f := newSwapFixture()

	_, err := f.uc.Create(context.Background(), f.requester, CreateSwapRequestInput{
		ProviderID:       f.provider,
		RequestedSkillID: uuid.New(),
	})
	if !errors.Is(err, ErrSkillNotFound) {
		t.Fatalf("expected ErrSkillNotFound, got %v", err)
	}
}

func TestSwapRequestTransition_ProviderAccepts(t *testing.T) {
	f := newSwapFixture()
	id := f.seed(t, swap.StatusPending)

	updated, err := f.uc.Transition(context.Background(), id, f.provider, "accepted")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if updated.Status != swap.StatusAccepted {
		t.Fatalf("expected accepted, got %s", updated.Status)
	}
}

func TestSwapRequestTransition_RequesterCannotAccept(t *testing.T) {
	f := newSwapFixture()
	id := f.seed(t, swap.StatusPending)

	_, err := f.uc.Transition(context.Background(), id, f.requester, "accepted")
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestSwapRequestTransition_RequesterCancels(t *testing.T) {
	f := newSwapFixture()
	id := f.seed(t, swap.StatusPending)

	updated, err := f.uc.Transition(context.Background(), id, f.requester, "cancelled")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if updated.Status != swap.StatusCancelled {
		t.Fatalf("expected cancelled, got %s", updated.Status)
	}
}

func TestSwapRequestTransition_NonParticipantConflated(t *testing.T) {
	f := newSwapFixture()
	id := f.seed(t, swap.StatusPending)

	_, err := f.uc.Transition(context.Background(), id, uuid.New(), "accepted")
	if !errors.Is(err, ErrSwapRequestNotFound) {
		t.Fatalf("expected ErrSwapRequestNotFound, got %v", err)
	}

	_, err = f.uc.Transition(context.Background(), uuid.New(), f.requester, "accepted")
	if !errors.Is(err, ErrSwapRequestNotFound) {
		t.Fatalf("expected ErrSwapRequestNotFound for missing row, got %v", err)
	}
}

func TestSwapRequestTransition_UnknownStatus(t *testing.T) {
	f := newSwapFixture()
	id := f.seed(t, swap.StatusPending)

	_, err := f.uc.Transition(context.Background(), id, f.provider, "archived")
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestSwapRequestTransition_CompletedIsTerminal(t *testing.T) {
	f := newSwapFixture()
	id := f.seed(t, swap.StatusCompleted)

	_, err := f.uc.Transition(context.Background(), id, f.provider, "pending")
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestSwapRequestDelete_RequesterDeletesRejected(t *testing.T) {
	f := newSwapFixture()
	id := f.seed(t, swap.StatusRejected)

	if err := f.uc.Delete(context.Background(), id, f.requester); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestSwapRequestDelete_ProviderCannotDelete(t *testing.T) {
	f := newSwapFixture()
	id := f.seed(t, swap.StatusPending)

	err := f.uc.Delete(context.Background(), id, f.provider)
	if !errors.Is(err, ErrSwapRequestNotFound) {
		t.Fatalf("expected ErrSwapRequestNotFound, got %v", err)
	}
}

func TestSwapRequestDelete_CompletedProtected(t *testing.T) {
	f := newSwapFixture()
	id := f.seed(t, swap.StatusCompleted)

	err := f.uc.Delete(context.Background(), id, f.requester)
	if !errors.Is(err, ErrSwapRequestNotFound) {
		t.Fatalf("expected ErrSwapRequestNotFound, got %v", err)
	}
}

func TestSwapRequestComplete_ScoreOutOfRange(t *testing.T) {
	f := newSwapFixture()
	id := f.seed(t, swap.StatusAccepted)

	for _, score := range []int{0, 6, -1} {
		_, _, err := f.uc.Complete(context.Background(), id, f.requester, CompleteSwapInput{Score: score})
		if !errors.Is(err, ErrInvalidScore) {
			t.Fatalf("score %d: expected ErrInvalidScore, got %v", score, err)
		}
	}
}

func TestSwapRequestComplete_PendingNotCompletable(t *testing.T) {
	f := newSwapFixture()
	id := f.seed(t, swap.StatusPending)

	_, _, err := f.uc.Complete(context.Background(), id, f.requester, CompleteSwapInput{Score: 5})
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestSwapRequestComplete_RatesCounterpart(t *testing.T) {
	f := newSwapFixture()
	id := f.seed(t, swap.StatusAccepted)

	updated, rating, err := f.uc.Complete(context.Background(), id, f.provider, CompleteSwapInput{Score: 4, Feedback: "great teacher"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if updated.Status != swap.StatusCompleted {
		t.Fatalf("expected completed, got %s", updated.Status)
	}
	if rating.RatedID != f.requester {
		t.Fatalf("expected requester to be rated")
	}
	if rating.RaterID != f.provider {
		t.Fatalf("expected provider to be the rater")
	}
}

func TestSwapRequestComplete_SecondRatingRejected(t *testing.T) {
	f := newSwapFixture()
	id := f.seed(t, swap.StatusAccepted)

	if _, _, err := f.uc.Complete(context.Background(), id, f.provider, CompleteSwapInput{Score: 4}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	_, _, err := f.uc.Complete(context.Background(), id, f.requester, CompleteSwapInput{Score: 5})
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition on completed request, got %v", err)
	}
}
