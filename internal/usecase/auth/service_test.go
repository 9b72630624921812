package auth

import (
	"context"
	"errors"
	"strings"
	"testing"

	"skill-swap/internal/domain/user"

	"github.com/google/uuid"
)

type mockUserRepo struct {
	byID    map[uuid.UUID]user.User
	byEmail map[string]user.User

	createErr error
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{byID: map[uuid.UUID]user.User{}, byEmail: map[string]user.User{}}
}

func (m *mockUserRepo) Create(_ context.Context, u user.User) error {
	if m.createErr != nil {
		return m.createErr
	}
	if _, ok := m.byEmail[u.Email]; ok {
		return errors.New("unique violation")
	}
	m.byID[u.ID] = u
	m.byEmail[u.Email] = u
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id uuid.UUID) (user.User, error) {
	u, ok := m.byID[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	u, ok := m.byEmail[email]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (m *mockUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, ok := m.byEmail[email]
	return ok, nil
}

func (m *mockUserRepo) Update(_ context.Context, u user.User) error {
	if _, ok := m.byID[u.ID]; !ok {
		return user.ErrNotFound
	}
	m.byID[u.ID] = u
	m.byEmail[u.Email] = u
	return nil
}

func (m *mockUserRepo) SetProfilePhoto(_ context.Context, id uuid.UUID, photo string) error {
	u, ok := m.byID[id]
	if !ok {
		return user.ErrNotFound
	}
	u.ProfilePhoto = photo
	m.byID[id] = u
	return nil
}

func TestRegister_StripsHashAndNormalizesEmail(t *testing.T) {
	svc := NewService(newMockUserRepo())

	created, err := svc.Register(context.Background(), RegisterInput{
		Name:     "Ana",
		Email:    "  Ana@Example.COM ",
		Password: "correct horse",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if created.Email != "ana@example.com" {
		t.Fatalf("expected normalized email, got %q", created.Email)
	}
	if created.PasswordHash != "" {
		t.Fatalf("password hash leaked in response")
	}
	if !created.IsPublic {
		t.Fatalf("new profiles should default to public")
	}
}

func TestRegister_ShortPassword(t *testing.T) {
	svc := NewService(newMockUserRepo())

	_, err := svc.Register(context.Background(), RegisterInput{
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: "short",
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewService(repo)

	in := RegisterInput{Name: "Ana", Email: "ana@example.com", Password: "correct horse"}
	if _, err := svc.Register(context.Background(), in); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	in.Name = "Other Ana"
	_, err := svc.Register(context.Background(), in)
	if !errors.Is(err, ErrEmailAlreadyRegistered) {
		t.Fatalf("expected ErrEmailAlreadyRegistered, got %v", err)
	}
}

func TestRegister_StoresBcryptHash(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewService(repo)

	created, err := svc.Register(context.Background(), RegisterInput{
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: "correct horse",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	stored := repo.byID[created.ID]
	if stored.PasswordHash == "" || stored.PasswordHash == "correct horse" {
		t.Fatalf("expected bcrypt hash in store, got %q", stored.PasswordHash)
	}
	if !strings.HasPrefix(stored.PasswordHash, "$2") {
		t.Fatalf("expected bcrypt prefix, got %q", stored.PasswordHash)
	}
}

func TestLogin_RoundTrip(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewService(repo)

	if _, err := svc.Register(context.Background(), RegisterInput{
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: "correct horse",
	}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	usr, err := svc.Login(context.Background(), LoginInput{Email: "ANA@example.com", Password: "correct horse"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if usr.PasswordHash != "" {
		t.Fatalf("password hash leaked in response")
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewService(repo)

	if _, err := svc.Register(context.Background(), RegisterInput{
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: "correct horse",
	}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	_, err := svc.Login(context.Background(), LoginInput{Email: "ana@example.com", Password: "wrong horse"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc := NewService(newMockUserRepo())

	_, err := svc.Login(context.Background(), LoginInput{Email: "ghost@example.com", Password: "whatever1"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
