package user

import (
	"context"
	"errors"
	"mime/multipart"
	"strings"

	"skill-swap/internal/domain/user"
	"skill-swap/internal/infrastructure/storage"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("user not found")
	ErrInternal     = errors.New("internal error")
)

type UpdateProfileInput struct {
	Name         string
	Location     string
	Availability string
	IsPublic     bool
}

type PhotoStore interface {
	SavePhoto(file *multipart.FileHeader) (string, error)
}

type Service struct {
	users  user.Repository
	photos PhotoStore
}

func NewService(users user.Repository, photos PhotoStore) *Service {
	return &Service{users: users, photos: photos}
}

func (s *Service) GetProfile(ctx context.Context, userID uuid.UUID) (user.User, error) {
	usr, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, ErrNotFound
		}
		return user.User{}, ErrInternal
	}
	return sanitizeUser(usr), nil
}

func (s *Service) UpdateProfile(ctx context.Context, userID uuid.UUID, in UpdateProfileInput) (user.User, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return user.User{}, ErrInvalidInput
	}

	usr, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, ErrNotFound
		}
		return user.User{}, ErrInternal
	}

	usr.Name = name
	usr.Location = strings.TrimSpace(in.Location)
	usr.Availability = strings.TrimSpace(in.Availability)
	usr.IsPublic = in.IsPublic

	if err := s.users.Update(ctx, usr); err != nil {
		return user.User{}, ErrInternal
	}

	updated, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return user.User{}, ErrInternal
	}
	return sanitizeUser(updated), nil
}

// SetPhoto stores the upload and records its public URL on the profile.
func (s *Service) SetPhoto(ctx context.Context, userID uuid.UUID, file *multipart.FileHeader) (string, error) {
	if file == nil {
		return "", ErrInvalidInput
	}

	url, err := s.photos.SavePhoto(file)
	if err != nil {
		if errors.Is(err, storage.ErrUnsupportedFileType) {
			return "", ErrInvalidInput
		}
		return "", ErrInternal
	}

	if err := s.users.SetProfilePhoto(ctx, userID, url); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return "", ErrNotFound
		}
		return "", ErrInternal
	}
	return url, nil
}

func sanitizeUser(u user.User) user.User {
	u.PasswordHash = ""
	return u
}
