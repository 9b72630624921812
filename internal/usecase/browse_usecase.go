package usecase

import (
	"context"
	"strings"

	"skill-swap/internal/repository"

	"github.com/google/uuid"
)

type BrowseUsecase interface {
	BrowseUsers(ctx context.Context, requestingUser uuid.UUID, skillFilter, searchFilter string) ([]repository.BrowseRow, error)
}

type Browse struct {
	repo repository.BrowseRepository
}

func NewBrowseUsecase(repo repository.BrowseRepository) *Browse {
	return &Browse{repo: repo}
}

func (u *Browse) BrowseUsers(ctx context.Context, requestingUser uuid.UUID, skillFilter, searchFilter string) ([]repository.BrowseRow, error) {
	rows, err := u.repo.BrowseUsers(ctx, requestingUser, repository.BrowseFilter{
		Skill:  strings.TrimSpace(skillFilter),
		Search: strings.TrimSpace(searchFilter),
	})
	if err != nil {
		return nil, ErrInternal
	}
	return rows, nil
}
