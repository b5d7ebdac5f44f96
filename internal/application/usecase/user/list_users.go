package user

import (
	"context"
	"fmt"

	"github.com/snapstream/snapstream-api/internal/domain/user"
)

type ListUsersUseCase struct {
	userRepo user.Repository
}

func NewListUsersUseCase(r user.Repository) *ListUsersUseCase {
	return &ListUsersUseCase{userRepo: r}
}

func (uc *ListUsersUseCase) Execute(ctx context.Context) ([]*user.User, error) {
	users, err := uc.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users failed: %w", err)
	}
	return users, nil
}
