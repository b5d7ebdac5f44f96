package account

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/snapstream/snapstream-api/internal/application/service"
	"github.com/snapstream/snapstream-api/internal/domain/user"
	"github.com/snapstream/snapstream-api/pkg/apperror"
	"github.com/snapstream/snapstream-api/pkg/logger"
)

type RegisterUseCase struct {
	userRepo user.Repository
	verifier service.CredentialVerifier
	notifier service.Notifier
	logger   logger.Logger
}

func NewRegisterUseCase(repo user.Repository, v service.CredentialVerifier, n service.Notifier, log logger.Logger) *RegisterUseCase {
	return &RegisterUseCase{
		userRepo: repo,
		verifier: v,
		notifier: n,
		logger:   log,
	}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     user.Role
}

func (uc *RegisterUseCase) Execute(ctx context.Context, input RegisterInput) (*user.User, error) {

	if input.Role != user.RoleAdmin && input.Role != user.RoleStandard {
		return nil, apperror.NewInvalidInput(fmt.Sprintf("unknown role '%s'", input.Role), nil)
	}

	// Friendly pre-check; the unique index on LOWER(email) is what actually
	// closes the race between two concurrent registrations.
	existing, err := uc.userRepo.FindByEmail(ctx, input.Email)
	if err != nil && !errors.Is(err, apperror.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflict("user", "email", input.Email)
	}

	stored, err := uc.verifier.Store(input.Password)
	if err != nil {
		return nil, apperror.NewInternal("failed to prepare credential", err)
	}

	newUser := &user.User{
		ID:       uuid.New(),
		Name:     input.Name,
		Email:    input.Email,
		Password: stored,
		Role:     input.Role,
	}

	if err := uc.userRepo.Save(ctx, newUser); err != nil {
		return nil, err
	}

	go func() {
		msg := fmt.Sprintf("User %s <%s> has joined SnapStream.", newUser.Name, newUser.Email)
		if err := uc.notifier.Notify(context.Background(), "New User Signup", msg); err != nil {
			uc.logger.Error("Failed to publish signup notification", err)
		}
	}()

	return newUser, nil
}
