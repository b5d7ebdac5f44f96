package account

import (
	"context"
	"errors"
	"fmt"

	"github.com/snapstream/snapstream-api/internal/application/service"
	"github.com/snapstream/snapstream-api/internal/domain/user"
	"github.com/snapstream/snapstream-api/pkg/apperror"
	"github.com/snapstream/snapstream-api/pkg/logger"
)

type LoginUseCase struct {
	userRepo user.Repository
	verifier service.CredentialVerifier
	notifier service.Notifier
	logger   logger.Logger
}

func NewLoginUseCase(repo user.Repository, v service.CredentialVerifier, n service.Notifier, log logger.Logger) *LoginUseCase {
	return &LoginUseCase{
		userRepo: repo,
		verifier: v,
		notifier: n,
		logger:   log,
	}
}

type LoginInput struct {
	Email    string
	Password string
}

func (uc *LoginUseCase) Execute(ctx context.Context, input LoginInput) (*user.User, error) {

	u, err := uc.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		// Unknown email and bad password must be indistinguishable.
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, apperror.NewUnauthorized("email or password is incorrect", nil)
		}
		return nil, err
	}

	if !uc.verifier.Verify(input.Password, u.Password) {
		return nil, apperror.NewUnauthorized("email or password is incorrect", nil)
	}

	go func() {
		msg := fmt.Sprintf("User %s logged in.", u.Email)
		if err := uc.notifier.Notify(context.Background(), "User Login", msg); err != nil {
			uc.logger.Error("Failed to publish login notification", err)
		}
	}()

	return u, nil
}
