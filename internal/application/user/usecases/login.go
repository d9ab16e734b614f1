package usecases

import (
	"context"
	"fmt"

	"subtrack/internal/application/user/dto"
	"subtrack/internal/domain/user"
	"subtrack/internal/shared/errors"
	"subtrack/internal/shared/logger"
)

type LoginCommand struct {
	Username string
	Password string
}

type LoginUseCase struct {
	userRepo     user.Repository
	hasher       PasswordHasher
	tokenService TokenService
	logger       logger.Interface
}

func NewLoginUseCase(
	userRepo user.Repository,
	hasher PasswordHasher,
	tokenService TokenService,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
		logger:       logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*dto.AuthResultDTO, error) {
	existing, err := uc.userRepo.GetByUsername(ctx, cmd.Username)
	if err != nil {
		uc.logger.Errorw("failed to get user by username", "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	// One generic error for every failure mode so callers cannot probe
	// which usernames exist
	if existing == nil || !existing.HasUsablePassword() {
		return nil, errors.NewUnauthorizedError("invalid username or password")
	}

	if err := uc.hasher.Verify(cmd.Password, existing.PasswordHash()); err != nil {
		uc.logger.Warnw("failed login attempt", "username", cmd.Username)
		return nil, errors.NewUnauthorizedError("invalid username or password")
	}

	pair, err := uc.tokenService.Generate(existing.ID(), existing.Username(), existing.IsAdmin())
	if err != nil {
		uc.logger.Errorw("failed to generate tokens", "error", err, "user_id", existing.ID())
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	uc.logger.Infow("user logged in", "user_id", existing.ID(), "username", existing.Username())

	return &dto.AuthResultDTO{
		User:  dto.ToUserDTO(existing),
		Token: toTokenDTO(pair),
	}, nil
}
