package usecases

import (
	"context"
	"fmt"
	"strings"

	"subtrack/internal/application/user/dto"
	"subtrack/internal/domain/user"
	"subtrack/internal/shared/errors"
	"subtrack/internal/shared/logger"
)

type RegisterCommand struct {
	Username    string
	Password    string
	Email       string
	DisplayName string
}

type RegisterUseCase struct {
	userRepo     user.Repository
	hasher       PasswordHasher
	tokenService TokenService
	logger       logger.Interface
}

func NewRegisterUseCase(
	userRepo user.Repository,
	hasher PasswordHasher,
	tokenService TokenService,
	logger logger.Interface,
) *RegisterUseCase {
	return &RegisterUseCase{
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
		logger:       logger,
	}
}

// Execute creates a local account and logs it in immediately.
func (uc *RegisterUseCase) Execute(ctx context.Context, cmd RegisterCommand) (*dto.AuthResultDTO, error) {
	username := strings.TrimSpace(cmd.Username)
	if username == "" {
		return nil, errors.NewValidationError("username is required")
	}
	if len(cmd.Password) < minPasswordLength {
		return nil, errors.NewValidationError(
			fmt.Sprintf("password must be at least %d characters", minPasswordLength))
	}

	exists, err := uc.userRepo.ExistsByUsername(ctx, username)
	if err != nil {
		uc.logger.Errorw("failed to check username existence", "error", err, "username", username)
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if exists {
		return nil, errors.NewDuplicateError("username is already taken")
	}

	passwordHash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	newUser, err := user.NewUser(username, cmd.Email, passwordHash, cmd.DisplayName)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Create(ctx, newUser); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to create user", "error", err, "username", username)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	pair, err := uc.tokenService.Generate(newUser.ID(), newUser.Username(), newUser.IsAdmin())
	if err != nil {
		uc.logger.Errorw("failed to generate tokens", "error", err, "user_id", newUser.ID())
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	uc.logger.Infow("user registered", "user_id", newUser.ID(), "username", newUser.Username())

	return &dto.AuthResultDTO{
		User:  dto.ToUserDTO(newUser),
		Token: toTokenDTO(pair),
	}, nil
}
