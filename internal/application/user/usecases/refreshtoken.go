package usecases

import (
	"context"

	"subtrack/internal/application/user/dto"
	"subtrack/internal/shared/errors"
	"subtrack/internal/shared/logger"
)

type RefreshTokenCommand struct {
	RefreshToken string
}

type RefreshTokenUseCase struct {
	tokenService TokenService
	logger       logger.Interface
}

func NewRefreshTokenUseCase(tokenService TokenService, logger logger.Interface) *RefreshTokenUseCase {
	return &RefreshTokenUseCase{
		tokenService: tokenService,
		logger:       logger,
	}
}

// Execute rotates a refresh token into a fresh token pair. The old refresh
// token is superseded by the returned one.
func (uc *RefreshTokenUseCase) Execute(ctx context.Context, cmd RefreshTokenCommand) (*dto.TokenDTO, error) {
	if cmd.RefreshToken == "" {
		return nil, errors.NewValidationError("refresh token is required")
	}

	pair, err := uc.tokenService.Refresh(cmd.RefreshToken)
	if err != nil {
		uc.logger.Warnw("refresh token rejected", "error", err)
		return nil, errors.NewUnauthorizedError("invalid refresh token")
	}

	return toTokenDTO(pair), nil
}
