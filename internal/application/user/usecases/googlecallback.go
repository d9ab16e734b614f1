package usecases

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"

	"subtrack/internal/application/user/dto"
	"subtrack/internal/domain/user"
	"subtrack/internal/infrastructure/cache"
	"subtrack/internal/shared/errors"
	"subtrack/internal/shared/logger"
)

type HandleGoogleCallbackCommand struct {
	State string
	Code  string
}

type HandleGoogleCallbackResult struct {
	Auth      *dto.AuthResultDTO
	IsNewUser bool
}

type HandleGoogleCallbackUseCase struct {
	userRepo     user.Repository
	googleClient OAuthClient
	stateStore   cache.StateStore
	tokenService TokenService
	logger       logger.Interface
}

func NewHandleGoogleCallbackUseCase(
	userRepo user.Repository,
	googleClient OAuthClient,
	stateStore cache.StateStore,
	tokenService TokenService,
	logger logger.Interface,
) *HandleGoogleCallbackUseCase {
	return &HandleGoogleCallbackUseCase{
		userRepo:     userRepo,
		googleClient: googleClient,
		stateStore:   stateStore,
		tokenService: tokenService,
		logger:       logger,
	}
}

func (uc *HandleGoogleCallbackUseCase) Execute(ctx context.Context, cmd HandleGoogleCallbackCommand) (*HandleGoogleCallbackResult, error) {
	stateInfo, err := uc.stateStore.VerifyAndGet(ctx, cmd.State)
	if err != nil {
		uc.logger.Warnw("oauth state rejected", "error", err)
		return nil, errors.NewUnauthorizedError("invalid or expired state parameter")
	}

	accessToken, err := uc.googleClient.ExchangeCode(ctx, cmd.Code, stateInfo.CodeVerifier)
	if err != nil {
		uc.logger.Errorw("failed to exchange code", "error", err)
		return nil, fmt.Errorf("failed to exchange authorization code: %w", err)
	}

	userInfo, err := uc.googleClient.GetUserInfo(ctx, accessToken)
	if err != nil {
		uc.logger.Errorw("failed to get user info", "error", err)
		return nil, fmt.Errorf("failed to get user info: %w", err)
	}

	existing, err := uc.userRepo.GetBySocialID(ctx, userInfo.Provider, userInfo.ProviderID)
	if err != nil {
		uc.logger.Errorw("failed to get user by social ID", "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	isNewUser := false
	if existing == nil {
		existing, err = uc.createSocialUser(ctx, userInfo.Email, userInfo.Name, userInfo.Provider, userInfo.ProviderID)
		if err != nil {
			return nil, err
		}
		isNewUser = true
	}

	pair, err := uc.tokenService.Generate(existing.ID(), existing.Username(), existing.IsAdmin())
	if err != nil {
		uc.logger.Errorw("failed to generate tokens", "error", err, "user_id", existing.ID())
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	uc.logger.Infow("google login completed",
		"user_id", existing.ID(), "new_user", isNewUser)

	return &HandleGoogleCallbackResult{
		Auth: &dto.AuthResultDTO{
			User:  dto.ToUserDTO(existing),
			Token: toTokenDTO(pair),
		},
		IsNewUser: isNewUser,
	}, nil
}

func (uc *HandleGoogleCallbackUseCase) createSocialUser(ctx context.Context, email, name, provider, providerID string) (*user.User, error) {
	username, err := uc.uniqueUsername(ctx, email)
	if err != nil {
		return nil, err
	}

	newUser, err := user.NewSocialUser(username, email, name, provider, providerID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Create(ctx, newUser); err != nil {
		uc.logger.Errorw("failed to create social user", "error", err, "username", username)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return newUser, nil
}

// uniqueUsername derives a username from the email local part and appends a
// random suffix until it is free.
func (uc *HandleGoogleCallbackUseCase) uniqueUsername(ctx context.Context, email string) (string, error) {
	base := sanitizeUsername(strings.SplitN(email, "@", 2)[0])
	if base == "" {
		base = "user"
	}
	if len(base) > 40 {
		base = base[:40]
	}

	candidate := base
	for attempt := 0; attempt < 5; attempt++ {
		exists, err := uc.userRepo.ExistsByUsername(ctx, candidate)
		if err != nil {
			uc.logger.Errorw("failed to check username existence", "error", err)
			return "", fmt.Errorf("failed to check username: %w", err)
		}
		if !exists {
			return candidate, nil
		}

		suffix := make([]byte, 3)
		if _, err := rand.Read(suffix); err != nil {
			return "", fmt.Errorf("failed to generate username suffix: %w", err)
		}
		candidate = base + "_" + hex.EncodeToString(suffix)
	}

	return "", fmt.Errorf("failed to find an available username for %s", base)
}

func sanitizeUsername(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '.', r == '_', r == '-':
			b.WriteRune(r)
		}
	}
	return b.String()
}
