package usecases

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"

	"subtrack/internal/infrastructure/cache"
	"subtrack/internal/shared/logger"
)

type InitiateGoogleLoginResult struct {
	AuthURL string
	State   string
}

type InitiateGoogleLoginUseCase struct {
	googleClient OAuthClient
	stateStore   cache.StateStore
	logger       logger.Interface
}

func NewInitiateGoogleLoginUseCase(
	googleClient OAuthClient,
	stateStore cache.StateStore,
	logger logger.Interface,
) *InitiateGoogleLoginUseCase {
	return &InitiateGoogleLoginUseCase{
		googleClient: googleClient,
		stateStore:   stateStore,
		logger:       logger,
	}
}

// Execute starts the Google login flow: a fresh state token and PKCE
// verifier are stored, and the redirect URL is returned to the caller.
func (uc *InitiateGoogleLoginUseCase) Execute(ctx context.Context) (*InitiateGoogleLoginResult, error) {
	state, err := generateState()
	if err != nil {
		uc.logger.Errorw("failed to generate state", "error", err)
		return nil, fmt.Errorf("failed to generate state: %w", err)
	}

	authURL, codeVerifier, err := uc.googleClient.GetAuthURL(state)
	if err != nil {
		uc.logger.Errorw("failed to get auth URL", "error", err)
		return nil, fmt.Errorf("failed to get auth URL: %w", err)
	}

	if err := uc.stateStore.Set(ctx, state, codeVerifier); err != nil {
		uc.logger.Errorw("failed to store OAuth state", "error", err)
		return nil, fmt.Errorf("failed to store state: %w", err)
	}

	uc.logger.Infow("google login initiated", "state", state)

	return &InitiateGoogleLoginResult{
		AuthURL: authURL,
		State:   state,
	}, nil
}

func generateState() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate random state: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
