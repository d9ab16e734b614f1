package usecases

import (
	"context"

	"subtrack/internal/application/user/dto"
	"subtrack/internal/infrastructure/auth"
)

// PasswordHasher hashes and verifies local passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

// TokenService issues and rotates JWT token pairs.
type TokenService interface {
	Generate(userID uint, username string, isAdmin bool) (*auth.TokenPair, error)
	Refresh(refreshToken string) (*auth.TokenPair, error)
}

// OAuthClient is the provider side of the OAuth login flow.
type OAuthClient interface {
	GetAuthURL(state string) (authURL string, codeVerifier string, err error)
	ExchangeCode(ctx context.Context, code, codeVerifier string) (string, error)
	GetUserInfo(ctx context.Context, accessToken string) (*auth.OAuthUserInfo, error)
}

const minPasswordLength = 8

func toTokenDTO(pair *auth.TokenPair) *dto.TokenDTO {
	return &dto.TokenDTO{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    pair.ExpiresIn,
	}
}
