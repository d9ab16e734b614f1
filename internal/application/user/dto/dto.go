package dto

import (
	"time"

	"subtrack/internal/domain/user"
)

type UserDTO struct {
	ID             uint      `json:"id"`
	Username       string    `json:"username"`
	Email          string    `json:"email,omitempty"`
	DisplayName    string    `json:"display_name"`
	IsAdmin        bool      `json:"is_admin"`
	SocialProvider string    `json:"social_provider,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// TokenDTO carries an issued token pair. TokenType is always "Bearer".
type TokenDTO struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
}

// AuthResultDTO is the response of any operation that authenticates a user.
type AuthResultDTO struct {
	User  *UserDTO  `json:"user"`
	Token *TokenDTO `json:"token"`
}

func ToUserDTO(u *user.User) *UserDTO {
	return &UserDTO{
		ID:             u.ID(),
		Username:       u.Username(),
		Email:          u.Email(),
		DisplayName:    u.DisplayName(),
		IsAdmin:        u.IsAdmin(),
		SocialProvider: u.SocialProvider(),
		CreatedAt:      u.CreatedAt(),
	}
}
