package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"subtrack/internal/infrastructure/auth"
	"subtrack/internal/infrastructure/cache"
	"subtrack/internal/shared/errors"
)

func googleFixture() *fakeOAuthClient {
	return &fakeOAuthClient{
		userInfo: &auth.OAuthUserInfo{
			Email:         "alice@example.com",
			Name:          "Alice",
			EmailVerified: true,
			Provider:      "google",
			ProviderID:    "g-12345",
		},
	}
}

func TestGoogleLoginFlow_NewUser(t *testing.T) {
	repo := newFakeUserRepo()
	client := googleFixture()
	store := cache.NewMemoryStateStore(5 * time.Minute)

	initiate := NewInitiateGoogleLoginUseCase(client, store, testLogger())
	callback := NewHandleGoogleCallbackUseCase(repo, client, store, testJWTService(), testLogger())

	initResult, err := initiate.Execute(context.Background())
	require.NoError(t, err)
	assert.Contains(t, initResult.AuthURL, initResult.State)

	result, err := callback.Execute(context.Background(), HandleGoogleCallbackCommand{
		State: initResult.State,
		Code:  "auth-code",
	})
	require.NoError(t, err)

	assert.True(t, result.IsNewUser)
	assert.Equal(t, "alice", result.Auth.User.Username)
	assert.Equal(t, "google", result.Auth.User.SocialProvider)
	assert.NotEmpty(t, result.Auth.Token.AccessToken)
}

func TestGoogleLoginFlow_ReturningUser(t *testing.T) {
	repo := newFakeUserRepo()
	client := googleFixture()
	store := cache.NewMemoryStateStore(5 * time.Minute)

	initiate := NewInitiateGoogleLoginUseCase(client, store, testLogger())
	callback := NewHandleGoogleCallbackUseCase(repo, client, store, testJWTService(), testLogger())

	first, err := initiate.Execute(context.Background())
	require.NoError(t, err)
	firstResult, err := callback.Execute(context.Background(), HandleGoogleCallbackCommand{State: first.State, Code: "c1"})
	require.NoError(t, err)

	second, err := initiate.Execute(context.Background())
	require.NoError(t, err)
	secondResult, err := callback.Execute(context.Background(), HandleGoogleCallbackCommand{State: second.State, Code: "c2"})
	require.NoError(t, err)

	assert.False(t, secondResult.IsNewUser)
	assert.Equal(t, firstResult.Auth.User.ID, secondResult.Auth.User.ID)
}

func TestGoogleLoginFlow_StateIsOneTimeUse(t *testing.T) {
	repo := newFakeUserRepo()
	client := googleFixture()
	store := cache.NewMemoryStateStore(5 * time.Minute)

	initiate := NewInitiateGoogleLoginUseCase(client, store, testLogger())
	callback := NewHandleGoogleCallbackUseCase(repo, client, store, testJWTService(), testLogger())

	initResult, err := initiate.Execute(context.Background())
	require.NoError(t, err)

	_, err = callback.Execute(context.Background(), HandleGoogleCallbackCommand{State: initResult.State, Code: "c1"})
	require.NoError(t, err)

	// Replaying the same state must fail
	_, err = callback.Execute(context.Background(), HandleGoogleCallbackCommand{State: initResult.State, Code: "c1"})
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeUnauthorized, appErr.Type)
}

func TestGoogleLoginFlow_UnknownState(t *testing.T) {
	callback := NewHandleGoogleCallbackUseCase(newFakeUserRepo(), googleFixture(),
		cache.NewMemoryStateStore(5*time.Minute), testJWTService(), testLogger())

	_, err := callback.Execute(context.Background(), HandleGoogleCallbackCommand{State: "forged", Code: "c1"})
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeUnauthorized, appErr.Type)
}

func TestGoogleCallback_UsernameCollision(t *testing.T) {
	// A local "alice" already exists; the social user gets a suffixed name.
	repo := newFakeUserRepo(seedLocalUser(t, 1, "alice", "password123", false))
	client := googleFixture()
	store := cache.NewMemoryStateStore(5 * time.Minute)

	initiate := NewInitiateGoogleLoginUseCase(client, store, testLogger())
	callback := NewHandleGoogleCallbackUseCase(repo, client, store, testJWTService(), testLogger())

	initResult, err := initiate.Execute(context.Background())
	require.NoError(t, err)

	result, err := callback.Execute(context.Background(), HandleGoogleCallbackCommand{State: initResult.State, Code: "c1"})
	require.NoError(t, err)

	assert.True(t, result.IsNewUser)
	assert.NotEqual(t, "alice", result.Auth.User.Username)
	assert.Contains(t, result.Auth.User.Username, "alice_")
}
