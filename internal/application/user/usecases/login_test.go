package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"subtrack/internal/domain/user"
	"subtrack/internal/shared/errors"
)

func seedLocalUser(t *testing.T, id uint, username, password string, isAdmin bool) *user.User {
	t.Helper()
	hash, err := testHasher().Hash(password)
	require.NoError(t, err)
	now := time.Now()
	u, err := user.ReconstructUser(id, username, username+"@example.com", hash, username, isAdmin, "", "", now, now)
	require.NoError(t, err)
	return u
}

func TestLoginUseCase_Execute(t *testing.T) {
	repo := newFakeUserRepo(seedLocalUser(t, 1, "alice", "password123", false))
	uc := NewLoginUseCase(repo, testHasher(), testJWTService(), testLogger())

	result, err := uc.Execute(context.Background(), LoginCommand{Username: "alice", Password: "password123"})
	require.NoError(t, err)

	assert.Equal(t, uint(1), result.User.ID)
	assert.NotEmpty(t, result.Token.AccessToken)
	assert.NotEmpty(t, result.Token.RefreshToken)
}

func TestLoginUseCase_WrongPassword(t *testing.T) {
	repo := newFakeUserRepo(seedLocalUser(t, 1, "alice", "password123", false))
	uc := NewLoginUseCase(repo, testHasher(), testJWTService(), testLogger())

	_, err := uc.Execute(context.Background(), LoginCommand{Username: "alice", Password: "wrong"})
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeUnauthorized, appErr.Type)
}

func TestLoginUseCase_UnknownUser(t *testing.T) {
	uc := NewLoginUseCase(newFakeUserRepo(), testHasher(), testJWTService(), testLogger())

	_, err := uc.Execute(context.Background(), LoginCommand{Username: "nobody", Password: "password123"})
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeUnauthorized, appErr.Type)
	// Same message as wrong password so usernames cannot be probed
	assert.Equal(t, "invalid username or password", appErr.Message)
}

func TestLoginUseCase_SocialOnlyAccount(t *testing.T) {
	now := time.Now()
	social, err := user.ReconstructUser(2, "bob", "bob@example.com", "", "Bob", false, "google", "g-123", now, now)
	require.NoError(t, err)

	uc := NewLoginUseCase(newFakeUserRepo(social), testHasher(), testJWTService(), testLogger())

	_, err = uc.Execute(context.Background(), LoginCommand{Username: "bob", Password: "anything123"})
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeUnauthorized, appErr.Type)
}
