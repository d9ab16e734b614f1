package usecases

import (
	"context"

	"subtrack/internal/domain/user"
	"subtrack/internal/infrastructure/auth"
	"subtrack/internal/shared/errors"
	"subtrack/internal/shared/logger"
)

type fakeUserRepo struct {
	users  map[uint]*user.User
	nextID uint
}

func newFakeUserRepo(users ...*user.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: make(map[uint]*user.User), nextID: 50}
	for _, u := range users {
		repo.users[u.ID()] = u
	}
	return repo
}

func (r *fakeUserRepo) Create(ctx context.Context, u *user.User) error {
	for _, existing := range r.users {
		if existing.Username() == u.Username() {
			return errors.NewDuplicateError("username is already taken")
		}
	}
	r.nextID++
	if err := u.SetID(r.nextID); err != nil {
		return err
	}
	r.users[r.nextID] = u
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id uint) (*user.User, error) {
	return r.users[id], nil
}

func (r *fakeUserRepo) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	for _, u := range r.users {
		if u.Username() == username {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetBySocialID(ctx context.Context, provider, socialID string) (*user.User, error) {
	for _, u := range r.users {
		if u.SocialProvider() == provider && u.SocialID() == socialID {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	u, _ := r.GetByUsername(ctx, username)
	return u != nil, nil
}

func (r *fakeUserRepo) Delete(ctx context.Context, id uint) error {
	if _, ok := r.users[id]; !ok {
		return errors.NewNotFoundError("user not found")
	}
	delete(r.users, id)
	return nil
}

type fakeOAuthClient struct {
	userInfo    *auth.OAuthUserInfo
	exchangeErr error
}

func (c *fakeOAuthClient) GetAuthURL(state string) (string, string, error) {
	return "https://accounts.example.com/authorize?state=" + state, "verifier-" + state, nil
}

func (c *fakeOAuthClient) ExchangeCode(ctx context.Context, code, codeVerifier string) (string, error) {
	if c.exchangeErr != nil {
		return "", c.exchangeErr
	}
	return "provider-access-token", nil
}

func (c *fakeOAuthClient) GetUserInfo(ctx context.Context, accessToken string) (*auth.OAuthUserInfo, error) {
	return c.userInfo, nil
}

func testLogger() logger.Interface {
	return logger.NewLogger()
}

func testJWTService() *auth.JWTService {
	return auth.NewJWTService("test-secret", 15, 7)
}

func testHasher() *auth.BcryptPasswordHasher {
	return auth.NewBcryptPasswordHasher(4)
}
