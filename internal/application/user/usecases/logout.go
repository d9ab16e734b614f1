package usecases

import (
	"context"

	"subtrack/internal/shared/logger"
)

type LogoutCommand struct {
	UserID   uint
	Username string
}

type LogoutUseCase struct {
	logger logger.Interface
}

func NewLogoutUseCase(logger logger.Interface) *LogoutUseCase {
	return &LogoutUseCase{logger: logger}
}

// Execute records the logout. Tokens are stateless JWTs, so the client is
// responsible for discarding them; outstanding tokens expire on their own.
func (uc *LogoutUseCase) Execute(ctx context.Context, cmd LogoutCommand) error {
	uc.logger.Infow("user logged out", "user_id", cmd.UserID, "username", cmd.Username)
	return nil
}
