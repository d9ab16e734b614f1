package usecases

import (
	"context"
	"fmt"

	"subtrack/internal/domain/ledger"
	"subtrack/internal/shared/errors"
	"subtrack/internal/shared/logger"
)

type DeleteSubscriptionCommand struct {
	UserID         uint
	SubscriptionID uint
}

type DeleteSubscriptionUseCase struct {
	subscriptionRepo ledger.SubscriptionRepository
	logger           logger.Interface
}

func NewDeleteSubscriptionUseCase(subscriptionRepo ledger.SubscriptionRepository, logger logger.Interface) *DeleteSubscriptionUseCase {
	return &DeleteSubscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
		logger:           logger,
	}
}

func (uc *DeleteSubscriptionUseCase) Execute(ctx context.Context, cmd DeleteSubscriptionCommand) error {
	subscription, err := uc.subscriptionRepo.GetByID(ctx, cmd.SubscriptionID)
	if err != nil {
		uc.logger.Errorw("failed to get subscription", "error", err, "subscription_id", cmd.SubscriptionID)
		return fmt.Errorf("failed to get subscription: %w", err)
	}
	if subscription == nil || subscription.UserID() != cmd.UserID {
		return errors.NewNotFoundError("subscription not found")
	}

	if err := uc.subscriptionRepo.Delete(ctx, cmd.SubscriptionID); err != nil {
		uc.logger.Errorw("failed to delete subscription", "error", err,
			"subscription_id", cmd.SubscriptionID)
		return fmt.Errorf("failed to delete subscription: %w", err)
	}

	uc.logger.Infow("subscription deleted",
		"subscription_id", cmd.SubscriptionID, "user_id", cmd.UserID)
	return nil
}
