package usecases

import (
	"context"
	"fmt"

	"subtrack/internal/domain/ledger"
	"subtrack/internal/shared/errors"
	"subtrack/internal/shared/logger"
)

type CancelSubscriptionCommand struct {
	UserID         uint
	SubscriptionID uint
}

type CancelSubscriptionUseCase struct {
	subscriptionRepo ledger.SubscriptionRepository
	logger           logger.Interface
}

func NewCancelSubscriptionUseCase(subscriptionRepo ledger.SubscriptionRepository, logger logger.Interface) *CancelSubscriptionUseCase {
	return &CancelSubscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
		logger:           logger,
	}
}

func (uc *CancelSubscriptionUseCase) Execute(ctx context.Context, cmd CancelSubscriptionCommand) error {
	subscription, err := uc.loadOwned(ctx, cmd.UserID, cmd.SubscriptionID)
	if err != nil {
		return err
	}

	if err := subscription.Cancel(); err != nil {
		return errors.NewValidationError(err.Error())
	}

	if err := uc.subscriptionRepo.Update(ctx, subscription); err != nil {
		uc.logger.Errorw("failed to update subscription", "error", err,
			"subscription_id", cmd.SubscriptionID)
		return fmt.Errorf("failed to update subscription: %w", err)
	}

	uc.logger.Infow("subscription canceled",
		"subscription_id", cmd.SubscriptionID, "user_id", cmd.UserID)
	return nil
}

func (uc *CancelSubscriptionUseCase) loadOwned(ctx context.Context, userID, subscriptionID uint) (*ledger.Subscription, error) {
	subscription, err := uc.subscriptionRepo.GetByID(ctx, subscriptionID)
	if err != nil {
		uc.logger.Errorw("failed to get subscription", "error", err, "subscription_id", subscriptionID)
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}
	if subscription == nil || subscription.UserID() != userID {
		// Hide other users' records behind the same 404
		return nil, errors.NewNotFoundError("subscription not found")
	}
	return subscription, nil
}
