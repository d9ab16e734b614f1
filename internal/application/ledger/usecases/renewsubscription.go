package usecases

import (
	"context"
	"fmt"

	"subtrack/internal/application/ledger/dto"
	"subtrack/internal/domain/catalog"
	"subtrack/internal/domain/ledger"
	"subtrack/internal/shared/errors"
	"subtrack/internal/shared/logger"
)

type RenewSubscriptionCommand struct {
	UserID         uint
	SubscriptionID uint
}

type RenewSubscriptionUseCase struct {
	subscriptionRepo ledger.SubscriptionRepository
	planRepo         catalog.PlanRepository
	serviceRepo      catalog.ServiceRepository
	logger           logger.Interface
}

func NewRenewSubscriptionUseCase(
	subscriptionRepo ledger.SubscriptionRepository,
	planRepo catalog.PlanRepository,
	serviceRepo catalog.ServiceRepository,
	logger logger.Interface,
) *RenewSubscriptionUseCase {
	return &RenewSubscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
		planRepo:         planRepo,
		serviceRepo:      serviceRepo,
		logger:           logger,
	}
}

// Execute advances the next payment date by one plan cycle.
func (uc *RenewSubscriptionUseCase) Execute(ctx context.Context, cmd RenewSubscriptionCommand) (*dto.SubscriptionDTO, error) {
	subscription, err := uc.subscriptionRepo.GetByID(ctx, cmd.SubscriptionID)
	if err != nil {
		uc.logger.Errorw("failed to get subscription", "error", err, "subscription_id", cmd.SubscriptionID)
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}
	if subscription == nil || subscription.UserID() != cmd.UserID {
		return nil, errors.NewNotFoundError("subscription not found")
	}

	plan, err := uc.planRepo.GetByID(ctx, subscription.PlanID())
	if err != nil {
		uc.logger.Errorw("failed to get plan", "error", err, "plan_id", subscription.PlanID())
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}
	if plan == nil {
		return nil, fmt.Errorf("subscription %d references missing plan %d",
			subscription.ID(), subscription.PlanID())
	}

	service, err := uc.serviceRepo.GetByID(ctx, plan.ServiceID())
	if err != nil {
		uc.logger.Errorw("failed to get service", "error", err, "service_id", plan.ServiceID())
		return nil, fmt.Errorf("failed to get service: %w", err)
	}
	if service == nil {
		return nil, fmt.Errorf("plan %d references missing service %d", plan.ID(), plan.ServiceID())
	}

	if err := subscription.Renew(plan.BillingCycle()); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.subscriptionRepo.Update(ctx, subscription); err != nil {
		uc.logger.Errorw("failed to update subscription", "error", err,
			"subscription_id", cmd.SubscriptionID)
		return nil, fmt.Errorf("failed to update subscription: %w", err)
	}

	uc.logger.Infow("subscription renewed",
		"subscription_id", cmd.SubscriptionID,
		"next_payment_date", subscription.NextPaymentDate().Format(dateLayout))

	return toSubscriptionDTO(subscription, plan, service), nil
}
