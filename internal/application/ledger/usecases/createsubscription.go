package usecases

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"subtrack/internal/application/ledger/dto"
	"subtrack/internal/domain/catalog"
	"subtrack/internal/domain/ledger"
	"subtrack/internal/shared/biztime"
	"subtrack/internal/shared/errors"
	"subtrack/internal/shared/logger"
	"subtrack/internal/shared/services/markdown"
)

type CreateSubscriptionCommand struct {
	UserID        uint
	PlanID        uint
	Memo          string
	PriceOverride *decimal.Decimal
}

type CreateSubscriptionUseCase struct {
	subscriptionRepo ledger.SubscriptionRepository
	planRepo         catalog.PlanRepository
	serviceRepo      catalog.ServiceRepository
	markdown         markdown.Service
	logger           logger.Interface
}

func NewCreateSubscriptionUseCase(
	subscriptionRepo ledger.SubscriptionRepository,
	planRepo catalog.PlanRepository,
	serviceRepo catalog.ServiceRepository,
	markdownSvc markdown.Service,
	logger logger.Interface,
) *CreateSubscriptionUseCase {
	return &CreateSubscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
		planRepo:         planRepo,
		serviceRepo:      serviceRepo,
		markdown:         markdownSvc,
		logger:           logger,
	}
}

// Execute opens a subscription on a plan. The start date is today's UTC
// date and the next payment date lies one plan cycle ahead.
func (uc *CreateSubscriptionUseCase) Execute(ctx context.Context, cmd CreateSubscriptionCommand) (*dto.SubscriptionDTO, error) {
	plan, err := uc.planRepo.GetByID(ctx, cmd.PlanID)
	if err != nil {
		uc.logger.Errorw("failed to get plan", "error", err, "plan_id", cmd.PlanID)
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}
	if plan == nil {
		return nil, errors.NewNotFoundError("plan not found")
	}

	service, err := uc.serviceRepo.GetByID(ctx, plan.ServiceID())
	if err != nil {
		uc.logger.Errorw("failed to get service", "error", err, "service_id", plan.ServiceID())
		return nil, fmt.Errorf("failed to get service: %w", err)
	}
	if service == nil {
		return nil, errors.NewNotFoundError("service not found")
	}

	memo := uc.markdown.SanitizeMemo(cmd.Memo)

	subscription, err := ledger.NewSubscription(
		cmd.UserID, cmd.PlanID, plan.BillingCycle(), biztime.Today(), memo, cmd.PriceOverride)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.subscriptionRepo.Create(ctx, subscription); err != nil {
		uc.logger.Errorw("failed to create subscription", "error", err,
			"user_id", cmd.UserID, "plan_id", cmd.PlanID)
		return nil, fmt.Errorf("failed to create subscription: %w", err)
	}

	uc.logger.Infow("subscription created",
		"subscription_id", subscription.ID(),
		"user_id", cmd.UserID,
		"plan_id", cmd.PlanID)

	return toSubscriptionDTO(subscription, plan, service), nil
}
