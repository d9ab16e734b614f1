package usecases

import (
	"context"
	"fmt"

	"subtrack/internal/application/ledger/dto"
	"subtrack/internal/domain/billing"
	"subtrack/internal/domain/catalog"
	"subtrack/internal/domain/ledger"
	"subtrack/internal/shared/logger"
)

type ListSubscriptionsUseCase struct {
	subscriptionRepo ledger.SubscriptionRepository
	planRepo         catalog.PlanRepository
	serviceRepo      catalog.ServiceRepository
	logger           logger.Interface
}

func NewListSubscriptionsUseCase(
	subscriptionRepo ledger.SubscriptionRepository,
	planRepo catalog.PlanRepository,
	serviceRepo catalog.ServiceRepository,
	logger logger.Interface,
) *ListSubscriptionsUseCase {
	return &ListSubscriptionsUseCase{
		subscriptionRepo: subscriptionRepo,
		planRepo:         planRepo,
		serviceRepo:      serviceRepo,
		logger:           logger,
	}
}

// Execute returns the user's subscriptions with the aggregate monthly spend.
// Only active subscriptions contribute to the total; the yearly ones enter
// at their monthly equivalent.
func (uc *ListSubscriptionsUseCase) Execute(ctx context.Context, userID uint) (*dto.SubscriptionListDTO, error) {
	subs, err := uc.subscriptionRepo.ListByUserID(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to list subscriptions", "error", err, "user_id", userID)
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}

	join, err := loadCatalogJoin(ctx, subs, uc.planRepo, uc.serviceRepo)
	if err != nil {
		uc.logger.Errorw("failed to resolve catalog data", "error", err, "user_id", userID)
		return nil, err
	}

	results := make([]*dto.SubscriptionDTO, 0, len(subs))
	costItems := make([]billing.CostItem, 0, len(subs))
	for _, sub := range subs {
		plan, service := join.resolve(sub)
		results = append(results, toSubscriptionDTO(sub, plan, service))

		if sub.IsActive() {
			costItems = append(costItems, billing.CostItem{
				EffectivePrice: sub.EffectivePrice(plan.Price()),
				Cycle:          plan.BillingCycle(),
			})
		}
	}

	return &dto.SubscriptionListDTO{
		Count:      len(results),
		Results:    results,
		TotalPrice: billing.TotalMonthlyCost(costItems),
	}, nil
}
