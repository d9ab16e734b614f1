package usecases

import (
	"context"
	"fmt"

	"subtrack/internal/application/ledger/dto"
	"subtrack/internal/domain/billing"
	"subtrack/internal/domain/catalog"
	"subtrack/internal/domain/ledger"
)

const dateLayout = "2006-01-02"

func toSubscriptionDTO(sub *ledger.Subscription, plan *catalog.Plan, service *catalog.Service) *dto.SubscriptionDTO {
	effective := sub.EffectivePrice(plan.Price())
	return &dto.SubscriptionDTO{
		ID:              sub.ID(),
		ServiceID:       service.ID(),
		ServiceName:     service.Name(),
		PlanID:          plan.ID(),
		PlanName:        plan.Name(),
		BillingCycle:    plan.BillingCycle().String(),
		Status:          string(sub.Status()),
		StartDate:       sub.StartDate().Format(dateLayout),
		NextPaymentDate: sub.NextPaymentDate().Format(dateLayout),
		EffectivePrice:  effective,
		MonthlyPrice:    billing.MonthlyEquivalent(effective, plan.BillingCycle()),
		PriceOverride:   sub.PriceOverride(),
		Currency:        plan.Currency(),
		Memo:            sub.Memo(),
		CreatedAt:       sub.CreatedAt(),
	}
}

// catalogJoin resolves the plan and service rows a set of subscriptions
// references. A subscription whose plan or service row is gone is a data
// integrity error, not a fallback case.
type catalogJoin struct {
	plans    map[uint]*catalog.Plan
	services map[uint]*catalog.Service
}

func loadCatalogJoin(ctx context.Context, subs []*ledger.Subscription,
	planRepo catalog.PlanRepository, serviceRepo catalog.ServiceRepository) (*catalogJoin, error) {

	join := &catalogJoin{
		plans:    make(map[uint]*catalog.Plan),
		services: make(map[uint]*catalog.Service),
	}

	for _, sub := range subs {
		if _, ok := join.plans[sub.PlanID()]; ok {
			continue
		}
		plan, err := planRepo.GetByID(ctx, sub.PlanID())
		if err != nil {
			return nil, fmt.Errorf("failed to get plan %d: %w", sub.PlanID(), err)
		}
		if plan == nil {
			return nil, fmt.Errorf("subscription %d references missing plan %d", sub.ID(), sub.PlanID())
		}
		join.plans[sub.PlanID()] = plan
	}

	serviceIDs := make([]uint, 0, len(join.plans))
	seen := make(map[uint]bool)
	for _, plan := range join.plans {
		if !seen[plan.ServiceID()] {
			seen[plan.ServiceID()] = true
			serviceIDs = append(serviceIDs, plan.ServiceID())
		}
	}

	services, err := serviceRepo.GetByIDs(ctx, serviceIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to get services: %w", err)
	}
	for _, service := range services {
		join.services[service.ID()] = service
	}

	for _, plan := range join.plans {
		if _, ok := join.services[plan.ServiceID()]; !ok {
			return nil, fmt.Errorf("plan %d references missing service %d", plan.ID(), plan.ServiceID())
		}
	}

	return join, nil
}

func (j *catalogJoin) resolve(sub *ledger.Subscription) (*catalog.Plan, *catalog.Service) {
	plan := j.plans[sub.PlanID()]
	return plan, j.services[plan.ServiceID()]
}
