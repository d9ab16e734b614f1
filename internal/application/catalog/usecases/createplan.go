package usecases

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"subtrack/internal/application/catalog/dto"
	"subtrack/internal/domain/billing"
	"subtrack/internal/domain/catalog"
	"subtrack/internal/shared/errors"
	"subtrack/internal/shared/logger"
)

type CreatePlanCommand struct {
	ServiceID    uint
	Name         string
	BillingCycle string
	Price        decimal.Decimal
	Currency     string
	Benefits     []string
}

type CreatePlanUseCase struct {
	serviceRepo catalog.ServiceRepository
	planRepo    catalog.PlanRepository
	logger      logger.Interface
}

func NewCreatePlanUseCase(
	serviceRepo catalog.ServiceRepository,
	planRepo catalog.PlanRepository,
	logger logger.Interface,
) *CreatePlanUseCase {
	return &CreatePlanUseCase{
		serviceRepo: serviceRepo,
		planRepo:    planRepo,
		logger:      logger,
	}
}

func (uc *CreatePlanUseCase) Execute(ctx context.Context, cmd CreatePlanCommand) (*dto.PlanDTO, error) {
	service, err := uc.serviceRepo.GetByID(ctx, cmd.ServiceID)
	if err != nil {
		uc.logger.Errorw("failed to get service", "error", err, "service_id", cmd.ServiceID)
		return nil, fmt.Errorf("failed to get service: %w", err)
	}
	if service == nil {
		return nil, errors.NewNotFoundError("service not found")
	}

	cycle, err := billing.ParseCycle(cmd.BillingCycle)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	plan, err := catalog.NewPlan(cmd.ServiceID, cmd.Name, cycle, cmd.Price, cmd.Currency, cmd.Benefits)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.planRepo.Create(ctx, plan); err != nil {
		uc.logger.Errorw("failed to create plan", "error", err, "service_id", cmd.ServiceID)
		return nil, fmt.Errorf("failed to create plan: %w", err)
	}

	uc.logger.Infow("plan created", "plan_id", plan.ID(), "service_id", cmd.ServiceID)
	return dto.ToPlanDTO(plan), nil
}
