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

type UpdatePlanCommand struct {
	PlanID       uint
	Name         string
	BillingCycle string
	Price        decimal.Decimal
	Benefits     []string
}

type UpdatePlanUseCase struct {
	planRepo catalog.PlanRepository
	logger   logger.Interface
}

func NewUpdatePlanUseCase(planRepo catalog.PlanRepository, logger logger.Interface) *UpdatePlanUseCase {
	return &UpdatePlanUseCase{
		planRepo: planRepo,
		logger:   logger,
	}
}

func (uc *UpdatePlanUseCase) Execute(ctx context.Context, cmd UpdatePlanCommand) (*dto.PlanDTO, error) {
	plan, err := uc.planRepo.GetByID(ctx, cmd.PlanID)
	if err != nil {
		uc.logger.Errorw("failed to get plan", "error", err, "plan_id", cmd.PlanID)
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}
	if plan == nil {
		return nil, errors.NewNotFoundError("plan not found")
	}

	cycle, err := billing.ParseCycle(cmd.BillingCycle)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := plan.Update(cmd.Name, cycle, cmd.Price, cmd.Benefits); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.planRepo.Update(ctx, plan); err != nil {
		uc.logger.Errorw("failed to update plan", "error", err, "plan_id", cmd.PlanID)
		return nil, fmt.Errorf("failed to update plan: %w", err)
	}

	uc.logger.Infow("plan updated", "plan_id", cmd.PlanID)
	return dto.ToPlanDTO(plan), nil
}
