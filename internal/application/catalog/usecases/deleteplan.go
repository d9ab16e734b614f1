package usecases

import (
	"context"
	"fmt"

	"subtrack/internal/domain/catalog"
	"subtrack/internal/shared/errors"
	"subtrack/internal/shared/logger"
)

type DeletePlanUseCase struct {
	planRepo catalog.PlanRepository
	logger   logger.Interface
}

func NewDeletePlanUseCase(planRepo catalog.PlanRepository, logger logger.Interface) *DeletePlanUseCase {
	return &DeletePlanUseCase{
		planRepo: planRepo,
		logger:   logger,
	}
}

func (uc *DeletePlanUseCase) Execute(ctx context.Context, planID uint) error {
	if err := uc.planRepo.Delete(ctx, planID); err != nil {
		if errors.IsNotFoundError(err) {
			return err
		}
		uc.logger.Errorw("failed to delete plan", "error", err, "plan_id", planID)
		return fmt.Errorf("failed to delete plan: %w", err)
	}

	uc.logger.Infow("plan deleted", "plan_id", planID)
	return nil
}
