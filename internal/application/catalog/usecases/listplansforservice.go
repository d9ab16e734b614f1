package usecases

import (
	"context"
	"fmt"

	"subtrack/internal/application/catalog/dto"
	"subtrack/internal/domain/catalog"
	"subtrack/internal/shared/errors"
	"subtrack/internal/shared/logger"
)

type ListPlansForServiceUseCase struct {
	serviceRepo catalog.ServiceRepository
	planRepo    catalog.PlanRepository
	logger      logger.Interface
}

func NewListPlansForServiceUseCase(
	serviceRepo catalog.ServiceRepository,
	planRepo catalog.PlanRepository,
	logger logger.Interface,
) *ListPlansForServiceUseCase {
	return &ListPlansForServiceUseCase{
		serviceRepo: serviceRepo,
		planRepo:    planRepo,
		logger:      logger,
	}
}

func (uc *ListPlansForServiceUseCase) Execute(ctx context.Context, serviceID uint) ([]*dto.PlanDTO, error) {
	service, err := uc.serviceRepo.GetByID(ctx, serviceID)
	if err != nil {
		uc.logger.Errorw("failed to get service", "error", err, "service_id", serviceID)
		return nil, fmt.Errorf("failed to get service: %w", err)
	}
	if service == nil {
		return nil, errors.NewNotFoundError("service not found")
	}

	plans, err := uc.planRepo.ListByServiceID(ctx, serviceID)
	if err != nil {
		uc.logger.Errorw("failed to list plans", "error", err, "service_id", serviceID)
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}

	return dto.ToPlanDTOs(plans), nil
}
