package usecases

import (
	"context"
	"fmt"
	"strings"

	"subtrack/internal/application/catalog/dto"
	"subtrack/internal/domain/catalog"
	"subtrack/internal/shared/errors"
	"subtrack/internal/shared/logger"
	"subtrack/internal/shared/services/markdown"
)

type GetServiceDetailUseCase struct {
	serviceRepo catalog.ServiceRepository
	planRepo    catalog.PlanRepository
	markdown    markdown.Service
	logger      logger.Interface
}

func NewGetServiceDetailUseCase(
	serviceRepo catalog.ServiceRepository,
	planRepo catalog.PlanRepository,
	markdownSvc markdown.Service,
	logger logger.Interface,
) *GetServiceDetailUseCase {
	return &GetServiceDetailUseCase{
		serviceRepo: serviceRepo,
		planRepo:    planRepo,
		markdown:    markdownSvc,
		logger:      logger,
	}
}

func (uc *GetServiceDetailUseCase) Execute(ctx context.Context, serviceID uint) (*dto.ServiceDetailDTO, error) {
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
		uc.logger.Errorw("failed to list plans for service", "error", err, "service_id", serviceID)
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}

	detail := &dto.ServiceDetailDTO{
		ServiceDTO: *dto.ToServiceDTO(service),
		Plans:      dto.ToPlanDTOs(plans),
	}

	for _, planDTO := range detail.Plans {
		if len(planDTO.Benefits) == 0 {
			continue
		}
		html, err := uc.markdown.ToHTMLSanitized(strings.Join(planDTO.Benefits, "\n\n"))
		if err != nil {
			// Rendering is cosmetic; the raw benefit list is still returned
			uc.logger.Warnw("failed to render plan benefits", "plan_id", planDTO.ID, "error", err)
			continue
		}
		planDTO.BenefitsHTML = html
	}

	return detail, nil
}
