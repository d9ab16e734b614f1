package usecases

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"subtrack/internal/application/catalog/dto"
	"subtrack/internal/domain/catalog"
	"subtrack/internal/shared/constants"
	"subtrack/internal/shared/errors"
	"subtrack/internal/shared/logger"
)

// CompareServicesQuery carries the raw comma-separated ID list from the
// query string, e.g. "1,2,3".
type CompareServicesQuery struct {
	IDs string
}

type CompareServicesUseCase struct {
	serviceRepo catalog.ServiceRepository
	planRepo    catalog.PlanRepository
	logger      logger.Interface
}

func NewCompareServicesUseCase(
	serviceRepo catalog.ServiceRepository,
	planRepo catalog.PlanRepository,
	logger logger.Interface,
) *CompareServicesUseCase {
	return &CompareServicesUseCase{
		serviceRepo: serviceRepo,
		planRepo:    planRepo,
		logger:      logger,
	}
}

// Execute resolves up to five services with their plans. Unknown IDs are
// dropped silently; result order follows the request order.
func (uc *CompareServicesUseCase) Execute(ctx context.Context, q CompareServicesQuery) (*dto.ComparisonDTO, error) {
	ids, err := parseComparisonIDs(q.IDs)
	if err != nil {
		return nil, err
	}

	services, err := uc.serviceRepo.GetByIDs(ctx, ids)
	if err != nil {
		uc.logger.Errorw("failed to get services for comparison", "error", err, "ids", ids)
		return nil, fmt.Errorf("failed to get services: %w", err)
	}

	serviceIDs := make([]uint, 0, len(services))
	for _, service := range services {
		serviceIDs = append(serviceIDs, service.ID())
	}

	plansByService, err := uc.planRepo.ListByServiceIDs(ctx, serviceIDs)
	if err != nil {
		uc.logger.Errorw("failed to list plans for comparison", "error", err, "service_ids", serviceIDs)
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}

	byID := make(map[uint]*catalog.Service, len(services))
	for _, service := range services {
		byID[service.ID()] = service
	}

	result := &dto.ComparisonDTO{Services: make([]*dto.ServiceDetailDTO, 0, len(services))}
	for _, id := range ids {
		service, ok := byID[id]
		if !ok {
			continue
		}
		result.Services = append(result.Services, &dto.ServiceDetailDTO{
			ServiceDTO: *dto.ToServiceDTO(service),
			Plans:      dto.ToPlanDTOs(plansByService[service.ID()]),
		})
		delete(byID, id)
	}

	return result, nil
}

// parseComparisonIDs splits and validates the raw ID list. The raw parsed
// list is truncated to the comparison limit before dedup, matching the
// endpoint's documented behavior.
func parseComparisonIDs(raw string) ([]uint, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, errors.NewValidationError("No service IDs provided")
	}

	tokens := strings.Split(raw, ",")
	parsed := make([]uint, 0, len(tokens))
	for _, token := range tokens {
		token = strings.TrimSpace(token)
		if token == "" {
			return nil, errors.NewValidationError("Invalid ID format")
		}
		id, err := strconv.ParseUint(token, 10, 64)
		if err != nil {
			return nil, errors.NewValidationError("Invalid ID format")
		}
		parsed = append(parsed, uint(id))
	}

	if len(parsed) > constants.ComparisonLimit {
		parsed = parsed[:constants.ComparisonLimit]
	}
	return parsed, nil
}
