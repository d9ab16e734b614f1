package usecases

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"subtrack/internal/application/catalog/dto"
	"subtrack/internal/domain/catalog"
	"subtrack/internal/shared/errors"
	"subtrack/internal/shared/logger"
	"subtrack/internal/shared/query"
)

// ListServicesQuery carries the raw filter values as they arrive from the
// HTTP layer. Price bounds are strings so a malformed number can be turned
// into a validation error here rather than a 500.
type ListServicesQuery struct {
	Search   string
	Category string
	PriceMin string
	PriceMax string
	Sort     string
}

type ListServicesUseCase struct {
	serviceRepo catalog.ServiceRepository
	logger      logger.Interface
}

func NewListServicesUseCase(serviceRepo catalog.ServiceRepository, logger logger.Interface) *ListServicesUseCase {
	return &ListServicesUseCase{
		serviceRepo: serviceRepo,
		logger:      logger,
	}
}

func (uc *ListServicesUseCase) Execute(ctx context.Context, q ListServicesQuery) ([]*dto.ServiceDTO, error) {
	filter, err := uc.buildFilter(q)
	if err != nil {
		return nil, err
	}

	services, err := uc.serviceRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list services", "error", err)
		return nil, fmt.Errorf("failed to list services: %w", err)
	}

	dtos := make([]*dto.ServiceDTO, 0, len(services))
	for _, service := range services {
		dtos = append(dtos, dto.ToServiceDTO(service))
	}
	return dtos, nil
}

func (uc *ListServicesUseCase) buildFilter(q ListServicesQuery) (catalog.ServiceFilter, error) {
	filter := catalog.ServiceFilter{
		Search:   strings.TrimSpace(q.Search),
		Category: strings.TrimSpace(q.Category),
	}

	if q.PriceMin != "" {
		min, err := decimal.NewFromString(q.PriceMin)
		if err != nil {
			return filter, errors.NewValidationError("invalid price_min: " + q.PriceMin)
		}
		filter.PriceMin = &min
	}
	if q.PriceMax != "" {
		max, err := decimal.NewFromString(q.PriceMax)
		if err != nil {
			return filter, errors.NewValidationError("invalid price_max: " + q.PriceMax)
		}
		filter.PriceMax = &max
	}
	if filter.PriceMin != nil && filter.PriceMax != nil && filter.PriceMin.GreaterThan(*filter.PriceMax) {
		return filter, errors.NewValidationError("price_min cannot exceed price_max")
	}

	if q.Sort != "" {
		sortBy := q.Sort
		sortOrder := "asc"
		if strings.HasPrefix(sortBy, "-") {
			sortBy = sortBy[1:]
			sortOrder = "desc"
		}
		if sortBy != "name" && sortBy != "price" {
			return filter, errors.NewValidationError("invalid sort field: " + q.Sort)
		}
		filter.SortFilter = query.SortFilter{SortBy: sortBy, SortOrder: sortOrder}
	}

	return filter, nil
}
