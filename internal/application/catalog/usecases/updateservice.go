package usecases

import (
	"context"
	"fmt"

	"subtrack/internal/application/catalog/dto"
	"subtrack/internal/domain/catalog"
	"subtrack/internal/shared/errors"
	"subtrack/internal/shared/logger"
)

type UpdateServiceCommand struct {
	ServiceID    uint
	Name         string
	Category     string
	Description  string
	OfficialLink string
}

type UpdateServiceUseCase struct {
	serviceRepo catalog.ServiceRepository
	logger      logger.Interface
}

func NewUpdateServiceUseCase(serviceRepo catalog.ServiceRepository, logger logger.Interface) *UpdateServiceUseCase {
	return &UpdateServiceUseCase{
		serviceRepo: serviceRepo,
		logger:      logger,
	}
}

func (uc *UpdateServiceUseCase) Execute(ctx context.Context, cmd UpdateServiceCommand) (*dto.ServiceDTO, error) {
	service, err := uc.serviceRepo.GetByID(ctx, cmd.ServiceID)
	if err != nil {
		uc.logger.Errorw("failed to get service", "error", err, "service_id", cmd.ServiceID)
		return nil, fmt.Errorf("failed to get service: %w", err)
	}
	if service == nil {
		return nil, errors.NewNotFoundError("service not found")
	}

	if err := service.Update(cmd.Name, cmd.Category, cmd.Description, cmd.OfficialLink); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.serviceRepo.Update(ctx, service); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to update service", "error", err, "service_id", cmd.ServiceID)
		return nil, fmt.Errorf("failed to update service: %w", err)
	}

	uc.logger.Infow("service updated", "service_id", cmd.ServiceID)
	return dto.ToServiceDTO(service), nil
}
