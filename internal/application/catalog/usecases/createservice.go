package usecases

import (
	"context"
	"fmt"

	"subtrack/internal/application/catalog/dto"
	"subtrack/internal/domain/catalog"
	"subtrack/internal/shared/errors"
	"subtrack/internal/shared/logger"
)

type CreateServiceCommand struct {
	Name         string
	Category     string
	Description  string
	OfficialLink string
}

type CreateServiceUseCase struct {
	serviceRepo catalog.ServiceRepository
	logger      logger.Interface
}

func NewCreateServiceUseCase(serviceRepo catalog.ServiceRepository, logger logger.Interface) *CreateServiceUseCase {
	return &CreateServiceUseCase{
		serviceRepo: serviceRepo,
		logger:      logger,
	}
}

func (uc *CreateServiceUseCase) Execute(ctx context.Context, cmd CreateServiceCommand) (*dto.ServiceDTO, error) {
	service, err := catalog.NewService(cmd.Name, cmd.Category, cmd.Description, cmd.OfficialLink)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.serviceRepo.Create(ctx, service); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to create service", "error", err, "name", cmd.Name)
		return nil, fmt.Errorf("failed to create service: %w", err)
	}

	uc.logger.Infow("service created", "service_id", service.ID(), "name", service.Name())
	return dto.ToServiceDTO(service), nil
}
