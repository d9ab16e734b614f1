package usecases

import (
	"context"
	"fmt"

	"subtrack/internal/domain/catalog"
	"subtrack/internal/shared/errors"
	"subtrack/internal/shared/logger"
)

type DeleteServiceUseCase struct {
	serviceRepo catalog.ServiceRepository
	logger      logger.Interface
}

func NewDeleteServiceUseCase(serviceRepo catalog.ServiceRepository, logger logger.Interface) *DeleteServiceUseCase {
	return &DeleteServiceUseCase{
		serviceRepo: serviceRepo,
		logger:      logger,
	}
}

// Execute removes a service. Plans, subscriptions and bookmarks referencing
// it are removed by the cascade constraints.
func (uc *DeleteServiceUseCase) Execute(ctx context.Context, serviceID uint) error {
	if err := uc.serviceRepo.Delete(ctx, serviceID); err != nil {
		if errors.IsNotFoundError(err) {
			return err
		}
		uc.logger.Errorw("failed to delete service", "error", err, "service_id", serviceID)
		return fmt.Errorf("failed to delete service: %w", err)
	}

	uc.logger.Infow("service deleted", "service_id", serviceID)
	return nil
}
