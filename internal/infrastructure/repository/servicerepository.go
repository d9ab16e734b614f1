package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"subtrack/internal/domain/catalog"
	"subtrack/internal/infrastructure/persistence/models"
	"subtrack/internal/shared/errors"
	"subtrack/internal/shared/logger"
)

// monthlyPriceExpr normalizes a plan's price to its monthly equivalent in
// SQL, mirroring billing.MonthlyEquivalent. Range filtering must happen on
// the normalized value, never the raw price.
const monthlyPriceExpr = "CASE WHEN plan.billing_cycle = 'year' THEN plan.price / 12 ELSE plan.price END"

type ServiceRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewServiceRepository(db *gorm.DB, logger logger.Interface) catalog.ServiceRepository {
	return &ServiceRepositoryImpl{
		db:     db,
		logger: logger,
	}
}

func (r *ServiceRepositoryImpl) Create(ctx context.Context, service *catalog.Service) error {
	model := r.toModel(service)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.IsDuplicateKeyError(err) {
			return errors.NewDuplicateError("service name already exists")
		}
		r.logger.Errorw("failed to create service", "error", err, "name", service.Name())
		return fmt.Errorf("failed to create service: %w", err)
	}

	if err := service.SetID(model.ID); err != nil {
		return err
	}

	r.logger.Infow("service created", "service_id", model.ID, "name", service.Name())
	return nil
}

func (r *ServiceRepositoryImpl) GetByID(ctx context.Context, id uint) (*catalog.Service, error) {
	var model models.ServiceModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get service by ID", "error", err, "service_id", id)
		return nil, fmt.Errorf("failed to get service: %w", err)
	}

	return r.toEntity(&model)
}

func (r *ServiceRepositoryImpl) GetByIDs(ctx context.Context, ids []uint) ([]*catalog.Service, error) {
	if len(ids) == 0 {
		return []*catalog.Service{}, nil
	}

	var serviceModels []*models.ServiceModel
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&serviceModels).Error; err != nil {
		r.logger.Errorw("failed to get services by IDs", "error", err, "ids", ids)
		return nil, fmt.Errorf("failed to get services by IDs: %w", err)
	}

	return r.toEntities(serviceModels)
}

func (r *ServiceRepositoryImpl) List(ctx context.Context, filter catalog.ServiceFilter) ([]*catalog.Service, error) {
	query := r.db.WithContext(ctx).Model(&models.ServiceModel{})

	if filter.Search != "" {
		query = query.Where("name LIKE ?", "%"+filter.Search+"%")
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.PriceMin != nil || filter.PriceMax != nil {
		sub := "SELECT 1 FROM plan WHERE plan.service_id = service.id"
		args := []interface{}{}
		if filter.PriceMin != nil {
			sub += " AND " + monthlyPriceExpr + " >= ?"
			args = append(args, *filter.PriceMin)
		}
		if filter.PriceMax != nil {
			sub += " AND " + monthlyPriceExpr + " <= ?"
			args = append(args, *filter.PriceMax)
		}
		query = query.Where("EXISTS ("+sub+")", args...)
	}

	switch filter.SortBy {
	case "price":
		order := "ASC"
		if filter.IsDescending() {
			order = "DESC"
		}
		query = query.Order(fmt.Sprintf(
			"(SELECT MIN(%s) FROM plan WHERE plan.service_id = service.id) %s", monthlyPriceExpr, order))
	case "name":
		query = query.Order(filter.OrderClause())
	default:
		query = query.Order("name ASC")
	}

	var serviceModels []*models.ServiceModel
	if err := query.Find(&serviceModels).Error; err != nil {
		r.logger.Errorw("failed to list services", "error", err)
		return nil, fmt.Errorf("failed to list services: %w", err)
	}

	return r.toEntities(serviceModels)
}

func (r *ServiceRepositoryImpl) Update(ctx context.Context, service *catalog.Service) error {
	model := r.toModel(service)

	result := r.db.WithContext(ctx).Model(&models.ServiceModel{}).
		Where("id = ?", service.ID()).
		Updates(map[string]interface{}{
			"name":          model.Name,
			"category":      model.Category,
			"description":   model.Description,
			"official_link": model.OfficialLink,
			"updated_at":    model.UpdatedAt,
		})

	if result.Error != nil {
		if errors.IsDuplicateKeyError(result.Error) {
			return errors.NewDuplicateError("service name already exists")
		}
		r.logger.Errorw("failed to update service", "error", result.Error, "service_id", service.ID())
		return fmt.Errorf("failed to update service: %w", result.Error)
	}

	return nil
}

func (r *ServiceRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.ServiceModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete service", "error", result.Error, "service_id", id)
		return fmt.Errorf("failed to delete service: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("service not found")
	}

	r.logger.Infow("service deleted", "service_id", id)
	return nil
}

func (r *ServiceRepositoryImpl) toModel(service *catalog.Service) *models.ServiceModel {
	return &models.ServiceModel{
		ID:           service.ID(),
		Name:         service.Name(),
		Category:     service.Category(),
		Description:  service.Description(),
		OfficialLink: service.OfficialLink(),
		CreatedAt:    service.CreatedAt(),
		UpdatedAt:    service.UpdatedAt(),
	}
}

func (r *ServiceRepositoryImpl) toEntity(model *models.ServiceModel) (*catalog.Service, error) {
	return catalog.ReconstructService(
		model.ID,
		model.Name,
		model.Category,
		model.Description,
		model.OfficialLink,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (r *ServiceRepositoryImpl) toEntities(serviceModels []*models.ServiceModel) ([]*catalog.Service, error) {
	services := make([]*catalog.Service, 0, len(serviceModels))
	for _, model := range serviceModels {
		service, err := r.toEntity(model)
		if err != nil {
			return nil, fmt.Errorf("failed to convert service model %d: %w", model.ID, err)
		}
		services = append(services, service)
	}
	return services, nil
}
