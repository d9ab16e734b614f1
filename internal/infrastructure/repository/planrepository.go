package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"gorm.io/gorm"

	"subtrack/internal/domain/billing"
	"subtrack/internal/domain/catalog"
	"subtrack/internal/infrastructure/persistence/models"
	"subtrack/internal/shared/errors"
	"subtrack/internal/shared/logger"
)

type PlanRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewPlanRepository(db *gorm.DB, logger logger.Interface) catalog.PlanRepository {
	return &PlanRepositoryImpl{
		db:     db,
		logger: logger,
	}
}

func (r *PlanRepositoryImpl) Create(ctx context.Context, plan *catalog.Plan) error {
	model, err := r.toModel(plan)
	if err != nil {
		r.logger.Errorw("failed to convert plan to model", "error", err)
		return fmt.Errorf("failed to convert plan to model: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create plan", "error", err, "name", plan.Name())
		return fmt.Errorf("failed to create plan: %w", err)
	}

	if err := plan.SetID(model.ID); err != nil {
		return err
	}

	r.logger.Infow("plan created", "plan_id", model.ID, "service_id", plan.ServiceID())
	return nil
}

func (r *PlanRepositoryImpl) GetByID(ctx context.Context, id uint) (*catalog.Plan, error) {
	var model models.PlanModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get plan by ID", "error", err, "plan_id", id)
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}

	return r.toEntity(&model)
}

func (r *PlanRepositoryImpl) ListByServiceID(ctx context.Context, serviceID uint) ([]*catalog.Plan, error) {
	var planModels []*models.PlanModel
	err := r.db.WithContext(ctx).
		Where("service_id = ?", serviceID).
		Order("price ASC, id ASC").
		Find(&planModels).Error
	if err != nil {
		r.logger.Errorw("failed to list plans for service", "error", err, "service_id", serviceID)
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}

	return r.toEntities(planModels)
}

func (r *PlanRepositoryImpl) ListByServiceIDs(ctx context.Context, serviceIDs []uint) (map[uint][]*catalog.Plan, error) {
	result := make(map[uint][]*catalog.Plan, len(serviceIDs))
	if len(serviceIDs) == 0 {
		return result, nil
	}

	var planModels []*models.PlanModel
	err := r.db.WithContext(ctx).
		Where("service_id IN ?", serviceIDs).
		Order("price ASC, id ASC").
		Find(&planModels).Error
	if err != nil {
		r.logger.Errorw("failed to list plans for services", "error", err, "service_ids", serviceIDs)
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}

	for _, model := range planModels {
		plan, err := r.toEntity(model)
		if err != nil {
			return nil, fmt.Errorf("failed to convert plan model %d: %w", model.ID, err)
		}
		result[model.ServiceID] = append(result[model.ServiceID], plan)
	}

	return result, nil
}

func (r *PlanRepositoryImpl) Update(ctx context.Context, plan *catalog.Plan) error {
	model, err := r.toModel(plan)
	if err != nil {
		return fmt.Errorf("failed to convert plan to model: %w", err)
	}

	result := r.db.WithContext(ctx).Model(&models.PlanModel{}).
		Where("id = ?", plan.ID()).
		Updates(map[string]interface{}{
			"name":          model.Name,
			"billing_cycle": model.BillingCycle,
			"price":         model.Price,
			"benefits":      model.Benefits,
			"updated_at":    model.UpdatedAt,
		})

	if result.Error != nil {
		r.logger.Errorw("failed to update plan", "error", result.Error, "plan_id", plan.ID())
		return fmt.Errorf("failed to update plan: %w", result.Error)
	}

	return nil
}

func (r *PlanRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.PlanModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete plan", "error", result.Error, "plan_id", id)
		return fmt.Errorf("failed to delete plan: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("plan not found")
	}

	r.logger.Infow("plan deleted", "plan_id", id)
	return nil
}

func (r *PlanRepositoryImpl) toModel(plan *catalog.Plan) (*models.PlanModel, error) {
	benefits, err := json.Marshal(plan.Benefits())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal benefits: %w", err)
	}

	return &models.PlanModel{
		ID:           plan.ID(),
		ServiceID:    plan.ServiceID(),
		Name:         plan.Name(),
		BillingCycle: plan.BillingCycle().String(),
		Price:        plan.Price(),
		Currency:     plan.Currency(),
		Benefits:     benefits,
		CreatedAt:    plan.CreatedAt(),
		UpdatedAt:    plan.UpdatedAt(),
	}, nil
}

func (r *PlanRepositoryImpl) toEntity(model *models.PlanModel) (*catalog.Plan, error) {
	cycle, err := billing.ParseCycle(model.BillingCycle)
	if err != nil {
		return nil, fmt.Errorf("plan %d: %w", model.ID, err)
	}

	var benefits []string
	if len(model.Benefits) > 0 {
		if err := json.Unmarshal(model.Benefits, &benefits); err != nil {
			return nil, fmt.Errorf("plan %d: failed to unmarshal benefits: %w", model.ID, err)
		}
	}

	return catalog.ReconstructPlan(
		model.ID,
		model.ServiceID,
		model.Name,
		cycle,
		model.Price,
		model.Currency,
		benefits,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (r *PlanRepositoryImpl) toEntities(planModels []*models.PlanModel) ([]*catalog.Plan, error) {
	plans := make([]*catalog.Plan, 0, len(planModels))
	for _, model := range planModels {
		plan, err := r.toEntity(model)
		if err != nil {
			return nil, err
		}
		plans = append(plans, plan)
	}
	return plans, nil
}
