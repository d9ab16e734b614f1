package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"subtrack/internal/domain/ledger"
	"subtrack/internal/infrastructure/persistence/models"
	"subtrack/internal/shared/errors"
	"subtrack/internal/shared/logger"
)

type SubscriptionRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewSubscriptionRepository(db *gorm.DB, logger logger.Interface) ledger.SubscriptionRepository {
	return &SubscriptionRepositoryImpl{
		db:     db,
		logger: logger,
	}
}

func (r *SubscriptionRepositoryImpl) Create(ctx context.Context, sub *ledger.Subscription) error {
	model := r.toModel(sub)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create subscription", "error", err,
			"user_id", sub.UserID(), "plan_id", sub.PlanID())
		return fmt.Errorf("failed to create subscription: %w", err)
	}

	if err := sub.SetID(model.ID); err != nil {
		return err
	}

	r.logger.Infow("subscription created", "subscription_id", model.ID,
		"user_id", sub.UserID(), "plan_id", sub.PlanID())
	return nil
}

func (r *SubscriptionRepositoryImpl) GetByID(ctx context.Context, id uint) (*ledger.Subscription, error) {
	var model models.SubscriptionModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get subscription by ID", "error", err, "subscription_id", id)
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}

	return r.toEntity(&model)
}

func (r *SubscriptionRepositoryImpl) ListByUserID(ctx context.Context, userID uint) ([]*ledger.Subscription, error) {
	var subModels []*models.SubscriptionModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&subModels).Error
	if err != nil {
		r.logger.Errorw("failed to list subscriptions", "error", err, "user_id", userID)
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}

	subs := make([]*ledger.Subscription, 0, len(subModels))
	for _, model := range subModels {
		sub, err := r.toEntity(model)
		if err != nil {
			return nil, fmt.Errorf("failed to convert subscription model %d: %w", model.ID, err)
		}
		subs = append(subs, sub)
	}
	return subs, nil
}

func (r *SubscriptionRepositoryImpl) Update(ctx context.Context, sub *ledger.Subscription) error {
	model := r.toModel(sub)

	result := r.db.WithContext(ctx).Model(&models.SubscriptionModel{}).
		Where("id = ?", sub.ID()).
		Updates(map[string]interface{}{
			"status":            model.Status,
			"next_payment_date": model.NextPaymentDate,
			"memo":              model.Memo,
			"price_override":    model.PriceOverride,
			"updated_at":        model.UpdatedAt,
		})

	if result.Error != nil {
		r.logger.Errorw("failed to update subscription", "error", result.Error, "subscription_id", sub.ID())
		return fmt.Errorf("failed to update subscription: %w", result.Error)
	}

	return nil
}

func (r *SubscriptionRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.SubscriptionModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete subscription", "error", result.Error, "subscription_id", id)
		return fmt.Errorf("failed to delete subscription: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("subscription not found")
	}

	r.logger.Infow("subscription deleted", "subscription_id", id)
	return nil
}

func (r *SubscriptionRepositoryImpl) toModel(sub *ledger.Subscription) *models.SubscriptionModel {
	return &models.SubscriptionModel{
		ID:              sub.ID(),
		UserID:          sub.UserID(),
		PlanID:          sub.PlanID(),
		Status:          string(sub.Status()),
		StartDate:       sub.StartDate(),
		NextPaymentDate: sub.NextPaymentDate(),
		Memo:            sub.Memo(),
		PriceOverride:   sub.PriceOverride(),
		CreatedAt:       sub.CreatedAt(),
		UpdatedAt:       sub.UpdatedAt(),
	}
}

func (r *SubscriptionRepositoryImpl) toEntity(model *models.SubscriptionModel) (*ledger.Subscription, error) {
	return ledger.ReconstructSubscription(
		model.ID,
		model.UserID,
		model.PlanID,
		ledger.Status(model.Status),
		model.StartDate,
		model.NextPaymentDate,
		model.Memo,
		model.PriceOverride,
		model.CreatedAt,
		model.UpdatedAt,
	)
}
