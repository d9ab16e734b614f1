package usecases

import (
	"context"
	"fmt"
	"io"

	"subtrack/internal/domain/billing"
	"subtrack/internal/domain/catalog"
	"subtrack/internal/domain/ledger"
	"subtrack/internal/infrastructure/export"
	"subtrack/internal/shared/biztime"
	"subtrack/internal/shared/config"
	"subtrack/internal/shared/logger"
)

// ReportWriter renders a report into a stream. CSV and PDF writers satisfy
// it; the use case does not care which.
type ReportWriter interface {
	ContentType() string
	Write(out io.Writer, report *export.Report) error
}

type ExportSubscriptionsCommand struct {
	UserID   uint
	Username string
}

type ExportSubscriptionsUseCase struct {
	subscriptionRepo ledger.SubscriptionRepository
	planRepo         catalog.PlanRepository
	serviceRepo      catalog.ServiceRepository
	exportCfg        *config.ExportConfig
	logger           logger.Interface
}

func NewExportSubscriptionsUseCase(
	subscriptionRepo ledger.SubscriptionRepository,
	planRepo catalog.PlanRepository,
	serviceRepo catalog.ServiceRepository,
	exportCfg *config.ExportConfig,
	logger logger.Interface,
) *ExportSubscriptionsUseCase {
	return &ExportSubscriptionsUseCase{
		subscriptionRepo: subscriptionRepo,
		planRepo:         planRepo,
		serviceRepo:      serviceRepo,
		exportCfg:        exportCfg,
		logger:           logger,
	}
}

// Execute builds the report from the user's active subscriptions and streams
// it through the given writer.
func (uc *ExportSubscriptionsUseCase) Execute(ctx context.Context, cmd ExportSubscriptionsCommand,
	writer ReportWriter, out io.Writer) error {

	subs, err := uc.subscriptionRepo.ListByUserID(ctx, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to list subscriptions for export", "error", err, "user_id", cmd.UserID)
		return fmt.Errorf("failed to list subscriptions: %w", err)
	}

	active := make([]*ledger.Subscription, 0, len(subs))
	for _, sub := range subs {
		if sub.IsActive() {
			active = append(active, sub)
		}
	}

	join, err := loadCatalogJoin(ctx, active, uc.planRepo, uc.serviceRepo)
	if err != nil {
		uc.logger.Errorw("failed to resolve catalog data for export", "error", err, "user_id", cmd.UserID)
		return err
	}

	report := &export.Report{
		Title:     uc.exportCfg.ReportTitle,
		Currency:  uc.exportCfg.Currency,
		Username:  cmd.Username,
		Generated: biztime.NowUTC(),
	}

	costItems := make([]billing.CostItem, 0, len(active))
	for _, sub := range active {
		plan, service := join.resolve(sub)
		effective := sub.EffectivePrice(plan.Price())

		report.Rows = append(report.Rows, export.Row{
			ServiceName:     service.Name(),
			PlanName:        plan.Name(),
			MonthlyPrice:    billing.MonthlyEquivalent(effective, plan.BillingCycle()),
			NextPaymentDate: sub.NextPaymentDate(),
		})
		costItems = append(costItems, billing.CostItem{
			EffectivePrice: effective,
			Cycle:          plan.BillingCycle(),
		})
	}
	report.Total = billing.TotalMonthlyCost(costItems)

	if err := writer.Write(out, report); err != nil {
		uc.logger.Errorw("failed to render export", "error", err, "user_id", cmd.UserID)
		return fmt.Errorf("failed to render export: %w", err)
	}

	uc.logger.Infow("subscriptions exported",
		"user_id", cmd.UserID, "rows", len(report.Rows))
	return nil
}
