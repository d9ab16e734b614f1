package usecases

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"subtrack/internal/domain/billing"
	"subtrack/internal/domain/ledger"
	"subtrack/internal/infrastructure/export"
	"subtrack/internal/shared/config"
)

func TestExportSubscriptionsUseCase_CSV(t *testing.T) {
	serviceRepo := newFakeServiceRepo(
		seedService(t, 1, "Netflix"),
		seedService(t, 2, "Notion"),
	)
	planRepo := newFakePlanRepo(
		seedPlan(t, 10, 1, "Premium", billing.CycleMonth, "17000"),
		seedPlan(t, 11, 2, "Plus Annual", billing.CycleYear, "120000"),
	)
	subRepo := newFakeSubscriptionRepo(
		seedSubscription(t, 1, 7, 10, ledger.StatusActive, nil),
		seedSubscription(t, 2, 7, 11, ledger.StatusActive, nil),
		seedSubscription(t, 3, 7, 10, ledger.StatusCanceled, nil),
	)

	cfg := &config.ExportConfig{ReportTitle: "Subscription Report", Currency: "KRW"}
	uc := NewExportSubscriptionsUseCase(subRepo, planRepo, serviceRepo, cfg, testLogger())

	var buf bytes.Buffer
	err := uc.Execute(context.Background(),
		ExportSubscriptionsCommand{UserID: 7, Username: "alice"},
		export.NewCSVWriter(), &buf)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "ServiceName,PlanName,MonthlyPrice,NextPaymentDate")
	assert.Contains(t, out, "Netflix,Premium,17000.00")
	// Yearly plan appears at its monthly equivalent
	assert.Contains(t, out, "Notion,Plus Annual,10000.00")

	// Canceled subscription stays out of the export
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 3)
}

func TestExportSubscriptionsUseCase_EmptyLedger(t *testing.T) {
	cfg := &config.ExportConfig{ReportTitle: "Subscription Report", Currency: "KRW"}
	uc := NewExportSubscriptionsUseCase(
		newFakeSubscriptionRepo(), newFakePlanRepo(), newFakeServiceRepo(), cfg, testLogger())

	var buf bytes.Buffer
	err := uc.Execute(context.Background(),
		ExportSubscriptionsCommand{UserID: 7, Username: "alice"},
		export.NewCSVWriter(), &buf)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Len(t, lines, 1)
}
