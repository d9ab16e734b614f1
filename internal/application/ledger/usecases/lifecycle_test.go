package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"subtrack/internal/domain/billing"
	"subtrack/internal/domain/ledger"
	"subtrack/internal/shared/errors"
)

func TestCancelSubscriptionUseCase_Execute(t *testing.T) {
	subRepo := newFakeSubscriptionRepo(
		seedSubscription(t, 1, 7, 10, ledger.StatusActive, nil),
	)

	uc := NewCancelSubscriptionUseCase(subRepo, testLogger())

	err := uc.Execute(context.Background(), CancelSubscriptionCommand{UserID: 7, SubscriptionID: 1})
	require.NoError(t, err)

	sub, _ := subRepo.GetByID(context.Background(), 1)
	assert.Equal(t, ledger.StatusCanceled, sub.Status())

	// Cancel is terminal
	err = uc.Execute(context.Background(), CancelSubscriptionCommand{UserID: 7, SubscriptionID: 1})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestCancelSubscriptionUseCase_OwnershipEnforced(t *testing.T) {
	subRepo := newFakeSubscriptionRepo(
		seedSubscription(t, 1, 7, 10, ledger.StatusActive, nil),
	)

	uc := NewCancelSubscriptionUseCase(subRepo, testLogger())

	err := uc.Execute(context.Background(), CancelSubscriptionCommand{UserID: 8, SubscriptionID: 1})
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestRenewSubscriptionUseCase_AdvancesOneCycle(t *testing.T) {
	serviceRepo := newFakeServiceRepo(seedService(t, 1, "Netflix"))
	planRepo := newFakePlanRepo(seedPlan(t, 10, 1, "Premium", billing.CycleMonth, "17000"))
	sub := seedSubscription(t, 1, 7, 10, ledger.StatusActive, nil)
	before := sub.NextPaymentDate()
	subRepo := newFakeSubscriptionRepo(sub)

	uc := NewRenewSubscriptionUseCase(subRepo, planRepo, serviceRepo, testLogger())

	result, err := uc.Execute(context.Background(), RenewSubscriptionCommand{UserID: 7, SubscriptionID: 1})
	require.NoError(t, err)

	after, _ := subRepo.GetByID(context.Background(), 1)
	assert.True(t, after.NextPaymentDate().After(before))
	assert.Equal(t, after.NextPaymentDate().Format("2006-01-02"), result.NextPaymentDate)
}

func TestRenewSubscriptionUseCase_CanceledRejected(t *testing.T) {
	serviceRepo := newFakeServiceRepo(seedService(t, 1, "Netflix"))
	planRepo := newFakePlanRepo(seedPlan(t, 10, 1, "Premium", billing.CycleMonth, "17000"))
	subRepo := newFakeSubscriptionRepo(
		seedSubscription(t, 1, 7, 10, ledger.StatusCanceled, nil),
	)

	uc := NewRenewSubscriptionUseCase(subRepo, planRepo, serviceRepo, testLogger())

	_, err := uc.Execute(context.Background(), RenewSubscriptionCommand{UserID: 7, SubscriptionID: 1})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestDeleteSubscriptionUseCase_Execute(t *testing.T) {
	subRepo := newFakeSubscriptionRepo(
		seedSubscription(t, 1, 7, 10, ledger.StatusActive, nil),
	)

	uc := NewDeleteSubscriptionUseCase(subRepo, testLogger())

	// Wrong owner first
	err := uc.Execute(context.Background(), DeleteSubscriptionCommand{UserID: 8, SubscriptionID: 1})
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))

	err = uc.Execute(context.Background(), DeleteSubscriptionCommand{UserID: 7, SubscriptionID: 1})
	require.NoError(t, err)

	sub, _ := subRepo.GetByID(context.Background(), 1)
	assert.Nil(t, sub)
}
