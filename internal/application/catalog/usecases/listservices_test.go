package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"subtrack/internal/shared/errors"
)

func TestListServicesUseCase_Execute(t *testing.T) {
	serviceRepo := newFakeServiceRepo(
		seedService(t, 1, "Netflix"),
		seedService(t, 2, "Spotify"),
	)

	uc := NewListServicesUseCase(serviceRepo, testLogger())

	result, err := uc.Execute(context.Background(), ListServicesQuery{})
	require.NoError(t, err)
	assert.Len(t, result, 2)
}

func TestListServicesUseCase_InvalidPriceBounds(t *testing.T) {
	uc := NewListServicesUseCase(newFakeServiceRepo(), testLogger())

	tests := []struct {
		name  string
		query ListServicesQuery
	}{
		{"bad price_min", ListServicesQuery{PriceMin: "abc"}},
		{"bad price_max", ListServicesQuery{PriceMax: "1,000"}},
		{"min exceeds max", ListServicesQuery{PriceMin: "100", PriceMax: "50"}},
		{"bad sort field", ListServicesQuery{Sort: "created_at"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.query)
			require.Error(t, err)
			assert.True(t, errors.IsValidationError(err))
		})
	}
}

func TestListServicesUseCase_SortParsing(t *testing.T) {
	serviceRepo := newFakeServiceRepo(seedService(t, 1, "Netflix"))
	uc := NewListServicesUseCase(serviceRepo, testLogger())

	for _, sort := range []string{"name", "-name", "price", "-price"} {
		_, err := uc.Execute(context.Background(), ListServicesQuery{Sort: sort})
		assert.NoError(t, err, "sort=%q", sort)
	}
}
