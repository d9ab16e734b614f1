package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"subtrack/internal/application/catalog/usecases"
	"subtrack/internal/domain/billing"
	"subtrack/internal/interfaces/http/handlers/testutil"
)

func newServiceHandler(t *testing.T) *ServiceHandler {
	t.Helper()
	serviceRepo := newFakeServiceRepo(
		seedService(t, 1, "Netflix"),
		seedService(t, 2, "Watcha"),
	)
	planRepo := newFakePlanRepo(
		seedPlan(t, 10, 1, "Premium", billing.CycleMonth, "17000"),
		seedPlan(t, 11, 2, "Standard", billing.CycleMonth, "7900"),
	)

	return NewServiceHandler(
		usecases.NewListServicesUseCase(serviceRepo, testLogger()),
		usecases.NewGetServiceDetailUseCase(serviceRepo, planRepo, testMarkdown(), testLogger()),
		usecases.NewListPlansForServiceUseCase(serviceRepo, planRepo, testLogger()),
		usecases.NewCompareServicesUseCase(serviceRepo, planRepo, testLogger()),
	)
}

func TestServiceHandler_CompareServices(t *testing.T) {
	h := newServiceHandler(t)

	c, w := testutil.NewTestContext("GET", "/api/services/compare", nil)
	testutil.SetQueryParams(c, map[string]string{"ids": "2,1"})

	h.CompareServices(c)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Services []struct {
			ID   uint   `json:"id"`
			Name string `json:"name"`
		} `json:"services"`
	}
	require.NoError(t, testutil.ParseResponse(w, &body))
	require.Len(t, body.Services, 2)
	// Result order follows request order
	assert.Equal(t, "Watcha", body.Services[0].Name)
	assert.Equal(t, "Netflix", body.Services[1].Name)
}

func TestServiceHandler_CompareServices_ErrorShape(t *testing.T) {
	h := newServiceHandler(t)

	tests := []struct {
		name    string
		ids     string
		message string
	}{
		{"missing ids", "", "No service IDs provided"},
		{"non-numeric token", "1,abc", "Invalid ID format"},
		{"negative id", "-1", "Invalid ID format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := testutil.NewTestContext("GET", "/api/services/compare", nil)
			if tt.ids != "" {
				testutil.SetQueryParams(c, map[string]string{"ids": tt.ids})
			}

			h.CompareServices(c)

			require.Equal(t, http.StatusBadRequest, w.Code)

			// Flat {"error": ...} body, not the envelope
			var body map[string]json.RawMessage
			require.NoError(t, testutil.ParseResponse(w, &body))
			require.Contains(t, body, "error")

			var msg string
			require.NoError(t, json.Unmarshal(body["error"], &msg))
			assert.Equal(t, tt.message, msg)
		})
	}
}

func TestServiceHandler_GetServiceDetail(t *testing.T) {
	h := newServiceHandler(t)

	c, w := testutil.NewTestContext("GET", "/api/services/1", nil)
	testutil.SetURLParam(c, "id", "1")

	h.GetServiceDetail(c)

	require.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)

	var detail struct {
		Name  string `json:"name"`
		Plans []struct {
			Name string `json:"name"`
		} `json:"plans"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &detail))
	assert.Equal(t, "Netflix", detail.Name)
	require.Len(t, detail.Plans, 1)
	assert.Equal(t, "Premium", detail.Plans[0].Name)
}

func TestServiceHandler_GetServiceDetail_NotFound(t *testing.T) {
	h := newServiceHandler(t)

	c, w := testutil.NewTestContext("GET", "/api/services/999", nil)
	testutil.SetURLParam(c, "id", "999")

	h.GetServiceDetail(c)

	require.Equal(t, http.StatusNotFound, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "not_found", resp.Error.Type)
}

func TestServiceHandler_GetServiceDetail_InvalidID(t *testing.T) {
	h := newServiceHandler(t)

	c, w := testutil.NewTestContext("GET", "/api/services/abc", nil)
	testutil.SetURLParam(c, "id", "abc")

	h.GetServiceDetail(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
}
