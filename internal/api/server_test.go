package api

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/drop-analytics-api/infrastructure/repository"
	"github.com/vfg2006/drop-analytics-api/internal/config"
	"github.com/vfg2006/drop-analytics-api/internal/domain"
	"github.com/vfg2006/drop-analytics-api/internal/scheduler"
	"github.com/vfg2006/drop-analytics-api/internal/usecases/analyzing"
	"github.com/vfg2006/drop-analytics-api/internal/usecases/cataloging"
	"github.com/vfg2006/drop-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/drop-analytics-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func newTestHandler(t *testing.T, seed bool, policy cataloging.ValidationPolicy) http.Handler {
	t.Helper()
	log.SetupTestLogger()

	store := repository.NewRecordStore()
	if seed {
		store.Load(domain.SampleSnapshot())
	}

	cfg := &config.Config{
		Cors:           config.Cors{AllowedOrigins: []string{"http://localhost:3000"}},
		AnalysisReport: config.AnalysisReport{CronSchedule: "0 7 * * 1"},
	}

	analyzer := analyzing.NewService(store)
	cataloger := cataloging.NewService(store, analyzer, policy)
	jobs := scheduler.Registry{
		scheduler.CronJobAnalysisReport: scheduler.NewAnalysisReportService(analyzer, cfg),
	}

	return NewHandler(cfg, cataloger, analyzer, jobs)
}

func do(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var payload bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&payload).Encode(body))
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, path, &payload))
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	return decode[apiErrors.APIError](t, rec).Code
}

func TestHealthcheck(t *testing.T) {
	h := newTestHandler(t, false, cataloging.PolicyLenient)

	rec := do(t, h, http.MethodGet, "/healthcheck", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Body.String())
}

func TestDataEntryFlow(t *testing.T) {
	h := newTestHandler(t, false, cataloging.PolicyLenient)

	rec := do(t, h, http.MethodPost, "/v1/drops", map[string]any{"name": "Launch Collection", "launch_date": "2024-01-01"})
	require.Equal(t, http.StatusCreated, rec.Code)
	drop := decode[domain.Drop](t, rec)
	assert.Equal(t, domain.DropStatusActive, drop.Status)

	rec = do(t, h, http.MethodPost, "/v1/drops/"+drop.ID+"/products", map[string]any{
		"name": "Cool Ape Hoodie - Black", "sku": "CAH-BLK-001", "price": 2500, "cogs": 800, "initial_stock": 100,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	product := decode[domain.Product](t, rec)

	periodPath := "/v1/drops/" + drop.ID + "/products/" + product.ID + "/periods/2024-11"
	rec = do(t, h, http.MethodPut, periodPath, map[string]any{
		"sold": 15, "sold_with_discount": 3, "discount_percent": 20, "new_customers": 12,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	// Só as devoluções chegam depois; o restante do registro é mantido
	rec = do(t, h, http.MethodPut, periodPath, map[string]any{"returned": 2})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.PeriodRecord{Sold: 15, Returned: 2, SoldWithDiscount: 3, DiscountPercent: 20, NewCustomers: 12},
		decode[domain.PeriodRecord](t, rec))

	rec = do(t, h, http.MethodPut, "/v1/expenses/2024-11", domain.ExpensePeriod{
		AdSpend: 30000, FixedCosts: 15000, PlatformFees: 2500, OtherCosts: 5000,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, h, http.MethodGet, "/v1/expenses", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"shopify_fees":2500`)

	rec = do(t, h, http.MethodGet, "/v1/drops", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]*domain.Drop](t, rec), 1)

	rec = do(t, h, http.MethodGet, "/v1/analysis", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	result := decode[domain.AnalysisResult](t, rec)

	require.Len(t, result.MonthlyData, 1)
	assert.InDelta(t, 31000.0, result.MonthlyData[0].Revenue, 0.001)
	assert.InDelta(t, -31900.0, result.MonthlyData[0].Profit, 0.001)
	assert.InDelta(t, 2500.0, result.MonthlyData[0].CAC, 0.001)
	assert.Equal(t, 87, result.CurrentInventoryUnits)
	assert.Empty(t, result.RestockAlerts)
}

func TestDataEntryErrors(t *testing.T) {
	tests := []struct {
		name         string
		policy       cataloging.ValidationPolicy
		method       string
		path         string
		body         any
		expectedCode int
		expectedErr  string
	}{
		{
			name:         "Corpo inválido",
			method:       http.MethodPost,
			path:         "/v1/drops",
			body:         "não é um objeto",
			expectedCode: http.StatusBadRequest,
			expectedErr:  apiErrors.ErrInvalidFormat,
		},
		{
			name:         "Drop sem nome",
			method:       http.MethodPost,
			path:         "/v1/drops",
			body:         map[string]any{"launch_date": "2024-01-01"},
			expectedCode: http.StatusBadRequest,
			expectedErr:  apiErrors.ErrMissingRequiredData,
		},
		{
			name:         "Produto em drop inexistente",
			method:       http.MethodPost,
			path:         "/v1/drops/nao-existe/products",
			body:         map[string]any{"name": "Tee", "sku": "T-1", "price": 10, "initial_stock": 1},
			expectedCode: http.StatusNotFound,
			expectedErr:  apiErrors.ErrDropNotFound,
		},
		{
			name:         "Produto inexistente",
			method:       http.MethodPut,
			path:         "/v1/drops/launch-collection/products/nao-existe/periods/2024-11",
			body:         domain.PeriodRecord{Sold: 1},
			expectedCode: http.StatusNotFound,
			expectedErr:  apiErrors.ErrProductNotFound,
		},
		{
			name:         "Período fora do formato",
			method:       http.MethodPut,
			path:         "/v1/expenses/novembro",
			body:         domain.ExpensePeriod{AdSpend: 1},
			expectedCode: http.StatusBadRequest,
			expectedErr:  apiErrors.ErrInvalidFormat,
		},
		{
			name:         "Política reject recusa devoluções maiores que vendas",
			policy:       cataloging.PolicyReject,
			method:       http.MethodPut,
			path:         "/v1/drops/launch-collection/products/cah-blk-001/periods/2025-01",
			body:         domain.PeriodRecord{Sold: 1, Returned: 4},
			expectedCode: http.StatusUnprocessableEntity,
			expectedErr:  apiErrors.ErrInvalidRecord,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(t, true, tt.policy)

			rec := do(t, h, tt.method, tt.path, tt.body)

			assert.Equal(t, tt.expectedCode, rec.Code)
			assert.Equal(t, tt.expectedErr, errorCode(t, rec))
		})
	}
}

func TestDiscountImpact(t *testing.T) {
	h := newTestHandler(t, true, cataloging.PolicyLenient)

	rec := do(t, h, http.MethodPost, "/v1/analysis/discount-impact", domain.DiscountScenario{
		DropID:                "launch-collection",
		DiscountPercent:       30,
		ExpectedSalesIncrease: 50,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	impact := decode[domain.DiscountImpact](t, rec)
	assert.Equal(t, 38, impact.UnitsToSell)
	assert.InDelta(t, 68.0, impact.BreakEvenDiscount, 0.001)
	assert.True(t, impact.IsProfitable)

	rec = do(t, h, http.MethodPost, "/v1/analysis/discount-impact", domain.DiscountScenario{DropID: "launch-collection"})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, apiErrors.ErrScenarioInvalid, errorCode(t, rec))
}

func TestRecommendations(t *testing.T) {
	h := newTestHandler(t, true, cataloging.PolicyLenient)

	rec := do(t, h, http.MethodGet, "/v1/analysis/recommendations", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	recs := decode[[]*domain.Recommendation](t, rec)
	require.Len(t, recs, 4)
	assert.Equal(t, domain.PriorityHigh, recs[0].Priority)
	assert.Equal(t, domain.PriorityMedium, recs[3].Priority)
}

func TestCronJobs(t *testing.T) {
	h := newTestHandler(t, true, cataloging.PolicyLenient)

	rec := do(t, h, http.MethodPost, "/v1/cron/run/desconhecido", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), scheduler.CronJobAnalysisReport)

	rec = do(t, h, http.MethodPost, "/v1/cron/run/"+scheduler.CronJobAnalysisReport, nil)
	assert.Equal(t, http.StatusAccepted, rec.Code)

	rec = do(t, h, http.MethodGet, "/v1/cron/status", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	status := decode[map[string]map[string]any](t, rec)
	assert.Contains(t, status, scheduler.CronJobAnalysisReport)
	assert.Equal(t, "0 7 * * 1", status[scheduler.CronJobAnalysisReport]["cron"])
}

func TestCorsPreflight(t *testing.T) {
	h := newTestHandler(t, false, cataloging.PolicyLenient)

	req := httptest.NewRequest(http.MethodOptions, "/v1/analysis", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
}
