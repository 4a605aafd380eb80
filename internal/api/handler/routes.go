package handler

import (
	"net/http"

	"github.com/vfg2006/drop-analytics-api/internal/api/handler/router"
	"github.com/vfg2006/drop-analytics-api/internal/scheduler"
	"github.com/vfg2006/drop-analytics-api/internal/usecases/analyzing"
	"github.com/vfg2006/drop-analytics-api/internal/usecases/cataloging"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Drops(service cataloging.Cataloger) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/drops",
			Method:  http.MethodGet,
			Handler: ListDrops(service),
		},
		{
			Path:    "/v1/drops",
			Method:  http.MethodPost,
			Handler: CreateDrop(service),
		},
		{
			Path:    "/v1/drops/:id/products",
			Method:  http.MethodPost,
			Handler: AddProduct(service),
		},
		{
			Path:    "/v1/drops/:id/products/:product_id/periods/:period",
			Method:  http.MethodPut,
			Handler: UpsertPeriodRecord(service),
		},
	}
}

func Expenses(service cataloging.Cataloger) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/expenses",
			Method:  http.MethodGet,
			Handler: ListExpenses(service),
		},
		{
			Path:    "/v1/expenses/:period",
			Method:  http.MethodPut,
			Handler: UpsertExpenses(service),
		},
	}
}

func Analysis(service analyzing.Analyzer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/analysis",
			Method:  http.MethodGet,
			Handler: GetAnalysis(service),
		},
		{
			Path:    "/v1/analysis/recommendations",
			Method:  http.MethodGet,
			Handler: GetRecommendations(service),
		},
		{
			Path:    "/v1/analysis/discount-impact",
			Method:  http.MethodPost,
			Handler: SimulateDiscount(service),
		},
	}
}

func CronJobs(jobs scheduler.Registry) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/run/:type",
			Method:  http.MethodPost,
			Handler: RunCronJob(jobs),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(jobs),
		},
	}
}
