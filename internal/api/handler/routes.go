package handler

import (
	"net/http"

	"github.com/adstudio/ads-report-api/internal/api/handler/router"
	"github.com/adstudio/ads-report-api/internal/config"
	"github.com/adstudio/ads-report-api/internal/usecases/analyzing"
	"github.com/adstudio/ads-report-api/internal/usecases/reporting"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/",
			Method:  http.MethodGet,
			Handler: RootHandler(),
		},
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Reports(cfg *config.Config, service reporting.ReportService) []router.Route {
	return []router.Route{
		{
			Path:    "/generate-report",
			Method:  http.MethodPost,
			Handler: GenerateReport(cfg, service),
		},
		{
			Path:    "/accounts",
			Method:  http.MethodPost,
			Handler: AccountList(cfg, service),
		},
	}
}

func Analytics(cfg *config.Config, service analyzing.Analyzer) []router.Route {
	return []router.Route{
		{
			Path:    "/analytics",
			Method:  http.MethodPost,
			Handler: DailyStats(cfg, service),
		},
	}
}
