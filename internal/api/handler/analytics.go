package handler

import (
	"net/http"

	"github.com/adstudio/ads-report-api/internal/config"
	"github.com/adstudio/ads-report-api/internal/usecases/analyzing"
	"github.com/adstudio/ads-report-api/pkg/apiErrors"
	"github.com/adstudio/ads-report-api/pkg/log"
	"github.com/pkg/errors"
)

// DailyStats serves the storefront visitor and sales series for a date
// range, zero-filled over every requested day.
func DailyStats(cfg *config.Config, service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req GenerateReportRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid request body")
			return
		}

		if !passwordValid(cfg, req.Password) {
			logger.Warn("analytics: rejected request with invalid password")
			apiErrors.WriteError(w, apiErrors.ErrInvalidPassword, "invalid password")
			return
		}

		filters, err := resolveFilters(req.StartDate, req.EndDate)
		if err != nil {
			logger.WithError(err).Warn("analytics: invalid date parameters")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid date format, expected YYYY-MM-DD")
			return
		}

		stats, err := service.DailyStats(filters)
		if err != nil {
			if errors.Is(err, analyzing.ErrNotConfigured) {
				logger.Warn("analytics: storefront analytics not configured")
				apiErrors.WriteError(w, apiErrors.ErrNotConfigured, "storefront analytics is unavailable")
				return
			}

			logger.WithError(err).Error("analytics: failed to build daily stats")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "storefront analytics is unavailable")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(stats); err != nil {
			logger.WithError(err).Error("analytics: failed to encode response")
		}
	})
}
