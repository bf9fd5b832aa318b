package handler

import (
	"net/http"

	"github.com/adstudio/ads-report-api/internal/config"
	"github.com/adstudio/ads-report-api/internal/domain"
	"github.com/adstudio/ads-report-api/internal/usecases/reporting"
	"github.com/adstudio/ads-report-api/pkg/apiErrors"
	"github.com/adstudio/ads-report-api/pkg/log"
	"github.com/adstudio/ads-report-api/pkg/utils"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type GenerateReportRequest struct {
	Password           string `json:"password"`
	StartDate          string `json:"start_date"`
	EndDate            string `json:"end_date"`
	SelectedAccountKey string `json:"selected_account_key"`
}

type ReportResponse struct {
	Data []*domain.AdRecord `json:"data"`
}

// GenerateReport builds the ad performance report for a date range. The
// request is guarded by the shared report password; both dates default to
// yesterday when omitted.
func GenerateReport(cfg *config.Config, service reporting.ReportService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req GenerateReportRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid request body")
			return
		}

		if !passwordValid(cfg, req.Password) {
			logger.Warn("report: rejected request with invalid password")
			apiErrors.WriteError(w, apiErrors.ErrInvalidPassword, "invalid password")
			return
		}

		filters, err := resolveFilters(req.StartDate, req.EndDate)
		if err != nil {
			logger.WithError(err).Warn("report: invalid date parameters")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid date format, expected YYYY-MM-DD")
			return
		}

		records, err := service.Build(req.SelectedAccountKey, filters)
		if err != nil {
			writeBuildError(w, logger, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(ReportResponse{Data: records}); err != nil {
			logger.WithError(err).Error("report: failed to encode response")
		}
	})
}

// AccountList returns the configured account names, behind the same
// password as the report itself.
func AccountList(cfg *config.Config, service reporting.ReportService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req GenerateReportRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid request body")
			return
		}

		if !passwordValid(cfg, req.Password) {
			logger.Warn("accounts: rejected request with invalid password")
			apiErrors.WriteError(w, apiErrors.ErrInvalidPassword, "invalid password")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(service.AccountNames()); err != nil {
			logger.WithError(err).Error("accounts: failed to encode response")
		}
	})
}

// passwordValid compares the request password against the server secret. An
// unset secret rejects everything rather than opening the endpoint.
func passwordValid(cfg *config.Config, password string) bool {
	return cfg.Report.Password != "" && password == cfg.Report.Password
}

// resolveFilters parses optional dates, defaulting each to yesterday
func resolveFilters(startStr, endStr string) (*domain.ReportFilters, error) {
	startDate, err := utils.ParseDate(startStr)
	if err != nil {
		return nil, err
	}

	endDate, err := utils.ParseDate(endStr)
	if err != nil {
		return nil, err
	}

	if startDate.IsZero() {
		y := utils.Yesterday()
		startDate = &y
	}
	if endDate.IsZero() {
		y := utils.Yesterday()
		endDate = &y
	}

	return &domain.ReportFilters{
		StartDate: startDate,
		EndDate:   endDate,
	}, nil
}

// writeBuildError maps builder errors to responses. Anything unexpected is
// logged in full and surfaced as an opaque 500.
func writeBuildError(w http.ResponseWriter, logger log.Logger, err error) {
	switch {
	case errors.Is(err, reporting.ErrAccountKeyRequired), errors.Is(err, reporting.ErrNoAccounts):
		apiErrors.WriteError(w, apiErrors.ErrMissingAccount, err.Error())
	case errors.Is(err, reporting.ErrAccountNotFound):
		apiErrors.WriteError(w, apiErrors.ErrAccountNotFound, err.Error())
	default:
		logger.WithError(err).Error("report: failed to build report")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer,
			"An internal server error occurred while generating the report.")
	}
}
