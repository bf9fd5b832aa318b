package analyzing

import (
	"errors"

	"github.com/adstudio/ads-report-api/infrastructure/integrator/cafe24"
	"github.com/adstudio/ads-report-api/internal/config"
	"github.com/adstudio/ads-report-api/internal/domain"
)

// ErrNotConfigured is returned when the storefront analytics credentials
// are absent and the feature is disabled.
var ErrNotConfigured = errors.New("storefront analytics is not configured")

// Analyzer serves the normalized storefront daily series
type Analyzer interface {
	DailyStats(filters *domain.ReportFilters) (*domain.DailyStats, error)
}

type Service struct {
	cfg           *config.Config
	cafe24Service cafe24.Cafe24Integrator
}

func NewService(cfg *config.Config, cafe24Service cafe24.Cafe24Integrator) Analyzer {
	return &Service{
		cfg:           cfg,
		cafe24Service: cafe24Service,
	}
}

// DailyStats returns the zero-filled visitor and sales series for the
// period, or ErrNotConfigured when the Cafe24 feature is disabled.
func (s *Service) DailyStats(filters *domain.ReportFilters) (*domain.DailyStats, error) {
	if !s.cfg.Cafe24.Enabled() {
		return nil, ErrNotConfigured
	}

	return s.cafe24Service.DailyStats(filters)
}
