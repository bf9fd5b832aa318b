package reporting

import (
	metadomain "github.com/adstudio/ads-report-api/infrastructure/integrator/meta/domain"
	"github.com/adstudio/ads-report-api/internal/config"
	"github.com/adstudio/ads-report-api/internal/domain"
)

// MetaInsighter is the slice of the Meta integrator the report builder
// depends on.
type MetaInsighter interface {
	AdInsights(account config.AdAccount, filters *domain.ReportFilters) ([]metadomain.InsightRow, error)
	CreativeDetails(adID, token string) *domain.CreativeDetails
}

// ReportService builds ad performance reports for configured accounts
type ReportService interface {
	Build(accountKey string, filters *domain.ReportFilters) ([]*domain.AdRecord, error)
	AccountNames() []string
}
