package metaclient

import (
	"fmt"
	"net/url"
	"time"

	metadomain "github.com/adstudio/ads-report-api/infrastructure/integrator/meta/domain"
	"github.com/adstudio/ads-report-api/internal/domain"
	"github.com/sirupsen/logrus"
)

// insightFields is the metric list requested at ad granularity
const insightFields = "ad_id,ad_name,campaign_name,adset_name,spend,impressions,clicks,ctr,cpc,actions"

// GetAdInsights fetches every insight row for the account and date range,
// following pagination cursors. Any failed page fails the whole fetch; a
// report is never built from partial insight data.
func (c *MetaClient) GetAdInsights(accountID, token string, filters *domain.ReportFilters) ([]metadomain.InsightRow, error) {
	params := url.Values{}
	params.Add("fields", insightFields)
	params.Add("access_token", token)
	params.Add("level", "ad")
	params.Add("time_range[since]", filters.StartDate.Format(time.DateOnly))
	params.Add("time_range[until]", filters.EndDate.Format(time.DateOnly))
	params.Add("use_unified_attribution_setting", "true")
	params.Add("limit", "100")

	requestURL := fmt.Sprintf("%s/%s/insights?%s", c.Cfg.Meta.URL, accountID, params.Encode())

	var rows []metadomain.InsightRow
	pageCount := 0

	for requestURL != "" {
		pageCount++

		body, err := c.get(requestURL)
		if err != nil {
			return nil, fmt.Errorf("insights page %d: %w", pageCount, err)
		}

		var page metadomain.InsightsResponse
		if err := json.Unmarshal(body, &page); err != nil {
			return nil, fmt.Errorf("error decoding insights page %d: %w", pageCount, err)
		}

		if len(page.Data) == 0 {
			break
		}

		rows = append(rows, page.Data...)
		requestURL = page.Paging.Next
	}

	logrus.WithFields(logrus.Fields{
		"account_id": accountID,
		"pages":      pageCount,
		"rows":       len(rows),
	}).Debug("insights: finished fetching ad insight rows")

	return rows, nil
}
