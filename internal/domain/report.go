package domain

import "time"

// ContentType classifies an ad creative's media
type ContentType string

const (
	ContentTypeVideo   ContentType = "video"
	ContentTypePhoto   ContentType = "photo"
	ContentTypeUnknown ContentType = "unknown"
	// ContentTypeError marks a creative whose classification task failed
	ContentTypeError ContentType = "error"
)

// CreativeDetails describes how an ad renders and where it links to.
// It is derived per report and never stored.
type CreativeDetails struct {
	ContentType ContentType `json:"content_type"`
	DisplayURL  string      `json:"display_url"`
	TargetURL   string      `json:"target_url"`
}

// UnknownCreative is the default classification when no signal matched or a
// lookup failed.
func UnknownCreative() *CreativeDetails {
	return &CreativeDetails{ContentType: ContentTypeUnknown}
}

// AdRecord is one ad's aggregated metrics for the report period, keyed
// uniquely by AdID within a report.
type AdRecord struct {
	AdID            string           `json:"ad_id"`
	CampaignName    string           `json:"campaign_name"`
	AdsetName       string           `json:"adset_name"`
	AdName          string           `json:"ad_name"`
	Spend           float64          `json:"spend"`
	Impressions     int              `json:"impressions"`
	Clicks          int              `json:"clicks"`
	CTR             float64          `json:"ctr"`
	CPC             float64          `json:"cpc"`
	PurchaseCount   int              `json:"purchase_count"`
	CreativeDetails *CreativeDetails `json:"creative_details"`
}

// ReportFilters carries the inclusive date range of a report request
type ReportFilters struct {
	StartDate *time.Time
	EndDate   *time.Time
}

// DailySeries maps YYYY-MM-DD dates to a numeric value. A series built for a
// range covers every date in it exactly once, missing dates filled with zero.
type DailySeries map[string]int

// DailyStats bundles the two storefront series for one date range
type DailyStats struct {
	Visitors DailySeries `json:"visitors"`
	Sales    DailySeries `json:"sales"`
}
