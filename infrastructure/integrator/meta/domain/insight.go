package metadomain

// InsightRow is one ad-level row from the insights endpoint. The Graph API
// serializes every metric as a string.
type InsightRow struct {
	AdID         string   `json:"ad_id"`
	AdName       string   `json:"ad_name"`
	CampaignName string   `json:"campaign_name"`
	AdsetName    string   `json:"adset_name"`
	Spend        string   `json:"spend"`
	Impressions  string   `json:"impressions"`
	Clicks       string   `json:"clicks"`
	CTR          string   `json:"ctr"`
	CPC          string   `json:"cpc"`
	Actions      []Action `json:"actions"`
}

// Action is one conversion bucket attached to an insight row
type Action struct {
	ActionType string `json:"action_type"`
	Value      string `json:"value"`
}

// InsightsResponse is one page of the insights endpoint
type InsightsResponse struct {
	Data   []InsightRow `json:"data"`
	Paging Paging       `json:"paging"`
}

// Paging carries the cursor links of a paginated response. Next is a full
// URL, access token included.
type Paging struct {
	Next string `json:"next"`
}
