package cafe24client

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	cafe24domain "github.com/adstudio/ads-report-api/infrastructure/integrator/cafe24/domain"
	"github.com/adstudio/ads-report-api/internal/config"
	"github.com/adstudio/ads-report-api/internal/domain"
	"github.com/sirupsen/logrus"
)

type Client interface {
	GetDailyActiveVisitors(filters *domain.ReportFilters) (*cafe24domain.VisitorsResponse, error)
	GetOrderDetails(filters *domain.ReportFilters) (*cafe24domain.OrdersResponse, error)
}

type Cafe24Client struct {
	cfg          *config.Config
	httpClient   *http.Client
	tokenManager *TokenManager

	// BaseURL is the analytics API host; overridable in tests
	BaseURL string
}

func NewClient(cfg *config.Config, tokenManager *TokenManager) Client {
	return &Cafe24Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: 25 * time.Second,
		},
		tokenManager: tokenManager,
		BaseURL:      cfg.Cafe24.AnalyticsURL,
	}
}

// analyticsHeaders builds the headers for a data API call, refreshing the
// access token through the cache when needed.
func (c *Cafe24Client) analyticsHeaders() (http.Header, error) {
	accessToken, err := c.tokenManager.AccessToken()
	if err != nil {
		return nil, fmt.Errorf("cafe24 access token unavailable: %w", err)
	}

	headers := http.Header{}
	headers.Set("Authorization", "Bearer "+accessToken)
	headers.Set("Content-Type", "application/json")
	headers.Set("X-Cafe24-Api-Version", c.cfg.Cafe24.APIVersion)
	headers.Set("X-Cafe24-Client-Id", c.cfg.Cafe24.ClientID)

	return headers, nil
}

// callAPI performs one analytics GET. A 401 clears the token cache and the
// call retries once with a fresh token; every other failure surfaces as an
// error for the caller to degrade on.
func (c *Cafe24Client) callAPI(path string, filters *domain.ReportFilters) ([]byte, error) {
	params := url.Values{}
	params.Add("mall_id", c.cfg.Cafe24.MallID)
	params.Add("start_date", filters.StartDate.Format(time.DateOnly))
	params.Add("end_date", filters.EndDate.Format(time.DateOnly))

	requestURL := fmt.Sprintf("%s%s?%s", c.BaseURL, path, params.Encode())

	body, status, err := c.doGet(requestURL)
	if err != nil {
		return nil, err
	}

	if status == http.StatusUnauthorized {
		logrus.Warn("cafe24: 401 from analytics API, refreshing token and retrying once")
		c.tokenManager.Invalidate()

		body, status, err = c.doGet(requestURL)
		if err != nil {
			return nil, err
		}
	}

	if status == http.StatusForbidden {
		logrus.WithField("path", path).Warn("cafe24: 403 Forbidden, check the app's API scopes")
	}

	if status >= http.StatusBadRequest {
		return nil, fmt.Errorf("cafe24 API error on %s. Status: %d, Body: %s", path, status, truncate(body, 500))
	}

	return body, nil
}

func (c *Cafe24Client) doGet(requestURL string) ([]byte, int, error) {
	headers, err := c.analyticsHeaders()
	if err != nil {
		return nil, 0, err
	}

	req, err := http.NewRequest(http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("error building cafe24 request: %w", err)
	}
	req.Header = headers

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("cafe24 request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("error reading cafe24 response: %w", err)
	}

	return body, resp.StatusCode, nil
}

// GetDailyActiveVisitors fetches the daily active visitor counts for the
// period.
func (c *Cafe24Client) GetDailyActiveVisitors(filters *domain.ReportFilters) (*cafe24domain.VisitorsResponse, error) {
	body, err := c.callAPI("/visitors/dailyactive", filters)
	if err != nil {
		return nil, err
	}

	var response cafe24domain.VisitorsResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("error decoding visitors response: %w", err)
	}

	return &response, nil
}

// GetOrderDetails fetches the order rows for the period
func (c *Cafe24Client) GetOrderDetails(filters *domain.ReportFilters) (*cafe24domain.OrdersResponse, error) {
	body, err := c.callAPI("/sales/orderdetails", filters)
	if err != nil {
		return nil, err
	}

	var response cafe24domain.OrdersResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("error decoding order details response: %w", err)
	}

	return &response, nil
}

func truncate(body []byte, max int) string {
	if len(body) <= max {
		return string(body)
	}
	return string(body[:max]) + "..."
}
