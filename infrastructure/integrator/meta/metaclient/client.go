package metaclient

import (
	"fmt"
	"io"
	"net/http"
	"time"

	metadomain "github.com/adstudio/ads-report-api/infrastructure/integrator/meta/domain"
	"github.com/adstudio/ads-report-api/internal/config"
	"github.com/adstudio/ads-report-api/internal/domain"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Client interface {
	GetAdInsights(accountID, token string, filters *domain.ReportFilters) ([]metadomain.InsightRow, error)
	GetAdCreativeID(adID, token string) (string, error)
	GetCreativeDetail(creativeID, token string) (*metadomain.CreativeDetail, error)
	GetVideoSource(videoID, token string) (string, error)
	GetInstagramMedia(mediaID, token string) (*metadomain.InstagramMedia, error)
}

type MetaClient struct {
	Cfg        *config.Config
	httpClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	return &MetaClient{
		Cfg: cfg,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// get performs one Graph API call and returns the body of a 200 response.
// Non-2xx responses become errors carrying the API's own message when it can
// be parsed.
func (c *MetaClient) get(requestURL string) ([]byte, error) {
	resp, err := c.httpClient.Get(requestURL)
	if err != nil {
		return nil, fmt.Errorf("meta request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading meta response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		if errResp, parseErr := ParseErrorResponse(body); parseErr == nil && errResp.Error.Message != "" {
			if errResp.IsPermission() {
				logrus.WithFields(logrus.Fields{
					"code":    errResp.Error.Code,
					"subcode": errResp.Error.ErrorSubcode,
				}).Warn("meta: permission error, check the token's API scopes")
			}

			return nil, fmt.Errorf("meta API error (status %d, code %d): %s",
				resp.StatusCode, errResp.Error.Code, errResp.Error.Message)
		}

		return nil, fmt.Errorf("meta API error. Status: %d, Body: %s", resp.StatusCode, string(body))
	}

	return body, nil
}

// ParseErrorResponse decodes a Meta API error envelope
func ParseErrorResponse(body []byte) (*metadomain.ErrorResponse, error) {
	var errorResp metadomain.ErrorResponse
	if err := json.Unmarshal(body, &errorResp); err != nil {
		return nil, err
	}
	return &errorResp, nil
}
