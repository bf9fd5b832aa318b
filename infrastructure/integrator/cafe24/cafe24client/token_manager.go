package cafe24client

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/adstudio/ads-report-api/internal/config"
	"github.com/sirupsen/logrus"
)

// tokenSafetyMargin is how far from expiry a cached token is still trusted
const tokenSafetyMargin = time.Minute

// TokenManager caches the Cafe24 access token and exchanges the long-lived
// refresh token for a new one when the cache is empty or near expiry. The
// mutex guards only the cache fields; calls already holding a valid token
// never block on a refresh in flight.
type TokenManager struct {
	cfg        *config.Config
	httpClient *http.Client

	// TokenURL is derived from the mall id; overridable in tests
	TokenURL string

	mu           sync.Mutex
	accessToken  string
	expiresAt    time.Time
	refreshToken string
}

// NewTokenManager builds the token manager for the configured mall
func NewTokenManager(cfg *config.Config) *TokenManager {
	return &TokenManager{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		TokenURL:     fmt.Sprintf("https://%s.cafe24api.com/api/v2/oauth/token", cfg.Cafe24.MallID),
		refreshToken: cfg.Cafe24.RefreshToken,
	}
}

type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

// AccessToken returns the cached token while it is more than the safety
// margin away from expiry, otherwise refreshes it. A single attempt, no
// retry; on failure the cache is cleared and the caller must treat the
// feature as unavailable.
func (tm *TokenManager) AccessToken() (string, error) {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	if tm.accessToken != "" && time.Until(tm.expiresAt) > tokenSafetyMargin {
		return tm.accessToken, nil
	}

	return tm.refreshLocked()
}

// Invalidate drops the cached token, forcing the next call to refresh.
// Used after a 401 from the analytics API.
func (tm *TokenManager) Invalidate() {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	tm.accessToken = ""
	tm.expiresAt = time.Time{}
}

// refreshLocked exchanges the refresh token for a new access token. The
// caller must hold tm.mu.
func (tm *TokenManager) refreshLocked() (string, error) {
	if tm.refreshToken == "" {
		return "", fmt.Errorf("cafe24 refresh token is not configured")
	}

	logrus.Debug("cafe24: refreshing access token")

	form := url.Values{}
	form.Add("grant_type", "refresh_token")
	form.Add("refresh_token", tm.refreshToken)

	req, err := http.NewRequest(http.MethodPost, tm.TokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		tm.clearLocked()
		return "", fmt.Errorf("error building token request: %w", err)
	}

	credentials := fmt.Sprintf("%s:%s", tm.cfg.Cafe24.ClientID, tm.cfg.Cafe24.ClientSecret)
	req.Header.Set("Authorization", "Basic "+base64.StdEncoding.EncodeToString([]byte(credentials)))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := tm.httpClient.Do(req)
	if err != nil {
		tm.clearLocked()
		return "", fmt.Errorf("cafe24 token refresh request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		tm.clearLocked()
		return "", fmt.Errorf("error reading token response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		tm.clearLocked()
		return "", fmt.Errorf("cafe24 token refresh failed. Status: %d, Body: %s", resp.StatusCode, string(body))
	}

	var token tokenResponse
	if err := json.Unmarshal(body, &token); err != nil {
		tm.clearLocked()
		return "", fmt.Errorf("error decoding token response: %w", err)
	}

	if token.AccessToken == "" {
		tm.clearLocked()
		return "", fmt.Errorf("cafe24 token response has no access_token")
	}

	expiresIn := token.ExpiresIn
	if expiresIn <= 0 {
		expiresIn = 3600
	}

	tm.accessToken = token.AccessToken
	tm.expiresAt = time.Now().Add(time.Duration(expiresIn) * time.Second)

	// Cafe24 rotates the refresh token on some exchanges. We adopt it in
	// memory, but the environment still holds the old one.
	if token.RefreshToken != "" && token.RefreshToken != tm.refreshToken {
		tm.refreshToken = token.RefreshToken
		logrus.Warn("cafe24: received a new refresh token; update CAFE24_REFRESH_TOKEN in the environment")
	}

	logrus.Infof("cafe24: access token refreshed, expires at %s", tm.expiresAt.Format(time.RFC3339))

	return tm.accessToken, nil
}

// clearLocked drops the cache. The caller must hold tm.mu.
func (tm *TokenManager) clearLocked() {
	tm.accessToken = ""
	tm.expiresAt = time.Time{}
}
