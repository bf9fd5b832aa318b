package cafe24client

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/adstudio/ads-report-api/internal/config"
	"github.com/adstudio/ads-report-api/pkg/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Cafe24.MallID = "testmall"
	cfg.Cafe24.ClientID = "client-id"
	cfg.Cafe24.ClientSecret = "client-secret"
	cfg.Cafe24.RefreshToken = "refresh-1"
	return cfg
}

func TestAccessToken(t *testing.T) {
	log.SetupTestLogger()

	t.Run("token is cached across calls", func(t *testing.T) {
		calls := 0
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++

			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))

			expectedAuth := "Basic " + base64.StdEncoding.EncodeToString([]byte("client-id:client-secret"))
			assert.Equal(t, expectedAuth, r.Header.Get("Authorization"))

			require.NoError(t, r.ParseForm())
			assert.Equal(t, "refresh_token", r.PostForm.Get("grant_type"))
			assert.Equal(t, "refresh-1", r.PostForm.Get("refresh_token"))

			w.Header().Set("Content-Type", "application/json")
			fmt.Fprint(w, `{"access_token": "access-1", "expires_in": 7200}`)
		}))
		defer server.Close()

		tm := NewTokenManager(testConfig())
		tm.TokenURL = server.URL

		token, err := tm.AccessToken()
		require.NoError(t, err)
		assert.Equal(t, "access-1", token)

		token, err = tm.AccessToken()
		require.NoError(t, err)
		assert.Equal(t, "access-1", token)

		assert.Equal(t, 1, calls)
	})

	t.Run("invalidate forces a refresh", func(t *testing.T) {
		calls := 0
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
			fmt.Fprintf(w, `{"access_token": "access-%d", "expires_in": 7200}`, calls)
		}))
		defer server.Close()

		tm := NewTokenManager(testConfig())
		tm.TokenURL = server.URL

		token, err := tm.AccessToken()
		require.NoError(t, err)
		assert.Equal(t, "access-1", token)

		tm.Invalidate()

		token, err = tm.AccessToken()
		require.NoError(t, err)
		assert.Equal(t, "access-2", token)
	})

	t.Run("refresh failure clears the cache", func(t *testing.T) {
		failing := true
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if failing {
				w.WriteHeader(http.StatusUnauthorized)
				fmt.Fprint(w, `{"error": "invalid_grant"}`)
				return
			}
			fmt.Fprint(w, `{"access_token": "access-after-recovery", "expires_in": 7200}`)
		}))
		defer server.Close()

		tm := NewTokenManager(testConfig())
		tm.TokenURL = server.URL

		_, err := tm.AccessToken()
		assert.Error(t, err)

		failing = false

		token, err := tm.AccessToken()
		require.NoError(t, err)
		assert.Equal(t, "access-after-recovery", token)
	})

	t.Run("rotated refresh token is adopted", func(t *testing.T) {
		calls := 0
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
			require.NoError(t, r.ParseForm())

			if calls == 1 {
				assert.Equal(t, "refresh-1", r.PostForm.Get("refresh_token"))
				fmt.Fprint(w, `{"access_token": "access-1", "refresh_token": "refresh-2", "expires_in": 7200}`)
				return
			}

			assert.Equal(t, "refresh-2", r.PostForm.Get("refresh_token"))
			fmt.Fprint(w, `{"access_token": "access-2", "expires_in": 7200}`)
		}))
		defer server.Close()

		tm := NewTokenManager(testConfig())
		tm.TokenURL = server.URL

		_, err := tm.AccessToken()
		require.NoError(t, err)

		tm.Invalidate()

		_, err = tm.AccessToken()
		require.NoError(t, err)
		assert.Equal(t, 2, calls)
	})

	t.Run("missing refresh token is an error", func(t *testing.T) {
		cfg := testConfig()
		cfg.Cafe24.RefreshToken = ""

		tm := NewTokenManager(cfg)

		_, err := tm.AccessToken()
		assert.Error(t, err)
	})
}
