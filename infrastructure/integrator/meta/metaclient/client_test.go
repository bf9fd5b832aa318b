package metaclient

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/adstudio/ads-report-api/internal/config"
	"github.com/adstudio/ads-report-api/internal/domain"
	"github.com/adstudio/ads-report-api/pkg/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(serverURL string) *MetaClient {
	log.SetupTestLogger()

	cfg := &config.Config{}
	cfg.Meta.URL = serverURL

	return NewClient(cfg).(*MetaClient)
}

func insightFilters() *domain.ReportFilters {
	start, _ := time.Parse(time.DateOnly, "2024-03-01")
	end, _ := time.Parse(time.DateOnly, "2024-03-07")
	return &domain.ReportFilters{StartDate: &start, EndDate: &end}
}

func TestGetAdInsights(t *testing.T) {
	t.Run("follows pagination cursors", func(t *testing.T) {
		var server *httptest.Server
		server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			query := r.URL.Query()

			if query.Get("page") == "2" {
				fmt.Fprint(w, `{"data": [{"ad_id": "ad-3", "spend": "3"}], "paging": {}}`)
				return
			}

			assert.Equal(t, "ad", query.Get("level"))
			assert.Equal(t, "2024-03-01", query.Get("time_range[since]"))
			assert.Equal(t, "2024-03-07", query.Get("time_range[until]"))
			assert.Equal(t, "true", query.Get("use_unified_attribution_setting"))
			assert.Equal(t, "100", query.Get("limit"))
			assert.Equal(t, "token-1", query.Get("access_token"))

			fmt.Fprintf(w, `{
				"data": [{"ad_id": "ad-1", "spend": "1"}, {"ad_id": "ad-2", "spend": "2"}],
				"paging": {"next": "%s/act_1/insights?page=2"}
			}`, server.URL)
		}))
		defer server.Close()

		client := newTestClient(server.URL)

		rows, err := client.GetAdInsights("act_1", "token-1", insightFilters())

		require.NoError(t, err)
		require.Len(t, rows, 3)
		assert.Equal(t, "ad-1", rows[0].AdID)
		assert.Equal(t, "ad-3", rows[2].AdID)
	})

	t.Run("a failed page fails the whole fetch", func(t *testing.T) {
		var server *httptest.Server
		server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Query().Get("page") == "2" {
				w.WriteHeader(http.StatusInternalServerError)
				fmt.Fprint(w, `{"error": {"message": "something broke", "code": 1}}`)
				return
			}

			fmt.Fprintf(w, `{
				"data": [{"ad_id": "ad-1", "spend": "1"}],
				"paging": {"next": "%s/act_1/insights?page=2"}
			}`, server.URL)
		}))
		defer server.Close()

		client := newTestClient(server.URL)

		rows, err := client.GetAdInsights("act_1", "token-1", insightFilters())

		assert.Error(t, err)
		assert.Nil(t, rows)
		assert.Contains(t, err.Error(), "something broke")
	})

	t.Run("an empty account yields no rows", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"data": [], "paging": {}}`)
		}))
		defer server.Close()

		client := newTestClient(server.URL)

		rows, err := client.GetAdInsights("act_1", "token-1", insightFilters())

		require.NoError(t, err)
		assert.Empty(t, rows)
	})
}

func TestGetAdCreativeID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ad-1", r.URL.Path)
		assert.Equal(t, "creative", r.URL.Query().Get("fields"))

		fmt.Fprint(w, `{"creative": {"id": "cr-9"}, "id": "ad-1"}`)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	creativeID, err := client.GetAdCreativeID("ad-1", "token-1")

	require.NoError(t, err)
	assert.Equal(t, "cr-9", creativeID)
}

func TestGetVideoSource(t *testing.T) {
	t.Run("returns the source url", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"source": "https://video/source.mp4"}`)
		}))
		defer server.Close()

		client := newTestClient(server.URL)

		source, err := client.GetVideoSource("v1", "token-1")

		require.NoError(t, err)
		assert.Equal(t, "https://video/source.mp4", source)
	})

	t.Run("permission errors surface with the API message", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			fmt.Fprint(w, `{"error": {"message": "(#10) permission denied", "code": 10}}`)
		}))
		defer server.Close()

		client := newTestClient(server.URL)

		_, err := client.GetVideoSource("v1", "token-1")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "permission denied")
	})
}
