package cafe24

import (
	"testing"
	"time"

	cafe24domain "github.com/adstudio/ads-report-api/infrastructure/integrator/cafe24/domain"
	"github.com/adstudio/ads-report-api/infrastructure/integrator/cafe24/mocks"
	"github.com/adstudio/ads-report-api/internal/config"
	"github.com/adstudio/ads-report-api/internal/domain"
	"github.com/adstudio/ads-report-api/pkg/log"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newService(t *testing.T) (*Cafe24Service, *mocks.MockClient) {
	t.Helper()
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)

	return New(&config.Config{}, client), client
}

func rangeFilters(start, end string) *domain.ReportFilters {
	startDate, _ := time.Parse(time.DateOnly, start)
	endDate, _ := time.Parse(time.DateOnly, end)
	return &domain.ReportFilters{StartDate: &startDate, EndDate: &endDate}
}

func TestDailyStats(t *testing.T) {
	filters := rangeFilters("2024-03-01", "2024-03-03")

	t.Run("series covers every requested date with zero fill", func(t *testing.T) {
		service, client := newService(t)

		client.EXPECT().GetDailyActiveVisitors(filters).Return(&cafe24domain.VisitorsResponse{
			DailyActive: []cafe24domain.VisitorActivity{
				{Date: "2024-03-01T00:00:00+09:00", UserCount: float64(12)},
				{Date: "2024-03-03", UserCount: "7"},
			},
		}, nil)
		client.EXPECT().GetOrderDetails(filters).Return(&cafe24domain.OrdersResponse{
			OrderDetails: []cafe24domain.OrderDetail{
				{OrderID: "o1", OrderDate: "2024-03-01", OrderAmount: float64(10000)},
				{OrderID: "o2", OrderDate: "2024-03-01", OrderAmount: "2500.75"},
			},
		}, nil)

		stats, err := service.DailyStats(filters)

		assert.NoError(t, err)
		assert.Equal(t, domain.DailySeries{
			"2024-03-01": 12,
			"2024-03-02": 0,
			"2024-03-03": 7,
		}, stats.Visitors)
		assert.Equal(t, domain.DailySeries{
			"2024-03-01": 12500,
			"2024-03-02": 0,
			"2024-03-03": 0,
		}, stats.Sales)
	})

	t.Run("entries outside the requested range are excluded", func(t *testing.T) {
		service, client := newService(t)

		client.EXPECT().GetDailyActiveVisitors(filters).Return(&cafe24domain.VisitorsResponse{
			DailyActive: []cafe24domain.VisitorActivity{
				{Date: "2024-02-28", UserCount: float64(99)},
				{Date: "2024-03-02", UserCount: float64(4)},
			},
		}, nil)
		client.EXPECT().GetOrderDetails(filters).Return(&cafe24domain.OrdersResponse{}, nil)

		stats, err := service.DailyStats(filters)

		assert.NoError(t, err)
		assert.Equal(t, domain.DailySeries{
			"2024-03-01": 0,
			"2024-03-02": 4,
			"2024-03-03": 0,
		}, stats.Visitors)
		assert.NotContains(t, stats.Visitors, "2024-02-28")
	})

	t.Run("malformed rows are skipped without failing the batch", func(t *testing.T) {
		service, client := newService(t)

		client.EXPECT().GetDailyActiveVisitors(filters).Return(&cafe24domain.VisitorsResponse{
			DailyActive: []cafe24domain.VisitorActivity{
				{Date: "not-a-date", UserCount: float64(5)},
				{Date: "2024-03-02", UserCount: float64(3)},
			},
		}, nil)
		client.EXPECT().GetOrderDetails(filters).Return(&cafe24domain.OrdersResponse{
			OrderDetails: []cafe24domain.OrderDetail{
				{OrderID: "o1", OrderDate: "2024-03-02", OrderAmount: "not-a-number"},
				{OrderID: "o2", OrderDate: "2024-03-02", OrderAmount: float64(800)},
			},
		}, nil)

		stats, err := service.DailyStats(filters)

		assert.NoError(t, err)
		assert.Equal(t, 3, stats.Visitors["2024-03-02"])
		assert.Equal(t, 800, stats.Sales["2024-03-02"])
	})

	t.Run("upstream failures degrade to zero-filled series", func(t *testing.T) {
		service, client := newService(t)

		client.EXPECT().GetDailyActiveVisitors(filters).Return(nil, assert.AnError)
		client.EXPECT().GetOrderDetails(filters).Return(nil, assert.AnError)

		stats, err := service.DailyStats(filters)

		assert.NoError(t, err)
		assert.Len(t, stats.Visitors, 3)
		assert.Len(t, stats.Sales, 3)
		for _, count := range stats.Visitors {
			assert.Zero(t, count)
		}
	})

	t.Run("inverted range yields empty series", func(t *testing.T) {
		service, _ := newService(t)

		stats, err := service.DailyStats(rangeFilters("2024-03-05", "2024-03-01"))

		assert.NoError(t, err)
		assert.Empty(t, stats.Visitors)
		assert.Empty(t, stats.Sales)
	})
}

func TestCoerceInt(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		expected int
		ok       bool
	}{
		{name: "float", value: float64(42.9), expected: 42, ok: true},
		{name: "int", value: 7, expected: 7, ok: true},
		{name: "numeric string", value: "1250.5", expected: 1250, ok: true},
		{name: "non-numeric string", value: "abc", expected: 0, ok: false},
		{name: "nil", value: nil, expected: 0, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, ok := coerceInt(tt.value)
			assert.Equal(t, tt.expected, result)
			assert.Equal(t, tt.ok, ok)
		})
	}
}
