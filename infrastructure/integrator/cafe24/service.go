package cafe24

import (
	"strconv"
	"strings"
	"time"

	"github.com/adstudio/ads-report-api/infrastructure/integrator/cafe24/cafe24client"
	"github.com/adstudio/ads-report-api/internal/config"
	"github.com/adstudio/ads-report-api/internal/domain"
	"github.com/adstudio/ads-report-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

// Cafe24Integrator normalizes the storefront analytics payloads into
// zero-filled daily series.
type Cafe24Integrator interface {
	DailyStats(filters *domain.ReportFilters) (*domain.DailyStats, error)
}

type Cafe24Service struct {
	cfg    *config.Config
	Client cafe24client.Client
}

func New(cfg *config.Config, client cafe24client.Client) *Cafe24Service {
	return &Cafe24Service{
		cfg:    cfg,
		Client: client,
	}
}

// DailyStats builds the visitor and sales series over the inclusive date
// range. Upstream failures degrade to zero-filled series; both outputs
// always cover every requested date exactly once. An inverted range yields
// empty series.
func (s *Cafe24Service) DailyStats(filters *domain.ReportFilters) (*domain.DailyStats, error) {
	stats := &domain.DailyStats{
		Visitors: domain.DailySeries{},
		Sales:    domain.DailySeries{},
	}

	startDate := *filters.StartDate
	endDate := *filters.EndDate

	if startDate.After(endDate) {
		logrus.WithFields(logrus.Fields{
			"start_date": startDate.Format(time.DateOnly),
			"end_date":   endDate.Format(time.DateOnly),
		}).Warn("cafe24: start date is after end date")
		return stats, nil
	}

	dailyVisitors := s.fetchVisitors(filters)
	dailySales := s.fetchSales(filters)

	for _, date := range utils.EnumerateDates(startDate, endDate) {
		stats.Visitors[date] = dailyVisitors[date]
		stats.Sales[date] = dailySales[date]
	}

	return stats, nil
}

// fetchVisitors accumulates visitor counts per normalized date. Entries with
// an unparsable date are skipped with a diagnostic, never aborting the batch.
func (s *Cafe24Service) fetchVisitors(filters *domain.ReportFilters) map[string]int {
	visitors := map[string]int{}

	response, err := s.Client.GetDailyActiveVisitors(filters)
	if err != nil {
		logrus.WithError(err).Warn("cafe24: could not retrieve visitor data")
		return visitors
	}

	processed := 0
	for _, item := range response.DailyActive {
		// dates arrive as full ISO timestamps; only the date part matters
		dateStr, _, _ := strings.Cut(item.Date, "T")
		if _, err := time.Parse(time.DateOnly, dateStr); err != nil {
			logrus.WithFields(logrus.Fields{
				"date": item.Date,
			}).Warn("cafe24: skipping visitor entry with invalid date")
			continue
		}

		count, _ := coerceInt(item.UserCount)
		visitors[dateStr] = count
		processed++
	}

	logrus.WithFields(logrus.Fields{
		"processed": processed,
		"days":      len(visitors),
	}).Debug("cafe24: processed visitor entries")

	return visitors
}

// fetchSales sums order amounts per date. Rows with an invalid date or a
// non-numeric amount are skipped, never failing the batch.
func (s *Cafe24Service) fetchSales(filters *domain.ReportFilters) map[string]int {
	sales := map[string]int{}

	response, err := s.Client.GetOrderDetails(filters)
	if err != nil {
		logrus.WithError(err).Warn("cafe24: could not retrieve order details")
		return sales
	}

	processed := 0
	for _, order := range response.OrderDetails {
		if _, err := time.Parse(time.DateOnly, order.OrderDate); err != nil {
			logrus.WithFields(logrus.Fields{
				"order_id":   order.OrderID,
				"order_date": order.OrderDate,
			}).Warn("cafe24: skipping order with invalid date")
			continue
		}

		amount, ok := coerceInt(order.OrderAmount)
		if !ok {
			logrus.WithFields(logrus.Fields{
				"order_id": order.OrderID,
			}).Warn("cafe24: skipping order with non-numeric amount")
			continue
		}

		sales[order.OrderDate] += amount
		processed++
	}

	logrus.WithFields(logrus.Fields{
		"processed": processed,
		"days":      len(sales),
	}).Debug("cafe24: processed order entries")

	return sales
}

// coerceInt converts the loosely-typed numeric values the analytics API
// returns (number, numeric string) to an int, truncating decimals.
func coerceInt(value any) (int, bool) {
	switch v := value.(type) {
	case float64:
		return int(v), true
	case int:
		return v, true
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, false
		}
		return int(f), true
	default:
		return 0, false
	}
}
