package reporting

import (
	"sort"
	"sync"
	"time"

	metadomain "github.com/adstudio/ads-report-api/infrastructure/integrator/meta/domain"
	"github.com/adstudio/ads-report-api/internal/config"
	"github.com/adstudio/ads-report-api/internal/domain"
	"github.com/adstudio/ads-report-api/pkg/utils"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const defaultCreativeWorkers = 10

type Service struct {
	cfg         *config.Config
	metaService MetaInsighter
}

func NewService(cfg *config.Config, metaService MetaInsighter) ReportService {
	return &Service{
		cfg:         cfg,
		metaService: metaService,
	}
}

// AccountNames lists the configured account keys a client may select
func (s *Service) AccountNames() []string {
	names := make([]string, 0, len(s.cfg.Accounts))
	for name := range s.cfg.Accounts {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}

// Build fetches the insight rows for the period, aggregates them per ad and
// enriches every record with its creative classification. A failed insights
// fetch fails the whole report; creative failures degrade per ad.
func (s *Service) Build(accountKey string, filters *domain.ReportFilters) ([]*domain.AdRecord, error) {
	account, err := s.resolveAccount(accountKey)
	if err != nil {
		return nil, err
	}

	reportID, _ := utils.GenerateID()
	logger := logrus.WithFields(logrus.Fields{
		"report_id":  reportID,
		"account":    account.Name,
		"start_date": filters.StartDate.Format(time.DateOnly),
		"end_date":   filters.EndDate.Format(time.DateOnly),
	})

	rows, err := s.metaService.AdInsights(account, filters)
	if err != nil {
		return nil, errors.Wrap(err, "error fetching ad insights")
	}

	records, order := buildRecords(rows)
	logger.WithFields(logrus.Fields{
		"rows": len(rows),
		"ads":  len(records),
	}).Info("report: aggregated insight rows")

	s.enrichCreatives(records, account.Token)

	result := make([]*domain.AdRecord, 0, len(order))
	for _, adID := range order {
		result = append(result, records[adID])
	}

	logger.WithField("records", len(result)).Info("report: build finished")

	return result, nil
}

// resolveAccount picks the account for the request. A missing key is only
// acceptable when exactly one account is configured.
func (s *Service) resolveAccount(accountKey string) (config.AdAccount, error) {
	if len(s.cfg.Accounts) == 0 {
		return config.AdAccount{}, ErrNoAccounts
	}

	if accountKey == "" {
		if len(s.cfg.Accounts) != 1 {
			return config.AdAccount{}, ErrAccountKeyRequired
		}
		for _, account := range s.cfg.Accounts {
			return account, nil
		}
	}

	account, ok := s.cfg.Accounts[accountKey]
	if !ok {
		return config.AdAccount{}, ErrAccountNotFound
	}

	return account, nil
}

// buildRecords aggregates insight rows into one record per ad id, keeping
// the accumulation order. Rows without an ad id or without spend are
// skipped; numeric fields coerce safely to zero instead of failing a row.
func buildRecords(rows []metadomain.InsightRow) (map[string]*domain.AdRecord, []string) {
	records := make(map[string]*domain.AdRecord, len(rows))
	order := make([]string, 0, len(rows))

	for _, row := range rows {
		if row.AdID == "" {
			continue
		}

		spend := utils.FloatOrZero(row.Spend)
		if spend == 0 {
			// unspent ads carry no performance and skip the creative fan-out
			continue
		}

		record, ok := records[row.AdID]
		if !ok {
			record = &domain.AdRecord{
				AdID:         row.AdID,
				AdName:       row.AdName,
				CampaignName: row.CampaignName,
				AdsetName:    row.AdsetName,
			}
			records[row.AdID] = record
			order = append(order, row.AdID)
		}

		record.Spend += spend
		record.Impressions += utils.IntOrZero(row.Impressions)
		record.Clicks += utils.IntOrZero(row.Clicks)
		record.PurchaseCount += purchaseCount(row.Actions)

		if row.AdName != "" {
			record.AdName = row.AdName
		}
		if row.CampaignName != "" {
			record.CampaignName = row.CampaignName
		}
		if row.AdsetName != "" {
			record.AdsetName = row.AdsetName
		}
	}

	for _, record := range records {
		if record.Impressions > 0 {
			record.CTR = utils.RoundWithTwoDecimalPlace(float64(record.Clicks) / float64(record.Impressions) * 100)
		}
		if record.Clicks > 0 {
			record.CPC = utils.RoundWithTwoDecimalPlace(record.Spend / float64(record.Clicks))
		}
	}

	return records, order
}

func purchaseCount(actions []metadomain.Action) int {
	total := 0
	for _, action := range actions {
		if action.ActionType == "purchase" {
			total += utils.IntOrZero(action.Value)
		}
	}
	return total
}

// enrichCreatives classifies every ad's creative concurrently, bounded by
// the configured worker limit. Each goroutine writes only its own record's
// slot. A panicking task marks its own ad with the error sentinel and never
// affects the others; the call returns only after every task finished.
func (s *Service) enrichCreatives(records map[string]*domain.AdRecord, token string) {
	workers := s.cfg.Report.CreativeWorkers
	if workers <= 0 {
		workers = defaultCreativeWorkers
	}

	semaphore := make(chan struct{}, workers)
	var wg sync.WaitGroup

	for adID, record := range records {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(adID string, record *domain.AdRecord) {
			defer func() {
				if r := recover(); r != nil {
					logrus.WithFields(logrus.Fields{
						"ad_id": adID,
						"panic": r,
					}).Error("report: creative classification task failed")

					record.CreativeDetails = &domain.CreativeDetails{
						ContentType: domain.ContentTypeError,
					}
				}

				<-semaphore
				wg.Done()
			}()

			record.CreativeDetails = s.metaService.CreativeDetails(adID, token)
		}(adID, record)
	}

	wg.Wait()
}
