package ipo

import (
	"errors"
	"time"

	"ipo-subscription-scraper/browser"
	"ipo-subscription-scraper/config"
	"ipo-subscription-scraper/extract"
	"ipo-subscription-scraper/models"
	"ipo-subscription-scraper/utils"
)

// PageReader is the acquisition surface the orchestrator drives. The live
// implementation is *browser.Session; tests substitute a fake.
type PageReader interface {
	Acquire(address string) (*models.PageSnapshot, error)
}

// Scraper walks the address list one page at a time and accumulates exactly
// one SubscriptionRecord per address, in input order.
type Scraper struct {
	cfg    *config.Config
	logger *utils.Logger
	reader PageReader
}

// New creates a ready-to-use Scraper.
func New(cfg *config.Config, logger *utils.Logger, reader PageReader) *Scraper {
	return &Scraper{cfg: cfg, logger: logger, reader: reader}
}

// Run processes every address sequentially. No failure on one address stops
// the rest: a page that cannot be acquired yields an all-sentinel record, and
// extraction gaps degrade per field. The returned set is one-to-one with the
// input, order preserved.
func (s *Scraper) Run(addresses []string) []*models.SubscriptionRecord {
	s.logger.Info("[ipo] Starting scrape — %d addresses", len(addresses))

	records := make([]*models.SubscriptionRecord, 0, len(addresses))

	for i, address := range addresses {
		s.logger.Info("[ipo] (%d/%d) Navigating to: %s", i+1, len(addresses), address)

		record := models.NewPendingRecord(address)
		snapshot, err := s.reader.Acquire(address)
		if err != nil {
			s.logFailure(address, err)
		} else {
			record.CompanyName = extract.CompanyName(snapshot.Title, address)
			metrics := extract.SubscriptionTable(snapshot.HTML)
			if metrics.AllSentinel() {
				s.logger.Warn("[ipo] Bidding table data not found for %s (%s)", record.CompanyName, address)
			}
			record.SetMetrics(metrics)
		}

		records = append(records, record)

		if i < len(addresses)-1 {
			// Politeness delay between page loads.
			time.Sleep(time.Duration(s.cfg.PolitenessMs) * time.Millisecond)
		}
	}

	s.logger.Info("[ipo] Scrape complete — %d records", len(records))
	return records
}

// logFailure reports a category-specific diagnostic so a slow page reads
// differently from a crashed browser in the run log.
func (s *Scraper) logFailure(address string, err error) {
	switch {
	case errors.Is(err, browser.ErrLoadTimeout):
		s.logger.Warn("[ipo] Timeout waiting for bidding table on %s — recording placeholders", address)
	case errors.Is(err, browser.ErrElementMissing):
		s.logger.Warn("[ipo] Expected element missing on %s — table structure may differ: %v", address, err)
	case errors.Is(err, browser.ErrLoadFailed):
		s.logger.Error("[ipo] Browser failure on %s: %v", address, err)
	default:
		s.logger.Error("[ipo] Unexpected failure on %s: %v", address, err)
	}
}
