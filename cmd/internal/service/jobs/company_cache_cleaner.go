package jobs

import (
	"context"
	"time"

	"metrocontratos/cmd/internal/utils"

	"github.com/labstack/gommon/log"
)

const (
	DefaultCacheTTL      = 10 * time.Hour
	DefaultCleanInterval = 1 * time.Hour
)

type CompanyRepository interface {
	DeleteExpired(ctx context.Context, before int64) (int64, error)
}

// CompanyCacheCleaner sweeps registry lookups older than TTL, found or not,
// so they are fetched fresh next time.
type CompanyCacheCleaner struct {
	companyRepo CompanyRepository
	ttl         time.Duration
	interval    time.Duration
}

func NewCompanyCacheCleaner(repo CompanyRepository, ttl, interval time.Duration) *CompanyCacheCleaner {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	if interval <= 0 {
		interval = DefaultCleanInterval
	}
	return &CompanyCacheCleaner{companyRepo: repo, ttl: ttl, interval: interval}
}

func (c *CompanyCacheCleaner) Start(ctx context.Context) {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	log.Info("Company cache cleaner cron started")

	for {
		select {
		case <-ctx.Done():
			log.Info("Stopping company cache cleaner...")
			return
		case <-ticker.C:
			c.Cleanup(ctx)
		}
	}
}

// Cleanup runs one sweep.
func (c *CompanyCacheCleaner) Cleanup(ctx context.Context) {
	cutoff := utils.NowUTC() - c.ttl.Milliseconds()

	n, err := c.companyRepo.DeleteExpired(ctx, cutoff)
	if err != nil {
		log.Errorf("Cleaner: failed to delete expired company cache: %v", err)
		return
	}

	log.Debugf("Cleaner: swept %d company caches older than %d", n, cutoff)
}
