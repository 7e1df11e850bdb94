package scheduler

import (
	"context"
	"time"

	"school-cms/pkg/logger"
)

const (
	PurgePageViewsJobID = "purge_page_views"

	purgeTimeout = 5 * time.Minute
)

// PageViewPurger deletes page-view log rows older than days
type PageViewPurger interface {
	PurgeOldViews(ctx context.Context, days int) (int64, error)
}

// RegisterPageViewPurge schedules the retention job. days <= 0 keeps the
// log forever and registers nothing.
func RegisterPageViewPurge(s JobScheduler, purger PageViewPurger, cronExpr string, days int) error {
	if days <= 0 {
		logger.Scheduler("purge_disabled", "Page view retention disabled", nil)
		return nil
	}
	if err := ValidateCronExpression(cronExpr); err != nil {
		return err
	}

	return s.AddJob(PurgePageViewsJobID, cronExpr, func() {
		RunPageViewPurge(context.Background(), purger, days)
	})
}

// RunPageViewPurge performs one purge and logs the outcome
func RunPageViewPurge(ctx context.Context, purger PageViewPurger, days int) {
	ctx, cancel := context.WithTimeout(ctx, purgeTimeout)
	defer cancel()

	deleted, err := purger.PurgeOldViews(ctx, days)
	if err != nil {
		logger.SchedulerError("purge_page_views", "Failed to purge page views", err, map[string]interface{}{"days": days})
		return
	}

	logger.Scheduler("purge_page_views", "Purged old page views", map[string]interface{}{
		"days":    days,
		"deleted": deleted,
	})
}
