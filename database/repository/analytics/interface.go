package analyticsRepo

import (
	"context"

	"koon/models"
)

// AnalyticsRepository owns the page_views collection.
type AnalyticsRepository interface {
	// LogView inserts one page view record.
	LogView(ctx context.Context, view models.PageView) error

	// TotalViews counts all recorded views.
	TotalViews(ctx context.Context) (int64, error)

	// UniqueVisitors counts distinct visitor IDs.
	UniqueVisitors(ctx context.Context) (int64, error)

	// AverageDuration returns the mean view duration in seconds.
	AverageDuration(ctx context.Context) (float64, error)

	// ViewsPerDay groups views by date, most recent days first, capped at limit.
	ViewsPerDay(ctx context.Context, limit int) ([]models.DailyViews, error)

	// TopPages groups views by path, most viewed first, capped at limit.
	TopPages(ctx context.Context, limit int) ([]models.PageCount, error)
}
