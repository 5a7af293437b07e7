package analytics

import (
	"context"

	analyticsRepo "koon/database/repository/analytics"
	"koon/models"

	"github.com/go-redis/redis/v8"
)

// AnalyticsService logs page views and assembles the admin stats page.
type AnalyticsService interface {
	LogPageView(ctx context.Context, view models.PageView) error
	GetStats(ctx context.Context) (*models.AnalyticsStats, error)
}

// DefaultAnalyticsService is the production implementation. Stats are
// cached briefly in Redis since the admin page polls them.
type DefaultAnalyticsService struct {
	Repo  analyticsRepo.AnalyticsRepository
	Cache *redis.Client
}
