package analytics

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"koon/models"
	"koon/utils"

	"go.uber.org/zap"
)

const (
	statsCacheKey    = utils.StatsCachePrefix + "overview"
	viewsPerDayLimit = 30
	topPagesLimit    = 10
)

// LogPageView records one visit. Missing identifiers are tolerated; the
// record is still useful for totals.
func (s *DefaultAnalyticsService) LogPageView(ctx context.Context, view models.PageView) error {
	if strings.TrimSpace(view.Path) == "" {
		return fmt.Errorf("path is required")
	}
	if err := s.Repo.LogView(ctx, view); err != nil {
		return fmt.Errorf("failed to log page view: %w", err)
	}
	return nil
}

// GetStats assembles the analytics overview, serving from cache when fresh.
func (s *DefaultAnalyticsService) GetStats(ctx context.Context) (*models.AnalyticsStats, error) {
	logger := utils.GetLogger()

	if s.Cache != nil {
		if data, err := s.Cache.Get(ctx, statsCacheKey).Result(); err == nil {
			var cached models.AnalyticsStats
			if err := json.Unmarshal([]byte(data), &cached); err == nil {
				return &cached, nil
			}
		}
	}

	stats := &models.AnalyticsStats{}
	var err error

	if stats.TotalViews, err = s.Repo.TotalViews(ctx); err != nil {
		return nil, fmt.Errorf("failed to count views: %w", err)
	}
	if stats.UniqueVisitors, err = s.Repo.UniqueVisitors(ctx); err != nil {
		return nil, fmt.Errorf("failed to count visitors: %w", err)
	}
	if stats.AverageDuration, err = s.Repo.AverageDuration(ctx); err != nil {
		return nil, fmt.Errorf("failed to average durations: %w", err)
	}
	if stats.ViewsPerDay, err = s.Repo.ViewsPerDay(ctx, viewsPerDayLimit); err != nil {
		return nil, fmt.Errorf("failed to group views by day: %w", err)
	}
	if stats.TopPages, err = s.Repo.TopPages(ctx, topPagesLimit); err != nil {
		return nil, fmt.Errorf("failed to rank pages: %w", err)
	}

	if s.Cache != nil {
		if data, err := json.Marshal(stats); err == nil {
			if err := s.Cache.Set(ctx, statsCacheKey, data, utils.StatsCacheTTL).Err(); err != nil {
				logger.Warn("GetStats: failed to cache stats", zap.Error(err))
			}
		}
	}
	return stats, nil
}
