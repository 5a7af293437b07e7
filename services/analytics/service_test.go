package analytics

import (
	"context"
	"sort"
	"sync"
	"testing"

	"koon/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAnalyticsRepo struct {
	mu    sync.Mutex
	views []models.PageView
}

func (r *fakeAnalyticsRepo) LogView(_ context.Context, view models.PageView) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.views = append(r.views, view)
	return nil
}

func (r *fakeAnalyticsRepo) TotalViews(context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.views)), nil
}

func (r *fakeAnalyticsRepo) UniqueVisitors(context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	seen := make(map[string]struct{})
	for _, v := range r.views {
		seen[v.VisitorID] = struct{}{}
	}
	return int64(len(seen)), nil
}

func (r *fakeAnalyticsRepo) AverageDuration(context.Context) (float64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.views) == 0 {
		return 0, nil
	}
	var sum float64
	for _, v := range r.views {
		sum += v.Duration
	}
	return sum / float64(len(r.views)), nil
}

func (r *fakeAnalyticsRepo) ViewsPerDay(_ context.Context, limit int) ([]models.DailyViews, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	byDay := make(map[string]int64)
	for _, v := range r.views {
		byDay[v.Date]++
	}
	out := make([]models.DailyViews, 0, len(byDay))
	for date, n := range byDay {
		out = append(out, models.DailyViews{Date: date, Views: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeAnalyticsRepo) TopPages(_ context.Context, limit int) ([]models.PageCount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	byPath := make(map[string]int64)
	for _, v := range r.views {
		byPath[v.Path]++
	}
	out := make([]models.PageCount, 0, len(byPath))
	for path, n := range byPath {
		out = append(out, models.PageCount{Path: path, Views: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Views > out[j].Views })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func TestLogPageView(t *testing.T) {
	ctx := context.Background()
	repo := &fakeAnalyticsRepo{}
	svc := &DefaultAnalyticsService{Repo: repo}

	require.NoError(t, svc.LogPageView(ctx, models.PageView{Path: "/materials", VisitorID: "v1", Duration: 30, Date: "2026-03-01"}))
	assert.Len(t, repo.views, 1)

	t.Run("missing path rejected", func(t *testing.T) {
		assert.Error(t, svc.LogPageView(ctx, models.PageView{Path: "  "}))
	})
}

func TestGetStats(t *testing.T) {
	ctx := context.Background()
	repo := &fakeAnalyticsRepo{}
	svc := &DefaultAnalyticsService{Repo: repo}

	seed := []models.PageView{
		{Path: "/", VisitorID: "v1", Duration: 10, Date: "2026-03-01"},
		{Path: "/", VisitorID: "v2", Duration: 20, Date: "2026-03-01"},
		{Path: "/materials", VisitorID: "v1", Duration: 60, Date: "2026-03-02"},
		{Path: "/qna", VisitorID: "v3", Duration: 30, Date: "2026-03-02"},
	}
	for _, v := range seed {
		require.NoError(t, svc.LogPageView(ctx, v))
	}

	stats, err := svc.GetStats(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(4), stats.TotalViews)
	assert.Equal(t, int64(3), stats.UniqueVisitors)
	assert.InDelta(t, 30.0, stats.AverageDuration, 0.001)

	require.Len(t, stats.ViewsPerDay, 2)
	assert.Equal(t, "2026-03-02", stats.ViewsPerDay[0].Date)
	assert.Equal(t, int64(2), stats.ViewsPerDay[0].Views)

	require.NotEmpty(t, stats.TopPages)
	assert.Equal(t, "/", stats.TopPages[0].Path)
	assert.Equal(t, int64(2), stats.TopPages[0].Views)
}

func TestGetStatsEmpty(t *testing.T) {
	svc := &DefaultAnalyticsService{Repo: &fakeAnalyticsRepo{}}

	stats, err := svc.GetStats(context.Background())
	require.NoError(t, err)
	assert.Zero(t, stats.TotalViews)
	assert.Zero(t, stats.UniqueVisitors)
	assert.Zero(t, stats.AverageDuration)
	assert.Empty(t, stats.ViewsPerDay)
	assert.Empty(t, stats.TopPages)
}
