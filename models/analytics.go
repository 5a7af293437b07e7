package models

import "time"

// PageView is one logged visit to a page on the student site.
type PageView struct {
	ID        string    `bson:"id" json:"id"`
	Path      string    `bson:"path" json:"path"`
	Duration  float64   `bson:"duration" json:"duration"` // seconds
	SessionID string    `bson:"sessionId" json:"sessionId"`
	VisitorID string    `bson:"visitorId" json:"visitorId"`
	Date      string    `bson:"date" json:"date"` // YYYY-MM-DD, for grouping
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
}

// DailyViews is the per-day rollup used by the analytics chart.
type DailyViews struct {
	Date  string `bson:"_id" json:"date"`
	Views int64  `bson:"views" json:"views"`
}

// PageCount is the per-path rollup used by the top-pages table.
type PageCount struct {
	Path  string `bson:"_id" json:"path"`
	Views int64  `bson:"views" json:"views"`
}

// AnalyticsStats is the assembled analytics payload for the admin page.
type AnalyticsStats struct {
	TotalViews      int64        `json:"totalViews"`
	UniqueVisitors  int64        `json:"uniqueVisitors"`
	AverageDuration float64      `json:"averageDurationSeconds"`
	ViewsPerDay     []DailyViews `json:"viewsPerDay"`
	TopPages        []PageCount  `json:"topPages"`
}
