package content

import (
	"context"
	"fmt"

	"koon/models"
)

// GetDashboardSummary assembles the per-collection counts behind the
// dashboard stat cards.
func (s *DefaultContentService) GetDashboardSummary(ctx context.Context) (*models.DashboardSummary, error) {
	summary := &models.DashboardSummary{}

	counts := []struct {
		dest       *int64
		collection string
		filter     map[string]interface{}
	}{
		{&summary.NewSuggestions, "qna", map[string]interface{}{"status": "new"}},
		{&summary.OpenReports, "question_reports", map[string]interface{}{"resolved": false}},
		{&summary.PendingTestimonials, "testimonials", map[string]interface{}{"status": models.TestimonialPending}},
		{&summary.Subscribers, "subscribers", map[string]interface{}{}},
		{&summary.Donations, "materialDonations", map[string]interface{}{}},
		{&summary.OpenRequests, "service_requests", map[string]interface{}{"status": "open"}},
		{&summary.Updates, "updates", map[string]interface{}{}},
	}

	for _, c := range counts {
		n, err := s.Repo.CountByFilter(ctx, c.collection, c.filter)
		if err != nil {
			return nil, fmt.Errorf("failed to count %s: %w", c.collection, err)
		}
		*c.dest = n
	}
	return summary, nil
}
