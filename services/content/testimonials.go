package content

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"koon/models"
)

var avatarColors = []string{"#e91e63", "#9c27b0", "#2196f3", "#ff9800", "#4caf50", "#009688", "#3f51b5"}

// SubmitTestimonial records a visitor testimonial as pending review.
func (s *DefaultContentService) SubmitTestimonial(ctx context.Context, t models.Testimonial) (string, error) {
	if strings.TrimSpace(t.Author) == "" || strings.TrimSpace(t.Quote) == "" {
		return "", fmt.Errorf("author and quote are required")
	}
	t.Status = models.TestimonialPending
	if t.AvatarColor == "" {
		t.AvatarColor = avatarColors[rand.Intn(len(avatarColors))]
	}
	id, err := s.Repo.CreateTestimonial(ctx, t)
	if err != nil {
		return "", fmt.Errorf("failed to save testimonial: %w", err)
	}
	return id, nil
}

func (s *DefaultContentService) GetAllTestimonials(ctx context.Context) ([]models.Testimonial, error) {
	return s.Repo.GetAllTestimonials(ctx)
}

// GetApprovedTestimonials returns only approved entries, for the public site.
func (s *DefaultContentService) GetApprovedTestimonials(ctx context.Context) ([]models.Testimonial, error) {
	return s.Repo.GetTestimonialsByStatus(ctx, models.TestimonialApproved)
}

// SetTestimonialStatus moves a testimonial between pending, approved and rejected.
func (s *DefaultContentService) SetTestimonialStatus(ctx context.Context, id, status string) error {
	switch status {
	case models.TestimonialPending, models.TestimonialApproved, models.TestimonialRejected:
	default:
		return fmt.Errorf("invalid testimonial status %q", status)
	}
	return s.Repo.UpdateTestimonialStatus(ctx, id, status)
}

func (s *DefaultContentService) DeleteTestimonial(ctx context.Context, id string) error {
	return s.Repo.DeleteTestimonial(ctx, id)
}
