package content

import (
	"context"
	"fmt"
	"strings"

	"koon/models"
)

// SubmitDonation records a material donation offer.
func (s *DefaultContentService) SubmitDonation(ctx context.Context, d models.MaterialDonation) (string, error) {
	if strings.TrimSpace(d.Donor) == "" || strings.TrimSpace(d.Material) == "" {
		return "", fmt.Errorf("donor and material are required")
	}
	id, err := s.Repo.CreateDonation(ctx, d)
	if err != nil {
		return "", fmt.Errorf("failed to save donation: %w", err)
	}
	return id, nil
}

func (s *DefaultContentService) GetAllDonations(ctx context.Context) ([]models.MaterialDonation, error) {
	return s.Repo.GetAllDonations(ctx)
}

// SetDonationStatus moves a donation between new, collected and declined.
func (s *DefaultContentService) SetDonationStatus(ctx context.Context, id, status string) error {
	switch status {
	case "new", "collected", "declined":
	default:
		return fmt.Errorf("invalid donation status %q", status)
	}
	return s.Repo.UpdateDonation(ctx, id, map[string]interface{}{"status": status})
}

// AttachDonationPhoto links an uploaded photo to a donation record.
func (s *DefaultContentService) AttachDonationPhoto(ctx context.Context, id, photoID string) error {
	if photoID == "" {
		return fmt.Errorf("photoId is required")
	}
	return s.Repo.UpdateDonation(ctx, id, map[string]interface{}{"photoId": photoID})
}

func (s *DefaultContentService) DeleteDonation(ctx context.Context, id string) error {
	return s.Repo.DeleteDonation(ctx, id)
}
