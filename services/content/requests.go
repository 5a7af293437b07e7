package content

import (
	"context"
	"fmt"
	"strings"

	"koon/models"
)

// SubmitRequest records a student service request.
func (s *DefaultContentService) SubmitRequest(ctx context.Context, r models.ServiceRequest) (string, error) {
	if strings.TrimSpace(r.Name) == "" || strings.TrimSpace(r.Service) == "" {
		return "", fmt.Errorf("name and service are required")
	}
	id, err := s.Repo.CreateRequest(ctx, r)
	if err != nil {
		return "", fmt.Errorf("failed to save request: %w", err)
	}
	return id, nil
}

func (s *DefaultContentService) GetAllRequests(ctx context.Context) ([]models.ServiceRequest, error) {
	return s.Repo.GetAllRequests(ctx)
}

func (s *DefaultContentService) SetRequestStatus(ctx context.Context, id, status string) error {
	switch status {
	case "open", "in_progress", "done":
	default:
		return fmt.Errorf("invalid request status %q", status)
	}
	return s.Repo.UpdateRequest(ctx, id, map[string]interface{}{"status": status})
}

func (s *DefaultContentService) DeleteRequest(ctx context.Context, id string) error {
	return s.Repo.DeleteRequest(ctx, id)
}
