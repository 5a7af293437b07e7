package content

import (
	"context"
	"fmt"
	"strings"

	"koon/models"
	"koon/utils"

	"go.uber.org/zap"
)

// CreateUpdate publishes a site announcement and pushes it to subscribers.
// The push is best-effort; the announcement stands even if delivery fails.
func (s *DefaultContentService) CreateUpdate(ctx context.Context, u models.SiteUpdate) (string, error) {
	if strings.TrimSpace(u.Title) == "" {
		return "", fmt.Errorf("update title is required")
	}
	id, err := s.Repo.CreateUpdate(ctx, u)
	if err != nil {
		return "", fmt.Errorf("failed to save update: %w", err)
	}

	if s.Notifier != nil {
		if err := s.Notifier.BroadcastUpdate(ctx, u.Title, u.Body); err != nil {
			utils.GetLogger().Error("CreateUpdate: push broadcast failed", zap.String("updateID", id), zap.Error(err))
		}
	}
	return id, nil
}

func (s *DefaultContentService) GetAllUpdates(ctx context.Context) ([]models.SiteUpdate, error) {
	return s.Repo.GetAllUpdates(ctx)
}

// EditUpdate applies partial changes to an announcement.
func (s *DefaultContentService) EditUpdate(ctx context.Context, id string, fields map[string]interface{}) error {
	allowed := map[string]bool{"title": true, "body": true, "pinned": true}
	for k := range fields {
		if !allowed[k] {
			return fmt.Errorf("field %q cannot be edited", k)
		}
	}
	if len(fields) == 0 {
		return fmt.Errorf("no fields to update")
	}
	return s.Repo.UpdateUpdate(ctx, id, fields)
}

func (s *DefaultContentService) DeleteUpdate(ctx context.Context, id string) error {
	return s.Repo.DeleteUpdate(ctx, id)
}
