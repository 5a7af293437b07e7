package content

import (
	"context"
	"fmt"
	"strings"
	"time"

	"koon/models"
)

// SubmitSuggestion records a visitor suggestion or complaint.
func (s *DefaultContentService) SubmitSuggestion(ctx context.Context, sug models.Suggestion) (string, error) {
	if strings.TrimSpace(sug.Text) == "" {
		return "", fmt.Errorf("suggestion text is required")
	}
	id, err := s.Repo.CreateSuggestion(ctx, sug)
	if err != nil {
		return "", fmt.Errorf("failed to save suggestion: %w", err)
	}
	return id, nil
}

func (s *DefaultContentService) GetAllSuggestions(ctx context.Context) ([]models.Suggestion, error) {
	return s.Repo.GetAllSuggestions(ctx)
}

// ReplyToSuggestion stores the admin reply and marks the suggestion replied.
func (s *DefaultContentService) ReplyToSuggestion(ctx context.Context, id, replyText string) error {
	if strings.TrimSpace(replyText) == "" {
		return fmt.Errorf("reply text is required")
	}
	fields := map[string]interface{}{
		"reply":     replyText,
		"status":    "replied",
		"replyDate": time.Now(),
	}
	if err := s.Repo.UpdateSuggestion(ctx, id, fields); err != nil {
		return fmt.Errorf("failed to reply to suggestion: %w", err)
	}
	return nil
}

// SetSuggestionPublic toggles whether a suggestion shows on the student site.
func (s *DefaultContentService) SetSuggestionPublic(ctx context.Context, id string, public bool) error {
	return s.Repo.UpdateSuggestion(ctx, id, map[string]interface{}{"public": public})
}

func (s *DefaultContentService) DeleteSuggestion(ctx context.Context, id string) error {
	return s.Repo.DeleteSuggestion(ctx, id)
}

// SubmitReport records a question report from the student site.
func (s *DefaultContentService) SubmitReport(ctx context.Context, r models.QuestionReport) (string, error) {
	if r.QuestionID == "" {
		return "", fmt.Errorf("questionId is required")
	}
	id, err := s.Repo.CreateReport(ctx, r)
	if err != nil {
		return "", fmt.Errorf("failed to save report: %w", err)
	}
	return id, nil
}

func (s *DefaultContentService) GetAllReports(ctx context.Context) ([]models.QuestionReport, error) {
	return s.Repo.GetAllReports(ctx)
}

func (s *DefaultContentService) ResolveReport(ctx context.Context, id string) error {
	return s.Repo.UpdateReport(ctx, id, map[string]interface{}{"resolved": true})
}

func (s *DefaultContentService) DeleteReport(ctx context.Context, id string) error {
	return s.Repo.DeleteReport(ctx, id)
}
