package content

import (
	"context"
	"fmt"
	"strings"

	"koon/models"
)

// Subscribe adds an email to the subscriber list.
func (s *DefaultContentService) Subscribe(ctx context.Context, email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return "", fmt.Errorf("a valid email address is required")
	}

	existing, err := s.Repo.GetAllSubscribers(ctx)
	if err == nil {
		for _, sub := range existing {
			if sub.Email == email {
				return sub.ID, nil
			}
		}
	}

	id, err := s.Repo.CreateSubscriber(ctx, models.Subscriber{Email: email})
	if err != nil {
		return "", fmt.Errorf("failed to save subscriber: %w", err)
	}
	return id, nil
}

func (s *DefaultContentService) GetAllSubscribers(ctx context.Context) ([]models.Subscriber, error) {
	return s.Repo.GetAllSubscribers(ctx)
}

func (s *DefaultContentService) DeleteSubscriber(ctx context.Context, id string) error {
	return s.Repo.DeleteSubscriber(ctx, id)
}
