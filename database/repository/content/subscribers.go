package contentRepo

import (
	"context"
	"strings"
	"time"

	"koon/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// CreateSubscriber inserts a subscriber and returns its ID. Emails are
// normalized to lowercase before storage.
func (r *mongoContentRepo) CreateSubscriber(ctx context.Context, s models.Subscriber) (string, error) {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	s.Email = strings.ToLower(strings.TrimSpace(s.Email))
	s.CreatedAt = time.Now()
	if err := r.insertOne(ctx, collSubscribers, s); err != nil {
		return "", err
	}
	return s.ID, nil
}

// GetAllSubscribers returns all subscribers, newest first.
func (r *mongoContentRepo) GetAllSubscribers(ctx context.Context) ([]models.Subscriber, error) {
	cursor, err := r.coll(collSubscribers).Find(ctx, bson.M{}, newestFirst())
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var out []models.Subscriber
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *mongoContentRepo) DeleteSubscriber(ctx context.Context, id string) error {
	return r.deleteByID(ctx, collSubscribers, id)
}
