package contentRepo

import (
	"context"
	"time"

	"koon/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// CreateUpdate inserts a site announcement and returns its ID.
func (r *mongoContentRepo) CreateUpdate(ctx context.Context, u models.SiteUpdate) (string, error) {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	if err := r.insertOne(ctx, collUpdates, u); err != nil {
		return "", err
	}
	return u.ID, nil
}

// GetAllUpdates returns all announcements, newest first.
func (r *mongoContentRepo) GetAllUpdates(ctx context.Context) ([]models.SiteUpdate, error) {
	cursor, err := r.coll(collUpdates).Find(ctx, bson.M{}, newestFirst())
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var out []models.SiteUpdate
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateUpdate applies changes to an announcement and bumps its updatedAt stamp.
func (r *mongoContentRepo) UpdateUpdate(ctx context.Context, id string, fields map[string]interface{}) error {
	fields["updatedAt"] = time.Now()
	return r.updateByID(ctx, collUpdates, id, fields)
}

func (r *mongoContentRepo) DeleteUpdate(ctx context.Context, id string) error {
	return r.deleteByID(ctx, collUpdates, id)
}
