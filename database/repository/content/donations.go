package contentRepo

import (
	"context"
	"time"

	"koon/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// CreateDonation inserts a material donation offer and returns its ID.
func (r *mongoContentRepo) CreateDonation(ctx context.Context, d models.MaterialDonation) (string, error) {
	if d.ID == "" {
		d.ID = uuid.New().String()
	}
	if d.Status == "" {
		d.Status = "new"
	}
	d.CreatedAt = time.Now()
	if err := r.insertOne(ctx, collDonations, d); err != nil {
		return "", err
	}
	return d.ID, nil
}

// GetAllDonations returns all material donations, newest first.
func (r *mongoContentRepo) GetAllDonations(ctx context.Context) ([]models.MaterialDonation, error) {
	cursor, err := r.coll(collDonations).Find(ctx, bson.M{}, newestFirst())
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var out []models.MaterialDonation
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *mongoContentRepo) UpdateDonation(ctx context.Context, id string, fields map[string]interface{}) error {
	return r.updateByID(ctx, collDonations, id, fields)
}

func (r *mongoContentRepo) DeleteDonation(ctx context.Context, id string) error {
	return r.deleteByID(ctx, collDonations, id)
}
