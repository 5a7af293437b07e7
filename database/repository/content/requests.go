package contentRepo

import (
	"context"
	"time"

	"koon/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// CreateRequest inserts a service request and returns its ID.
func (r *mongoContentRepo) CreateRequest(ctx context.Context, req models.ServiceRequest) (string, error) {
	if req.ID == "" {
		req.ID = uuid.New().String()
	}
	if req.Status == "" {
		req.Status = "open"
	}
	req.CreatedAt = time.Now()
	if err := r.insertOne(ctx, collRequests, req); err != nil {
		return "", err
	}
	return req.ID, nil
}

// GetAllRequests returns all service requests, newest first.
func (r *mongoContentRepo) GetAllRequests(ctx context.Context) ([]models.ServiceRequest, error) {
	cursor, err := r.coll(collRequests).Find(ctx, bson.M{}, newestFirst())
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var out []models.ServiceRequest
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *mongoContentRepo) UpdateRequest(ctx context.Context, id string, fields map[string]interface{}) error {
	return r.updateByID(ctx, collRequests, id, fields)
}

func (r *mongoContentRepo) DeleteRequest(ctx context.Context, id string) error {
	return r.deleteByID(ctx, collRequests, id)
}
