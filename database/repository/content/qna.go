package contentRepo

import (
	"context"
	"time"

	"koon/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// CreateSuggestion inserts a new visitor suggestion and returns its ID.
func (r *mongoContentRepo) CreateSuggestion(ctx context.Context, s models.Suggestion) (string, error) {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	if s.Status == "" {
		s.Status = "new"
	}
	s.CreatedAt = time.Now()
	if err := r.insertOne(ctx, collSuggestions, s); err != nil {
		return "", err
	}
	return s.ID, nil
}

// GetAllSuggestions returns all suggestions, newest first.
func (r *mongoContentRepo) GetAllSuggestions(ctx context.Context) ([]models.Suggestion, error) {
	cursor, err := r.coll(collSuggestions).Find(ctx, bson.M{}, newestFirst())
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var out []models.Suggestion
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *mongoContentRepo) UpdateSuggestion(ctx context.Context, id string, fields map[string]interface{}) error {
	return r.updateByID(ctx, collSuggestions, id, fields)
}

func (r *mongoContentRepo) DeleteSuggestion(ctx context.Context, id string) error {
	return r.deleteByID(ctx, collSuggestions, id)
}

// CreateReport inserts a new question report and returns its ID.
func (r *mongoContentRepo) CreateReport(ctx context.Context, report models.QuestionReport) (string, error) {
	if report.ID == "" {
		report.ID = uuid.New().String()
	}
	report.CreatedAt = time.Now()
	if err := r.insertOne(ctx, collReports, report); err != nil {
		return "", err
	}
	return report.ID, nil
}

// GetAllReports returns all question reports, newest first.
func (r *mongoContentRepo) GetAllReports(ctx context.Context) ([]models.QuestionReport, error) {
	cursor, err := r.coll(collReports).Find(ctx, bson.M{}, newestFirst())
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var out []models.QuestionReport
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *mongoContentRepo) UpdateReport(ctx context.Context, id string, fields map[string]interface{}) error {
	return r.updateByID(ctx, collReports, id, fields)
}

func (r *mongoContentRepo) DeleteReport(ctx context.Context, id string) error {
	return r.deleteByID(ctx, collReports, id)
}
