package contentRepo

import (
	"context"
	"time"

	"koon/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// CreateTestimonial inserts a new testimonial and returns its ID.
func (r *mongoContentRepo) CreateTestimonial(ctx context.Context, t models.Testimonial) (string, error) {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	if t.Status == "" {
		t.Status = models.TestimonialPending
	}
	t.CreatedAt = time.Now()
	if err := r.insertOne(ctx, collTestimonials, t); err != nil {
		return "", err
	}
	return t.ID, nil
}

// GetAllTestimonials returns all testimonials, newest first.
func (r *mongoContentRepo) GetAllTestimonials(ctx context.Context) ([]models.Testimonial, error) {
	return r.findTestimonials(ctx, bson.M{})
}

// GetTestimonialsByStatus returns testimonials with the given status, newest first.
func (r *mongoContentRepo) GetTestimonialsByStatus(ctx context.Context, status string) ([]models.Testimonial, error) {
	return r.findTestimonials(ctx, bson.M{"status": status})
}

func (r *mongoContentRepo) findTestimonials(ctx context.Context, filter bson.M) ([]models.Testimonial, error) {
	cursor, err := r.coll(collTestimonials).Find(ctx, filter, newestFirst())
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var out []models.Testimonial
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *mongoContentRepo) UpdateTestimonialStatus(ctx context.Context, id, status string) error {
	return r.updateByID(ctx, collTestimonials, id, map[string]interface{}{"status": status})
}

func (r *mongoContentRepo) DeleteTestimonial(ctx context.Context, id string) error {
	return r.deleteByID(ctx, collTestimonials, id)
}
