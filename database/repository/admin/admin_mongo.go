package adminRepo

import (
	"context"
	"errors"
	"strings"
	"time"

	"koon/database"
	"koon/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoAdminRepo struct {
	admins *mongo.Collection
	audits *mongo.Collection
}

// NewMongoAdminRepo returns a new AdminRepository instance using MongoDB.
func NewMongoAdminRepo() AdminRepository {
	db := database.DB()
	return &mongoAdminRepo{
		admins: db.Collection("admins"),
		audits: db.Collection("audit_events"),
	}
}

// GetByEmail returns the admin account for an email, or nil if none exists.
func (r *mongoAdminRepo) GetByEmail(ctx context.Context, email string) (*models.AdminUser, error) {
	var admin models.AdminUser
	err := r.admins.FindOne(ctx, bson.M{"email": strings.ToLower(email)}).Decode(&admin)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &admin, nil
}

func (r *mongoAdminRepo) TouchLastLogin(ctx context.Context, id string) error {
	_, err := r.admins.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"lastLoginAt": time.Now()}})
	return err
}

// RecordAudit appends a security-relevant operator event.
func (r *mongoAdminRepo) RecordAudit(ctx context.Context, event models.AuditEvent) error {
	if event.ID == "" {
		event.ID = uuid.New().String()
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now()
	}
	_, err := r.audits.InsertOne(ctx, event)
	return err
}

// RecentAudits returns the newest audit events.
func (r *mongoAdminRepo) RecentAudits(ctx context.Context, limit int) ([]models.AuditEvent, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(int64(limit))
	cursor, err := r.audits.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var out []models.AuditEvent
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
