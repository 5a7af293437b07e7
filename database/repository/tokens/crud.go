package tokensRepo

import (
	"context"
	"log"
	"time"

	"koon/database"
	"koon/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoTokenRepo struct {
	coll *mongo.Collection
}

// NewMongoTokenRepo returns a new PairingTokenRepository instance using MongoDB.
func NewMongoTokenRepo() PairingTokenRepository {
	repo := &mongoTokenRepo{
		coll: database.DB().Collection("guest_tokens"),
	}
	if err := repo.ensureIndexes(); err != nil {
		log.Printf("tokensRepo: %v", err)
	}
	return repo
}

// Create inserts a new pairing token record.
func (r *mongoTokenRepo) Create(ctx context.Context, token models.PairingToken) error {
	if token.ID == "" {
		token.ID = uuid.New().String()
	}
	_, err := r.coll.InsertOne(ctx, token)
	return err
}

// Claim deletes and returns the newest matching record that is still inside
// its validity window. The single findOneAndDelete leaves no read-then-delete
// gap for a second verifier to slip through.
func (r *mongoTokenRepo) Claim(ctx context.Context, token string, now time.Time) (*models.PairingToken, error) {
	filter := bson.M{
		"token":     token,
		"expiresAt": bson.M{"$gt": now},
	}
	opts := options.FindOneAndDelete().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	var claimed models.PairingToken
	if err := r.coll.FindOneAndDelete(ctx, filter, opts).Decode(&claimed); err != nil {
		return nil, err
	}
	return &claimed, nil
}

// FindByToken returns all records for a token value, newest first.
func (r *mongoTokenRepo) FindByToken(ctx context.Context, token string) ([]models.PairingToken, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"token": token}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []models.PairingToken
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// DeleteExpired sweeps records whose expiry instant has passed.
func (r *mongoTokenRepo) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.coll.DeleteMany(ctx, bson.M{"expiresAt": bson.M{"$lte": now}})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
