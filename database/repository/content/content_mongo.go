package contentRepo

import (
	"context"
	"errors"

	"koon/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names, matching the student site's document store.
const (
	collSuggestions  = "qna"
	collReports      = "question_reports"
	collTestimonials = "testimonials"
	collSubscribers  = "subscribers"
	collDonations    = "materialDonations"
	collUpdates      = "updates"
	collRequests     = "service_requests"
)

type mongoContentRepo struct {
	db *mongo.Database
}

// NewMongoContentRepo returns a new ContentRepository instance using MongoDB.
func NewMongoContentRepo() ContentRepository {
	return &mongoContentRepo{db: database.DB()}
}

func (r *mongoContentRepo) coll(name string) *mongo.Collection {
	return r.db.Collection(name)
}

// newestFirst sorts by creation time descending, the order every admin page uses.
func newestFirst() *options.FindOptions {
	return options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
}

func (r *mongoContentRepo) insertOne(ctx context.Context, collection string, doc interface{}) error {
	_, err := r.coll(collection).InsertOne(ctx, doc)
	return err
}

func (r *mongoContentRepo) updateByID(ctx context.Context, collection, id string, fields map[string]interface{}) error {
	res, err := r.coll(collection).UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": fields})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errors.New("document not found")
	}
	return nil
}

func (r *mongoContentRepo) deleteByID(ctx context.Context, collection, id string) error {
	res, err := r.coll(collection).DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return errors.New("document not found")
	}
	return nil
}

// CountByFilter counts documents in the named collection matching the filter.
func (r *mongoContentRepo) CountByFilter(ctx context.Context, collection string, filter map[string]interface{}) (int64, error) {
	bsonFilter := bson.M{}
	for k, v := range filter {
		bsonFilter[k] = v
	}
	return r.coll(collection).CountDocuments(ctx, bsonFilter)
}
