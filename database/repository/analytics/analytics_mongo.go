package analyticsRepo

import (
	"context"
	"time"

	"koon/database"
	"koon/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type mongoAnalyticsRepo struct {
	coll *mongo.Collection
}

// NewMongoAnalyticsRepo returns a new AnalyticsRepository instance using MongoDB.
func NewMongoAnalyticsRepo() AnalyticsRepository {
	return &mongoAnalyticsRepo{
		coll: database.DB().Collection("page_views"),
	}
}

// LogView inserts one page view record.
func (r *mongoAnalyticsRepo) LogView(ctx context.Context, view models.PageView) error {
	if view.ID == "" {
		view.ID = uuid.New().String()
	}
	if view.Timestamp.IsZero() {
		view.Timestamp = time.Now()
	}
	if view.Date == "" {
		view.Date = view.Timestamp.UTC().Format("2006-01-02")
	}
	_, err := r.coll.InsertOne(ctx, view)
	return err
}

func (r *mongoAnalyticsRepo) TotalViews(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{})
}

func (r *mongoAnalyticsRepo) UniqueVisitors(ctx context.Context) (int64, error) {
	ids, err := r.coll.Distinct(ctx, "visitorId", bson.M{})
	if err != nil {
		return 0, err
	}
	return int64(len(ids)), nil
}

func (r *mongoAnalyticsRepo) AverageDuration(ctx context.Context) (float64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id": nil,
			"avg": bson.M{"$avg": "$duration"},
		}}},
	}
	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}
	defer cursor.Close(ctx)

	var results []struct {
		Avg float64 `bson:"avg"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, err
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0].Avg, nil
}

// ViewsPerDay groups views by the stored YYYY-MM-DD date field.
func (r *mongoAnalyticsRepo) ViewsPerDay(ctx context.Context, limit int) ([]models.DailyViews, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":   "$date",
			"views": bson.M{"$sum": 1},
		}}},
		{{Key: "$sort", Value: bson.M{"_id": -1}}},
		{{Key: "$limit", Value: limit}},
	}
	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var out []models.DailyViews
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// TopPages groups views by path, most viewed first.
func (r *mongoAnalyticsRepo) TopPages(ctx context.Context, limit int) ([]models.PageCount, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":   "$path",
			"views": bson.M{"$sum": 1},
		}}},
		{{Key: "$sort", Value: bson.M{"views": -1}}},
		{{Key: "$limit", Value: limit}},
	}
	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var out []models.PageCount
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
