package mongodb

import (
	"context"
	"fmt"
	"time"

	"github.com/wuddevdet/platform-api/internal/domain/contract"
	"github.com/wuddevdet/platform-api/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// VisitRepository is the MongoDB implementation of the pageview store.
// Visits are append-only; every read is an aggregation.
type VisitRepository struct {
	collection *mongo.Collection
}

// NewVisitRepository creates and returns a new VisitRepository instance.
func NewVisitRepository(db *mongo.Database) *VisitRepository {
	return &VisitRepository{collection: db.Collection("visits")}
}

var _ contract.IVisitRepository = (*VisitRepository)(nil)

func (r *VisitRepository) InsertVisit(ctx context.Context, visit *entity.Visit) error {
	if visit.Timestamp.IsZero() {
		visit.Timestamp = time.Now()
	}
	if visit.Location == (entity.VisitLocation{}) {
		visit.Location = entity.DefaultVisitLocation()
	}
	_, err := r.collection.InsertOne(ctx, visit)
	if err != nil {
		return fmt.Errorf("failed to insert visit: %w", err)
	}
	return nil
}

// DailyTraffic groups visits by calendar day, counting total visits and
// unique visitor IDs per day.
func (r *VisitRepository) DailyTraffic(ctx context.Context, since time.Time) ([]entity.DailyTraffic, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"timestamp": bson.M{"$gte": since}}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id": bson.M{"$dateToString": bson.M{
				"format": "%Y-%m-%d",
				"date":   "$timestamp",
			}},
			"visits":      bson.M{"$sum": 1},
			"visitor_ids": bson.M{"$addToSet": "$visitor_id"},
		}}},
		bson.D{{Key: "$project", Value: bson.M{
			"visits":   1,
			"visitors": bson.M{"$size": "$visitor_ids"},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate daily traffic: %w", err)
	}
	defer cursor.Close(ctx)

	var buckets []entity.DailyTraffic
	if err := cursor.All(ctx, &buckets); err != nil {
		return nil, fmt.Errorf("failed to decode daily traffic: %w", err)
	}
	return buckets, nil
}

// DeviceBreakdown groups visits by device type.
func (r *VisitRepository) DeviceBreakdown(ctx context.Context, since time.Time) ([]entity.DeviceCount, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"timestamp": bson.M{"$gte": since}}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":   "$device_type",
			"count": bson.M{"$sum": 1},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate device breakdown: %w", err)
	}
	defer cursor.Close(ctx)

	var buckets []entity.DeviceCount
	if err := cursor.All(ctx, &buckets); err != nil {
		return nil, fmt.Errorf("failed to decode device breakdown: %w", err)
	}
	return buckets, nil
}

// TopPages returns the most visited pages since the cutoff.
func (r *VisitRepository) TopPages(ctx context.Context, since time.Time, limit int) ([]entity.PageCount, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"timestamp": bson.M{"$gte": since}}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":   "$page",
			"count": bson.M{"$sum": 1},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}}}},
		bson.D{{Key: "$limit", Value: int64(limit)}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate top pages: %w", err)
	}
	defer cursor.Close(ctx)

	var buckets []entity.PageCount
	if err := cursor.All(ctx, &buckets); err != nil {
		return nil, fmt.Errorf("failed to decode top pages: %w", err)
	}
	return buckets, nil
}

// VisitsByCity groups visits by recorded city.
func (r *VisitRepository) VisitsByCity(ctx context.Context, since time.Time) ([]entity.CityCount, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"timestamp": bson.M{"$gte": since}}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":   "$location.city",
			"count": bson.M{"$sum": 1},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate visits by city: %w", err)
	}
	defer cursor.Close(ctx)

	var buckets []entity.CityCount
	if err := cursor.All(ctx, &buckets); err != nil {
		return nil, fmt.Errorf("failed to decode visits by city: %w", err)
	}
	return buckets, nil
}

func (r *VisitRepository) CountVisits(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}
