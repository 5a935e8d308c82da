package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/wuddevdet/platform-api/internal/domain/contract"
	"github.com/wuddevdet/platform-api/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ContactRepository is the MongoDB implementation of the contact-message store.
type ContactRepository struct {
	collection *mongo.Collection
}

// NewContactRepository creates and returns a new ContactRepository instance.
func NewContactRepository(db *mongo.Database) *ContactRepository {
	return &ContactRepository{collection: db.Collection("contact_messages")}
}

var _ contract.IContactRepository = (*ContactRepository)(nil)

func (r *ContactRepository) CreateMessage(ctx context.Context, msg *entity.ContactMessage) error {
	msg.CreatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, msg)
	if err != nil {
		return fmt.Errorf("failed to create contact message: %w", err)
	}
	return nil
}

func (r *ContactRepository) GetMessageByID(ctx context.Context, id string) (*entity.ContactMessage, error) {
	var msg entity.ContactMessage
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&msg)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.New("message not found")
		}
		return nil, err
	}
	return &msg, nil
}

// ListMessages returns a page of messages, unresponded first, newest first.
func (r *ContactRepository) ListMessages(ctx context.Context, page, limit int) ([]*entity.ContactMessage, int64, error) {
	total, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count messages: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "is_responded", Value: 1}, {Key: "created_at", Value: -1}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list messages: %w", err)
	}
	defer cursor.Close(ctx)

	var messages []*entity.ContactMessage
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, 0, fmt.Errorf("failed to decode messages: %w", err)
	}
	return messages, total, nil
}

func (r *ContactRepository) SetResponded(ctx context.Context, id string, responded bool) error {
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{"is_responded": responded},
	})
	if err != nil {
		return fmt.Errorf("failed to update message: %w", err)
	}
	if res.MatchedCount == 0 {
		return errors.New("message not found")
	}
	return nil
}

func (r *ContactRepository) DeleteMessage(ctx context.Context, id string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete message: %w", err)
	}
	if res.DeletedCount == 0 {
		return errors.New("message not found")
	}
	return nil
}

func (r *ContactRepository) CountMessages(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}
