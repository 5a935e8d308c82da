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
)

// PostRepository is the MongoDB implementation of the post store. Comments
// are embedded subdocuments, so every comment operation is a single-document
// update on the posts collection.
type PostRepository struct {
	collection      *mongo.Collection
	usersCollection *mongo.Collection
}

// NewPostRepository creates and returns a new PostRepository instance.
func NewPostRepository(db *mongo.Database, users *mongo.Collection) *PostRepository {
	return &PostRepository{
		collection:      db.Collection("posts"),
		usersCollection: users,
	}
}

var _ contract.IPostRepository = (*PostRepository)(nil)

// authorLookupStages joins the author user document onto each post.
func authorLookupStages() []bson.D {
	return []bson.D{
		{{Key: "$lookup", Value: bson.M{
			"from":         "users",
			"localField":   "author_id",
			"foreignField": "_id",
			"as":           "author",
		}}},
		{{Key: "$unwind", Value: bson.M{
			"path":                       "$author",
			"preserveNullAndEmptyArrays": true,
		}}},
	}
}

// feedSortStage returns the $sort document for the feed ordering.
func feedSortStage(sort string) bson.D {
	if sort == "oldest" {
		return bson.D{{Key: "created_at", Value: 1}}
	}
	// default: pinned posts first, then newest
	return bson.D{{Key: "is_pinned", Value: -1}, {Key: "created_at", Value: -1}}
}

// CreatePost inserts a new post record into the database.
func (r *PostRepository) CreatePost(ctx context.Context, post *entity.Post) error {
	post.CreatedAt = time.Now()
	post.UpdatedAt = time.Now()
	if post.Comments == nil {
		post.Comments = []entity.Comment{} // Ensure comments is not nil to avoid DB errors
	}
	_, err := r.collection.InsertOne(ctx, post)
	if err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}
	return nil
}

// GetPostByID retrieves a single post by its unique id, with author joined.
func (r *PostRepository) GetPostByID(ctx context.Context, id string) (*entity.Post, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"_id": id}}},
	}
	pipeline = append(pipeline, authorLookupStages()...)

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve post: %w", err)
	}
	defer cursor.Close(ctx)

	var posts []*entity.Post
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, fmt.Errorf("failed to decode post: %w", err)
	}
	if len(posts) == 0 {
		return nil, errors.New("post not found")
	}
	return posts[0], nil
}

// ListPosts retrieves one feed page with filtering, ordering and pagination.
func (r *PostRepository) ListPosts(ctx context.Context, opts contract.PostListOptions) ([]*entity.Post, int64, error) {
	filter := bson.M{}
	if opts.Location != "" {
		filter["location"] = opts.Location
	}

	totalCount, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get total post count: %w", err)
	}

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: filter}},
		bson.D{{Key: "$sort", Value: feedSortStage(opts.Sort)}},
		bson.D{{Key: "$skip", Value: int64((opts.Page - 1) * opts.Limit)}},
		bson.D{{Key: "$limit", Value: int64(opts.Limit)}},
	}
	pipeline = append(pipeline, authorLookupStages()...)

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to retrieve posts: %w", err)
	}
	defer cursor.Close(ctx)

	var posts []*entity.Post
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, 0, fmt.Errorf("failed to decode posts: %w", err)
	}
	return posts, totalCount, nil
}

// UpdatePost updates a post with the provided fields.
func (r *PostRepository) UpdatePost(ctx context.Context, id string, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now()
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": updates})
	if err != nil {
		return fmt.Errorf("failed to update post: %w", err)
	}
	if res.MatchedCount == 0 {
		return errors.New("post not found")
	}
	return nil
}

// DeletePost removes a post and its embedded comments.
func (r *PostRepository) DeletePost(ctx context.Context, id string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	if res.DeletedCount == 0 {
		return errors.New("post not found")
	}
	return nil
}

// SetPinned flips the pinned flag of a post.
func (r *PostRepository) SetPinned(ctx context.Context, id string, pinned bool) error {
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{"is_pinned": pinned, "updated_at": time.Now()},
	})
	if err != nil {
		return fmt.Errorf("failed to update pin state: %w", err)
	}
	if res.MatchedCount == 0 {
		return errors.New("post not found")
	}
	return nil
}

// AddComment appends a comment subdocument to a post.
func (r *PostRepository) AddComment(ctx context.Context, postID string, comment *entity.Comment) error {
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": postID}, bson.M{
		"$push": bson.M{"comments": comment},
		"$set":  bson.M{"updated_at": time.Now()},
	})
	if err != nil {
		return fmt.Errorf("failed to add comment: %w", err)
	}
	if res.MatchedCount == 0 {
		return errors.New("post not found")
	}
	return nil
}

// RemoveComment pulls a comment subdocument out of a post.
func (r *PostRepository) RemoveComment(ctx context.Context, postID, commentID string) error {
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": postID}, bson.M{
		"$pull": bson.M{"comments": bson.M{"_id": commentID}},
		"$set":  bson.M{"updated_at": time.Now()},
	})
	if err != nil {
		return fmt.Errorf("failed to remove comment: %w", err)
	}
	if res.MatchedCount == 0 {
		return errors.New("post not found")
	}
	if res.ModifiedCount == 0 {
		return errors.New("comment not found")
	}
	return nil
}

// buildContentFilter translates the moderation dashboard query into a BSON filter.
func buildContentFilter(q contract.ContentQuery) bson.M {
	filter := bson.M{}
	if q.Search != "" {
		regex := bson.M{"$regex": q.Search, "$options": "i"}
		filter["$or"] = []bson.M{{"title": regex}, {"content": regex}}
	}
	switch q.Filter {
	case "pinned":
		filter["is_pinned"] = true
	case "recent":
		filter["created_at"] = bson.M{"$gte": q.RecentSince}
	}
	return filter
}

// FindForContent applies the dashboard search/filter semantics in the DB.
func (r *PostRepository) FindForContent(ctx context.Context, q contract.ContentQuery) ([]*entity.Post, int64, error) {
	filter := buildContentFilter(q)

	totalCount, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count content posts: %w", err)
	}

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: filter}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: -1}}}},
		bson.D{{Key: "$skip", Value: int64((q.Page - 1) * q.Limit)}},
		bson.D{{Key: "$limit", Value: int64(q.Limit)}},
	}
	pipeline = append(pipeline, authorLookupStages()...)

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to retrieve content posts: %w", err)
	}
	defer cursor.Close(ctx)

	var posts []*entity.Post
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, 0, fmt.Errorf("failed to decode content posts: %w", err)
	}
	return posts, totalCount, nil
}

// PostsWithComments returns every post whose embedded comment array is non-empty.
func (r *PostRepository) PostsWithComments(ctx context.Context) ([]*entity.Post, error) {
	filter := bson.M{"comments.0": bson.M{"$exists": true}}
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve commented posts: %w", err)
	}
	defer cursor.Close(ctx)

	var posts []*entity.Post
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, fmt.Errorf("failed to decode commented posts: %w", err)
	}
	return posts, nil
}

// BulkSetPinned pins or unpins the given posts and returns Mongo's modified count.
func (r *PostRepository) BulkSetPinned(ctx context.Context, ids []string, pinned bool) (int64, error) {
	res, err := r.collection.UpdateMany(ctx, bson.M{"_id": bson.M{"$in": ids}}, bson.M{
		"$set": bson.M{"is_pinned": pinned, "updated_at": time.Now()},
	})
	if err != nil {
		return 0, fmt.Errorf("failed to bulk update posts: %w", err)
	}
	return res.ModifiedCount, nil
}

// BulkDelete removes the given posts and returns the deleted count.
func (r *PostRepository) BulkDelete(ctx context.Context, ids []string) (int64, error) {
	res, err := r.collection.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return 0, fmt.Errorf("failed to bulk delete posts: %w", err)
	}
	return res.DeletedCount, nil
}

func (r *PostRepository) CountPosts(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

// CountComments sums embedded comment-array sizes across all posts with a
// $size + $group aggregation.
func (r *PostRepository) CountComments(ctx context.Context) (int64, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$project", Value: bson.M{"comment_count": bson.M{"$size": "$comments"}}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": "$comment_count"},
		}}},
	}
	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("failed to count comments: %w", err)
	}
	defer cursor.Close(ctx)

	var results []struct {
		Total int64 `bson:"total"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, fmt.Errorf("failed to decode comment count: %w", err)
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0].Total, nil
}
