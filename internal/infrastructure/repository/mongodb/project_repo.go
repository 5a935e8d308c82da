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

// ProjectRepository is the MongoDB implementation of the portfolio store.
type ProjectRepository struct {
	collection *mongo.Collection
}

// NewProjectRepository creates and returns a new ProjectRepository instance.
func NewProjectRepository(db *mongo.Database) *ProjectRepository {
	return &ProjectRepository{collection: db.Collection("projects")}
}

var _ contract.IProjectRepository = (*ProjectRepository)(nil)

// creatorLookupStages joins the creator user document onto each project.
func creatorLookupStages() []bson.D {
	return []bson.D{
		{{Key: "$lookup", Value: bson.M{
			"from":         "users",
			"localField":   "creator_id",
			"foreignField": "_id",
			"as":           "creator",
		}}},
		{{Key: "$unwind", Value: bson.M{
			"path":                       "$creator",
			"preserveNullAndEmptyArrays": true,
		}}},
	}
}

// CreateProject inserts a new project record into the database.
func (r *ProjectRepository) CreateProject(ctx context.Context, project *entity.Project) error {
	project.CreatedAt = time.Now()
	project.UpdatedAt = time.Now()
	if project.TechStack == nil {
		project.TechStack = []string{}
	}
	_, err := r.collection.InsertOne(ctx, project)
	if err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}
	return nil
}

// GetProjectByID retrieves a single project by id, with creator joined.
func (r *ProjectRepository) GetProjectByID(ctx context.Context, id string) (*entity.Project, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"_id": id}}},
	}
	pipeline = append(pipeline, creatorLookupStages()...)

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve project: %w", err)
	}
	defer cursor.Close(ctx)

	var projects []*entity.Project
	if err := cursor.All(ctx, &projects); err != nil {
		return nil, fmt.Errorf("failed to decode project: %w", err)
	}
	if len(projects) == 0 {
		return nil, errors.New("project not found")
	}
	return projects[0], nil
}

// ListProjects retrieves a page of projects, featured first.
func (r *ProjectRepository) ListProjects(ctx context.Context, page, limit int) ([]*entity.Project, int64, error) {
	totalCount, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get total project count: %w", err)
	}

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$sort", Value: bson.D{{Key: "featured", Value: -1}, {Key: "created_at", Value: -1}}}},
		bson.D{{Key: "$skip", Value: int64((page - 1) * limit)}},
		bson.D{{Key: "$limit", Value: int64(limit)}},
	}
	pipeline = append(pipeline, creatorLookupStages()...)

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to retrieve projects: %w", err)
	}
	defer cursor.Close(ctx)

	var projects []*entity.Project
	if err := cursor.All(ctx, &projects); err != nil {
		return nil, 0, fmt.Errorf("failed to decode projects: %w", err)
	}
	return projects, totalCount, nil
}

// UpdateProject updates a project with the provided fields.
func (r *ProjectRepository) UpdateProject(ctx context.Context, id string, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now()
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": updates})
	if err != nil {
		return fmt.Errorf("failed to update project: %w", err)
	}
	if res.MatchedCount == 0 {
		return errors.New("project not found")
	}
	return nil
}

// DeleteProject removes a project.
func (r *ProjectRepository) DeleteProject(ctx context.Context, id string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	if res.DeletedCount == 0 {
		return errors.New("project not found")
	}
	return nil
}

// FindForContent applies the dashboard search/filter semantics in the DB.
func (r *ProjectRepository) FindForContent(ctx context.Context, q contract.ContentQuery) ([]*entity.Project, int64, error) {
	filter := bson.M{}
	if q.Search != "" {
		regex := bson.M{"$regex": q.Search, "$options": "i"}
		filter["$or"] = []bson.M{{"title": regex}, {"description": regex}}
	}
	switch q.Filter {
	case "featured":
		filter["featured"] = true
	case "recent":
		filter["created_at"] = bson.M{"$gte": q.RecentSince}
	}

	totalCount, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count content projects: %w", err)
	}

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: filter}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: -1}}}},
		bson.D{{Key: "$skip", Value: int64((q.Page - 1) * q.Limit)}},
		bson.D{{Key: "$limit", Value: int64(q.Limit)}},
	}
	pipeline = append(pipeline, creatorLookupStages()...)

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to retrieve content projects: %w", err)
	}
	defer cursor.Close(ctx)

	var projects []*entity.Project
	if err := cursor.All(ctx, &projects); err != nil {
		return nil, 0, fmt.Errorf("failed to decode content projects: %w", err)
	}
	return projects, totalCount, nil
}

// BulkSetFeatured features or unfeatures the given projects and returns the modified count.
func (r *ProjectRepository) BulkSetFeatured(ctx context.Context, ids []string, featured bool) (int64, error) {
	res, err := r.collection.UpdateMany(ctx, bson.M{"_id": bson.M{"$in": ids}}, bson.M{
		"$set": bson.M{"featured": featured, "updated_at": time.Now()},
	})
	if err != nil {
		return 0, fmt.Errorf("failed to bulk update projects: %w", err)
	}
	return res.ModifiedCount, nil
}

// BulkDelete removes the given projects and returns the deleted count.
func (r *ProjectRepository) BulkDelete(ctx context.Context, ids []string) (int64, error) {
	res, err := r.collection.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return 0, fmt.Errorf("failed to bulk delete projects: %w", err)
	}
	return res.DeletedCount, nil
}

func (r *ProjectRepository) CountProjects(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}
