package repositories

import (
	"context"
	"time"

	"github.com/Rohitsengar02/CivicConnect/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoIssueRepository implements IssueRepository on a MongoDB
// collection.
type MongoIssueRepository struct {
	collection *mongo.Collection
}

func NewMongoIssueRepository(collection *mongo.Collection) *MongoIssueRepository {
	return &MongoIssueRepository{collection: collection}
}

func (r *MongoIssueRepository) Create(ctx context.Context, issue *models.Issue) error {
	_, err := r.collection.InsertOne(ctx, issue)
	return err
}

func (r *MongoIssueRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Issue, error) {
	var issue models.Issue
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&issue)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &issue, nil
}

func scopeFilter(scope RegionScope) bson.M {
	filter := bson.M{}
	if scope.State != "" {
		filter["state"] = scope.State
	}
	if scope.District != "" {
		filter["district"] = scope.District
	}
	return filter
}

func (r *MongoIssueRepository) List(ctx context.Context, f IssueFilter) ([]models.Issue, int64, error) {
	filter := bson.M{}

	if f.Category != "" && f.Category != "all" {
		filter["category"] = f.Category
	}
	if f.Status != "" && f.Status != "all" {
		filter["status"] = f.Status
	}
	if f.State != "" {
		filter["state"] = f.State
	}
	if f.District != "" {
		filter["district"] = f.District
	}
	if f.Search != "" {
		filter["$or"] = []bson.M{
			{"title": bson.M{"$regex": f.Search, "$options": "i"}},
			{"description": bson.M{"$regex": f.Search, "$options": "i"}},
		}
	}

	page := f.Page
	if page < 1 {
		page = 1
	}
	limit := f.Limit
	if limit < 1 || limit > 100 {
		limit = 10
	}
	skip := (page - 1) * limit

	var sortOptions bson.D
	switch f.Sort {
	case "oldest":
		sortOptions = bson.D{{Key: "createdAt", Value: 1}}
	case "newest":
		fallthrough
	default:
		sortOptions = bson.D{{Key: "createdAt", Value: -1}}
	}

	totalCount, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	findOptions := options.Find().
		SetSort(sortOptions).
		SetSkip(int64(skip)).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var issues []models.Issue
	if err := cursor.All(ctx, &issues); err != nil {
		return nil, 0, err
	}

	return issues, totalCount, nil
}

func (r *MongoIssueRepository) AdvanceStatus(ctx context.Context, id primitive.ObjectID, from, to models.IssueStatus) error {
	result, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": id, "status": from},
		bson.M{"$set": bson.M{"status": to, "updatedAt": time.Now()}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		// Either the issue is gone or another admin advanced it first.
		count, countErr := r.collection.CountDocuments(ctx, bson.M{"_id": id})
		if countErr == nil && count == 0 {
			return ErrNotFound
		}
		return ErrStaleStatus
	}
	return nil
}

func (r *MongoIssueRepository) SetStatus(ctx context.Context, id primitive.ObjectID, status models.IssueStatus) error {
	result, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoIssueRepository) CountsByCategory(ctx context.Context, scope RegionScope) (map[models.IssueCategory]int64, error) {
	return groupCounts(ctx, r.collection, scope, "$category", func(key string) models.IssueCategory {
		return models.IssueCategory(key)
	})
}

func (r *MongoIssueRepository) CountsByStatus(ctx context.Context, scope RegionScope) (map[models.IssueStatus]int64, error) {
	return groupCounts(ctx, r.collection, scope, "$status", func(key string) models.IssueStatus {
		return models.IssueStatus(key)
	})
}

func groupCounts[K comparable](ctx context.Context, collection *mongo.Collection, scope RegionScope, field string, key func(string) K) (map[K]int64, error) {
	pipeline := []bson.M{
		{"$match": scopeFilter(scope)},
		{"$group": bson.M{
			"_id":   field,
			"count": bson.M{"$sum": 1},
		}},
	}

	cursor, err := collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []struct {
		ID    string `bson:"_id"`
		Count int64  `bson:"count"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}

	counts := make(map[K]int64, len(rows))
	for _, row := range rows {
		counts[key(row.ID)] = row.Count
	}
	return counts, nil
}

func (r *MongoIssueRepository) CountCreatedBetween(ctx context.Context, scope RegionScope, from, to time.Time) (int64, error) {
	filter := scopeFilter(scope)
	filter["createdAt"] = bson.M{"$gte": from, "$lt": to}
	return r.collection.CountDocuments(ctx, filter)
}
