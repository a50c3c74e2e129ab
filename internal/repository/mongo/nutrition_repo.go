package mongo

import (
	"context"
	"errors"
	"log"
	"time"

	"exotico/fitness-tracker/internal/domain"
	"exotico/fitness-tracker/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const nutritionCollectionName = "nutrition_logs"

// mongoNutritionLogRepository implements repository.NutritionLogRepository
type mongoNutritionLogRepository struct {
	collection *mongo.Collection
}

// NewMongoNutritionLogRepository creates a new nutrition log repository.
func NewMongoNutritionLogRepository(db *mongo.Database) repository.NutritionLogRepository {
	return &mongoNutritionLogRepository{
		collection: db.Collection(nutritionCollectionName),
	}
}

// Create inserts a new nutrition log.
func (r *mongoNutritionLogRepository) Create(ctx context.Context, entry *domain.NutritionLog) (primitive.ObjectID, error) {
	if entry.UserID == primitive.NilObjectID || len(entry.Meals) == 0 {
		return primitive.NilObjectID, errors.New("nutrition log requires userId and at least one meal")
	}
	entry.ID = primitive.NewObjectID()
	entry.CreatedAt = time.Now().UTC()

	result, err := r.collection.InsertOne(ctx, entry)
	if err != nil {
		return primitive.NilObjectID, err
	}
	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted nutrition log ID")
	}
	return insertedID, nil
}

// GetByUser retrieves a user's logs, newest first.
func (r *mongoNutritionLogRepository) GetByUser(ctx context.Context, userID primitive.ObjectID, limit int64) ([]domain.NutritionLog, error) {
	return r.find(ctx, bson.M{"userId": userID}, limit)
}

// GetByUserAndDateRange retrieves a user's logs with date in [from, to),
// newest first.
func (r *mongoNutritionLogRepository) GetByUserAndDateRange(ctx context.Context, userID primitive.ObjectID, from, to time.Time, limit int64) ([]domain.NutritionLog, error) {
	filter := bson.M{
		"userId": userID,
		"date":   bson.M{"$gte": from, "$lt": to},
	}
	return r.find(ctx, filter, limit)
}

func (r *mongoNutritionLogRepository) find(ctx context.Context, filter bson.M, limit int64) ([]domain.NutritionLog, error) {
	var logs []domain.NutritionLog
	findOptions := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	if limit > 0 {
		findOptions.SetLimit(limit)
	}

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

// EnsureNutritionLogIndexes creates necessary indexes. Call during startup.
func EnsureNutritionLogIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "date", Value: -1}},
			Options: options.Index(),
		},
	}
	if _, err := collection.Indexes().CreateMany(ctx, indexes); err != nil {
		log.Printf("WARN: Failed to create indexes for collection %s: %v", collection.Name(), err)
	}
}
