package positionRepo

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"shiftflow/database"
	"shiftflow/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoPositionRepo implements PositionRepository using MongoDB.
type MongoPositionRepo struct {
	coll *mongo.Collection
}

// NewMongoPositionRepo creates a new instance of PositionRepository using MongoDB.
func NewMongoPositionRepo() PositionRepository {
	coll := database.Collection("positions")
	repo := &MongoPositionRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoPositionRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "name", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a position by its unique ID, or nil when absent.
func (r *MongoPositionRepo) GetByID(id string) (*models.Position, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var position models.Position
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&position); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch position with id %s: %w", id, err)
	}
	return &position, nil
}

// GetByName retrieves a position by name, case-insensitively, or nil when
// absent.
func (r *MongoPositionRepo) GetByName(name string) (*models.Position, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"name": bson.M{
		"$regex":   "^" + regexp.QuoteMeta(name) + "$",
		"$options": "i",
	}}
	var position models.Position
	if err := r.coll.FindOne(ctx, filter).Decode(&position); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch position named %q: %w", name, err)
	}
	return &position, nil
}

func (r *MongoPositionRepo) find(filter bson.M) ([]models.Position, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve positions: %w", err)
	}
	defer cursor.Close(ctx)

	var positions []models.Position
	for cursor.Next(ctx) {
		var p models.Position
		if err := cursor.Decode(&p); err != nil {
			return nil, fmt.Errorf("failed to decode position: %w", err)
		}
		positions = append(positions, p)
	}
	return positions, nil
}

// GetAll retrieves every position ordered by name.
func (r *MongoPositionRepo) GetAll() ([]models.Position, error) {
	return r.find(bson.M{})
}

// GetActive retrieves active positions ordered by name.
func (r *MongoPositionRepo) GetActive() ([]models.Position, error) {
	return r.find(bson.M{"is_active": true})
}

// Create inserts a new position document.
func (r *MongoPositionRepo) Create(position *models.Position) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, position); err != nil {
		return fmt.Errorf("failed to create position: %w", err)
	}
	return nil
}

// Update modifies an existing position document.
func (r *MongoPositionRepo) Update(position *models.Position) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": position.ID}, bson.M{"$set": position})
	if err != nil {
		return fmt.Errorf("failed to update position with id %s: %w", position.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("position with id %s not found", position.ID)
	}
	return nil
}

// Delete removes a position document by its ID.
func (r *MongoPositionRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete position with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("position with id %s not found", id)
	}
	return nil
}
