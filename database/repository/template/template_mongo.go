package templateRepo

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

// MongoTemplateRepo implements TemplateRepository using MongoDB.
type MongoTemplateRepo struct {
	coll *mongo.Collection
}

// NewMongoTemplateRepo creates a new instance of TemplateRepository using MongoDB.
func NewMongoTemplateRepo() TemplateRepository {
	coll := database.Collection("shift_templates")
	repo := &MongoTemplateRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoTemplateRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{
			Keys:    bson.D{{Key: "created_by", Value: 1}, {Key: "name", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoTemplateRepo) findOne(filter bson.M) (*models.ShiftTemplate, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var template models.ShiftTemplate
	if err := r.coll.FindOne(ctx, filter).Decode(&template); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch template: %w", err)
	}
	return &template, nil
}

// GetByID retrieves one of the manager's templates, or nil when absent.
func (r *MongoTemplateRepo) GetByID(managerID, id string) (*models.ShiftTemplate, error) {
	return r.findOne(bson.M{"id": id, "created_by": managerID})
}

// GetByName retrieves one of the manager's templates by name,
// case-insensitively, or nil when absent.
func (r *MongoTemplateRepo) GetByName(managerID, name string) (*models.ShiftTemplate, error) {
	return r.findOne(bson.M{
		"created_by": managerID,
		"name": bson.M{
			"$regex":   "^" + regexp.QuoteMeta(name) + "$",
			"$options": "i",
		},
	})
}

// GetAll retrieves the manager's templates ordered by name.
func (r *MongoTemplateRepo) GetAll(managerID string) ([]models.ShiftTemplate, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"created_by": managerID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve templates: %w", err)
	}
	defer cursor.Close(ctx)

	var templates []models.ShiftTemplate
	for cursor.Next(ctx) {
		var t models.ShiftTemplate
		if err := cursor.Decode(&t); err != nil {
			return nil, fmt.Errorf("failed to decode template: %w", err)
		}
		templates = append(templates, t)
	}
	return templates, nil
}

// CountByPosition counts templates referencing a position.
func (r *MongoTemplateRepo) CountByPosition(positionID string) (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	count, err := r.coll.CountDocuments(ctx, bson.M{"position_id": positionID})
	if err != nil {
		return 0, fmt.Errorf("failed to count templates for position %s: %w", positionID, err)
	}
	return count, nil
}

// Create inserts a new template document.
func (r *MongoTemplateRepo) Create(template *models.ShiftTemplate) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	template.CreatedAt = now
	template.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, template); err != nil {
		return fmt.Errorf("failed to create template: %w", err)
	}
	return nil
}

// Update modifies an existing template document.
func (r *MongoTemplateRepo) Update(template *models.ShiftTemplate) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	template.UpdatedAt = time.Now()
	filter := bson.M{"id": template.ID, "created_by": template.CreatedBy}
	result, err := r.coll.UpdateOne(ctx, filter, bson.M{"$set": template})
	if err != nil {
		return fmt.Errorf("failed to update template with id %s: %w", template.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("template with id %s not found", template.ID)
	}
	return nil
}

// Delete removes one of the manager's templates by its ID.
func (r *MongoTemplateRepo) Delete(managerID, id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id, "created_by": managerID}
	result, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to delete template with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("template with id %s not found", id)
	}
	return nil
}
