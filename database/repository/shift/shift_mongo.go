package shiftRepo

import (
	"context"
	"fmt"
	"time"

	"shiftflow/database"
	"shiftflow/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoShiftRepo implements ShiftRepository using MongoDB.
type MongoShiftRepo struct {
	coll *mongo.Collection
}

// NewMongoShiftRepo creates a new instance of ShiftRepository using MongoDB.
func NewMongoShiftRepo() ShiftRepository {
	coll := database.Collection("shifts")
	repo := &MongoShiftRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoShiftRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "created_by", Value: 1}, {Key: "date", Value: 1}}},
		{Keys: bson.D{{Key: "assigned_employee_ids", Value: 1}, {Key: "date", Value: 1}}},
		{Keys: bson.D{{Key: "position_id", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new shift document.
func (r *MongoShiftRepo) Create(shift *models.Shift) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	shift.CreatedAt = now
	shift.UpdatedAt = now
	if shift.AssignedEmployeeIDs == nil {
		shift.AssignedEmployeeIDs = []string{}
	}

	_, err := r.coll.InsertOne(ctx, shift)
	if err != nil {
		return fmt.Errorf("failed to create shift: %w", err)
	}
	return nil
}

// Update modifies an existing shift document.
func (r *MongoShiftRepo) Update(shift *models.Shift) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	shift.UpdatedAt = time.Now()
	if shift.AssignedEmployeeIDs == nil {
		shift.AssignedEmployeeIDs = []string{}
	}
	filter := bson.M{"id": shift.ID}
	update := bson.M{"$set": shift}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update shift with id %s: %w", shift.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("shift with id %s not found", shift.ID)
	}
	return nil
}

// GetByID retrieves one of the manager's active shifts, or nil when absent.
func (r *MongoShiftRepo) GetByID(managerID, id string) (*models.Shift, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id, "created_by": managerID, "is_deleted": false}
	var shift models.Shift
	if err := r.coll.FindOne(ctx, filter).Decode(&shift); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch shift with id %s: %w", id, err)
	}
	return &shift, nil
}

// GetActiveByID retrieves a shift by id regardless of owner, or nil when
// absent or soft-deleted.
func (r *MongoShiftRepo) GetActiveByID(id string) (*models.Shift, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id, "is_deleted": false}
	var shift models.Shift
	if err := r.coll.FindOne(ctx, filter).Decode(&shift); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch shift with id %s: %w", id, err)
	}
	return &shift, nil
}

// SetStatus moves the given shifts to a workflow status.
func (r *MongoShiftRepo) SetStatus(managerID string, ids []string, status string) (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{
		"id":         bson.M{"$in": ids},
		"created_by": managerID,
		"is_deleted": false,
	}
	update := bson.M{"$set": bson.M{"status": status, "updated_at": time.Now()}}
	result, err := r.coll.UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, fmt.Errorf("failed to set shift status: %w", err)
	}
	return result.ModifiedCount, nil
}

// SoftDelete marks the given shifts deleted.
func (r *MongoShiftRepo) SoftDelete(managerID string, ids []string) (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{
		"id":         bson.M{"$in": ids},
		"created_by": managerID,
		"is_deleted": false,
	}
	update := bson.M{"$set": bson.M{"is_deleted": true, "updated_at": time.Now()}}
	result, err := r.coll.UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, fmt.Errorf("failed to delete shifts: %w", err)
	}
	return result.ModifiedCount, nil
}

// Restore clears the deleted mark on the given shifts.
func (r *MongoShiftRepo) Restore(managerID string, ids []string) (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{
		"id":         bson.M{"$in": ids},
		"created_by": managerID,
		"is_deleted": true,
	}
	update := bson.M{"$set": bson.M{"is_deleted": false, "updated_at": time.Now()}}
	result, err := r.coll.UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, fmt.Errorf("failed to restore shifts: %w", err)
	}
	return result.ModifiedCount, nil
}

// RemoveEmployeeFromAll drops an employee from every assignment list.
func (r *MongoShiftRepo) RemoveEmployeeFromAll(employeeID string) error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{"assigned_employee_ids": employeeID}
	update := bson.M{"$pull": bson.M{"assigned_employee_ids": employeeID}}
	if _, err := r.coll.UpdateMany(ctx, filter, update); err != nil {
		return fmt.Errorf("failed to unassign employee %s: %w", employeeID, err)
	}
	return nil
}
