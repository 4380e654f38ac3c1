package unavailabilityRepo

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

// MongoUnavailabilityRepo implements UnavailabilityRepository using MongoDB.
type MongoUnavailabilityRepo struct {
	coll *mongo.Collection
}

// NewMongoUnavailabilityRepo creates a new instance of UnavailabilityRepository using MongoDB.
func NewMongoUnavailabilityRepo() UnavailabilityRepository {
	coll := database.Collection("unavailability")
	repo := &MongoUnavailabilityRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoUnavailabilityRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "employee_id", Value: 1}, {Key: "date", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "date", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Get retrieves the record for an employee and date, or nil when absent.
func (r *MongoUnavailabilityRepo) Get(employeeID, date string) (*models.Unavailability, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"employee_id": employeeID, "date": date}
	var record models.Unavailability
	if err := r.coll.FindOne(ctx, filter).Decode(&record); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch unavailability: %w", err)
	}
	return &record, nil
}

// Create inserts a new record.
func (r *MongoUnavailabilityRepo) Create(record *models.Unavailability) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	record.CreatedAt = time.Now()
	if _, err := r.coll.InsertOne(ctx, record); err != nil {
		return fmt.Errorf("failed to create unavailability: %w", err)
	}
	return nil
}

// Delete removes the record for an employee and date.
func (r *MongoUnavailabilityRepo) Delete(employeeID, date string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"employee_id": employeeID, "date": date}
	if _, err := r.coll.DeleteOne(ctx, filter); err != nil {
		return fmt.Errorf("failed to delete unavailability: %w", err)
	}
	return nil
}

// DatesForEmployee retrieves the dates an employee marked unavailable
// within inclusive bounds, sorted ascending.
func (r *MongoUnavailabilityRepo) DatesForEmployee(employeeID, dateFrom, dateTo string) ([]string, error) {
	records, err := r.findSorted(bson.M{
		"employee_id": employeeID,
		"date":        bson.M{"$gte": dateFrom, "$lte": dateTo},
	})
	if err != nil {
		return nil, err
	}
	dates := make([]string, 0, len(records))
	for _, record := range records {
		dates = append(dates, record.Date)
	}
	return dates, nil
}

// UnavailableOn reports which of the given employees are unavailable on a
// date.
func (r *MongoUnavailabilityRepo) UnavailableOn(date string, employeeIDs []string) ([]string, error) {
	if len(employeeIDs) == 0 {
		return nil, nil
	}
	records, err := r.findSorted(bson.M{
		"date":        date,
		"employee_id": bson.M{"$in": employeeIDs},
	})
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(records))
	for _, record := range records {
		ids = append(ids, record.EmployeeID)
	}
	return ids, nil
}

// FindInRange retrieves every record within inclusive date bounds.
func (r *MongoUnavailabilityRepo) FindInRange(dateFrom, dateTo string) ([]models.Unavailability, error) {
	return r.findSorted(bson.M{"date": bson.M{"$gte": dateFrom, "$lte": dateTo}})
}

// DeleteForEmployee removes all records for an employee.
func (r *MongoUnavailabilityRepo) DeleteForEmployee(employeeID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.DeleteMany(ctx, bson.M{"employee_id": employeeID}); err != nil {
		return fmt.Errorf("failed to delete unavailability for employee %s: %w", employeeID, err)
	}
	return nil
}

func (r *MongoUnavailabilityRepo) findSorted(filter bson.M) ([]models.Unavailability, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "employee_id", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve unavailability: %w", err)
	}
	defer cursor.Close(ctx)

	var records []models.Unavailability
	for cursor.Next(ctx) {
		var record models.Unavailability
		if err := cursor.Decode(&record); err != nil {
			return nil, fmt.Errorf("failed to decode unavailability: %w", err)
		}
		records = append(records, record)
	}
	return records, nil
}
