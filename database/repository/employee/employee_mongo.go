package employeeRepo

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

// MongoEmployeeRepo implements EmployeeRepository using MongoDB.
type MongoEmployeeRepo struct {
	coll *mongo.Collection
}

// NewMongoEmployeeRepo creates a new instance of EmployeeRepository using MongoDB.
func NewMongoEmployeeRepo() EmployeeRepository {
	coll := database.Collection("users")
	repo := &MongoEmployeeRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoEmployeeRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "employee_id", Value: 1}}},
		{Keys: bson.D{{Key: "role", Value: 1}, {Key: "last_name", Value: 1}, {Key: "first_name", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

var nameSort = bson.D{
	{Key: "last_name", Value: 1},
	{Key: "first_name", Value: 1},
	{Key: "id", Value: 1},
}

func (r *MongoEmployeeRepo) findOne(filter bson.M) (*models.Employee, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var employee models.Employee
	if err := r.coll.FindOne(ctx, filter).Decode(&employee); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch account: %w", err)
	}
	return &employee, nil
}

func (r *MongoEmployeeRepo) find(filter bson.M) ([]models.Employee, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(nameSort)
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve accounts: %w", err)
	}
	defer cursor.Close(ctx)

	var employees []models.Employee
	for cursor.Next(ctx) {
		var e models.Employee
		if err := cursor.Decode(&e); err != nil {
			return nil, fmt.Errorf("failed to decode account: %w", err)
		}
		employees = append(employees, e)
	}
	return employees, nil
}

// GetByID retrieves an account by its unique ID, or nil when absent.
func (r *MongoEmployeeRepo) GetByID(id string) (*models.Employee, error) {
	return r.findOne(bson.M{"id": id})
}

// GetByEmail retrieves an account by login email, or nil when absent.
func (r *MongoEmployeeRepo) GetByEmail(email string) (*models.Employee, error) {
	return r.findOne(bson.M{"email": email})
}

// GetByIDs retrieves accounts for the given ids.
func (r *MongoEmployeeRepo) GetByIDs(ids []string) ([]models.Employee, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	return r.find(bson.M{"id": bson.M{"$in": ids}})
}

// GetActiveEmployees retrieves active employee accounts ordered by last
// then first name.
func (r *MongoEmployeeRepo) GetActiveEmployees() ([]models.Employee, error) {
	return r.find(bson.M{"role": models.RoleEmployee, "is_active": true})
}

// Search retrieves employee accounts for the directory listing.
func (r *MongoEmployeeRepo) Search(query, positionID string) ([]models.Employee, error) {
	filter := bson.M{"role": models.RoleEmployee}
	if positionID != "" {
		filter["position_id"] = positionID
	}
	if query != "" {
		pattern := bson.M{"$regex": regexp.QuoteMeta(query), "$options": "i"}
		filter["$or"] = bson.A{
			bson.M{"employee_id": pattern},
			bson.M{"first_name": pattern},
			bson.M{"last_name": pattern},
			bson.M{"email": pattern},
			bson.M{"phone": pattern},
		}
	}
	return r.find(filter)
}

// CountByPosition counts employee accounts holding a position.
func (r *MongoEmployeeRepo) CountByPosition(positionID string) (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	count, err := r.coll.CountDocuments(ctx, bson.M{"position_id": positionID})
	if err != nil {
		return 0, fmt.Errorf("failed to count accounts for position %s: %w", positionID, err)
	}
	return count, nil
}

// Create inserts a new account document.
func (r *MongoEmployeeRepo) Create(employee *models.Employee) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	employee.CreatedAt = now
	employee.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, employee); err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}
	return nil
}

// Update modifies an existing account document.
func (r *MongoEmployeeRepo) Update(employee *models.Employee) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	employee.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": employee.ID}, bson.M{"$set": employee})
	if err != nil {
		return fmt.Errorf("failed to update account with id %s: %w", employee.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("account with id %s not found", employee.ID)
	}
	return nil
}

// Delete removes an account document by its ID.
func (r *MongoEmployeeRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete account with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("account with id %s not found", id)
	}
	return nil
}
