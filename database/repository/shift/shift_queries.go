package shiftRepo

import (
	"context"
	"fmt"
	"time"

	"shiftflow/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var calendarSort = bson.D{
	{Key: "date", Value: 1},
	{Key: "start_time", Value: 1},
	{Key: "id", Value: 1},
}

func (r *MongoShiftRepo) findSorted(ctx context.Context, filter bson.M) ([]models.Shift, error) {
	opts := options.Find().SetSort(calendarSort)
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve shifts: %w", err)
	}
	defer cursor.Close(ctx)

	var shifts []models.Shift
	for cursor.Next(ctx) {
		var s models.Shift
		if err := cursor.Decode(&s); err != nil {
			return nil, fmt.Errorf("failed to decode shift: %w", err)
		}
		shifts = append(shifts, s)
	}
	return shifts, nil
}

// Find retrieves the manager's active shifts matching the filter.
func (r *MongoShiftRepo) Find(filter Filter) ([]models.Shift, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	query := bson.M{
		"created_by": filter.ManagerID,
		"is_deleted": false,
	}
	if filter.DateFrom != "" || filter.DateTo != "" {
		dateRange := bson.M{}
		if filter.DateFrom != "" {
			dateRange["$gte"] = filter.DateFrom
		}
		if filter.DateTo != "" {
			dateRange["$lte"] = filter.DateTo
		}
		query["date"] = dateRange
	}
	if len(filter.PositionIDs) > 0 {
		query["position_id"] = bson.M{"$in": filter.PositionIDs}
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.Understaffed {
		query["$expr"] = bson.M{"$lt": bson.A{
			bson.M{"$size": bson.M{"$ifNull": bson.A{"$assigned_employee_ids", bson.A{}}}},
			"$capacity",
		}}
	}

	return r.findSorted(ctx, query)
}

// FindByIDs retrieves the manager's active shifts among the given ids.
func (r *MongoShiftRepo) FindByIDs(managerID string, ids []string) ([]models.Shift, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	query := bson.M{
		"id":         bson.M{"$in": ids},
		"created_by": managerID,
		"is_deleted": false,
	}
	return r.findSorted(ctx, query)
}

// FindAssignedInRange retrieves published shifts assigned to an employee
// within inclusive date bounds.
func (r *MongoShiftRepo) FindAssignedInRange(employeeID, dateFrom, dateTo string) ([]models.Shift, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	query := bson.M{
		"assigned_employee_ids": employeeID,
		"status":                models.ShiftStatusPublished,
		"is_deleted":            false,
		"date":                  bson.M{"$gte": dateFrom, "$lte": dateTo},
	}
	return r.findSorted(ctx, query)
}

// FindOnDateForEmployees retrieves active shifts on a date that have any of
// the given employees assigned, in any workflow status. Used by overlap
// validation.
func (r *MongoShiftRepo) FindOnDateForEmployees(date string, employeeIDs []string) ([]models.Shift, error) {
	if len(employeeIDs) == 0 {
		return nil, nil
	}
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	query := bson.M{
		"date":                  date,
		"is_deleted":            false,
		"assigned_employee_ids": bson.M{"$in": employeeIDs},
	}
	return r.findSorted(ctx, query)
}

// CountByPosition counts shifts referencing a position, including
// soft-deleted ones.
func (r *MongoShiftRepo) CountByPosition(positionID string) (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	count, err := r.coll.CountDocuments(ctx, bson.M{"position_id": positionID})
	if err != nil {
		return 0, fmt.Errorf("failed to count shifts for position %s: %w", positionID, err)
	}
	return count, nil
}

// CountByManager counts shifts a manager has ever created, including
// soft-deleted ones.
func (r *MongoShiftRepo) CountByManager(managerID string) (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	count, err := r.coll.CountDocuments(ctx, bson.M{"created_by": managerID})
	if err != nil {
		return 0, fmt.Errorf("failed to count shifts for manager %s: %w", managerID, err)
	}
	return count, nil
}
