package shiftRepo

import (
	"shiftflow/models"
)

// Filter narrows calendar queries. ManagerID is required: managers only
// ever see their own shifts. Dates are inclusive "2006-01-02" bounds.
type Filter struct {
	ManagerID    string
	DateFrom     string
	DateTo       string
	PositionIDs  []string
	Status       string
	Understaffed bool
}

// ShiftRepository defines methods for shift data access. All reads exclude
// soft-deleted shifts unless the method says otherwise.
type ShiftRepository interface {
	// Create inserts a new shift record.
	Create(shift *models.Shift) error
	// Update modifies an existing shift record.
	Update(shift *models.Shift) error
	// GetByID retrieves one of the manager's shifts, or nil when absent.
	GetByID(managerID, id string) (*models.Shift, error)
	// GetActiveByID retrieves a shift by id regardless of owner, or nil
	// when absent or soft-deleted. Used by the reminder worker.
	GetActiveByID(id string) (*models.Shift, error)
	// Find retrieves shifts matching the filter, ordered by date, start
	// time, then id.
	Find(filter Filter) ([]models.Shift, error)
	// FindByIDs retrieves the manager's shifts among the given ids.
	FindByIDs(managerID string, ids []string) ([]models.Shift, error)
	// SetStatus moves the given shifts to a workflow status, returning how
	// many changed.
	SetStatus(managerID string, ids []string, status string) (int64, error)
	// SoftDelete marks the given shifts deleted, returning how many changed.
	SoftDelete(managerID string, ids []string) (int64, error)
	// Restore clears the deleted mark on the given shifts.
	Restore(managerID string, ids []string) (int64, error)

	// FindAssignedInRange retrieves published shifts assigned to an
	// employee within inclusive date bounds.
	FindAssignedInRange(employeeID, dateFrom, dateTo string) ([]models.Shift, error)
	// FindOnDateForEmployees retrieves active shifts on a date that have any
	// of the given employees assigned, regardless of status.
	FindOnDateForEmployees(date string, employeeIDs []string) ([]models.Shift, error)

	// CountByPosition counts shifts referencing a position, including
	// soft-deleted ones (used by the position delete guard).
	CountByPosition(positionID string) (int64, error)
	// CountByManager counts shifts a manager has ever created, including
	// soft-deleted ones.
	CountByManager(managerID string) (int64, error)
	// RemoveEmployeeFromAll drops an employee from every assignment list.
	RemoveEmployeeFromAll(employeeID string) error
}
