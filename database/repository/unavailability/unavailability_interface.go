package unavailabilityRepo

import (
	"shiftflow/models"
)

// UnavailabilityRepository defines methods for unavailability data access.
// Records are one per (employee, date).
type UnavailabilityRepository interface {
	// Get retrieves the record for an employee and date, or nil when absent.
	Get(employeeID, date string) (*models.Unavailability, error)
	// Create inserts a new record.
	Create(record *models.Unavailability) error
	// Delete removes the record for an employee and date.
	Delete(employeeID, date string) error
	// DatesForEmployee retrieves the dates an employee marked unavailable
	// within inclusive bounds, sorted ascending.
	DatesForEmployee(employeeID, dateFrom, dateTo string) ([]string, error)
	// UnavailableOn reports which of the given employees are unavailable
	// on a date.
	UnavailableOn(date string, employeeIDs []string) ([]string, error)
	// FindInRange retrieves every record within inclusive date bounds.
	FindInRange(dateFrom, dateTo string) ([]models.Unavailability, error)
	// DeleteForEmployee removes all records for an employee.
	DeleteForEmployee(employeeID string) error
}
