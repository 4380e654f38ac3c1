package employeeRepo

import (
	"shiftflow/models"
)

// EmployeeRepository defines methods for account data access. Both managers
// and employees live in the same collection, split by role.
type EmployeeRepository interface {
	// GetByID retrieves an account by its unique ID, or nil when absent.
	GetByID(id string) (*models.Employee, error)
	// GetByEmail retrieves an account by login email, or nil when absent.
	GetByEmail(email string) (*models.Employee, error)
	// GetByIDs retrieves accounts for the given ids.
	GetByIDs(ids []string) ([]models.Employee, error)
	// GetActiveEmployees retrieves active employee accounts ordered by
	// last then first name.
	GetActiveEmployees() ([]models.Employee, error)
	// Search retrieves employee accounts matching a free-text query
	// (employee id, names, email, phone; case-insensitive) and an optional
	// position filter, ordered by last then first name.
	Search(query, positionID string) ([]models.Employee, error)
	// CountByPosition counts employee accounts holding a position.
	CountByPosition(positionID string) (int64, error)
	// Create inserts a new account record.
	Create(employee *models.Employee) error
	// Update modifies an existing account record.
	Update(employee *models.Employee) error
	// Delete removes an account record by its ID.
	Delete(id string) error
}
