package employee

import (
	employeeRepo "shiftflow/database/repository/employee"
	positionRepo "shiftflow/database/repository/position"
	shiftRepo "shiftflow/database/repository/shift"
	unavailabilityRepo "shiftflow/database/repository/unavailability"
	"shiftflow/models"
)

// EmployeeInput carries the raw create/update form fields. All values
// arrive as strings so validation owns parsing and messages.
type EmployeeInput struct {
	FullName   string
	Email      string
	Phone      string
	PositionID string
}

// EmployeeService manages accounts: login checks, the manager's employee
// directory, and the demo dataset.
type EmployeeService interface {
	// Authenticate verifies a login/password pair against an active
	// account. Wrong login, wrong password, and disabled accounts are
	// indistinguishable: all return ErrInvalidLogin.
	Authenticate(login, password string) (*models.Employee, error)
	// GetByID retrieves an account, or ErrEmployeeNotFound.
	GetByID(id string) (*models.Employee, error)

	// Directory lists employee accounts matching a free-text query and an
	// optional position filter, ordered by last then first name.
	Directory(query, positionID string) ([]models.EmployeeSummary, error)
	// EmployeeDetails returns the edit-form payload for one employee.
	EmployeeDetails(id string) (*models.EmployeeDetails, error)
	// CreateEmployee validates the input and creates an employee account
	// with a generated badge number and temporary password. The
	// credentials are returned exactly once.
	CreateEmployee(input EmployeeInput) (*models.Employee, models.OneTimeCredentials, error)
	// UpdateEmployee validates the input and applies it to an existing
	// employee account, returning the refreshed directory row.
	UpdateEmployee(id string, input EmployeeInput) (*models.EmployeeSummary, error)
	// ResetPassword replaces an employee's password with a fresh temporary
	// one and returns the one-time credentials.
	ResetPassword(id string) (models.OneTimeCredentials, error)
	// DeleteEmployee removes the account together with its assignments and
	// unavailability marks, returning the display name for the flash.
	DeleteEmployee(id string) (string, error)

	// EnsureDemoData idempotently seeds the demo positions, accounts and
	// shifts, then returns the demo account for the requested role.
	EnsureDemoData(role string) (*models.Employee, error)

	// RegisterDeviceToken stores the caller's push token.
	RegisterDeviceToken(userID, token string) error
	// SetAvatarURL stores the caller's uploaded avatar location.
	SetAvatarURL(userID, url string) error
}

// DefaultEmployeeService is the production implementation.
type DefaultEmployeeService struct {
	EmployeeRepo       employeeRepo.EmployeeRepository
	PositionRepo       positionRepo.PositionRepository
	ShiftRepo          shiftRepo.ShiftRepository
	UnavailabilityRepo unavailabilityRepo.UnavailabilityRepository
}
