package templateRepo

import (
	"shiftflow/models"
)

// TemplateRepository defines methods for shift-template data access.
// Templates are private to the manager who created them.
type TemplateRepository interface {
	// GetByID retrieves one of the manager's templates, or nil when absent.
	GetByID(managerID, id string) (*models.ShiftTemplate, error)
	// GetByName retrieves one of the manager's templates by name,
	// case-insensitively, or nil when absent.
	GetByName(managerID, name string) (*models.ShiftTemplate, error)
	// GetAll retrieves the manager's templates ordered by name.
	GetAll(managerID string) ([]models.ShiftTemplate, error)
	// CountByPosition counts templates referencing a position, across all
	// managers.
	CountByPosition(positionID string) (int64, error)
	// Create inserts a new template record.
	Create(template *models.ShiftTemplate) error
	// Update modifies an existing template record.
	Update(template *models.ShiftTemplate) error
	// Delete removes one of the manager's templates by its ID.
	Delete(managerID, id string) error
}
