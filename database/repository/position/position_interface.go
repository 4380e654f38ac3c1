package positionRepo

import (
	"shiftflow/models"
)

// PositionRepository defines methods for position data access.
type PositionRepository interface {
	// GetByID retrieves a position by its unique ID, or nil when absent.
	GetByID(id string) (*models.Position, error)
	// GetByName retrieves a position by name, case-insensitively, or nil
	// when absent. Used for uniqueness checks.
	GetByName(name string) (*models.Position, error)
	// GetAll retrieves every position ordered by name.
	GetAll() ([]models.Position, error)
	// GetActive retrieves active positions ordered by name.
	GetActive() ([]models.Position, error)
	// Create inserts a new position record.
	Create(position *models.Position) error
	// Update modifies an existing position record.
	Update(position *models.Position) error
	// Delete removes a position record by its ID.
	Delete(id string) error
}
