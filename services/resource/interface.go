package resource

import (
	employeeRepo "shiftflow/database/repository/employee"
	positionRepo "shiftflow/database/repository/position"
	shiftRepo "shiftflow/database/repository/shift"
	templateRepo "shiftflow/database/repository/template"
	"shiftflow/models"
)

// TemplateInput carries raw form values for a template save.
type TemplateInput struct {
	Name       string
	PositionID string
	StartTime  string
	EndTime    string
	Capacity   string
}

// ResourceService manages positions and the manager's shift templates.
type ResourceService interface {
	// ListPositions retrieves every position ordered by name.
	ListPositions() ([]models.Position, error)
	// CreatePosition validates and inserts a position.
	CreatePosition(name string, isActive bool) (*models.Position, error)
	// UpdatePosition validates and saves an existing position.
	UpdatePosition(id, name string, isActive bool) (*models.Position, error)
	// DeletePosition removes a position unless employees, shifts, or
	// templates still reference it.
	DeletePosition(id string) error

	// ListTemplates retrieves the manager's templates with position names.
	ListTemplates(managerID string) ([]models.TemplatePayload, error)
	// CreateTemplate validates and inserts a template for the manager.
	CreateTemplate(managerID string, input TemplateInput) (*models.ShiftTemplate, error)
	// UpdateTemplate validates and saves one of the manager's templates.
	UpdateTemplate(managerID, templateID string, input TemplateInput) (*models.ShiftTemplate, error)
	// DeleteTemplate removes one of the manager's templates.
	DeleteTemplate(managerID, templateID string) error
}

// DefaultResourceService is the production implementation.
type DefaultResourceService struct {
	PositionRepo positionRepo.PositionRepository
	TemplateRepo templateRepo.TemplateRepository
	ShiftRepo    shiftRepo.ShiftRepository
	EmployeeRepo employeeRepo.EmployeeRepository
}
