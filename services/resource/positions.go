package resource

import (
	"strings"

	"shiftflow/models"
	"shiftflow/utils"

	"github.com/google/uuid"
)

// ListPositions retrieves every position ordered by name.
func (s *DefaultResourceService) ListPositions() ([]models.Position, error) {
	return s.PositionRepo.GetAll()
}

// validatePositionName trims and checks the name. excludeID skips the
// uniqueness check against the position being updated.
func (s *DefaultResourceService) validatePositionName(name, excludeID string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", utils.FieldError("name", "This field is required.")
	}
	if len([]rune(name)) > models.MaxPositionNameLen {
		return "", utils.FieldError("name", "Position name must be max 25 characters.")
	}
	existing, err := s.PositionRepo.GetByName(name)
	if err != nil {
		return "", err
	}
	if existing != nil && existing.ID != excludeID {
		return "", utils.FieldError("name", "Position with this name already exists.")
	}
	return name, nil
}

// CreatePosition validates and inserts a position.
func (s *DefaultResourceService) CreatePosition(name string, isActive bool) (*models.Position, error) {
	cleaned, err := s.validatePositionName(name, "")
	if err != nil {
		return nil, err
	}
	position := &models.Position{
		ID:       uuid.New().String(),
		Name:     cleaned,
		IsActive: isActive,
	}
	if err := s.PositionRepo.Create(position); err != nil {
		return nil, err
	}
	return position, nil
}

// UpdatePosition validates and saves an existing position.
func (s *DefaultResourceService) UpdatePosition(id, name string, isActive bool) (*models.Position, error) {
	position, err := s.PositionRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if position == nil {
		return nil, ErrPositionNotFound
	}

	cleaned, err := s.validatePositionName(name, id)
	if err != nil {
		return nil, err
	}
	position.Name = cleaned
	position.IsActive = isActive
	if err := s.PositionRepo.Update(position); err != nil {
		return nil, err
	}
	return position, nil
}

// DeletePosition removes a position unless employees, shifts, or templates
// still reference it.
func (s *DefaultResourceService) DeletePosition(id string) error {
	position, err := s.PositionRepo.GetByID(id)
	if err != nil {
		return err
	}
	if position == nil {
		return ErrPositionNotFound
	}

	employees, err := s.EmployeeRepo.CountByPosition(id)
	if err != nil {
		return err
	}
	if employees > 0 {
		return &ProtectedError{Message: "Cannot delete position: employees are assigned."}
	}

	shifts, err := s.ShiftRepo.CountByPosition(id)
	if err != nil {
		return err
	}
	if shifts > 0 {
		return &ProtectedError{Message: "Cannot delete position: shifts are using this position."}
	}

	templates, err := s.TemplateRepo.CountByPosition(id)
	if err != nil {
		return err
	}
	if templates > 0 {
		return &ProtectedError{Message: "Cannot delete role: it is referenced by existing data."}
	}

	return s.PositionRepo.Delete(id)
}
