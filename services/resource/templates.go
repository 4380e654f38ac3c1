package resource

import (
	"strconv"
	"strings"
	"time"

	"shiftflow/layout"
	"shiftflow/models"
	"shiftflow/utils"

	"github.com/google/uuid"
)

// ListTemplates retrieves the manager's templates with position names.
func (s *DefaultResourceService) ListTemplates(managerID string) ([]models.TemplatePayload, error) {
	templates, err := s.TemplateRepo.GetAll(managerID)
	if err != nil {
		return nil, err
	}
	positions, err := s.PositionRepo.GetAll()
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(positions))
	for _, p := range positions {
		names[p.ID] = p.Name
	}

	payloads := make([]models.TemplatePayload, 0, len(templates))
	for _, t := range templates {
		payloads = append(payloads, models.TemplatePayload{
			ID:         t.ID,
			Name:       t.Name,
			PositionID: t.PositionID,
			Position:   names[t.PositionID],
			StartTime:  t.StartTime,
			EndTime:    t.EndTime,
			Capacity:   t.Capacity,
		})
	}
	return payloads, nil
}

// validateTemplateInput checks and normalizes a template save. excludeID
// skips the name-uniqueness check against the template being updated.
func (s *DefaultResourceService) validateTemplateInput(managerID string, input TemplateInput, excludeID string) (models.ShiftTemplate, error) {
	var data models.ShiftTemplate

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return data, utils.FieldError("name", "This field is required.")
	}
	existing, err := s.TemplateRepo.GetByName(managerID, name)
	if err != nil {
		return data, err
	}
	if existing != nil && existing.ID != excludeID {
		return data, utils.FieldError("name", "Template with this name already exists.")
	}
	data.Name = name

	positionID := strings.TrimSpace(input.PositionID)
	if positionID == "" {
		return data, utils.FieldError("position_id", "This field is required.")
	}
	position, err := s.PositionRepo.GetByID(positionID)
	if err != nil {
		return data, err
	}
	if position == nil {
		return data, utils.FieldError("position_id", "Select a valid position.")
	}
	data.PositionID = position.ID

	start, err := time.Parse(utils.TimeLayout, strings.TrimSpace(input.StartTime))
	if err != nil {
		return data, utils.FieldError("start_time", "Enter a valid time.")
	}
	end, err := time.Parse(utils.TimeLayout, strings.TrimSpace(input.EndTime))
	if err != nil {
		return data, utils.FieldError("end_time", "Enter a valid time.")
	}
	data.StartTime = start.Format(utils.TimeLayout)
	data.EndTime = end.Format(utils.TimeLayout)
	if layout.ClockMinutes(data.StartTime) >= layout.ClockMinutes(data.EndTime) {
		return data, utils.FieldError("end_time", "End time must be after start time.")
	}

	capacity, convErr := strconv.Atoi(strings.TrimSpace(input.Capacity))
	if convErr != nil {
		return data, utils.FieldError("capacity", "Enter a valid whole number.")
	}
	if capacity < 1 {
		return data, utils.FieldError("capacity", "Must be at least 1.")
	}
	data.Capacity = capacity

	return data, nil
}

// CreateTemplate validates and inserts a template for the manager.
func (s *DefaultResourceService) CreateTemplate(managerID string, input TemplateInput) (*models.ShiftTemplate, error) {
	data, err := s.validateTemplateInput(managerID, input, "")
	if err != nil {
		return nil, err
	}
	template := &models.ShiftTemplate{
		ID:         uuid.New().String(),
		Name:       data.Name,
		PositionID: data.PositionID,
		StartTime:  data.StartTime,
		EndTime:    data.EndTime,
		Capacity:   data.Capacity,
		CreatedBy:  managerID,
	}
	if err := s.TemplateRepo.Create(template); err != nil {
		return nil, err
	}
	return template, nil
}

// UpdateTemplate validates and saves one of the manager's templates.
func (s *DefaultResourceService) UpdateTemplate(managerID, templateID string, input TemplateInput) (*models.ShiftTemplate, error) {
	template, err := s.TemplateRepo.GetByID(managerID, templateID)
	if err != nil {
		return nil, err
	}
	if template == nil {
		return nil, ErrTemplateNotFound
	}

	data, err := s.validateTemplateInput(managerID, input, templateID)
	if err != nil {
		return nil, err
	}
	template.Name = data.Name
	template.PositionID = data.PositionID
	template.StartTime = data.StartTime
	template.EndTime = data.EndTime
	template.Capacity = data.Capacity
	if err := s.TemplateRepo.Update(template); err != nil {
		return nil, err
	}
	return template, nil
}

// DeleteTemplate removes one of the manager's templates.
func (s *DefaultResourceService) DeleteTemplate(managerID, templateID string) error {
	template, err := s.TemplateRepo.GetByID(managerID, templateID)
	if err != nil {
		return err
	}
	if template == nil {
		return ErrTemplateNotFound
	}
	return s.TemplateRepo.Delete(managerID, templateID)
}
