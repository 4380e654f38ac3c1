package client

import (
	"context"
	"net/url"

	"shiftflow/models"
)

// Positions fetches the manager's position list, name-ordered.
func (s *ManagerSchedule) Positions(ctx context.Context) ([]models.Position, error) {
	target, err := s.urlFor("positions")
	if err != nil {
		return nil, err
	}
	var result struct {
		Positions []models.Position `json:"positions"`
	}
	if err := s.client.getJSON(ctx, target, nil, &result); err != nil {
		return nil, err
	}
	return result.Positions, nil
}

func positionForm(name string, isActive bool) url.Values {
	form := url.Values{}
	form.Set("name", name)
	if isActive {
		form.Set("is_active", "1")
	}
	return form
}

// CreatePosition saves a new position and returns its id. Validation
// failures come back as an *APIError with field messages.
func (s *ManagerSchedule) CreatePosition(ctx context.Context, name string, isActive bool) (string, error) {
	target, err := s.urlFor("create_position")
	if err != nil {
		return "", err
	}
	var result struct {
		OK bool   `json:"ok"`
		ID string `json:"id"`
	}
	if err := s.client.postForm(ctx, target, positionForm(name, isActive), &result); err != nil {
		return "", err
	}
	return result.ID, nil
}

// UpdatePosition renames or (de)activates a position.
func (s *ManagerSchedule) UpdatePosition(ctx context.Context, id, name string, isActive bool) error {
	target, err := s.resourceURL("update_position", id)
	if err != nil {
		return err
	}
	return s.client.postForm(ctx, target, positionForm(name, isActive), nil)
}

// DeletePosition removes a position. The server refuses while employees,
// shifts, or templates still reference it.
func (s *ManagerSchedule) DeletePosition(ctx context.Context, id string) error {
	target, err := s.resourceURL("delete_position", id)
	if err != nil {
		return err
	}
	return s.client.postForm(ctx, target, nil, nil)
}

// Templates fetches the manager's quick-fill presets, name-ordered.
func (s *ManagerSchedule) Templates(ctx context.Context) ([]models.TemplatePayload, error) {
	target, err := s.urlFor("templates")
	if err != nil {
		return nil, err
	}
	var result struct {
		Templates []models.TemplatePayload `json:"templates"`
	}
	if err := s.client.getJSON(ctx, target, nil, &result); err != nil {
		return nil, err
	}
	return result.Templates, nil
}

// TemplateForm carries the template editor's fields.
type TemplateForm struct {
	Name       string
	PositionID string
	StartTime  string
	EndTime    string
	Capacity   string
}

func (f TemplateForm) values() url.Values {
	form := url.Values{}
	form.Set("name", f.Name)
	form.Set("position_id", f.PositionID)
	form.Set("start_time", f.StartTime)
	form.Set("end_time", f.EndTime)
	form.Set("capacity", f.Capacity)
	return form
}

// CreateTemplate saves a new template and returns its id.
func (s *ManagerSchedule) CreateTemplate(ctx context.Context, form TemplateForm) (string, error) {
	target, err := s.urlFor("create_template")
	if err != nil {
		return "", err
	}
	var result struct {
		OK bool   `json:"ok"`
		ID string `json:"id"`
	}
	if err := s.client.postForm(ctx, target, form.values(), &result); err != nil {
		return "", err
	}
	return result.ID, nil
}

// UpdateTemplate saves changes to a template.
func (s *ManagerSchedule) UpdateTemplate(ctx context.Context, id string, form TemplateForm) error {
	target, err := s.resourceURL("update_template", id)
	if err != nil {
		return err
	}
	return s.client.postForm(ctx, target, form.values(), nil)
}

// DeleteTemplate removes a template.
func (s *ManagerSchedule) DeleteTemplate(ctx context.Context, id string) error {
	target, err := s.resourceURL("delete_template", id)
	if err != nil {
		return err
	}
	return s.client.postForm(ctx, target, nil, nil)
}
