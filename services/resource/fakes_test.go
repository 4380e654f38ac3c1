package resource_test

import (
	"sort"
	"strings"

	employeeRepo "shiftflow/database/repository/employee"
	positionRepo "shiftflow/database/repository/position"
	shiftRepo "shiftflow/database/repository/shift"
	templateRepo "shiftflow/database/repository/template"
	"shiftflow/models"
	"shiftflow/services/resource"
)

const managerID = "mgr-1"

// memPositionRepo is an in-memory PositionRepository.
type memPositionRepo struct {
	positions []models.Position
}

var _ positionRepo.PositionRepository = (*memPositionRepo)(nil)

func (r *memPositionRepo) GetByID(id string) (*models.Position, error) {
	for _, p := range r.positions {
		if p.ID == id {
			out := p
			return &out, nil
		}
	}
	return nil, nil
}

func (r *memPositionRepo) GetByName(name string) (*models.Position, error) {
	for _, p := range r.positions {
		if strings.EqualFold(p.Name, name) {
			out := p
			return &out, nil
		}
	}
	return nil, nil
}

func (r *memPositionRepo) GetAll() ([]models.Position, error) {
	out := append([]models.Position(nil), r.positions...)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *memPositionRepo) GetActive() ([]models.Position, error) {
	var out []models.Position
	for _, p := range r.positions {
		if p.IsActive {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *memPositionRepo) Create(position *models.Position) error {
	r.positions = append(r.positions, *position)
	return nil
}

func (r *memPositionRepo) Update(position *models.Position) error {
	for i, p := range r.positions {
		if p.ID == position.ID {
			r.positions[i] = *position
		}
	}
	return nil
}

func (r *memPositionRepo) Delete(id string) error {
	var kept []models.Position
	for _, p := range r.positions {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	r.positions = kept
	return nil
}

// memTemplateRepo is an in-memory TemplateRepository.
type memTemplateRepo struct {
	templates []models.ShiftTemplate
}

var _ templateRepo.TemplateRepository = (*memTemplateRepo)(nil)

func (r *memTemplateRepo) GetByID(ownerID, id string) (*models.ShiftTemplate, error) {
	for _, t := range r.templates {
		if t.ID == id && t.CreatedBy == ownerID {
			out := t
			return &out, nil
		}
	}
	return nil, nil
}

func (r *memTemplateRepo) GetByName(ownerID, name string) (*models.ShiftTemplate, error) {
	for _, t := range r.templates {
		if t.CreatedBy == ownerID && strings.EqualFold(t.Name, name) {
			out := t
			return &out, nil
		}
	}
	return nil, nil
}

func (r *memTemplateRepo) GetAll(ownerID string) ([]models.ShiftTemplate, error) {
	var out []models.ShiftTemplate
	for _, t := range r.templates {
		if t.CreatedBy == ownerID {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *memTemplateRepo) CountByPosition(positionID string) (int64, error) {
	var count int64
	for _, t := range r.templates {
		if t.PositionID == positionID {
			count++
		}
	}
	return count, nil
}

func (r *memTemplateRepo) Create(template *models.ShiftTemplate) error {
	r.templates = append(r.templates, *template)
	return nil
}

func (r *memTemplateRepo) Update(template *models.ShiftTemplate) error {
	for i, t := range r.templates {
		if t.ID == template.ID {
			r.templates[i] = *template
		}
	}
	return nil
}

func (r *memTemplateRepo) Delete(ownerID, id string) error {
	var kept []models.ShiftTemplate
	for _, t := range r.templates {
		if t.ID != id || t.CreatedBy != ownerID {
			kept = append(kept, t)
		}
	}
	r.templates = kept
	return nil
}

// countStubShiftRepo serves only the delete guard's CountByPosition; the
// embedded nil interface panics on anything else.
type countStubShiftRepo struct {
	shiftRepo.ShiftRepository
	byPosition map[string]int64
}

func (r countStubShiftRepo) CountByPosition(positionID string) (int64, error) {
	return r.byPosition[positionID], nil
}

type countStubEmployeeRepo struct {
	employeeRepo.EmployeeRepository
	byPosition map[string]int64
}

func (r countStubEmployeeRepo) CountByPosition(positionID string) (int64, error) {
	return r.byPosition[positionID], nil
}

type fixture struct {
	positions      *memPositionRepo
	templates      *memTemplateRepo
	shiftCounts    map[string]int64
	employeeCounts map[string]int64
	svc            *resource.DefaultResourceService
}

func newFixture() *fixture {
	f := &fixture{
		positions:      &memPositionRepo{},
		templates:      &memTemplateRepo{},
		shiftCounts:    map[string]int64{},
		employeeCounts: map[string]int64{},
	}
	f.svc = &resource.DefaultResourceService{
		PositionRepo: f.positions,
		TemplateRepo: f.templates,
		ShiftRepo:    countStubShiftRepo{byPosition: f.shiftCounts},
		EmployeeRepo: countStubEmployeeRepo{byPosition: f.employeeCounts},
	}
	return f
}

func (f *fixture) addPosition(id, name string, active bool) {
	f.positions.positions = append(f.positions.positions, models.Position{
		ID: id, Name: name, IsActive: active,
	})
}

func (f *fixture) addTemplate(t models.ShiftTemplate) {
	if t.CreatedBy == "" {
		t.CreatedBy = managerID
	}
	f.templates.templates = append(f.templates.templates, t)
}

func newTemplate(id, name, positionID string) models.ShiftTemplate {
	return models.ShiftTemplate{
		ID: id, Name: name, PositionID: positionID,
		StartTime: "09:00", EndTime: "17:00", Capacity: 1,
	}
}
