package employee_test

import (
	"sort"
	"strings"

	employeeRepo "shiftflow/database/repository/employee"
	positionRepo "shiftflow/database/repository/position"
	shiftRepo "shiftflow/database/repository/shift"
	unavailabilityRepo "shiftflow/database/repository/unavailability"
	"shiftflow/models"
	"shiftflow/services/employee"
)

// memEmployeeRepo is an in-memory EmployeeRepository.
type memEmployeeRepo struct {
	accounts []models.Employee
}

var _ employeeRepo.EmployeeRepository = (*memEmployeeRepo)(nil)

func (r *memEmployeeRepo) GetByID(id string) (*models.Employee, error) {
	for _, e := range r.accounts {
		if e.ID == id {
			out := e
			return &out, nil
		}
	}
	return nil, nil
}

func (r *memEmployeeRepo) GetByEmail(email string) (*models.Employee, error) {
	for _, e := range r.accounts {
		if strings.EqualFold(e.Email, email) {
			out := e
			return &out, nil
		}
	}
	return nil, nil
}

func (r *memEmployeeRepo) GetByIDs(ids []string) ([]models.Employee, error) {
	var out []models.Employee
	for _, e := range r.accounts {
		for _, id := range ids {
			if e.ID == id {
				out = append(out, e)
				break
			}
		}
	}
	return out, nil
}

func (r *memEmployeeRepo) GetActiveEmployees() ([]models.Employee, error) {
	var out []models.Employee
	for _, e := range r.accounts {
		if e.IsEmployee() && e.IsActive {
			out = append(out, e)
		}
	}
	sortByName(out)
	return out, nil
}

func (r *memEmployeeRepo) Search(query, positionID string) ([]models.Employee, error) {
	query = strings.ToLower(strings.TrimSpace(query))
	var out []models.Employee
	for _, e := range r.accounts {
		if !e.IsEmployee() {
			continue
		}
		if positionID != "" && e.PositionID != positionID {
			continue
		}
		if query != "" {
			haystack := strings.ToLower(strings.Join([]string{
				e.EmployeeID, e.FirstName, e.LastName, e.Email, e.Phone,
			}, " "))
			if !strings.Contains(haystack, query) {
				continue
			}
		}
		out = append(out, e)
	}
	sortByName(out)
	return out, nil
}

func sortByName(accounts []models.Employee) {
	sort.Slice(accounts, func(i, j int) bool {
		if accounts[i].LastName != accounts[j].LastName {
			return accounts[i].LastName < accounts[j].LastName
		}
		return accounts[i].FirstName < accounts[j].FirstName
	})
}

func (r *memEmployeeRepo) CountByPosition(positionID string) (int64, error) {
	var count int64
	for _, e := range r.accounts {
		if e.IsEmployee() && e.PositionID == positionID {
			count++
		}
	}
	return count, nil
}

func (r *memEmployeeRepo) Create(account *models.Employee) error {
	r.accounts = append(r.accounts, *account)
	return nil
}

func (r *memEmployeeRepo) Update(account *models.Employee) error {
	for i, e := range r.accounts {
		if e.ID == account.ID {
			r.accounts[i] = *account
		}
	}
	return nil
}

func (r *memEmployeeRepo) Delete(id string) error {
	var kept []models.Employee
	for _, e := range r.accounts {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	r.accounts = kept
	return nil
}

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

// demoShiftRepo covers the shift methods the account flows touch; the
// embedded nil interface panics on anything else.
type demoShiftRepo struct {
	shiftRepo.ShiftRepository
	shifts      []*models.Shift
	removedFrom []string
}

func (r *demoShiftRepo) Create(shift *models.Shift) error {
	copied := *shift
	r.shifts = append(r.shifts, &copied)
	return nil
}

func (r *demoShiftRepo) CountByManager(ownerID string) (int64, error) {
	var count int64
	for _, s := range r.shifts {
		if s.CreatedBy == ownerID {
			count++
		}
	}
	return count, nil
}

func (r *demoShiftRepo) RemoveEmployeeFromAll(employeeID string) error {
	r.removedFrom = append(r.removedFrom, employeeID)
	for _, s := range r.shifts {
		var kept []string
		for _, id := range s.AssignedEmployeeIDs {
			if id != employeeID {
				kept = append(kept, id)
			}
		}
		s.AssignedEmployeeIDs = kept
	}
	return nil
}

// stubUnavailabilityRepo records cascade deletes.
type stubUnavailabilityRepo struct {
	unavailabilityRepo.UnavailabilityRepository
	deletedFor []string
}

func (r *stubUnavailabilityRepo) DeleteForEmployee(employeeID string) error {
	r.deletedFor = append(r.deletedFor, employeeID)
	return nil
}

type fixture struct {
	employees *memEmployeeRepo
	positions *memPositionRepo
	shifts    *demoShiftRepo
	unavail   *stubUnavailabilityRepo
	svc       *employee.DefaultEmployeeService
}

func newFixture() *fixture {
	f := &fixture{
		employees: &memEmployeeRepo{},
		positions: &memPositionRepo{},
		shifts:    &demoShiftRepo{},
		unavail:   &stubUnavailabilityRepo{},
	}
	f.svc = &employee.DefaultEmployeeService{
		EmployeeRepo:       f.employees,
		PositionRepo:       f.positions,
		ShiftRepo:          f.shifts,
		UnavailabilityRepo: f.unavail,
	}
	return f
}

func (f *fixture) addPosition(id, name string) {
	f.positions.positions = append(f.positions.positions, models.Position{
		ID: id, Name: name, IsActive: true,
	})
}

func (f *fixture) addAccount(account models.Employee) {
	f.employees.accounts = append(f.employees.accounts, account)
}

func validEmployeeInput() employee.EmployeeInput {
	return employee.EmployeeInput{
		FullName:   "Ann Adams",
		Email:      "ann.adams@example.com",
		Phone:      "+1 555 0100",
		PositionID: "p1",
	}
}
