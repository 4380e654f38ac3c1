package schedule_test

import (
	"sort"
	"strings"
	"time"

	employeeRepo "shiftflow/database/repository/employee"
	positionRepo "shiftflow/database/repository/position"
	shiftRepo "shiftflow/database/repository/shift"
	unavailabilityRepo "shiftflow/database/repository/unavailability"
	"shiftflow/models"
	"shiftflow/services/schedule"
)

const managerID = "mgr-1"

// memShiftRepo is an in-memory ShiftRepository mirroring the Mongo repo's
// filter and ordering semantics.
type memShiftRepo struct {
	shifts []*models.Shift
}

var _ shiftRepo.ShiftRepository = (*memShiftRepo)(nil)

func cloneShift(s models.Shift) *models.Shift {
	out := s
	out.AssignedEmployeeIDs = append([]string(nil), s.AssignedEmployeeIDs...)
	return &out
}

func (r *memShiftRepo) Create(shift *models.Shift) error {
	now := time.Now()
	shift.CreatedAt = now
	shift.UpdatedAt = now
	if shift.AssignedEmployeeIDs == nil {
		shift.AssignedEmployeeIDs = []string{}
	}
	r.shifts = append(r.shifts, cloneShift(*shift))
	return nil
}

func (r *memShiftRepo) Update(shift *models.Shift) error {
	shift.UpdatedAt = time.Now()
	if shift.AssignedEmployeeIDs == nil {
		shift.AssignedEmployeeIDs = []string{}
	}
	for i, existing := range r.shifts {
		if existing.ID == shift.ID {
			r.shifts[i] = cloneShift(*shift)
			return nil
		}
	}
	return nil
}

func (r *memShiftRepo) GetByID(ownerID, id string) (*models.Shift, error) {
	for _, s := range r.shifts {
		if s.ID == id && s.CreatedBy == ownerID && !s.IsDeleted {
			return cloneShift(*s), nil
		}
	}
	return nil, nil
}

func (r *memShiftRepo) GetActiveByID(id string) (*models.Shift, error) {
	for _, s := range r.shifts {
		if s.ID == id && !s.IsDeleted {
			return cloneShift(*s), nil
		}
	}
	return nil, nil
}

func (r *memShiftRepo) collect(match func(*models.Shift) bool) []models.Shift {
	var out []models.Shift
	for _, s := range r.shifts {
		if match(s) {
			out = append(out, *cloneShift(*s))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		if out[i].StartTime != out[j].StartTime {
			return out[i].StartTime < out[j].StartTime
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func (r *memShiftRepo) Find(filter shiftRepo.Filter) ([]models.Shift, error) {
	return r.collect(func(s *models.Shift) bool {
		if s.IsDeleted || s.CreatedBy != filter.ManagerID {
			return false
		}
		if filter.DateFrom != "" && s.Date < filter.DateFrom {
			return false
		}
		if filter.DateTo != "" && s.Date > filter.DateTo {
			return false
		}
		if len(filter.PositionIDs) > 0 && !containsString(filter.PositionIDs, s.PositionID) {
			return false
		}
		if filter.Status != "" && s.Status != filter.Status {
			return false
		}
		if filter.Understaffed && len(s.AssignedEmployeeIDs) >= s.Capacity {
			return false
		}
		return true
	}), nil
}

func (r *memShiftRepo) FindByIDs(ownerID string, ids []string) ([]models.Shift, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	return r.collect(func(s *models.Shift) bool {
		return !s.IsDeleted && s.CreatedBy == ownerID && containsString(ids, s.ID)
	}), nil
}

func (r *memShiftRepo) SetStatus(ownerID string, ids []string, status string) (int64, error) {
	var count int64
	for _, s := range r.shifts {
		if !s.IsDeleted && s.CreatedBy == ownerID && containsString(ids, s.ID) {
			s.Status = status
			s.UpdatedAt = time.Now()
			count++
		}
	}
	return count, nil
}

func (r *memShiftRepo) SoftDelete(ownerID string, ids []string) (int64, error) {
	var count int64
	for _, s := range r.shifts {
		if !s.IsDeleted && s.CreatedBy == ownerID && containsString(ids, s.ID) {
			s.IsDeleted = true
			s.UpdatedAt = time.Now()
			count++
		}
	}
	return count, nil
}

func (r *memShiftRepo) Restore(ownerID string, ids []string) (int64, error) {
	var count int64
	for _, s := range r.shifts {
		if s.IsDeleted && s.CreatedBy == ownerID && containsString(ids, s.ID) {
			s.IsDeleted = false
			s.UpdatedAt = time.Now()
			count++
		}
	}
	return count, nil
}

func (r *memShiftRepo) FindAssignedInRange(employeeID, dateFrom, dateTo string) ([]models.Shift, error) {
	return r.collect(func(s *models.Shift) bool {
		return !s.IsDeleted &&
			s.Status == models.ShiftStatusPublished &&
			containsString(s.AssignedEmployeeIDs, employeeID) &&
			s.Date >= dateFrom && s.Date <= dateTo
	}), nil
}

func (r *memShiftRepo) FindOnDateForEmployees(date string, employeeIDs []string) ([]models.Shift, error) {
	if len(employeeIDs) == 0 {
		return nil, nil
	}
	return r.collect(func(s *models.Shift) bool {
		if s.IsDeleted || s.Date != date {
			return false
		}
		for _, id := range employeeIDs {
			if containsString(s.AssignedEmployeeIDs, id) {
				return true
			}
		}
		return false
	}), nil
}

func (r *memShiftRepo) CountByPosition(positionID string) (int64, error) {
	var count int64
	for _, s := range r.shifts {
		if s.PositionID == positionID {
			count++
		}
	}
	return count, nil
}

func (r *memShiftRepo) CountByManager(ownerID string) (int64, error) {
	var count int64
	for _, s := range r.shifts {
		if s.CreatedBy == ownerID {
			count++
		}
	}
	return count, nil
}

func (r *memShiftRepo) RemoveEmployeeFromAll(employeeID string) error {
	for _, s := range r.shifts {
		var kept []string
		for _, id := range s.AssignedEmployeeIDs {
			if id != employeeID {
				kept = append(kept, id)
			}
		}
		if kept == nil {
			kept = []string{}
		}
		s.AssignedEmployeeIDs = kept
	}
	return nil
}

func containsString(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
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

func (r *memPositionRepo) sorted(match func(models.Position) bool) []models.Position {
	var out []models.Position
	for _, p := range r.positions {
		if match(p) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (r *memPositionRepo) GetAll() ([]models.Position, error) {
	return r.sorted(func(models.Position) bool { return true }), nil
}

func (r *memPositionRepo) GetActive() ([]models.Position, error) {
	return r.sorted(func(p models.Position) bool { return p.IsActive }), nil
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
		if containsString(ids, e.ID) {
			out = append(out, e)
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
	sort.Slice(out, func(i, j int) bool {
		if out[i].LastName != out[j].LastName {
			return out[i].LastName < out[j].LastName
		}
		return out[i].FirstName < out[j].FirstName
	})
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
	sort.Slice(out, func(i, j int) bool {
		if out[i].LastName != out[j].LastName {
			return out[i].LastName < out[j].LastName
		}
		return out[i].FirstName < out[j].FirstName
	})
	return out, nil
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

func (r *memEmployeeRepo) Create(employee *models.Employee) error {
	r.accounts = append(r.accounts, *employee)
	return nil
}

func (r *memEmployeeRepo) Update(employee *models.Employee) error {
	for i, e := range r.accounts {
		if e.ID == employee.ID {
			r.accounts[i] = *employee
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

// memUnavailabilityRepo is an in-memory UnavailabilityRepository.
type memUnavailabilityRepo struct {
	records []models.Unavailability
}

var _ unavailabilityRepo.UnavailabilityRepository = (*memUnavailabilityRepo)(nil)

func (r *memUnavailabilityRepo) Get(employeeID, date string) (*models.Unavailability, error) {
	for _, rec := range r.records {
		if rec.EmployeeID == employeeID && rec.Date == date {
			out := rec
			return &out, nil
		}
	}
	return nil, nil
}

func (r *memUnavailabilityRepo) Create(record *models.Unavailability) error {
	r.records = append(r.records, *record)
	return nil
}

func (r *memUnavailabilityRepo) Delete(employeeID, date string) error {
	var kept []models.Unavailability
	for _, rec := range r.records {
		if rec.EmployeeID != employeeID || rec.Date != date {
			kept = append(kept, rec)
		}
	}
	r.records = kept
	return nil
}

func (r *memUnavailabilityRepo) DatesForEmployee(employeeID, dateFrom, dateTo string) ([]string, error) {
	var dates []string
	for _, rec := range r.records {
		if rec.EmployeeID == employeeID && rec.Date >= dateFrom && rec.Date <= dateTo {
			dates = append(dates, rec.Date)
		}
	}
	sort.Strings(dates)
	return dates, nil
}

func (r *memUnavailabilityRepo) UnavailableOn(date string, employeeIDs []string) ([]string, error) {
	var out []string
	for _, rec := range r.records {
		if rec.Date == date && containsString(employeeIDs, rec.EmployeeID) {
			out = append(out, rec.EmployeeID)
		}
	}
	return out, nil
}

func (r *memUnavailabilityRepo) FindInRange(dateFrom, dateTo string) ([]models.Unavailability, error) {
	var out []models.Unavailability
	for _, rec := range r.records {
		if rec.Date >= dateFrom && rec.Date <= dateTo {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *memUnavailabilityRepo) DeleteForEmployee(employeeID string) error {
	var kept []models.Unavailability
	for _, rec := range r.records {
		if rec.EmployeeID != employeeID {
			kept = append(kept, rec)
		}
	}
	r.records = kept
	return nil
}

// publishRecorder captures publish notifications.
type publishRecorder struct {
	published []models.Shift
}

func (n *publishRecorder) ShiftPublished(shift models.Shift) {
	n.published = append(n.published, shift)
}

func (n *publishRecorder) publishedIDs() []string {
	ids := make([]string, 0, len(n.published))
	for _, s := range n.published {
		ids = append(ids, s.ID)
	}
	sort.Strings(ids)
	return ids
}

// fixture wires the service onto fresh in-memory repositories.
type fixture struct {
	shifts    *memShiftRepo
	positions *memPositionRepo
	employees *memEmployeeRepo
	unavail   *memUnavailabilityRepo
	notifier  *publishRecorder
	svc       *schedule.DefaultScheduleService
}

func newFixture() *fixture {
	f := &fixture{
		shifts:    &memShiftRepo{},
		positions: &memPositionRepo{},
		employees: &memEmployeeRepo{},
		unavail:   &memUnavailabilityRepo{},
		notifier:  &publishRecorder{},
	}
	f.svc = &schedule.DefaultScheduleService{
		ShiftRepo:          f.shifts,
		PositionRepo:       f.positions,
		EmployeeRepo:       f.employees,
		UnavailabilityRepo: f.unavail,
		Notifier:           f.notifier,
	}
	return f
}

func (f *fixture) addPosition(id, name string) {
	f.positions.positions = append(f.positions.positions, models.Position{
		ID: id, Name: name, IsActive: true,
	})
}

func (f *fixture) addEmployee(id, first, last, positionID string) {
	f.employees.accounts = append(f.employees.accounts, models.Employee{
		ID:         id,
		Role:       models.RoleEmployee,
		EmployeeID: "EMP-" + id,
		FirstName:  first,
		LastName:   last,
		Email:      strings.ToLower(first + "." + last + "@example.com"),
		PositionID: positionID,
		IsActive:   true,
	})
}

func (f *fixture) addManager(id, first, last string) {
	f.employees.accounts = append(f.employees.accounts, models.Employee{
		ID:        id,
		Role:      models.RoleManager,
		FirstName: first,
		LastName:  last,
		Email:     strings.ToLower(first + "." + last + "@example.com"),
		IsActive:  true,
	})
}

func (f *fixture) addShift(shift models.Shift) {
	if shift.CreatedBy == "" {
		shift.CreatedBy = managerID
	}
	if shift.Status == "" {
		shift.Status = models.ShiftStatusDraft
	}
	if shift.AssignedEmployeeIDs == nil {
		shift.AssignedEmployeeIDs = []string{}
	}
	f.shifts.shifts = append(f.shifts.shifts, cloneShift(shift))
}

func (f *fixture) markUnavailable(employeeID, date string) {
	f.unavail.records = append(f.unavail.records, models.Unavailability{
		ID: "ua-" + employeeID + "-" + date, EmployeeID: employeeID, Date: date,
	})
}

func (f *fixture) storedShift(id string) *models.Shift {
	for _, s := range f.shifts.shifts {
		if s.ID == id {
			return s
		}
	}
	return nil
}
