package schedule

import (
	"time"

	employeeRepo "shiftflow/database/repository/employee"
	positionRepo "shiftflow/database/repository/position"
	shiftRepo "shiftflow/database/repository/shift"
	unavailabilityRepo "shiftflow/database/repository/unavailability"
	"shiftflow/models"
)

// ShiftInput carries raw form values for a shift save. Values stay strings
// until validation; EmployeeIDs replace the full assignment list.
type ShiftInput struct {
	Date        string
	StartTime   string
	EndTime     string
	PositionID  string
	Capacity    string
	Publish     bool
	EmployeeIDs []string
}

// BulkResult reports a bulk publish/delete outcome. Blocked counts draft
// shifts skipped because an assigned employee was unavailable.
type BulkResult struct {
	ShiftIDs []string
	Blocked  []string
}

// UndoResult reports how many shifts an undo touched and which action was
// reverted.
type UndoResult struct {
	Action string
	Count  int64
}

// Notifier receives publish events for push delivery and reminder
// scheduling. Implementations must never block the caller.
type Notifier interface {
	ShiftPublished(shift models.Shift)
}

// ScheduleService is the manager and employee scheduling surface.
type ScheduleService interface {
	// VisibleShifts retrieves the manager's shifts for a resolved query.
	VisibleShifts(managerID string, q ViewQuery) ([]models.Shift, error)
	// ShiftPayloads joins shifts with position names into island entries.
	ShiftPayloads(shifts []models.Shift, now time.Time) ([]models.ShiftPayload, error)
	// ActivePositions retrieves active positions ordered by name.
	ActivePositions() ([]models.Position, error)
	// EmployeeOptions retrieves the assignment picker entries.
	EmployeeOptions() ([]models.EmployeeOption, error)
	// ShiftDetails retrieves the popup payload for one of the manager's
	// shifts.
	ShiftDetails(managerID, shiftID string) (*models.ShiftDetails, error)

	// CreateShift validates and saves a new shift with its assignments.
	CreateShift(managerID string, input ShiftInput) (*models.Shift, error)
	// UpdateShift validates and saves one of the manager's shifts.
	UpdateShift(managerID, shiftID string, input ShiftInput) (*models.Shift, error)
	// DeleteShift soft-deletes one of the manager's shifts.
	DeleteShift(managerID, shiftID string) (*models.Shift, error)
	// PublishShift publishes a single draft shift.
	PublishShift(managerID, shiftID string) (*models.Shift, error)

	// PublishRange publishes all drafts in the query's date range.
	PublishRange(managerID string, start, end time.Time) (BulkResult, error)
	// DeleteDraftsInRange soft-deletes all drafts in the date range.
	DeleteDraftsInRange(managerID string, start, end time.Time) (BulkResult, error)
	// PublishSelected publishes the drafts among the given shift ids.
	PublishSelected(managerID string, shiftIDs []string) (BulkResult, error)
	// DeleteSelected soft-deletes the given shifts, published ones too.
	DeleteSelected(managerID string, shiftIDs []string) (BulkResult, error)

	// Undo reverts a recorded action: create hides, delete restores,
	// publish reverts to draft.
	Undo(managerID string, action models.LastAction) (UndoResult, error)

	// AssignedShifts retrieves an employee's published shifts in range.
	AssignedShifts(employeeID string, q ViewQuery) ([]models.Shift, error)
	// EmployeeShiftPayloads builds the "my shifts" island entries.
	EmployeeShiftPayloads(shifts []models.Shift, now time.Time) ([]models.EmployeeShiftPayload, error)
	// UpcomingShifts picks the next shifts from today out of the visible
	// range, with computed hours.
	UpcomingShifts(shifts []models.Shift, today time.Time) ([]models.UpcomingShift, error)
	// UnavailableDates retrieves the dates an employee marked unavailable
	// within bounds.
	UnavailableDates(employeeID string, start, end time.Time) ([]string, error)
	// ToggleUnavailability flips an employee's mark for a date and reports
	// the new state.
	ToggleUnavailability(employeeID, date string) (bool, error)
}

// DefaultScheduleService is the production implementation.
type DefaultScheduleService struct {
	ShiftRepo          shiftRepo.ShiftRepository
	PositionRepo       positionRepo.PositionRepository
	EmployeeRepo       employeeRepo.EmployeeRepository
	UnavailabilityRepo unavailabilityRepo.UnavailabilityRepository
	Notifier           Notifier
}
