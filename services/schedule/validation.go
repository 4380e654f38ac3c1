package schedule

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"shiftflow/layout"
	"shiftflow/models"
	"shiftflow/utils"
)

// shiftData is validated, normalized form input ready to persist.
type shiftData struct {
	Date        string
	StartTime   string
	EndTime     string
	PositionID  string
	Capacity    int
	Status      string
	EmployeeIDs []string
}

func parseRequiredDate(value, field string) (string, utils.FieldErrors) {
	raw := strings.TrimSpace(value)
	parsed, err := time.Parse(utils.DateLayout, raw)
	if err != nil {
		return "", utils.FieldError(field, "Enter a valid date.")
	}
	return parsed.Format(utils.DateLayout), nil
}

func parseRequiredTime(value, field string) (string, utils.FieldErrors) {
	raw := strings.TrimSpace(value)
	parsed, err := time.Parse(utils.TimeLayout, raw)
	if err != nil {
		return "", utils.FieldError(field, "Enter a valid time.")
	}
	return parsed.Format(utils.TimeLayout), nil
}

func parsePositiveInt(value, field string) (int, utils.FieldErrors) {
	raw := strings.TrimSpace(value)
	parsed, err := strconv.Atoi(raw)
	if err != nil {
		return 0, utils.FieldError(field, "Enter a valid whole number.")
	}
	if parsed < 1 {
		return 0, utils.FieldError(field, "Must be at least 1.")
	}
	return parsed, nil
}

// validateShiftInput runs the strict field parsing and cross-field rules.
// The first failure aborts, matching the form's one-error-at-a-time flow.
func (s *DefaultScheduleService) validateShiftInput(input ShiftInput) (shiftData, error) {
	var data shiftData
	var ferr utils.FieldErrors

	if data.Date, ferr = parseRequiredDate(input.Date, "date"); ferr != nil {
		return data, ferr
	}
	if data.StartTime, ferr = parseRequiredTime(input.StartTime, "start_time"); ferr != nil {
		return data, ferr
	}
	if data.EndTime, ferr = parseRequiredTime(input.EndTime, "end_time"); ferr != nil {
		return data, ferr
	}

	positionID := strings.TrimSpace(input.PositionID)
	if positionID == "" {
		return data, utils.FieldError("position", "Enter a valid whole number.")
	}
	position, err := s.PositionRepo.GetByID(positionID)
	if err != nil {
		return data, err
	}
	if position == nil {
		return data, utils.FieldError("position", "Select a valid position.")
	}
	data.PositionID = position.ID

	if data.Capacity, ferr = parsePositiveInt(input.Capacity, "capacity"); ferr != nil {
		return data, ferr
	}

	crossField := utils.FieldErrors{}
	if layout.ClockMinutes(data.StartTime) >= layout.ClockMinutes(data.EndTime) {
		crossField.Add("end_time", "End time must be after start time.")
	}
	if data.Capacity < 1 {
		crossField.Add("capacity", "Capacity must be at least 1.")
	}
	if len(crossField) > 0 {
		return data, crossField
	}

	if input.Publish {
		data.Status = models.ShiftStatusPublished
	} else {
		data.Status = models.ShiftStatusDraft
	}
	data.EmployeeIDs = cleanIDList(input.EmployeeIDs)
	return data, nil
}

// validateAssignments enforces the assignment rules against a validated
// shift: employees must hold the shift's position, fit capacity, be
// available that date, and not overlap another shift that day.
func (s *DefaultScheduleService) validateAssignments(shiftID string, data shiftData) error {
	if len(data.EmployeeIDs) == 0 {
		return nil
	}

	accounts, err := s.EmployeeRepo.GetByIDs(data.EmployeeIDs)
	if err != nil {
		return err
	}
	matching := make(map[string]bool, len(accounts))
	for _, e := range accounts {
		if e.IsEmployee() && e.IsActive && e.PositionID == data.PositionID {
			matching[e.ID] = true
		}
	}
	for _, id := range data.EmployeeIDs {
		if !matching[id] {
			return utils.FieldError("employee_ids", "Selected employees must match the shift position.")
		}
	}

	if len(data.EmployeeIDs) > data.Capacity {
		return utils.FieldError("capacity", "Cannot assign more employees than shift capacity.")
	}

	unavailable, err := s.UnavailabilityRepo.UnavailableOn(data.Date, data.EmployeeIDs)
	if err != nil {
		return err
	}
	unavailableSet := make(map[string]bool, len(unavailable))
	for _, id := range unavailable {
		unavailableSet[id] = true
	}

	others, err := s.ShiftRepo.FindOnDateForEmployees(data.Date, data.EmployeeIDs)
	if err != nil {
		return err
	}
	names, err := s.positionNames()
	if err != nil {
		return err
	}

	start := layout.ClockMinutes(data.StartTime)
	end := layout.ClockMinutes(data.EndTime)
	for _, id := range data.EmployeeIDs {
		if unavailableSet[id] {
			return utils.FieldError("employee_ids",
				fmt.Sprintf("Employee is unavailable on %s.", data.Date))
		}
		for _, other := range others {
			if other.ID == shiftID || !assignedTo(other, id) {
				continue
			}
			if start < other.EndMinutes() && end > other.StartMinutes() {
				day, _ := time.Parse(utils.DateLayout, other.Date)
				return utils.FieldError("employee_ids",
					fmt.Sprintf("Employee already assigned to: %s %s–%s (%s)",
						names[other.PositionID], other.StartTime, other.EndTime,
						day.Format("Jan 02")))
			}
		}
	}
	return nil
}

func assignedTo(shift models.Shift, employeeID string) bool {
	for _, id := range shift.AssignedEmployeeIDs {
		if id == employeeID {
			return true
		}
	}
	return false
}
