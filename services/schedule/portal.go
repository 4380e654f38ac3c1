package schedule

import (
	"fmt"
	"time"

	"shiftflow/models"
	"shiftflow/utils"

	"github.com/google/uuid"
)

// AssignedShifts retrieves an employee's published shifts in the query's
// date range.
func (s *DefaultScheduleService) AssignedShifts(employeeID string, q ViewQuery) ([]models.Shift, error) {
	return s.ShiftRepo.FindAssignedInRange(
		employeeID,
		q.Start.Format(utils.DateLayout),
		q.End.Format(utils.DateLayout),
	)
}

// EmployeeShiftPayloads builds the "my shifts" island entries.
func (s *DefaultScheduleService) EmployeeShiftPayloads(shifts []models.Shift, now time.Time) ([]models.EmployeeShiftPayload, error) {
	names, err := s.positionNames()
	if err != nil {
		return nil, err
	}
	payloads := make([]models.EmployeeShiftPayload, 0, len(shifts))
	for _, shift := range shifts {
		payloads = append(payloads, models.EmployeeShiftPayload{
			ID:        shift.ID,
			Date:      shift.Date,
			StartTime: shift.StartTime,
			EndTime:   shift.EndTime,
			Position:  names[shift.PositionID],
			IsPast:    shift.IsPast(now),
		})
	}
	return payloads, nil
}

// UpcomingShifts picks the next five shifts from today out of the visible
// range, with the shift length in hours.
func (s *DefaultScheduleService) UpcomingShifts(shifts []models.Shift, today time.Time) ([]models.UpcomingShift, error) {
	names, err := s.positionNames()
	if err != nil {
		return nil, err
	}
	todayStr := DateOf(today).Format(utils.DateLayout)

	var upcoming []models.UpcomingShift
	for _, shift := range shifts {
		if shift.Date < todayStr {
			continue
		}
		minutes := shift.EndMinutes() - shift.StartMinutes()
		if minutes < 0 {
			minutes = 0
		}
		upcoming = append(upcoming, models.UpcomingShift{
			ID:        shift.ID,
			Date:      shift.Date,
			StartTime: shift.StartTime,
			EndTime:   shift.EndTime,
			Position:  names[shift.PositionID],
			Hours:     float64(minutes) / 60,
		})
		if len(upcoming) == 5 {
			break
		}
	}
	return upcoming, nil
}

// UnavailableDates retrieves the dates an employee marked unavailable
// within inclusive bounds.
func (s *DefaultScheduleService) UnavailableDates(employeeID string, start, end time.Time) ([]string, error) {
	return s.UnavailabilityRepo.DatesForEmployee(
		employeeID,
		start.Format(utils.DateLayout),
		end.Format(utils.DateLayout),
	)
}

// ToggleUnavailability flips an employee's mark for a date. Returns the
// new state: true when the date is now unavailable. The date must already
// be validated ("2006-01-02").
func (s *DefaultScheduleService) ToggleUnavailability(employeeID, date string) (bool, error) {
	existing, err := s.UnavailabilityRepo.Get(employeeID, date)
	if err != nil {
		return false, err
	}
	if existing != nil {
		if err := s.UnavailabilityRepo.Delete(employeeID, date); err != nil {
			return false, err
		}
		return false, nil
	}
	record := &models.Unavailability{
		ID:         uuid.New().String(),
		EmployeeID: employeeID,
		Date:       date,
	}
	if err := s.UnavailabilityRepo.Create(record); err != nil {
		return false, fmt.Errorf("failed to mark unavailability: %w", err)
	}
	return true, nil
}
