package schedule

import (
	"shiftflow/models"

	"github.com/google/uuid"
)

func (s *DefaultScheduleService) notifyPublished(shift models.Shift) {
	if s.Notifier == nil {
		return
	}
	s.Notifier.ShiftPublished(shift)
}

// CreateShift validates and saves a new shift with its assignments.
func (s *DefaultScheduleService) CreateShift(managerID string, input ShiftInput) (*models.Shift, error) {
	data, err := s.validateShiftInput(input)
	if err != nil {
		return nil, err
	}
	if err := s.validateAssignments("", data); err != nil {
		return nil, err
	}

	shift := &models.Shift{
		ID:                  uuid.New().String(),
		Date:                data.Date,
		StartTime:           data.StartTime,
		EndTime:             data.EndTime,
		PositionID:          data.PositionID,
		Capacity:            data.Capacity,
		Status:              data.Status,
		AssignedEmployeeIDs: data.EmployeeIDs,
		CreatedBy:           managerID,
	}
	if err := s.ShiftRepo.Create(shift); err != nil {
		return nil, err
	}
	if shift.Status == models.ShiftStatusPublished {
		s.notifyPublished(*shift)
	}
	return shift, nil
}

// UpdateShift validates and saves one of the manager's shifts, replacing
// its assignment list.
func (s *DefaultScheduleService) UpdateShift(managerID, shiftID string, input ShiftInput) (*models.Shift, error) {
	shift, err := s.ShiftRepo.GetByID(managerID, shiftID)
	if err != nil {
		return nil, err
	}
	if shift == nil {
		return nil, ErrShiftNotFound
	}

	data, err := s.validateShiftInput(input)
	if err != nil {
		return nil, err
	}
	if err := s.validateAssignments(shiftID, data); err != nil {
		return nil, err
	}

	wasPublished := shift.Status == models.ShiftStatusPublished
	shift.Date = data.Date
	shift.StartTime = data.StartTime
	shift.EndTime = data.EndTime
	shift.PositionID = data.PositionID
	shift.Capacity = data.Capacity
	shift.Status = data.Status
	shift.AssignedEmployeeIDs = data.EmployeeIDs

	if err := s.ShiftRepo.Update(shift); err != nil {
		return nil, err
	}
	if !wasPublished && shift.Status == models.ShiftStatusPublished {
		s.notifyPublished(*shift)
	}
	return shift, nil
}

// DeleteShift soft-deletes one of the manager's shifts.
func (s *DefaultScheduleService) DeleteShift(managerID, shiftID string) (*models.Shift, error) {
	shift, err := s.ShiftRepo.GetByID(managerID, shiftID)
	if err != nil {
		return nil, err
	}
	if shift == nil {
		return nil, ErrShiftNotFound
	}
	if _, err := s.ShiftRepo.SoftDelete(managerID, []string{shiftID}); err != nil {
		return nil, err
	}
	return shift, nil
}

// PublishShift publishes a single draft shift. The shift is returned even
// on ErrAlreadyPublished and ErrPublishBlocked so callers can still build
// the show-shift redirect.
func (s *DefaultScheduleService) PublishShift(managerID, shiftID string) (*models.Shift, error) {
	shift, err := s.ShiftRepo.GetByID(managerID, shiftID)
	if err != nil {
		return nil, err
	}
	if shift == nil {
		return nil, ErrShiftNotFound
	}
	if shift.Status == models.ShiftStatusPublished {
		return shift, ErrAlreadyPublished
	}

	unavailable, err := s.UnavailabilityRepo.UnavailableOn(shift.Date, shift.AssignedEmployeeIDs)
	if err != nil {
		return nil, err
	}
	if len(unavailable) > 0 {
		return shift, ErrPublishBlocked
	}

	if _, err := s.ShiftRepo.SetStatus(managerID, []string{shiftID}, models.ShiftStatusPublished); err != nil {
		return nil, err
	}
	shift.Status = models.ShiftStatusPublished
	s.notifyPublished(*shift)
	return shift, nil
}
