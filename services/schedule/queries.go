package schedule

import (
	"fmt"
	"time"

	shiftRepo "shiftflow/database/repository/shift"
	"shiftflow/models"
)

// positionNames maps position ids to display names.
func (s *DefaultScheduleService) positionNames() (map[string]string, error) {
	positions, err := s.PositionRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load positions: %w", err)
	}
	names := make(map[string]string, len(positions))
	for _, p := range positions {
		names[p.ID] = p.Name
	}
	return names, nil
}

// VisibleShifts retrieves the manager's shifts for a resolved query.
func (s *DefaultScheduleService) VisibleShifts(managerID string, q ViewQuery) ([]models.Shift, error) {
	return s.ShiftRepo.Find(shiftRepo.Filter{
		ManagerID:    managerID,
		DateFrom:     q.Start.Format("2006-01-02"),
		DateTo:       q.End.Format("2006-01-02"),
		PositionIDs:  q.PositionIDs,
		Status:       q.Status,
		Understaffed: q.Understaffed,
	})
}

// ShiftPayloads joins shifts with position names into island entries.
func (s *DefaultScheduleService) ShiftPayloads(shifts []models.Shift, now time.Time) ([]models.ShiftPayload, error) {
	names, err := s.positionNames()
	if err != nil {
		return nil, err
	}

	payloads := make([]models.ShiftPayload, 0, len(shifts))
	for _, shift := range shifts {
		assigned := shift.AssignedEmployeeIDs
		if assigned == nil {
			assigned = []string{}
		}
		payloads = append(payloads, models.ShiftPayload{
			ID:                  shift.ID,
			Date:                shift.Date,
			StartTime:           shift.StartTime,
			EndTime:             shift.EndTime,
			Position:            names[shift.PositionID],
			PositionID:          shift.PositionID,
			Capacity:            shift.Capacity,
			AssignedCount:       len(assigned),
			AssignedEmployeeIDs: assigned,
			Status:              shift.Status,
			IsPast:              shift.IsPast(now),
		})
	}
	return payloads, nil
}

// ActivePositions retrieves active positions ordered by name.
func (s *DefaultScheduleService) ActivePositions() ([]models.Position, error) {
	return s.PositionRepo.GetActive()
}

// EmployeeOptions retrieves the assignment picker entries, ordered by last
// then first name.
func (s *DefaultScheduleService) EmployeeOptions() ([]models.EmployeeOption, error) {
	employees, err := s.EmployeeRepo.GetActiveEmployees()
	if err != nil {
		return nil, fmt.Errorf("failed to load employees: %w", err)
	}
	names, err := s.positionNames()
	if err != nil {
		return nil, err
	}

	options := make([]models.EmployeeOption, 0, len(employees))
	for _, e := range employees {
		options = append(options, models.EmployeeOption{
			ID:         e.ID,
			Name:       e.DisplayName(),
			PositionID: e.PositionID,
			Position:   names[e.PositionID],
		})
	}
	return options, nil
}

// ShiftDetails retrieves the popup payload for one of the manager's shifts.
func (s *DefaultScheduleService) ShiftDetails(managerID, shiftID string) (*models.ShiftDetails, error) {
	shift, err := s.ShiftRepo.GetByID(managerID, shiftID)
	if err != nil {
		return nil, err
	}
	if shift == nil {
		return nil, ErrShiftNotFound
	}

	names, err := s.positionNames()
	if err != nil {
		return nil, err
	}

	accounts, err := s.EmployeeRepo.GetByIDs(shift.AssignedEmployeeIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load assigned employees: %w", err)
	}
	assigned := make([]models.AssignedEmployee, 0, len(accounts))
	for _, e := range accounts {
		if !e.IsEmployee() {
			continue
		}
		assigned = append(assigned, models.AssignedEmployee{
			ID:         e.ID,
			Name:       e.DisplayName(),
			EmployeeID: e.EmployeeID,
		})
	}

	createdBy := ""
	if creator, err := s.EmployeeRepo.GetByID(shift.CreatedBy); err == nil && creator != nil {
		createdBy = creator.DisplayName()
	}

	return &models.ShiftDetails{
		ID:            shift.ID,
		Date:          shift.Date,
		StartTime:     shift.StartTime,
		EndTime:       shift.EndTime,
		PositionID:    shift.PositionID,
		Position:      names[shift.PositionID],
		Status:        shift.Status,
		Capacity:      shift.Capacity,
		AssignedCount: len(shift.AssignedEmployeeIDs),
		Assigned:      assigned,
		CreatedBy:     createdBy,
		UpdatedAt:     shift.UpdatedAt.Format(time.RFC3339),
	}, nil
}
