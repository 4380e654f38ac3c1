package employee

import (
	"fmt"
	"strings"
	"time"

	"shiftflow/config"
	"shiftflow/models"
	"shiftflow/utils"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const demoPassword = "demo12345!"

// EnsureDemoData seeds the demo positions, accounts and example shifts,
// then returns the account for the requested role. Safe to call on every
// demo login: accounts get their password re-set, shifts are seeded only
// once per manager.
func (s *DefaultEmployeeService) EnsureDemoData(role string) (*models.Employee, error) {
	if !config.AppConfig.DemoMode {
		return nil, ErrDemoDisabled
	}
	role = strings.ToLower(strings.TrimSpace(role))
	if role != models.RoleManager && role != models.RoleEmployee {
		return nil, ErrUnknownDemoRole
	}

	barista, err := s.ensurePosition("Barista")
	if err != nil {
		return nil, err
	}
	cleaner, err := s.ensurePosition("Cleaner")
	if err != nil {
		return nil, err
	}

	manager, err := s.ensureDemoAccount("manager_demo@example.com", "Demo", "Manager", models.RoleManager, "")
	if err != nil {
		return nil, err
	}
	worker, err := s.ensureDemoAccount("employee_demo@example.com", "Demo", "Employee", models.RoleEmployee, barista.ID)
	if err != nil {
		return nil, err
	}

	if err := s.seedDemoShifts(manager, worker, barista, cleaner); err != nil {
		return nil, err
	}

	if role == models.RoleManager {
		return manager, nil
	}
	return worker, nil
}

func (s *DefaultEmployeeService) ensurePosition(name string) (*models.Position, error) {
	position, err := s.PositionRepo.GetByName(name)
	if err != nil {
		return nil, fmt.Errorf("failed to look up position %s: %w", name, err)
	}
	if position != nil {
		return position, nil
	}

	position = &models.Position{
		ID:       uuid.New().String(),
		Name:     name,
		IsActive: true,
	}
	if err := s.PositionRepo.Create(position); err != nil {
		return nil, fmt.Errorf("failed to create position %s: %w", name, err)
	}
	return position, nil
}

// ensureDemoAccount fetches or creates a demo account and re-sets its role
// and password, so a broken demo account heals on the next demo login.
func (s *DefaultEmployeeService) ensureDemoAccount(email, firstName, lastName, role, positionID string) (*models.Employee, error) {
	account, err := s.EmployeeRepo.GetByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch demo account %s: %w", email, err)
	}

	now := time.Now()
	created := false
	if account == nil {
		badge, err := utils.GenerateEmployeeID()
		if err != nil {
			return nil, err
		}
		account = &models.Employee{
			ID:         uuid.New().String(),
			EmployeeID: badge,
			FirstName:  firstName,
			LastName:   lastName,
			Email:      email,
			CreatedAt:  now,
		}
		created = true
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash demo password: %w", err)
	}
	account.Role = role
	account.IsActive = true
	account.PasswordHash = string(hash)
	if positionID != "" && account.PositionID == "" {
		account.PositionID = positionID
	}
	account.UpdatedAt = now

	if created {
		err = s.EmployeeRepo.Create(account)
	} else {
		err = s.EmployeeRepo.Update(account)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to save demo account %s: %w", email, err)
	}
	return account, nil
}

// seedDemoShifts gives a fresh demo manager something to look at: a past
// published shift, a future published one, and a future draft, with the
// demo employee on the published pair.
func (s *DefaultEmployeeService) seedDemoShifts(manager, worker *models.Employee, barista, cleaner *models.Position) error {
	count, err := s.ShiftRepo.CountByManager(manager.ID)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	today := time.Now()
	newShift := func(dayOffset int, start, end, positionID string, capacity int, status string, assigned []string) *models.Shift {
		now := time.Now()
		return &models.Shift{
			ID:                  uuid.New().String(),
			Date:                today.AddDate(0, 0, dayOffset).Format(utils.DateLayout),
			StartTime:           start,
			EndTime:             end,
			PositionID:          positionID,
			Capacity:            capacity,
			Status:              status,
			AssignedEmployeeIDs: assigned,
			CreatedBy:           manager.ID,
			CreatedAt:           now,
			UpdatedAt:           now,
		}
	}

	shifts := []*models.Shift{
		newShift(-3, "09:00", "13:00", barista.ID, 2, models.ShiftStatusPublished, []string{worker.ID}),
		newShift(2, "06:00", "14:00", barista.ID, 3, models.ShiftStatusPublished, []string{worker.ID}),
		newShift(3, "16:00", "22:00", cleaner.ID, 1, models.ShiftStatusDraft, nil),
	}
	for _, shift := range shifts {
		if err := s.ShiftRepo.Create(shift); err != nil {
			return fmt.Errorf("failed to seed demo shift: %w", err)
		}
	}
	return nil
}
