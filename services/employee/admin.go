package employee

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"shiftflow/models"
	"shiftflow/utils"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// maxFullNameLen bounds the combined first and last name.
const maxFullNameLen = 150

var (
	phoneRE = regexp.MustCompile(`^[0-9+()\-\s]{6,25}$`)
	emailRE = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// splitFullName breaks a display name on whitespace: the first word becomes
// the first name, everything after it the last name.
func splitFullName(fullName string) (string, string) {
	parts := strings.Fields(fullName)
	if len(parts) == 0 {
		return "", ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}

// employeeData is a validated, normalized employee form.
type employeeData struct {
	FirstName  string
	LastName   string
	Email      string
	Phone      string
	PositionID string
}

// validateEmployeeInput normalizes and checks the form. Unlike the shift
// form, every field is validated and all messages are reported together.
// excludeID exempts the account being edited from the email uniqueness
// check.
func (s *DefaultEmployeeService) validateEmployeeInput(input EmployeeInput, excludeID string) (employeeData, error) {
	errs := utils.FieldErrors{}

	var data employeeData
	fullName := strings.TrimSpace(input.FullName)
	data.FirstName, data.LastName = splitFullName(fullName)
	if fullName == "" {
		errs.Add("full_name", "This field is required.")
	} else if n := utf8.RuneCountInString(fullName); n > maxFullNameLen {
		errs.Add("full_name", fmt.Sprintf("Ensure this value has at most %d characters (it has %d).", maxFullNameLen, n))
	}

	data.Email = strings.ToLower(strings.TrimSpace(input.Email))
	if data.Email == "" {
		errs.Add("email", "This field is required.")
	} else if !emailRE.MatchString(data.Email) {
		errs.Add("email", "Enter a valid email address.")
	} else {
		existing, err := s.EmployeeRepo.GetByEmail(data.Email)
		if err != nil {
			return data, fmt.Errorf("failed to check email uniqueness: %w", err)
		}
		if existing != nil && existing.ID != excludeID {
			errs.Add("email", "An employee with this email already exists.")
		}
	}

	data.Phone = strings.TrimSpace(input.Phone)
	if data.Phone == "" {
		errs.Add("phone", "This field is required.")
	} else if !phoneRE.MatchString(data.Phone) {
		errs.Add("phone", "Enter a valid phone number.")
	}

	data.PositionID = strings.TrimSpace(input.PositionID)
	if data.PositionID == "" {
		errs.Add("position_id", "This field is required.")
	} else {
		position, err := s.PositionRepo.GetByID(data.PositionID)
		if err != nil {
			return data, fmt.Errorf("failed to look up position %s: %w", data.PositionID, err)
		}
		if position == nil {
			errs.Add("position_id", "Select a valid position.")
		}
	}

	if len(errs) > 0 {
		return data, errs
	}
	return data, nil
}

// getEmployee fetches an account and checks it is an employee.
func (s *DefaultEmployeeService) getEmployee(id string) (*models.Employee, error) {
	account, err := s.EmployeeRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch employee %s: %w", id, err)
	}
	if account == nil || !account.IsEmployee() {
		return nil, ErrEmployeeNotFound
	}
	return account, nil
}

// positionName resolves a position id to its display name, tolerating
// blank and dangling references.
func (s *DefaultEmployeeService) positionName(id string) (string, error) {
	if id == "" {
		return "", nil
	}
	position, err := s.PositionRepo.GetByID(id)
	if err != nil {
		return "", fmt.Errorf("failed to look up position %s: %w", id, err)
	}
	if position == nil {
		return "", nil
	}
	return position.Name, nil
}

func (s *DefaultEmployeeService) summarize(account models.Employee) (models.EmployeeSummary, error) {
	position, err := s.positionName(account.PositionID)
	if err != nil {
		return models.EmployeeSummary{}, err
	}
	return models.EmployeeSummary{
		ID:         account.ID,
		EmployeeID: account.EmployeeID,
		FullName:   account.DisplayName(),
		Email:      account.Email,
		Phone:      account.Phone,
		PositionID: account.PositionID,
		Position:   position,
	}, nil
}

// Directory lists the employee accounts matching the search filters.
func (s *DefaultEmployeeService) Directory(query, positionID string) ([]models.EmployeeSummary, error) {
	accounts, err := s.EmployeeRepo.Search(strings.TrimSpace(query), strings.TrimSpace(positionID))
	if err != nil {
		return nil, fmt.Errorf("failed to search employees: %w", err)
	}

	positions, err := s.PositionRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve positions: %w", err)
	}
	names := make(map[string]string, len(positions))
	for _, p := range positions {
		names[p.ID] = p.Name
	}

	rows := make([]models.EmployeeSummary, 0, len(accounts))
	for _, account := range accounts {
		rows = append(rows, models.EmployeeSummary{
			ID:         account.ID,
			EmployeeID: account.EmployeeID,
			FullName:   account.DisplayName(),
			Email:      account.Email,
			Phone:      account.Phone,
			PositionID: account.PositionID,
			Position:   names[account.PositionID],
		})
	}
	return rows, nil
}

// EmployeeDetails returns the edit-form payload for one employee.
func (s *DefaultEmployeeService) EmployeeDetails(id string) (*models.EmployeeDetails, error) {
	account, err := s.getEmployee(id)
	if err != nil {
		return nil, err
	}
	position, err := s.positionName(account.PositionID)
	if err != nil {
		return nil, err
	}
	return &models.EmployeeDetails{
		ID:         account.ID,
		EmployeeID: account.EmployeeID,
		FirstName:  account.FirstName,
		LastName:   account.LastName,
		Email:      account.Email,
		Phone:      account.Phone,
		PositionID: account.PositionID,
		Position:   position,
	}, nil
}

// CreateEmployee creates an employee account with generated credentials.
func (s *DefaultEmployeeService) CreateEmployee(input EmployeeInput) (*models.Employee, models.OneTimeCredentials, error) {
	var none models.OneTimeCredentials

	data, err := s.validateEmployeeInput(input, "")
	if err != nil {
		return nil, none, err
	}

	tempPassword, err := utils.GenerateTemporaryPassword()
	if err != nil {
		return nil, none, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(tempPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, none, fmt.Errorf("failed to hash password: %w", err)
	}
	badge, err := utils.GenerateEmployeeID()
	if err != nil {
		return nil, none, err
	}

	now := time.Now()
	account := &models.Employee{
		ID:           uuid.New().String(),
		Role:         models.RoleEmployee,
		EmployeeID:   badge,
		FirstName:    data.FirstName,
		LastName:     data.LastName,
		Email:        data.Email,
		Phone:        data.Phone,
		PositionID:   data.PositionID,
		IsActive:     true,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.EmployeeRepo.Create(account); err != nil {
		return nil, none, fmt.Errorf("failed to create employee: %w", err)
	}

	creds := models.OneTimeCredentials{
		Login:             account.Email,
		TemporaryPassword: tempPassword,
		EmployeeID:        account.EmployeeID,
	}
	return account, creds, nil
}

// UpdateEmployee applies the validated form to an existing account.
func (s *DefaultEmployeeService) UpdateEmployee(id string, input EmployeeInput) (*models.EmployeeSummary, error) {
	account, err := s.getEmployee(id)
	if err != nil {
		return nil, err
	}
	data, err := s.validateEmployeeInput(input, account.ID)
	if err != nil {
		return nil, err
	}

	account.FirstName = data.FirstName
	account.LastName = data.LastName
	account.Email = data.Email
	account.Phone = data.Phone
	account.PositionID = data.PositionID
	account.UpdatedAt = time.Now()
	if err := s.EmployeeRepo.Update(account); err != nil {
		return nil, fmt.Errorf("failed to update employee %s: %w", id, err)
	}

	row, err := s.summarize(*account)
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// ResetPassword replaces an employee's password with a fresh temporary one.
func (s *DefaultEmployeeService) ResetPassword(id string) (models.OneTimeCredentials, error) {
	var none models.OneTimeCredentials

	account, err := s.getEmployee(id)
	if err != nil {
		return none, err
	}

	tempPassword, err := utils.GenerateTemporaryPassword()
	if err != nil {
		return none, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(tempPassword), bcrypt.DefaultCost)
	if err != nil {
		return none, fmt.Errorf("failed to hash password: %w", err)
	}

	account.PasswordHash = string(hash)
	account.UpdatedAt = time.Now()
	if err := s.EmployeeRepo.Update(account); err != nil {
		return none, fmt.Errorf("failed to reset password for %s: %w", id, err)
	}

	return models.OneTimeCredentials{
		Login:             account.Email,
		TemporaryPassword: tempPassword,
		EmployeeID:        account.EmployeeID,
	}, nil
}

// DeleteEmployee removes the account, its assignments, and its
// unavailability marks. Shifts keep their other assignees.
func (s *DefaultEmployeeService) DeleteEmployee(id string) (string, error) {
	account, err := s.getEmployee(id)
	if err != nil {
		return "", err
	}
	label := account.DisplayName()

	if err := s.ShiftRepo.RemoveEmployeeFromAll(account.ID); err != nil {
		return "", err
	}
	if err := s.UnavailabilityRepo.DeleteForEmployee(account.ID); err != nil {
		return "", err
	}
	if err := s.EmployeeRepo.Delete(account.ID); err != nil {
		return "", fmt.Errorf("failed to delete employee %s: %w", id, err)
	}
	return label, nil
}
