package employee

import (
	"fmt"
	"strings"

	"shiftflow/models"
	"shiftflow/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Authenticate verifies a login/password pair. Logins are matched against
// the account email, case-insensitively.
func (s *DefaultEmployeeService) Authenticate(login, password string) (*models.Employee, error) {
	email := strings.ToLower(strings.TrimSpace(login))
	if email == "" || password == "" {
		return nil, ErrInvalidLogin
	}

	account, err := s.EmployeeRepo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("Authenticate: failed to fetch account", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if account == nil || !account.IsActive {
		return nil, ErrInvalidLogin
	}
	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidLogin
	}
	return account, nil
}

// GetByID retrieves an account by id.
func (s *DefaultEmployeeService) GetByID(id string) (*models.Employee, error) {
	account, err := s.EmployeeRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch account %s: %w", id, err)
	}
	if account == nil {
		return nil, ErrEmployeeNotFound
	}
	return account, nil
}
