package employee

import (
	"fmt"
	"strings"
	"time"
)

// RegisterDeviceToken stores the push token notifications are sent to.
// An empty token clears the registration.
func (s *DefaultEmployeeService) RegisterDeviceToken(userID, token string) error {
	account, err := s.GetByID(userID)
	if err != nil {
		return err
	}
	account.FCMToken = strings.TrimSpace(token)
	account.UpdatedAt = time.Now()
	if err := s.EmployeeRepo.Update(account); err != nil {
		return fmt.Errorf("failed to store device token for %s: %w", userID, err)
	}
	return nil
}

// SetAvatarURL stores the uploaded avatar location on the account.
func (s *DefaultEmployeeService) SetAvatarURL(userID, url string) error {
	account, err := s.GetByID(userID)
	if err != nil {
		return err
	}
	account.AvatarURL = url
	account.UpdatedAt = time.Now()
	if err := s.EmployeeRepo.Update(account); err != nil {
		return fmt.Errorf("failed to store avatar for %s: %w", userID, err)
	}
	return nil
}
