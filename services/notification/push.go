package notification

import (
	"context"
	"fmt"
	"time"

	"shiftflow/models"
	"shiftflow/utils"

	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"
)

// ShiftPublished fans out "New shift published" pushes and schedules
// reminders for every assigned employee. The work happens in the
// background so publish requests never wait on FCM.
func (s *DefaultNotificationService) ShiftPublished(shift models.Shift) {
	if len(shift.AssignedEmployeeIDs) == 0 {
		return
	}
	go s.fanOutPublished(shift)
}

func (s *DefaultNotificationService) fanOutPublished(shift models.Shift) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	logger := utils.GetLogger()

	position := s.positionName(shift.PositionID)
	body := fmt.Sprintf("%s on %s from %s to %s", position, shift.Date, shift.StartTime, shift.EndTime)
	data := map[string]string{
		"type":       "shift_published",
		"shift_id":   shift.ID,
		"date":       shift.Date,
		"start_time": shift.StartTime,
		"end_time":   shift.EndTime,
	}

	for _, employeeID := range shift.AssignedEmployeeIDs {
		if err := s.SendPush(ctx, employeeID, "New shift published", body, data); err != nil {
			logger.Error("Failed to push shift publication",
				zap.Error(err), zap.String("shiftID", shift.ID), zap.String("employeeID", employeeID))
		}
		if err := s.ScheduleReminder(shift, employeeID); err != nil {
			logger.Error("Failed to schedule shift reminder",
				zap.Error(err), zap.String("shiftID", shift.ID), zap.String("employeeID", employeeID))
		}
	}
}

// SendPush looks up the account's FCM token and sends one message.
// Missing tokens and a disabled FCM client are quiet no-ops.
func (s *DefaultNotificationService) SendPush(ctx context.Context, employeeID, title, body string, data map[string]string) error {
	if utils.FCMClient == nil {
		return nil
	}
	account, err := s.EmployeeRepo.GetByID(employeeID)
	if err != nil {
		return fmt.Errorf("SendPush: could not find account %s: %w", employeeID, err)
	}
	if account == nil || account.FCMToken == "" {
		return nil
	}

	msg := &messaging.Message{
		Token: account.FCMToken,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}
	if _, err := utils.FCMClient.Send(ctx, msg); err != nil {
		return fmt.Errorf("SendPush: failed to send FCM message: %w", err)
	}
	return nil
}

func (s *DefaultNotificationService) positionName(positionID string) string {
	position, err := s.PositionRepo.GetByID(positionID)
	if err != nil || position == nil {
		return "Shift"
	}
	return position.Name
}
