package notification

import (
	"fmt"
	"time"

	"shiftflow/config"
	"shiftflow/models"
	"shiftflow/services/tasks"
	"shiftflow/utils"
)

// ScheduleReminder enqueues a pre-shift reminder for one employee. Shifts
// already inside the lead window get no reminder.
func (s *DefaultNotificationService) ScheduleReminder(shift models.Shift, employeeID string) error {
	if s.AsynqClient == nil {
		return nil
	}

	day, err := time.ParseInLocation(utils.DateLayout, shift.Date, time.Local)
	if err != nil {
		return fmt.Errorf("invalid shift date %q: %w", shift.Date, err)
	}
	start := day.Add(time.Duration(shift.StartMinutes()) * time.Minute)
	fireAt := start.Add(-time.Duration(config.AppConfig.ReminderLeadMinutes) * time.Minute)
	if !fireAt.After(time.Now()) {
		return nil
	}

	payload := models.ReminderPayload{
		ShiftID:    shift.ID,
		EmployeeID: employeeID,
		Title:      "Upcoming shift",
		Body:       fmt.Sprintf("Your %s shift starts at %s.", s.positionName(shift.PositionID), shift.StartTime),
		FireDate:   fireAt.Format(time.RFC3339),
	}
	task, opts, err := tasks.NewShiftReminderTask(payload, fireAt)
	if err != nil {
		return err
	}
	if _, err := s.AsynqClient.Enqueue(task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue reminder task: %w", err)
	}
	return nil
}
