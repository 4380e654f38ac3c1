package notification

import (
	"context"
	"fmt"

	employeeRepo "shiftflow/database/repository/employee"
	positionRepo "shiftflow/database/repository/position"
	"shiftflow/models"

	"github.com/hibiken/asynq"
)

// NotificationService sends FCM pushes and schedules shift reminders.
// Delivery is best-effort: publishing a shift never fails because a push
// could not be sent.
type NotificationService interface {
	// ShiftPublished fans out a push to every assigned employee and
	// schedules their pre-shift reminders. Runs in the background.
	ShiftPublished(shift models.Shift)
	// SendPush delivers one message to an account's registered device.
	// Accounts without a device are skipped.
	SendPush(ctx context.Context, employeeID, title, body string, data map[string]string) error
	// ScheduleReminder enqueues a reminder that fires a configured lead
	// time before the shift starts.
	ScheduleReminder(shift models.Shift, employeeID string) error
}

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	EmployeeRepo employeeRepo.EmployeeRepository
	PositionRepo positionRepo.PositionRepository
	AsynqClient  *asynq.Client
}

func NewDefaultNotificationService(
	employees employeeRepo.EmployeeRepository,
	positions positionRepo.PositionRepository,
	asynqClient *asynq.Client,
) (*DefaultNotificationService, error) {
	if employees == nil || positions == nil {
		return nil, fmt.Errorf("notification service initialization error: employee or position repository is nil")
	}
	return &DefaultNotificationService{
		EmployeeRepo: employees,
		PositionRepo: positions,
		AsynqClient:  asynqClient,
	}, nil
}
