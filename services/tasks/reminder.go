package tasks

import (
	"encoding/json"
	"time"

	"shiftflow/models"

	"github.com/hibiken/asynq"
)

const TypeShiftReminder = "reminder:shift"

func NewShiftReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeShiftReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}
