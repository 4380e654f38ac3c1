package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"shiftflow/config"
	shiftRepo "shiftflow/database/repository/shift"
	"shiftflow/models"
	"shiftflow/services/notification"
	"shiftflow/services/tasks"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

// InitReminderWorker runs the async worker in background.
func InitReminderWorker(notifSvc notification.NotificationService, shifts shiftRepo.ShiftRepository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeShiftReminder, handleReminderTask(notifSvc, shifts))

	// Start Redis health monitor
	go monitorRedisConnection()

	// Start async worker with retry logic
	go func() {
		log.Println("[ReminderWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReminderWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReminderWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

// handleReminderTask re-validates the shift before pushing: it may have
// been deleted, reverted to draft, or reassigned since the reminder was
// enqueued. Stale reminders are dropped without error so asynq does not
// retry them.
func handleReminderTask(notifSvc notification.NotificationService, shifts shiftRepo.ShiftRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ReminderHandler] Invalid payload: %v", err)
			return err
		}

		shift, err := shifts.GetActiveByID(p.ShiftID)
		if err != nil {
			log.Printf("[ReminderHandler] Failed to load shift %s: %v", p.ShiftID, err)
			return err
		}
		if shift == nil || shift.Status != models.ShiftStatusPublished {
			return nil
		}
		assigned := false
		for _, id := range shift.AssignedEmployeeIDs {
			if id == p.EmployeeID {
				assigned = true
				break
			}
		}
		if !assigned {
			return nil
		}

		data := map[string]string{
			"type":       "shift_reminder",
			"shift_id":   shift.ID,
			"date":       shift.Date,
			"start_time": shift.StartTime,
			"end_time":   shift.EndTime,
			"fire_date":  p.FireDate,
		}
		if err := notifSvc.SendPush(ctx, p.EmployeeID, p.Title, p.Body, data); err != nil {
			log.Printf("[ReminderHandler] Failed to send notification: %v", err)
			return err
		}
		return nil
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[ReminderWorker] Redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
