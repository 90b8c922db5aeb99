package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"hotelms/config"
	userRepo "hotelms/database/repository/user"
	"hotelms/models"
	"hotelms/services/tasks"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// InitReminderWorker runs the async worker in background. Fired
// reminders are delivered as in-document notifications on the user.
func InitReminderWorker(users userRepo.UserRepository) {
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
	mux.HandleFunc(tasks.TypeSendReminder, handleReminderTask(users))

	go func() {
		log.Println("[ReminderWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReminderWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReminderWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleReminderTask(users userRepo.UserRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ReminderHandler] invalid payload: %v", err)
			return err
		}

		n := models.Notification{
			ID:      uuid.New().String(),
			Type:    "checkin_reminder",
			Message: fmt.Sprintf("Reminder: your stay at %s starts on %s.", p.ServiceName, p.CheckInDate),
			Data: map[string]any{
				"bookingId":   p.BookingID,
				"checkInDate": p.CheckInDate,
			},
			CreatedAt: time.Now(),
		}

		if err := users.AppendNotification(p.UserID, n); err != nil {
			log.Printf("[ReminderHandler] failed to notify user %s: %v", p.UserID, err)
			return err
		}

		log.Printf("[ReminderHandler] reminder delivered for booking %s", p.BookingID)
		return nil
	}
}
