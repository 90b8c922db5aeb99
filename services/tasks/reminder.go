// Package tasks defines the queue task types shared by the booking
// engine (producer) and the cron worker (consumer).
package tasks

import (
	"encoding/json"
	"fmt"
	"time"

	"hotelms/models"

	"github.com/hibiken/asynq"
)

// TypeSendReminder identifies check-in reminder tasks on the queue.
const TypeSendReminder = "reminder:send"

// NewReminderTask packs the reminder payload into an asynq task
// scheduled to fire at the given time.
func NewReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to encode reminder payload: %w", err)
	}
	task := asynq.NewTask(TypeSendReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}
