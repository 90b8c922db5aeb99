package booking

import (
	"fmt"
	"time"

	"hotelms/models"
	"hotelms/services/tasks"

	"github.com/hibiken/asynq"
)

// ReminderScheduler enqueues check-in reminders for new bookings.
type ReminderScheduler interface {
	ScheduleCheckInReminder(b *models.Booking, serviceName string) error
}

// AsynqReminderScheduler implements ReminderScheduler on an asynq queue.
type AsynqReminderScheduler struct {
	client *asynq.Client
}

func NewAsynqReminderScheduler(client *asynq.Client) *AsynqReminderScheduler {
	return &AsynqReminderScheduler{client: client}
}

// ScheduleCheckInReminder queues a reminder firing 24 hours before
// check-in. Bookings made inside that window get no reminder.
func (s *AsynqReminderScheduler) ScheduleCheckInReminder(b *models.Booking, serviceName string) error {
	fireAt := b.CheckIn.Add(-24 * time.Hour)
	if !fireAt.After(time.Now()) {
		return nil
	}

	payload := models.ReminderPayload{
		BookingID:   b.ID,
		UserID:      b.UserID,
		ServiceName: serviceName,
		CheckInDate: b.CheckIn.Format("2006-01-02"),
	}
	task, opts, err := tasks.NewReminderTask(payload, fireAt)
	if err != nil {
		return fmt.Errorf("failed to build reminder task: %w", err)
	}
	if _, err := s.client.Enqueue(task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue reminder task: %w", err)
	}
	return nil
}
