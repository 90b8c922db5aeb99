package models

// ReminderPayload is the asynq task payload for a check-in reminder.
type ReminderPayload struct {
	BookingID   string `json:"bookingId"`
	UserID      string `json:"userId"`
	ServiceName string `json:"serviceName"`
	CheckInDate string `json:"checkInDate"`
}
