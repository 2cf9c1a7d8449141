package job

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const (
	TaskBookingConfirmation = "email:booking_confirmation"
)

type BookingConfirmationPayload struct {
	To            string    `json:"to"`
	BookingID     int64     `json:"booking_id"`
	UserName      string    `json:"user_name"`
	EventTitle    string    `json:"event_title"`
	EventDate     time.Time `json:"event_date"`
	EventLocation string    `json:"event_location"`
}

func NewBookingConfirmationTask(p BookingConfirmationPayload) (*asynq.Task, error) {
	payload, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskBookingConfirmation,
		payload,
		asynq.MaxRetry(3),
		asynq.Queue("default"),
		asynq.Timeout(30*time.Second),
	), nil
}
