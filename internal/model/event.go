package model

import (
	"time"

	"github.com/go-playground/validator/v10"
)

type Event struct {
	ID       int64     `json:"id" gorm:"primaryKey"`
	Title    string    `json:"title" gorm:"not null"`
	Location string    `json:"location"`
	Date     time.Time `json:"date"`
	Capacity int       `json:"capacity"`

	// Bookings is only populated when a single event is fetched.
	Bookings []Booking `json:"bookings,omitempty" gorm:"foreignKey:EventID"`
}

// ----------------------------------------------------------------------------

type GetEventsRequest struct{}

func (r *GetEventsRequest) Validate() error { return nil }

type GetEventRequest struct {
	ID int64 `param:"id" validate:"required,min=1"`
}

func (r *GetEventRequest) Validate() error {
	return validator.New().Struct(r)
}

type CreateEventRequest struct {
	Title    string    `json:"title" validate:"required"`
	Location string    `json:"location"`
	Date     time.Time `json:"date"`
	Capacity int       `json:"capacity"`
}

func (r *CreateEventRequest) Validate() error {
	return validator.New().Struct(r)
}
