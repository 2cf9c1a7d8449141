package model

import "github.com/go-playground/validator/v10"

type Booking struct {
	ID       int64  `json:"id" gorm:"primaryKey"`
	UserName string `json:"userName" gorm:"not null"`
	Email    string `json:"email,omitempty"`
	EventID  int64  `json:"eventId" gorm:"not null"`

	Event *Event `json:"event,omitempty" gorm:"foreignKey:EventID"`
}

// ----------------------------------------------------------------------------

type GetBookingsRequest struct{}

func (r *GetBookingsRequest) Validate() error { return nil }

type CreateBookingRequest struct {
	UserName string `json:"userName" validate:"required"`
	EventID  int64  `json:"eventId"`
	Email    string `json:"email" validate:"omitempty,email"`
}

func (r *CreateBookingRequest) Validate() error {
	return validator.New().Struct(r)
}
