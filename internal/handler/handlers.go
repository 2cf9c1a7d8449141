package handler

import (
	"github.com/deppfellow/go-eventbooking/internal/server"
	"github.com/deppfellow/go-eventbooking/internal/service"
)

// Handlers groups every HTTP handler so the router receives a single value.
type Handlers struct {
	Health   *HealthHandler
	Users    *UserHandler
	Events   *EventHandler
	Bookings *BookingHandler
	Email    *EmailHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:   NewHealthHandler(s),
		Users:    NewUserHandler(s, services.Users),
		Events:   NewEventHandler(s, services.Events),
		Bookings: NewBookingHandler(s, services.Bookings),
		Email:    NewEmailHandler(s),
	}
}
