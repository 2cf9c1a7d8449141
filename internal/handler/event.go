package handler

import (
	"fmt"

	"github.com/deppfellow/go-eventbooking/internal/model"
	"github.com/deppfellow/go-eventbooking/internal/server"
	"github.com/deppfellow/go-eventbooking/internal/service"
	"github.com/labstack/echo/v4"
)

type EventHandler struct {
	Handler
	eventService *service.EventService
}

func NewEventHandler(s *server.Server, eventService *service.EventService) *EventHandler {
	return &EventHandler{
		Handler:      NewHandler(s),
		eventService: eventService,
	}
}

func (h *EventHandler) GetEvents(c echo.Context, _ *model.GetEventsRequest) ([]model.Event, error) {
	return h.eventService.GetEvents(c.Request().Context())
}

// GetEvent returns the event together with its bookings.
func (h *EventHandler) GetEvent(c echo.Context, req *model.GetEventRequest) (*model.Event, error) {
	return h.eventService.GetEvent(c.Request().Context(), req.ID)
}

func (h *EventHandler) CreateEvent(c echo.Context, req *model.CreateEventRequest) (*model.Event, error) {
	event, err := h.eventService.CreateEvent(c.Request().Context(), req)
	if err != nil {
		return nil, err
	}

	c.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("/events/%d", event.ID))
	return event, nil
}
