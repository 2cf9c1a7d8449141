package service

import (
	"context"
	"fmt"

	"github.com/deppfellow/go-eventbooking/internal/errs"
	"github.com/deppfellow/go-eventbooking/internal/metrics"
	"github.com/deppfellow/go-eventbooking/internal/model"
	"github.com/deppfellow/go-eventbooking/internal/repository"
	"github.com/rs/zerolog"
)

type EventService struct {
	events   repository.EventRepository
	bookings repository.BookingRepository
}

func NewEventService(events repository.EventRepository, bookings repository.BookingRepository) *EventService {
	return &EventService{events: events, bookings: bookings}
}

func (s *EventService) GetEvents(ctx context.Context) ([]model.Event, error) {
	return s.events.GetAll(ctx)
}

// GetEvent returns the event together with its bookings.
func (s *EventService) GetEvent(ctx context.Context, id int64) (*model.Event, error) {
	event, err := s.events.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, errs.NewNotFoundError(fmt.Sprintf("Event %d not found", id), true, codePtr("EVENT_NOT_FOUND"))
	}

	bookings, err := s.bookings.ListByEvent(ctx, id)
	if err != nil {
		return nil, err
	}
	event.Bookings = bookings

	return event, nil
}

func (s *EventService) CreateEvent(ctx context.Context, req *model.CreateEventRequest) (*model.Event, error) {
	event, err := s.events.Create(ctx, &model.Event{
		Title:    req.Title,
		Location: req.Location,
		Date:     req.Date,
		Capacity: req.Capacity,
	})
	if err != nil {
		return nil, err
	}

	metrics.EntitiesCreated.WithLabelValues(metrics.EntityEvent).Inc()
	zerolog.Ctx(ctx).Info().
		Str("event", "event_created").
		Int64("event_id", event.ID).
		Str("title", event.Title).
		Msg("event created")

	return event, nil
}
