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

// BookingNotifier is told about every booking that carries an email.
type BookingNotifier interface {
	NotifyBookingCreated(ctx context.Context, booking *model.Booking, event *model.Event) error
}

type BookingService struct {
	bookings repository.BookingRepository
	events   repository.EventRepository
	notifier BookingNotifier
}

// NewBookingService builds the service. notifier may be nil.
func NewBookingService(bookings repository.BookingRepository, events repository.EventRepository, notifier BookingNotifier) *BookingService {
	return &BookingService{bookings: bookings, events: events, notifier: notifier}
}

func (s *BookingService) GetBookings(ctx context.Context) ([]model.Booking, error) {
	return s.bookings.GetAll(ctx)
}

// CreateBooking stores a booking for an existing event. An unknown event is a
// 400, not a 404: the request itself references something invalid.
func (s *BookingService) CreateBooking(ctx context.Context, req *model.CreateBookingRequest) (*model.Booking, error) {
	event, err := s.events.GetByID(ctx, req.EventID)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, errs.NewBadRequestError(
			fmt.Sprintf("The referenced event %d does not exist", req.EventID),
			true,
			codePtr("EVENT_NOT_FOUND"),
			[]errs.FieldError{{Field: "eventid", Error: "must reference an existing event"}},
			nil,
		)
	}

	booking, err := s.bookings.Create(ctx, &model.Booking{
		UserName: req.UserName,
		Email:    req.Email,
		EventID:  req.EventID,
	})
	if err != nil {
		return nil, err
	}

	metrics.EntitiesCreated.WithLabelValues(metrics.EntityBooking).Inc()

	logger := zerolog.Ctx(ctx).With().
		Int64("booking_id", booking.ID).
		Int64("event_id", booking.EventID).
		Logger()
	logger.Info().Str("event", "booking_created").Msg("booking created")

	if booking.Email != "" && s.notifier != nil {
		if err := s.notifier.NotifyBookingCreated(ctx, booking, event); err != nil {
			metrics.Notifications.WithLabelValues("failed").Inc()
			logger.Error().Err(err).Msg("failed to queue booking confirmation")
		} else {
			metrics.Notifications.WithLabelValues("queued").Inc()
		}
	}

	return booking, nil
}
