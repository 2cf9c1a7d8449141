package memory

import (
	"context"
	"fmt"

	"github.com/deppfellow/go-eventbooking/internal/model"
)

// EventLookup resolves the event a booking points at.
type EventLookup interface {
	GetByID(ctx context.Context, id int64) (*model.Event, error)
}

type BookingRepository struct {
	bookings *collection[model.Booking]
	events   EventLookup
}

func NewBookingRepository(events EventLookup) *BookingRepository {
	return &BookingRepository{
		bookings: newCollection(func(b *model.Booking, id int64) { b.ID = id }),
		events:   events,
	}
}

func (r *BookingRepository) GetAll(ctx context.Context) ([]model.Booking, error) {
	return r.resolve(ctx, r.bookings.all())
}

func (r *BookingRepository) ListByEvent(_ context.Context, eventID int64) ([]model.Booking, error) {
	return r.bookings.filter(func(b model.Booking) bool {
		return b.EventID == eventID
	}), nil
}

func (r *BookingRepository) Create(_ context.Context, booking *model.Booking) (*model.Booking, error) {
	stored := *booking
	stored.Event = nil

	created := r.bookings.insert(stored)
	return &created, nil
}

// resolve fills in Event on every booking. Bookings whose event no longer
// exists are returned without one.
func (r *BookingRepository) resolve(ctx context.Context, bookings []model.Booking) ([]model.Booking, error) {
	cache := make(map[int64]*model.Event)

	for i := range bookings {
		eventID := bookings[i].EventID

		event, seen := cache[eventID]
		if !seen {
			var err error
			event, err = r.events.GetByID(ctx, eventID)
			if err != nil {
				return nil, fmt.Errorf("resolving event %d: %w", eventID, err)
			}
			cache[eventID] = event
		}
		bookings[i].Event = event
	}
	return bookings, nil
}
