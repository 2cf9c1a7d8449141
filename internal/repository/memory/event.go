package memory

import (
	"context"

	"github.com/deppfellow/go-eventbooking/internal/model"
)

type EventRepository struct {
	events *collection[model.Event]
}

func NewEventRepository() *EventRepository {
	return &EventRepository{
		events: newCollection(func(e *model.Event, id int64) { e.ID = id }),
	}
}

func (r *EventRepository) GetAll(_ context.Context) ([]model.Event, error) {
	return r.events.all(), nil
}

func (r *EventRepository) GetByID(_ context.Context, id int64) (*model.Event, error) {
	e, ok := r.events.get(id)
	if !ok {
		return nil, nil
	}
	return &e, nil
}

func (r *EventRepository) Create(_ context.Context, event *model.Event) (*model.Event, error) {
	stored := *event
	stored.Bookings = nil

	created := r.events.insert(stored)
	return &created, nil
}
