package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/deppfellow/go-eventbooking/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) GetAll(ctx context.Context) ([]model.Event, error) {
	events := []model.Event{}
	if err := r.db.WithContext(ctx).Order("id").Find(&events).Error; err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return events, nil
}

func (r *EventRepository) GetByID(ctx context.Context, id int64) (*model.Event, error) {
	var event model.Event
	err := r.db.WithContext(ctx).First(&event, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get event %d: %w", id, err)
	}
	return &event, nil
}

func (r *EventRepository) Create(ctx context.Context, event *model.Event) (*model.Event, error) {
	created := *event
	created.ID = 0
	created.Bookings = nil

	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&created).Error; err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}
	return &created, nil
}
