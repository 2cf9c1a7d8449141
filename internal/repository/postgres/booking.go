package postgres

import (
	"context"
	"fmt"

	"github.com/deppfellow/go-eventbooking/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) GetAll(ctx context.Context) ([]model.Booking, error) {
	bookings := []model.Booking{}
	if err := r.db.WithContext(ctx).Preload("Event").Order("id").Find(&bookings).Error; err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return bookings, nil
}

func (r *BookingRepository) ListByEvent(ctx context.Context, eventID int64) ([]model.Booking, error) {
	bookings := []model.Booking{}
	err := r.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("id").
		Find(&bookings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings for event %d: %w", eventID, err)
	}
	return bookings, nil
}

func (r *BookingRepository) Create(ctx context.Context, booking *model.Booking) (*model.Booking, error) {
	created := *booking
	created.ID = 0
	created.Event = nil

	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&created).Error; err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}
	return &created, nil
}
