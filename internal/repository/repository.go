// Package repository handles all interactions with the entity stores.
//
// It declares the store contracts the service layer depends on. Two variants
// implement them: memory (process-local collections) and postgres (tables
// reached through gorm). Absent records are reported as nil or false, never as
// errors; an error always means the store itself failed.
package repository

import (
	"context"

	"github.com/deppfellow/go-eventbooking/internal/model"
)

type UserRepository interface {
	// GetAll returns every user in insertion order.
	GetAll(ctx context.Context) ([]model.User, error)
	// GetByID returns nil when no user has the id.
	GetByID(ctx context.Context, id int64) (*model.User, error)
	// Search matches name as a case-insensitive substring.
	Search(ctx context.Context, name string) ([]model.User, error)
	GetByStatus(ctx context.Context, active bool) ([]model.User, error)
	// Create assigns the id and returns the stored user.
	Create(ctx context.Context, user *model.User) (*model.User, error)
	// Update reports false when the user does not exist.
	Update(ctx context.Context, id int64, patch model.UserPatch) (bool, error)
	// Delete reports false when the user does not exist.
	Delete(ctx context.Context, id int64) (bool, error)
}

type EventRepository interface {
	GetAll(ctx context.Context) ([]model.Event, error)
	GetByID(ctx context.Context, id int64) (*model.Event, error)
	Create(ctx context.Context, event *model.Event) (*model.Event, error)
}

type BookingRepository interface {
	// GetAll returns every booking with its Event resolved.
	GetAll(ctx context.Context) ([]model.Booking, error)
	ListByEvent(ctx context.Context, eventID int64) ([]model.Booking, error)
	Create(ctx context.Context, booking *model.Booking) (*model.Booking, error)
}
