package repository

import (
	"errors"
	"fmt"

	"github.com/deppfellow/go-eventbooking/internal/repository/memory"
	"github.com/deppfellow/go-eventbooking/internal/repository/postgres"
	"github.com/deppfellow/go-eventbooking/internal/server"
)

// Repositories groups the stores handed to the service layer.
type Repositories struct {
	Users    UserRepository
	Events   EventRepository
	Bookings BookingRepository
}

// NewRepositories builds the store variant selected by store.driver.
func NewRepositories(s *server.Server) (*Repositories, error) {
	if !s.Config.UsesPostgres() {
		return NewMemoryRepositories(s.Config.Store.Seed), nil
	}

	if s.DB == nil {
		return nil, errors.New("postgres store selected but no database connection")
	}

	db, err := postgres.Open(s.DB.Pool, s.Logger, s.Config.Observability.Logging.SlowQueryThreshold)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize repositories: %w", err)
	}

	s.Logger.Info().Str("store", "postgres").Msg("repositories ready")

	return &Repositories{
		Users:    postgres.NewUserRepository(db),
		Events:   postgres.NewEventRepository(db),
		Bookings: postgres.NewBookingRepository(db),
	}, nil
}

// NewMemoryRepositories returns process-local stores, optionally preloaded
// with the sample users.
func NewMemoryRepositories(seed bool) *Repositories {
	users := memory.NewUserRepository()
	if seed {
		users = memory.NewSeededUserRepository()
	}

	events := memory.NewEventRepository()

	return &Repositories{
		Users:    users,
		Events:   events,
		Bookings: memory.NewBookingRepository(events),
	}
}
