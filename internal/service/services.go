package service

import (
	"github.com/deppfellow/go-eventbooking/internal/lib/job"
	"github.com/deppfellow/go-eventbooking/internal/repository"
	"github.com/deppfellow/go-eventbooking/internal/server"
)

type Services struct {
	Users    *UserService
	Events   *EventService
	Bookings *BookingService
	Job      *job.JobService
}

func NewServices(s *server.Server, repos *repository.Repositories) *Services {
	var notifier BookingNotifier
	if s.Job != nil {
		notifier = s.Job
	}

	return &Services{
		Users:    NewUserService(repos.Users),
		Events:   NewEventService(repos.Events, repos.Bookings),
		Bookings: NewBookingService(repos.Bookings, repos.Events, notifier),
		Job:      s.Job,
	}
}

func codePtr(code string) *string {
	return &code
}
