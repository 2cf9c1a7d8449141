// Package job runs background work on asynq, backed by Redis.
package job

import (
	"context"
	"fmt"

	"github.com/deppfellow/go-eventbooking/internal/config"
	"github.com/deppfellow/go-eventbooking/internal/model"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
)

// Enqueuer is the part of asynq.Client the service needs.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
	Close() error
}

type JobService struct {
	Client Enqueuer

	server *asynq.Server
	mailer Mailer
	logger *zerolog.Logger
}

func NewJobService(logger *zerolog.Logger, cfg *config.Config) *JobService {
	redisAddr := cfg.Redis.Address

	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr: redisAddr,
	})

	server := asynq.NewServer(
		asynq.RedisClientOpt{Addr: redisAddr},
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"critical": 6,
				"default":  3,
				"low":      1,
			},
			Logger: newAsynqLogger(logger),
		},
	)

	return &JobService{
		Client: client,
		server: server,
		logger: logger,
	}
}

func (j *JobService) mux() *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TaskBookingConfirmation, j.handleBookingConfirmationTask)
	return mux
}

// Start runs the worker in the background and returns immediately.
func (j *JobService) Start() error {
	j.logger.Info().Msg("starting background job server")
	return j.server.Start(j.mux())
}

func (j *JobService) Stop() {
	j.logger.Info().Msg("stopping background job server")
	if j.server != nil {
		j.server.Shutdown()
	}
	if err := j.Client.Close(); err != nil {
		j.logger.Error().Err(err).Msg("failed to close job client")
	}
}

// NotifyBookingCreated queues a confirmation email for booking.
func (j *JobService) NotifyBookingCreated(ctx context.Context, booking *model.Booking, event *model.Event) error {
	task, err := NewBookingConfirmationTask(BookingConfirmationPayload{
		To:            booking.Email,
		BookingID:     booking.ID,
		UserName:      booking.UserName,
		EventTitle:    event.Title,
		EventDate:     event.Date,
		EventLocation: event.Location,
	})
	if err != nil {
		return fmt.Errorf("failed to build booking confirmation task: %w", err)
	}

	info, err := j.Client.EnqueueContext(ctx, task)
	if err != nil {
		return fmt.Errorf("failed to enqueue booking confirmation: %w", err)
	}

	j.logger.Debug().
		Str("task_id", info.ID).
		Str("queue", info.Queue).
		Int64("booking_id", booking.ID).
		Msg("enqueued booking confirmation")
	return nil
}
