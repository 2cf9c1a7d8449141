package job

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/deppfellow/go-eventbooking/internal/config"
	"github.com/deppfellow/go-eventbooking/internal/lib/email"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
)

// Mailer delivers booking confirmations.
type Mailer interface {
	Enabled() bool
	SendBookingConfirmationEmail(to string, d email.BookingDetails) error
}

func (j *JobService) InitHandlers(cfg *config.Config, logger *zerolog.Logger) {
	j.mailer = email.NewClient(cfg, logger)
}

func (j *JobService) handleBookingConfirmationTask(ctx context.Context, t *asynq.Task) error {
	var p BookingConfirmationPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		// A malformed payload will never succeed, so skip retries.
		return fmt.Errorf("failed to unmarshal booking confirmation payload: %v: %w", err, asynq.SkipRetry)
	}

	logger := j.logger.With().
		Str("type", "booking_confirmation").
		Int64("booking_id", p.BookingID).
		Str("to", p.To).
		Logger()

	if j.mailer == nil || !j.mailer.Enabled() {
		logger.Warn().Msg("email delivery disabled, dropping booking confirmation")
		return nil
	}

	logger.Info().Msg("processing booking confirmation task")

	err := j.mailer.SendBookingConfirmationEmail(p.To, email.BookingDetails{
		BookingID:     strconv.FormatInt(p.BookingID, 10),
		UserName:      p.UserName,
		EventTitle:    p.EventTitle,
		EventDate:     p.EventDate.UTC().Format("Mon, 02 Jan 2006 15:04 MST"),
		EventLocation: p.EventLocation,
	})
	if err != nil {
		logger.Error().Err(err).Msg("failed to send booking confirmation")
		return err // asynq retries failed tasks
	}

	logger.Info().Msg("sent booking confirmation")
	return nil
}
