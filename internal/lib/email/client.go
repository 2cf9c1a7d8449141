// Package email sends transactional email through Resend.
package email

import (
	"github.com/deppfellow/go-eventbooking/internal/config"
	"github.com/pkg/errors"
	"github.com/resend/resend-go/v2"
	"github.com/rs/zerolog"
)

// ErrNotConfigured is returned when no Resend API key is set.
var ErrNotConfigured = errors.New("email delivery is not configured")

type Client struct {
	client *resend.Client
	from   string
	logger *zerolog.Logger
}

func NewClient(cfg *config.Config, logger *zerolog.Logger) *Client {
	c := &Client{
		from:   cfg.Integration.EmailFrom,
		logger: logger,
	}
	if cfg.Integration.ResendAPIKey != "" {
		c.client = resend.NewClient(cfg.Integration.ResendAPIKey)
	}
	return c
}

// Enabled reports whether the client can deliver mail.
func (c *Client) Enabled() bool {
	return c.client != nil
}

func (c *Client) SendEmail(to, subject string, templateName Template, data map[string]string) error {
	if !c.Enabled() {
		return ErrNotConfigured
	}

	html, err := Render(templateName, data)
	if err != nil {
		return err
	}

	params := &resend.SendEmailRequest{
		From:    c.from,
		To:      []string{to},
		Subject: subject,
		Html:    html,
	}

	if _, err := c.client.Emails.Send(params); err != nil {
		return errors.Wrap(err, "failed to send email")
	}

	return nil
}
