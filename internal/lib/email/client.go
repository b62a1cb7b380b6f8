// Package email provides an email sending client.
//
// It uses Resend (resend-go) as the email provider and renders bodies from
// HTML templates embedded in the binary.
package email

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"
	"github.com/rs/zerolog"

	"github.com/deppfellow/blogs-server/internal/config"
)

// Client wraps the Resend client, the sender address and a logger.
type Client struct {
	client *resend.Client
	from   string
	logger *zerolog.Logger
}

// NewClient creates an email Client from the integration config.
func NewClient(cfg *config.Config, logger *zerolog.Logger) *Client {
	return &Client{
		client: resend.NewClient(cfg.Integration.ResendAPIKey),
		from:   cfg.Integration.EmailFrom,
		logger: logger,
	}
}

// SendEmail renders templateName with data and sends it to a single recipient.
func (c *Client) SendEmail(ctx context.Context, to, subject string, templateName Template, data map[string]string) error {
	body, err := Render(templateName, data)
	if err != nil {
		return err
	}

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", "Blogs", c.from),
		To:      []string{to},
		Subject: subject,
		Html:    body,
	}

	sent, err := c.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	c.logger.Debug().
		Str("email_id", sent.Id).
		Str("template", string(templateName)).
		Msg("email sent")

	return nil
}
