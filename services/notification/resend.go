package notification

import (
	"context"
	"fmt"

	"webmaker/models"

	"github.com/resend/resend-go/v2"
)

// resendChannel delivers through the Resend HTTP API. Used when no SMTP
// credentials are configured but RESEND_API_KEY is present.
type resendChannel struct {
	client *resend.Client
	from   string
}

func newResendChannel(apiKey, from string) *resendChannel {
	return &resendChannel{
		client: resend.NewClient(apiKey),
		from:   from,
	}
}

func (c *resendChannel) Name() string { return "resend" }

func (c *resendChannel) Send(ctx context.Context, email models.OutboundEmail) error {
	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", email.FromName, c.from),
		To:      []string{email.To},
		Subject: email.Subject,
		Text:    email.Text,
		Html:    email.HTML,
	}
	if _, err := c.client.Emails.SendWithContext(ctx, params); err != nil {
		return fmt.Errorf("resend send to %s failed: %w", email.To, err)
	}
	return nil
}
