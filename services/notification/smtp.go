package notification

import (
	"context"
	"fmt"

	"webmaker/models"

	gomail "gopkg.in/gomail.v2"
)

// smtpChannel delivers through a direct SMTP transporter (Gmail app
// passwords in production).
type smtpChannel struct {
	dialer *gomail.Dialer
	from   string
}

func newSMTPChannel(host string, port int, user, pass string) *smtpChannel {
	return &smtpChannel{
		dialer: gomail.NewDialer(host, port, user, pass),
		from:   user,
	}
}

func (c *smtpChannel) Name() string { return "smtp" }

func (c *smtpChannel) Send(ctx context.Context, email models.OutboundEmail) error {
	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", c.from, email.FromName)
	msg.SetHeader("To", email.To)
	msg.SetHeader("Subject", email.Subject)
	if email.Text != "" {
		msg.SetBody("text/plain", email.Text)
		msg.AddAlternative("text/html", email.HTML)
	} else {
		msg.SetBody("text/html", email.HTML)
	}

	// gomail has no context support; run the dial+send in a goroutine so the
	// caller's timeout stays the upper bound.
	done := make(chan error, 1)
	go func() {
		done <- c.dialer.DialAndSend(msg)
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("smtp send to %s failed: %w", email.To, err)
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("smtp send to %s timed out: %w", email.To, ctx.Err())
	}
}
