package notification

import (
	"context"
	"time"

	"webmaker/models"
)

// Channel is one concrete way of delivering a composed message: direct SMTP,
// the Resend API, or the log-only fallback. Exactly one channel is selected
// at startup.
type Channel interface {
	Name() string
	Send(ctx context.Context, email models.OutboundEmail) error
}

// MailerService composes and dispatches the outbound notifications for both
// submission endpoints.
type MailerService interface {
	SendBudgetRequest(ctx context.Context, req models.BudgetRequest, clientIP string) models.DispatchResult
	SendContactRequest(ctx context.Context, req models.ContactRequest, clientIP string) models.DispatchResult
}

// DefaultMailerService is the production implementation.
type DefaultMailerService struct {
	Channel     Channel
	OwnerTo     string
	FromName    string
	SendTimeout time.Duration
}
