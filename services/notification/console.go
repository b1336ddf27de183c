package notification

import (
	"context"

	"webmaker/models"
	"webmaker/utils"

	"go.uber.org/zap"
)

// consoleChannel logs the message instead of sending it. Last-resort
// fallback for development environments without mail credentials.
type consoleChannel struct{}

func (consoleChannel) Name() string { return "console" }

func (consoleChannel) Send(_ context.Context, email models.OutboundEmail) error {
	utils.GetLogger().Info("email not sent, no delivery channel configured",
		zap.String("to", email.To),
		zap.String("subject", email.Subject),
		zap.String("body", email.Text),
	)
	return nil
}
