package notification

import (
	"context"
	"fmt"
	"time"

	"webmaker/config"
	"webmaker/models"
	"webmaker/utils"

	"go.uber.org/zap"
)

// NewChannelFromConfig picks the delivery channel from the loaded
// configuration. SMTP credentials win over a Resend key; with neither the
// console fallback is used so the service still starts.
func NewChannelFromConfig(cfg config.Config) Channel {
	logger := utils.GetLogger()
	switch {
	case cfg.SMTPUser != "" && cfg.SMTPPass != "":
		logger.Info("email channel selected", zap.String("channel", "smtp"), zap.String("host", cfg.SMTPHost))
		return newSMTPChannel(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass)
	case cfg.ResendAPIKey != "":
		logger.Info("email channel selected", zap.String("channel", "resend"))
		return newResendChannel(cfg.ResendAPIKey, cfg.ResendFrom)
	default:
		logger.Warn("no email credentials configured, emails will only be logged")
		return consoleChannel{}
	}
}

// NewMailerService wires a mailer from configuration.
func NewMailerService(cfg config.Config, channel Channel) *DefaultMailerService {
	return &DefaultMailerService{
		Channel:     channel,
		OwnerTo:     cfg.MailTo,
		FromName:    cfg.MailFromName,
		SendTimeout: time.Duration(cfg.EmailTimeoutMS) * time.Millisecond,
	}
}

func (s *DefaultMailerService) send(ctx context.Context, to string, msg models.EmailMessage) error {
	ctx, cancel := context.WithTimeout(ctx, s.SendTimeout)
	defer cancel()
	return s.Channel.Send(ctx, models.OutboundEmail{
		FromName: s.FromName,
		To:       to,
		Subject:  msg.Subject,
		Text:     msg.Text,
		HTML:     msg.HTML,
	})
}

// SendBudgetRequest dispatches the internal notice and the client
// confirmation. Both must succeed for the request to count as sent.
func (s *DefaultMailerService) SendBudgetRequest(ctx context.Context, req models.BudgetRequest, clientIP string) models.DispatchResult {
	logger := utils.GetLogger()
	now := time.Now()

	notice := ComposeBudgetNotice(req, now, clientIP)
	if err := s.send(ctx, s.OwnerTo, notice); err != nil {
		logger.Error("budget dispatch failed",
			zap.String("channel", s.Channel.Name()),
			zap.String("clientIP", clientIP),
			zap.Error(fmt.Errorf("internal notice: %w", err)))
		return models.DispatchResult{Success: false, Message: "No se pudo enviar la solicitud. Inténtalo de nuevo más tarde."}
	}

	confirmation := ComposeClientConfirmation(req)
	if err := s.send(ctx, req.Email, confirmation); err != nil {
		logger.Error("budget dispatch failed",
			zap.String("channel", s.Channel.Name()),
			zap.String("clientIP", clientIP),
			zap.Error(fmt.Errorf("client confirmation: %w", err)))
		return models.DispatchResult{Success: false, Message: "No se pudo enviar la solicitud. Inténtalo de nuevo más tarde."}
	}

	logger.Info("budget request dispatched",
		zap.String("channel", s.Channel.Name()),
		zap.String("email", req.Email),
		zap.Int("services", len(req.SelectedServices)),
		zap.Float64("totalPrice", req.TotalPrice))
	return models.DispatchResult{Success: true, Message: "Solicitud de presupuesto enviada correctamente. Te contactaremos pronto."}
}

// SendContactRequest dispatches the contact-form notice to the owner.
func (s *DefaultMailerService) SendContactRequest(ctx context.Context, req models.ContactRequest, clientIP string) models.DispatchResult {
	logger := utils.GetLogger()

	notice := ComposeContactNotice(req, time.Now(), clientIP)
	if err := s.send(ctx, s.OwnerTo, notice); err != nil {
		logger.Error("contact dispatch failed",
			zap.String("channel", s.Channel.Name()),
			zap.String("clientIP", clientIP),
			zap.Error(err))
		return models.DispatchResult{Success: false, Message: "No se pudo enviar el mensaje. Inténtalo de nuevo más tarde."}
	}

	logger.Info("contact request dispatched",
		zap.String("channel", s.Channel.Name()),
		zap.String("email", req.Email))
	return models.DispatchResult{Success: true, Message: "Mensaje enviado correctamente. Te contactaremos pronto."}
}
