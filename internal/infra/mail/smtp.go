package mail

import (
	"context"
	"log/slog"

	"rental-marketplace/internal/pkg/config"
	"rental-marketplace/internal/pkg/errs"
	"rental-marketplace/internal/usecase/shared"

	"gopkg.in/gomail.v2"
)

// SMTPMailer delivers rendered notifications. With no SMTP host configured it only logs them.
type SMTPMailer struct {
	cfg    config.MailConfig
	dialer *gomail.Dialer
}

func NewSMTPMailer(cfg config.MailConfig) *SMTPMailer {
	m := &SMTPMailer{cfg: cfg}
	if cfg.Host != "" {
		m.dialer = gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	}
	return m
}

func (m *SMTPMailer) Send(ctx context.Context, topic string, n shared.EmailNotification) error {
	if n.To == "" {
		return nil
	}
	subject, body, err := Render(topic, n)
	if err != nil {
		return err
	}

	if m.dialer == nil {
		slog.Info("mail transport disabled, dropping email", "topic", topic, "to", n.To, "subject", subject)
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", n.To)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return errs.Wrapf(err, "send %s to %s", topic, n.To)
	}
	slog.Info("email sent", "topic", topic, "to", n.To, "booking_ref", n.BookingRef)
	return nil
}
