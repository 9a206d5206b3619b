// Package mail implements outbound email for the plann.er API: an SMTP
// mailer, the HTML message templates, and an asynchronous dispatcher that
// decouples email delivery from the request path.
package mail

import (
	"context"
	"fmt"
	"log/slog"

	gomail "github.com/wneessen/go-mail"
)

// Message is a fully rendered email ready for delivery.
type Message struct {
	To      string
	Subject string
	HTML    string
}

// Mailer delivers a single message. Implementations must be safe for
// concurrent use; the dispatcher calls Send from its worker goroutine.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// SMTPConfig holds the connection settings for the SMTP mailer.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string

	// FromName and FromAddress make up the sender identity on every message.
	FromName    string
	FromAddress string
}

// SMTPMailer is a Mailer backed by an SMTP server via wneessen/go-mail.
type SMTPMailer struct {
	client *gomail.Client
	cfg    SMTPConfig
}

// NewSMTPMailer constructs an SMTPMailer. The connection is not opened here;
// go-mail dials per send, so a misconfigured host only surfaces on delivery.
func NewSMTPMailer(cfg SMTPConfig) (*SMTPMailer, error) {
	opts := []gomail.Option{
		gomail.WithPort(cfg.Port),
		gomail.WithTLSPolicy(gomail.TLSOpportunistic),
	}
	if cfg.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(cfg.Username),
			gomail.WithPassword(cfg.Password),
		)
	}

	client, err := gomail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("mail.NewSMTPMailer: %w", err)
	}
	return &SMTPMailer{client: client, cfg: cfg}, nil
}

// Send delivers one message, dialing the SMTP server and closing the
// connection afterwards.
func (m *SMTPMailer) Send(ctx context.Context, msg Message) error {
	out := gomail.NewMsg()
	if err := out.FromFormat(m.cfg.FromName, m.cfg.FromAddress); err != nil {
		return fmt.Errorf("mail.SMTPMailer.Send: from: %w", err)
	}
	if err := out.To(msg.To); err != nil {
		return fmt.Errorf("mail.SMTPMailer.Send: to: %w", err)
	}
	out.Subject(msg.Subject)
	out.SetBodyString(gomail.TypeTextHTML, msg.HTML)

	if err := m.client.DialAndSendWithContext(ctx, out); err != nil {
		return fmt.Errorf("mail.SMTPMailer.Send: %w", err)
	}
	return nil
}

// LogMailer is a Mailer that logs messages instead of delivering them.
// Used when no SMTP host is configured, so local development works without
// a mail server.
type LogMailer struct {
	Log *slog.Logger
}

// Send logs the message and reports success.
func (m *LogMailer) Send(_ context.Context, msg Message) error {
	m.Log.Info("mail (log only)", "to", msg.To, "subject", msg.Subject)
	return nil
}
