package notify

import (
	"context"
	"strings"

	"go.uber.org/zap"

	apperrors "meeting-insights/internal/app/errors"
	"meeting-insights/internal/app/model"
)

// DefaultSubject is used when the configuration leaves the subject empty
const DefaultSubject = "Meeting Insights"

// Message is one outbound email
type Message struct {
	From    string
	To      string
	Subject string
	HTML    string
}

// Transport delivers a message. SMTPTransport is the production implementation.
type Transport interface {
	Send(ctx context.Context, msg *Message) error
}

// Config holds the mail account and recipient
type Config struct {
	Host      string
	Port      int
	Username  string
	Password  string
	From      string
	Recipient string
	Subject   string
}

// Configured reports whether both credentials are present
func (c Config) Configured() bool {
	return strings.TrimSpace(c.Username) != "" && strings.TrimSpace(c.Password) != ""
}

// Mailer renders results and hands them to a Transport. There is no queue and no retry.
type Mailer struct {
	config    Config
	transport Transport
	logger    *zap.Logger
}

// NewMailer creates a Mailer. A nil transport selects SMTP with the given config.
func NewMailer(config Config, transport Transport, logger *zap.Logger) *Mailer {
	if transport == nil {
		transport = NewSMTPTransport(config)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Mailer{config: config, transport: transport, logger: logger}
}

// Send emails the rendered result to the configured recipient. Missing credentials fail
// with a configuration error before any connection is made.
func (m *Mailer) Send(ctx context.Context, result *model.ExtractionResult) error {
	if !m.config.Configured() {
		return apperrors.ErrMissingMailCredentials
	}
	if result == nil {
		return apperrors.RequiredField("result")
	}

	subject := m.config.Subject
	if subject == "" {
		subject = DefaultSubject
	}

	body, err := Render(subject, result)
	if err != nil {
		return err
	}

	msg := &Message{
		From:    m.sender(),
		To:      m.recipient(),
		Subject: subject,
		HTML:    body,
	}

	if err := m.transport.Send(ctx, msg); err != nil {
		m.logger.Error("email delivery failed", zap.String("to", msg.To), zap.Error(err))
		return apperrors.Delivery(err)
	}

	m.logger.Info("email sent", zap.String("to", msg.To))
	return nil
}

func (m *Mailer) sender() string {
	if m.config.From != "" {
		return m.config.From
	}
	return m.config.Username
}

func (m *Mailer) recipient() string {
	if m.config.Recipient != "" {
		return m.config.Recipient
	}
	return m.config.Username
}
