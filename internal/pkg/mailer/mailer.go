// Package mailer sends job notifications over SMTP.
package mailer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"hiring/internal/core/domain/model/job"

	"github.com/wneessen/go-mail"
)

var ErrMailerNotConfigured = errors.New("mailer is not configured")

// Config mirrors the MAIL_* environment.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	NotifyTo []string
	Debug    bool
}

// WithDefaults fills unset fields: localhost:587 and From taken from Username.
func (c Config) WithDefaults() Config {
	if c.Host == "" {
		c.Host = "localhost"
	}
	if c.Port <= 0 {
		c.Port = 587
	}
	if c.From == "" {
		c.From = c.Username
	}
	return c
}

// sender is the part of *mail.Client the mailer uses.
type sender interface {
	DialAndSendWithContext(ctx context.Context, messages ...*mail.Msg) error
}

// Mailer announces new jobs to the configured recipients.
// With no recipients every notification is a no-op.
type Mailer struct {
	cfg    Config
	client sender
	logger *slog.Logger
}

// New builds an SMTP client with mandatory STARTTLS and PLAIN auth.
// No connection is made until the first message is sent.
func New(cfg Config, logger *slog.Logger) (*Mailer, error) {
	cfg = cfg.WithDefaults()
	if logger == nil {
		logger = slog.Default()
	}

	opts := []mail.Option{
		mail.WithTLSPortPolicy(mail.TLSMandatory),
		mail.WithPort(cfg.Port),
	}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}
	if cfg.Debug {
		opts = append(opts, mail.WithDebugLog())
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("create smtp client: %w", err)
	}

	return newMailer(cfg, client, logger), nil
}

func newMailer(cfg Config, client sender, logger *slog.Logger) *Mailer {
	return &Mailer{
		cfg:    cfg,
		client: client,
		logger: logger.With("component", "mailer"),
	}
}

// Enabled reports whether any recipient is configured.
func (m *Mailer) Enabled() bool {
	return m != nil && len(m.cfg.NotifyTo) > 0
}

// NotifyJobPosted implements ports.JobNotifier.
func (m *Mailer) NotifyJobPosted(ctx context.Context, posted *job.Job) error {
	if !m.Enabled() {
		return nil
	}
	if m.client == nil || m.cfg.From == "" {
		return ErrMailerNotConfigured
	}

	msg, err := m.jobPostedMessage(posted)
	if err != nil {
		return err
	}

	if err = m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("send job notice: %w", err)
	}

	m.logger.InfoContext(ctx, "Job notice sent", "job_id", posted.ID(), "recipients", len(m.cfg.NotifyTo))
	return nil
}

func (m *Mailer) jobPostedMessage(posted *job.Job) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.From(m.cfg.From); err != nil {
		return nil, fmt.Errorf("invalid sender: %w", err)
	}
	if err := msg.To(m.cfg.NotifyTo...); err != nil {
		return nil, fmt.Errorf("invalid recipient: %w", err)
	}

	msg.Subject("New job posted: " + posted.Title())
	msg.SetBodyString(mail.TypeTextPlain, jobPostedBody(posted))
	return msg, nil
}

func jobPostedBody(posted *job.Job) string {
	var b strings.Builder
	fmt.Fprintf(&b, "A new job was posted (id %d).\n\n", posted.ID())

	lines := []struct{ label, value string }{
		{"Title", posted.Title()},
		{"Department", posted.Department()},
		{"Location", posted.Location()},
		{"Type", posted.EmploymentType()},
		{"Experience", posted.Experience()},
		{"Salary", posted.Salary()},
		{"Category", posted.Category()},
	}
	for _, l := range lines {
		if l.value == "" {
			continue
		}
		fmt.Fprintf(&b, "%s: %s\n", l.label, l.value)
	}

	if d := strings.TrimSpace(posted.Description()); d != "" {
		fmt.Fprintf(&b, "\n%s\n", d)
	}
	return b.String()
}
