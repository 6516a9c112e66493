package notifier

import (
	"fmt"

	"github.com/wneessen/go-mail"

	"github.com/estatewatch/estate-digest/internal/config"
	"github.com/estatewatch/estate-digest/internal/logger"
)

// NotifyError reports a failure to compose or deliver an email. Callers log
// it and move on; delivery failures never escalate further.
type NotifyError struct {
	Err error
}

func (e *NotifyError) Error() string {
	return fmt.Sprintf("sending email: %v", e.Err)
}

func (e *NotifyError) Unwrap() error { return e.Err }

// Mailer sends reports through an authenticated SMTP relay using STARTTLS.
type Mailer struct {
	cfg config.Email
}

// NewMailer creates a Mailer from the given relay settings. The settings may
// be incomplete; Notify turns that into a logged no-op.
func NewMailer(cfg config.Email) *Mailer {
	return &Mailer{cfg: cfg}
}

// Notify sends the report as a single-part plain-text email. If any of the
// sender, password, or recipient is missing, it logs and returns nil without
// dialing the relay.
func (m *Mailer) Notify(subject, body string) error {
	if !m.cfg.Complete() {
		logger.Info("email credentials not configured, skipping send", nil)
		return nil
	}

	msg := mail.NewMsg()
	if err := msg.From(m.cfg.Sender); err != nil {
		return &NotifyError{Err: fmt.Errorf("setting sender: %w", err)}
	}
	if err := msg.To(m.cfg.Recipient); err != nil {
		return &NotifyError{Err: fmt.Errorf("setting recipient: %w", err)}
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, body)

	client, err := mail.NewClient(m.cfg.SMTPHost,
		mail.WithPort(m.cfg.SMTPPort),
		mail.WithTLSPolicy(mail.TLSMandatory),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(m.cfg.Sender),
		mail.WithPassword(m.cfg.Password),
	)
	if err != nil {
		return &NotifyError{Err: fmt.Errorf("creating SMTP client: %w", err)}
	}

	if err := client.DialAndSend(msg); err != nil {
		return &NotifyError{Err: err}
	}

	logger.Info("email sent", logger.Fields{"subject": subject})
	return nil
}
