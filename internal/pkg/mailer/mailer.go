package mailer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/wneessen/go-mail"

	"scanreport/internal/pkg/caldate"
)

const attachmentName = "daily-report.pdf"

// Missing credentials or recipients are configuration errors, distinct
// from a transport rejection: they must surface before any dial.
var (
	ErrMissingCredentials = errors.New("missing mail credentials: set GMAIL_USER and GMAIL_PASS")
	ErrNoRecipients       = errors.New("no report recipients configured: set REPORT_RECIPIENTS")
)

// DeliveryResult is the outcome of a successful dispatch. It is logged and
// discarded, never stored.
type DeliveryResult struct {
	Recipients []string
	Response   string
}

// Mailer delivers the rendered report through an authenticated SMTP relay.
type Mailer struct {
	host       string
	port       int
	user       string
	pass       string
	recipients []string
}

func New(host string, port int, user, pass string, recipients []string) *Mailer {
	return &Mailer{
		host:       host,
		port:       port,
		user:       user,
		pass:       pass,
		recipients: recipients,
	}
}

// Verify dials and authenticates against the relay without sending, to
// fail fast with a clear diagnostic instead of deep inside Send.
func (m *Mailer) Verify(ctx context.Context) error {
	if err := m.checkConfig(); err != nil {
		return err
	}

	client, err := m.newClient()
	if err != nil {
		return err
	}

	if err := client.DialWithContext(ctx); err != nil {
		return fmt.Errorf("mail relay unreachable: %w", err)
	}

	return client.Close()
}

// Send delivers the document as a single named attachment. The message
// body and subject carry the report day and row count.
func (m *Mailer) Send(ctx context.Context, pdf []byte, day caldate.CalendarDate, count int) (*DeliveryResult, error) {
	if err := m.checkConfig(); err != nil {
		return nil, err
	}

	msg := mail.NewMsg()
	if err := msg.From(m.user); err != nil {
		return nil, fmt.Errorf("invalid sender %q: %w", m.user, err)
	}
	if err := msg.To(m.recipients...); err != nil {
		return nil, fmt.Errorf("invalid recipient in %q: %w", strings.Join(m.recipients, ", "), err)
	}

	msg.Subject("Daily Barcode Report - " + day.SlashFormat())
	msg.SetBodyString(mail.TypeTextPlain, fmt.Sprintf("Attached is the daily barcode report with %d items.", count))

	if err := msg.AttachReader(attachmentName, bytes.NewReader(pdf)); err != nil {
		return nil, fmt.Errorf("attaching %s: %w", attachmentName, err)
	}

	client, err := m.newClient()
	if err != nil {
		return nil, err
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		// go-mail errors include the transport's response text.
		return nil, fmt.Errorf("sending report: %w", err)
	}

	return &DeliveryResult{
		Recipients: m.recipients,
		Response:   fmt.Sprintf("accepted by %s:%d", m.host, m.port),
	}, nil
}

func (m *Mailer) checkConfig() error {
	if m.user == "" || m.pass == "" {
		return ErrMissingCredentials
	}
	if len(m.recipients) == 0 {
		return ErrNoRecipients
	}
	return nil
}

func (m *Mailer) newClient() (*mail.Client, error) {
	return mail.NewClient(m.host,
		mail.WithPort(m.port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(m.user),
		mail.WithPassword(m.pass),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
}
