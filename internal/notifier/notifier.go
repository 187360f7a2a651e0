// Package notifier owns all outbound mail: the parse report to the account
// owner, the forwarding message to the DrebeDengi robot and operator alerts
// for messages the engine could not parse.
package notifier

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mailgun/mailgun-go/v4"
	"github.com/rs/zerolog"

	"github.com/nothingelsematters7/citibank-gae-drebedengi/internal/config"
)

// Notifier sends the engine's results onward.
type Notifier interface {
	// SendParseReport mails the owner a summary of all records extracted
	// from one inbound message.
	SendParseReport(ctx context.Context, records []string) error
	// Forward asks the DrebeDengi robot to import the records: the mail code
	// in subject and body, the records newline-joined in a lines.txt
	// attachment.
	Forward(ctx context.Context, records []string) error
	// SendUnparsedAlert routes a body no template matched to the operator.
	SendUnparsedAlert(ctx context.Context, body string) error
}

const sendTimeout = 20 * time.Second

// New picks the mailgun implementation when the domain and key are
// configured, otherwise a mock that only logs. The mock keeps local runs and
// tests from needing credentials.
func New(cfg *config.Config, log zerolog.Logger) Notifier {
	if !cfg.MailgunConfigured() {
		log.Warn().Msg("mailgun not configured, outbound mail disabled")
		return &Mock{Log: log}
	}
	return &MailgunNotifier{
		mg:  mailgun.NewMailgun(cfg.MailgunDomain, cfg.MailgunAPIKey),
		cfg: cfg,
		log: log,
	}
}

// MailgunNotifier delivers through the Mailgun API.
type MailgunNotifier struct {
	mg  mailgun.Mailgun
	cfg *config.Config
	log zerolog.Logger
}

func (n *MailgunNotifier) SendParseReport(ctx context.Context, records []string) error {
	subject := "DrebeDengi parser: " + strings.Join(records, "; ")
	body := "Parse result:\n" + strings.Join(records, "\n")
	msg := n.mg.NewMessage(n.cfg.UserEmail, subject, body, n.cfg.UserEmail)
	return n.send(ctx, msg, "parse report")
}

func (n *MailgunNotifier) Forward(ctx context.Context, records []string) error {
	subject := "Please parse " + n.cfg.MailCode
	msg := n.mg.NewMessage(n.cfg.UserEmail, subject, n.cfg.MailCode, n.cfg.ForwardEmail)
	msg.AddBufferAttachment("lines.txt", []byte(strings.Join(records, "\n")))
	return n.send(ctx, msg, "forward")
}

func (n *MailgunNotifier) SendUnparsedAlert(ctx context.Context, body string) error {
	subject := "DrebeDengi parser: unable to parse email"
	msg := n.mg.NewMessage(n.cfg.UserEmail, subject, body, n.cfg.UserEmail)
	return n.send(ctx, msg, "unparsed alert")
}

func (n *MailgunNotifier) send(ctx context.Context, msg *mailgun.Message, kind string) error {
	ctx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()

	resp, id, err := n.mg.Send(ctx, msg)
	if err != nil {
		n.log.Error().Err(err).Str("kind", kind).Str("response", resp).Msg("mailgun send failed")
		return fmt.Errorf("sending %s: %w", kind, err)
	}
	n.log.Info().Str("kind", kind).Str("id", id).Msg("mail sent")
	return nil
}

// Mock records calls instead of sending. Also used as the no-credentials
// fallback at runtime.
type Mock struct {
	Log zerolog.Logger

	Reports   [][]string
	Forwards  [][]string
	Unparsed  []string
	FailSends bool
}

func (m *Mock) SendParseReport(ctx context.Context, records []string) error {
	if m.FailSends {
		return fmt.Errorf("mock send failure")
	}
	m.Reports = append(m.Reports, records)
	m.Log.Info().Int("records", len(records)).Msg("mock: parse report")
	return nil
}

func (m *Mock) Forward(ctx context.Context, records []string) error {
	if m.FailSends {
		return fmt.Errorf("mock send failure")
	}
	m.Forwards = append(m.Forwards, records)
	m.Log.Info().Int("records", len(records)).Msg("mock: forward")
	return nil
}

func (m *Mock) SendUnparsedAlert(ctx context.Context, body string) error {
	if m.FailSends {
		return fmt.Errorf("mock send failure")
	}
	m.Unparsed = append(m.Unparsed, body)
	m.Log.Warn().Msg("mock: unparsed alert")
	return nil
}
