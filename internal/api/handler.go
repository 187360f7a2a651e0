package api

import (
	"bytes"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/nothingelsematters7/citibank-gae-drebedengi/internal/config"
	"github.com/nothingelsematters7/citibank-gae-drebedengi/internal/mailbody"
	"github.com/nothingelsematters7/citibank-gae-drebedengi/internal/notifier"
	"github.com/nothingelsematters7/citibank-gae-drebedengi/internal/parser"
	"github.com/nothingelsematters7/citibank-gae-drebedengi/internal/record"
)

// Handler receives inbound bank notification mail and pushes extracted
// records to the notifier.
type Handler struct {
	cfg      *config.Config
	notifier notifier.Notifier
	log      zerolog.Logger
}

func NewHandler(cfg *config.Config, n notifier.Notifier, log zerolog.Logger) *Handler {
	return &Handler{cfg: cfg, notifier: n, log: log}
}

// RegisterRoutes sets up the HTTP routes. The inbound mail route keeps the
// App Engine shape: the gateway POSTs the raw RFC 822 message to
// /_ah/mail/<recipient>.
func (h *Handler) RegisterRoutes(app *fiber.App) {
	app.Get("/healthz", h.handleHealth)
	app.Post("/_ah/mail/*", h.handleInboundMail)
}

func (h *Handler) handleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// handleInboundMail always answers 200: a non-2xx would make the mail
// gateway retry or bounce, and neither helps with a message we cannot parse.
// Failures are logged and alerted instead.
func (h *Handler) handleInboundMail(c *fiber.Ctx) error {
	log := h.log.With().Str("message_id", uuid.NewString()).Logger()

	msg, err := mailbody.Parse(bytes.NewReader(c.Body()))
	if err != nil {
		log.Error().Err(err).Msg("malformed inbound mail")
		return c.SendStatus(fiber.StatusOK)
	}

	if !h.senderApproved(msg.Sender) {
		log.Warn().Str("sender", msg.Sender).Msg("sender is not approved")
		return c.SendStatus(fiber.StatusOK)
	}

	var records []string
	for _, body := range msg.Bodies {
		txn, ok := parser.Extract(body)
		if !ok {
			log.Warn().Msg("unable to parse mail body")
			if err := h.notifier.SendUnparsedAlert(c.Context(), body); err != nil {
				log.Error().Err(err).Msg("unparsed alert failed")
			}
			continue
		}
		log.Info().Str("variant", txn.Variant).Msg("body parsed")
		records = append(records, record.Render(txn))
	}

	if len(records) == 0 {
		log.Warn().Msg("nothing sent to DrebeDengi, empty parse result")
		return c.SendStatus(fiber.StatusOK)
	}

	if err := h.notifier.SendParseReport(c.Context(), records); err != nil {
		log.Error().Err(err).Msg("parse report failed")
	}
	if err := h.notifier.Forward(c.Context(), records); err != nil {
		log.Error().Err(err).Msg("forward failed")
	} else {
		log.Info().Int("records", len(records)).Msg("result sent to DrebeDengi")
	}

	return c.SendStatus(fiber.StatusOK)
}

// senderApproved matches the allow-list against the raw From header. The
// check is a substring match: bank robots vary the display name but keep the
// address.
func (h *Handler) senderApproved(sender string) bool {
	for _, approved := range h.cfg.ApprovedSenders() {
		if approved != "" && strings.Contains(sender, approved) {
			return true
		}
	}
	return false
}
