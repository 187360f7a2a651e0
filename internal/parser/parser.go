package parser

import (
	"strings"

	"github.com/nothingelsematters7/citibank-gae-drebedengi/internal/models"
)

// Matcher is a stateless recognizer for one notification template variant.
type Matcher interface {
	// Match attempts extraction against the full message text. It reports
	// false for any text that does not fit the template; it never errors and
	// never returns a partially populated transaction.
	Match(text string) (*models.Transaction, bool)
	// Name returns the variant identifier, e.g. "card-v1".
	Name() string
}

// matchers is the fixed precedence chain: card operation notices first
// (richest template variant tried before its fallbacks), then the four
// sentence-style alerts in their historical order. The first success wins.
var matchers = []Matcher{
	cardNoticeV1,
	cardNoticeV2,
	cardNoticeLegacy,
	alertPurchase,
	alertDebit,
	alertTransfer,
	alertCredit,
}

// Extract runs the matcher chain against a decoded plaintext message body and
// returns the first successful extraction. The second return value is false
// when no known template fits the text. Extraction holds no state between
// calls; concurrent use needs no coordination.
func Extract(text string) (*models.Transaction, bool) {
	// Inbound mail bodies may arrive with CRLF line endings; the templates
	// anchor on bare "\n".
	text = strings.ReplaceAll(text, "\r\n", "\n")

	for _, m := range matchers {
		if txn, ok := m.Match(text); ok {
			return txn, true
		}
	}
	return nil, false
}
