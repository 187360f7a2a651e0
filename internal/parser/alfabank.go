package parser

import (
	"regexp"

	"github.com/nothingelsematters7/citibank-gae-drebedengi/internal/models"
)

// cardMatcher recognizes one variant of the multi-line Alfabank card
// operation notice. The three variants drifted apart over the years; they are
// tried richest-first, so a message that several templates would accept is
// always classified by the most informative one.
type cardMatcher struct {
	name     string
	re       *regexp.Regexp
	schema   models.Schema
	sign     models.SignPolicy
	required []string
}

func (m *cardMatcher) Name() string { return m.name }

func (m *cardMatcher) Match(text string) (*models.Transaction, bool) {
	caps, ok := bindNames(m.re, text)
	if !ok || !allBound(caps, m.required) {
		return nil, false
	}

	// Newer notices quote the amount in the transaction currency with the
	// user-currency equivalent in parentheses. When the user pair is present
	// it is the canonical amount/currency.
	amount, currency := caps["amount"], caps["currency"]
	if ua := caps["useramount"]; ua != "" {
		amount, currency = ua, caps["usercurrency"]
	}

	return &models.Transaction{
		Variant:         m.name,
		Dialect:         models.DialectCard,
		Schema:          m.schema,
		Amount:          applySign(amount, m.sign),
		Currency:        currency,
		Account:         caps["card"],
		Place:           stripQuotes(caps["place"]),
		DateTime:        composeDateTime(caps["year"], caps["month"], caps["day"], caps["time"]),
		Balance:         caps["balance"],
		BalanceCurrency: caps["balancecur"],
		OpType:          stripQuotes(caps["optype"]),
		OpResult:        stripQuotes(caps["opresult"]),
	}, true
}

// Card operation notice, current layout:
//
//	Карта 1234
//	<ignored>
//	Оплата товаров/услуг
//	Успешно
//	Сумма:100.00 RUB (50.00 USD)      <- user-currency pair optional
//	Остаток:1500.00 RUB
//	На время:12:00:00
//	MAGAZIN
//	01.02.2021 12:00:00
var cardNoticeV1 = &cardMatcher{
	name: "card-v1",
	re: regexp.MustCompile(`(?m)` +
		`Карта (?P<card>[0-9.]+)$\n` +
		`^.*$\n` +
		`^(?P<optype>.*)$\n` +
		`^(?P<opresult>.*)$\n` +
		`^Сумма:(?P<amount>[0-9.]+) (?P<currency>\w+)(?: \((?P<useramount>[0-9.]+) (?P<usercurrency>\w+)\))?$\n` +
		`^Остаток:(?P<balance>[0-9.]+) (?P<balancecur>\w+)$\n` +
		`^На время:\d\d:\d\d:\d\d$\n` +
		`^(?P<place>[^\r\n]*)$\n` +
		`^(?P<day>\d\d)\.(?P<month>\d\d)\.(?P<year>\d{4}) (?P<time>\d\d:\d\d:\d\d)`),
	schema:   models.SchemaCardFull,
	sign:     models.SignNegative,
	required: []string{"card", "amount", "currency", "day", "month", "year", "time"},
}

// Same layout without the merchant line: the date follows the "На время:"
// line directly.
var cardNoticeV2 = &cardMatcher{
	name: "card-v2",
	re: regexp.MustCompile(`(?m)` +
		`Карта (?P<card>[0-9.]+)$\n` +
		`^.*$\n` +
		`^(?P<optype>.*)$\n` +
		`^(?P<opresult>.*)$\n` +
		`^Сумма:(?P<amount>[0-9.]+) (?P<currency>\w+)$\n` +
		`^Остаток:(?P<balance>[0-9.]+) (?P<balancecur>\w+)$\n` +
		`^На время:\d\d:\d\d:\d\d$\n` +
		`^(?P<day>\d\d)\.(?P<month>\d\d)\.(?P<year>\d{4}) (?P<time>\d\d:\d\d:\d\d)`),
	schema:   models.SchemaCardFull,
	sign:     models.SignNegative,
	required: []string{"card", "amount", "currency", "day", "month", "year", "time"},
}

// Legacy notice layout, before operation and balance lines were added:
//
//	Карта 1234
//	MAGAZIN
//	Сумма:500.00 RUB
//	01.02.2021 12:00:00
//
// Its record schema is correspondingly narrower.
var cardNoticeLegacy = &cardMatcher{
	name: "card-legacy",
	re: regexp.MustCompile(`(?m)` +
		`Карта (?P<card>[0-9.]+)$\n` +
		`^(?P<place>[^\r\n]*)$\n` +
		`^Сумма:(?P<amount>[0-9.]+) (?P<currency>\w+)$\n` +
		`^(?P<day>\d\d)\.(?P<month>\d\d)\.(?P<year>\d{4}) (?P<time>\d\d:\d\d:\d\d)`),
	schema:   models.SchemaCardLegacy,
	sign:     models.SignNegative,
	required: []string{"card", "amount", "currency", "day", "month", "year", "time"},
}
