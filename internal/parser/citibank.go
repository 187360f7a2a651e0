package parser

import (
	"regexp"

	"github.com/nothingelsematters7/citibank-gae-drebedengi/internal/models"
)

// sentenceMatcher recognizes one Citibank sentence-style alert. The four
// templates are independent; for a single message only the first one in the
// chain that matches is used.
type sentenceMatcher struct {
	name     string
	re       *regexp.Regexp
	label    string // operation label for the rendered sentence
	category string // fixed category overriding the captured operation text
	required []string
}

func (m *sentenceMatcher) Name() string { return m.name }

func (m *sentenceMatcher) Match(text string) (*models.Transaction, bool) {
	caps, ok := bindNames(m.re, text)
	if !ok || !allBound(caps, m.required) {
		return nil, false
	}

	place := m.category
	if place == "" {
		place = stripQuotes(caps["operation"])
	}

	return &models.Transaction{
		Variant:  m.name,
		Dialect:  models.DialectSentence,
		Schema:   models.SchemaSentence,
		Amount:   caps["summ"],
		Currency: caps["currency"],
		Account:  caps["account"],
		Place:    place,
		DateTime: composeDateTime(caps["year"], caps["month"], caps["day"], ""),
		OpLabel:  m.label,
	}, true
}

// "Покупка на сумму 120.00 RUR была произведена по Вашему счету ** 1234 ..."
var alertPurchase = &sentenceMatcher{
	name: "alert-purchase",
	re: regexp.MustCompile(`(?m)` +
		`Покупка на сумму (?P<summ>[0-9.]+) (?P<currency>\w+) была произведена по Вашему счету \*\*\s*(?P<account>\d+)` +
		`\s+Торговая точка: (?P<operation>.*?)\s*$` +
		`\s+Дата операции: (?P<day>\d\d)/(?P<month>\d\d)/(?P<year>\d{4})`),
	label:    "покупка",
	required: []string{"summ", "currency", "account"},
}

// "120.00 RUR было списано с Вашего счета ** 1234 ..."
var alertDebit = &sentenceMatcher{
	name: "alert-debit",
	re: regexp.MustCompile(`(?m)` +
		`(?P<summ>[0-9.]+) (?P<currency>\w+) было списано с Вашего счета \*\* ?(?P<account>\d+)` +
		`\s+Операция: (?P<operation>.*?)\s*$` +
		`\s+Дата операции: (?P<day>\d\d)/(?P<month>\d\d)/(?P<year>\d{4})`),
	label:    "списание",
	required: []string{"summ", "currency", "account"},
}

// "...поручение по переводу денежных средств исполнено: Со счета ** 1234 ..."
// No merchant in this template; the category is fixed.
var alertTransfer = &sentenceMatcher{
	name: "alert-transfer",
	re: regexp.MustCompile(`(?m)` +
		`поручение по переводу денежных средств исполнено:` +
		`\s+Со счета \*\* ?(?P<account>\d+)` +
		`\s+Дата: (?P<day>\d\d)/(?P<month>\d\d)/(?P<year>\d{4})` +
		`\s+Сумма: (?P<summ>[0-9.]+) (?P<currency>\w+)`),
	label:    "списание",
	category: "автоплатёж",
	required: []string{"summ", "currency", "account"},
}

// "на ваш счет ** 1234 была зачислена сумма: 120.00 RUR ..."
var alertCredit = &sentenceMatcher{
	name: "alert-credit",
	re: regexp.MustCompile(`(?m)` +
		`на ваш счет \*\* ?(?P<account>\d+) была зачислена сумма: (?P<summ>[0-9.]+) (?P<currency>\w+)` +
		`\s+Операция: (?P<operation>.*?)\s*$` +
		`\s+Дата: (?P<day>\d\d)/(?P<month>\d\d)/(?P<year>\d{4})`),
	label:    "зачисление",
	required: []string{"summ", "currency", "account"},
}
