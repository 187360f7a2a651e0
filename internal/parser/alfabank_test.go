package parser

import (
	"testing"

	"github.com/nothingelsematters7/citibank-gae-drebedengi/internal/models"
)

const cardNoticeFull = "Карта 1234\n" +
	"IVANOV I.\n" +
	"Оплата товаров/услуг\n" +
	"Успешно\n" +
	"Сумма:500.00 RUB\n" +
	"Остаток:1500.00 RUB\n" +
	"На время:12:00:00\n" +
	"MAGAZIN\n" +
	"01.02.2021 12:00:00\n"

func TestCardNoticeV1(t *testing.T) {
	txn, ok := cardNoticeV1.Match(cardNoticeFull)
	if !ok {
		t.Fatal("expected match")
	}

	want := models.Transaction{
		Variant:         "card-v1",
		Dialect:         models.DialectCard,
		Schema:          models.SchemaCardFull,
		Amount:          "-500.00",
		Currency:        "RUB",
		Account:         "1234",
		Place:           "MAGAZIN",
		DateTime:        "2021-02-01 12:00:00",
		Balance:         "1500.00",
		BalanceCurrency: "RUB",
		OpType:          "Оплата товаров/услуг",
		OpResult:        "Успешно",
	}
	if *txn != want {
		t.Errorf("got %+v, want %+v", *txn, want)
	}
}

func TestCardNoticeV1UserCurrencyPrecedence(t *testing.T) {
	text := "Карта 1234\n" +
		"IVANOV I.\n" +
		"Оплата товаров/услуг\n" +
		"Успешно\n" +
		"Сумма:100.00 RUB (50.00 USD)\n" +
		"Остаток:1500.00 RUB\n" +
		"На время:12:00:00\n" +
		"DUTY FREE\n" +
		"01.02.2021 12:00:00\n"

	txn, ok := cardNoticeV1.Match(text)
	if !ok {
		t.Fatal("expected match")
	}
	if txn.Amount != "-50.00" {
		t.Errorf("amount: got %q, want %q", txn.Amount, "-50.00")
	}
	if txn.Currency != "USD" {
		t.Errorf("currency: got %q, want %q", txn.Currency, "USD")
	}
}

func TestCardNoticeV2NoMerchantLine(t *testing.T) {
	text := "Карта 1234\n" +
		"IVANOV I.\n" +
		"Выдача наличных\n" +
		"Успешно\n" +
		"Сумма:3000.00 RUB\n" +
		"Остаток:4500.00 RUB\n" +
		"На время:09:15:30\n" +
		"14.07.2022 09:15:30\n"

	if _, ok := cardNoticeV1.Match(text); ok {
		t.Fatal("v1 must not match a notice without a merchant line")
	}

	txn, ok := cardNoticeV2.Match(text)
	if !ok {
		t.Fatal("expected v2 match")
	}
	if txn.Variant != "card-v2" {
		t.Errorf("variant: got %q", txn.Variant)
	}
	if txn.Place != "" {
		t.Errorf("place: got %q, want empty", txn.Place)
	}
	if txn.Amount != "-3000.00" || txn.DateTime != "2022-07-14 09:15:30" {
		t.Errorf("got amount %q datetime %q", txn.Amount, txn.DateTime)
	}
}

func TestCardNoticeLegacy(t *testing.T) {
	text := "Карта 5678\n" +
		"MAGAZIN \"KOFE\"\n" +
		"Сумма:200.00 RUB\n" +
		"05.09.2020 14:23:01\n"

	txn, ok := cardNoticeLegacy.Match(text)
	if !ok {
		t.Fatal("expected match")
	}
	if txn.Schema != models.SchemaCardLegacy {
		t.Errorf("schema: got %q", txn.Schema)
	}
	if txn.Amount != "-200.00" {
		t.Errorf("amount: got %q, want %q", txn.Amount, "-200.00")
	}
	// quote stripping: the literal " must never reach the record
	if txn.Place != "MAGAZIN KOFE" {
		t.Errorf("place: got %q, want %q", txn.Place, "MAGAZIN KOFE")
	}
	if txn.DateTime != "2020-09-05 14:23:01" {
		t.Errorf("datetime: got %q", txn.DateTime)
	}
}

func TestCardVariantPrecedence(t *testing.T) {
	// The merchant line is itself date-shaped, so both v1 and v2 accept the
	// text. The richer template must win.
	text := "Карта 1234\n" +
		"IVANOV I.\n" +
		"Оплата товаров/услуг\n" +
		"Успешно\n" +
		"Сумма:10.00 RUB\n" +
		"Остаток:1.00 RUB\n" +
		"На время:12:00:00\n" +
		"01.02.2021 12:00:00\n" +
		"01.02.2021 12:00:00\n"

	if _, ok := cardNoticeV2.Match(text); !ok {
		t.Fatal("precondition: v2 should accept this text on its own")
	}

	txn, ok := Extract(text)
	if !ok {
		t.Fatal("expected match")
	}
	if txn.Variant != "card-v1" {
		t.Errorf("variant: got %q, want card-v1", txn.Variant)
	}
}

func TestCardNoticeDayPassthrough(t *testing.T) {
	// Calendar validity is not the engine's business: day 31 in February
	// passes through as captured.
	text := "Карта 5678\n" +
		"MAGAZIN\n" +
		"Сумма:200.00 RUB\n" +
		"31.02.2021 10:00:00\n"

	txn, ok := cardNoticeLegacy.Match(text)
	if !ok {
		t.Fatal("expected match")
	}
	if txn.DateTime != "2021-02-31 10:00:00" {
		t.Errorf("datetime: got %q, want %q", txn.DateTime, "2021-02-31 10:00:00")
	}
}

func TestCardNoticeCRLF(t *testing.T) {
	crlf := ""
	for _, line := range []string{
		"Карта 1234", "IVANOV I.", "Оплата товаров/услуг", "Успешно",
		"Сумма:500.00 RUB", "Остаток:1500.00 RUB", "На время:12:00:00",
		"MAGAZIN", "01.02.2021 12:00:00",
	} {
		crlf += line + "\r\n"
	}

	txn, ok := Extract(crlf)
	if !ok {
		t.Fatal("expected match on CRLF input")
	}
	if txn.Variant != "card-v1" {
		t.Errorf("variant: got %q", txn.Variant)
	}
}
