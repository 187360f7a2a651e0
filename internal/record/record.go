// Package record renders extracted transactions into the line formats the
// DrebeDengi import robot accepts.
package record

import (
	"strings"

	"github.com/nothingelsematters7/citibank-gae-drebedengi/internal/models"
)

// Delimiter joins the positional fields of card dialect records.
const Delimiter = ";"

// Render serializes a transaction per its declared schema.
//
// Card layouts are delimiter-joined and end with a deliberate trailing empty
// field; the import robot's format requires it, so every card record ends
// with the delimiter. The sentence layout is a single human-readable line and
// is never delimiter-joined.
func Render(t *models.Transaction) string {
	switch t.Schema {
	case models.SchemaCardFull:
		return strings.Join([]string{
			t.Amount,
			t.Currency,
			t.OpType + " " + t.OpResult,
			t.Account,
			t.DateTime,
			t.Place,
			"Остаток: " + t.Balance + " " + t.BalanceCurrency,
			"",
		}, Delimiter)
	case models.SchemaCardLegacy:
		return strings.Join([]string{
			t.Amount,
			t.Currency,
			t.Place,
			t.Account,
			t.DateTime,
			"",
		}, Delimiter)
	case models.SchemaSentence:
		return "Тип: " + t.OpLabel +
			"; Сумма: " + t.Amount + " " + t.Currency +
			"; Счёт: " + t.Account +
			"; Категория: " + t.Place
	}
	return ""
}
