package models

// Transaction represents a single extracted bank notification.
// All fields are plain strings: amounts and dates are carried exactly as they
// appear in the source message (apart from sign application and date
// recomposition), never re-parsed into numeric types.
type Transaction struct {
	Variant         string // which matcher produced this transaction
	Dialect         Dialect
	Schema          Schema
	Amount          string // sign-carrying decimal string, e.g. "-500.00"
	Currency        string
	Account         string // card or account identifier, digits and separators
	Place           string // merchant, operation description or category
	DateTime        string // canonical "YYYY-MM-DD HH:MM:SS" (date only for sentence alerts)
	Balance         string // running balance, card dialect only
	BalanceCurrency string
	OpType          string // card dialect operation type line
	OpResult        string // card dialect operation result line
	OpLabel         string // sentence dialect label: покупка, списание, зачисление
}

// Dialect identifies the notification template family.
type Dialect string

const (
	// DialectCard is the multi-line Alfabank card operation notice family.
	DialectCard Dialect = "card"
	// DialectSentence is the Citibank sentence-style alert family.
	DialectSentence Dialect = "sentence"
)

// Schema selects the serialized record layout. It is declared by the matcher
// that produced the transaction rather than inferred from field presence.
type Schema string

const (
	// SchemaCardFull is the delimiter-joined layout with operation labels and
	// a running balance field.
	SchemaCardFull Schema = "card-full"
	// SchemaCardLegacy is the narrower historical layout without operation
	// labels or balance.
	SchemaCardLegacy Schema = "card-legacy"
	// SchemaSentence is the human-readable sentence form; it has no
	// positional fields.
	SchemaSentence Schema = "sentence"
)

// SignPolicy states how a matcher's amounts are signed on output. Card
// operation notices never carry a sign in the message text, so each matcher
// declares the convention for its template explicitly.
type SignPolicy int

const (
	// SignNone passes the captured amount through unchanged.
	SignNone SignPolicy = iota
	// SignNegative prefixes the amount with "-": the template describes a
	// debit even though the text is unsigned.
	SignNegative
)
