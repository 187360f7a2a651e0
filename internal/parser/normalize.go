package parser

import (
	"regexp"
	"strings"

	"github.com/nothingelsematters7/citibank-gae-drebedengi/internal/models"
)

// applySign formats an unsigned captured amount per the matcher's declared
// sign policy. Amounts already carrying a sign pass through unchanged.
func applySign(amount string, policy models.SignPolicy) string {
	if policy == models.SignNegative && amount != "" && !strings.HasPrefix(amount, "-") {
		return "-" + amount
	}
	return amount
}

// composeDateTime joins separately captured date parts into the canonical
// "YYYY-MM-DD HH:MM:SS" form (date only when the template carries no clock).
// Calendar validity is never checked: day 31 in a 30-day month is passed
// through as captured.
func composeDateTime(year, month, day, clock string) string {
	dt := year + "-" + month + "-" + day
	if clock != "" {
		dt += " " + clock
	}
	return dt
}

// stripQuotes removes literal double quotes from captured free text so they
// cannot corrupt the delimiter-joined record. No other cleanup is applied:
// spacing inside the captured text is preserved as-is.
func stripQuotes(s string) string {
	return strings.ReplaceAll(s, `"`, "")
}

// bindNames runs the pattern against the text and returns the named captures
// by group name. Unmatched optional groups bind to the empty string.
func bindNames(re *regexp.Regexp, text string) (map[string]string, bool) {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return nil, false
	}
	caps := make(map[string]string, len(m))
	for i, name := range re.SubexpNames() {
		if name != "" {
			caps[name] = m[i]
		}
	}
	return caps, true
}

// allBound reports whether every mandatory capture is non-empty. A template
// that matched but left a mandatory field empty is treated as no-match, never
// as a partial record.
func allBound(caps map[string]string, names []string) bool {
	for _, n := range names {
		if caps[n] == "" {
			return false
		}
	}
	return true
}
