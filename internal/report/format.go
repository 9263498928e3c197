package report

import (
	"crypto/rand"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ---------------------------------------------------------------------------
// Formatting Helpers
// ---------------------------------------------------------------------------

const defaultCurrency = "MXN"

// numberTag selects the digit grouping used for amounts and counts
// (1,234.50), which is what es-MX readers expect.
var numberTag = language.AmericanEnglish

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"02/01/2006",
}

// finite maps NaN and ±Inf to zero.
func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// currencyCode normalizes an ISO 4217 code, defaulting to MXN for empty or
// unknown codes.
func currencyCode(code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return defaultCurrency
	}
	unit, err := currency.ParseISO(code)
	if err != nil {
		return defaultCurrency
	}
	return unit.String()
}

func currencyPrefix(code string) string {
	switch code {
	case "MXN":
		return "$"
	case "USD":
		return "US$"
	default:
		return code + " "
	}
}

// FormatMoney formats an amount in the given currency, e.g. "$15,320.50"
// for MXN. Non-finite amounts format as zero.
func FormatMoney(amount float64, code string) string {
	code = currencyCode(code)
	cents := decimal.NewFromFloat(finite(amount)).Round(2)

	sign := ""
	if cents.IsNegative() {
		sign = "-"
		cents = cents.Neg()
	}
	v, _ := cents.Float64()
	return sign + currencyPrefix(code) + message.NewPrinter(numberTag).Sprintf("%.2f", v)
}

// FormatCount formats an integer with thousands separators.
func FormatCount(n int) string {
	return message.NewPrinter(numberTag).Sprintf("%d", n)
}

// parseDate accepts the date shapes the API is known to send.
func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatDate formats an API date as DD/MM/YYYY. Unparseable values are
// returned as given so the reader still sees what the API sent.
func FormatDate(s string) string {
	t, ok := parseDate(s)
	if !ok {
		return strings.TrimSpace(s)
	}
	return t.Format("02/01/2006")
}

// ISODate returns an API date as YYYY-MM-DD, or "" when it cannot be
// parsed.
func ISODate(s string) string {
	t, ok := parseDate(s)
	if !ok {
		return ""
	}
	return t.Format("2006-01-02")
}

// FormatRange formats a date range for the banner and meta strip.
func FormatRange(start, end string) string {
	from, to := FormatDate(start), FormatDate(end)
	switch {
	case from == "" && to == "":
		return ""
	case from == "":
		return "hasta " + to
	case to == "":
		return "desde " + from
	case from == to:
		return from
	default:
		return from + " al " + to
	}
}

// FormatTimestamp formats the generation time printed in every footer.
func FormatTimestamp(t time.Time) string {
	return t.Format("02/01/2006 15:04")
}

// reportID generates a structured report reference number.
// Format: CC-YYYY-MM-XXXX (e.g., CC-2026-10-A7K2)
func reportID(t time.Time) string {
	const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	b := make([]byte, 4)
	rand.Read(b)
	for i := range b {
		b[i] = charset[int(b[i])%len(charset)]
	}

	return fmt.Sprintf("CC-%d-%02d-%s", t.Year(), t.Month(), string(b))
}
