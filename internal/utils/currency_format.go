package utils

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var groupingPrinter = message.NewPrinter(language.English)

// FormatWon renders a local-currency amount rounded to whole won with
// thousands separators.
// Example: 14250200.4 returns "₩14,250,200"
// Example: 1539021.6 returns "₩1,539,022"
func FormatWon(amount decimal.Decimal) string {
	return "₩" + FormatGrouped(amount, 0)
}

// FormatGrouped rounds amount to precision places and groups the integer
// digits in threes, e.g. FormatGrouped(1352.4, 2) returns "1,352.40".
// The digits come from the decimal itself, so no precision is lost on
// large amounts.
func FormatGrouped(amount decimal.Decimal, precision int) string {
	rounded := amount.Round(int32(precision))
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Abs()
	}

	intDigits, frac, _ := strings.Cut(rounded.StringFixed(int32(precision)), ".")
	out := sign + groupDigits(intDigits)
	if frac != "" {
		out += "." + frac
	}
	return out
}

// groupDigits inserts thousands separators into a string of decimal digits.
func groupDigits(digits string) string {
	if n, err := strconv.ParseInt(digits, 10, 64); err == nil {
		return groupingPrinter.Sprintf("%d", n)
	}

	// Beyond int64.
	var b strings.Builder
	head := len(digits) % 3
	if head == 0 {
		head = 3
	}
	b.WriteString(digits[:head])
	for i := head; i < len(digits); i += 3 {
		b.WriteByte(',')
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
