// Package money renders transfer amounts with locale-specific separators.
package money

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// DefaultLocale groups thousands with "." and separates decimals with ",".
const DefaultLocale = "de-DE"

// Formatter prints amounts for a fixed locale.
type Formatter struct {
	printer  *message.Printer
	decimal  string
	grouping string
}

// NewFormatter returns a Formatter for the given BCP 47 tag.
func NewFormatter(locale string) (*Formatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("parse locale %q: %w", locale, err)
	}
	p := message.NewPrinter(tag)
	return &Formatter{
		printer:  p,
		decimal:  between(p.Sprint(number.Decimal(1.5, number.Scale(1))), "1", "5"),
		grouping: between(p.Sprint(number.Decimal(1234567)), "1", "234"),
	}, nil
}

// between returns the text of s after prefix and before the first sep.
func between(s, prefix, sep string) string {
	s = strings.TrimPrefix(s, prefix)
	if i := strings.Index(s, sep); i >= 0 {
		return s[:i]
	}
	return ""
}

// Number prints amount with exactly two fraction digits. The digits come
// from the decimal itself, so large amounts keep every digit.
func (f *Formatter) Number(amount decimal.Decimal) string {
	fixed := amount.StringFixed(2)
	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign, fixed = "-", fixed[1:]
	}
	whole, frac, _ := strings.Cut(fixed, ".")
	return sign + f.group(whole) + f.decimal + frac
}

// group inserts the locale's thousands separator into a run of digits.
func (f *Formatter) group(digits string) string {
	if n, err := strconv.ParseInt(digits, 10, 64); err == nil {
		return f.printer.Sprint(number.Decimal(n))
	}
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteString(f.grouping)
		}
		b.WriteRune(d)
	}
	return b.String()
}

// Format prints amount followed by the currency code, e.g. "1.234,50 USD".
func (f *Formatter) Format(amount decimal.Decimal, currency string) string {
	return f.Number(amount) + " " + currency
}
