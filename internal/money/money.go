package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatBRL renders an amount as Brazilian currency, e.g. "R$ 1.234,56".
// Every price shown anywhere (catalog, cart, WhatsApp message) goes through
// this function, so the output must stay byte-stable: regular space after the
// symbol, comma decimal separator, dot thousands separator.
func FormatBRL(amount decimal.Decimal) string {
	s := amount.StringFixed(2)

	negative := strings.HasPrefix(s, "-")
	if negative {
		s = s[1:]
	}

	intPart, fracPart, _ := strings.Cut(s, ".")

	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}
	b.WriteString("R$ ")
	for i := 0; i < len(intPart); i++ {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteByte(intPart[i])
	}
	b.WriteByte(',')
	b.WriteString(fracPart)
	return b.String()
}
