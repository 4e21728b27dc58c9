package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// currencyPrefix matches Intl.NumberFormat("pt-BR", {currency: "BRL"}),
// which separates the symbol with a no-break space.
const currencyPrefix = "R$\u00a0"

const dateLayout = "02/01/2006"

// FormatBRL formats value as Brazilian Real, e.g. "R$ 1.234,56".
func FormatBRL(value float64) string {
	return FormatBRLDecimal(decimal.NewFromFloat(value))
}

// FormatBRLDecimal formats a decimal amount as Brazilian Real.
func FormatBRLDecimal(value decimal.Decimal) string {
	rounded := value.Round(2)
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Neg()
	}

	fixed := rounded.StringFixed(2)
	dot := strings.IndexByte(fixed, '.')
	return sign + currencyPrefix + groupThousands(fixed[:dot]) + "," + fixed[dot+1:]
}

// FormatPercent formats a percent value with two decimals, e.g. "6.68%".
func FormatPercent(percent float64) string {
	return decimal.NewFromFloat(percent).Round(2).String() + "%"
}

// FormatDate formats t as dd/mm/yyyy.
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// ParseAmount parses a monetary amount written as "1234.56", "1.234,56",
// "10.000" or "R$ 1.234,56". Without a comma, dots followed only by groups of
// exactly three digits are thousands separators. An empty string is a zero
// amount.
func ParseAmount(raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "R$")
	s = strings.Map(func(r rune) rune {
		if r == ' ' || r == '\u00a0' {
			return -1
		}
		return r
	}, s)
	if s == "" {
		return decimal.Zero, nil
	}

	switch {
	case strings.Contains(s, ","):
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	case groupedThousands(s):
		s = strings.ReplaceAll(s, ".", "")
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", raw, err)
	}
	return d, nil
}

// groupedThousands reports whether s looks like "10.000" or "1.234.567".
func groupedThousands(s string) bool {
	s = strings.TrimPrefix(s, "-")
	groups := strings.Split(s, ".")
	if len(groups) < 2 {
		return false
	}
	head := groups[0]
	if len(head) < 1 || len(head) > 3 || head[0] == '0' || !allDigits(head) {
		return false
	}
	for _, g := range groups[1:] {
		if len(g) != 3 || !allDigits(g) {
			return false
		}
	}
	return true
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
