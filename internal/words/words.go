// Package words spells Brazilian Real amounts out in Portuguese, as used in
// contract text ("mil e duzentos reais e noventa centavos").
package words

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Limit is the first integer amount that cannot be spelled.
const Limit = 1_000_000

// ErrOutOfRange is returned for negative amounts and for amounts whose integer
// part, after rounding to cents, reaches Limit.
var ErrOutOfRange = errors.New("amount out of range")

var (
	units = [...]string{
		"", "um", "dois", "três", "quatro", "cinco", "seis", "sete", "oito", "nove",
	}
	teens = [...]string{
		"dez", "onze", "doze", "treze", "quatorze", "quinze", "dezesseis", "dezessete", "dezoito", "dezenove",
	}
	tens = [...]string{
		"", "", "vinte", "trinta", "quarenta", "cinquenta", "sessenta", "setenta", "oitenta", "noventa",
	}
	hundreds = [...]string{
		"", "cento", "duzentos", "trezentos", "quatrocentos", "quinhentos", "seiscentos", "setecentos", "oitocentos", "novecentos",
	}
)

// ToWords spells amount in reais and centavos. The amount is rounded half up
// to cents first. A zero integer part spells as nothing, so 0.01 becomes
// " reais e um centavo".
func ToWords(amount float64) (string, error) {
	return DecimalToWords(decimal.NewFromFloat(amount))
}

// DecimalToWords is ToWords for a decimal amount.
func DecimalToWords(amount decimal.Decimal) (string, error) {
	if amount.IsNegative() {
		return "", fmt.Errorf("%w: %s is negative", ErrOutOfRange, amount)
	}

	rounded := amount.Round(2)
	reais := rounded.IntPart()
	centavos := rounded.Sub(decimal.NewFromInt(reais)).Shift(2).IntPart()

	if reais >= Limit {
		return "", fmt.Errorf("%w: %s is not below %d", ErrOutOfRange, rounded.StringFixed(2), Limit)
	}

	text := spell(int(reais)) + plural(reais, " real", " reais")
	if centavos > 0 {
		text += " e " + spell(int(centavos)) + plural(centavos, " centavo", " centavos")
	}
	return text, nil
}

// Spell returns the Portuguese words for n in [0, Limit). Zero spells as the
// empty string.
func Spell(n int) (string, error) {
	if n < 0 || n >= Limit {
		return "", fmt.Errorf("%w: %d", ErrOutOfRange, n)
	}
	return spell(n), nil
}

func spell(n int) string {
	switch {
	case n == 100:
		return "cem"
	case n < 10:
		return units[n]
	case n < 20:
		return teens[n-10]
	case n < 100:
		return join(tens[n/10], n%10)
	case n < 1000:
		return join(hundreds[n/100], n%100)
	default:
		thousands := "mil"
		if q := n / 1000; q != 1 {
			thousands = spell(q) + " mil"
		}
		return join(thousands, n%1000)
	}
}

// join appends " e <rest>" to head when rest is non-zero.
func join(head string, rest int) string {
	if rest == 0 {
		return head
	}
	return head + " e " + spell(rest)
}

func plural(n int64, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
