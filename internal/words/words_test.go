package words

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToWords(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{amount: 1, want: "um real"},
		{amount: 2, want: "dois reais"},
		{amount: 10, want: "dez reais"},
		{amount: 11, want: "onze reais"},
		{amount: 19, want: "dezenove reais"},
		{amount: 20, want: "vinte reais"},
		{amount: 21, want: "vinte e um reais"},
		{amount: 99, want: "noventa e nove reais"},
		{amount: 100, want: "cem reais"},
		{amount: 101, want: "cento e um reais"},
		{amount: 110, want: "cento e dez reais"},
		{amount: 119, want: "cento e dezenove reais"},
		{amount: 200, want: "duzentos reais"},
		{amount: 999, want: "novecentos e noventa e nove reais"},
		{amount: 1000, want: "mil reais"},
		{amount: 1001, want: "mil e um reais"},
		{amount: 1100, want: "mil e cem reais"},
		{amount: 2000, want: "dois mil reais"},
		{amount: 2534.90, want: "dois mil e quinhentos e trinta e quatro reais e noventa centavos"},
		{amount: 100000, want: "cem mil reais"},
		{amount: 101000, want: "cento e um mil reais"},
		{amount: 999999.99, want: "novecentos e noventa e nove mil e novecentos e noventa e nove reais e noventa e nove centavos"},
		{amount: 1.01, want: "um real e um centavo"},
		{amount: 5.10, want: "cinco reais e dez centavos"},
		{amount: 12.345, want: "doze reais e trinta e cinco centavos"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got, err := ToWords(tt.amount)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToWords_ZeroIntegerPart(t *testing.T) {
	got, err := ToWords(0.01)
	require.NoError(t, err)
	assert.Equal(t, " reais e um centavo", got)

	got, err = ToWords(0)
	require.NoError(t, err)
	assert.Equal(t, " reais", got)
}

func TestToWords_OutOfRange(t *testing.T) {
	for _, amount := range []float64{1_000_000, 1_500_000.25, 999_999.995, -1} {
		_, err := ToWords(amount)
		assert.ErrorIs(t, err, ErrOutOfRange, "amount %v", amount)
	}
}

func TestDecimalToWords(t *testing.T) {
	got, err := DecimalToWords(decimal.RequireFromString("1234.56"))
	require.NoError(t, err)
	assert.Equal(t, "mil e duzentos e trinta e quatro reais e cinquenta e seis centavos", got)
}

func TestSpell(t *testing.T) {
	got, err := Spell(0)
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = Spell(300)
	require.NoError(t, err)
	assert.Equal(t, "trezentos", got)

	_, err = Spell(Limit)
	assert.ErrorIs(t, err, ErrOutOfRange)
}
