package amortization

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculate_KnownPrincipal(t *testing.T) {
	res, err := Calculate(LoanParameters{
		Principal:    10000,
		PeriodicRate: 0.0668,
		TermCount:    12,
		FirstPayment: firstPayment,
	})
	require.NoError(t, err)

	assert.Equal(t, SolvedInstallment, res.Solved)
	assert.Equal(t, 10000.0, res.Principal)
	assert.Equal(t, 1237.63, res.Installment)
	assert.Equal(t, 10000.0, res.OpeningBalance)
	require.Len(t, res.Rows, 12)
	assert.InDelta(t, 14851.56, res.TotalPaid(), 1e-6)
	assert.InDelta(t, 4851.56, res.TotalInterest(), 1e-6)
}

func TestCalculate_KnownInstallment(t *testing.T) {
	res, err := Calculate(LoanParameters{
		Installment:  1237.63,
		PeriodicRate: 0.0668,
		TermCount:    12,
		FirstPayment: firstPayment,
	})
	require.NoError(t, err)

	assert.Equal(t, SolvedPrincipal, res.Solved)
	assert.Equal(t, 1237.63, res.Installment)
	// The cent-rounded installment solves back to slightly under 10000.
	assert.Equal(t, 9999.96, res.Principal)
	assert.Equal(t, 0.0, res.Rows[11].RemainingBalance)
}

func TestCalculate_GraceCapitalizesBeforeInstallment(t *testing.T) {
	res, err := Calculate(LoanParameters{
		Principal:    1000,
		PeriodicRate: 0.05,
		TermCount:    10,
		GraceMonths:  2,
		FirstPayment: firstPayment,
	})
	require.NoError(t, err)

	assert.InDelta(t, 1102.5, res.OpeningBalance, 1e-9)
	assert.Equal(t, roundTo2Decimals(ComputeInstallment(1102.5, 0.05, 10)), res.Installment)
	assert.InDelta(t, 1102.5*0.05, res.Rows[0].Interest, 1e-9)
}

func TestCalculate_InputErrors(t *testing.T) {
	_, err := Calculate(LoanParameters{Principal: 1000, Installment: 100, PeriodicRate: 0.05, TermCount: 12})
	assert.ErrorIs(t, err, ErrAmbiguousInput)

	_, err = Calculate(LoanParameters{PeriodicRate: 0.05, TermCount: 12})
	assert.ErrorIs(t, err, ErrNoInput)
}

func TestResultTotalsFollowInputs(t *testing.T) {
	res := Result{Principal: 1000, Installment: 110, TermCount: 10}
	assert.InDelta(t, 1100.0, res.TotalPaid(), 1e-9)

	res.TermCount = 12
	assert.InDelta(t, 1320.0, res.TotalPaid(), 1e-9)
	assert.InDelta(t, 320.0, res.TotalInterest(), 1e-9)
}
