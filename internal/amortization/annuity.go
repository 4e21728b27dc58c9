package amortization

import (
	"math"
	"time"
)

// daysPerMonth is the month length used when converting the first-payment
// date into grace months. Calendar month lengths are deliberately not used.
const daysPerMonth = 30.0

// ComputeInstallment returns the fixed payment that amortizes presentValue
// over periods at the given periodic rate:
//
//	PMT = PV * i * (1+i)^n / ((1+i)^n - 1)
//
// It returns 0 when any input is not strictly positive.
func ComputeInstallment(presentValue, rate float64, periods int) float64 {
	if presentValue <= 0 || rate <= 0 || periods <= 0 {
		return 0
	}
	factor := math.Pow(1+rate, float64(periods))
	return presentValue * rate * factor / (factor - 1)
}

// ComputePresentValue is the inverse of ComputeInstallment:
//
//	PV = PMT * ((1+i)^n - 1) / (i * (1+i)^n)
//
// It returns 0 when any input is not strictly positive.
func ComputePresentValue(installment, rate float64, periods int) float64 {
	if installment <= 0 || rate <= 0 || periods <= 0 {
		return 0
	}
	factor := math.Pow(1+rate, float64(periods))
	return installment * (factor - 1) / (rate * factor)
}

// ApplyGracePeriod capitalizes the interest accrued over graceMonths into
// balance. Balances or grace windows that are not positive are returned as is.
func ApplyGracePeriod(balance, rate float64, graceMonths int) float64 {
	if balance <= 0 || graceMonths <= 0 {
		return balance
	}
	return balance + balance*(math.Pow(1+rate, float64(graceMonths))-1)
}

// GraceMonths derives the grace window from the first-payment date. The
// month before the first payment, at local midnight, is compared with now in
// 30-day buckets and rounded half up. The result is never negative.
func GraceMonths(firstPayment, now time.Time) int {
	y, m, d := firstPayment.Date()
	adjusted := time.Date(y, m-1, d, 0, 0, 0, 0, now.Location())

	days := adjusted.Sub(now).Hours() / 24
	months := int(math.Floor(days/daysPerMonth + 0.5))
	if months < 0 {
		return 0
	}
	return months
}

func roundTo2Decimals(value float64) float64 {
	return math.Round(value*100) / 100
}
