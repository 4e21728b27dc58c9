package amortization

import (
	"math"
	"time"
)

// balanceEpsilon is the threshold under which a remaining balance is
// snapped to exactly zero.
const balanceEpsilon = 0.01

// ScheduleRow is one period of an amortization schedule.
type ScheduleRow struct {
	Index            int
	Date             time.Time
	Interest         float64
	Amortization     float64
	RemainingBalance float64
}

// GenerateSchedule builds the full schedule for principal. Interest accrued
// during the grace window is capitalized first, then a fixed installment is
// computed on the capitalized balance. Row i is due firstPayment plus i-1
// months.
func GenerateSchedule(principal, rate float64, periods, graceMonths int, firstPayment time.Time) []ScheduleRow {
	if periods <= 0 {
		return nil
	}

	balance := ApplyGracePeriod(principal, rate, graceMonths)
	installment := ComputeInstallment(balance, rate, periods)

	rows := make([]ScheduleRow, 0, periods)
	for i := 0; i < periods; i++ {
		interest := balance * rate
		amortization := installment - interest
		balance -= amortization
		if balance < balanceEpsilon {
			balance = 0
		}

		rows = append(rows, ScheduleRow{
			Index:            i + 1,
			Date:             firstPayment.AddDate(0, i, 0),
			Interest:         interest,
			Amortization:     amortization,
			RemainingBalance: balance,
		})
	}
	return rows
}

// SolveRemainingPayments returns how many installments are needed to repay
// balance at the periodic rate:
//
//	n = ceil( ln(PMT / (PMT - B*i)) / ln(1+i) )
func SolveRemainingPayments(balance, installment, rate float64) (int, error) {
	if balance <= 0 || installment <= 0 || rate <= 0 {
		return 0, ErrMissingInput
	}
	accrued := balance * rate
	if installment <= accrued {
		return 0, ErrInsufficientInstallment
	}
	n := math.Log(installment/(installment-accrued)) / math.Log(1+rate)
	return int(math.Ceil(n)), nil
}
