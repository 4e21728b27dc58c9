package amortization

import "time"

// Unknown identifies which monetary value a calculation solved for.
type Unknown int

const (
	SolvedInstallment Unknown = iota + 1
	SolvedPrincipal
)

func (u Unknown) String() string {
	switch u {
	case SolvedInstallment:
		return "installment"
	case SolvedPrincipal:
		return "principal"
	}
	return "unknown"
}

// LoanParameters are the inputs of one calculation. Exactly one of
// Principal and Installment must be positive; zero means "not supplied".
type LoanParameters struct {
	Principal    float64
	Installment  float64
	PeriodicRate float64
	TermCount    int
	GraceMonths  int
	FirstPayment time.Time
}

// Result holds the solved unknown and the schedule of one calculation.
type Result struct {
	Solved Unknown
	// Principal is the supplied principal, or the solved one rounded to cents.
	Principal float64
	// Installment is the supplied installment, or the solved one rounded to cents.
	Installment float64
	// OpeningBalance is Principal after grace-period capitalization.
	OpeningBalance float64
	TermCount      int
	Rows           []ScheduleRow
}

// TotalPaid is Installment times TermCount.
func (r Result) TotalPaid() float64 {
	return r.Installment * float64(r.TermCount)
}

// TotalInterest is TotalPaid minus Principal.
func (r Result) TotalInterest() float64 {
	return r.TotalPaid() - r.Principal
}

// Calculate solves the missing monetary value of p and builds its schedule.
//
// With a known principal the grace interest is capitalized before the
// installment is derived. With a known installment the principal is the
// plain present value; the schedule still capitalizes grace interest on it.
func Calculate(p LoanParameters) (Result, error) {
	hasPrincipal := p.Principal > 0
	hasInstallment := p.Installment > 0

	switch {
	case hasPrincipal && hasInstallment:
		return Result{}, ErrAmbiguousInput
	case !hasPrincipal && !hasInstallment:
		return Result{}, ErrNoInput
	}

	res := Result{TermCount: p.TermCount}
	if hasPrincipal {
		res.Solved = SolvedInstallment
		res.Principal = p.Principal
		opening := ApplyGracePeriod(p.Principal, p.PeriodicRate, p.GraceMonths)
		res.Installment = roundTo2Decimals(ComputeInstallment(opening, p.PeriodicRate, p.TermCount))
	} else {
		res.Solved = SolvedPrincipal
		res.Installment = p.Installment
		res.Principal = roundTo2Decimals(ComputePresentValue(p.Installment, p.PeriodicRate, p.TermCount))
	}

	res.OpeningBalance = ApplyGracePeriod(res.Principal, p.PeriodicRate, p.GraceMonths)
	res.Rows = GenerateSchedule(res.Principal, p.PeriodicRate, p.TermCount, p.GraceMonths, p.FirstPayment)
	return res, nil
}
