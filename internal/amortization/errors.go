package amortization

import "errors"

var (
	// ErrAmbiguousInput is returned when both principal and installment are set.
	ErrAmbiguousInput = errors.New("both principal and installment supplied")
	// ErrNoInput is returned when neither principal nor installment is set.
	ErrNoInput = errors.New("neither principal nor installment supplied")
	// ErrInsufficientInstallment is returned when the installment does not
	// cover the interest accrued on the balance in one period.
	ErrInsufficientInstallment = errors.New("installment does not cover accruing interest")
	// ErrMissingInput is returned when balance, installment or rate is absent.
	ErrMissingInput = errors.New("balance, installment and rate are required")
)
