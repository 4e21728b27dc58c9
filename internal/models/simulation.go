package models

// SimulationRequest is a credit simulation as entered by the user. Amounts are
// decimal strings; exactly one of Principal and Installment must be filled.
type SimulationRequest struct {
	Principal        string      `json:"principal"`
	Installment      string      `json:"installment"`
	TermCount        int         `json:"term_count"`
	Category         string      `json:"category"`
	Restriction      Restriction `json:"restriction"`
	FirstPaymentDate string      `json:"first_payment_date"` // YYYY-MM-DD, defaults to one month from today
}

// SimulationResponse carries the solved simulation, ready for display and
// for filling contract templates.
type SimulationResponse struct {
	Solved           string           `json:"solved"`
	Principal        float64          `json:"principal"`
	Installment      float64          `json:"installment"`
	OpeningBalance   float64          `json:"opening_balance"`
	RatePercent      float64          `json:"rate_percent"`
	TermCount        int              `json:"term_count"`
	GraceMonths      int              `json:"grace_months"`
	FirstPaymentDate string           `json:"first_payment_date"`
	Schedule         []InstallmentRow `json:"schedule"`
	Totals           Totals           `json:"totals"`
	Contract         ContractData     `json:"contract"`
	Warnings         []string         `json:"warnings,omitempty"`
}

// Totals are derived from the solved installment and principal. Word forms
// are empty when the amount cannot be spelled.
type Totals struct {
	TotalPaid              float64 `json:"total_paid"`
	TotalInterest          float64 `json:"total_interest"`
	InstallmentFormatted   string  `json:"installment_formatted"`
	InstallmentWords       string  `json:"installment_words,omitempty"`
	TotalPaidFormatted     string  `json:"total_paid_formatted"`
	TotalPaidWords         string  `json:"total_paid_words,omitempty"`
	TotalInterestFormatted string  `json:"total_interest_formatted"`
	TotalInterestWords     string  `json:"total_interest_words,omitempty"`
}

// RemainingPaymentsRequest asks how many installments pay off a balance.
type RemainingPaymentsRequest struct {
	Balance     string      `json:"balance"`
	Installment string      `json:"installment"`
	Category    string      `json:"category"`
	Restriction Restriction `json:"restriction"`
}

type RemainingPaymentsResponse struct {
	RemainingPayments int     `json:"remaining_payments"`
	RatePercent       float64 `json:"rate_percent"`
}

// SummaryEmailRequest asks for a simulation summary to be mailed.
type SummaryEmailRequest struct {
	To         string            `json:"to"`
	Name       string            `json:"name"`
	Simulation SimulationRequest `json:"simulation"`
}
