package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Dan9191/credit-simulator/internal/amortization"
	"github.com/Dan9191/credit-simulator/internal/models"
	"github.com/Dan9191/credit-simulator/internal/utils"
	"github.com/Dan9191/credit-simulator/internal/words"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

const isoDate = "2006-01-02"

// Simulate solves a credit simulation and formats its schedule, totals and
// contract placeholders.
func (s *Service) Simulate(ctx context.Context, req models.SimulationRequest) (models.SimulationResponse, error) {
	params, percent, err := s.loanParameters(ctx, req)
	if err != nil {
		s.log.WithError(err).Warn("Simulation rejected")
		return models.SimulationResponse{}, err
	}

	res, err := amortization.Calculate(params)
	if err != nil {
		s.log.WithError(err).Warn("Simulation rejected")
		return models.SimulationResponse{}, fmt.Errorf("failed to calculate simulation: %w", err)
	}

	s.log.WithFields(logrus.Fields{
		"category":    req.Category,
		"restriction": req.Restriction,
		"term_count":  params.TermCount,
		"grace":       params.GraceMonths,
		"solved":      res.Solved.String(),
	}).Info("Simulation calculated")

	return s.buildResponse(res, params, percent), nil
}

// RemainingPayments solves the number of installments that pay off a balance
// at the category rate.
func (s *Service) RemainingPayments(ctx context.Context, req models.RemainingPaymentsRequest) (models.RemainingPaymentsResponse, error) {
	percent, err := s.ratePercent(ctx, req.Category, req.Restriction)
	if err != nil {
		return models.RemainingPaymentsResponse{}, err
	}
	balance, err := parseAmount(req.Balance)
	if err != nil {
		return models.RemainingPaymentsResponse{}, err
	}
	installment, err := parseAmount(req.Installment)
	if err != nil {
		return models.RemainingPaymentsResponse{}, err
	}

	n, err := amortization.SolveRemainingPayments(balance, installment, percent/100)
	if err != nil {
		s.log.WithError(err).Warn("Remaining payments rejected")
		return models.RemainingPaymentsResponse{}, fmt.Errorf("failed to solve remaining payments: %w", err)
	}
	return models.RemainingPaymentsResponse{RemainingPayments: n, RatePercent: percent}, nil
}

func (s *Service) loanParameters(ctx context.Context, req models.SimulationRequest) (amortization.LoanParameters, float64, error) {
	percent, err := s.ratePercent(ctx, req.Category, req.Restriction)
	if err != nil {
		return amortization.LoanParameters{}, 0, err
	}
	if req.TermCount < 1 || req.TermCount > s.config.MaxTermCount {
		return amortization.LoanParameters{}, 0, fmt.Errorf("%w: %d not in [1, %d]", ErrInvalidTerm, req.TermCount, s.config.MaxTermCount)
	}
	principal, err := parseAmount(req.Principal)
	if err != nil {
		return amortization.LoanParameters{}, 0, err
	}
	installment, err := parseAmount(req.Installment)
	if err != nil {
		return amortization.LoanParameters{}, 0, err
	}

	now := s.now()
	first, err := s.firstPayment(req.FirstPaymentDate, now)
	if err != nil {
		return amortization.LoanParameters{}, 0, err
	}

	return amortization.LoanParameters{
		Principal:    principal,
		Installment:  installment,
		PeriodicRate: percent / 100,
		TermCount:    req.TermCount,
		GraceMonths:  amortization.GraceMonths(first, now),
		FirstPayment: first,
	}, percent, nil
}

// firstPayment parses a YYYY-MM-DD date in the local zone. An empty value is
// the same day next month.
func (s *Service) firstPayment(raw string, now time.Time) (time.Time, error) {
	if strings.TrimSpace(raw) == "" {
		y, m, d := now.Date()
		return time.Date(y, m+1, d, 0, 0, 0, 0, now.Location()), nil
	}
	t, err := time.ParseInLocation(isoDate, strings.TrimSpace(raw), now.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, raw)
	}
	return t, nil
}

func (s *Service) buildResponse(res amortization.Result, params amortization.LoanParameters, percent float64) models.SimulationResponse {
	resp := models.SimulationResponse{
		Solved:           res.Solved.String(),
		Principal:        res.Principal,
		Installment:      res.Installment,
		OpeningBalance:   res.OpeningBalance,
		RatePercent:      percent,
		TermCount:        res.TermCount,
		GraceMonths:      params.GraceMonths,
		FirstPaymentDate: params.FirstPayment.Format(isoDate),
	}

	installment := utils.FormatBRL(res.Installment)
	resp.Schedule = make([]models.InstallmentRow, 0, len(res.Rows))
	for _, row := range res.Rows {
		resp.Schedule = append(resp.Schedule, models.InstallmentRow{
			Number:       row.Index,
			Date:         utils.FormatDate(row.Date),
			Value:        installment,
			Amortization: utils.FormatBRL(row.Amortization),
			Balance:      utils.FormatBRL(row.RemainingBalance),
			Interest:     utils.FormatBRL(row.Interest),
		})
	}

	totalPaid := res.TotalPaid()
	totalInterest := res.TotalInterest()
	spell := func(label string, amount float64) string {
		text, err := words.ToWords(amount)
		if err != nil {
			s.log.WithError(err).WithField("field", label).Warn("Amount not spelled")
			resp.Warnings = append(resp.Warnings, label+": "+UserMessage(err))
			return ""
		}
		return text
	}

	resp.Totals = models.Totals{
		TotalPaid:              totalPaid,
		TotalInterest:          totalInterest,
		InstallmentFormatted:   installment,
		InstallmentWords:       spell("valor da parcela", res.Installment),
		TotalPaidFormatted:     utils.FormatBRL(totalPaid),
		TotalPaidWords:         spell("valor total", totalPaid),
		TotalInterestFormatted: utils.FormatBRL(totalInterest),
	}
	if totalInterest > 0 {
		resp.Totals.TotalInterestWords = spell("juros totais", totalInterest)
	}

	resp.Contract = models.ContractData{
		Credit:             decimal.NewFromFloat(res.Principal).StringFixed(2),
		CreditValue:        utils.FormatBRL(res.Principal),
		TotalOperation:     resp.Totals.TotalPaidFormatted,
		TotalOperationText: resp.Totals.TotalPaidWords,
		TotalInstallments:  res.TermCount,
		InterestRate:       utils.FormatPercent(percent),
		ConditionsTable:    conditionsTable(resp.Schedule),
	}
	return resp
}

// conditionsTable renders the schedule as the plain-text payment conditions
// block of the contract, one line per installment.
func conditionsTable(rows []models.InstallmentRow) string {
	var b strings.Builder
	for _, r := range rows {
		fmt.Fprintf(&b, "%dª : %s - %s - %s - %s - %s \n", r.Number, r.Date, r.Balance, r.Amortization, r.Interest, r.Value)
	}
	return b.String()
}

func parseAmount(raw string) (float64, error) {
	d, err := utils.ParseAmount(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidAmount, err)
	}
	if d.IsNegative() {
		return 0, fmt.Errorf("%w: %s is negative", ErrInvalidAmount, d)
	}
	return d.InexactFloat64(), nil
}
