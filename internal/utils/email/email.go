package email

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/Dan9191/credit-simulator/internal/config"
	"github.com/Dan9191/credit-simulator/internal/models"
	"github.com/jordan-wright/email"
	"github.com/sirupsen/logrus"
)

// Sender handles sending emails via SMTP
type Sender struct {
	cfg    *config.Config
	logger *logrus.Logger
	send   func(e *email.Email) error
}

// NewSender creates a new email sender
func NewSender(cfg *config.Config, logger *logrus.Logger) *Sender {
	s := &Sender{
		cfg:    cfg,
		logger: logger,
	}
	s.send = s.sendSMTP
	return s
}

func (s *Sender) sendSMTP(e *email.Email) error {
	addr := fmt.Sprintf("%s:%s", s.cfg.SMTPHost, s.cfg.SMTPPort)
	var auth smtp.Auth
	if s.cfg.SMTPUsername != "" {
		auth = smtp.PlainAuth("", s.cfg.SMTPUsername, s.cfg.SMTPPassword, s.cfg.SMTPHost)
	}
	return e.Send(addr, auth)
}

// SendSimulationSummary sends the totals and schedule of a simulation
func (s *Sender) SendSimulationSummary(to, name string, summary models.SimulationResponse) error {
	e := s.buildSummary(to, name, summary)

	if err := s.send(e); err != nil {
		s.logger.Errorf("Failed to send email to %s: %v", to, err)
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.Infof("Email sent to %s: %s", to, e.Subject)
	return nil
}

func (s *Sender) buildSummary(to, name string, summary models.SimulationResponse) *email.Email {
	e := email.NewEmail()
	e.From = s.cfg.SenderEmail
	e.To = []string{to}
	e.Subject = fmt.Sprintf("Simulação de Crédito - %d parcelas de %s", summary.TermCount, summary.Totals.InstallmentFormatted)

	var body strings.Builder
	if name != "" {
		fmt.Fprintf(&body, "Prezado(a) %s,\n\n", name)
	} else {
		body.WriteString("Prezado(a),\n\n")
	}
	body.WriteString("Segue o resumo da sua simulação de crédito.\n\n")

	fmt.Fprintf(&body, "VALOR DO EMPRÉSTIMO: %s\n", summary.Contract.CreditValue)
	fmt.Fprintf(&body, "TAXA DE JUROS: %s a.m.\n", summary.Contract.InterestRate)
	fmt.Fprintf(&body, "VALOR DA PARCELA: %s%s\n", summary.Totals.InstallmentFormatted, inWords(summary.Totals.InstallmentWords))
	fmt.Fprintf(&body, "TOTAL DE PARCELAS: %d\n", summary.TermCount)
	fmt.Fprintf(&body, "VALOR TOTAL: %s%s\n", summary.Totals.TotalPaidFormatted, inWords(summary.Totals.TotalPaidWords))
	if summary.Totals.TotalInterest > 0 {
		fmt.Fprintf(&body, "JUROS TOTAIS: %s%s\n", summary.Totals.TotalInterestFormatted, inWords(summary.Totals.TotalInterestWords))
	}
	if summary.GraceMonths > 0 {
		fmt.Fprintf(&body, "CARÊNCIA: %d mês(es)\n", summary.GraceMonths)
	}

	body.WriteString("\nCONDIÇÕES DE PAGAMENTO:\n")
	body.WriteString(summary.Contract.ConditionsTable)
	body.WriteString("\n* Nenhum custo adicional (IOF, TAC ou seguros) está incluído nesta simulação.\n")
	body.WriteString("\nAtenciosamente,\nSimulador de Crédito")

	e.Text = []byte(body.String())
	return e
}

func inWords(text string) string {
	if text == "" {
		return ""
	}
	return " (" + strings.TrimSpace(text) + ")"
}
