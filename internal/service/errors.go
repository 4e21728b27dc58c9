package service

import (
	"errors"

	"github.com/Dan9191/credit-simulator/internal/amortization"
	"github.com/Dan9191/credit-simulator/internal/repository"
	"github.com/Dan9191/credit-simulator/internal/words"
)

var (
	ErrUnknownCategory    = errors.New("unknown rate category")
	ErrInvalidRestriction = errors.New("invalid restriction type")
	ErrInvalidTerm        = errors.New("invalid term count")
	ErrInvalidAmount      = errors.New("invalid amount")
	ErrInvalidDate        = errors.New("invalid first payment date")
	ErrInvalidRecipient   = errors.New("e-mail recipient is required")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrMailerDisabled     = errors.New("e-mail delivery is not configured")
)

// IsValidationError reports whether err comes from user input rather than
// from an upstream or internal failure.
func IsValidationError(err error) bool {
	for _, target := range []error{
		amortization.ErrAmbiguousInput,
		amortization.ErrNoInput,
		amortization.ErrInsufficientInstallment,
		amortization.ErrMissingInput,
		words.ErrOutOfRange,
		ErrUnknownCategory,
		ErrInvalidRestriction,
		ErrInvalidTerm,
		ErrInvalidAmount,
		ErrInvalidDate,
		ErrInvalidRecipient,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// UserMessage returns the guidance shown to the user for err.
func UserMessage(err error) string {
	switch {
	case errors.Is(err, amortization.ErrAmbiguousInput):
		return "Por favor, preencha apenas um dos campos: Valor do Empréstimo ou Valor da Prestação."
	case errors.Is(err, amortization.ErrNoInput):
		return "Por favor, preencha um dos campos para calcular."
	case errors.Is(err, amortization.ErrMissingInput):
		return "Por favor, preencha o Valor do Empréstimo e o Valor da Prestação para calcular."
	case errors.Is(err, amortization.ErrInsufficientInstallment):
		return "O valor da prestação é insuficiente para cobrir os juros. Ajuste os valores."
	case errors.Is(err, words.ErrOutOfRange):
		return "Valor por extenso disponível apenas para valores abaixo de R$ 1.000.000,00."
	case errors.Is(err, ErrUnknownCategory), errors.Is(err, repository.ErrCategoryNotFound):
		return "Categoria não encontrada."
	case errors.Is(err, ErrInvalidRestriction):
		return "Tipo de restrição inválido."
	case errors.Is(err, ErrInvalidTerm):
		return "Número de parcelas inválido."
	case errors.Is(err, ErrInvalidAmount):
		return "Valor inválido."
	case errors.Is(err, ErrInvalidDate):
		return "Data da primeira parcela inválida."
	case errors.Is(err, ErrInvalidRecipient):
		return "Informe o e-mail do destinatário."
	case errors.Is(err, ErrInvalidCredentials):
		return "Credenciais inválidas."
	}
	return "Não foi possível concluir a operação."
}
