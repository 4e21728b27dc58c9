package models

import "strconv"

// ContractData holds the values substituted into contract templates.
type ContractData struct {
	Credit             string `json:"credito"`
	CreditValue        string `json:"valorCredito"`
	TotalOperation     string `json:"totalOperacao"`
	TotalOperationText string `json:"totalOperacaoTexto"`
	TotalInstallments  int    `json:"totalParcelas"`
	InterestRate       string `json:"taxaJuros"`
	ConditionsTable    string `json:"tabelaCondicoes"`
}

// Placeholders returns the template placeholder names mapped to their values.
func (c ContractData) Placeholders() map[string]string {
	return map[string]string{
		"credito":            c.Credit,
		"valorCredito":       c.CreditValue,
		"totalOperacao":      c.TotalOperation,
		"totalOperacaoTexto": c.TotalOperationText,
		"totalParcelas":      strconv.Itoa(c.TotalInstallments),
		"taxaJuros":          c.InterestRate,
		"tabelaCondicoes":    c.ConditionsTable,
	}
}
