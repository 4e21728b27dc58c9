package models

// InstallmentRow is one schedule row formatted for display and documents.
type InstallmentRow struct {
	Number       int    `json:"parcela"`
	Date         string `json:"data"`
	Value        string `json:"valor"`
	Amortization string `json:"amortizacao"`
	Balance      string `json:"saldo_devedor"`
	Interest     string `json:"juros"`
}
