package models

import "time"

// Restriction selects which rate of a category applies to the borrower.
type Restriction string

const (
	WithoutRestriction Restriction = "sem_restricao"
	WithRestriction    Restriction = "com_restricao"
)

// RateCategory is a borrower category with its monthly rates, in percent.
type RateCategory struct {
	Name         string  `json:"categoria"`
	Unrestricted float64 `json:"sem_restricao"`
	Restricted   float64 `json:"com_restricao"`
}

// ReferenceRate is the latest published value of a central bank rate series.
// MonthlyPercent is the compound monthly equivalent of AnnualPercent.
type ReferenceRate struct {
	Series         int       `json:"series"`
	AnnualPercent  float64   `json:"annual_percent"`
	MonthlyPercent float64   `json:"monthly_percent"`
	ReferenceDate  string    `json:"reference_date"`
	FetchedAt      time.Time `json:"fetched_at"`
}
