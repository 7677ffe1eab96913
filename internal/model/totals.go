package model

import "github.com/shopspring/decimal"

// Totals is the per-category breakdown for one loan application, every
// figure fortnightly-normalized. SACC is the only category carried as a
// per-counterparty map; everything that needs a scalar treats it as the
// sum of its values.
type Totals struct {
	Wages          decimal.Decimal
	Centrelink     decimal.Decimal
	Rent           decimal.Decimal
	Gambling       decimal.Decimal
	Insurance      decimal.Decimal
	DebtCollection decimal.Decimal
	LivingExpenses decimal.Decimal
	SACC           map[string]decimal.Decimal

	// Keyword-driven credit products, resolved against the get-factor
	// service keyword lists.
	BNPL        decimal.Decimal
	WageAdvance decimal.Decimal
	NonSACC     decimal.Decimal
}

// NewTotals returns a zeroed Totals with an initialized SACC breakdown.
func NewTotals() Totals {
	return Totals{SACC: make(map[string]decimal.Decimal)}
}

// TotalSACC sums the per-counterparty SACC repayments.
func (t Totals) TotalSACC() decimal.Decimal {
	sum := decimal.Zero
	for _, v := range t.SACC {
		sum = sum.Add(v)
	}
	return sum
}

// Assessment is the final serviceability summary for one loan.
type Assessment struct {
	LoanID        int
	AccountHolder string
	Totals        Totals
	TotalIncome   decimal.Decimal
	TotalExpenses decimal.Decimal
	Surplus       decimal.Decimal
}
