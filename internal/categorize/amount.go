// Package categorize classifies statement-analysis entries and decision
// metrics into fortnightly category totals.
package categorize

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/rijuma15/cash-faster/internal/model"
)

// Statement-analysis category names recognized by the accumulator.
const (
	categoryRent       = "Rent"
	categoryInsurance  = "Insurance"
	categoryWages      = "Wages"
	categoryCentrelink = "Centrelink"
	categoryGambling   = "Gambling"
	categorySACCLoans  = "SACC Loans"
)

// Keyword-driven categories resolved against the get-factor service.
const (
	CategoryBNPL        = "BNPL"
	CategoryWageAdvance = "Wage Advance"
	CategoryNonSACC     = "Non-SACC Loans"
)

// Analysis-point names carried by the upstream report.
const (
	pointTotalAmount   = "totalAmount"
	pointAverageAmount = "averageTransactionAmount"
	pointTotalDebits   = "totalAmountDebits"
	pointTotalCredits  = "totalAmountCredits"
)

// onceOffMarker flags one-time costs in the decision-metrics feed.
const onceOffMarker = "(Once off)"

var (
	six       = decimal.NewFromInt(6)
	twelve    = decimal.NewFromInt(12)
	twentySix = decimal.NewFromInt(26)
)

// fortnightly converts a monthly amount to its two-week equivalent.
func fortnightly(monthly decimal.Decimal) decimal.Decimal {
	return monthly.Mul(twelve).Div(twentySix)
}

// categoryAmount returns the non-negative amount for an analysis
// category. The first analysis point matching pointName wins; when the
// summary point is absent upstream, the absolute transaction amounts
// across every group are summed instead. Non-numeric values coerce to
// zero rather than failing the category.
func categoryAmount(cat model.AnalysisCategory, pointName string) decimal.Decimal {
	for _, p := range cat.AnalysisPoints {
		if p.Name == pointName {
			return p.Value.Value.Abs()
		}
	}

	sum := decimal.Zero
	for _, group := range cat.TransactionGroups {
		for _, txn := range group.Transactions {
			sum = sum.Add(txn.Amount.Value.Abs())
		}
	}
	return sum
}

// ParseMonetary parses a currency-formatted metric value like "$1200"
// or "250 (Once off)", stripping the dollar sign and once-off marker.
// Unparseable input is zero.
func ParseMonetary(s string) decimal.Decimal {
	cleaned := strings.ReplaceAll(s, "$", "")
	cleaned = strings.ReplaceAll(cleaned, " "+onceOffMarker, "")
	cleaned = strings.TrimSpace(cleaned)

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}
	return d
}
