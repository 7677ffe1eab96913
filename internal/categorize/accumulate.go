package categorize

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/rijuma15/cash-faster/internal/model"
)

// Accumulate classifies every statement-analysis entry into category
// totals in a single pass. The SACC breakdown is resolved once up
// front, independent of the per-entry loop.
//
// Accumulation rules per category:
//   - Rent: recurring-amount detection over the flattened transactions,
//     summed across entries; reset to zero afterwards if no Rent entry
//     existed at all.
//   - Insurance, Wages: averageTransactionAmount, summed when positive.
//   - Centrelink: averageTransactionAmount, overwritten rather than
//     summed; duplicate bank-account entries would otherwise double
//     count, so the last value wins.
//   - Gambling: net of debits over credits across the six-month window,
//     fortnightly-normalized, summed when positive.
func Accumulate(ctx context.Context, analyses []model.AnalysisEntry, calc RepaymentCalculator, logger zerolog.Logger) model.Totals {
	totals := model.NewTotals()

	if repayments := SACCRepayments(ctx, analyses, calc, logger); len(repayments) > 0 {
		totals.SACC = repayments
		logger.Info().Str("total", totals.TotalSACC().StringFixed(2)).Msg("SACC repayments resolved")
	}

	rentFound := false
	for _, entry := range analyses {
		cat := entry.AnalysisCategory
		switch cat.Name {
		case categoryRent:
			rentFound = true
			var txns []model.Transaction
			for _, group := range cat.TransactionGroups {
				txns = append(txns, group.Transactions...)
			}
			totals.Rent = totals.Rent.Add(RecurringRent(txns))

		case categoryInsurance:
			if amt := categoryAmount(cat, pointAverageAmount); amt.IsPositive() {
				totals.Insurance = totals.Insurance.Add(amt)
			}

		case categoryWages:
			if amt := categoryAmount(cat, pointAverageAmount); amt.IsPositive() {
				totals.Wages = totals.Wages.Add(amt)
			}

		case categoryCentrelink:
			if amt := categoryAmount(cat, pointAverageAmount); amt.IsPositive() {
				totals.Centrelink = amt
			}

		case categoryGambling:
			totals.Gambling = totals.Gambling.Add(gamblingFortnightly(cat))
		}
	}

	// No Rent category entry means no rent, regardless of anything the
	// detector accumulated.
	if !rentFound {
		totals.Rent = decimal.Zero
	}

	return totals
}

// gamblingFortnightly nets the category's debits against its credits
// and converts the six-month net to a fortnightly figure. A net at or
// below zero contributes nothing.
func gamblingFortnightly(cat model.AnalysisCategory) decimal.Decimal {
	debits, credits := decimal.Zero, decimal.Zero
	for _, p := range cat.AnalysisPoints {
		switch p.Name {
		case pointTotalDebits:
			debits = debits.Add(p.Value.Value)
		case pointTotalCredits:
			credits = credits.Add(p.Value.Value)
		}
	}

	net := debits.Sub(credits)
	if !net.IsPositive() {
		return decimal.Zero
	}
	return fortnightly(net.Div(six)).Round(2)
}
