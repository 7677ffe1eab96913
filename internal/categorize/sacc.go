package categorize

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/rijuma15/cash-faster/internal/model"
)

// RepaymentCalculator looks up the fortnightly repayment for a loan
// principal over a term in fortnights.
type RepaymentCalculator interface {
	Repayment(ctx context.Context, amount decimal.Decimal, term int) (decimal.Decimal, error)
}

// saccTermThreshold splits principals between the two repayment
// schedules: below it the short term applies, at or above it the long
// term. The boundary is inclusive on the long-term side.
const (
	saccTermThreshold = 300
	saccShortTerm     = 2
	saccLongTerm      = 5
)

// drawdown is one counterparty's representative loan principal.
type drawdown struct {
	Name   string
	Amount decimal.Decimal
}

// SACCRepayments resolves a fortnightly repayment per SACC-loan
// counterparty. A failed lookup for one counterparty is logged and that
// counterparty omitted; the others still resolve.
func SACCRepayments(ctx context.Context, analyses []model.AnalysisEntry, calc RepaymentCalculator, logger zerolog.Logger) map[string]decimal.Decimal {
	repayments := make(map[string]decimal.Decimal)
	for _, d := range saccDrawdowns(analyses) {
		term := saccShortTerm
		if d.Amount.GreaterThanOrEqual(decimal.NewFromInt(saccTermThreshold)) {
			term = saccLongTerm
		}

		repayment, err := calc.Repayment(ctx, d.Amount, term)
		if err != nil {
			logger.Error().Err(err).Str("counterparty", d.Name).Msg("SACC repayment lookup failed")
			continue
		}

		repayments[d.Name] = repayment
		logger.Info().
			Str("counterparty", d.Name).
			Str("repayment", repayment.StringFixed(2)).
			Int("term", term).
			Msg("SACC repayment resolved")
	}
	return repayments
}

// saccDrawdowns scans the "SACC Loans" transaction groups and records,
// per counterparty, the first credit-tagged transaction with a positive
// numeric amount: the earliest qualifying drawdown, not the largest.
// A counterparty appearing in a later group keeps its original position
// but takes the later amount.
func saccDrawdowns(analyses []model.AnalysisEntry) []drawdown {
	index := make(map[string]int)
	var out []drawdown

	for _, entry := range analyses {
		cat := entry.AnalysisCategory
		if cat.Name != categorySACCLoans {
			continue
		}

		for _, group := range cat.TransactionGroups {
			name := group.Name
			if name == "" {
				name = "Unknown"
			}

			for _, txn := range group.Transactions {
				if !txn.HasCreditTag() {
					continue
				}
				if !txn.Amount.Numeric || !txn.Amount.Value.IsPositive() {
					continue
				}
				if i, ok := index[name]; ok {
					out[i].Amount = txn.Amount.Value
				} else {
					index[name] = len(out)
					out = append(out, drawdown{Name: name, Amount: txn.Amount.Value})
				}
				break
			}
		}
	}
	return out
}
