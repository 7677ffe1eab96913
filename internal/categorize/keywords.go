package categorize

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/rijuma15/cash-faster/internal/model"
)

// KeywordSource returns the counterparty keywords recognized for a
// keyword-driven category (BNPL, Wage Advance, Non-SACC Loans).
type KeywordSource interface {
	Keywords(ctx context.Context, category string) ([]string, error)
}

// KeywordCategoryTotal sums positive numeric transaction amounts under
// the named category, counting only transaction groups whose
// counterparty name appears in the category's keyword list. A failed or
// empty keyword fetch skips the category entirely.
func KeywordCategoryTotal(ctx context.Context, analyses []model.AnalysisEntry, category string, source KeywordSource, logger zerolog.Logger) decimal.Decimal {
	keywords, err := source.Keywords(ctx, category)
	if err != nil {
		logger.Error().Err(err).Str("category", category).Msg("keyword fetch failed")
		return decimal.Zero
	}
	if len(keywords) == 0 {
		logger.Info().Str("category", category).Msg("no keywords for category, skipping")
		return decimal.Zero
	}

	known := make(map[string]struct{}, len(keywords))
	for _, k := range keywords {
		known[k] = struct{}{}
	}

	total := decimal.Zero
	for _, entry := range analyses {
		cat := entry.AnalysisCategory
		if cat.Name != category {
			continue
		}
		for _, group := range cat.TransactionGroups {
			if _, ok := known[group.Name]; !ok {
				continue
			}
			for _, txn := range group.Transactions {
				if txn.Amount.Numeric && txn.Amount.Value.IsPositive() {
					total = total.Add(txn.Amount.Value)
				}
			}
		}
	}
	return total
}
