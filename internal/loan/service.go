// Package loan orchestrates one full categorization pass per loan id:
// fetch the document, decode the embedded payloads, classify, and total.
package loan

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/rijuma15/cash-faster/internal/categorize"
	"github.com/rijuma15/cash-faster/internal/model"
	"github.com/rijuma15/cash-faster/internal/statement"
)

// ErrNotFound reports that the document service has no bank statement
// for the requested loan.
var ErrNotFound = errors.New("bank statement not found")

// DocumentSource fetches the raw bank-statement document for a loan.
// Implementations report absence (for any reason) as ErrNotFound.
type DocumentSource interface {
	BankStatement(ctx context.Context, loanID int) (model.RawDocument, error)
}

// Service runs the categorization pipeline. All state is per-call; a
// Service is safe to reuse across loan ids.
type Service struct {
	docs     DocumentSource
	calc     categorize.RepaymentCalculator
	keywords categorize.KeywordSource
	logger   zerolog.Logger
}

// NewService creates a loan Service.
func NewService(docs DocumentSource, calc categorize.RepaymentCalculator, keywords categorize.KeywordSource, logger zerolog.Logger) *Service {
	return &Service{docs: docs, calc: calc, keywords: keywords, logger: logger}
}

// Process produces the serviceability assessment for one loan id.
func (s *Service) Process(ctx context.Context, loanID int) (model.Assessment, error) {
	doc, err := s.docs.BankStatement(ctx, loanID)
	if err != nil {
		return model.Assessment{}, fmt.Errorf("loan %d: %w", loanID, err)
	}

	logger := s.logger.With().Int("loan_id", loanID).Logger()
	metrics := statement.DecisionMetrics(doc, logger)
	analyses := statement.Analyses(doc, logger)

	totals := categorize.Accumulate(ctx, analyses, s.calc, logger)

	// Living expenses come from the decision metrics, but that pass
	// must never override the Centrelink figure taken from statement
	// analysis.
	centrelink := totals.Centrelink
	totals.LivingExpenses = categorize.LivingExpenses(metrics)
	totals.Centrelink = centrelink

	totals.BNPL = categorize.KeywordCategoryTotal(ctx, analyses, categorize.CategoryBNPL, s.keywords, logger)
	totals.WageAdvance = categorize.KeywordCategoryTotal(ctx, analyses, categorize.CategoryWageAdvance, s.keywords, logger)
	totals.NonSACC = categorize.KeywordCategoryTotal(ctx, analyses, categorize.CategoryNonSACC, s.keywords, logger)

	income, expenses, surplus := categorize.CalculateTotals(totals)
	logger.Info().
		Str("income", income.StringFixed(2)).
		Str("expenses", expenses.StringFixed(2)).
		Str("surplus", surplus.StringFixed(2)).
		Msg("assessment complete")

	return model.Assessment{
		LoanID:        loanID,
		AccountHolder: doc.AccountHolder(),
		Totals:        totals,
		TotalIncome:   income,
		TotalExpenses: expenses,
		Surplus:       surplus,
	}, nil
}
