// Package statement extracts the JSON payloads embedded in a raw
// bank-statement document.
package statement

import (
	"encoding/json"
	"strings"

	"github.com/rs/zerolog"

	"github.com/rijuma15/cash-faster/internal/model"
)

// DecisionMetrics parses the decision-metrics list embedded in the
// customer info. A malformed payload is logged and yields an empty list
// rather than an error.
func DecisionMetrics(doc model.RawDocument, logger zerolog.Logger) []model.DecisionMetric {
	raw := strings.TrimSpace(doc.CustomerInfo.DecisionMetrics)
	if raw == "" {
		return nil
	}

	var metrics []model.DecisionMetric
	if err := json.Unmarshal([]byte(raw), &metrics); err != nil {
		logger.Error().Err(err).Msg("failed to parse decision metrics")
		return nil
	}
	return metrics
}

// Analyses parses each bank account's statement analysis independently
// and concatenates the results in account order. A malformed fragment
// on one account is logged and skipped without aborting the others.
func Analyses(doc model.RawDocument, logger zerolog.Logger) []model.AnalysisEntry {
	var all []model.AnalysisEntry
	for i, account := range doc.BankAccounts {
		raw := strings.TrimSpace(account.StatementAnalysis)
		if raw == "" {
			continue
		}

		var entries []model.AnalysisEntry
		if err := json.Unmarshal([]byte(raw), &entries); err != nil {
			logger.Error().Err(err).Int("account_index", i).Msg("failed to parse statement analysis")
			continue
		}
		all = append(all, entries...)
	}
	return all
}
