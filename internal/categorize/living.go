package categorize

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/rijuma15/cash-faster/internal/model"
)

// Decision-metrics line names reserved for figures handled elsewhere.
const (
	metricRent       = "Rent - Monthly"
	metricInsurance  = "Insurance - Monthly"
	metricWages      = "Wages - Monthly"
	metricCentrelink = "Centrelink - Monthly"
	metricSACCLoans  = "SACC Loans - Monthly"
	metricAllLoans   = "All Loans - Monthly"
)

// LivingExpenses sums the recurring monthly expense lines of the
// decision-metrics list into one fortnightly figure.
//
// The list is ordered with the Rent line ahead of the expense block;
// nothing before it counts and the Rent line itself is excluded.
// Upstream must guarantee that ordering; it is not validated here.
// After the latch opens, insurance, once-off costs, and the
// wages/Centrelink/loan lines are skipped: they are either income,
// non-recurring, or accounted for by their own categories.
func LivingExpenses(metrics []model.DecisionMetric) decimal.Decimal {
	total := decimal.Zero
	afterRent := false

	for _, m := range metrics {
		if m.Name == metricRent {
			afterRent = true
			continue
		}
		if !afterRent {
			continue
		}

		value := m.Value.String()
		if m.Name == metricInsurance || strings.Contains(value, onceOffMarker) {
			continue
		}
		switch m.Name {
		case metricWages, metricCentrelink, metricSACCLoans, metricAllLoans:
			continue
		}

		total = total.Add(ParseMonetary(value))
	}

	return fortnightly(total).Round(2)
}
