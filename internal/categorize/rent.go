package categorize

import (
	"github.com/shopspring/decimal"

	"github.com/rijuma15/cash-faster/internal/model"
)

// rentMinOccurrences is how often an exact debit amount must repeat in
// the observed window before it is treated as rent.
const rentMinOccurrences = 3

// RecurringRent returns the fortnightly rent figure detected in a flat
// list of transactions. Only numeric debit amounts count; the first
// amount (in encounter order) whose occurrence count reaches the
// threshold wins. No qualifying amount means no detectable rent.
func RecurringRent(txns []model.Transaction) decimal.Decimal {
	counts := make(map[string]int)
	values := make(map[string]decimal.Decimal)
	var order []string

	for _, txn := range txns {
		if !txn.Amount.Numeric || !txn.Amount.Value.IsNegative() {
			continue
		}
		abs := txn.Amount.Value.Abs()
		key := abs.String()
		if _, seen := counts[key]; !seen {
			order = append(order, key)
			values[key] = abs
		}
		counts[key]++
	}

	for _, key := range order {
		if counts[key] >= rentMinOccurrences {
			return values[key]
		}
	}
	return decimal.Zero
}
