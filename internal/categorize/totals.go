package categorize

import (
	"github.com/shopspring/decimal"

	"github.com/rijuma15/cash-faster/internal/model"
)

// CalculateTotals derives the income/expense/surplus summary from the
// category totals. Income is exactly Wages plus Centrelink; expenses
// are the SACC repayments, debt collection, and living expenses.
func CalculateTotals(t model.Totals) (income, expenses, surplus decimal.Decimal) {
	income = t.Wages.Add(t.Centrelink).Round(2)
	expenses = t.TotalSACC().Add(t.DebtCollection).Add(t.LivingExpenses).Round(2)
	surplus = income.Sub(expenses).Round(2)
	return income, expenses, surplus
}
