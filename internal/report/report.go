// Package report renders assessments as the analyst-facing text block
// and writes the combined batch artifact.
package report

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/rijuma15/cash-faster/internal/model"
)

// Format renders one assessment. The first line links to the loan in
// the admin console followed by the account holder.
func Format(a model.Assessment, adminBaseURL string) string {
	link := fmt.Sprintf("%s/admin/loan/%d/show %s", strings.TrimRight(adminBaseURL, "/"), a.LoanID, a.AccountHolder)

	var b strings.Builder
	fmt.Fprintln(&b, link)
	fmt.Fprintf(&b, "Wages: $%s\n", a.Totals.Wages.StringFixed(2))
	fmt.Fprintf(&b, "Centrelink: $%s\n", a.Totals.Centrelink.StringFixed(2))
	fmt.Fprintf(&b, "Total Income: $%s\n", a.TotalIncome.StringFixed(2))
	fmt.Fprintf(&b, "SACC Loans: {%s}\n", formatSACC(a.Totals))
	fmt.Fprintf(&b, "Non-SACC Loans: $%s\n", a.Totals.NonSACC.StringFixed(2))
	fmt.Fprintf(&b, "Wage Advance: $%s\n", a.Totals.WageAdvance.StringFixed(2))
	fmt.Fprintf(&b, "BNPL: $%s\n", a.Totals.BNPL.StringFixed(2))
	fmt.Fprintf(&b, "Debt Collection: $%s\n", a.Totals.DebtCollection.StringFixed(2))
	fmt.Fprintf(&b, "Living Expenses: $%s\n", a.Totals.LivingExpenses.StringFixed(2))
	fmt.Fprintf(&b, "Rent: $%s\n", a.Totals.Rent.StringFixed(2))
	fmt.Fprintf(&b, "Gambling: $%s\n", a.Totals.Gambling.StringFixed(2))
	fmt.Fprintf(&b, "Insurance: $%s\n", a.Totals.Insurance.StringFixed(2))
	fmt.Fprintf(&b, "Total Expenses: $%s\n", a.TotalExpenses.StringFixed(2))
	return b.String()
}

// formatSACC renders the per-counterparty breakdown, sorted by name for
// stable output.
func formatSACC(t model.Totals) string {
	names := make([]string, 0, len(t.SACC))
	for name := range t.SACC {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s SACC Loan: $%s", name, t.SACC[name].StringFixed(2)))
	}
	return strings.Join(parts, " ")
}

// WriteAll writes the batch outputs to a single text artifact, one
// blank line between loans.
func WriteAll(path string, outputs []string) error {
	content := strings.Join(outputs, "\n")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing report file: %w", err)
	}
	return nil
}
