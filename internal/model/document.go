package model

import (
	"bytes"
	"encoding/json"
)

// RawDocument is the bank-statement analysis document returned by the
// admin service for one loan application. The interesting payloads
// (decision metrics and per-account statement analyses) arrive as
// JSON-encoded strings embedded in the outer document.
type RawDocument struct {
	CustomerInfo CustomerInfo  `json:"illionCustomerInfo"`
	BankAccounts []BankAccount `json:"illionBankAccount"`
}

// AccountHolder returns the holder of the first bank account, or
// "Unknown" when the document carries none.
func (d RawDocument) AccountHolder() string {
	if len(d.BankAccounts) == 0 || d.BankAccounts[0].AccountHolder == "" {
		return "Unknown"
	}
	return d.BankAccounts[0].AccountHolder
}

// CustomerInfo holds the applicant-level report data.
type CustomerInfo struct {
	DecisionMetrics string `json:"decisionMetrics"`
}

// BankAccount is one account record inside the raw document.
type BankAccount struct {
	AccountHolder     string `json:"account_holder"`
	StatementAnalysis string `json:"statementAnalysis"`
}

// DecisionMetric is a labeled monthly amount from the decision-metrics
// list, e.g. {"name": "Rent - Monthly", "value": "$1200"}.
type DecisionMetric struct {
	Name  string      `json:"name"`
	Value MetricValue `json:"value"`
}

// MetricValue is usually a currency-formatted string. The feed
// occasionally sends bare numbers, which are kept as their literal text.
type MetricValue string

// UnmarshalJSON keeps strings as-is and stores any other JSON value as
// its raw text.
func (v *MetricValue) UnmarshalJSON(data []byte) error {
	t := bytes.TrimSpace(data)
	if len(t) > 0 && t[0] == '"' {
		var s string
		if err := json.Unmarshal(t, &s); err != nil {
			return err
		}
		*v = MetricValue(s)
		return nil
	}
	*v = MetricValue(t)
	return nil
}

func (v MetricValue) String() string { return string(v) }

// AnalysisEntry is one element of an account's statement analysis.
type AnalysisEntry struct {
	AnalysisCategory AnalysisCategory `json:"analysisCategory"`
}

// AnalysisCategory is the per-category breakdown: summary points plus
// the transaction groups that produced them.
type AnalysisCategory struct {
	Name              string             `json:"name"`
	AnalysisPoints    []AnalysisPoint    `json:"analysisPoints"`
	TransactionGroups []TransactionGroup `json:"transactionGroups"`
}

// AnalysisPoint is a named summary figure, e.g. totalAmount.
type AnalysisPoint struct {
	Name  string `json:"name"`
	Value Amount `json:"value"`
}

// TransactionGroup bundles the transactions attributed to one
// counterparty label.
type TransactionGroup struct {
	Name         string          `json:"name"`
	Transactions TransactionList `json:"transactions"`
}

// Transaction is a single statement line. Negative amounts are debits,
// positive are credits.
type Transaction struct {
	Amount Amount `json:"amount"`
	Tags   []Tag  `json:"tags"`
}

// Tag annotates a transaction; only the credit/debit marker matters here.
type Tag struct {
	CreditDebit string `json:"creditDebit"`
}

// HasCreditTag reports whether any tag marks the transaction as a credit.
func (t Transaction) HasCreditTag() bool {
	for _, tag := range t.Tags {
		if tag.CreditDebit == "credit" {
			return true
		}
	}
	return false
}

// TransactionList decodes from either a JSON array or a JSON string
// containing that array. A malformed embedded string decodes as empty;
// a malformed direct array fails the surrounding fragment.
type TransactionList []Transaction

// UnmarshalJSON implements the dual array/string decoding.
func (tl *TransactionList) UnmarshalJSON(data []byte) error {
	*tl = nil
	t := bytes.TrimSpace(data)
	if len(t) == 0 || bytes.Equal(t, []byte("null")) {
		return nil
	}
	if t[0] == '"' {
		var s string
		if err := json.Unmarshal(t, &s); err != nil {
			return nil
		}
		var txns []Transaction
		if err := json.Unmarshal([]byte(s), &txns); err != nil {
			return nil
		}
		*tl = txns
		return nil
	}
	var txns []Transaction
	if err := json.Unmarshal(t, &txns); err != nil {
		return err
	}
	*tl = txns
	return nil
}
