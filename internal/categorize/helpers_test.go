package categorize

import (
	"github.com/shopspring/decimal"

	"github.com/rijuma15/cash-faster/internal/model"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// txn builds a numeric transaction, optionally tagged.
func txn(amount string, tags ...string) model.Transaction {
	t := model.Transaction{Amount: model.NumericAmount(dec(amount))}
	for _, tag := range tags {
		t.Tags = append(t.Tags, model.Tag{CreditDebit: tag})
	}
	return t
}

// strTxn builds a transaction whose amount arrived as a string.
func strTxn(amount string) model.Transaction {
	return model.Transaction{Amount: model.Amount{Value: dec(amount)}}
}

func point(name, value string) model.AnalysisPoint {
	return model.AnalysisPoint{Name: name, Value: model.NumericAmount(dec(value))}
}

func group(name string, txns ...model.Transaction) model.TransactionGroup {
	return model.TransactionGroup{Name: name, Transactions: txns}
}

func entry(name string, points []model.AnalysisPoint, groups ...model.TransactionGroup) model.AnalysisEntry {
	return model.AnalysisEntry{AnalysisCategory: model.AnalysisCategory{
		Name:              name,
		AnalysisPoints:    points,
		TransactionGroups: groups,
	}}
}
