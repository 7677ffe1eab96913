package categorize

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/rijuma15/cash-faster/internal/model"
)

// fakeKeywords serves fixed keyword lists per category.
type fakeKeywords struct {
	lists map[string][]string
	err   error
}

func (f *fakeKeywords) Keywords(_ context.Context, category string) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.lists[category], nil
}

func TestKeywordCategoryTotal(t *testing.T) {
	source := &fakeKeywords{lists: map[string][]string{
		CategoryBNPL: {"Afterpay", "Zip"},
	}}
	analyses := []model.AnalysisEntry{
		entry(CategoryBNPL, nil,
			group("Afterpay", txn("40"), txn("-40"), txn("25")),
			group("Zip", txn("15")),
			group("SomethingElse", txn("999")), // not a keyword, ignored
		),
		entry("Wages", nil, group("Afterpay", txn("500"))), // wrong category
	}

	got := KeywordCategoryTotal(context.Background(), analyses, CategoryBNPL, source, zerolog.Nop())
	assert.True(t, got.Equal(dec("80")), "got %s", got)
}

func TestKeywordCategoryTotal_NonNumericIgnored(t *testing.T) {
	source := &fakeKeywords{lists: map[string][]string{
		CategoryWageAdvance: {"MyPayNow"},
	}}
	analyses := []model.AnalysisEntry{
		entry(CategoryWageAdvance, nil, group("MyPayNow", strTxn("100"), txn("50"))),
	}

	got := KeywordCategoryTotal(context.Background(), analyses, CategoryWageAdvance, source, zerolog.Nop())
	assert.True(t, got.Equal(dec("50")), "got %s", got)
}

func TestKeywordCategoryTotal_EmptyKeywordList(t *testing.T) {
	source := &fakeKeywords{lists: map[string][]string{}}
	analyses := []model.AnalysisEntry{
		entry(CategoryNonSACC, nil, group("AnyLender", txn("300"))),
	}

	got := KeywordCategoryTotal(context.Background(), analyses, CategoryNonSACC, source, zerolog.Nop())
	assert.True(t, got.IsZero())
}

func TestKeywordCategoryTotal_FetchFailure(t *testing.T) {
	source := &fakeKeywords{err: errors.New("service down")}
	analyses := []model.AnalysisEntry{
		entry(CategoryBNPL, nil, group("Afterpay", txn("40"))),
	}

	got := KeywordCategoryTotal(context.Background(), analyses, CategoryBNPL, source, zerolog.Nop())
	assert.True(t, got.IsZero(), "a failed keyword fetch skips the category")
}
