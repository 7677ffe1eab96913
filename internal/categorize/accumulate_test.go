package categorize

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/rijuma15/cash-faster/internal/model"
)

func accumulate(t *testing.T, analyses ...model.AnalysisEntry) model.Totals {
	t.Helper()
	return Accumulate(context.Background(), analyses, &fakeCalculator{}, zerolog.Nop())
}

func TestAccumulate_RentAcrossAccounts(t *testing.T) {
	totals := accumulate(t,
		entry("Rent", nil, group("Agent A", txn("-450"), txn("-450"), txn("-450"))),
		entry("Rent", nil, group("Agent B", txn("-200"), txn("-200"), txn("-200"))),
	)
	assert.True(t, totals.Rent.Equal(dec("650")), "rent entries accumulate, got %s", totals.Rent)
}

func TestAccumulate_RentResetWhenNoRentEntry(t *testing.T) {
	totals := accumulate(t,
		entry("Wages", []model.AnalysisPoint{point(pointAverageAmount, "1000")}),
	)
	assert.True(t, totals.Rent.IsZero())
}

func TestAccumulate_WagesAndInsuranceSum(t *testing.T) {
	totals := accumulate(t,
		entry("Wages", []model.AnalysisPoint{point(pointAverageAmount, "1000")}),
		entry("Wages", []model.AnalysisPoint{point(pointAverageAmount, "250")}),
		entry("Insurance", []model.AnalysisPoint{point(pointAverageAmount, "80.50")}),
	)
	assert.True(t, totals.Wages.Equal(dec("1250")))
	assert.True(t, totals.Insurance.Equal(dec("80.50")))
}

func TestAccumulate_CentrelinkLastWins(t *testing.T) {
	// Duplicate bank-account entries must not double count: 500 then
	// 300 yields 300, not 800.
	totals := accumulate(t,
		entry("Centrelink", []model.AnalysisPoint{point(pointAverageAmount, "500")}),
		entry("Centrelink", []model.AnalysisPoint{point(pointAverageAmount, "300")}),
	)
	assert.True(t, totals.Centrelink.Equal(dec("300")), "got %s", totals.Centrelink)
}

func TestAccumulate_GamblingConversion(t *testing.T) {
	// debits 1200, credits 0 -> net 1200 -> ((1200/6)*12)/26 = 92.31.
	totals := accumulate(t,
		entry("Gambling", []model.AnalysisPoint{point(pointTotalDebits, "1200")}),
	)
	assert.True(t, totals.Gambling.Equal(dec("92.31")), "got %s", totals.Gambling)
}

func TestAccumulate_GamblingNetNonPositive(t *testing.T) {
	totals := accumulate(t,
		entry("Gambling", []model.AnalysisPoint{
			point(pointTotalDebits, "500"),
			point(pointTotalCredits, "600"),
		}),
	)
	assert.True(t, totals.Gambling.IsZero())
}

func TestAccumulate_SACCBreakdownStored(t *testing.T) {
	totals := accumulate(t,
		entry("SACC Loans", nil, group("QuickCash", txn("250", "credit"))),
	)
	assert.Len(t, totals.SACC, 1)
	assert.True(t, totals.SACC["QuickCash"].Equal(dec("25")))
}

func TestAccumulate_EmptyAnalyses(t *testing.T) {
	totals := accumulate(t)
	assert.True(t, totals.Rent.IsZero())
	assert.True(t, totals.Wages.IsZero())
	assert.Empty(t, totals.SACC)
}
