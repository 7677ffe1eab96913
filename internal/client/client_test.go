package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rijuma15/cash-faster/internal/categorize"
	"github.com/rijuma15/cash-faster/internal/loan"
)

const testTimeout = 2 * time.Second

func TestDocumentClient_BankStatement(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bank-statement/22019", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"illionCustomerInfo": {"decisionMetrics": "[]"},
			"illionBankAccount": [{"account_holder": "J Citizen", "statementAnalysis": "[]"}]
		}`))
	}))
	defer srv.Close()

	c := NewDocumentClient(srv.URL, testTimeout, zerolog.Nop())
	doc, err := c.BankStatement(context.Background(), 22019)
	require.NoError(t, err)
	assert.Equal(t, "J Citizen", doc.AccountHolder())
}

func TestDocumentClient_ErrorStatusIsNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewDocumentClient(srv.URL, testTimeout, zerolog.Nop())
	_, err := c.BankStatement(context.Background(), 1)
	assert.ErrorIs(t, err, loan.ErrNotFound)
}

func TestDocumentClient_TransportFailureIsNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused

	c := NewDocumentClient(srv.URL, testTimeout, zerolog.Nop())
	_, err := c.BankStatement(context.Background(), 1)
	assert.ErrorIs(t, err, loan.ErrNotFound)
}

func TestDocumentClient_InvalidBodyIsNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer srv.Close()

	c := NewDocumentClient(srv.URL, testTimeout, zerolog.Nop())
	_, err := c.BankStatement(context.Background(), 1)
	assert.ErrorIs(t, err, loan.ErrNotFound)
}

func TestCalculatorClient_Repayment(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"repayment_amount": "95.50"}`))
	}))
	defer srv.Close()

	c := NewCalculatorClient(srv.URL, testTimeout, zerolog.Nop())
	got, err := c.Repayment(context.Background(), decimal.RequireFromString("250.75"), 2)
	require.NoError(t, err)

	// The principal is truncated to whole dollars in the URL.
	assert.Equal(t, "/bank-statement/loan-calculator/250/2/fortnightly", gotPath)
	assert.True(t, got.Equal(decimal.RequireFromString("95.50")), "got %s", got)
}

func TestCalculatorClient_InvalidRepaymentIsZero(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"repayment_amount": "pending"}`))
	}))
	defer srv.Close()

	c := NewCalculatorClient(srv.URL, testTimeout, zerolog.Nop())
	got, err := c.Repayment(context.Background(), decimal.NewFromInt(400), 5)
	require.NoError(t, err)
	assert.True(t, got.IsZero())
}

func TestCalculatorClient_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewCalculatorClient(srv.URL, testTimeout, zerolog.Nop())
	_, err := c.Repayment(context.Background(), decimal.NewFromInt(400), 5)
	assert.Error(t, err)
}

func TestKeywordClient_FetchAndCache(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		assert.Equal(t, "/bank-statement/get-factor/bnpl", r.URL.Path)
		_, _ = w.Write([]byte(`{"data": ["Afterpay", "Zip"]}`))
	}))
	defer srv.Close()

	c := NewKeywordClient(srv.URL, testTimeout, time.Minute, zerolog.Nop())

	first, err := c.Keywords(context.Background(), categorize.CategoryBNPL)
	require.NoError(t, err)
	assert.Equal(t, []string{"Afterpay", "Zip"}, first)

	second, err := c.Keywords(context.Background(), categorize.CategoryBNPL)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	assert.Equal(t, 1, hits, "second lookup must come from the cache")
}

func TestKeywordClient_UnknownCategory(t *testing.T) {
	c := NewKeywordClient("http://localhost:0", testTimeout, time.Minute, zerolog.Nop())
	_, err := c.Keywords(context.Background(), "Mystery")
	assert.Error(t, err)
}

func TestKeywordClient_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewKeywordClient(srv.URL, testTimeout, time.Minute, zerolog.Nop())
	_, err := c.Keywords(context.Background(), categorize.CategoryNonSACC)
	assert.Error(t, err)
}
