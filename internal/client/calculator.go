package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// CalculatorClient resolves fortnightly repayments from the app's loan
// calculator. The term selects between fee/repayment schedules; the
// calculator's URL contract takes the principal in whole dollars, so
// the amount is truncated.
type CalculatorClient struct {
	baseURL    string
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewCalculatorClient creates a calculator client for the app base URL.
func NewCalculatorClient(baseURL string, timeout time.Duration, logger zerolog.Logger) *CalculatorClient {
	return &CalculatorClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// Repayment looks up the fortnightly repayment for a principal over a
// term in fortnights. An unparseable repayment_amount is recorded as
// zero rather than an error, matching the calculator's loose contract.
func (c *CalculatorClient) Repayment(ctx context.Context, amount decimal.Decimal, term int) (decimal.Decimal, error) {
	url := fmt.Sprintf("%s/bank-statement/loan-calculator/%d/%d/fortnightly", c.baseURL, amount.IntPart(), term)
	c.logger.Info().Str("url", url).Msg("calling loan calculator")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return decimal.Zero, fmt.Errorf("building request for %s: %w", url, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return decimal.Zero, fmt.Errorf("calling %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decimal.Zero, fmt.Errorf("calling %s: status %d", url, resp.StatusCode)
	}

	var body struct {
		RepaymentAmount string `json:"repayment_amount"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return decimal.Zero, fmt.Errorf("decoding calculator response: %w", err)
	}

	repayment, err := decimal.NewFromString(body.RepaymentAmount)
	if err != nil {
		c.logger.Error().Str("repayment_amount", body.RepaymentAmount).Msg("invalid repayment amount format")
		return decimal.Zero, nil
	}
	return repayment, nil
}
