// Package client holds the HTTP collaborators: the admin document
// service, the loan-calculator service, and the get-factor keyword
// service. None of them retry; a failed call is logged and surfaced so
// the affected unit of work can be skipped.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/rijuma15/cash-faster/internal/loan"
	"github.com/rijuma15/cash-faster/internal/model"
)

// DocumentClient fetches bank-statement documents from the admin service.
type DocumentClient struct {
	baseURL    string
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewDocumentClient creates a document client for the admin base URL.
func NewDocumentClient(baseURL string, timeout time.Duration, logger zerolog.Logger) *DocumentClient {
	return &DocumentClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// BankStatement retrieves the raw document for a loan. Any transport
// failure, non-200 status, or undecodable body is logged and reported
// as loan.ErrNotFound, so the caller treats the document as absent.
func (c *DocumentClient) BankStatement(ctx context.Context, loanID int) (model.RawDocument, error) {
	url := fmt.Sprintf("%s/bank-statement/%d", c.baseURL, loanID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return model.RawDocument{}, fmt.Errorf("building request for %s: %w", url, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error().Err(err).Str("url", url).Msg("bank statement fetch failed")
		return model.RawDocument{}, fmt.Errorf("fetching %s: %w", url, loan.ErrNotFound)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Error().Int("status", resp.StatusCode).Str("url", url).Msg("bank statement fetch returned error status")
		return model.RawDocument{}, fmt.Errorf("fetching %s: status %d: %w", url, resp.StatusCode, loan.ErrNotFound)
	}

	var doc model.RawDocument
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		c.logger.Error().Err(err).Str("url", url).Msg("bank statement body was not valid JSON")
		return model.RawDocument{}, fmt.Errorf("decoding %s: %w", url, loan.ErrNotFound)
	}
	return doc, nil
}
