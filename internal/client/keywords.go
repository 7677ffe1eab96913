package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/rs/zerolog"

	"github.com/rijuma15/cash-faster/internal/categorize"
)

// keywordSlugs maps a keyword category to its get-factor endpoint slug.
var keywordSlugs = map[string]string{
	categorize.CategoryBNPL:        "bnpl",
	categorize.CategoryWageAdvance: "wages_advance",
	categorize.CategoryNonSACC:     "non_sacc_loans",
}

// KeywordClient fetches counterparty keyword lists from the app's
// get-factor endpoints. Lists are cached per category for a TTL so a
// batch run fetches each one once.
type KeywordClient struct {
	baseURL    string
	httpClient *http.Client
	cache      *gocache.Cache
	logger     zerolog.Logger
}

// NewKeywordClient creates a keyword client for the app base URL.
func NewKeywordClient(baseURL string, timeout, cacheTTL time.Duration, logger zerolog.Logger) *KeywordClient {
	return &KeywordClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		cache:      gocache.New(cacheTTL, 2*cacheTTL),
		logger:     logger,
	}
}

// Keywords returns the counterparty keywords recognized for a category.
func (c *KeywordClient) Keywords(ctx context.Context, category string) ([]string, error) {
	slug, ok := keywordSlugs[category]
	if !ok {
		return nil, fmt.Errorf("no keyword endpoint for category %q", category)
	}

	if cached, found := c.cache.Get(slug); found {
		return cached.([]string), nil
	}

	url := fmt.Sprintf("%s/bank-statement/get-factor/%s", c.baseURL, slug)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building request for %s: %w", url, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching %s: status %d", url, resp.StatusCode)
	}

	var body struct {
		Data []string `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decoding keyword response: %w", err)
	}

	c.cache.Set(slug, body.Data, gocache.DefaultExpiration)
	c.logger.Debug().Str("category", category).Int("count", len(body.Data)).Msg("keyword list fetched")
	return body.Data, nil
}
